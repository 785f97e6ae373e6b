// Package tables classifies and formats the tables of a [wml.Document].
//
// Two passes live here.
//
// # Uniformity
//
// [Uniformity] walks every top-level table and gives it the house look:
//
//   - 1×1 tables act as section headers. A shaded cell, or one holding a
//     heading paragraph, gets the single-cell fill; every run gets the
//     heading font. A cell that renders more lines than MaxHeaderLines
//     (see [EstimateLines]) is body text and is left alone.
//   - Larger tables get the "other" fill, bold, centered text and spacing on
//     the first row and on every shaded cell. Other cells only get the body
//     font.
//
// Fills in the preserved list are never overwritten, so tables recognized
// by the semantic pass keep their colors.
//
// # Semantic shapes
//
// [Classify] recognizes tables whose first cell carries the header color
// and reports a [Variant]. [Formatter] then applies the variant's borders,
// header styling and secondary-column shading:
//
//	cls := tables.Classify(t, tables.ClassifyOptions{HeaderFill: "FFC000"})
//	if cls.IsMatch {
//		stats, err := formatter.Apply(t, cls)
//	}
//
// # Exclusions
//
// Floating tables and tables holding nested tables are never modified by
// either pass ([IsExcluded]).
//
// Shading is decided by [ResolveShading] from the cell's own fill only.
package tables
