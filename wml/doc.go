// Package wml provides the in-memory WordprocessingML object tree that the
// formatting passes operate on.
//
// A [Document] is an ordered sequence of body elements plus one shared
// [NumberingStore]. Body elements are either a [*Paragraph] or a [*Table]:
//
//	doc := wml.NewDocument()
//	doc.Append(wml.NewParagraph("Normal", wml.NewRun("Introduction")))
//
// # Tables
//
// A [Table] holds rows of [Cell] values. Cells carry their own shading,
// margins and per-side borders, and hold body elements of their own, so a
// cell can contain a nested table:
//
//	cell := wml.NewCell(wml.NewParagraph("Normal", wml.NewRun("text")))
//	cell.SetFill("FFC000")
//
// # Paragraph content
//
// Paragraph content is a sequence of [Inline] values: plain [*Run] values or
// [*Hyperlink] containers that wrap runs and carry a link target. Whether a
// run is a real link is decided by this structure, never by the run's
// character style.
//
// # Numbering
//
// The [NumberingStore] maps numId to abstract definitions and their levels.
// It is shared by the whole document: changing a [Level] affects every
// paragraph referencing that numId and level. All access goes through the
// store so a change made by one pass is visible to every other pass.
package wml
