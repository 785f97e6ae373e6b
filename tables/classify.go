package tables

import (
	"log/slog"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/ItMeDiaTech/Documentation-Hub-sub002/logging"
	"github.com/ItMeDiaTech/Documentation-Hub-sub002/wml"
)

// Variant is the layout of a recognized special table.
type Variant string

const (
	VariantNone         Variant = ""
	VariantSingleColumn Variant = "single-column"
	VariantTwoColumn    Variant = "two-column"
)

// Classification is the result of Classify.
type Classification struct {
	IsMatch            bool
	Variant            Variant
	ColumnCount        int
	RowCount           int
	HasSecondaryColumn bool
	HeaderText         string
	HeaderSpan         int
}

// ClassifyOptions configures Classify.
type ClassifyOptions struct {
	HeaderFill    string
	SecondaryFill string

	// HeaderLabel, when set, must equal the header text after Unicode and
	// whitespace normalization. It rejects tables that reuse the header
	// color for something else.
	HeaderLabel string
	// FoldCase makes the HeaderLabel comparison case-insensitive.
	FoldCase bool

	Trace *slog.Logger
}

// Classify decides whether a table is a recognized special shape. The
// decision depends only on fill colors and shape: a table needs at least two
// rows and a first cell filled with exactly the header color.
func Classify(t *wml.Table, opts ClassifyOptions) Classification {
	trace := logging.Or(opts.Trace)
	cls := Classification{RowCount: len(t.Rows)}

	if len(t.Rows) < 2 {
		trace.Debug("classify: rejected", slog.String("reason", "fewer than two rows"), slog.Int("rows", len(t.Rows)))
		return cls
	}
	first := t.Cell(0, 0)
	if first == nil || opts.HeaderFill == "" || !wml.SameColor(first.Fill(), opts.HeaderFill) {
		fill := ""
		if first != nil {
			fill = first.Fill()
		}
		trace.Debug("classify: rejected", slog.String("reason", "header fill"), slog.String("fill", fill))
		return cls
	}

	cls.HeaderText = strings.TrimSpace(first.Text())
	cls.HeaderSpan = first.Span()
	if opts.HeaderLabel != "" && !labelMatches(cls.HeaderText, opts.HeaderLabel, opts.FoldCase) {
		trace.Debug("classify: rejected", slog.String("reason", "header label"), slog.String("header", cls.HeaderText))
		return cls
	}

	// The data row is a better column count than the header row, which
	// often spans every column.
	cls.ColumnCount = len(t.Rows[1].Cells)
	cls.Variant = VariantTwoColumn
	if cls.ColumnCount <= 1 {
		cls.Variant = VariantSingleColumn
	}

	if opts.SecondaryFill != "" {
		for _, row := range t.Rows[1:] {
			if last := row.LastCell(); last != nil && wml.SameColor(last.Fill(), opts.SecondaryFill) {
				cls.HasSecondaryColumn = true
				break
			}
		}
	}

	cls.IsMatch = true
	trace.Debug("classify: matched",
		slog.String("variant", string(cls.Variant)),
		slog.Int("columns", cls.ColumnCount),
		slog.Int("rows", cls.RowCount),
		slog.Bool("secondary", cls.HasSecondaryColumn),
		slog.String("header", cls.HeaderText))
	return cls
}

func labelMatches(text, label string, fold bool) bool {
	a, b := canonicalLabel(text), canonicalLabel(label)
	if fold {
		caser := cases.Fold()
		return caser.String(a) == caser.String(b)
	}
	return a == b
}

func canonicalLabel(s string) string {
	return strings.Join(strings.Fields(norm.NFC.String(s)), " ")
}
