package lists

import (
	"log/slog"

	"github.com/ItMeDiaTech/Documentation-Hub-sub002/logging"
	"github.com/ItMeDiaTech/Documentation-Hub-sub002/tables"
	"github.com/ItMeDiaTech/Documentation-Hub-sub002/wml"
)

// Options configures a Reconciler.
type Options struct {
	ListStyle   string
	NormalStyle string

	// BodyFont and BodySize are applied to numbered sub-items.
	BodyFont string
	BodySize float64

	Logger *slog.Logger
}

// Changes counts what ConvertAndAssign did.
type Changes struct {
	Converted  int // list-styled paragraphs moved to the normal style
	Numbered   int // main items given an explicit level-0 reference
	Normalized int // sub-item runs given the body font
}

// Total returns the number of changes.
func (c Changes) Total() int {
	return c.Converted + c.Numbered + c.Normalized
}

// Reconciler converts list-styled paragraphs and assigns main-item
// numbering inside a classified table.
type Reconciler struct {
	opts Options
	log  *slog.Logger
}

// NewReconciler creates a Reconciler.
func NewReconciler(opts Options) *Reconciler {
	return &Reconciler{opts: opts, log: logging.Or(opts.Logger)}
}

// ConvertAndAssign walks the content cells of t. Every list-styled paragraph
// without explicit numbering moves to the normal style with its indentation
// kept; if it is also the first paragraph of its cell and numID is non-zero
// it is numbered {numID, 0}. Paragraphs that already carry numbering only
// have their fonts normalized.
func (r *Reconciler) ConvertAndAssign(t *wml.Table, cls tables.Classification, numID int) Changes {
	var ch Changes
	for _, cell := range ContentCells(t, cls) {
		for i, p := range cell.Paragraphs() {
			if p.HasNumbering() {
				if p.Numbering.Level > 0 {
					ch.Normalized += r.normalizeRuns(p)
				}
				continue
			}
			if !convertToNormal(p, r.opts.ListStyle, r.opts.NormalStyle) {
				continue
			}
			ch.Converted++
			if i == 0 && numID != 0 && p.SetNumbering(wml.NumberingRef{NumID: numID, Level: 0}) {
				ch.Numbered++
			}
		}
	}
	if ch.Total() > 0 {
		r.log.Debug("list content reconciled",
			slog.Int("numId", numID),
			slog.Int("converted", ch.Converted),
			slog.Int("numbered", ch.Numbered),
			slog.Int("normalized", ch.Normalized))
	}
	return ch
}

func (r *Reconciler) normalizeRuns(p *wml.Paragraph) int {
	n := 0
	for _, run := range p.Runs() {
		if run.SetFont(r.opts.BodyFont, r.opts.BodySize) {
			n++
		}
	}
	return n
}
