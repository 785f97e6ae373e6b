package lists

import (
	"log/slog"

	"github.com/ItMeDiaTech/Documentation-Hub-sub002/logging"
	"github.com/ItMeDiaTech/Documentation-Hub-sub002/wml"
)

// Snapshot records the numbering references paragraphs held before any
// mutation. It is read-only once captured.
type Snapshot map[*wml.Paragraph]wml.NumberingRef

// CaptureSnapshot records every explicitly numbered paragraph of t.
func CaptureSnapshot(t *wml.Table) Snapshot {
	snap := make(Snapshot)
	for _, p := range t.Paragraphs() {
		if p.Numbering != nil {
			snap[p] = *p.Numbering
		}
	}
	return snap
}

// CaptureDocument records every explicitly numbered paragraph of doc.
func CaptureDocument(doc *wml.Document) Snapshot {
	snap := make(Snapshot)
	for _, p := range doc.Paragraphs() {
		if p.Numbering != nil {
			snap[p] = *p.Numbering
		}
	}
	return snap
}

// Restore puts back the snapshot reference of every data-row paragraph of
// t whose current reference differs. Header-row paragraphs are never
// restored. Entries pointing at numIds the store does not define are
// skipped, and without a store or snapshot nothing happens. Restore returns
// the number of paragraphs rewritten. A nil logger uses the package logger.
func Restore(t *wml.Table, snap Snapshot, store *wml.NumberingStore, logger *slog.Logger) int {
	if len(snap) == 0 || store == nil {
		return 0
	}
	log := logging.Or(logger)
	n := 0
	for ri, row := range t.Rows {
		if ri == 0 {
			continue
		}
		for _, cell := range row.Cells {
			for _, p := range cell.Paragraphs() {
				want, ok := snap[p]
				if !ok {
					continue
				}
				if !store.Has(want.NumID) {
					log.Warn("snapshot references undefined numbering", slog.Int("numId", want.NumID))
					continue
				}
				if p.SetNumbering(want) {
					n++
				}
			}
		}
	}
	if n > 0 {
		log.Debug("numbering restored from snapshot", slog.Int("paragraphs", n))
	}
	return n
}
