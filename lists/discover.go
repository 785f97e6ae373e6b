package lists

import (
	"log/slog"

	"github.com/ItMeDiaTech/Documentation-Hub-sub002/logging"
	"github.com/ItMeDiaTech/Documentation-Hub-sub002/wml"
)

// Discover picks the numId that unnumbered items among paras should join.
//
// The first explicit level-0 reference whose definition numbers its top
// level with decimals wins. Without one, the numId carried by the most
// explicit references wins, ties going to the one seen first. References to
// numIds the store does not define are ignored. ok is false when nothing
// qualifies or the document has no numbering store. A nil logger uses the
// package logger.
func Discover(paras []*wml.Paragraph, store *wml.NumberingStore, logger *slog.Logger) (numID int, ok bool) {
	if store == nil {
		return 0, false
	}
	log := logging.Or(logger)

	for _, p := range paras {
		if p.Numbering == nil || p.Numbering.Level != 0 {
			continue
		}
		if store.IsDecimalTop(p.Numbering.NumID) {
			log.Debug("numbering discovered", slog.Int("numId", p.Numbering.NumID), slog.String("pass", "decimal top level"))
			return p.Numbering.NumID, true
		}
	}

	counts := make(map[int]int)
	var order []int
	for _, p := range paras {
		if p.Numbering == nil || !store.Has(p.Numbering.NumID) {
			continue
		}
		id := p.Numbering.NumID
		if counts[id] == 0 {
			order = append(order, id)
		}
		counts[id]++
	}
	best, bestCount := 0, 0
	for _, id := range order {
		if counts[id] > bestCount {
			best, bestCount = id, counts[id]
		}
	}
	if bestCount == 0 {
		log.Debug("no numbering discovered", slog.Int("paragraphs", len(paras)))
		return 0, false
	}
	log.Debug("numbering discovered", slog.Int("numId", best), slog.String("pass", "majority"), slog.Int("votes", bestCount))
	return best, true
}
