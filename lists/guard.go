package lists

import (
	"log/slog"

	"github.com/ItMeDiaTech/Documentation-Hub-sub002/logging"
	"github.com/ItMeDiaTech/Documentation-Hub-sub002/wml"
)

// DefaultLookahead is how many body elements GuardAfter inspects.
const DefaultLookahead = 3

// GuardOptions configures GuardAfter.
type GuardOptions struct {
	ListStyle   string
	NormalStyle string
	Lookahead   int
	Logger      *slog.Logger
}

// GuardAfter inspects the body elements following the table at body index
// tableIndex. List-styled paragraphs without explicit numbering are moved to
// the normal style so they do not continue the table's list. Scanning stops
// at the next table, after the first paragraph with text, or after
// Lookahead elements. It returns the number of paragraphs converted.
func GuardAfter(doc *wml.Document, tableIndex int, opts GuardOptions) int {
	if tableIndex < 0 || tableIndex >= len(doc.Body) {
		return 0
	}
	lookahead := opts.Lookahead
	if lookahead <= 0 {
		lookahead = DefaultLookahead
	}
	log := logging.Or(opts.Logger)

	n := 0
	end := min(tableIndex+1+lookahead, len(doc.Body))
	for i := tableIndex + 1; i < end; i++ {
		p, ok := doc.Body[i].(*wml.Paragraph)
		if !ok {
			break
		}
		if convertToNormal(p, opts.ListStyle, opts.NormalStyle) {
			log.Debug("list continuation broken after table", slog.Int("table", tableIndex), slog.Int("paragraph", i))
			n++
		}
		if !p.IsBlank() {
			break
		}
	}
	return n
}
