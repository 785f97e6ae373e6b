// Package links repairs hyperlink styling left behind by formatting passes.
//
// A run can look like a link without being one: it carries the hyperlink
// character style but sits outside any hyperlink container. A run can also
// be a real link whose color and underline were flattened. Which case
// applies is decided by structure (is the run inside a container), never by
// how the run currently looks.
package links

import (
	"log/slog"

	"github.com/ItMeDiaTech/Documentation-Hub-sub002/logging"
	"github.com/ItMeDiaTech/Documentation-Hub-sub002/wml"
)

// Findings classifies the runs of a paragraph.
type Findings struct {
	// False runs carry the hyperlink character style outside any container.
	False []*wml.Run
	// Genuine runs are enclosed in a hyperlink container.
	Genuine []*wml.Run
}

// Empty reports whether nothing was found.
func (f Findings) Empty() bool {
	return len(f.False) == 0 && len(f.Genuine) == 0
}

// Detect finds false and genuine hyperlink runs in p. hyperlinkStyle is the
// character style id that marks link text.
func Detect(p *wml.Paragraph, hyperlinkStyle string) Findings {
	direct := make(map[*wml.Run]bool)
	for _, r := range p.DirectRuns() {
		direct[r] = true
	}

	var f Findings
	enclosed := make(map[*wml.Run]bool)
	for _, h := range p.Hyperlinks() {
		for _, r := range h.Runs {
			enclosed[r] = true
		}
	}
	for _, r := range p.Runs() {
		switch {
		case enclosed[r] || !direct[r]:
			f.Genuine = append(f.Genuine, r)
		case r.CharStyle != "" && wml.SameStyle(r.CharStyle, hyperlinkStyle):
			f.False = append(f.False, r)
		}
	}
	return f
}

// Options configures Repair.
type Options struct {
	HyperlinkStyle string
	LinkColor      string
	Logger         *slog.Logger
}

// RepairResult counts repaired runs.
type RepairResult struct {
	FalseCleared    int
	GenuineRestored int
}

// Total returns the number of runs changed.
func (r RepairResult) Total() int {
	return r.FalseCleared + r.GenuineRestored
}

// Add accumulates o into r.
func (r *RepairResult) Add(o RepairResult) {
	r.FalseCleared += o.FalseCleared
	r.GenuineRestored += o.GenuineRestored
}

// Repair fixes the runs Detect finds. False links lose the character style
// and render as ordinary text. Genuine links, internal bookmarks included,
// get the link color and a single underline, and lose any character style
// that could recolor them.
func Repair(p *wml.Paragraph, opts Options) RepairResult {
	var res RepairResult
	f := Detect(p, opts.HyperlinkStyle)
	for _, r := range f.False {
		r.CharStyle = ""
		res.FalseCleared++
	}
	color := wml.NormalizeColor(opts.LinkColor)
	for _, r := range f.Genuine {
		changed := false
		if r.CharStyle != "" {
			r.CharStyle = ""
			changed = true
		}
		if color != "" && wml.NormalizeColor(r.Color) != color {
			r.Color = color
			changed = true
		}
		if r.Underline != wml.UnderlineSingle {
			r.Underline = wml.UnderlineSingle
			changed = true
		}
		if changed {
			res.GenuineRestored++
		}
	}
	if res.Total() > 0 {
		logging.Or(opts.Logger).Debug("hyperlink styling repaired",
			slog.Int("false", res.FalseCleared),
			slog.Int("genuine", res.GenuineRestored))
	}
	return res
}

// RepairTable runs Repair over every paragraph of t.
func RepairTable(t *wml.Table, opts Options) RepairResult {
	var res RepairResult
	for _, p := range t.Paragraphs() {
		res.Add(Repair(p, opts))
	}
	return res
}
