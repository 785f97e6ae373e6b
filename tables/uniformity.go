package tables

import (
	"fmt"
	"log/slog"

	"github.com/ItMeDiaTech/Documentation-Hub-sub002/logging"
	"github.com/ItMeDiaTech/Documentation-Hub-sub002/wml"
)

// UniformityOptions configures the generic table pass.
type UniformityOptions struct {
	// SingleCellFill shades 1×1 tables that act as section headers.
	SingleCellFill string
	// OtherFill shades header rows and shaded cells of larger tables.
	OtherFill string
	// Preserved reports fills that are never overwritten. Nil preserves
	// nothing.
	Preserved func(fill string) bool

	HeadingFont string
	HeadingSize float64
	BodyFont    string
	BodySize    float64

	// PreserveBold leaves bold as found instead of forcing it on header
	// rows and shaded cells.
	PreserveBold bool
	Spacing      wml.Spacing

	// ListStyle identifies list-item paragraphs, which keep their bold
	// and alignment.
	ListStyle string

	// MaxHeaderLines excludes 1×1 tables that render more lines than this.
	MaxHeaderLines int

	Logger *slog.Logger
}

// UniformityResult summarizes a uniformity run.
type UniformityResult struct {
	TablesProcessed int
	CellsRecolored  int
	TablesSkipped   int
	TablesFailed    int
	Changes         int

	// Tables holds one report per top-level table in body order.
	Tables []TableReport
}

// TableStats describes what the pass did to one table.
type TableStats struct {
	Skipped   string // exclusion reason, empty when processed
	Recolored int
	Changes   int
}

// TableReport is the outcome for the table at body index Index. Err is set
// when the table could not be processed.
type TableReport struct {
	Index int
	Stats TableStats
	Err   error
}

// Uniformity makes every ordinary table look the same.
type Uniformity struct {
	opts UniformityOptions
	log  *slog.Logger
}

// NewUniformity creates the generic pass.
func NewUniformity(opts UniformityOptions) *Uniformity {
	if opts.MaxHeaderLines <= 0 {
		opts.MaxHeaderLines = 2
	}
	return &Uniformity{opts: opts, log: logging.Or(opts.Logger)}
}

// Apply runs the pass over every top-level table. A failing table is
// logged and counted; the remaining tables are still processed.
func (u *Uniformity) Apply(doc *wml.Document) UniformityResult {
	var res UniformityResult
	for _, i := range doc.TableIndexes() {
		stats, err := u.SafeApplyTable(doc.Body[i].(*wml.Table))
		res.Tables = append(res.Tables, TableReport{Index: i, Stats: stats, Err: err})
		if err != nil {
			u.log.Warn("table skipped", slog.Int("table", i), slog.String("stage", "uniformity"), slog.Any("error", err))
			res.TablesFailed++
			continue
		}
		if stats.Skipped != "" {
			res.TablesSkipped++
			continue
		}
		res.TablesProcessed++
		res.CellsRecolored += stats.Recolored
		res.Changes += stats.Changes
	}
	return res
}

// SafeApplyTable is ApplyTable with panics turned into errors.
func (u *Uniformity) SafeApplyTable(t *wml.Table) (stats TableStats, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("uniformity: %v", r)
		}
	}()
	return u.ApplyTable(t)
}

// ApplyTable runs the pass over one table.
func (u *Uniformity) ApplyTable(t *wml.Table) (TableStats, error) {
	if err := CheckWellFormed(t); err != nil {
		return TableStats{}, err
	}
	if excluded, reason := IsExcluded(t); excluded {
		u.log.Debug("table excluded", slog.String("reason", reason))
		return TableStats{Skipped: reason}, nil
	}
	if len(t.Rows) == 0 {
		return TableStats{}, nil
	}
	if t.IsSingleCell() {
		return u.applySingleCell(t.Rows[0].Cells[0]), nil
	}
	return u.applyGrid(t), nil
}

func (u *Uniformity) applySingleCell(cell *wml.Cell) TableStats {
	var stats TableStats

	if lines := EstimateLines(cell, u.opts.HeadingSize); lines > u.opts.MaxHeaderLines {
		u.log.Debug("single cell table excluded", slog.Int("lines", lines))
		return TableStats{Skipped: ReasonMultiLine}
	}

	shaded := ResolveShading(cell, u.log).Shaded
	heading := false
	for _, p := range cell.Paragraphs() {
		if wml.IsHeadingStyle(p.Style) {
			heading = true
			break
		}
	}
	if (shaded || heading) && cell.SetFill(u.opts.SingleCellFill) {
		stats.Recolored++
		stats.Changes++
	}

	for _, p := range cell.Paragraphs() {
		for _, r := range p.Runs() {
			if r.SetFont(u.opts.HeadingFont, u.opts.HeadingSize) {
				stats.Changes++
			}
		}
	}
	return stats
}

func (u *Uniformity) applyGrid(t *wml.Table) TableStats {
	var stats TableStats
	for ri, row := range t.Rows {
		for _, cell := range row.Cells {
			shading := ResolveShading(cell, u.log)
			if ri > 0 && !shading.Shaded {
				stats.Changes += u.normalizeFont(cell)
				continue
			}
			if !u.isPreserved(shading.Fill) && cell.SetFill(u.opts.OtherFill) {
				stats.Recolored++
				stats.Changes++
			}
			stats.Changes += u.emphasize(cell)
		}
	}
	return stats
}

// emphasize applies header treatment: font, bold, centering and spacing.
// List items keep their bold and alignment.
func (u *Uniformity) emphasize(cell *wml.Cell) int {
	changes := 0
	for _, p := range cell.Paragraphs() {
		listItem := u.isListItem(p)
		for _, r := range p.Runs() {
			if r.SetFont(u.opts.BodyFont, u.opts.BodySize) {
				changes++
			}
			if !listItem && !u.opts.PreserveBold && r.SetBold(true) {
				changes++
			}
		}
		if !listItem && p.SetAlignment("center") {
			changes++
		}
		if p.SetSpacing(u.opts.Spacing) {
			changes++
		}
	}
	return changes
}

// normalizeFont sets body font and size on an unshaded data cell, leaving
// list items and cells with images untouched.
func (u *Uniformity) normalizeFont(cell *wml.Cell) int {
	if cell.HasImage() {
		return 0
	}
	changes := 0
	for _, p := range cell.Paragraphs() {
		if u.isListItem(p) {
			continue
		}
		for _, r := range p.Runs() {
			if r.SetFont(u.opts.BodyFont, u.opts.BodySize) {
				changes++
			}
		}
	}
	return changes
}

func (u *Uniformity) isListItem(p *wml.Paragraph) bool {
	return p.HasNumbering() || (u.opts.ListStyle != "" && wml.SameStyle(p.Style, u.opts.ListStyle))
}

func (u *Uniformity) isPreserved(fill string) bool {
	return fill != "" && u.opts.Preserved != nil && u.opts.Preserved(fill)
}
