package tables

import (
	"errors"
	"log/slog"

	"github.com/ItMeDiaTech/Documentation-Hub-sub002/logging"
	"github.com/ItMeDiaTech/Documentation-Hub-sub002/wml"
)

// ErrNotClassified is returned when structure is requested for a table
// that did not classify as a recognized shape.
var ErrNotClassified = errors.New("tables: table is not a recognized shape")

// defaultBorderSize is 1.5pt in eighths of a point.
const defaultBorderSize = 12

// FormatterOptions configures the structural formatter.
type FormatterOptions struct {
	HeaderFill    string
	SecondaryFill string
	HeadingStyle  string
	BorderSize    int // eighths of a point
	Logger        *slog.Logger
}

// Formatter applies variant-specific structure to classified tables. Each
// method reports how much it changed, so a second run reports nothing.
type Formatter struct {
	opts FormatterOptions
	log  *slog.Logger
}

// NewFormatter creates a formatter.
func NewFormatter(opts FormatterOptions) *Formatter {
	if opts.BorderSize <= 0 {
		opts.BorderSize = defaultBorderSize
	}
	return &Formatter{opts: opts, log: logging.Or(opts.Logger)}
}

// StructureStats counts what Apply changed.
type StructureStats struct {
	TableBorders   bool
	HeadersStyled  int
	HeaderCells    int
	CellBorders    int
	SecondaryCells int
}

// Changed reports whether any step changed the table.
func (s StructureStats) Changed() bool {
	return s.TableBorders || s.HeadersStyled > 0 || s.HeaderCells > 0 ||
		s.CellBorders > 0 || s.SecondaryCells > 0
}

// Apply runs the structural steps in order: table borders, header paragraph
// style, header cell formatting, data cell borders, secondary shading.
func (f *Formatter) Apply(t *wml.Table, cls Classification) (StructureStats, error) {
	if !cls.IsMatch {
		return StructureStats{}, ErrNotClassified
	}
	if err := CheckWellFormed(t); err != nil {
		return StructureStats{}, err
	}
	var st StructureStats
	st.TableBorders = f.ApplyTableBorders(t, cls)
	st.HeadersStyled = f.StyleHeaderParagraphs(t)
	st.HeaderCells = f.FormatHeaderCells(t)
	st.CellBorders = f.ApplyCellBorders(t, cls)
	st.SecondaryCells = f.ApplySecondaryShading(t, cls)
	return st, nil
}

func (f *Formatter) line() *wml.Border {
	return &wml.Border{Style: wml.BorderSingle, Size: f.opts.BorderSize, Color: wml.NormalizeColor(f.opts.HeaderFill)}
}

// ApplyTableBorders frames a single-column table on all four sides with no
// interior lines, and clears the table-level borders of a two-column table.
func (f *Formatter) ApplyTableBorders(t *wml.Table, cls Classification) bool {
	var b wml.Borders
	switch cls.Variant {
	case VariantSingleColumn:
		b = wml.Borders{
			Top:     f.line(),
			Bottom:  f.line(),
			Left:    f.line(),
			Right:   f.line(),
			InsideH: &wml.Border{Style: wml.BorderNil},
			InsideV: &wml.Border{Style: wml.BorderNil},
		}
	case VariantTwoColumn:
		b = wml.NoBorders()
	default:
		return false
	}
	changed := t.SetBorders(b)
	if changed {
		f.log.Debug("table borders applied", slog.String("variant", string(cls.Variant)))
	}
	return changed
}

// StyleHeaderParagraphs sets every header-row paragraph to the section
// heading style.
func (f *Formatter) StyleHeaderParagraphs(t *wml.Table) int {
	if len(t.Rows) == 0 || f.opts.HeadingStyle == "" {
		return 0
	}
	n := 0
	for _, cell := range t.Rows[0].Cells {
		for _, p := range cell.Paragraphs() {
			if wml.SameStyle(p.Style, f.opts.HeadingStyle) {
				continue
			}
			// Keep the direct indentation SetStyle would reset.
			indent := p.Indent
			p.SetStyle(f.opts.HeadingStyle)
			p.Indent = indent
			n++
		}
	}
	return n
}

// FormatHeaderCells shades every header-row cell with the header color and
// zeroes its top and bottom margins.
func (f *Formatter) FormatHeaderCells(t *wml.Table) int {
	if len(t.Rows) == 0 {
		return 0
	}
	n := 0
	for _, cell := range t.Rows[0].Cells {
		changed := cell.SetFill(f.opts.HeaderFill)
		m := wml.Margins{}
		if cell.Margins != nil {
			m = wml.Margins{Left: cell.Margins.Left, Right: cell.Margins.Right}
		}
		if cell.SetMargins(m) {
			changed = true
		}
		if changed {
			n++
		}
	}
	return n
}

// ApplyCellBorders draws the two-column frame with cell borders: the left
// edge of the first column, the right edge of the last column and the
// bottom edge of the last row, all in the header color.
func (f *Formatter) ApplyCellBorders(t *wml.Table, cls Classification) int {
	if cls.Variant != VariantTwoColumn {
		return 0
	}
	n := 0
	last := len(t.Rows) - 1
	for ri, row := range t.Rows {
		for ci, cell := range row.Cells {
			b := cell.Borders
			if ci == 0 {
				b.Left = f.line()
			}
			if ci == len(row.Cells)-1 {
				b.Right = f.line()
			}
			if ri == last {
				b.Bottom = f.line()
			}
			if cell.SetBorders(b) {
				n++
			}
		}
	}
	return n
}

// ApplySecondaryShading re-asserts the secondary color on the last cell of
// every data row of a two-column table with a secondary column.
func (f *Formatter) ApplySecondaryShading(t *wml.Table, cls Classification) int {
	if cls.Variant != VariantTwoColumn || !cls.HasSecondaryColumn {
		return 0
	}
	n := 0
	for _, row := range t.Rows[1:] {
		if len(row.Cells) < 2 {
			continue
		}
		if row.LastCell().SetFill(f.opts.SecondaryFill) {
			n++
		}
	}
	return n
}
