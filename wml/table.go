package wml

import "strings"

// Border styles.
const (
	BorderNil    = "nil" // explicitly no border
	BorderSingle = "single"
)

// Table is an ordered set of rows.
type Table struct {
	Style    string
	Rows     []*Row
	Floating bool // positioned independently of the text flow (tblpPr)
	Borders  Borders
}

// NewTable creates a table from rows.
func NewTable(rows ...*Row) *Table {
	return &Table{Rows: rows}
}

// RowCount returns the number of rows.
func (t *Table) RowCount() int {
	return len(t.Rows)
}

// Cell returns the cell at the given row and cell index, or nil.
func (t *Table) Cell(row, col int) *Cell {
	if row < 0 || row >= len(t.Rows) {
		return nil
	}
	return t.Rows[row].Cell(col)
}

// IsSingleCell reports whether the table is 1×1.
func (t *Table) IsSingleCell() bool {
	return len(t.Rows) == 1 && len(t.Rows[0].Cells) == 1
}

// HasNestedTables reports whether any cell contains a table.
func (t *Table) HasNestedTables() bool {
	for _, row := range t.Rows {
		for _, cell := range row.Cells {
			if len(cell.Tables()) > 0 {
				return true
			}
		}
	}
	return false
}

// Paragraphs returns the paragraphs of every cell, row by row.
func (t *Table) Paragraphs() []*Paragraph {
	var paras []*Paragraph
	walkElements([]BodyElement{t}, func(p *Paragraph) {
		paras = append(paras, p)
	})
	return paras
}

// SetBorders replaces the table-level borders and reports whether they changed.
func (t *Table) SetBorders(b Borders) bool {
	if t.Borders.Equal(b) {
		return false
	}
	t.Borders = b.clone()
	return true
}

// Text returns a tab/newline separated rendering of the table.
func (t *Table) Text() string {
	var sb strings.Builder
	for i, row := range t.Rows {
		if i > 0 {
			sb.WriteString("\n")
		}
		for j, cell := range row.Cells {
			if j > 0 {
				sb.WriteString("\t")
			}
			sb.WriteString(strings.ReplaceAll(cell.Text(), "\n", " "))
		}
	}
	return sb.String()
}

// Row is an ordered sequence of cells.
type Row struct {
	Cells  []*Cell
	Header bool // repeats as header row (tblHeader)
}

// NewRow creates a row from cells.
func NewRow(cells ...*Cell) *Row {
	return &Row{Cells: cells}
}

// Cell returns the cell at index i, or nil.
func (r *Row) Cell(i int) *Cell {
	if i < 0 || i >= len(r.Cells) {
		return nil
	}
	return r.Cells[i]
}

// LastCell returns the last cell of the row, or nil for an empty row.
func (r *Row) LastCell() *Cell {
	if len(r.Cells) == 0 {
		return nil
	}
	return r.Cells[len(r.Cells)-1]
}

// Cell is a table cell holding paragraphs and possibly nested tables.
type Cell struct {
	Content  []BodyElement
	Shading  *Shading
	Margins  *Margins
	Borders  Borders
	GridSpan int     // grid columns spanned; 0 or 1 means one column
	Width    float64 // points, 0 = auto
}

// NewCell creates a cell from body elements.
func NewCell(content ...BodyElement) *Cell {
	return &Cell{Content: content}
}

// Paragraphs returns the direct paragraphs of the cell.
func (c *Cell) Paragraphs() []*Paragraph {
	var paras []*Paragraph
	for _, el := range c.Content {
		if p, ok := el.(*Paragraph); ok {
			paras = append(paras, p)
		}
	}
	return paras
}

// Tables returns the nested tables of the cell.
func (c *Cell) Tables() []*Table {
	var tables []*Table
	for _, el := range c.Content {
		if t, ok := el.(*Table); ok {
			tables = append(tables, t)
		}
	}
	return tables
}

// InsertBefore inserts el before the element at index i.
func (c *Cell) InsertBefore(i int, el BodyElement) {
	if i < 0 {
		i = 0
	}
	if i >= len(c.Content) {
		c.Content = append(c.Content, el)
		return
	}
	c.Content = append(c.Content[:i+1], c.Content[i:]...)
	c.Content[i] = el
}

// Span returns the number of grid columns the cell covers.
func (c *Cell) Span() int {
	if c.GridSpan < 1 {
		return 1
	}
	return c.GridSpan
}

// Fill returns the normalized direct fill color, or "" when unset.
func (c *Cell) Fill() string {
	if c.Shading == nil {
		return ""
	}
	return NormalizeColor(c.Shading.Fill)
}

// SetFill sets a solid fill and reports whether the fill changed.
func (c *Cell) SetFill(color string) bool {
	color = NormalizeColor(color)
	if c.Shading != nil && NormalizeColor(c.Shading.Fill) == color {
		return false
	}
	c.Shading = &Shading{Pattern: "clear", Color: ColorAuto, Fill: color}
	return true
}

// SetMargins replaces the cell margins and reports whether they changed.
func (c *Cell) SetMargins(m Margins) bool {
	if c.Margins != nil && *c.Margins == m {
		return false
	}
	c.Margins = &Margins{Top: m.Top, Bottom: m.Bottom, Left: m.Left, Right: m.Right}
	return true
}

// SetBorders replaces the cell borders and reports whether they changed.
func (c *Cell) SetBorders(b Borders) bool {
	if c.Borders.Equal(b) {
		return false
	}
	c.Borders = b.clone()
	return true
}

// Text returns the non-empty paragraph texts joined by newlines.
func (c *Cell) Text() string {
	var parts []string
	for _, p := range c.Paragraphs() {
		if text := p.Text(); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "\n")
}

// HasImage reports whether any paragraph of the cell holds a drawing.
func (c *Cell) HasImage() bool {
	for _, p := range c.Paragraphs() {
		if p.HasImage() {
			return true
		}
	}
	return false
}

// Shading is a cell background.
type Shading struct {
	Pattern string // clear, solid, ...
	Color   string // pattern color
	Fill    string // background color
}

// Margins holds cell margins in points.
type Margins struct {
	Top    float64
	Bottom float64
	Left   float64
	Right  float64
}

// Border is a single border line.
type Border struct {
	Style string // single, double, nil, ...
	Size  int    // eighths of a point
	Color string
}

// Visible reports whether the border draws a line.
func (b *Border) Visible() bool {
	return b != nil && b.Style != "" && b.Style != BorderNil && b.Style != "none"
}

// Equal reports whether two borders are the same, comparing colors
// case-insensitively.
func (b *Border) Equal(o *Border) bool {
	if b == nil || o == nil {
		return b == o
	}
	return b.Style == o.Style && b.Size == o.Size && NormalizeColor(b.Color) == NormalizeColor(o.Color)
}

// Borders holds the per-side borders of a table or cell. A nil side is unset
// and inherits from the table style.
type Borders struct {
	Top     *Border
	Bottom  *Border
	Left    *Border
	Right   *Border
	InsideH *Border
	InsideV *Border
}

// NoBorders returns borders with every side explicitly switched off.
func NoBorders() Borders {
	return Borders{
		Top:     &Border{Style: BorderNil},
		Bottom:  &Border{Style: BorderNil},
		Left:    &Border{Style: BorderNil},
		Right:   &Border{Style: BorderNil},
		InsideH: &Border{Style: BorderNil},
		InsideV: &Border{Style: BorderNil},
	}
}

// Visible reports whether any side draws a line.
func (b Borders) Visible() bool {
	return b.Top.Visible() || b.Bottom.Visible() || b.Left.Visible() ||
		b.Right.Visible() || b.InsideH.Visible() || b.InsideV.Visible()
}

// Equal reports whether every side matches.
func (b Borders) Equal(o Borders) bool {
	return b.Top.Equal(o.Top) && b.Bottom.Equal(o.Bottom) && b.Left.Equal(o.Left) &&
		b.Right.Equal(o.Right) && b.InsideH.Equal(o.InsideH) && b.InsideV.Equal(o.InsideV)
}

func (b Borders) clone() Borders {
	cp := func(x *Border) *Border {
		if x == nil {
			return nil
		}
		v := *x
		return &v
	}
	return Borders{
		Top:     cp(b.Top),
		Bottom:  cp(b.Bottom),
		Left:    cp(b.Left),
		Right:   cp(b.Right),
		InsideH: cp(b.InsideH),
		InsideV: cp(b.InsideV),
	}
}
