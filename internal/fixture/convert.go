package fixture

import (
	"fmt"

	"github.com/ItMeDiaTech/Documentation-Hub-sub002/wml"
)

// Document builds the object model described by f.
func (f *File) Document() (*wml.Document, error) {
	doc := &wml.Document{}

	if f.Numbering != nil {
		store := wml.NewNumberingStore()
		for _, a := range f.Numbering.Abstracts {
			abstract := &wml.AbstractNum{ID: a.ID}
			for _, l := range a.Levels {
				abstract.Levels = append(abstract.Levels, l.level())
			}
			store.AddAbstract(abstract)
		}
		for _, n := range f.Numbering.Nums {
			if err := store.AddNum(n.ID, n.Abstract); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
			}
		}
		doc.Numbering = store
	}

	for style, ref := range f.StyleNumbering {
		doc.SetStyleNumbering(style, wml.NumberingRef{NumID: ref.NumID, Level: ref.Level})
	}

	body, err := elements(f.Body, "body")
	if err != nil {
		return nil, err
	}
	doc.Body = body
	return doc, nil
}

func (l Level) level() *wml.Level {
	lvl := &wml.Level{
		Index:  l.Index,
		Format: l.Format,
		Text:   l.Text,
		Start:  l.Start,
		Run:    wml.RunProps{Font: l.Font, Size: l.Size, Color: l.Color},
	}
	if l.Bold != nil {
		b := *l.Bold
		lvl.Run.Bold = &b
	}
	if l.Indent != nil {
		lvl.Indent = l.Indent.indent()
	}
	return lvl
}

func elements(in []Element, path string) ([]wml.BodyElement, error) {
	out := make([]wml.BodyElement, 0, len(in))
	for i, el := range in {
		at := fmt.Sprintf("%s[%d]", path, i)
		switch {
		case el.Paragraph != nil && el.Table != nil:
			return nil, fmt.Errorf("%w: %s: both paragraph and table set", ErrInvalid, at)
		case el.Paragraph != nil:
			out = append(out, el.Paragraph.paragraph())
		case el.Table != nil:
			t, err := el.Table.table(at)
			if err != nil {
				return nil, err
			}
			out = append(out, t)
		default:
			return nil, fmt.Errorf("%w: %s: empty element", ErrInvalid, at)
		}
	}
	return out, nil
}

func (p *Paragraph) paragraph() *wml.Paragraph {
	para := &wml.Paragraph{Style: p.Style, Alignment: p.Alignment}
	if p.Numbering != nil {
		para.Numbering = &wml.NumberingRef{NumID: p.Numbering.NumID, Level: p.Numbering.Level}
	}
	if p.Indent != nil {
		ind := p.Indent.indent()
		para.Indent = &ind
	}
	if p.Spacing != nil {
		para.Spacing = &wml.Spacing{Before: p.Spacing.Before, After: p.Spacing.After}
	}
	for _, in := range p.Runs {
		if in.Hyperlink != nil {
			h := &wml.Hyperlink{Target: in.Hyperlink.Target, Anchor: in.Hyperlink.Anchor}
			for _, r := range in.Hyperlink.Runs {
				h.Runs = append(h.Runs, r.run())
			}
			para.Append(h)
			continue
		}
		para.Append(in.Run.run())
	}
	return para
}

func (r Run) run() *wml.Run {
	return &wml.Run{
		Text:      r.Text,
		CharStyle: r.CharStyle,
		Font:      r.Font,
		Size:      r.Size,
		Bold:      r.Bold,
		Italic:    r.Italic,
		Color:     r.Color,
		Underline: r.Underline,
		Image:     r.Image,
	}
}

func (t *Table) table(path string) (*wml.Table, error) {
	table := &wml.Table{Style: t.Style, Floating: t.Floating}
	if t.Borders != nil {
		table.Borders = t.Borders.borders()
	}
	for ri, r := range t.Rows {
		row := &wml.Row{Header: r.Header}
		for ci, c := range r.Cells {
			content, err := elements(c.Content, fmt.Sprintf("%s.rows[%d].cells[%d]", path, ri, ci))
			if err != nil {
				return nil, err
			}
			cell := &wml.Cell{Content: content, GridSpan: c.GridSpan, Width: c.Width}
			if c.Shading != nil {
				cell.Shading = &wml.Shading{Pattern: c.Shading.Pattern, Color: c.Shading.Color, Fill: c.Shading.Fill}
			}
			if c.Margins != nil {
				cell.Margins = &wml.Margins{Top: c.Margins.Top, Bottom: c.Margins.Bottom, Left: c.Margins.Left, Right: c.Margins.Right}
			}
			if c.Borders != nil {
				cell.Borders = c.Borders.borders()
			}
			row.Cells = append(row.Cells, cell)
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

func (i Indent) indent() wml.Indent {
	return wml.Indent{Left: i.Left, Hanging: i.Hanging, FirstLine: i.FirstLine}
}

func (b *Borders) borders() wml.Borders {
	side := func(x *Border) *wml.Border {
		if x == nil {
			return nil
		}
		return &wml.Border{Style: x.Style, Size: x.Size, Color: x.Color}
	}
	return wml.Borders{
		Top:     side(b.Top),
		Bottom:  side(b.Bottom),
		Left:    side(b.Left),
		Right:   side(b.Right),
		InsideH: side(b.InsideH),
		InsideV: side(b.InsideV),
	}
}

// FromDocument serializes doc.
func FromDocument(doc *wml.Document) *File {
	f := &File{}
	if doc.Numbering != nil {
		n := &Numbering{}
		for _, a := range doc.Numbering.Abstracts() {
			abstract := Abstract{ID: a.ID}
			for _, l := range a.Levels {
				abstract.Levels = append(abstract.Levels, fromLevel(l))
			}
			n.Abstracts = append(n.Abstracts, abstract)
		}
		for _, id := range doc.Numbering.NumIDs() {
			abstractID, _ := doc.Numbering.AbstractID(id)
			n.Nums = append(n.Nums, Num{ID: id, Abstract: abstractID})
		}
		f.Numbering = n
	}
	if len(doc.StyleNumbering) > 0 {
		f.StyleNumbering = make(map[string]NumberingRef, len(doc.StyleNumbering))
		for style, ref := range doc.StyleNumbering {
			f.StyleNumbering[style] = NumberingRef{NumID: ref.NumID, Level: ref.Level}
		}
	}
	f.Body = fromElements(doc.Body)
	return f
}

func fromLevel(l *wml.Level) Level {
	out := Level{
		Index:  l.Index,
		Format: l.Format,
		Text:   l.Text,
		Start:  l.Start,
		Font:   l.Run.Font,
		Size:   l.Run.Size,
		Color:  l.Run.Color,
	}
	if l.Run.Bold != nil {
		b := *l.Run.Bold
		out.Bold = &b
	}
	if l.Indent != (wml.Indent{}) {
		out.Indent = fromIndent(l.Indent)
	}
	return out
}

func fromIndent(i wml.Indent) *Indent {
	return &Indent{Left: i.Left, Hanging: i.Hanging, FirstLine: i.FirstLine}
}

func fromElements(in []wml.BodyElement) []Element {
	out := make([]Element, 0, len(in))
	for _, el := range in {
		switch v := el.(type) {
		case *wml.Paragraph:
			out = append(out, Element{Paragraph: fromParagraph(v)})
		case *wml.Table:
			out = append(out, Element{Table: fromTable(v)})
		}
	}
	return out
}

func fromParagraph(p *wml.Paragraph) *Paragraph {
	out := &Paragraph{Style: p.Style, Alignment: p.Alignment}
	if p.Numbering != nil {
		out.Numbering = &NumberingRef{NumID: p.Numbering.NumID, Level: p.Numbering.Level}
	}
	if p.Indent != nil {
		out.Indent = fromIndent(*p.Indent)
	}
	if p.Spacing != nil {
		out.Spacing = &Spacing{Before: p.Spacing.Before, After: p.Spacing.After}
	}
	for _, c := range p.Content {
		switch v := c.(type) {
		case *wml.Run:
			out.Runs = append(out.Runs, Inline{Run: fromRun(v)})
		case *wml.Hyperlink:
			h := &Hyperlink{Target: v.Target, Anchor: v.Anchor}
			for _, r := range v.Runs {
				h.Runs = append(h.Runs, fromRun(r))
			}
			out.Runs = append(out.Runs, Inline{Hyperlink: h})
		}
	}
	return out
}

func fromRun(r *wml.Run) Run {
	return Run{
		Text:      r.Text,
		CharStyle: r.CharStyle,
		Font:      r.Font,
		Size:      r.Size,
		Bold:      r.Bold,
		Italic:    r.Italic,
		Color:     r.Color,
		Underline: r.Underline,
		Image:     r.Image,
	}
}

func fromTable(t *wml.Table) *Table {
	out := &Table{Style: t.Style, Floating: t.Floating}
	if t.Borders != (wml.Borders{}) {
		out.Borders = fromBorders(t.Borders)
	}
	for _, r := range t.Rows {
		row := Row{Header: r.Header}
		for _, c := range r.Cells {
			cell := Cell{GridSpan: c.GridSpan, Width: c.Width, Content: fromElements(c.Content)}
			if c.Shading != nil {
				cell.Shading = &Shading{Pattern: c.Shading.Pattern, Color: c.Shading.Color, Fill: c.Shading.Fill}
			}
			if c.Margins != nil {
				cell.Margins = &Margins{Top: c.Margins.Top, Bottom: c.Margins.Bottom, Left: c.Margins.Left, Right: c.Margins.Right}
			}
			if c.Borders != (wml.Borders{}) {
				cell.Borders = fromBorders(c.Borders)
			}
			row.Cells = append(row.Cells, cell)
		}
		out.Rows = append(out.Rows, row)
	}
	return out
}

func fromBorders(b wml.Borders) *Borders {
	side := func(x *wml.Border) *Border {
		if x == nil {
			return nil
		}
		return &Border{Style: x.Style, Size: x.Size, Color: x.Color}
	}
	return &Borders{
		Top:     side(b.Top),
		Bottom:  side(b.Bottom),
		Left:    side(b.Left),
		Right:   side(b.Right),
		InsideH: side(b.InsideH),
		InsideV: side(b.InsideV),
	}
}
