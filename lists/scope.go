package lists

import (
	"github.com/ItMeDiaTech/Documentation-Hub-sub002/tables"
	"github.com/ItMeDiaTech/Documentation-Hub-sub002/wml"
)

// ContentCells returns the data-row cells that hold list content, row by
// row. The header row is never content, and neither is the last cell of a
// row when the table has a secondary notes column.
func ContentCells(t *wml.Table, cls tables.Classification) []*wml.Cell {
	var cells []*wml.Cell
	for ri, row := range t.Rows {
		if ri == 0 {
			continue
		}
		for ci, cell := range row.Cells {
			if cls.HasSecondaryColumn && len(row.Cells) > 1 && ci == len(row.Cells)-1 {
				continue
			}
			cells = append(cells, cell)
		}
	}
	return cells
}

// ContentParagraphs returns the paragraphs of ContentCells.
func ContentParagraphs(t *wml.Table, cls tables.Classification) []*wml.Paragraph {
	var paras []*wml.Paragraph
	for _, c := range ContentCells(t, cls) {
		paras = append(paras, c.Paragraphs()...)
	}
	return paras
}

// convertToNormal moves a list-styled paragraph without explicit numbering
// to the normal style, keeping its direct indentation.
func convertToNormal(p *wml.Paragraph, listStyle, normalStyle string) bool {
	if p.HasNumbering() || !wml.SameStyle(p.Style, listStyle) {
		return false
	}
	var indent *wml.Indent
	if p.Indent != nil {
		v := *p.Indent
		indent = &v
	}
	p.SetStyle(normalStyle)
	p.Indent = indent
	return true
}
