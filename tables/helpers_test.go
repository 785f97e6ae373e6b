package tables

import "github.com/ItMeDiaTech/Documentation-Hub-sub002/wml"

// cell builds a cell with one Normal paragraph per text.
func cell(fill string, texts ...string) *wml.Cell {
	c := wml.NewCell()
	for _, text := range texts {
		c.Content = append(c.Content, wml.NewParagraph("Normal", wml.NewRun(text)))
	}
	if fill != "" {
		c.Shading = &wml.Shading{Pattern: "clear", Color: "auto", Fill: fill}
	}
	return c
}

func row(cells ...*wml.Cell) *wml.Row { return wml.NewRow(cells...) }

// semanticTable builds a header row plus data rows; every data row gets
// one cell per column, with the last cell filled with lastFill.
func semanticTable(headerFill string, dataRows, columns int, lastFill string) *wml.Table {
	t := wml.NewTable(row(cell(headerFill, "High Level Process")))
	for i := 0; i < dataRows; i++ {
		r := wml.NewRow()
		for c := 0; c < columns; c++ {
			fill := ""
			if c == columns-1 && columns > 1 {
				fill = lastFill
			}
			r.Cells = append(r.Cells, cell(fill, "step"))
		}
		t.Rows = append(t.Rows, r)
	}
	return t
}
