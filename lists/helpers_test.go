package lists

import "github.com/ItMeDiaTech/Documentation-Hub-sub002/wml"

func numbered(numID, level int, text string) *wml.Paragraph {
	p := wml.NewParagraph("ListParagraph", wml.NewRun(text))
	p.Numbering = &wml.NumberingRef{NumID: numID, Level: level}
	return p
}

func listPara(text string) *wml.Paragraph {
	return wml.NewParagraph("ListParagraph", wml.NewRun(text))
}

func normal(text string) *wml.Paragraph {
	return wml.NewParagraph("Normal", wml.NewRun(text))
}

// testStore defines numIds 33 and 34 on a decimal outline, 44 on bullets.
func testStore() *wml.NumberingStore {
	s := wml.NewNumberingStore()
	s.AddAbstract(wml.NewDecimalAbstract(1, 3))
	s.AddAbstract(wml.NewBulletAbstract(2, 3))
	_ = s.AddNum(33, 1)
	_ = s.AddNum(34, 1)
	_ = s.AddNum(44, 2)
	return s
}

// processTable builds a header row over one data row per cell.
func processTable(cells ...*wml.Cell) *wml.Table {
	header := wml.NewCell(normal("High Level Process"))
	header.SetFill("FFC000")
	t := wml.NewTable(wml.NewRow(header))
	for _, c := range cells {
		t.Rows = append(t.Rows, wml.NewRow(c))
	}
	return t
}
