package lists

import (
	"testing"

	"github.com/ItMeDiaTech/Documentation-Hub-sub002/tables"
	"github.com/ItMeDiaTech/Documentation-Hub-sub002/wml"
)

func testReconciler() *Reconciler {
	return NewReconciler(Options{
		ListStyle:   "ListParagraph",
		NormalStyle: "Normal",
		BodyFont:    "Verdana",
		BodySize:    12,
	})
}

func TestReconciler_ConvertAndAssign(t *testing.T) {
	var mains []*wml.Paragraph
	var cells []*wml.Cell
	for i := 0; i < 3; i++ {
		main := listPara("main")
		main.Indent = &wml.Indent{Left: 18}
		mains = append(mains, main)
		cells = append(cells, wml.NewCell(main, numbered(33, 1, "sub")))
	}
	tbl := processTable(cells...)
	cls := tables.Classification{IsMatch: true, Variant: tables.VariantSingleColumn}

	ch := testReconciler().ConvertAndAssign(tbl, cls, 33)

	if ch.Converted != 3 || ch.Numbered != 3 {
		t.Errorf("Changes = %+v, want 3 converted and 3 numbered", ch)
	}
	if ch.Normalized != 3 {
		t.Errorf("Normalized = %d, want 3 sub-item runs", ch.Normalized)
	}
	for i, p := range mains {
		if p.Style != "Normal" {
			t.Errorf("main %d Style = %q, want Normal", i, p.Style)
		}
		if p.Numbering == nil || *p.Numbering != (wml.NumberingRef{NumID: 33, Level: 0}) {
			t.Errorf("main %d Numbering = %+v, want {33 0}", i, p.Numbering)
		}
		if p.Indent == nil || p.Indent.Left != 18 {
			t.Errorf("main %d Indent = %+v, want Left 18 kept", i, p.Indent)
		}
	}
	for i, c := range cells {
		sub := c.Paragraphs()[1]
		if *sub.Numbering != (wml.NumberingRef{NumID: 33, Level: 1}) {
			t.Errorf("sub %d Numbering = %+v, want unchanged {33 1}", i, sub.Numbering)
		}
		if r := sub.Runs()[0]; r.Font != "Verdana" || r.Size != 12 {
			t.Errorf("sub %d font = %s %v, want Verdana 12", i, r.Font, r.Size)
		}
	}

	again := testReconciler().ConvertAndAssign(tbl, cls, 33)
	if again.Total() != 0 {
		t.Errorf("second ConvertAndAssign() = %+v, want no changes", again)
	}
}

func TestReconciler_OnlyFirstParagraphIsMain(t *testing.T) {
	first, second := listPara("one"), listPara("two")
	tbl := processTable(wml.NewCell(first, second))

	testReconciler().ConvertAndAssign(tbl, tables.Classification{IsMatch: true}, 33)

	if first.Numbering == nil {
		t.Error("first paragraph not numbered")
	}
	if second.Numbering != nil {
		t.Errorf("second paragraph Numbering = %+v, want none", second.Numbering)
	}
	if second.Style != "Normal" {
		t.Errorf("second paragraph Style = %q, want Normal", second.Style)
	}
}

func TestReconciler_NoNumIDConvertsOnly(t *testing.T) {
	main := listPara("main")
	tbl := processTable(wml.NewCell(main))

	ch := testReconciler().ConvertAndAssign(tbl, tables.Classification{IsMatch: true}, 0)

	if ch.Converted != 1 || ch.Numbered != 0 {
		t.Errorf("Changes = %+v, want 1 converted and none numbered", ch)
	}
	if main.Numbering != nil {
		t.Errorf("Numbering = %+v, want none", main.Numbering)
	}
}

func TestReconciler_SkipsHeaderAndSecondaryColumn(t *testing.T) {
	headerItem := listPara("header")
	note := listPara("note")
	main := listPara("main")

	header := wml.NewCell(headerItem)
	tbl := wml.NewTable(
		wml.NewRow(header),
		wml.NewRow(wml.NewCell(main), wml.NewCell(note)),
	)
	cls := tables.Classification{IsMatch: true, Variant: tables.VariantTwoColumn, HasSecondaryColumn: true}

	testReconciler().ConvertAndAssign(tbl, cls, 33)

	if headerItem.Style != "ListParagraph" || note.Style != "ListParagraph" {
		t.Errorf("header %q note %q, want both left as ListParagraph", headerItem.Style, note.Style)
	}
	if main.Numbering == nil {
		t.Error("main item not numbered")
	}
}

func TestContentCells(t *testing.T) {
	tbl := wml.NewTable(
		wml.NewRow(wml.NewCell()),
		wml.NewRow(wml.NewCell(), wml.NewCell()),
		wml.NewRow(wml.NewCell()),
	)
	tests := []struct {
		name string
		cls  tables.Classification
		want int
	}{
		{"all data cells", tables.Classification{}, 3},
		{"secondary column excluded", tables.Classification{HasSecondaryColumn: true}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(ContentCells(tbl, tt.cls)); got != tt.want {
				t.Errorf("len(ContentCells()) = %d, want %d", got, tt.want)
			}
		})
	}
}
