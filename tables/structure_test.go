package tables

import (
	"errors"
	"testing"

	"github.com/ItMeDiaTech/Documentation-Hub-sub002/wml"
)

func testFormatter() *Formatter {
	return NewFormatter(FormatterOptions{
		HeaderFill:    "FFC000",
		SecondaryFill: "DEEAF6",
		HeadingStyle:  "Heading2",
	})
}

func classifyTest(tbl *wml.Table) Classification {
	return Classify(tbl, ClassifyOptions{HeaderFill: "FFC000", SecondaryFill: "DEEAF6"})
}

func TestFormatter_SingleColumn(t *testing.T) {
	tbl := semanticTable("FFC000", 3, 1, "")
	header := tbl.Rows[0].Cells[0]
	header.Margins = &wml.Margins{Top: 5, Bottom: 5, Left: 4, Right: 4}
	header.Paragraphs()[0].Indent = &wml.Indent{Left: 6}

	stats, err := testFormatter().Apply(tbl, classifyTest(tbl))
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if !stats.TableBorders {
		t.Error("TableBorders = false, want true")
	}

	for name, b := range map[string]*wml.Border{
		"top": tbl.Borders.Top, "bottom": tbl.Borders.Bottom,
		"left": tbl.Borders.Left, "right": tbl.Borders.Right,
	} {
		if !b.Visible() || b.Color != "FFC000" {
			t.Errorf("%s border = %+v, want visible FFC000", name, b)
		}
	}
	if tbl.Borders.InsideH.Visible() || tbl.Borders.InsideV.Visible() {
		t.Error("single-column table has interior borders")
	}

	p := header.Paragraphs()[0]
	if p.Style != "Heading2" {
		t.Errorf("header Style = %q, want Heading2", p.Style)
	}
	if p.Indent == nil || p.Indent.Left != 6 {
		t.Errorf("header Indent = %+v, want Left 6 kept", p.Indent)
	}
	want := wml.Margins{Left: 4, Right: 4}
	if header.Margins == nil || *header.Margins != want {
		t.Errorf("header Margins = %+v, want %+v", header.Margins, want)
	}
	for _, r := range tbl.Rows[1:] {
		if r.Cells[0].Borders.Visible() {
			t.Error("single-column data cell got cell borders")
		}
	}
}

func TestFormatter_TwoColumn(t *testing.T) {
	tbl := semanticTable("FFC000", 3, 2, "DEEAF6")
	tbl.Borders = wml.Borders{Top: &wml.Border{Style: wml.BorderSingle, Size: 4, Color: "000000"}}
	tbl.Rows[2].Cells[1].SetFill("FFFFFF")

	cls := classifyTest(tbl)
	if cls.Variant != VariantTwoColumn || !cls.HasSecondaryColumn {
		t.Fatalf("Classify() = %+v, want two-column with secondary column", cls)
	}
	stats, err := testFormatter().Apply(tbl, cls)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	if tbl.Borders.Visible() {
		t.Errorf("table-level borders = %+v, want cleared", tbl.Borders)
	}
	for i, r := range tbl.Rows[1:] {
		if got := r.LastCell().Fill(); got != "DEEAF6" {
			t.Errorf("data row %d last cell Fill() = %q, want DEEAF6", i+1, got)
		}
	}
	if stats.SecondaryCells != 1 {
		t.Errorf("SecondaryCells = %d, want 1", stats.SecondaryCells)
	}

	last := len(tbl.Rows) - 1
	for ri, r := range tbl.Rows {
		first := r.Cells[0]
		if !first.Borders.Left.Visible() || first.Borders.Left.Color != "FFC000" {
			t.Errorf("row %d first cell left border = %+v, want FFC000", ri, first.Borders.Left)
		}
		lastCell := r.LastCell()
		if !lastCell.Borders.Right.Visible() {
			t.Errorf("row %d last cell has no right border", ri)
		}
		if ri == last && !first.Borders.Bottom.Visible() {
			t.Error("last row has no bottom border")
		}
		if ri < last && first.Borders.Bottom.Visible() {
			t.Errorf("row %d has a bottom border", ri)
		}
	}
	if tbl.Rows[1].Cells[0].Borders.Right.Visible() {
		t.Error("left column got a right border")
	}
}

func TestFormatter_NotClassified(t *testing.T) {
	tbl := semanticTable("BFBFBF", 2, 1, "")
	_, err := testFormatter().Apply(tbl, classifyTest(tbl))
	if !errors.Is(err, ErrNotClassified) {
		t.Errorf("Apply() error = %v, want ErrNotClassified", err)
	}
	if tbl.Borders.Visible() {
		t.Error("unclassified table was modified")
	}
}

func TestFormatter_Idempotent(t *testing.T) {
	for _, columns := range []int{1, 2} {
		tbl := semanticTable("FFC000", 3, columns, "DEEAF6")
		f := testFormatter()
		if _, err := f.Apply(tbl, classifyTest(tbl)); err != nil {
			t.Fatalf("first Apply() error = %v", err)
		}
		stats, err := f.Apply(tbl, classifyTest(tbl))
		if err != nil {
			t.Fatalf("second Apply() error = %v", err)
		}
		if stats.Changed() {
			t.Errorf("%d columns: second Apply() = %+v, want no changes", columns, stats)
		}
	}
}

func TestFormatter_HeaderStyleNameVariants(t *testing.T) {
	tbl := semanticTable("FFC000", 2, 1, "")
	p := tbl.Rows[0].Cells[0].Paragraphs()[0]
	p.Style = "Heading 2"

	if n := testFormatter().StyleHeaderParagraphs(tbl); n != 0 {
		t.Errorf("StyleHeaderParagraphs() = %d, want 0 for an equivalent style name", n)
	}
	if p.Style != "Heading 2" {
		t.Errorf("Style = %q, want it left as %q", p.Style, "Heading 2")
	}
}
