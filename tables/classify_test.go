package tables

import (
	"testing"

	"github.com/ItMeDiaTech/Documentation-Hub-sub002/wml"
)

func TestClassify(t *testing.T) {
	opts := ClassifyOptions{HeaderFill: "FFC000", SecondaryFill: "DEEAF6"}

	spanning := semanticTable("FFC000", 2, 2, "DEEAF6")
	spanning.Rows[0].Cells[0].GridSpan = 2

	tests := []struct {
		name          string
		table         *wml.Table
		wantMatch     bool
		wantVariant   Variant
		wantColumns   int
		wantSecondary bool
	}{
		{"single column", semanticTable("FFC000", 3, 1, ""), true, VariantSingleColumn, 1, false},
		{"two column", semanticTable("FFC000", 3, 2, ""), true, VariantTwoColumn, 2, false},
		{"two column secondary", semanticTable("FFC000", 3, 2, "DEEAF6"), true, VariantTwoColumn, 2, true},
		{"lower case fill", semanticTable("ffc000", 1, 2, "deeaf6"), true, VariantTwoColumn, 2, true},
		{"spanning header", spanning, true, VariantTwoColumn, 2, true},
		{"wrong color", semanticTable("FFC001", 3, 1, ""), false, VariantNone, 0, false},
		{"no fill", semanticTable("", 3, 1, ""), false, VariantNone, 0, false},
		{"header only", wml.NewTable(row(cell("FFC000", "High Level Process"))), false, VariantNone, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.table, opts)
			if got.IsMatch != tt.wantMatch {
				t.Fatalf("IsMatch = %v, want %v", got.IsMatch, tt.wantMatch)
			}
			if got.Variant != tt.wantVariant {
				t.Errorf("Variant = %q, want %q", got.Variant, tt.wantVariant)
			}
			if got.ColumnCount != tt.wantColumns {
				t.Errorf("ColumnCount = %d, want %d", got.ColumnCount, tt.wantColumns)
			}
			if got.HasSecondaryColumn != tt.wantSecondary {
				t.Errorf("HasSecondaryColumn = %v, want %v", got.HasSecondaryColumn, tt.wantSecondary)
			}
			if got.RowCount != len(tt.table.Rows) {
				t.Errorf("RowCount = %d, want %d", got.RowCount, len(tt.table.Rows))
			}
		})
	}
}

func TestClassify_HeaderFields(t *testing.T) {
	tbl := semanticTable("FFC000", 1, 2, "")
	tbl.Rows[0].Cells[0] = cell("FFC000", "  High Level Process ")
	tbl.Rows[0].Cells[0].GridSpan = 2

	got := Classify(tbl, ClassifyOptions{HeaderFill: "FFC000"})
	if got.HeaderText != "High Level Process" {
		t.Errorf("HeaderText = %q, want %q", got.HeaderText, "High Level Process")
	}
	if got.HeaderSpan != 2 {
		t.Errorf("HeaderSpan = %d, want 2", got.HeaderSpan)
	}
}

func TestClassify_HeaderLabel(t *testing.T) {
	tests := []struct {
		name   string
		header string
		label  string
		fold   bool
		want   bool
	}{
		{"exact", "High Level Process", "High Level Process", false, true},
		{"extra spaces", "High  Level\tProcess", "High Level Process", false, true},
		{"case differs", "HIGH LEVEL PROCESS", "High Level Process", false, false},
		{"case folded", "HIGH LEVEL PROCESS", "High Level Process", true, true},
		{"other text", "Contacts", "High Level Process", true, false},
		{"composed accents", "Procédure", "Procédure", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := semanticTable("FFC000", 2, 1, "")
			tbl.Rows[0].Cells[0] = cell("FFC000", tt.header)
			got := Classify(tbl, ClassifyOptions{HeaderFill: "FFC000", HeaderLabel: tt.label, FoldCase: tt.fold})
			if got.IsMatch != tt.want {
				t.Errorf("IsMatch = %v, want %v", got.IsMatch, tt.want)
			}
		})
	}
}

func TestClassify_CorrectTextWrongColor(t *testing.T) {
	tbl := semanticTable("BFBFBF", 3, 1, "")
	got := Classify(tbl, ClassifyOptions{HeaderFill: "FFC000", HeaderLabel: "High Level Process"})
	if got.IsMatch {
		t.Error("table with matching header text but wrong color classified as a match")
	}
}
