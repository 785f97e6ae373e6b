package tables

import (
	"errors"
	"testing"

	"github.com/ItMeDiaTech/Documentation-Hub-sub002/wml"
)

func TestIsExcluded(t *testing.T) {
	nested := semanticTable("FFC000", 1, 1, "")
	nested.Rows[1].Cells[0].Content = append(nested.Rows[1].Cells[0].Content,
		wml.NewTable(row(cell("", "inner"))))

	floating := semanticTable("FFC000", 1, 1, "")
	floating.Floating = true

	tests := []struct {
		name       string
		table      *wml.Table
		want       bool
		wantReason string
	}{
		{"plain", semanticTable("FFC000", 2, 2, ""), false, ""},
		{"floating", floating, true, ReasonFloating},
		{"nested", nested, true, ReasonNested},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, reason := IsExcluded(tt.table)
			if got != tt.want || reason != tt.wantReason {
				t.Errorf("IsExcluded() = (%v, %q), want (%v, %q)", got, reason, tt.want, tt.wantReason)
			}
		})
	}
}

func TestCheckWellFormed(t *testing.T) {
	if err := CheckWellFormed(semanticTable("FFC000", 2, 2, "")); err != nil {
		t.Errorf("CheckWellFormed() = %v, want nil", err)
	}
	bad := wml.NewTable(row(cell("", "a"), nil))
	if err := CheckWellFormed(bad); !errors.Is(err, ErrMalformedTable) {
		t.Errorf("CheckWellFormed() = %v, want ErrMalformedTable", err)
	}
	badRow := wml.NewTable(nil)
	if err := CheckWellFormed(badRow); !errors.Is(err, ErrMalformedTable) {
		t.Errorf("CheckWellFormed() = %v, want ErrMalformedTable", err)
	}
}
