package lists

import (
	"testing"

	"github.com/ItMeDiaTech/Documentation-Hub-sub002/wml"
)

func TestInsertBlankLines(t *testing.T) {
	c := wml.NewCell(
		numbered(33, 0, "one"),
		numbered(33, 1, "one.a"),
		numbered(33, 0, "two"),
		wml.NewParagraph("Normal"),
		numbered(33, 0, "three"),
		numbered(44, 0, "other list"),
	)

	if n := InsertBlankLines(c, "Normal"); n != 1 {
		t.Errorf("InsertBlankLines() = %d, want 1", n)
	}
	want := []string{"one", "one.a", "", "two", "", "three", "other list"}
	paras := c.Paragraphs()
	if len(paras) != len(want) {
		t.Fatalf("cell has %d paragraphs, want %d", len(paras), len(want))
	}
	for i, p := range paras {
		if p.Text() != want[i] {
			t.Errorf("paragraph %d = %q, want %q", i, p.Text(), want[i])
		}
	}

	if n := InsertBlankLines(c, "Normal"); n != 0 {
		t.Errorf("second InsertBlankLines() = %d, want 0", n)
	}
}
