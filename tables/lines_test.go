package tables

import (
	"strings"
	"testing"

	"github.com/ItMeDiaTech/Documentation-Hub-sub002/wml"
)

func TestEstimateLines(t *testing.T) {
	long := strings.Repeat("word ", 200)

	tests := []struct {
		name string
		cell *wml.Cell
		want int
	}{
		{"empty", wml.NewCell(), 0},
		{"blank paragraph", cell("", ""), 0},
		{"short title", cell("", "High Level Process"), 1},
		{"two paragraphs", cell("", "Overview", "Details"), 2},
		{"line break", wml.NewCell(wml.NewParagraph("Normal", wml.NewRun("one\ntwo\nthree"))), 3},
		{"blank between", cell("", "one", "", "two"), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EstimateLines(tt.cell, 14); got != tt.want {
				t.Errorf("EstimateLines() = %d, want %d", got, tt.want)
			}
		})
	}

	t.Run("wrapping", func(t *testing.T) {
		if got := EstimateLines(cell("", long), 14); got < 3 {
			t.Errorf("EstimateLines() = %d for a long paragraph, want at least 3", got)
		}
	})

	t.Run("narrow cell wraps more", func(t *testing.T) {
		wide := cell("", strings.Repeat("word ", 30))
		narrow := cell("", strings.Repeat("word ", 30))
		narrow.Width = 120
		if w, n := EstimateLines(wide, 12), EstimateLines(narrow, 12); n <= w {
			t.Errorf("narrow cell = %d lines, wide cell = %d lines, want narrow > wide", n, w)
		}
	})

	t.Run("run size wins over default", func(t *testing.T) {
		text := strings.Repeat("x", 40)
		small := wml.NewCell(wml.NewParagraph("Normal", &wml.Run{Text: text, Size: 8}))
		big := wml.NewCell(wml.NewParagraph("Normal", &wml.Run{Text: text, Size: 40}))
		if s, b := EstimateLines(small, 14), EstimateLines(big, 14); b <= s {
			t.Errorf("40pt = %d lines, 8pt = %d lines, want 40pt > 8pt", b, s)
		}
	})
}
