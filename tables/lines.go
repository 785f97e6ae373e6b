package tables

import (
	"math"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/ItMeDiaTech/Documentation-Hub-sub002/wml"
)

const (
	// defaultCellWidth is a full 6.5 inch text block, in points.
	defaultCellWidth = 468.0
	// defaultCellPadding is Word's default left+right cell margin, in points.
	defaultCellPadding = 10.8
)

// measureFace is a fixed-pitch face; its advances scaled to the run size
// approximate the average glyph width of proportional body fonts.
var measureFace = basicfont.Face7x13

// EstimateLines estimates how many lines of text a cell renders, wrapping
// each paragraph at the cell's usable width. Runs without an explicit size
// are measured at defaultSize points. Blank lines are not counted.
func EstimateLines(c *wml.Cell, defaultSize float64) int {
	avail := c.Width
	if avail <= 0 {
		avail = defaultCellWidth
	}
	if c.Margins != nil {
		avail -= c.Margins.Left + c.Margins.Right
	} else {
		avail -= defaultCellPadding
	}
	if avail < 1 {
		avail = 1
	}

	lines := 0
	for _, p := range c.Paragraphs() {
		lines += paragraphLines(p, avail, defaultSize)
	}
	return lines
}

func paragraphLines(p *wml.Paragraph, avail, defaultSize float64) int {
	lines := 0
	width := 0.0
	hasText := false
	flush := func() {
		if hasText {
			lines += int(math.Max(1, math.Ceil(width/avail)))
		}
		width = 0
		hasText = false
	}

	for _, r := range p.Runs() {
		size := r.Size
		if size <= 0 {
			size = defaultSize
		}
		for i, seg := range strings.Split(r.Text, "\n") {
			if i > 0 {
				flush()
			}
			if strings.TrimSpace(seg) != "" {
				hasText = true
			}
			width += toPoints(font.MeasureString(measureFace, seg), size)
		}
	}
	flush()
	return lines
}

// toPoints scales a measureFace advance to a font size in points.
func toPoints(adv fixed.Int26_6, size float64) float64 {
	px := float64(adv) / 64
	return px * size / float64(measureFace.Height)
}
