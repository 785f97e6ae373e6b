package lists

import "github.com/ItMeDiaTech/Documentation-Hub-sub002/wml"

// InsertBlankLines separates top-level items of the same list inside a
// cell with an empty paragraph in normalStyle. A level-0 item gets one
// before it when an earlier paragraph of the cell belongs to the same numId,
// unless the element before it is already a blank paragraph. It returns the
// number of paragraphs inserted.
func InsertBlankLines(c *wml.Cell, normalStyle string) int {
	seen := make(map[int]bool)
	n := 0
	for i := 0; i < len(c.Content); i++ {
		p, ok := c.Content[i].(*wml.Paragraph)
		if !ok || p.Numbering == nil {
			continue
		}
		id := p.Numbering.NumID
		if p.Numbering.Level == 0 && seen[id] && !blankAt(c.Content, i-1) {
			c.InsertBefore(i, wml.NewParagraph(normalStyle))
			i++
			n++
		}
		seen[id] = true
	}
	return n
}

func blankAt(elems []wml.BodyElement, i int) bool {
	if i < 0 || i >= len(elems) {
		return false
	}
	p, ok := elems[i].(*wml.Paragraph)
	return ok && p.IsBlank() && p.Numbering == nil
}
