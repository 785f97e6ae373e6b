package wml

import "strings"

// Underline values used by runs.
const (
	UnderlineNone   = "none"
	UnderlineSingle = "single"
)

// ColorAuto is the run color value meaning "let the renderer decide".
const ColorAuto = "auto"

// BodyElement is a node that can appear in the document body or inside a
// table cell: either a *Paragraph or a *Table.
type BodyElement interface {
	isBodyElement()
}

func (*Paragraph) isBodyElement() {}
func (*Table) isBodyElement()     {}

// Inline is content that can appear in a paragraph: either a *Run or a
// *Hyperlink container.
type Inline interface {
	isInline()
}

func (*Run) isInline()       {}
func (*Hyperlink) isInline() {}

// Document is an ordered body plus the shared numbering store.
type Document struct {
	Body      []BodyElement
	Numbering *NumberingStore

	// StyleNumbering is the numbering a paragraph style applies to any
	// paragraph that uses it without an explicit reference. Keys are style
	// names; lookups go through StyleKey.
	StyleNumbering map[string]NumberingRef
}

// NewDocument creates an empty document with an empty numbering store.
func NewDocument() *Document {
	return &Document{
		Numbering:      NewNumberingStore(),
		StyleNumbering: make(map[string]NumberingRef),
	}
}

// Append adds elements to the end of the body.
func (d *Document) Append(elems ...BodyElement) {
	d.Body = append(d.Body, elems...)
}

// Tables returns the top-level tables in body order.
func (d *Document) Tables() []*Table {
	var tables []*Table
	for _, el := range d.Body {
		if t, ok := el.(*Table); ok {
			tables = append(tables, t)
		}
	}
	return tables
}

// TableIndexes returns the body positions of the top-level tables.
func (d *Document) TableIndexes() []int {
	var idx []int
	for i, el := range d.Body {
		if _, ok := el.(*Table); ok {
			idx = append(idx, i)
		}
	}
	return idx
}

// Paragraphs returns every paragraph in the document, depth first,
// including paragraphs inside table cells and nested tables.
func (d *Document) Paragraphs() []*Paragraph {
	var paras []*Paragraph
	walkElements(d.Body, func(p *Paragraph) {
		paras = append(paras, p)
	})
	return paras
}

// SetStyleNumbering records the numbering a style applies implicitly.
func (d *Document) SetStyleNumbering(style string, ref NumberingRef) {
	if d.StyleNumbering == nil {
		d.StyleNumbering = make(map[string]NumberingRef)
	}
	d.StyleNumbering[StyleKey(style)] = ref
}

// EffectiveNumbering returns the numbering a paragraph renders with: its
// explicit reference if it has one, otherwise the one its style implies.
func (d *Document) EffectiveNumbering(p *Paragraph) (NumberingRef, bool) {
	if p.Numbering != nil {
		return *p.Numbering, true
	}
	if d.StyleNumbering == nil {
		return NumberingRef{}, false
	}
	ref, ok := d.StyleNumbering[StyleKey(p.Style)]
	return ref, ok
}

func walkElements(elems []BodyElement, fn func(p *Paragraph)) {
	for _, el := range elems {
		switch v := el.(type) {
		case *Paragraph:
			fn(v)
		case *Table:
			for _, row := range v.Rows {
				for _, cell := range row.Cells {
					walkElements(cell.Content, fn)
				}
			}
		}
	}
}

// NumberingRef points a paragraph into the numbering store.
type NumberingRef struct {
	NumID int
	Level int // 0 = top level
}

// Indent holds paragraph or numbering-level indentation in points.
type Indent struct {
	Left      float64
	Hanging   float64
	FirstLine float64
}

// Spacing holds paragraph spacing in points.
type Spacing struct {
	Before float64
	After  float64
}

// Paragraph is a styled sequence of inline content.
type Paragraph struct {
	Style     string
	Numbering *NumberingRef
	Indent    *Indent
	Alignment string // left, center, right, both
	Spacing   *Spacing
	Content   []Inline
}

// NewParagraph creates a paragraph with the given style and content.
func NewParagraph(style string, content ...Inline) *Paragraph {
	return &Paragraph{Style: style, Content: content}
}

// Append adds inline content to the paragraph.
func (p *Paragraph) Append(content ...Inline) {
	p.Content = append(p.Content, content...)
}

// SetStyle replaces the paragraph style. Like the host model it mirrors,
// this resets direct indentation; callers that need it must capture and
// restore it around the call.
func (p *Paragraph) SetStyle(style string) {
	p.Style = style
	p.Indent = nil
}

// HasNumbering reports whether the paragraph has an explicit reference.
func (p *Paragraph) HasNumbering() bool {
	return p.Numbering != nil
}

// SetNumbering sets an explicit numbering reference and reports whether the
// paragraph changed.
func (p *Paragraph) SetNumbering(ref NumberingRef) bool {
	if p.Numbering != nil && *p.Numbering == ref {
		return false
	}
	p.Numbering = &NumberingRef{NumID: ref.NumID, Level: ref.Level}
	return true
}

// ClearNumbering removes the explicit numbering reference.
func (p *Paragraph) ClearNumbering() {
	p.Numbering = nil
}

// SetAlignment sets the justification and reports whether it changed.
func (p *Paragraph) SetAlignment(align string) bool {
	if p.Alignment == align {
		return false
	}
	p.Alignment = align
	return true
}

// SetSpacing sets paragraph spacing and reports whether it changed.
func (p *Paragraph) SetSpacing(s Spacing) bool {
	if p.Spacing != nil && *p.Spacing == s {
		return false
	}
	p.Spacing = &Spacing{Before: s.Before, After: s.After}
	return true
}

// Runs returns every run in the paragraph in document order, including runs
// enclosed in hyperlink containers.
func (p *Paragraph) Runs() []*Run {
	var runs []*Run
	for _, c := range p.Content {
		switch v := c.(type) {
		case *Run:
			runs = append(runs, v)
		case *Hyperlink:
			runs = append(runs, v.Runs...)
		}
	}
	return runs
}

// DirectRuns returns only the runs that are direct children of the
// paragraph, skipping runs inside hyperlink containers.
func (p *Paragraph) DirectRuns() []*Run {
	var runs []*Run
	for _, c := range p.Content {
		if r, ok := c.(*Run); ok {
			runs = append(runs, r)
		}
	}
	return runs
}

// Hyperlinks returns the hyperlink containers of the paragraph.
func (p *Paragraph) Hyperlinks() []*Hyperlink {
	var links []*Hyperlink
	for _, c := range p.Content {
		if h, ok := c.(*Hyperlink); ok {
			links = append(links, h)
		}
	}
	return links
}

// Text returns the concatenated text of all runs.
func (p *Paragraph) Text() string {
	var sb strings.Builder
	for _, r := range p.Runs() {
		sb.WriteString(r.Text)
	}
	return sb.String()
}

// IsBlank reports whether the paragraph has no visible text and no images.
func (p *Paragraph) IsBlank() bool {
	return strings.TrimSpace(p.Text()) == "" && !p.HasImage()
}

// HasImage reports whether any run holds a drawing.
func (p *Paragraph) HasImage() bool {
	for _, r := range p.Runs() {
		if r.Image {
			return true
		}
	}
	return false
}

// Run is a span of text with uniform formatting. Line breaks inside the run
// are represented as "\n".
type Run struct {
	Text      string
	CharStyle string // character style id, e.g. "Hyperlink"
	Font      string
	Size      float64 // points
	Bold      bool
	Italic    bool
	Color     string // hex or "auto"
	Underline string // none, single, double, ...
	Image     bool   // run holds a drawing
}

// NewRun creates a plain text run.
func NewRun(text string) *Run {
	return &Run{Text: text}
}

// SetFont sets font family and size and reports whether either changed.
// An empty family or a non-positive size leaves that property alone.
func (r *Run) SetFont(family string, size float64) bool {
	changed := false
	if family != "" && r.Font != family {
		r.Font = family
		changed = true
	}
	if size > 0 && r.Size != size {
		r.Size = size
		changed = true
	}
	return changed
}

// SetBold sets the bold flag and reports whether it changed.
func (r *Run) SetBold(bold bool) bool {
	if r.Bold == bold {
		return false
	}
	r.Bold = bold
	return true
}

// Hyperlink is a container that wraps runs and carries a link target.
type Hyperlink struct {
	Target string // external target, resolved from the relationship id
	Anchor string // internal bookmark name
	Runs   []*Run
}

// NewHyperlink creates an external hyperlink around the given runs.
func NewHyperlink(target string, runs ...*Run) *Hyperlink {
	return &Hyperlink{Target: target, Runs: runs}
}

// IsInternal reports whether the hyperlink points at a bookmark.
func (h *Hyperlink) IsInternal() bool {
	return h.Target == "" && h.Anchor != ""
}

// Text returns the text of the enclosed runs.
func (h *Hyperlink) Text() string {
	var sb strings.Builder
	for _, r := range h.Runs {
		sb.WriteString(r.Text)
	}
	return sb.String()
}
