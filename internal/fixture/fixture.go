// Package fixture reads and writes documents in a YAML (or JSON) form that
// mirrors the wml object model. The dochub command and the tests use it to
// describe documents without a word-processing package.
//
// A minimal fixture:
//
//	numbering:
//	  abstracts:
//	    - id: 1
//	      levels:
//	        - {index: 0, format: decimal, text: "%1."}
//	  nums:
//	    - {id: 33, abstract: 1}
//	body:
//	  - table:
//	      rows:
//	        - cells:
//	            - shading: {fill: BFBFBF}
//	              content:
//	                - paragraph: {runs: [{text: Steps}]}
package fixture

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/ItMeDiaTech/Documentation-Hub-sub002/wml"
)

// ErrInvalid wraps every decoding failure.
var ErrInvalid = errors.New("fixture: invalid document")

// File is the serialized document.
type File struct {
	Numbering      *Numbering             `yaml:"numbering,omitempty" json:"numbering,omitempty"`
	StyleNumbering map[string]NumberingRef `yaml:"style_numbering,omitempty" json:"style_numbering,omitempty"`
	Body           []Element              `yaml:"body" json:"body"`
}

// Numbering is the numbering store. A missing block decodes to a document
// without a store.
type Numbering struct {
	Abstracts []Abstract `yaml:"abstracts" json:"abstracts"`
	Nums      []Num      `yaml:"nums" json:"nums"`
}

// Abstract is one abstract numbering definition.
type Abstract struct {
	ID     int     `yaml:"id" json:"id"`
	Levels []Level `yaml:"levels" json:"levels"`
}

// Level is one level of an abstract definition.
type Level struct {
	Index  int     `yaml:"index" json:"index"`
	Format string  `yaml:"format,omitempty" json:"format,omitempty"`
	Text   string  `yaml:"text,omitempty" json:"text,omitempty"`
	Start  int     `yaml:"start,omitempty" json:"start,omitempty"`
	Font   string  `yaml:"font,omitempty" json:"font,omitempty"`
	Size   float64 `yaml:"size,omitempty" json:"size,omitempty"`
	Color  string  `yaml:"color,omitempty" json:"color,omitempty"`
	Bold   *bool   `yaml:"bold,omitempty" json:"bold,omitempty"`
	Indent *Indent `yaml:"indent,omitempty" json:"indent,omitempty"`
}

// Num maps a numId to an abstract definition.
type Num struct {
	ID       int `yaml:"id" json:"id"`
	Abstract int `yaml:"abstract" json:"abstract"`
}

// NumberingRef is a paragraph's numbering reference.
type NumberingRef struct {
	NumID int `yaml:"num_id" json:"num_id"`
	Level int `yaml:"level,omitempty" json:"level,omitempty"`
}

// Indent is in points.
type Indent struct {
	Left      float64 `yaml:"left,omitempty" json:"left,omitempty"`
	Hanging   float64 `yaml:"hanging,omitempty" json:"hanging,omitempty"`
	FirstLine float64 `yaml:"first_line,omitempty" json:"first_line,omitempty"`
}

// Spacing is in points.
type Spacing struct {
	Before float64 `yaml:"before,omitempty" json:"before,omitempty"`
	After  float64 `yaml:"after,omitempty" json:"after,omitempty"`
}

// Element holds exactly one of Paragraph or Table.
type Element struct {
	Paragraph *Paragraph `yaml:"paragraph,omitempty" json:"paragraph,omitempty"`
	Table     *Table     `yaml:"table,omitempty" json:"table,omitempty"`
}

// Paragraph is a styled sequence of runs and hyperlinks.
type Paragraph struct {
	Style     string        `yaml:"style,omitempty" json:"style,omitempty"`
	Numbering *NumberingRef `yaml:"numbering,omitempty" json:"numbering,omitempty"`
	Indent    *Indent       `yaml:"indent,omitempty" json:"indent,omitempty"`
	Alignment string        `yaml:"alignment,omitempty" json:"alignment,omitempty"`
	Spacing   *Spacing      `yaml:"spacing,omitempty" json:"spacing,omitempty"`
	Runs      []Inline      `yaml:"runs,omitempty" json:"runs,omitempty"`
}

// Inline is a run, or a hyperlink container when Hyperlink is set.
type Inline struct {
	Run       `yaml:",inline"`
	Hyperlink *Hyperlink `yaml:"hyperlink,omitempty" json:"hyperlink,omitempty"`
}

// Run is a span of uniformly formatted text.
type Run struct {
	Text      string  `yaml:"text,omitempty" json:"text,omitempty"`
	CharStyle string  `yaml:"char_style,omitempty" json:"char_style,omitempty"`
	Font      string  `yaml:"font,omitempty" json:"font,omitempty"`
	Size      float64 `yaml:"size,omitempty" json:"size,omitempty"`
	Bold      bool    `yaml:"bold,omitempty" json:"bold,omitempty"`
	Italic    bool    `yaml:"italic,omitempty" json:"italic,omitempty"`
	Color     string  `yaml:"color,omitempty" json:"color,omitempty"`
	Underline string  `yaml:"underline,omitempty" json:"underline,omitempty"`
	Image     bool    `yaml:"image,omitempty" json:"image,omitempty"`
}

// Hyperlink is a link container.
type Hyperlink struct {
	Target string `yaml:"target,omitempty" json:"target,omitempty"`
	Anchor string `yaml:"anchor,omitempty" json:"anchor,omitempty"`
	Runs   []Run  `yaml:"runs" json:"runs"`
}

// Table is a grid of cells.
type Table struct {
	Style    string   `yaml:"style,omitempty" json:"style,omitempty"`
	Floating bool     `yaml:"floating,omitempty" json:"floating,omitempty"`
	Borders  *Borders `yaml:"borders,omitempty" json:"borders,omitempty"`
	Rows     []Row    `yaml:"rows" json:"rows"`
}

// Row is one table row.
type Row struct {
	Header bool   `yaml:"header,omitempty" json:"header,omitempty"`
	Cells  []Cell `yaml:"cells" json:"cells"`
}

// Cell is one table cell.
type Cell struct {
	Shading  *Shading  `yaml:"shading,omitempty" json:"shading,omitempty"`
	Margins  *Margins  `yaml:"margins,omitempty" json:"margins,omitempty"`
	Borders  *Borders  `yaml:"borders,omitempty" json:"borders,omitempty"`
	GridSpan int       `yaml:"grid_span,omitempty" json:"grid_span,omitempty"`
	Width    float64   `yaml:"width,omitempty" json:"width,omitempty"`
	Content  []Element `yaml:"content" json:"content"`
}

// Shading is a cell background.
type Shading struct {
	Pattern string `yaml:"pattern,omitempty" json:"pattern,omitempty"`
	Color   string `yaml:"color,omitempty" json:"color,omitempty"`
	Fill    string `yaml:"fill,omitempty" json:"fill,omitempty"`
}

// Margins are in points.
type Margins struct {
	Top    float64 `yaml:"top,omitempty" json:"top,omitempty"`
	Bottom float64 `yaml:"bottom,omitempty" json:"bottom,omitempty"`
	Left   float64 `yaml:"left,omitempty" json:"left,omitempty"`
	Right  float64 `yaml:"right,omitempty" json:"right,omitempty"`
}

// Border is one border line.
type Border struct {
	Style string `yaml:"style" json:"style"`
	Size  int    `yaml:"size,omitempty" json:"size,omitempty"`
	Color string `yaml:"color,omitempty" json:"color,omitempty"`
}

// Borders holds the per-side borders; missing sides are unset.
type Borders struct {
	Top     *Border `yaml:"top,omitempty" json:"top,omitempty"`
	Bottom  *Border `yaml:"bottom,omitempty" json:"bottom,omitempty"`
	Left    *Border `yaml:"left,omitempty" json:"left,omitempty"`
	Right   *Border `yaml:"right,omitempty" json:"right,omitempty"`
	InsideH *Border `yaml:"inside_h,omitempty" json:"inside_h,omitempty"`
	InsideV *Border `yaml:"inside_v,omitempty" json:"inside_v,omitempty"`
}

// Decode reads a YAML or JSON fixture. Unknown keys are rejected.
func Decode(r io.Reader) (*wml.Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty input", ErrInvalid)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return f.Document()
}

// DecodeBytes is Decode over a byte slice.
func DecodeBytes(data []byte) (*wml.Document, error) {
	return Decode(bytes.NewReader(data))
}

// EncodeYAML writes doc as a YAML fixture.
func EncodeYAML(w io.Writer, doc *wml.Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(FromDocument(doc)); err != nil {
		return fmt.Errorf("fixture: encode: %w", err)
	}
	return enc.Close()
}

// EncodeJSON writes doc as an indented JSON fixture.
func EncodeJSON(w io.Writer, doc *wml.Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(FromDocument(doc)); err != nil {
		return fmt.Errorf("fixture: encode: %w", err)
	}
	return nil
}
