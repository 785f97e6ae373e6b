package fixture

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ItMeDiaTech/Documentation-Hub-sub002/wml"
)

const sample = `
numbering:
  abstracts:
    - id: 1
      levels:
        - {index: 0, format: decimal, text: "%1.", start: 1, bold: true, indent: {left: 36, hanging: 18}}
        - {index: 1, format: lowerLetter, text: "%2."}
  nums:
    - {id: 33, abstract: 1}
style_numbering:
  List Paragraph: {num_id: 33}
body:
  - paragraph:
      style: Normal
      runs:
        - text: "See "
        - hyperlink:
            target: https://example.com
            runs: [{text: here, char_style: Hyperlink}]
  - table:
      borders:
        top: {style: single, size: 12, color: BFBFBF}
      rows:
        - cells:
            - shading: {fill: bfbfbf}
              grid_span: 2
              content:
                - paragraph: {runs: [{text: Steps, bold: true}]}
        - cells:
            - content:
                - paragraph:
                    style: List Paragraph
                    numbering: {num_id: 33, level: 1}
                    indent: {left: 72}
                    runs: [{text: first}]
`

func TestDecode(t *testing.T) {
	doc, err := DecodeBytes([]byte(sample))
	require.NoError(t, err)

	require.NotNil(t, doc.Numbering)
	assert.True(t, doc.Numbering.IsDecimalTop(33))
	lvl, err := doc.Numbering.Level(wml.NumberingRef{NumID: 33, Level: 0})
	require.NoError(t, err)
	require.NotNil(t, lvl.Run.Bold)
	assert.True(t, *lvl.Run.Bold)
	assert.Equal(t, wml.Indent{Left: 36, Hanging: 18}, lvl.Indent)

	require.Len(t, doc.Body, 2)
	p, ok := doc.Body[0].(*wml.Paragraph)
	require.True(t, ok)
	require.Len(t, p.Hyperlinks(), 1)
	assert.Equal(t, "https://example.com", p.Hyperlinks()[0].Target)
	assert.Equal(t, "See here", p.Text())

	tables := doc.Tables()
	require.Len(t, tables, 1)
	tbl := tables[0]
	assert.Equal(t, "BFBFBF", tbl.Cell(0, 0).Fill())
	assert.Equal(t, 2, tbl.Cell(0, 0).Span())
	assert.Equal(t, 12, tbl.Borders.Top.Size)
	assert.Nil(t, tbl.Borders.Bottom)

	item := tbl.Cell(1, 0).Paragraphs()[0]
	assert.Equal(t, &wml.NumberingRef{NumID: 33, Level: 1}, item.Numbering)
	assert.Equal(t, 72.0, item.Indent.Left)

	ref, ok := doc.EffectiveNumbering(wml.NewParagraph("ListParagraph"))
	assert.True(t, ok)
	assert.Equal(t, 33, ref.NumID)
}

func TestDecode_JSON(t *testing.T) {
	doc, err := DecodeBytes([]byte(`{"body":[{"paragraph":{"style":"Normal","runs":[{"text":"hi"}]}}]}`))
	require.NoError(t, err)
	assert.Nil(t, doc.Numbering)
	require.Len(t, doc.Paragraphs(), 1)
	assert.Equal(t, "hi", doc.Paragraphs()[0].Text())
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", "empty input"},
		{"unknown key", "bodyy: []\n", "bodyy"},
		{"empty element", "body:\n  - {}\n", "body[0]: empty element"},
		{"both kinds", "body:\n  - paragraph: {}\n    table: {rows: []}\n", "both paragraph and table"},
		{"unknown abstract", "numbering:\n  nums: [{id: 1, abstract: 9}]\nbody: []\n", "unknown abstract"},
		{"nested path", "body:\n  - table:\n      rows:\n        - cells:\n            - content: [{}]\n", "body[0].rows[0].cells[0][0]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input))
			require.ErrorIs(t, err, ErrInvalid)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	doc, err := DecodeBytes([]byte(sample))
	require.NoError(t, err)

	for name, encode := range map[string]func(*bytes.Buffer, *wml.Document) error{
		"yaml": func(b *bytes.Buffer, d *wml.Document) error { return EncodeYAML(b, d) },
		"json": func(b *bytes.Buffer, d *wml.Document) error { return EncodeJSON(b, d) },
	} {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, encode(&buf, doc))

			again, err := DecodeBytes(buf.Bytes())
			require.NoError(t, err)
			assert.Equal(t, FromDocument(doc), FromDocument(again))
		})
	}
}

func TestFromDocument_MutatedModel(t *testing.T) {
	doc := wml.NewDocument()
	doc.Numbering = nil
	cell := wml.NewCell(wml.NewParagraph("Normal", wml.NewRun("x")))
	cell.SetFill("#ffc000")
	cell.SetMargins(wml.Margins{Left: 5.4, Right: 5.4})
	cell.SetBorders(wml.NoBorders())
	doc.Append(wml.NewTable(wml.NewRow(cell)))

	f := FromDocument(doc)
	assert.Nil(t, f.Numbering)
	assert.Empty(t, f.StyleNumbering)
	c := f.Body[0].Table.Rows[0].Cells[0]
	assert.Equal(t, &Shading{Pattern: "clear", Color: "auto", Fill: "FFC000"}, c.Shading)
	assert.Equal(t, &Margins{Left: 5.4, Right: 5.4}, c.Margins)
	require.NotNil(t, c.Borders)
	assert.Equal(t, wml.BorderNil, c.Borders.InsideV.Style)
	assert.Nil(t, f.Body[0].Table.Borders)
}
