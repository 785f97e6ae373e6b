// Package diagnose inspects a document without changing it and reports the
// problems that affect formatting: broken hyperlinks, numbering references
// that point nowhere, paragraphs at risk of phantom numbers, and tables
// the engine will skip.
package diagnose

import (
	"fmt"
	"net/url"

	"golang.org/x/net/idna"

	"github.com/ItMeDiaTech/Documentation-Hub-sub002/config"
	"github.com/ItMeDiaTech/Documentation-Hub-sub002/links"
	"github.com/ItMeDiaTech/Documentation-Hub-sub002/lists"
	"github.com/ItMeDiaTech/Documentation-Hub-sub002/tables"
	"github.com/ItMeDiaTech/Documentation-Hub-sub002/wml"
)

// Severity levels.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityWarning Severity = "WARNING"
	SeverityInfo    Severity = "INFO"
)

// Issue categories.
const (
	CategoryHyperlinks = "Hyperlinks"
	CategoryNumbering  = "Numbering"
	CategoryTables     = "Tables"
	CategoryText       = "Text"
	CategoryConfig     = "Config"
)

// Issue is one diagnostic finding.
type Issue struct {
	Severity   Severity `json:"severity"`
	Category   string   `json:"category"`
	Message    string   `json:"message"`
	Location   string   `json:"location,omitempty"`
	Suggestion string   `json:"suggestion,omitempty"`
}

// Stats counts document content.
type Stats struct {
	Paragraphs         int `json:"paragraphs"`
	Tables             int `json:"tables"`
	SemanticTables     int `json:"semantic_tables"`
	Hyperlinks         int `json:"hyperlinks"`
	InternalHyperlinks int `json:"internal_hyperlinks"`
	NumberedParagraphs int `json:"numbered_paragraphs"`
	OrderedItems       int `json:"ordered_items"`
	BulletItems        int `json:"bullet_items"`
}

// Report is the result of Run.
type Report struct {
	Issues []Issue `json:"issues"`
	Stats  Stats   `json:"statistics"`
}

// Count returns the number of issues with the given severity.
func (r Report) Count(sev Severity) int {
	n := 0
	for _, is := range r.Issues {
		if is.Severity == sev {
			n++
		}
	}
	return n
}

// Status is FAIL when there are errors, WARN when there are warnings and
// PASS otherwise.
func (r Report) Status() string {
	switch {
	case r.Count(SeverityError) > 0:
		return "FAIL"
	case r.Count(SeverityWarning) > 0:
		return "WARN"
	}
	return "PASS"
}

// ByCategory groups issues by category, keeping their order.
func (r Report) ByCategory() map[string][]Issue {
	m := make(map[string][]Issue)
	for _, is := range r.Issues {
		m[is.Category] = append(m[is.Category], is)
	}
	return m
}

// Summary is the machine-readable form of a report.
type Summary struct {
	Status   string  `json:"status"`
	Errors   int     `json:"errors"`
	Warnings int     `json:"warnings"`
	Info     int     `json:"info"`
	Stats    Stats   `json:"statistics"`
	Issues   []Issue `json:"issues"`
}

// Summary returns the report with its counts.
func (r Report) Summary() Summary {
	return Summary{
		Status:   r.Status(),
		Errors:   r.Count(SeverityError),
		Warnings: r.Count(SeverityWarning),
		Info:     r.Count(SeverityInfo),
		Stats:    r.Stats,
		Issues:   r.Issues,
	}
}

type checker struct {
	doc *wml.Document
	cfg *config.Config
	rep Report

	brokenLinks  int
	falseLinks   int
	phantomRisks int
}

func (c *checker) add(sev Severity, category, msg, loc, suggestion string) {
	c.rep.Issues = append(c.rep.Issues, Issue{
		Severity:   sev,
		Category:   category,
		Message:    msg,
		Location:   loc,
		Suggestion: suggestion,
	})
}

// Run inspects doc against cfg. A nil cfg uses config.Default.
func Run(doc *wml.Document, cfg *config.Config) Report {
	if cfg == nil {
		cfg = config.Default()
	}
	c := &checker{doc: doc, cfg: cfg}
	c.walk(doc.Body, "body")
	c.summarizeLinks()
	c.checkIndentation()
	if c.phantomRisks > 0 {
		c.add(SeverityWarning, CategoryNumbering,
			fmt.Sprintf("Found %d paragraph(s) without explicit numbering whose style implies a list", c.phantomRisks), "",
			"These inherit the style's default sequence and may show phantom numbers.")
	}
	return c.rep
}

func (c *checker) walk(elems []wml.BodyElement, loc string) {
	for i, el := range elems {
		switch v := el.(type) {
		case *wml.Paragraph:
			c.paragraph(v, fmt.Sprintf("%s paragraph %d", loc, i))
		case *wml.Table:
			c.table(v, fmt.Sprintf("%s table %d", loc, i), loc == "body")
		}
	}
}

func (c *checker) table(t *wml.Table, loc string, topLevel bool) {
	c.rep.Stats.Tables++
	if err := tables.CheckWellFormed(t); err != nil {
		c.add(SeverityError, CategoryTables, "Table has missing rows or cells", loc, "")
		return
	}
	if excluded, reason := tables.IsExcluded(t); excluded && topLevel {
		c.add(SeverityInfo, CategoryTables, fmt.Sprintf("Table will be skipped (%s)", reason), loc, "")
	} else if topLevel {
		cls := tables.Classify(t, tables.ClassifyOptions{
			HeaderFill:    c.cfg.HeaderFill,
			SecondaryFill: c.cfg.SecondaryFill,
			HeaderLabel:   c.cfg.HeaderLabel,
			FoldCase:      c.cfg.FoldHeaderCase,
		})
		if cls.IsMatch {
			c.rep.Stats.SemanticTables++
			c.add(SeverityInfo, CategoryTables,
				fmt.Sprintf("Recognized %s table %q", cls.Variant, cls.HeaderText), loc, "")
		}
	}
	for ri, row := range t.Rows {
		for ci, cell := range row.Cells {
			c.walk(cell.Content, fmt.Sprintf("%s row %d cell %d", loc, ri, ci))
		}
	}
}

func (c *checker) paragraph(p *wml.Paragraph, loc string) {
	c.rep.Stats.Paragraphs++

	if p.Numbering != nil {
		c.rep.Stats.NumberedParagraphs++
		c.numbering(*p.Numbering, loc)
	} else if _, ok := c.doc.EffectiveNumbering(p); ok {
		// Numbered only through its style.
		c.phantomRisks++
	}

	for _, h := range p.Hyperlinks() {
		c.rep.Stats.Hyperlinks++
		c.hyperlink(h, loc)
	}
	c.falseLinks += len(links.Detect(p, c.cfg.HyperlinkStyle).False)

	for _, r := range p.Runs() {
		if ch, ok := invalidChar(r.Text); ok {
			c.add(SeverityError, CategoryText,
				fmt.Sprintf("Run contains invalid XML character U+%04X", ch), loc,
				"Remove control characters; they make the document unreadable.")
		}
	}
}

func (c *checker) numbering(ref wml.NumberingRef, loc string) {
	if c.doc.Numbering == nil {
		c.add(SeverityError, CategoryNumbering, "Paragraph is numbered but the document has no numbering definitions", loc, "")
		return
	}
	if _, err := c.doc.Numbering.Level(ref); err != nil {
		c.add(SeverityError, CategoryNumbering, fmt.Sprintf("Numbering reference {%d, %d} is invalid: %v", ref.NumID, ref.Level, err), loc,
			"The paragraph will render without a number or with the wrong one.")
		return
	}
	switch kind, _ := c.doc.Numbering.ResolveLevel(ref); kind {
	case wml.ListTypeOrdered:
		c.rep.Stats.OrderedItems++
	default:
		c.rep.Stats.BulletItems++
	}
}

func (c *checker) hyperlink(h *wml.Hyperlink, loc string) {
	if h.Target == "" && h.Anchor == "" {
		c.brokenLinks++
		return
	}
	if h.IsInternal() {
		c.rep.Stats.InternalHyperlinks++
		return
	}
	u, err := url.Parse(h.Target)
	if err != nil {
		c.add(SeverityWarning, CategoryHyperlinks, fmt.Sprintf("Hyperlink target %q cannot be parsed", h.Target), loc, "")
		return
	}
	if u.Scheme == "mailto" || u.Scheme == "file" || u.Host == "" {
		return
	}
	if _, err := idna.Lookup.ToASCII(u.Hostname()); err != nil {
		c.add(SeverityWarning, CategoryHyperlinks, fmt.Sprintf("Hyperlink host %q is invalid", u.Hostname()), loc,
			"Check the link target; it will not resolve.")
	}
}

func (c *checker) summarizeLinks() {
	if c.brokenLinks > 0 {
		c.add(SeverityWarning, CategoryHyperlinks,
			fmt.Sprintf("Found %d hyperlink(s) without target reference", c.brokenLinks), "",
			"Some hyperlinks may be broken. Check document relationships.")
	} else if c.rep.Stats.Hyperlinks > 0 {
		c.add(SeverityInfo, CategoryHyperlinks,
			fmt.Sprintf("Document contains %d hyperlink(s)", c.rep.Stats.Hyperlinks), "", "")
	}
	if c.falseLinks > 0 {
		c.add(SeverityWarning, CategoryHyperlinks,
			fmt.Sprintf("Found %d run(s) styled as hyperlinks outside any link", c.falseLinks), "",
			"Processing clears the hyperlink style from these runs.")
	}
}

func (c *checker) checkIndentation() {
	for _, r := range c.cfg.Indentation {
		rule := lists.IndentRule{Level: r.Level, SymbolIndent: r.SymbolIndent, TextIndent: r.TextIndent}
		if !rule.Valid() {
			c.add(SeverityWarning, CategoryConfig,
				fmt.Sprintf("Indentation rule for level %d is invalid (symbol %.2fin, text %.2fin)", r.Level, r.SymbolIndent, r.TextIndent), "",
				"The symbol indent must be smaller than the text indent; the rule will be skipped.")
		}
	}
}

// invalidChar returns the first character not allowed in XML text.
func invalidChar(s string) (rune, bool) {
	for _, r := range s {
		switch {
		case r == '\t' || r == '\n' || r == '\r':
		case r < 0x20, r == 0x7F, r == 0xFFFE, r == 0xFFFF:
			return r, true
		}
	}
	return 0, false
}
