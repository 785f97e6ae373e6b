package dochub

import "github.com/ItMeDiaTech/Documentation-Hub-sub002/tables"

// UniformityResult reports the uniformity pass.
type UniformityResult struct {
	TablesProcessed int
	CellsRecolored  int
	TablesSkipped   int
	Changes         int
}

// SemanticResult reports the semantic pass.
type SemanticResult struct {
	TablesFound        int
	HeadersStyled      int
	SingleColumnTables int
	TwoColumnTables    int

	// Numbering and link repairs across all recognized tables.
	ParagraphsConverted int
	ItemsNumbered       int
	ItemsRestored       int
	LinksRepaired       int
	GuardConversions    int

	Changes int
}

// TableOutcome describes what happened to one top-level table.
type TableOutcome struct {
	Index   int // body index
	Variant tables.Variant
	Matched bool
	Skipped bool
	Reason  string // why the table was skipped
	Changed bool
	Failed  bool
}

// Result is the outcome of Process.
type Result struct {
	Uniformity UniformityResult
	Semantic   SemanticResult
	Tables     []TableOutcome
}

// Changed reports whether the run modified the document.
func (r Result) Changed() bool {
	return r.Uniformity.Changes > 0 || r.Semantic.Changes > 0
}

// Outcome returns the outcome of the table at body index i.
func (r Result) Outcome(i int) (TableOutcome, bool) {
	for _, o := range r.Tables {
		if o.Index == i {
			return o, true
		}
	}
	return TableOutcome{}, false
}
