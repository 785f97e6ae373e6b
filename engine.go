package dochub

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/ItMeDiaTech/Documentation-Hub-sub002/config"
	"github.com/ItMeDiaTech/Documentation-Hub-sub002/links"
	"github.com/ItMeDiaTech/Documentation-Hub-sub002/lists"
	"github.com/ItMeDiaTech/Documentation-Hub-sub002/logging"
	"github.com/ItMeDiaTech/Documentation-Hub-sub002/tables"
	"github.com/ItMeDiaTech/Documentation-Hub-sub002/wml"
)

// ErrNilDocument is returned when Process is given no document.
var ErrNilDocument = errors.New("dochub: nil document")

// Engine runs the formatting passes over a document. Each configuration
// method returns a new Engine instance, so a configured Engine can be
// shared and chained safely.
type Engine struct {
	cfg     *config.Config
	options ProcessOptions
}

// clone creates a copy of the Engine with a copy of its options.
func (e *Engine) clone() *Engine {
	return &Engine{
		cfg:     e.cfg,
		options: e.options.clone(),
	}
}

// Config returns the rule set the engine applies.
func (e *Engine) Config() *config.Config {
	return e.cfg
}

// WithSnapshot enables numbering restoration from snap, which must have been
// captured before the document was mutated.
//
// Example:
//
//	snap := lists.CaptureDocument(doc)
//	// ... save and reload ...
//	res, _, err := dochub.New(cfg).WithSnapshot(snap).Process(doc)
func (e *Engine) WithSnapshot(snap lists.Snapshot) *Engine {
	newEngine := e.clone()
	newEngine.options.snapshot = snap
	return newEngine
}

// WithLogger sets the logger for this engine. By default the package logger
// from the logging package is used.
func (e *Engine) WithLogger(l *slog.Logger) *Engine {
	newEngine := e.clone()
	newEngine.options.logger = l
	return newEngine
}

// Trace logs shading and classification decisions for every table at debug
// level, grouped under "table".
func (e *Engine) Trace() *Engine {
	newEngine := e.clone()
	newEngine.options.trace = true
	return newEngine
}

// SkipUniformity disables the uniformity pass.
func (e *Engine) SkipUniformity() *Engine {
	newEngine := e.clone()
	newEngine.options.skipUniformity = true
	return newEngine
}

// SkipSemantic disables the semantic pass.
func (e *Engine) SkipSemantic() *Engine {
	newEngine := e.clone()
	newEngine.options.skipSemantic = true
	return newEngine
}

func (e *Engine) log() *slog.Logger {
	return logging.Or(e.options.logger)
}

// Process runs the uniformity pass and then the semantic pass over doc,
// mutating it in place. A table that fails is reported as a warning and
// the remaining tables are still processed. The error is non-nil only when
// nothing could be processed.
func (e *Engine) Process(doc *wml.Document) (Result, []Warning, error) {
	if err := e.check(doc); err != nil {
		return Result{}, nil, err
	}

	outcomes := newOutcomes(doc)
	var res Result
	var warnings []Warning
	if !e.options.skipUniformity {
		var w []Warning
		res.Uniformity, w = e.uniformity(doc, outcomes)
		warnings = append(warnings, w...)
	}
	if !e.options.skipSemantic {
		var w []Warning
		res.Semantic, w = e.semantic(doc, outcomes)
		warnings = append(warnings, w...)
	}
	res.Tables = outcomes.list()

	e.log().Info("document processed",
		slog.Int("tables", len(res.Tables)),
		slog.Int("tablesFound", res.Semantic.TablesFound),
		slog.Int("cellsRecolored", res.Uniformity.CellsRecolored),
		slog.Int("warnings", len(warnings)),
		slog.Bool("changed", res.Changed()))
	return res, warnings, nil
}

// ProcessUniformity runs only the uniformity pass.
func (e *Engine) ProcessUniformity(doc *wml.Document) (UniformityResult, []Warning, error) {
	if err := e.check(doc); err != nil {
		return UniformityResult{}, nil, err
	}
	res, warnings := e.uniformity(doc, newOutcomes(doc))
	return res, warnings, nil
}

// ProcessSemantic runs only the semantic pass.
func (e *Engine) ProcessSemantic(doc *wml.Document) (SemanticResult, []Warning, error) {
	if err := e.check(doc); err != nil {
		return SemanticResult{}, nil, err
	}
	res, warnings := e.semantic(doc, newOutcomes(doc))
	return res, warnings, nil
}

func (e *Engine) check(doc *wml.Document) error {
	if doc == nil {
		return ErrNilDocument
	}
	if err := e.cfg.Validate(); err != nil {
		return fmt.Errorf("dochub: %w", err)
	}
	return nil
}

func (e *Engine) trace(index int) *slog.Logger {
	if !e.options.trace {
		return nil
	}
	return e.log().With(slog.Group("table", slog.Int("index", index)))
}

func (e *Engine) uniformity(doc *wml.Document, outcomes *outcomes) (UniformityResult, []Warning) {
	r := tables.NewUniformity(e.uniformityOptions()).Apply(doc)
	var warnings []Warning
	for _, tr := range r.Tables {
		out := outcomes.get(tr.Index)
		switch {
		case tr.Err != nil:
			warnings = append(warnings, Warning{Table: tr.Index, Stage: StageUniformity, Err: tr.Err})
			out.Failed = true
		case tr.Stats.Skipped != "":
			out.Skipped, out.Reason = true, tr.Stats.Skipped
		case tr.Stats.Changes > 0:
			out.Changed = true
		}
	}
	return UniformityResult{
		TablesProcessed: r.TablesProcessed,
		CellsRecolored:  r.CellsRecolored,
		TablesSkipped:   r.TablesSkipped,
		Changes:         r.Changes,
	}, warnings
}

func (e *Engine) semantic(doc *wml.Document, outcomes *outcomes) (SemanticResult, []Warning) {
	var res SemanticResult
	var warnings []Warning
	for _, i := range doc.TableIndexes() {
		t := doc.Body[i].(*wml.Table)
		out := outcomes.get(i)

		tr, stage, err := e.semanticTable(doc, i, t)
		if err != nil {
			e.log().Warn("table skipped", slog.Int("table", i), slog.String("stage", stage), slog.Any("error", err))
			warnings = append(warnings, Warning{Table: i, Stage: stage, Err: err})
			out.Failed = true
			continue
		}
		if tr.excluded != "" {
			out.Skipped, out.Reason = true, tr.excluded
			continue
		}
		if !tr.cls.IsMatch {
			continue
		}
		out.Matched = true
		out.Variant = tr.cls.Variant
		if tr.changes() > 0 {
			out.Changed = true
		}
		res.add(tr)
	}
	return res, warnings
}

// tableRun collects what the semantic pass did to one table.
type tableRun struct {
	excluded  string
	cls       tables.Classification
	structure tables.StructureStats
	restored  int
	lists     lists.Changes
	levels    int // shared level definitions patched
	blanks    int
	links     links.RepairResult
	guarded   int
}

func (tr tableRun) changes() int {
	n := tr.restored + tr.lists.Total() + tr.levels + tr.blanks + tr.links.Total() + tr.guarded
	st := tr.structure
	if st.TableBorders {
		n++
	}
	return n + st.HeadersStyled + st.HeaderCells + st.CellBorders + st.SecondaryCells
}

func (r *SemanticResult) add(tr tableRun) {
	r.TablesFound++
	switch tr.cls.Variant {
	case tables.VariantSingleColumn:
		r.SingleColumnTables++
	case tables.VariantTwoColumn:
		r.TwoColumnTables++
	}
	if tr.structure.HeadersStyled > 0 || tr.structure.HeaderCells > 0 {
		r.HeadersStyled++
	}
	r.ParagraphsConverted += tr.lists.Converted
	r.ItemsNumbered += tr.lists.Numbered
	r.ItemsRestored += tr.restored
	r.LinksRepaired += tr.links.Total()
	r.GuardConversions += tr.guarded
	r.Changes += tr.changes()
}

// semanticTable runs the semantic steps over the table at body index i in
// order: classification, structure, numbering restoration, discovery and
// assignment, shared level patches, hyperlink repair, and the guard on the
// elements that follow. Panics are returned as errors tagged with the stage
// that raised them.
func (e *Engine) semanticTable(doc *wml.Document, i int, t *wml.Table) (tr tableRun, stage string, err error) {
	stage = StageClassify
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	if err := tables.CheckWellFormed(t); err != nil {
		return tr, stage, err
	}
	if excluded, reason := tables.IsExcluded(t); excluded {
		tr.excluded = reason
		return tr, stage, nil
	}
	tr.cls = tables.Classify(t, e.classifyOptions(i))
	if !tr.cls.IsMatch {
		return tr, stage, nil
	}

	stage = StageStructure
	formatter := tables.NewFormatter(e.formatterOptions())
	if tr.structure, err = formatter.Apply(t, tr.cls); err != nil {
		return tr, stage, err
	}

	stage = StageRestore
	tr.restored = lists.Restore(t, e.options.snapshot, doc.Numbering, e.log())

	stage = StageNumbering
	numID, ok := lists.Discover(lists.ContentParagraphs(t, tr.cls), doc.Numbering, e.log())
	reconciler := lists.NewReconciler(e.listOptions())
	tr.lists = reconciler.ConvertAndAssign(t, tr.cls, numID)
	if ok && tr.lists.Converted > 0 {
		n, err := lists.PatchBold(doc.Numbering, numID)
		e.numberingUnavailable(i, err)
		tr.levels += n
	}

	stage = StageIndent
	if ok && len(e.cfg.Indentation) > 0 {
		n, err := lists.ApplyIndentation(doc.Numbering, numID, e.indentRules(), e.log())
		e.numberingUnavailable(i, err)
		tr.levels += n
	}
	if e.cfg.BlankLinesBetweenItems {
		for _, c := range lists.ContentCells(t, tr.cls) {
			tr.blanks += lists.InsertBlankLines(c, e.cfg.NormalStyle)
		}
	}

	stage = StageLinks
	tr.links = links.RepairTable(t, e.linkOptions())

	stage = StageGuard
	tr.guarded = lists.GuardAfter(doc, i, e.guardOptions())

	return tr, stage, nil
}

// numberingUnavailable logs a missing store or definition. Those leave the
// numbering steps as no-ops rather than failing the table.
func (e *Engine) numberingUnavailable(table int, err error) {
	if err == nil {
		return
	}
	e.log().Debug("numbering unavailable", slog.Int("table", table), slog.Any("error", err))
}

// outcomes tracks a TableOutcome per top-level table across both passes.
type outcomes struct {
	order []int
	byIdx map[int]*TableOutcome
}

func newOutcomes(doc *wml.Document) *outcomes {
	o := &outcomes{byIdx: make(map[int]*TableOutcome)}
	for _, i := range doc.TableIndexes() {
		o.order = append(o.order, i)
		o.byIdx[i] = &TableOutcome{Index: i}
	}
	return o
}

func (o *outcomes) get(i int) *TableOutcome {
	return o.byIdx[i]
}

func (o *outcomes) list() []TableOutcome {
	out := make([]TableOutcome, 0, len(o.order))
	for _, i := range o.order {
		out = append(out, *o.byIdx[i])
	}
	return out
}
