package dochub

import (
	"fmt"
	"strings"
)

// Processing stages reported in warnings.
const (
	StageUniformity = "uniformity"
	StageClassify   = "classify"
	StageStructure  = "structure"
	StageRestore    = "restore"
	StageNumbering  = "numbering"
	StageIndent     = "indentation"
	StageLinks      = "hyperlinks"
	StageGuard      = "guard"
)

// Warning is a non-fatal problem met while processing. The affected table
// was left as the failing stage found it; other tables were still
// processed.
type Warning struct {
	Table int // body index of the table, -1 for the whole document
	Stage string
	Err   error
}

// String formats the warning for display.
func (w Warning) String() string {
	if w.Table < 0 {
		return fmt.Sprintf("%s: %v", w.Stage, w.Err)
	}
	return fmt.Sprintf("table %d: %s: %v", w.Table, w.Stage, w.Err)
}

// Error implements error, so a Warning can be matched with errors.Is.
func (w Warning) Error() string { return w.String() }

// Unwrap returns the underlying error.
func (w Warning) Unwrap() error { return w.Err }

// FormatWarnings joins warnings into one line each.
func FormatWarnings(warnings []Warning) string {
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}
