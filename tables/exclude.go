package tables

import (
	"errors"

	"github.com/ItMeDiaTech/Documentation-Hub-sub002/wml"
)

// ErrMalformedTable is returned when a table has nil rows or cells.
var ErrMalformedTable = errors.New("tables: malformed table")

// Exclusion reasons.
const (
	ReasonFloating  = "floating"
	ReasonNested    = "nested tables"
	ReasonMultiLine = "single cell holds body text"
)

// IsExcluded reports whether no pass may touch the table, and why.
// Floating tables and tables holding nested tables are never modified.
func IsExcluded(t *wml.Table) (bool, string) {
	if t.Floating {
		return true, ReasonFloating
	}
	if t.HasNestedTables() {
		return true, ReasonNested
	}
	return false, ""
}

// CheckWellFormed returns ErrMalformedTable for tables with nil rows or
// cells.
func CheckWellFormed(t *wml.Table) error {
	for _, row := range t.Rows {
		if row == nil {
			return ErrMalformedTable
		}
		for _, cell := range row.Cells {
			if cell == nil {
				return ErrMalformedTable
			}
		}
	}
	return nil
}
