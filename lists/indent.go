package lists

import (
	"fmt"
	"log/slog"

	"github.com/ItMeDiaTech/Documentation-Hub-sub002/logging"
	"github.com/ItMeDiaTech/Documentation-Hub-sub002/wml"
)

const pointsPerInch = 72

// IndentRule sets the indentation of one list level. Level is 1-based;
// indents are in inches from the margin.
type IndentRule struct {
	Level        int
	SymbolIndent float64 // where the number or bullet starts
	TextIndent   float64 // where the item text starts
}

// Valid reports whether the rule can be applied: the symbol must sit left of
// the text.
func (r IndentRule) Valid() bool {
	return r.Level >= 1 && r.SymbolIndent >= 0 && r.SymbolIndent < r.TextIndent
}

// Indent converts the rule to level indentation in points.
func (r IndentRule) Indent() wml.Indent {
	return wml.Indent{
		Left:    r.TextIndent * pointsPerInch,
		Hanging: (r.TextIndent - r.SymbolIndent) * pointsPerInch,
	}
}

// ApplyIndentation applies rules to numID's shared definition. Invalid rules
// and rules for levels the definition lacks are logged and skipped. It
// returns the number of levels changed.
func ApplyIndentation(store *wml.NumberingStore, numID int, rules []IndentRule, logger *slog.Logger) (int, error) {
	log := logging.Or(logger)
	abstract, err := store.Abstract(numID)
	if err != nil {
		return 0, fmt.Errorf("apply indentation: %w", err)
	}
	n := 0
	for _, rule := range rules {
		if !rule.Valid() {
			log.Warn("indentation rule skipped",
				slog.Int("level", rule.Level),
				slog.Float64("symbolIndent", rule.SymbolIndent),
				slog.Float64("textIndent", rule.TextIndent))
			continue
		}
		lvl := abstract.Level(rule.Level - 1)
		if lvl == nil {
			log.Debug("indentation rule for undefined level", slog.Int("numId", numID), slog.Int("level", rule.Level))
			continue
		}
		if lvl.SetIndent(rule.Indent()) {
			n++
		}
	}
	return n, nil
}
