package dochub

import (
	"log/slog"

	"github.com/ItMeDiaTech/Documentation-Hub-sub002/lists"
)

// ProcessOptions holds per-run configuration that is not part of the
// formatting rules.
type ProcessOptions struct {
	// Pass selection
	skipUniformity bool
	skipSemantic   bool

	// Numbering restoration; nil disables it.
	snapshot lists.Snapshot

	// Logging
	logger *slog.Logger
	trace  bool // log classification decisions per table
}

// defaultOptions returns the default process options.
func defaultOptions() ProcessOptions {
	return ProcessOptions{
		skipUniformity: false,
		skipSemantic:   false,
		snapshot:       nil,
		trace:          false,
	}
}

// clone creates a copy of ProcessOptions. The snapshot map is shared: it is
// read-only once captured.
func (o ProcessOptions) clone() ProcessOptions {
	return ProcessOptions{
		skipUniformity: o.skipUniformity,
		skipSemantic:   o.skipSemantic,
		snapshot:       o.snapshot,
		logger:         o.logger,
		trace:          o.trace,
	}
}
