// Package dochub applies house formatting rules to word-processing
// documents held as [wml.Document] trees.
//
// Basic usage:
//
//	res, warnings, err := dochub.New(cfg).Process(doc)
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", dochub.FormatWarnings(warnings))
//	}
//
// With options:
//
//	res, _, err := dochub.New(cfg).
//	    WithSnapshot(snap).
//	    SkipUniformity().
//	    Process(doc)
//
// Process runs two passes. The uniformity pass gives every ordinary table
// the same shading and fonts. The semantic pass recognizes tables whose
// header carries the configured header color, applies their borders and
// header styling, and repairs the list numbering inside them. The
// lower-level tables, lists and links packages are also available.
package dochub

import (
	"github.com/ItMeDiaTech/Documentation-Hub-sub002/config"
)

// New returns an Engine for cfg. A nil cfg uses [config.Default].
//
// Example:
//
//	res, warnings, err := dochub.New(nil).Process(doc)
func New(cfg *config.Config) *Engine {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Engine{
		cfg:     cfg,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	cfg := dochub.Must(config.Load("dochub.yaml"))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustResult is a helper that wraps a call to Process and panics if the
// error is non-nil. It discards warnings and returns just the result.
//
// Example:
//
//	res := dochub.MustResult(dochub.New(cfg).Process(doc))
func MustResult[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
