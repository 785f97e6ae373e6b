// Command dochub applies the house table and list rules to a document
// fixture and writes the result.
//
//	dochub [flags] input.yaml
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"gopkg.in/natefinch/lumberjack.v2"

	dochub "github.com/ItMeDiaTech/Documentation-Hub-sub002"
	"github.com/ItMeDiaTech/Documentation-Hub-sub002/config"
	"github.com/ItMeDiaTech/Documentation-Hub-sub002/diagnose"
	"github.com/ItMeDiaTech/Documentation-Hub-sub002/format"
	"github.com/ItMeDiaTech/Documentation-Hub-sub002/internal/fixture"
	"github.com/ItMeDiaTech/Documentation-Hub-sub002/logging"
	"github.com/ItMeDiaTech/Documentation-Hub-sub002/wml"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailed  = 1
	exitUsage   = 2
	exitInvalid = 3
)

var errUnsupported = errors.New("unsupported input format")

type options struct {
	configPath string
	envFile    string
	outPath    string
	jsonOut    bool
	diagnose   bool
	verbose    bool
	trace      bool
	skipUnif   bool
	skipSem    bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, os.LookupEnv))
}

func run(args []string, stdout, stderr io.Writer, lookup config.LookupFunc) int {
	fs := flag.NewFlagSet("dochub", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var opts options
	fs.StringVar(&opts.configPath, "config", "", "YAML rule file (defaults are used when empty)")
	fs.StringVar(&opts.envFile, "env", ".env", "dotenv file with DOCHUB_* overrides; ignored when missing")
	fs.StringVar(&opts.outPath, "out", "", "write the processed document here (- for stdout)")
	fs.BoolVar(&opts.jsonOut, "json", false, "print the report as JSON")
	fs.BoolVar(&opts.diagnose, "diagnose", false, "check the document without changing it")
	fs.BoolVar(&opts.verbose, "v", false, "debug logging")
	fs.BoolVar(&opts.trace, "trace", false, "tag log records with the table index")
	fs.BoolVar(&opts.skipUnif, "skip-uniformity", false, "skip the generic table pass")
	fs.BoolVar(&opts.skipSem, "skip-semantic", false, "skip the semantic table pass")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: dochub [flags] <input.yaml|input.json>\n\nFlags:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return exitUsage
	}
	input := fs.Arg(0)

	cfg, err := loadConfig(opts, lookup)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitInvalid
	}

	logger, closeLog := newLogger(cfg, opts.verbose, stderr)
	defer closeLog()
	logging.SetLogger(logger)
	defer logging.SetLogger(nil)

	doc, inFormat, err := readDocument(input)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitInvalid
	}

	if opts.diagnose {
		return printDiagnosis(stdout, diagnose.Run(doc, cfg), opts.jsonOut)
	}

	engine := dochub.New(cfg).WithLogger(logger)
	if opts.trace {
		engine = engine.Trace()
	}
	if opts.skipUnif {
		engine = engine.SkipUniformity()
	}
	if opts.skipSem {
		engine = engine.SkipSemantic()
	}

	res, warnings, err := engine.Process(doc)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitFailed
	}
	printResult(stdout, res, warnings, opts.jsonOut)

	if opts.outPath != "" {
		if err := writeDocument(opts.outPath, inFormat, doc, stdout); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitFailed
		}
	}
	return exitOK
}

// loadConfig reads the rule file, then applies dotenv and process
// environment overrides. Process variables win over the dotenv file.
func loadConfig(opts options, lookup config.LookupFunc) (*config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return nil, err
		}
	}

	dotenv := map[string]string{}
	if opts.envFile != "" {
		env, err := godotenv.Read(opts.envFile)
		switch {
		case err == nil:
			dotenv = env
		case !errors.Is(err, os.ErrNotExist):
			return nil, fmt.Errorf("reading %s: %w", opts.envFile, err)
		}
	}

	return cfg, cfg.ApplyEnv(func(key string) (string, bool) {
		if lookup != nil {
			if v, ok := lookup(key); ok {
				return v, true
			}
		}
		v, ok := dotenv[key]
		return v, ok
	})
}

// newLogger writes text records to stderr and, when a log file is
// configured, JSON records to a rotated file.
func newLogger(cfg *config.Config, verbose bool, stderr io.Writer) (*slog.Logger, func()) {
	level := logging.ParseLevel(cfg.LogLevel)
	if cfg.LogLevel == "" {
		level = slog.LevelWarn
	}
	if verbose {
		level = slog.LevelDebug
	}
	handlerOpts := &slog.HandlerOptions{Level: level}

	console := slog.NewTextHandler(stderr, handlerOpts)
	if cfg.LogFile == "" {
		return slog.New(console), func() {}
	}

	rotator := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    10, // megabytes
		MaxBackups: 5,
		MaxAge:     30, // days
		Compress:   true,
	}
	file := slog.NewJSONHandler(rotator, handlerOpts)
	return slog.New(teeHandler{console, file}), func() { _ = rotator.Close() }
}

// teeHandler sends every record to each handler that accepts its level.
type teeHandler []slog.Handler

func (t teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range t {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (t teeHandler) Handle(ctx context.Context, r slog.Record) error {
	var errs []error
	for _, h := range t {
		if h.Enabled(ctx, r.Level) {
			errs = append(errs, h.Handle(ctx, r.Clone()))
		}
	}
	return errors.Join(errs...)
}

func (t teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(teeHandler, len(t))
	for i, h := range t {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (t teeHandler) WithGroup(name string) slog.Handler {
	out := make(teeHandler, len(t))
	for i, h := range t {
		out[i] = h.WithGroup(name)
	}
	return out
}

func readDocument(path string) (*wml.Document, format.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, format.Unknown, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, format.Unknown, err
	}
	detected, err := format.DetectFromReader(f, info.Size())
	if err != nil {
		return nil, format.Unknown, fmt.Errorf("%s: %w", path, err)
	}
	if detected == format.Unknown {
		detected = format.Detect(path)
	}
	if !detected.IsFixture() {
		return nil, detected, fmt.Errorf("%s: %w: %s (convert the document to a YAML or JSON fixture first)", path, errUnsupported, detected)
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, detected, err
	}
	doc, err := fixture.Decode(f)
	if err != nil {
		return nil, detected, fmt.Errorf("%s: %w", path, err)
	}
	return doc, detected, nil
}

func writeDocument(path string, in format.Format, doc *wml.Document, stdout io.Writer) error {
	out := in
	if path != "-" {
		if f := format.Detect(path); f.IsFixture() {
			out = f
		}
	}

	var buf bytes.Buffer
	var err error
	if out == format.JSON {
		err = fixture.EncodeJSON(&buf, doc)
	} else {
		err = fixture.EncodeYAML(&buf, doc)
	}
	if err != nil {
		return err
	}

	if path == "-" {
		_, err = stdout.Write(buf.Bytes())
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

var (
	heading = color.New(color.Bold)
	good    = color.New(color.FgGreen)
	warn    = color.New(color.FgYellow)
	bad     = color.New(color.FgRed)
)

func printResult(w io.Writer, res dochub.Result, warnings []dochub.Warning, asJSON bool) {
	if asJSON {
		msgs := make([]string, len(warnings))
		for i, wr := range warnings {
			msgs[i] = wr.String()
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		_ = enc.Encode(struct {
			Uniformity dochub.UniformityResult `json:"uniformity"`
			Semantic   dochub.SemanticResult   `json:"semantic"`
			Changed    bool                    `json:"changed"`
			Warnings   []string                `json:"warnings"`
		}{res.Uniformity, res.Semantic, res.Changed(), msgs})
		return
	}

	u, s := res.Uniformity, res.Semantic
	heading.Fprintln(w, "Uniformity")
	fmt.Fprintf(w, "  tables processed: %d, skipped: %d, cells recolored: %d\n",
		u.TablesProcessed, u.TablesSkipped, u.CellsRecolored)
	heading.Fprintln(w, "Semantic tables")
	fmt.Fprintf(w, "  found: %d (single-column %d, two-column %d), headers styled: %d\n",
		s.TablesFound, s.SingleColumnTables, s.TwoColumnTables, s.HeadersStyled)
	fmt.Fprintf(w, "  converted: %d, numbered: %d, restored: %d, links repaired: %d, guarded: %d\n",
		s.ParagraphsConverted, s.ItemsNumbered, s.ItemsRestored, s.LinksRepaired, s.GuardConversions)

	for _, wr := range warnings {
		warn.Fprintf(w, "  warning: %s\n", wr)
	}
	if res.Changed() {
		good.Fprintln(w, "Document updated")
	} else {
		fmt.Fprintln(w, "No changes")
	}
}

func printDiagnosis(w io.Writer, report diagnose.Report, asJSON bool) int {
	code := exitOK
	if report.Status() == "FAIL" {
		code = exitFailed
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		_ = enc.Encode(report.Summary())
		return code
	}

	status := good
	switch report.Status() {
	case "FAIL":
		status = bad
	case "WARN":
		status = warn
	}
	status.Fprintf(w, "%s", report.Status())
	fmt.Fprintf(w, " (%d errors, %d warnings, %d info)\n",
		report.Count(diagnose.SeverityError), report.Count(diagnose.SeverityWarning), report.Count(diagnose.SeverityInfo))

	st := report.Stats
	fmt.Fprintf(w, "paragraphs: %d, tables: %d (semantic %d), hyperlinks: %d (internal %d), numbered: %d (ordered %d, bullet %d)\n",
		st.Paragraphs, st.Tables, st.SemanticTables, st.Hyperlinks, st.InternalHyperlinks,
		st.NumberedParagraphs, st.OrderedItems, st.BulletItems)

	for _, is := range report.Issues {
		c := good
		switch is.Severity {
		case diagnose.SeverityError:
			c = bad
		case diagnose.SeverityWarning:
			c = warn
		}
		c.Fprintf(w, "[%s]", is.Severity)
		fmt.Fprintf(w, " %s: %s", is.Category, is.Message)
		if is.Location != "" {
			fmt.Fprintf(w, " (%s)", is.Location)
		}
		fmt.Fprintln(w)
		if is.Suggestion != "" {
			fmt.Fprintf(w, "    %s\n", is.Suggestion)
		}
	}
	return code
}
