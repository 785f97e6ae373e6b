// Package config holds the house formatting rules the engine applies.
//
// Configuration is read from YAML, completed with defaults, optionally
// overridden from DOCHUB_* environment variables and validated before use.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"

	"github.com/ItMeDiaTech/Documentation-Hub-sub002/wml"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// IndentRule sets the bullet/number position and text position of one list
// level, in inches. Rules with SymbolIndent >= TextIndent are skipped.
type IndentRule struct {
	Level        int     `yaml:"level"` // 1-based list level
	SymbolIndent float64 `yaml:"symbol_indent"`
	TextIndent   float64 `yaml:"text_indent"`
}

// Config is the caller-supplied rule set.
type Config struct {
	// Semantic table colors.
	HeaderFill     string   `yaml:"header_fill" validate:"required,hexfill"`
	SecondaryFill  string   `yaml:"secondary_fill" validate:"required,hexfill"`
	PreservedFills []string `yaml:"preserved_fills" validate:"dive,hexfill"` // extra; see Preserved
	HeaderLabel    string   `yaml:"header_label"`
	FoldHeaderCase bool     `yaml:"fold_header_case"`

	// Generic table colors.
	OtherFill      string `yaml:"other_fill" validate:"required,hexfill"`
	SingleCellFill string `yaml:"single_cell_fill" validate:"required,hexfill"`

	// Fonts and spacing.
	HeadingFont   string  `yaml:"heading_font" validate:"required"`
	HeadingSize   float64 `yaml:"heading_size" validate:"gt=0,lte=96"`
	BodyFont      string  `yaml:"body_font" validate:"required"`
	BodySize      float64 `yaml:"body_size" validate:"gt=0,lte=96"`
	PreserveBold  bool    `yaml:"preserve_bold"`
	SpacingBefore float64 `yaml:"spacing_before" validate:"gte=0"`
	SpacingAfter  float64 `yaml:"spacing_after" validate:"gte=0"`

	// Style names.
	HeadingStyle   string `yaml:"heading_style" validate:"required"`
	ListStyle      string `yaml:"list_style" validate:"required"`
	NormalStyle    string `yaml:"normal_style" validate:"required"`
	HyperlinkStyle string `yaml:"hyperlink_style" validate:"required"`
	LinkColor      string `yaml:"link_color" validate:"required,hexfill"`

	// List handling.
	Indentation            []IndentRule `yaml:"indentation"`
	BlankLinesBetweenItems bool         `yaml:"blank_lines_between_items"`

	// Thresholds.
	MaxHeaderLines int `yaml:"max_header_lines" validate:"gte=1"`
	GuardLookahead int `yaml:"guard_lookahead" validate:"gte=1"`

	// Logging (CLI only).
	LogLevel string `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`
	LogFile  string `yaml:"log_file"`
}

// Default returns the built-in rule set.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads a YAML file, applies defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML configuration, applies defaults and validates it.
func Parse(data []byte) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) applyDefaults() {
	setString(&c.HeaderFill, "FFC000")
	setString(&c.SecondaryFill, "DEEAF6")
	setString(&c.OtherFill, "DFDFDF")
	setString(&c.SingleCellFill, "BFBFBF")
	setString(&c.HeadingFont, "Verdana")
	setString(&c.BodyFont, "Verdana")
	setString(&c.HeadingStyle, "Heading2")
	setString(&c.ListStyle, "ListParagraph")
	setString(&c.NormalStyle, "Normal")
	setString(&c.HyperlinkStyle, "Hyperlink")
	setString(&c.LinkColor, "0563C1")
	if c.HeadingSize <= 0 {
		c.HeadingSize = 14
	}
	if c.BodySize <= 0 {
		c.BodySize = 12
	}
	if c.MaxHeaderLines <= 0 {
		c.MaxHeaderLines = 2
	}
	if c.GuardLookahead <= 0 {
		c.GuardLookahead = 3
	}
	c.normalize()
}

// normalize canonicalizes colors and text so later comparisons are simple.
func (c *Config) normalize() {
	for _, p := range []*string{&c.HeaderFill, &c.SecondaryFill, &c.OtherFill, &c.SingleCellFill, &c.LinkColor} {
		*p = wml.NormalizeColor(*p)
	}
	for i, f := range c.PreservedFills {
		c.PreservedFills[i] = wml.NormalizeColor(f)
	}
	c.HeaderLabel = norm.NFC.String(strings.TrimSpace(c.HeaderLabel))
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
}

func setString(dst *string, def string) {
	if strings.TrimSpace(*dst) == "" {
		*dst = def
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("hexfill", func(fl validator.FieldLevel) bool {
		return wml.IsHexColor(fl.Field().String())
	})
	return v
}

// Validate checks the configuration. Indentation rules are not validated
// here: invalid rules are skipped with a warning when applied.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// Preserved returns the preserved-color allowlist: HeaderFill and
// SecondaryFill followed by PreservedFills, normalized and without
// duplicates. It is derived on every call, so fields changed after loading
// are honored.
func (c *Config) Preserved() []string {
	fills := make([]string, 0, 2+len(c.PreservedFills))
	for _, f := range append([]string{c.HeaderFill, c.SecondaryFill}, c.PreservedFills...) {
		f = wml.NormalizeColor(f)
		if f != "" && !slices.Contains(fills, f) {
			fills = append(fills, f)
		}
	}
	return fills
}

// IsPreserved reports whether a fill belongs to the preserved-color
// allowlist. The uniformity pass consults it before recoloring a cell.
func (c *Config) IsPreserved(fill string) bool {
	fill = wml.NormalizeColor(fill)
	return fill != "" && slices.Contains(c.Preserved(), fill)
}
