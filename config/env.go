package config

import (
	"os"
	"strconv"
	"strings"
)

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// ApplyEnv overrides fields from DOCHUB_* variables, then re-normalizes and
// validates. A nil lookup uses os.LookupEnv.
func (c *Config) ApplyEnv(lookup LookupFunc) error {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	strs := map[string]*string{
		"DOCHUB_HEADER_FILL":    &c.HeaderFill,
		"DOCHUB_SECONDARY_FILL": &c.SecondaryFill,
		"DOCHUB_OTHER_FILL":     &c.OtherFill,
		"DOCHUB_HEADER_LABEL":   &c.HeaderLabel,
		"DOCHUB_HEADING_FONT":   &c.HeadingFont,
		"DOCHUB_BODY_FONT":      &c.BodyFont,
		"DOCHUB_LOG_LEVEL":      &c.LogLevel,
		"DOCHUB_LOG_FILE":       &c.LogFile,
	}
	for key, dst := range strs {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = v
		}
	}

	floats := map[string]*float64{
		"DOCHUB_HEADING_SIZE": &c.HeadingSize,
		"DOCHUB_BODY_SIZE":    &c.BodySize,
	}
	for key, dst := range floats {
		if v, ok := lookup(key); ok {
			if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
				*dst = f
			}
		}
	}

	if v, ok := lookup("DOCHUB_PRESERVE_BOLD"); ok {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			c.PreserveBold = b
		}
	}

	c.normalize()
	return c.Validate()
}
