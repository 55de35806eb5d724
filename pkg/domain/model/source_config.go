package model

import (
	"strings"

	"github.com/defectboard/defectboard/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// DefaultExtensions are the file name suffixes selected when none are configured
var DefaultExtensions = []string{".xlsx", ".txt"}

// SourceConfig controls which files of the report directory are ingested
type SourceConfig struct {
	Extensions []string       `yaml:"extensions"`
	XLSXMode   types.XLSXMode `yaml:"xlsx_mode"`
}

// DefaultSourceConfig returns the configuration matching the legacy report layout
func DefaultSourceConfig() *SourceConfig {
	return &SourceConfig{
		Extensions: append([]string(nil), DefaultExtensions...),
		XLSXMode:   types.XLSXModeSheet,
	}
}

// Validate validates the source configuration
func (c *SourceConfig) Validate() error {
	if len(c.Extensions) == 0 {
		return goerr.Wrap(ErrInvalidSourceConfig, "at least one extension is required")
	}
	for i, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return goerr.Wrap(ErrInvalidSourceConfig, "extension must start with a dot",
				goerr.V("index", i),
				goerr.V("extension", ext))
		}
	}
	if !c.XLSXMode.IsValid() {
		return goerr.Wrap(ErrInvalidSourceConfig, "invalid xlsx mode",
			goerr.V("xlsx_mode", c.XLSXMode))
	}
	return nil
}

// Match returns the configured extension that name ends with, or "" when the
// file is not eligible. The comparison is case-sensitive.
func (c *SourceConfig) Match(name string) string {
	for _, ext := range c.Extensions {
		if strings.HasSuffix(name, ext) {
			return ext
		}
	}
	return ""
}
