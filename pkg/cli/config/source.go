package config

import (
	"log/slog"
	"os"

	"github.com/defectboard/defectboard/pkg/domain/model"
	"github.com/defectboard/defectboard/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Source holds report source configuration
type Source struct {
	Dir        string
	Extensions []string
	XLSXMode   string
	ConfigFile string
}

// Flags returns CLI flags for Source configuration
func (s *Source) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "dir",
			Usage:       "Directory scanned for report files (default: working directory)",
			Category:    "Source",
			Sources:     cli.EnvVars("DEFECTBOARD_DIR"),
			Destination: &s.Dir,
		},
		&cli.StringSliceFlag{
			Name:        "ext",
			Usage:       "File name suffixes of report files",
			Category:    "Source",
			Value:       append([]string(nil), model.DefaultExtensions...),
			Sources:     cli.EnvVars("DEFECTBOARD_EXT"),
			Destination: &s.Extensions,
		},
		&cli.StringFlag{
			Name:        "xlsx-mode",
			Usage:       "How .xlsx files are read (sheet, text)",
			Category:    "Source",
			Value:       types.XLSXModeSheet.String(),
			Sources:     cli.EnvVars("DEFECTBOARD_XLSX_MODE"),
			Destination: &s.XLSXMode,
		},
		&cli.StringFlag{
			Name:        "source-config",
			Usage:       "YAML file overriding extensions and xlsx mode",
			Category:    "Source",
			Sources:     cli.EnvVars("DEFECTBOARD_SOURCE_CONFIG"),
			Destination: &s.ConfigFile,
		},
	}
}

// Directory returns the report directory, defaulting to the working directory
func (s *Source) Directory() (string, error) {
	if s.Dir != "" {
		return s.Dir, nil
	}
	dir, err := os.Getwd()
	if err != nil {
		return "", goerr.Wrap(err, "failed to get working directory")
	}
	return dir, nil
}

// Configure builds the source configuration from flags, then applies the
// YAML file when one is given
func (s *Source) Configure() (*model.SourceConfig, error) {
	cfg := &model.SourceConfig{
		Extensions: s.Extensions,
		XLSXMode:   types.XLSXMode(s.XLSXMode),
	}
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = append([]string(nil), model.DefaultExtensions...)
	}

	if s.ConfigFile != "" {
		if err := LoadSourceConfigFile(s.ConfigFile, cfg); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid source configuration",
			goerr.V("path", s.ConfigFile))
	}
	return cfg, nil
}

// LoadSourceConfigFile reads a YAML source configuration into cfg. Fields
// absent from the file keep their current value.
func LoadSourceConfigFile(path string, cfg *model.SourceConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return goerr.Wrap(err, "configuration file not found",
				goerr.V("path", path))
		}
		return goerr.Wrap(err, "failed to read configuration file",
			goerr.V("path", path))
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return goerr.Wrap(err, "failed to parse YAML configuration",
			goerr.V("path", path))
	}
	return nil
}

// LogValue returns structured log value
func (s Source) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("dir", s.Dir),
		slog.Any("extensions", s.Extensions),
		slog.String("xlsx_mode", s.XLSXMode),
		slog.String("config_file", s.ConfigFile),
	)
}
