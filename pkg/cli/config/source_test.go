package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/defectboard/defectboard/pkg/cli/config"
	"github.com/defectboard/defectboard/pkg/domain/model"
	"github.com/defectboard/defectboard/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "source.yaml")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0o644)).Required()
	return path
}

func TestSourceConfigure(t *testing.T) {
	t.Run("flags only", func(t *testing.T) {
		src := config.Source{Extensions: []string{".txt"}, XLSXMode: "text"}
		cfg, err := src.Configure()
		gt.NoError(t, err).Required()
		gt.Equal(t, cfg.Extensions, []string{".txt"})
		gt.Equal(t, cfg.XLSXMode, types.XLSXModeText)
	})

	t.Run("empty extensions fall back to defaults", func(t *testing.T) {
		src := config.Source{XLSXMode: "sheet"}
		cfg, err := src.Configure()
		gt.NoError(t, err).Required()
		gt.Equal(t, cfg.Extensions, []string{".xlsx", ".txt"})
	})

	t.Run("yaml file overrides flags", func(t *testing.T) {
		path := writeConfig(t, "extensions:\n  - .rpt\nxlsx_mode: text\n")
		src := config.Source{Extensions: []string{".txt"}, XLSXMode: "sheet", ConfigFile: path}
		cfg, err := src.Configure()
		gt.NoError(t, err).Required()
		gt.Equal(t, cfg.Extensions, []string{".rpt"})
		gt.Equal(t, cfg.XLSXMode, types.XLSXModeText)
	})

	t.Run("yaml file keeps unset fields", func(t *testing.T) {
		path := writeConfig(t, "xlsx_mode: text\n")
		src := config.Source{Extensions: []string{".txt"}, XLSXMode: "sheet", ConfigFile: path}
		cfg, err := src.Configure()
		gt.NoError(t, err).Required()
		gt.Equal(t, cfg.Extensions, []string{".txt"})
	})

	t.Run("invalid xlsx mode", func(t *testing.T) {
		src := config.Source{XLSXMode: "binary"}
		_, err := src.Configure()
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrInvalidSourceConfig))
	})

	t.Run("missing yaml file", func(t *testing.T) {
		src := config.Source{XLSXMode: "sheet", ConfigFile: filepath.Join(t.TempDir(), "none.yaml")}
		_, err := src.Configure()
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("configuration file not found")
	})

	t.Run("broken yaml file", func(t *testing.T) {
		path := writeConfig(t, "extensions: [.txt\n")
		src := config.Source{XLSXMode: "sheet", ConfigFile: path}
		_, err := src.Configure()
		gt.Error(t, err)
		gt.S(t, err.Error()).Contains("failed to parse YAML configuration")
	})
}

func TestSourceDirectory(t *testing.T) {
	t.Run("explicit directory", func(t *testing.T) {
		src := config.Source{Dir: "/data/reports"}
		dir, err := src.Directory()
		gt.NoError(t, err)
		gt.Equal(t, dir, "/data/reports")
	})

	t.Run("defaults to working directory", func(t *testing.T) {
		wd, err := os.Getwd()
		gt.NoError(t, err).Required()

		src := config.Source{}
		dir, err := src.Directory()
		gt.NoError(t, err)
		gt.Equal(t, dir, wd)
	})
}

func TestLoggerConfigure(t *testing.T) {
	t.Run("valid configuration", func(t *testing.T) {
		l := config.Logger{Level: "debug", Format: "json"}
		logger, err := l.Configure()
		gt.NoError(t, err)
		gt.V(t, logger).NotNil()
	})

	t.Run("invalid format", func(t *testing.T) {
		l := config.Logger{Level: "info", Format: "xml"}
		_, err := l.Configure()
		gt.Error(t, err)
	})

	t.Run("invalid level", func(t *testing.T) {
		l := config.Logger{Level: "loud", Format: "auto"}
		_, err := l.Configure()
		gt.Error(t, err)
	})
}
