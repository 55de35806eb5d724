package config

import (
	"log/slog"
	"os"

	"github.com/defectboard/defectboard/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Logger holds logger configuration
type Logger struct {
	Level  string
	Format string
}

// Flags returns CLI flags for Logger configuration
func (l *Logger) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level (debug, info, warn, error)",
			Category:    "Logging",
			Value:       "info",
			Sources:     cli.EnvVars("DEFECTBOARD_LOG_LEVEL"),
			Destination: &l.Level,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "Log format (console, json, auto)",
			Category:    "Logging",
			Value:       "auto",
			Sources:     cli.EnvVars("DEFECTBOARD_LOG_FORMAT"),
			Destination: &l.Format,
		},
	}
}

// Configure builds the logger. Logs go to stderr so that stdout stays free
// for exported data.
func (l *Logger) Configure() (*slog.Logger, error) {
	level, err := logging.ParseLogLevel(l.Level)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid logger configuration")
	}
	format, err := logging.ParseFormat(l.Format)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid logger configuration")
	}

	return logging.NewLogger(level, os.Stderr, format), nil
}

// LogValue returns structured log value
func (l Logger) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("level", l.Level),
		slog.String("format", l.Format),
	)
}
