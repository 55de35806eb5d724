package config

import (
	"log/slog"

	controller "github.com/defectboard/defectboard/pkg/controller/http"
	"github.com/urfave/cli/v3"
)

// Server holds server configuration
type Server struct {
	Addr  string
	Debug bool
}

// Flags returns CLI flags for Server configuration
func (s *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Server address",
			Value:       "localhost:8050",
			Sources:     cli.EnvVars("DEFECTBOARD_ADDR"),
			Destination: &s.Addr,
		},
		&cli.BoolFlag{
			Name:        "debug",
			Usage:       "Enable debug endpoints (profiler under /debug)",
			Value:       true,
			Sources:     cli.EnvVars("DEFECTBOARD_DEBUG"),
			Destination: &s.Debug,
		},
	}
}

// Configure returns the HTTP controller configuration
func (s *Server) Configure() controller.Config {
	return controller.Config{
		Addr:  s.Addr,
		Debug: s.Debug,
	}
}

// LogValue returns structured log value
func (s Server) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("addr", s.Addr),
		slog.Bool("debug", s.Debug),
	)
}
