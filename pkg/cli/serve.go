package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/defectboard/defectboard/pkg/cli/config"
	controller "github.com/defectboard/defectboard/pkg/controller/http"
	"github.com/defectboard/defectboard/pkg/usecase"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg config.Server
		sourceCfg config.Source
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Aggregate reports and start the dashboard server",
		Flags: joinFlags(
			serverCfg.Flags(),
			sourceCfg.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting defectboard server",
				slog.Any("server", serverCfg),
				slog.Any("source", sourceCfg),
			)

			// All reports are read before the server accepts requests
			table, err := loadTable(ctx, &sourceCfg)
			if err != nil {
				return err
			}

			server, err := controller.NewServer(ctx, serverCfg.Configure(), usecase.NewDashboard(table))
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- err
				}
			}()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(sigChan)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			case err := <-errCh:
				return goerr.Wrap(err, "HTTP server failed", goerr.V("addr", serverCfg.Addr))
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
