package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gen3ops/dictops/pkg/cli/config"
	controller "github.com/gen3ops/dictops/pkg/controller/http"
	"github.com/gen3ops/dictops/pkg/domain/model"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var serverCfg config.Server

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Serve a bundled dictionary over HTTP for local development",
		Flags:   serverCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			data, err := os.ReadFile(serverCfg.BundlePath)
			if err != nil {
				return goerr.Wrap(err, "failed to read bundle file", goerr.V("path", serverCfg.BundlePath))
			}

			bundle, err := model.ParseBundle(data)
			if err != nil {
				return goerr.Wrap(err, "invalid bundle file", goerr.V("path", serverCfg.BundlePath))
			}

			logger.Info("Starting dictionary server",
				slog.String("addr", serverCfg.Addr),
				slog.String("bundle", serverCfg.BundlePath),
				slog.Int("schemas", len(bundle)),
			)

			server, err := controller.NewServer(
				ctx,
				bundle,
				controller.WithAddr(serverCfg.Addr),
			)
			if err != nil {
				return goerr.Wrap(err, "failed to create HTTP server")
			}

			// Start server in goroutine
			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			// Wait for interrupt signal
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			// Graceful shutdown
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
