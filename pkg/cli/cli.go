package cli

import (
	"context"
	"log/slog"

	"github.com/gen3ops/dictops/pkg/cli/config"
	"github.com/gen3ops/dictops/pkg/domain/types"
	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/ctxlog"
	"github.com/urfave/cli/v3"
)

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	var loggerCfg config.Logger
	var sentryCfg config.Sentry
	var logger *slog.Logger
	flushSentry := func() {}

	app := &cli.Command{
		Name:    "dictops",
		Usage:   "Gen3 data dictionary operations toolkit",
		Version: types.Version,
		Flags:   append(loggerCfg.Flags(), sentryCfg.Flags()...),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			var err error
			logger, err = loggerCfg.Configure()
			if err != nil {
				return nil, err
			}

			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)

			flushSentry, err = sentryCfg.Configure(types.Version)
			if err != nil {
				return nil, err
			}
			return ctx, nil
		},
		Commands: []*cli.Command{
			cmdSync(),
			cmdFetch(),
			cmdEnums(),
			cmdUpload(),
			cmdServe(),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("CLI execution failed", slog.Any("error", err))
		sentry.CaptureException(err)
		flushSentry()
		return err
	}

	flushSentry()
	return nil
}
