package cli

import (
	"context"

	"github.com/fatih/color"
	"github.com/gen3ops/dictops/pkg/cli/config"
	"github.com/gen3ops/dictops/pkg/domain/interfaces"
	"github.com/gen3ops/dictops/pkg/domain/model"
	"github.com/gen3ops/dictops/pkg/domain/types"
	"github.com/gen3ops/dictops/pkg/infra/notify"
	"github.com/gen3ops/dictops/pkg/infra/storage"
	"github.com/gen3ops/dictops/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdUpload() *cli.Command {
	var (
		storageCfg config.Storage
		slackCfg   config.Slack
	)

	flags := append(storageCfg.Flags(), slackCfg.Flags()...)

	return &cli.Command{
		Name:      "upload",
		Usage:     "Publish a bundled dictionary to object storage with version metadata",
		ArgsUsage: "<bundle.json> <s3://bucket/key | gs://bucket/key>",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			bundlePath := c.Args().Get(0)
			destURI := c.Args().Get(1)

			if bundlePath == "" || destURI == "" {
				_ = cli.ShowSubcommandHelp(c)
				return goerr.Wrap(types.ErrInvalidArgument, "bundle path and destination URI are required")
			}

			dest, err := model.ParseDestination(destURI)
			if err != nil {
				return goerr.Wrap(types.ErrInvalidArgument, err.Error(), goerr.V("uri", destURI))
			}

			stores := map[model.StorageProvider]interfaces.ObjectStore{}
			switch dest.Provider {
			case model.ProviderS3:
				store, err := storage.NewS3(ctx, storageCfg.S3Region)
				if err != nil {
					return err
				}
				stores[model.ProviderS3] = store
			case model.ProviderGCS:
				store, err := storage.NewGCS(ctx, storageCfg.GCSEndpoint)
				if err != nil {
					return err
				}
				stores[model.ProviderGCS] = store
			}

			var notifier interfaces.Notifier
			if slackCfg.WebhookURL != "" {
				notifier = notify.NewSlack(slackCfg.WebhookURL)
			}

			uc := usecase.NewUpload(stores, notifier)
			result, err := uc.Upload(ctx, bundlePath, dest)
			if err != nil {
				return err
			}

			color.Green("Uploaded dictionary %s to %s", result.Version, result.Destination.String())
			return nil
		},
	}
}
