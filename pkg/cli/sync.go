package cli

import (
	"context"

	"github.com/fatih/color"
	"github.com/gen3ops/dictops/pkg/cli/config"
	"github.com/gen3ops/dictops/pkg/domain/model"
	"github.com/gen3ops/dictops/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdSync() *cli.Command {
	var dictCfg config.Dictionary

	return &cli.Command{
		Name:  "sync",
		Usage: "Copy one dictionary tree over the other",
		Flags: dictCfg.Flags(),
		Commands: []*cli.Command{
			{
				Name:   "push",
				Usage:  "Promote the test dictionary to production",
				Action: syncAction(&dictCfg, model.SyncPush),
			},
			{
				Name:   "pull",
				Usage:  "Copy the production dictionary back to test",
				Action: syncAction(&dictCfg, model.SyncPull),
			},
		},
	}
}

func syncAction(dictCfg *config.Dictionary, direction model.SyncDirection) cli.ActionFunc {
	return func(ctx context.Context, c *cli.Command) error {
		if err := dictCfg.Resolve(); err != nil {
			return err
		}

		plan := &model.SyncPlan{Direction: direction}
		switch direction {
		case model.SyncPull:
			plan.Source = dictCfg.ProdDir
			plan.Dest = dictCfg.TestDir
		default:
			plan.Source = dictCfg.TestDir
			plan.Dest = dictCfg.ProdDir
		}

		uc := usecase.NewSync(newStdinPrompter())
		result, err := uc.Sync(ctx, plan)
		if err != nil {
			return err
		}

		color.Green("Synced %d files to %s", len(result.Files), result.Dest)
		return nil
	}
}
