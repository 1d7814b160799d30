package cli

import (
	"context"

	"github.com/fatih/color"
	"github.com/gen3ops/dictops/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdEnums() *cli.Command {
	var (
		csvPath  string
		yamlPath string
	)

	return &cli.Command{
		Name:  "enums",
		Usage: "Merge enum definitions from a CSV into the definitions YAML",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "csv",
				Usage:       "CSV file with columns type_name,enum,enum_definition,source,term_id",
				Required:    true,
				Destination: &csvPath,
				Sources:     cli.EnvVars("DICTOPS_ENUM_CSV"),
			},
			&cli.StringFlag{
				Name:        "definitions",
				Usage:       "Definitions YAML file to update in place",
				Required:    true,
				Destination: &yamlPath,
				Sources:     cli.EnvVars("DICTOPS_DEFINITIONS"),
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			uc := usecase.NewEnums()
			names, err := uc.Merge(ctx, csvPath, yamlPath)
			if err != nil {
				return err
			}

			color.Green("Updated %d enum types in %s", len(names), yamlPath)
			return nil
		},
	}
}
