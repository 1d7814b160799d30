package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/gen3ops/dictops/pkg/cli/config"
	"github.com/gen3ops/dictops/pkg/domain/model"
	"github.com/gen3ops/dictops/pkg/domain/types"
	githubinfra "github.com/gen3ops/dictops/pkg/infra/github"
	"github.com/gen3ops/dictops/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// defaultURLTemplate is the raw-file location of a released dictionary
// bundle; {repo} and {tag} are filled in when --latest resolves a release.
const defaultURLTemplate = "https://raw.githubusercontent.com/{repo}/refs/tags/{tag}/schema_dev.json"

func cmdFetch() *cli.Command {
	var (
		githubCfg   config.GitHub
		outputDir   string
		repo        string
		latest      bool
		urlTemplate string
	)

	flags := append(githubCfg.Flags(),
		&cli.StringFlag{
			Name:        "output-dir",
			Usage:       "Directory to write the fetched file (default: the executable's directory)",
			Destination: &outputDir,
			Sources:     cli.EnvVars("DICTOPS_OUTPUT_DIR"),
		},
		&cli.StringFlag{
			Name:        "repo",
			Usage:       "GitHub repository (owner/name) hosting dictionary releases",
			Destination: &repo,
			Sources:     cli.EnvVars("DICTOPS_DICT_REPO"),
		},
		&cli.BoolFlag{
			Name:        "latest",
			Usage:       "Resolve the latest release tag of --repo instead of taking a URL",
			Destination: &latest,
		},
		&cli.StringFlag{
			Name:        "url-template",
			Usage:       "Bundle URL template used with --latest",
			Value:       defaultURLTemplate,
			Destination: &urlTemplate,
		},
	)

	return &cli.Command{
		Name:      "fetch",
		Usage:     "Download a dictionary bundle, tagging the filename with its version",
		ArgsUsage: "<dict_url> [output_file]",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			rawURL := c.Args().First()
			override := c.Args().Get(1)

			if rawURL == "" && !latest {
				_ = cli.ShowSubcommandHelp(c)
				return goerr.Wrap(types.ErrInvalidArgument, "dictionary URL is required")
			}

			if latest {
				owner, name, ok := strings.Cut(repo, "/")
				if !ok || owner == "" || name == "" {
					return goerr.Wrap(types.ErrInvalidArgument, "--latest requires --repo in owner/name form",
						goerr.V("repo", repo),
					)
				}

				resolver := githubinfra.NewClient(githubCfg.Token)
				tag, err := resolver.LatestTag(ctx, owner, name)
				if err != nil {
					return err
				}
				rawURL = strings.NewReplacer("{repo}", repo, "{tag}", tag).Replace(urlTemplate)
			}

			if outputDir == "" {
				dir, err := selfDir()
				if err != nil {
					return err
				}
				outputDir = dir
			}

			uc := usecase.NewFetch(nil)
			result, err := uc.Fetch(ctx, &model.FetchRequest{
				URL:        rawURL,
				OutputName: override,
				OutputDir:  outputDir,
			})
			if err != nil {
				return err
			}

			fmt.Println(result.Path)
			color.Green("Fetched dictionary %s (%d bytes)", result.Version, result.Size)
			return nil
		},
	}
}

// selfDir mirrors the historical tooling, which dropped fetched files next
// to the utility itself.
func selfDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", goerr.Wrap(err, "failed to locate executable")
	}
	return filepath.Dir(exe), nil
}
