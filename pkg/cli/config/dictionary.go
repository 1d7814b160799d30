package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
)

// Built-in fallbacks matching the repository layout of a Gen3 dictionary.
const (
	DefaultTestDir = "dictionary/test_dict"
	DefaultProdDir = "dictionary/prod_dict"
)

// Dictionary holds the dictionary tree locations. Precedence per field:
// explicit flag/env value, then dictops.toml, then the built-in default.
type Dictionary struct {
	ConfigPath string
	TestDir    string
	ProdDir    string
}

type fileConfig struct {
	Dictionary struct {
		TestDir string `toml:"test_dir"`
		ProdDir string `toml:"prod_dir"`
	} `toml:"dictionary"`
}

// Flags returns CLI flags for dictionary configuration
func (c *Dictionary) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "Path to dictops.toml",
			Value:       "dictops.toml",
			Destination: &c.ConfigPath,
			Sources:     cli.EnvVars("DICTOPS_CONFIG"),
		},
		&cli.StringFlag{
			Name:        "test-dir",
			Usage:       "Test dictionary directory",
			Destination: &c.TestDir,
			Sources:     cli.EnvVars("DICTOPS_TEST_DIR"),
		},
		&cli.StringFlag{
			Name:        "prod-dir",
			Usage:       "Production dictionary directory",
			Destination: &c.ProdDir,
			Sources:     cli.EnvVars("DICTOPS_PROD_DIR"),
		},
	}
}

// Resolve fills unset fields from the TOML config file (when present) and
// the built-in defaults.
func (c *Dictionary) Resolve() error {
	data, err := os.ReadFile(c.ConfigPath)
	switch {
	case err == nil:
		var fc fileConfig
		if err := toml.Unmarshal(data, &fc); err != nil {
			return goerr.Wrap(err, "failed to parse config file", goerr.V("path", c.ConfigPath))
		}
		if c.TestDir == "" {
			c.TestDir = fc.Dictionary.TestDir
		}
		if c.ProdDir == "" {
			c.ProdDir = fc.Dictionary.ProdDir
		}
	case !os.IsNotExist(err):
		return goerr.Wrap(err, "failed to read config file", goerr.V("path", c.ConfigPath))
	}

	if c.TestDir == "" {
		c.TestDir = DefaultTestDir
	}
	if c.ProdDir == "" {
		c.ProdDir = DefaultProdDir
	}
	return nil
}
