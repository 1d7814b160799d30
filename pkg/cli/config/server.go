package config

import "github.com/urfave/cli/v3"

// Server holds server configuration
type Server struct {
	Addr       string
	BundlePath string
}

// Flags returns CLI flags for server configuration
func (c *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Server address",
			Value:       "localhost:8080",
			Destination: &c.Addr,
			Sources:     cli.EnvVars("DICTOPS_ADDR"),
		},
		&cli.StringFlag{
			Name:        "bundle",
			Usage:       "Path to the bundled dictionary JSON to serve",
			Required:    true,
			Destination: &c.BundlePath,
			Sources:     cli.EnvVars("DICTOPS_BUNDLE"),
		},
	}
}
