package config

import "github.com/urfave/cli/v3"

// Storage holds object storage configuration
type Storage struct {
	S3Region    string
	GCSEndpoint string
}

// Flags returns CLI flags for storage configuration
func (c *Storage) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "s3-region",
			Usage:       "AWS region for S3 destinations (default: credential chain)",
			Destination: &c.S3Region,
			Sources:     cli.EnvVars("DICTOPS_S3_REGION"),
		},
		&cli.StringFlag{
			Name:        "gcs-endpoint",
			Usage:       "Cloud Storage endpoint override (emulator use only)",
			Destination: &c.GCSEndpoint,
			Sources:     cli.EnvVars("DICTOPS_GCS_ENDPOINT"),
		},
	}
}
