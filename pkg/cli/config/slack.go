package config

import "github.com/urfave/cli/v3"

// Slack holds notification configuration
type Slack struct {
	WebhookURL string
}

// Flags returns CLI flags for Slack configuration
func (c *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-webhook",
			Usage:       "Slack incoming webhook URL for upload notifications",
			Destination: &c.WebhookURL,
			Sources:     cli.EnvVars("DICTOPS_SLACK_WEBHOOK"),
		},
	}
}
