// Package notify delivers out-of-band notifications for completed operations.
package notify

import (
	"context"

	"github.com/gen3ops/dictops/pkg/domain/interfaces"
	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"
)

type slackNotifier struct {
	webhookURL string
}

// NewSlack creates a Notifier posting to a Slack incoming webhook.
func NewSlack(webhookURL string) interfaces.Notifier {
	return &slackNotifier{webhookURL: webhookURL}
}

// Notify posts the text as a Slack message.
func (n *slackNotifier) Notify(ctx context.Context, text string) error {
	msg := &slack.WebhookMessage{Text: text}
	if err := slack.PostWebhookContext(ctx, n.webhookURL, msg); err != nil {
		return goerr.Wrap(err, "failed to post Slack notification")
	}
	return nil
}
