package github

import (
	"context"
	"net/http"

	"github.com/gen3ops/dictops/pkg/domain/interfaces"
	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/goerr/v2"
)

type client struct {
	githubClient *github.Client
}

// Option configures the GitHub client.
type Option func(*client)

// WithBaseURL points the client at a different API endpoint (tests).
func WithBaseURL(rawURL string) Option {
	return func(c *client) {
		if u, err := c.githubClient.BaseURL.Parse(rawURL); err == nil {
			c.githubClient.BaseURL = u
		}
	}
}

// NewClient creates a release resolver against the GitHub REST API.
// Dictionary repositories are public, so the token is optional and only
// raises rate limits.
func NewClient(token string, opts ...Option) interfaces.ReleaseResolver {
	githubClient := github.NewClient(http.DefaultClient)
	if token != "" {
		githubClient = githubClient.WithAuthToken(token)
	}

	c := &client{githubClient: githubClient}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// LatestTag returns the tag name of the repository's latest release.
func (c *client) LatestTag(ctx context.Context, owner, repo string) (string, error) {
	release, _, err := c.githubClient.Repositories.GetLatestRelease(ctx, owner, repo)
	if err != nil {
		return "", goerr.Wrap(err, "failed to get latest release",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
		)
	}

	tag := release.GetTagName()
	if tag == "" {
		return "", goerr.New("latest release has no tag name",
			goerr.V("owner", owner),
			goerr.V("repo", repo),
		)
	}
	return tag, nil
}
