package interfaces

import "context"

// ObjectStore defines operations against an object storage backend.
type ObjectStore interface {
	// Put writes an object with the given metadata and content type.
	Put(ctx context.Context, bucket, key string, body []byte, metadata map[string]string, contentType string) error
}

// ReleaseResolver resolves dictionary release tags from a source repository.
type ReleaseResolver interface {
	// LatestTag returns the tag name of the repository's latest release.
	LatestTag(ctx context.Context, owner, repo string) (string, error)
}

// Notifier delivers a human-readable notification out of band.
type Notifier interface {
	Notify(ctx context.Context, text string) error
}

// Prompter asks the operator a yes/no question. Confirm returns true only
// for an explicit affirmative answer.
type Prompter interface {
	Confirm(message string) (bool, error)
}
