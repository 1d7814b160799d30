package storage

import (
	"context"

	"cloud.google.com/go/storage"
	"github.com/gen3ops/dictops/pkg/domain/interfaces"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/option"
)

type gcsStore struct {
	client *storage.Client
}

// NewGCS creates a Cloud Storage backed object store. A non-empty endpoint
// points the client at an emulator and disables authentication.
func NewGCS(ctx context.Context, endpoint string) (interfaces.ObjectStore, error) {
	var opts []option.ClientOption
	if endpoint != "" {
		opts = append(opts,
			option.WithEndpoint(endpoint),
			option.WithoutAuthentication(),
		)
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Cloud Storage client")
	}

	return &gcsStore{client: client}, nil
}

// Put writes the object with user metadata and content type.
func (s *gcsStore) Put(ctx context.Context, bucket, key string, body []byte, metadata map[string]string, contentType string) error {
	w := s.client.Bucket(bucket).Object(key).NewWriter(ctx)
	w.ContentType = contentType
	w.Metadata = metadata

	if _, err := w.Write(body); err != nil {
		_ = w.Close()
		return goerr.Wrap(err, "failed to write Cloud Storage object",
			goerr.V("bucket", bucket),
			goerr.V("key", key),
		)
	}

	if err := w.Close(); err != nil {
		return goerr.Wrap(err, "failed to finalize Cloud Storage object",
			goerr.V("bucket", bucket),
			goerr.V("key", key),
		)
	}
	return nil
}
