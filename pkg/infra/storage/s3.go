// Package storage provides object-store backends for dictionary uploads.
package storage

import (
	"bytes"
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gen3ops/dictops/pkg/domain/interfaces"
	"github.com/m-mizutani/goerr/v2"
)

type s3Store struct {
	client *s3.Client
}

// NewS3 creates an S3-backed object store using the default AWS credential
// chain. An empty region defers to the environment/shared config.
func NewS3(ctx context.Context, region string) (interfaces.ObjectStore, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load AWS configuration")
	}
	if region != "" {
		cfg.Region = region
	}

	return &s3Store{
		client: s3.NewFromConfig(cfg),
	}, nil
}

// Put writes the object with user metadata and content type.
func (s *s3Store) Put(ctx context.Context, bucket, key string, body []byte, metadata map[string]string, contentType string) error {
	input := &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		Metadata:    metadata,
		ContentType: aws.String(contentType),
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return goerr.Wrap(err, "failed to put S3 object",
			goerr.V("bucket", bucket),
			goerr.V("key", key),
		)
	}
	return nil
}
