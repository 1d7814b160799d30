package model

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// StorageProvider identifies the object store behind a destination URI.
type StorageProvider string

const (
	ProviderS3  StorageProvider = "s3"
	ProviderGCS StorageProvider = "gs"
)

// Destination is a parsed object-store URI (s3://bucket/key or gs://bucket/key).
type Destination struct {
	Provider StorageProvider
	Bucket   string
	Key      string
}

// String reassembles the URI form of the destination.
func (d Destination) String() string {
	return string(d.Provider) + "://" + d.Bucket + "/" + d.Key
}

// ParseDestination validates and splits an object-store URI.
func ParseDestination(uri string) (Destination, error) {
	var provider StorageProvider
	switch {
	case strings.HasPrefix(uri, "s3://"):
		provider = ProviderS3
	case strings.HasPrefix(uri, "gs://"):
		provider = ProviderGCS
	default:
		return Destination{}, goerr.New("destination URI must start with s3:// or gs://", goerr.V("uri", uri))
	}

	rest := uri[len(provider)+len("://"):]
	bucket, key, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return Destination{}, goerr.New("destination URI missing bucket or key", goerr.V("uri", uri))
	}

	return Destination{Provider: provider, Bucket: bucket, Key: key}, nil
}

// UploadResult reports a completed dictionary upload.
type UploadResult struct {
	Destination Destination
	Version     string // Dictionary version recorded in object metadata
	UploadID    string // Unique id recorded in object metadata
	Size        int64  // Bytes uploaded
}
