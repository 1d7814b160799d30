package interfaces

import (
	"context"

	"github.com/gen3ops/dictops/pkg/domain/model"
)

// SyncUseCase defines the directory sync operation between dictionary trees.
type SyncUseCase interface {
	// Sync replaces the plan's destination with a copy of the source tree,
	// prompting before an existing destination is removed.
	Sync(ctx context.Context, plan *model.SyncPlan) (*model.SyncResult, error)
}

// FetchUseCase defines the versioned dictionary download operation.
type FetchUseCase interface {
	// Fetch downloads the requested resource to a version-tagged local file.
	Fetch(ctx context.Context, req *model.FetchRequest) (*model.FetchResult, error)
}

// EnumsUseCase defines the enum CSV to definitions YAML merge.
type EnumsUseCase interface {
	// Merge reads enum rows from csvPath and rewrites the enum entries in the
	// definitions file at yamlPath. Returns the enum type names written.
	Merge(ctx context.Context, csvPath, yamlPath string) ([]string, error)
}

// UploadUseCase defines the bundled dictionary publish operation.
type UploadUseCase interface {
	// Upload publishes a bundle file to the parsed destination with version
	// metadata derived from the bundle settings.
	Upload(ctx context.Context, bundlePath string, dest model.Destination) (*model.UploadResult, error)
}
