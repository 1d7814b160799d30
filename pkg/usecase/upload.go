package usecase

import (
	"context"
	"fmt"
	"os"

	"github.com/gen3ops/dictops/pkg/domain/interfaces"
	"github.com/gen3ops/dictops/pkg/domain/model"
	"github.com/gen3ops/dictops/pkg/domain/types"
	"github.com/gen3ops/dictops/pkg/utils/async"
	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

type uploadUseCase struct {
	stores   map[model.StorageProvider]interfaces.ObjectStore
	notifier interfaces.Notifier
}

// NewUpload creates a new instance of UploadUseCase. The notifier may be nil,
// in which case successful uploads are not announced.
func NewUpload(stores map[model.StorageProvider]interfaces.ObjectStore, notifier interfaces.Notifier) interfaces.UploadUseCase {
	return &uploadUseCase{
		stores:   stores,
		notifier: notifier,
	}
}

// Upload publishes a bundled dictionary to object storage, stamping the
// object with the dictionary version and a unique upload id.
func (uc *uploadUseCase) Upload(ctx context.Context, bundlePath string, dest model.Destination) (*model.UploadResult, error) {
	logger := ctxlog.From(ctx)

	data, err := os.ReadFile(bundlePath)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read bundle file", goerr.V("path", bundlePath))
	}

	bundle, err := model.ParseBundle(data)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid bundle file", goerr.V("path", bundlePath))
	}

	version, ok := bundle.DictVersion()
	if !ok {
		return nil, goerr.New("could not determine dictionary version from bundle",
			goerr.V("path", bundlePath),
		)
	}

	store, ok := uc.stores[dest.Provider]
	if !ok {
		return nil, goerr.New("no storage backend configured for provider",
			goerr.V("provider", dest.Provider),
		)
	}

	uploadID := uuid.NewString()
	metadata := map[string]string{
		"version":   version,
		"upload-id": uploadID,
	}

	logger.Info("Uploading dictionary bundle",
		"path", bundlePath,
		"destination", dest.String(),
		"version", version,
		"upload_id", uploadID,
		"size_bytes", len(data),
	)

	if err := store.Put(ctx, dest.Bucket, dest.Key, data, metadata, "application/json"); err != nil {
		return nil, goerr.Wrap(types.ErrTransferFailed, err.Error(),
			goerr.V("destination", dest.String()),
		)
	}

	result := &model.UploadResult{
		Destination: dest,
		Version:     version,
		UploadID:    uploadID,
		Size:        int64(len(data)),
	}

	// Notification failures never fail the upload; they are logged by the
	// async dispatcher.
	if uc.notifier != nil {
		text := fmt.Sprintf("Dictionary %s uploaded to %s", version, dest.String())
		async.Dispatch(ctx, func(ctx context.Context) error {
			return uc.notifier.Notify(ctx, text)
		})
	}

	return result, nil
}
