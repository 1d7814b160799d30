package usecase

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gen3ops/dictops/pkg/domain/interfaces"
	"github.com/gen3ops/dictops/pkg/domain/model"
	"github.com/gen3ops/dictops/pkg/domain/types"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

type syncUseCase struct {
	prompter interfaces.Prompter
}

// NewSync creates a new instance of SyncUseCase
func NewSync(prompter interfaces.Prompter) interfaces.SyncUseCase {
	return &syncUseCase{
		prompter: prompter,
	}
}

// Sync replaces the destination dictionary tree with a copy of the source.
// An existing destination is only removed after the operator confirms; a
// declined prompt aborts without touching anything. There is no rollback if
// the copy fails partway.
func (uc *syncUseCase) Sync(ctx context.Context, plan *model.SyncPlan) (*model.SyncResult, error) {
	logger := ctxlog.From(ctx)

	srcInfo, err := os.Stat(plan.Source)
	if err != nil {
		return nil, goerr.Wrap(err, "source dictionary not found", goerr.V("source", plan.Source))
	}
	if !srcInfo.IsDir() {
		return nil, goerr.New("source dictionary is not a directory", goerr.V("source", plan.Source))
	}

	result := &model.SyncResult{Dest: plan.Dest}

	if _, err := os.Stat(plan.Dest); err == nil {
		ok, err := uc.prompter.Confirm("Destination " + plan.Dest + " already exists. Overwrite?")
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read confirmation")
		}
		if !ok {
			return nil, goerr.Wrap(types.ErrDeclined, "destination left unchanged", goerr.V("dest", plan.Dest))
		}

		logger.Info("Removing existing destination", "dest", plan.Dest)
		if err := os.RemoveAll(plan.Dest); err != nil {
			return nil, goerr.Wrap(err, "failed to remove destination", goerr.V("dest", plan.Dest))
		}
		result.Replaced = true
	} else if !os.IsNotExist(err) {
		return nil, goerr.Wrap(err, "failed to inspect destination", goerr.V("dest", plan.Dest))
	}

	if err := os.MkdirAll(plan.Dest, 0755); err != nil {
		return nil, goerr.Wrap(err, "failed to create destination", goerr.V("dest", plan.Dest))
	}

	if err := uc.copyTree(plan.Source, plan.Dest, result); err != nil {
		return nil, err
	}

	logger.Info("Dictionary sync complete",
		"direction", plan.Direction,
		"source", plan.Source,
		"dest", plan.Dest,
		"file_count", len(result.Files),
		"total_size_bytes", result.TotalSize,
		"replaced", result.Replaced,
	)

	return result, nil
}

// copyTree copies the source tree into dest, preserving relative structure
// and file modes.
func (uc *syncUseCase) copyTree(src, dest string, result *model.SyncResult) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return goerr.Wrap(err, "failed to walk source tree", goerr.V("path", path))
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return goerr.Wrap(err, "failed to resolve relative path", goerr.V("path", path))
		}
		if rel == "." {
			return nil
		}

		destPath := filepath.Join(dest, rel)
		info, err := d.Info()
		if err != nil {
			return goerr.Wrap(err, "failed to stat source entry", goerr.V("path", path))
		}

		if d.IsDir() {
			if err := os.MkdirAll(destPath, info.Mode().Perm()); err != nil {
				return goerr.Wrap(err, "failed to create directory", goerr.V("dest", destPath))
			}
			return nil
		}

		size, err := copyFile(path, destPath, info.Mode().Perm())
		if err != nil {
			return err
		}

		result.Files = append(result.Files, filepath.ToSlash(rel))
		result.TotalSize += size
		return nil
	})
}

func copyFile(src, dest string, mode fs.FileMode) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to open source file", goerr.V("src", src))
	}
	defer in.Close()

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, mode)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to create destination file", goerr.V("dest", dest))
	}
	defer out.Close()

	size, err := io.Copy(out, in)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to copy file content", goerr.V("dest", dest))
	}

	return size, nil
}
