package usecase

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gen3ops/dictops/pkg/domain/interfaces"
	"github.com/gen3ops/dictops/pkg/domain/model"
	"github.com/gen3ops/dictops/pkg/domain/types"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

type fetchUseCase struct {
	httpClient *http.Client
}

// NewFetch creates a new instance of FetchUseCase. A nil client falls back
// to http.DefaultClient.
func NewFetch(httpClient *http.Client) interfaces.FetchUseCase {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &fetchUseCase{
		httpClient: httpClient,
	}
}

// Fetch downloads the resource to a file named after the URL's version token.
// Single best-effort attempt: no retries, no rollback of a partial file.
func (uc *fetchUseCase) Fetch(ctx context.Context, req *model.FetchRequest) (*model.FetchResult, error) {
	logger := ctxlog.From(ctx)

	if req.URL == "" {
		return nil, goerr.Wrap(types.ErrInvalidArgument, "resource URL is required")
	}

	token := model.ExtractVersionToken(req.URL)
	filename, err := model.DeriveFilename(req.URL, req.OutputName, token)
	if err != nil {
		return nil, goerr.Wrap(types.ErrInvalidArgument, err.Error(), goerr.V("url", req.URL))
	}

	outPath := filepath.Join(req.OutputDir, filename)

	logger.Info("Fetching dictionary",
		"url", req.URL,
		"version", token,
		"output", outPath,
	)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.URL, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create download request", goerr.V("url", req.URL))
	}

	resp, err := uc.httpClient.Do(httpReq)
	if err != nil {
		return nil, goerr.Wrap(types.ErrTransferFailed, err.Error(), goerr.V("url", req.URL))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, goerr.Wrap(types.ErrTransferFailed, "unexpected response status",
			goerr.V("url", req.URL),
			goerr.V("status", resp.StatusCode),
		)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create output file", goerr.V("path", outPath))
	}
	defer out.Close()

	size, err := io.Copy(out, resp.Body)
	if err != nil {
		return nil, goerr.Wrap(types.ErrTransferFailed, err.Error(), goerr.V("path", outPath))
	}

	logger.Info("Download complete", "path", outPath, "size_bytes", size)

	return &model.FetchResult{
		Path:    outPath,
		Size:    size,
		Version: token,
	}, nil
}
