package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/gen3ops/dictops/pkg/domain/model"
	"github.com/gen3ops/dictops/pkg/domain/types"
	"github.com/gen3ops/dictops/pkg/usecase"
	"github.com/m-mizutani/gt"
)

func TestFetchUseCase_Success(t *testing.T) {
	ctx := context.Background()
	body := []byte(`{"_settings.yaml": {"_dict_version": "v2.1.0"}}`)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	}))
	defer server.Close()

	outDir := t.TempDir()
	uc := usecase.NewFetch(server.Client())

	result, err := uc.Fetch(ctx, &model.FetchRequest{
		URL:       server.URL + "/org/dict/tags/v2.1.0/schema_dev.json",
		OutputDir: outDir,
	})

	gt.NoError(t, err)
	gt.Value(t, result.Version).Equal("v2.1.0")
	gt.Value(t, result.Path).Equal(filepath.Join(outDir, "schema_dev_v2.1.0.json"))
	gt.Number(t, result.Size).Equal(int64(len(body)))

	content, err := os.ReadFile(result.Path)
	gt.NoError(t, err)
	gt.Value(t, string(content)).Equal(string(body))
}

func TestFetchUseCase_UnknownVersion(t *testing.T) {
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	outDir := t.TempDir()
	uc := usecase.NewFetch(server.Client())

	result, err := uc.Fetch(ctx, &model.FetchRequest{
		URL:       server.URL + "/path/schema.json",
		OutputDir: outDir,
	})

	gt.NoError(t, err)
	gt.Value(t, result.Version).Equal("unknown")
	gt.Value(t, filepath.Base(result.Path)).Equal("schema_unknown.json")
}

func TestFetchUseCase_OverrideFilename(t *testing.T) {
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	outDir := t.TempDir()
	uc := usecase.NewFetch(server.Client())

	result, err := uc.Fetch(ctx, &model.FetchRequest{
		URL:        server.URL + "/tags/v9.9.9/schema.json",
		OutputName: "mydict.json",
		OutputDir:  outDir,
	})

	gt.NoError(t, err)
	gt.Value(t, filepath.Base(result.Path)).Equal("mydict.json")
}

func TestFetchUseCase_MissingURL(t *testing.T) {
	ctx := context.Background()

	var requests int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
	}))
	defer server.Close()

	uc := usecase.NewFetch(server.Client())
	_, err := uc.Fetch(ctx, &model.FetchRequest{OutputDir: t.TempDir()})

	gt.Error(t, err)
	gt.True(t, errors.Is(err, types.ErrInvalidArgument))

	// No network call is attempted for a missing URL.
	gt.Number(t, atomic.LoadInt32(&requests)).Equal(int32(0))
}

func TestFetchUseCase_TransferFailure(t *testing.T) {
	ctx := context.Background()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer server.Close()

	outDir := t.TempDir()
	uc := usecase.NewFetch(server.Client())

	_, err := uc.Fetch(ctx, &model.FetchRequest{
		URL:       server.URL + "/path/schema.json",
		OutputDir: outDir,
	})

	gt.Error(t, err)
	gt.True(t, errors.Is(err, types.ErrTransferFailed))

	// Nothing is written on an HTTP error status.
	entries, readErr := os.ReadDir(outDir)
	gt.NoError(t, readErr)
	gt.Number(t, len(entries)).Equal(0)
}
