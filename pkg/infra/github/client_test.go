package github_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	githubinfra "github.com/gen3ops/dictops/pkg/infra/github"
	"github.com/m-mizutani/gt"
)

func TestClient_LatestTag(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/gen3ops/dictionary/releases/latest" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"tag_name": "v2.1.0", "name": "Release v2.1.0"}`))
	}))
	defer server.Close()

	client := githubinfra.NewClient("", githubinfra.WithBaseURL(server.URL+"/"))

	tag, err := client.LatestTag(context.Background(), "gen3ops", "dictionary")
	gt.NoError(t, err)
	gt.Value(t, tag).Equal("v2.1.0")
}

func TestClient_LatestTag_NoTagName(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name": "untagged"}`))
	}))
	defer server.Close()

	client := githubinfra.NewClient("", githubinfra.WithBaseURL(server.URL+"/"))

	_, err := client.LatestTag(context.Background(), "gen3ops", "dictionary")
	gt.Error(t, err)
}

func TestClient_LatestTag_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message": "Not Found"}`, http.StatusNotFound)
	}))
	defer server.Close()

	client := githubinfra.NewClient("", githubinfra.WithBaseURL(server.URL+"/"))

	_, err := client.LatestTag(context.Background(), "gen3ops", "missing")
	gt.Error(t, err)
}
