package http

import (
	"encoding/json"
	"net/http"

	"github.com/gen3ops/dictops/pkg/domain/model"
	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// DictionaryHandler serves a dictionary bundle loaded at startup.
type DictionaryHandler struct {
	bundle model.Bundle
}

// NewDictionaryHandler creates a new DictionaryHandler
func NewDictionaryHandler(bundle model.Bundle) *DictionaryHandler {
	return &DictionaryHandler{bundle: bundle}
}

// HandleBundle serves the whole bundle document.
func (h *DictionaryHandler) HandleBundle(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(h.bundle); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode bundle response", "error", err)
	}
}

// HandleSchema serves a single node schema from the bundle. The name matches
// either the exact bundle key or its ".yaml"-suffixed form.
func (h *DictionaryHandler) HandleSchema(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	raw, ok := h.bundle.Schema(name)
	if !ok {
		writeError(w, goerr.New("schema not found", goerr.V("name", name)), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(raw); err != nil {
		ctxlog.From(r.Context()).Error("Failed to write schema response", "error", err)
	}
}
