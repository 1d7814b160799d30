package model

import (
	"encoding/json"

	"github.com/m-mizutani/goerr/v2"
)

// Bundle is a compiled dictionary: a JSON object keyed by schema source file
// name (e.g. "subject.yaml"), as produced by the external schema bundler.
// The schema bodies are kept opaque.
type Bundle map[string]json.RawMessage

// settingsKey is the bundle entry that carries dictionary-wide settings.
const settingsKey = "_settings.yaml"

// ParseBundle decodes a bundled dictionary document.
func ParseBundle(data []byte) (Bundle, error) {
	var b Bundle
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, goerr.Wrap(err, "bundle is not a JSON object")
	}
	return b, nil
}

// DictVersion returns the `_dict_version` value from the bundle settings.
// The second return is false when the settings entry or the field is absent.
func (b Bundle) DictVersion() (string, bool) {
	raw, ok := b[settingsKey]
	if !ok {
		return "", false
	}

	var settings struct {
		DictVersion string `json:"_dict_version"`
	}
	if err := json.Unmarshal(raw, &settings); err != nil || settings.DictVersion == "" {
		return "", false
	}
	return settings.DictVersion, true
}

// Schema returns the raw schema body for a bundle entry. Lookup tries the
// name as given and with a ".yaml" suffix, so "subject" finds "subject.yaml".
func (b Bundle) Schema(name string) (json.RawMessage, bool) {
	if raw, ok := b[name]; ok {
		return raw, true
	}
	raw, ok := b[name+".yaml"]
	return raw, ok
}
