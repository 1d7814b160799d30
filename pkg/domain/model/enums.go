package model

import "strings"

// EnumRecord is one row of the enum definitions CSV.
type EnumRecord struct {
	TypeName   string
	Enum       string
	Definition string
	Source     string
	TermID     string
}

// EnumTermDef is one entry of an enum's `enumDef` list. Optional fields are
// omitted from the YAML output when empty.
type EnumTermDef struct {
	Enumeration string `yaml:"enumeration"`
	Definition  string `yaml:"definition,omitempty"`
	Source      string `yaml:"source,omitempty"`
	TermID      string `yaml:"term_id,omitempty"`
}

// EnumEntry is the definitions-file value written for one enum type.
type EnumEntry struct {
	Description *string       `yaml:"description"`
	Enum        []string      `yaml:"enum"`
	EnumDef     []EnumTermDef `yaml:"enumDef"`
}

// Spreadsheet exports encode missing values in many ways; all of these are
// treated as absent.
var nullStrings = map[string]struct{}{
	"": {}, "null": {}, "none": {}, "nan": {}, "n/a": {}, "na": {},
	"not available": {}, "not applicable": {}, "missing": {},
}

// IsNullish reports whether a CSV cell should be treated as missing.
func IsNullish(value string) bool {
	_, ok := nullStrings[strings.ToLower(strings.TrimSpace(value))]
	return ok
}

// BuildEnumEntry assembles the definitions entry for one enum type from its
// CSV rows, preserving row order and dropping null-ish optional fields.
func BuildEnumEntry(records []EnumRecord) EnumEntry {
	entry := EnumEntry{}
	for _, rec := range records {
		entry.Enum = append(entry.Enum, rec.Enum)

		def := EnumTermDef{Enumeration: rec.Enum}
		if !IsNullish(rec.Definition) {
			def.Definition = rec.Definition
		}
		if !IsNullish(rec.Source) {
			def.Source = rec.Source
		}
		if !IsNullish(rec.TermID) {
			def.TermID = rec.TermID
		}
		entry.EnumDef = append(entry.EnumDef, def)
	}
	return entry
}
