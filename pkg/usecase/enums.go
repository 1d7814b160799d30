package usecase

import (
	"context"
	"encoding/csv"
	"os"

	"github.com/gen3ops/dictops/pkg/domain/interfaces"
	"github.com/gen3ops/dictops/pkg/domain/model"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"gopkg.in/yaml.v3"
)

var requiredEnumColumns = []string{"type_name", "enum", "enum_definition", "source", "term_id"}

type enumsUseCase struct{}

// NewEnums creates a new instance of EnumsUseCase
func NewEnums() interfaces.EnumsUseCase {
	return &enumsUseCase{}
}

// Merge reads enum rows from the CSV and rewrites the matching entries in
// the definitions YAML, leaving all other definitions untouched.
func (uc *enumsUseCase) Merge(ctx context.Context, csvPath, yamlPath string) ([]string, error) {
	logger := ctxlog.From(ctx)

	records, order, err := readEnumCSV(csvPath)
	if err != nil {
		return nil, err
	}
	logger.Info("Loaded enum CSV", "path", csvPath, "enum_types", len(order))

	yamlData, err := os.ReadFile(yamlPath)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read definitions file", goerr.V("path", yamlPath))
	}

	definitions := map[string]any{}
	if err := yaml.Unmarshal(yamlData, &definitions); err != nil {
		return nil, goerr.Wrap(err, "failed to parse definitions file", goerr.V("path", yamlPath))
	}

	for _, typeName := range order {
		definitions[typeName] = model.BuildEnumEntry(records[typeName])
		logger.Debug("Merged enum entry", "type_name", typeName, "terms", len(records[typeName]))
	}

	out, err := yaml.Marshal(definitions)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to encode definitions")
	}

	if err := os.WriteFile(yamlPath, out, 0644); err != nil {
		return nil, goerr.Wrap(err, "failed to write definitions file", goerr.V("path", yamlPath))
	}

	logger.Info("Updated definitions file", "path", yamlPath, "enum_types", len(order))
	return order, nil
}

// readEnumCSV parses the enum CSV into rows grouped by type_name, keeping
// first-seen order of both types and terms.
func readEnumCSV(path string) (map[string][]model.EnumRecord, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to open enum CSV", goerr.V("path", path))
	}
	defer f.Close()

	reader := csv.NewReader(f)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to parse enum CSV", goerr.V("path", path))
	}
	if len(rows) == 0 {
		return nil, nil, goerr.New("enum CSV is empty", goerr.V("path", path))
	}

	columns := map[string]int{}
	for i, name := range rows[0] {
		columns[name] = i
	}
	for _, required := range requiredEnumColumns {
		if _, ok := columns[required]; !ok {
			return nil, nil, goerr.New("enum CSV missing required column",
				goerr.V("column", required),
				goerr.V("path", path),
			)
		}
	}

	records := map[string][]model.EnumRecord{}
	var order []string

	for _, row := range rows[1:] {
		rec := model.EnumRecord{
			TypeName:   row[columns["type_name"]],
			Enum:       row[columns["enum"]],
			Definition: row[columns["enum_definition"]],
			Source:     row[columns["source"]],
			TermID:     row[columns["term_id"]],
		}
		if _, seen := records[rec.TypeName]; !seen {
			order = append(order, rec.TypeName)
		}
		records[rec.TypeName] = append(records[rec.TypeName], rec)
	}

	return records, order, nil
}
