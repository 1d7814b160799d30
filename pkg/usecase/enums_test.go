package usecase_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/gen3ops/dictops/pkg/usecase"
	"github.com/m-mizutani/gt"
	"gopkg.in/yaml.v3"
)

const testEnumCSV = `type_name,enum,enum_definition,source,term_id
sample_type,Blood,Whole blood,NCIt,C12434
sample_type,Saliva,null,,n/a
consent_status,Granted,Consent granted,local,
consent_status,Withdrawn,Consent withdrawn,local,
`

func writeEnumsFixture(t *testing.T, csvContent, yamlContent string) (csvPath, yamlPath string) {
	t.Helper()
	dir := t.TempDir()
	csvPath = filepath.Join(dir, "enums.csv")
	yamlPath = filepath.Join(dir, "_definitions.yaml")
	gt.NoError(t, os.WriteFile(csvPath, []byte(csvContent), 0644))
	gt.NoError(t, os.WriteFile(yamlPath, []byte(yamlContent), 0644))
	return csvPath, yamlPath
}

func TestEnumsUseCase_Merge(t *testing.T) {
	ctx := context.Background()
	csvPath, yamlPath := writeEnumsFixture(t, testEnumCSV, "datetime:\n  type: string\n")

	uc := usecase.NewEnums()
	names, err := uc.Merge(ctx, csvPath, yamlPath)
	gt.NoError(t, err)
	gt.Array(t, names).Equal([]string{"sample_type", "consent_status"})

	data, err := os.ReadFile(yamlPath)
	gt.NoError(t, err)

	var definitions map[string]any
	gt.NoError(t, yaml.Unmarshal(data, &definitions))

	// Pre-existing definitions survive the merge.
	gt.Value(t, definitions["datetime"]).NotNil()

	entry := gt.Cast[map[string]any](t, definitions["sample_type"])
	enums := gt.Cast[[]any](t, entry["enum"])
	gt.Array(t, enums).Equal([]any{"Blood", "Saliva"})

	enumDefs := gt.Cast[[]any](t, entry["enumDef"])
	gt.Number(t, len(enumDefs)).Equal(2)

	first := gt.Cast[map[string]any](t, enumDefs[0])
	gt.Value(t, first["enumeration"]).Equal("Blood")
	gt.Value(t, first["definition"]).Equal("Whole blood")
	gt.Value(t, first["term_id"]).Equal("C12434")

	// Null-ish cells are omitted, not emitted as empty strings.
	second := gt.Cast[map[string]any](t, enumDefs[1])
	gt.Value(t, second["enumeration"]).Equal("Saliva")
	if _, ok := second["definition"]; ok {
		t.Error("null definition should be omitted")
	}
	if _, ok := second["term_id"]; ok {
		t.Error("null term_id should be omitted")
	}
}

func TestEnumsUseCase_MissingColumn(t *testing.T) {
	ctx := context.Background()
	csvPath, yamlPath := writeEnumsFixture(t,
		"type_name,enum\nsample_type,Blood\n",
		"{}\n",
	)

	uc := usecase.NewEnums()
	_, err := uc.Merge(ctx, csvPath, yamlPath)
	gt.Error(t, err)
	gt.Value(t, err.Error()).NotEqual("")
}

func TestEnumsUseCase_EmptyCSV(t *testing.T) {
	ctx := context.Background()
	csvPath, yamlPath := writeEnumsFixture(t, "", "{}\n")

	uc := usecase.NewEnums()
	_, err := uc.Merge(ctx, csvPath, yamlPath)
	gt.Error(t, err)
}

func TestEnumsUseCase_MissingFiles(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewEnums()

	_, err := uc.Merge(ctx, filepath.Join(t.TempDir(), "nope.csv"), "whatever.yaml")
	gt.Error(t, err)

	csvPath, _ := writeEnumsFixture(t, testEnumCSV, "{}")
	_, err = uc.Merge(ctx, csvPath, filepath.Join(t.TempDir(), "nope.yaml"))
	gt.Error(t, err)
}
