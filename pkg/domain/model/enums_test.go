package model_test

import (
	"testing"

	"github.com/gen3ops/dictops/pkg/domain/model"
	"github.com/m-mizutani/gt"
)

func TestIsNullish(t *testing.T) {
	for _, v := range []string{"", "null", "None", "NaN", "n/a", "NA", " missing ", "Not Applicable"} {
		if !model.IsNullish(v) {
			t.Errorf("IsNullish(%q) = false, want true", v)
		}
	}
	for _, v := range []string{"0", "false", "ontology", "N/A (see notes)"} {
		if model.IsNullish(v) {
			t.Errorf("IsNullish(%q) = true, want false", v)
		}
	}
}

func TestBuildEnumEntry(t *testing.T) {
	records := []model.EnumRecord{
		{TypeName: "sample_type", Enum: "Blood", Definition: "Whole blood", Source: "NCIt", TermID: "C12434"},
		{TypeName: "sample_type", Enum: "Saliva", Definition: "null", Source: "", TermID: "n/a"},
	}

	entry := model.BuildEnumEntry(records)

	gt.Array(t, entry.Enum).Equal([]string{"Blood", "Saliva"})
	gt.Number(t, len(entry.EnumDef)).Equal(2)

	gt.Value(t, entry.EnumDef[0]).Equal(model.EnumTermDef{
		Enumeration: "Blood",
		Definition:  "Whole blood",
		Source:      "NCIt",
		TermID:      "C12434",
	})

	// Null-ish optional fields are dropped entirely.
	gt.Value(t, entry.EnumDef[1]).Equal(model.EnumTermDef{Enumeration: "Saliva"})
}
