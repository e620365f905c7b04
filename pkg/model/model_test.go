package model_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-riskform/pkg/model"
)

func TestFieldIDs_CanonicalOrder(t *testing.T) {
	var got []string
	for _, id := range model.FieldIDs() {
		got = append(got, id.String())
	}
	want := []string{
		"Pregnancies", "Glucose", "BloodPressure", "SkinThickness",
		"Insulin", "BMI", "DiabetesPedigreeFunction", "Age",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("field order mismatch (-want +got):\n%s", diff)
	}
	if len(got) != model.FieldCount {
		t.Fatalf("expected %d fields, got %d", model.FieldCount, len(got))
	}
}

func TestParseFieldID(t *testing.T) {
	id, err := model.ParseFieldID(" BMI ")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if id != model.BMI {
		t.Fatalf("expected BMI, got %v", id)
	}
	if _, err := model.ParseFieldID("bmi"); err == nil {
		t.Fatalf("expected case-sensitive lookup to fail")
	}
}

func TestFieldSet_MarshalJSONSendsEightStrings(t *testing.T) {
	fs := model.NewFieldSet(map[model.FieldID]string{
		model.Glucose: "120",
		model.BMI:     " 28 ",
	})

	data, err := json.Marshal(fs)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := map[string]any{
		"Pregnancies":              "",
		"Glucose":                  "120",
		"BloodPressure":            "",
		"SkinThickness":            "",
		"Insulin":                  "",
		"BMI":                      " 28 ",
		"DiabetesPedigreeFunction": "",
		"Age":                      "",
	}
	if diff := cmp.Diff(want, decoded); diff != "" {
		t.Fatalf("wire payload mismatch (-want +got):\n%s", diff)
	}
}

func TestFieldSet_UnmarshalJSONAcceptsNumbersAndRejectsUnknownKeys(t *testing.T) {
	var fs model.FieldSet
	if err := json.Unmarshal([]byte(`{"Age": 33, "BMI": "28.5", "Insulin": null}`), &fs); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got := fs.Get(model.Age); got != "33" {
		t.Fatalf("expected Age literal preserved, got %q", got)
	}
	if got := fs.Get(model.BMI); got != "28.5" {
		t.Fatalf("expected BMI string preserved, got %q", got)
	}
	if got := fs.Get(model.Insulin); got != "" {
		t.Fatalf("expected null to load as empty, got %q", got)
	}

	if err := json.Unmarshal([]byte(`{"Weight": "80"}`), &fs); err == nil {
		t.Fatalf("expected unknown key to be rejected")
	}
}

func TestDefinitions_AreCopies(t *testing.T) {
	defs := model.Definitions()
	defs[model.Glucose].Validations[2].Params["value"] = "999"

	fresh, ok := model.Definition(model.Glucose)
	if !ok {
		t.Fatalf("expected Glucose definition")
	}
	if got := fresh.Validations[2].Params["value"]; got != "0" {
		t.Fatalf("definition mutated through copy: %q", got)
	}
}

func TestPredictionOutcome_Presentation(t *testing.T) {
	outcome := model.PredictionOutcome{Positive: true, Probability: 0.82}
	if outcome.Label() != "Positive" {
		t.Fatalf("unexpected label %q", outcome.Label())
	}
	if got := outcome.Percent(); got < 81.999 || got > 82.001 {
		t.Fatalf("unexpected percent %v", got)
	}
	if (model.PredictionOutcome{}).Label() != "Negative" {
		t.Fatalf("zero outcome should be negative")
	}
}
