package form_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-riskform/pkg/form"
	"github.com/goliatone/go-riskform/pkg/model"
	"github.com/goliatone/go-riskform/pkg/validation"
)

func TestForm_EditClearsOnlyThatFieldsError(t *testing.T) {
	f := form.New(model.FieldSet{})
	f.Apply(validation.Validate(f.Fields()))

	if got := len(f.Errors()); got != model.FieldCount {
		t.Fatalf("expected %d errors after validating empty form, got %d", model.FieldCount, got)
	}

	// Any edit clears the error, even one that would still fail validation.
	f.Set(model.Glucose, "not a number")

	if _, ok := f.Error(model.Glucose); ok {
		t.Fatalf("expected Glucose error cleared by edit")
	}
	if got := f.State(model.Glucose).Status; got != form.StatusValid {
		t.Fatalf("expected Glucose valid, got %v", got)
	}
	if msg, ok := f.Error(model.Age); !ok || msg != model.MessageRequired {
		t.Fatalf("expected Age error untouched, got %q ok=%v", msg, ok)
	}
	if got := len(f.Errors()); got != model.FieldCount-1 {
		t.Fatalf("expected %d remaining errors, got %d", model.FieldCount-1, got)
	}
	if f.Value(model.Glucose) != "not a number" {
		t.Fatalf("expected edited value stored")
	}
}

func TestForm_ApplyReplacesPreviousRun(t *testing.T) {
	f := form.New(model.NewFieldSet(map[model.FieldID]string{
		model.Glucose: "350",
	}))
	f.Apply(validation.Validate(f.Fields()))
	if msg, _ := f.Error(model.Glucose); msg != "Must be between 0 and 300" {
		t.Fatalf("unexpected Glucose message %q", msg)
	}

	f.Load(model.NewFieldSet(map[model.FieldID]string{
		model.Pregnancies:              "1",
		model.Glucose:                  "100",
		model.BloodPressure:            "70",
		model.SkinThickness:            "20",
		model.Insulin:                  "80",
		model.BMI:                      "28",
		model.DiabetesPedigreeFunction: "0.4",
		model.Age:                      "40",
	}))
	f.Apply(validation.Validate(f.Fields()))
	if f.HasErrors() {
		t.Fatalf("expected no errors, got %+v", f.Errors())
	}
}

func TestForm_Reset(t *testing.T) {
	f := form.New(model.NewFieldSet(map[model.FieldID]string{
		model.BMI: "5",
		model.Age: "200",
	}))
	f.Apply(validation.Validate(f.Fields()))
	f.Reset()

	if diff := cmp.Diff(model.FieldSet{}.Map(), f.Fields().Map()); diff != "" {
		t.Fatalf("values not cleared (-want +got):\n%s", diff)
	}
	if f.HasErrors() {
		t.Fatalf("expected errors cleared")
	}
	if len(f.Errors()) != 0 {
		t.Fatalf("expected empty error map")
	}
}
