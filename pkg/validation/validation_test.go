package validation_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-riskform/pkg/model"
	"github.com/goliatone/go-riskform/pkg/validation"
)

func validFields() model.FieldSet {
	return model.NewFieldSet(map[model.FieldID]string{
		model.Pregnancies:              "2",
		model.Glucose:                  "120",
		model.BloodPressure:            "70",
		model.SkinThickness:            "20",
		model.Insulin:                  "80",
		model.BMI:                      "28",
		model.DiabetesPedigreeFunction: "0.5",
		model.Age:                      "33",
	})
}

func TestValidate_AllValid(t *testing.T) {
	result := validation.Validate(validFields())
	if !result.Valid() {
		t.Fatalf("expected valid result, got issues %+v", result.Issues())
	}
	if len(result.Issues()) != 0 {
		t.Fatalf("expected no issues")
	}
}

func TestValidate_EmptyFieldIsRequiredRegardlessOfOthers(t *testing.T) {
	for _, id := range model.FieldIDs() {
		for _, blank := range []string{"", "   ", "\t"} {
			fields := validFields().With(id, blank)
			result := validation.Validate(fields)
			want := map[model.FieldID]string{id: "This field is required"}
			if diff := cmp.Diff(want, result.Errors()); diff != "" {
				t.Fatalf("%s=%q errors mismatch (-want +got):\n%s", id, blank, diff)
			}
		}
	}

	all := validation.Validate(model.FieldSet{})
	if got := len(all.Errors()); got != model.FieldCount {
		t.Fatalf("expected every field required on empty form, got %d errors", got)
	}
	for _, issue := range all.Issues() {
		if issue.Message != model.MessageRequired {
			t.Fatalf("%s: expected required message, got %q", issue.Field, issue.Message)
		}
	}
}

func TestValidate_NonNumericShortCircuitsRangeCheck(t *testing.T) {
	for _, id := range model.FieldIDs() {
		for _, raw := range []string{"abc", "12abc", "0x10", "NaN", "Infinity", "1_000", "--1"} {
			result := validation.Validate(validFields().With(id, raw))
			want := map[model.FieldID]string{id: "Must be a number"}
			if diff := cmp.Diff(want, result.Errors()); diff != "" {
				t.Fatalf("%s=%q errors mismatch (-want +got):\n%s", id, raw, diff)
			}
		}
	}
}

func TestValidate_InclusiveBoundaries(t *testing.T) {
	cases := []struct {
		field   model.FieldID
		value   string
		message string
	}{
		{model.Glucose, "0", ""},
		{model.Glucose, "300", ""},
		{model.Glucose, "-1", "Must be between 0 and 300"},
		{model.Glucose, "300.0001", "Must be between 0 and 300"},
		{model.Glucose, "350", "Must be between 0 and 300"},
		{model.BloodPressure, "0", ""},
		{model.BloodPressure, "200", ""},
		{model.BloodPressure, "-0.5", "Must be between 0 and 200"},
		{model.BloodPressure, "200.01", "Must be between 0 and 200"},
		{model.BMI, "10", ""},
		{model.BMI, "50", ""},
		{model.BMI, "9.99", "Must be between 10 and 50"},
		{model.BMI, "50.1", "Must be between 10 and 50"},
		{model.Age, "0", ""},
		{model.Age, "120", ""},
		{model.Age, "-1", "Must be between 0 and 120"},
		{model.Age, "121", "Must be between 0 and 120"},
		{model.Pregnancies, "0", ""},
		{model.Pregnancies, "1.5", ""},
		{model.Pregnancies, "-1", "Cannot be negative"},
	}

	for _, tc := range cases {
		t.Run(tc.field.String()+"="+tc.value, func(t *testing.T) {
			result := validation.Validate(validFields().With(tc.field, tc.value))
			msg, failed := result.Error(tc.field)
			if tc.message == "" {
				if failed {
					t.Fatalf("expected %s=%s valid, got %q", tc.field, tc.value, msg)
				}
				return
			}
			if !failed || msg != tc.message {
				t.Fatalf("expected %q, got %q (failed=%v)", tc.message, msg, failed)
			}
			if len(result.Errors()) != 1 {
				t.Fatalf("expected only %s to fail, got %+v", tc.field, result.Errors())
			}
		})
	}
}

func TestValidate_UnboundedFieldsAcceptAnyNumber(t *testing.T) {
	unbounded := []model.FieldID{model.SkinThickness, model.Insulin, model.DiabetesPedigreeFunction}
	for _, id := range unbounded {
		for _, raw := range []string{"-500", "0", "1e9", "123456789.123", " 7 ", "1e308", "1e309", "1e400", "-1e400"} {
			result := validation.Validate(validFields().With(id, raw))
			if !result.Valid() {
				t.Fatalf("%s=%q: expected valid, got %+v", id, raw, result.Errors())
			}
		}
	}
}

func TestValidate_IndependentFields(t *testing.T) {
	fields := validFields().
		With(model.Glucose, "350").
		With(model.Age, "").
		With(model.BMI, "heavy")

	result := validation.Validate(fields)
	want := []validation.Issue{
		{Field: model.Glucose, Message: "Must be between 0 and 300"},
		{Field: model.BMI, Message: "Must be a number"},
		{Field: model.Age, Message: "This field is required"},
	}
	if diff := cmp.Diff(want, result.Issues()); diff != "" {
		t.Fatalf("issues mismatch (-want +got):\n%s", diff)
	}
	if result.Valid() {
		t.Fatalf("expected invalid result")
	}
}

func TestValidate_Idempotent(t *testing.T) {
	fields := validFields().With(model.Glucose, "301").With(model.Insulin, "")
	first := validation.Validate(fields)
	second := validation.Validate(fields)
	if diff := cmp.Diff(first.Errors(), second.Errors()); diff != "" {
		t.Fatalf("results differ between calls (-first +second):\n%s", diff)
	}
}

func TestValidateField(t *testing.T) {
	if msg, ok := validation.ValidateField(model.BMI, "5"); ok || msg != "Must be between 10 and 50" {
		t.Fatalf("unexpected result %q ok=%v", msg, ok)
	}
	if _, ok := validation.ValidateField(model.BMI, "25"); !ok {
		t.Fatalf("expected BMI 25 valid")
	}
}

func TestResult_MarshalJSON(t *testing.T) {
	result := validation.Validate(validFields().With(model.Glucose, "350"))
	data, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"valid":false,"issues":[{"field":"Glucose","message":"Must be between 0 and 300"}]}`
	if diff := cmp.Diff(want, string(data)); diff != "" {
		t.Fatalf("json mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateField_OverflowingLiteralsAreRangeChecked(t *testing.T) {
	cases := []struct {
		id   model.FieldID
		raw  string
		want string
	}{
		{model.Glucose, "1e400", "Must be between 0 and 300"},
		{model.Age, "-1e400", "Must be between 0 and 120"},
		{model.Pregnancies, "-1e400", "Cannot be negative"},
		{model.Insulin, "Infinity", model.MessageNumeric},
		{model.Insulin, "0x10", model.MessageNumeric},
	}
	for _, tc := range cases {
		msg, ok := validation.ValidateField(tc.id, tc.raw)
		if ok || msg != tc.want {
			t.Fatalf("%s=%q: expected %q, got %q ok=%v", tc.id, tc.raw, tc.want, msg, ok)
		}
	}
	if _, ok := validation.ValidateField(model.Pregnancies, "1e400"); !ok {
		t.Fatalf("expected overflowing positive pregnancies to pass the lower bound")
	}
}
