package contract_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-riskform/pkg/contract"
	"github.com/goliatone/go-riskform/pkg/model"
)

func sampleFields() model.FieldSet {
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

func newRequest(t *testing.T, body []byte) *http.Request {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, "http://localhost:5000/predict", bytes.NewReader(body))
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return req
}

func mustLoad(t *testing.T) *contract.Contract {
	t.Helper()
	c, err := contract.Load(context.Background())
	if err != nil {
		t.Fatalf("load contract: %v", err)
	}
	return c
}

func TestLoad_EmbeddedDocument(t *testing.T) {
	c := mustLoad(t)
	if got := c.OperationID(); got != "predict" {
		t.Fatalf("expected operation id predict, got %q", got)
	}
	if len(contract.Document()) == 0 {
		t.Fatalf("expected embedded document")
	}
}

func TestParse_RejectsDocumentWithoutPredict(t *testing.T) {
	doc := []byte(`{"openapi":"3.0.3","info":{"title":"x","version":"1"},"paths":{"/other":{"get":{"responses":{"200":{"description":"ok"}}}}}}`)
	if _, err := contract.Parse(context.Background(), doc); err == nil {
		t.Fatalf("expected error for document without POST /predict")
	}
}

func TestValidateRequest(t *testing.T) {
	c := mustLoad(t)

	body, err := json.Marshal(sampleFields())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	req := newRequest(t, body)
	if err := c.ValidateRequest(context.Background(), req); err != nil {
		t.Fatalf("expected canonical request to pass, got %v", err)
	}
	restored, err := io.ReadAll(req.Body)
	if err != nil {
		t.Fatalf("read restored body: %v", err)
	}
	if diff := cmp.Diff(string(body), string(restored)); diff != "" {
		t.Fatalf("request body not restored (-want +got):\n%s", diff)
	}

	cases := map[string]string{
		"missing field": `{"Pregnancies":"2"}`,
		"numeric value": `{"Pregnancies":2,"Glucose":"120","BloodPressure":"70","SkinThickness":"20","Insulin":"80","BMI":"28","DiabetesPedigreeFunction":"0.5","Age":"33"}`,
		"extra field":   `{"Pregnancies":"2","Glucose":"120","BloodPressure":"70","SkinThickness":"20","Insulin":"80","BMI":"28","DiabetesPedigreeFunction":"0.5","Age":"33","Weight":"80"}`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			err := c.ValidateRequest(context.Background(), newRequest(t, []byte(raw)))
			if !errors.Is(err, contract.ErrViolation) {
				t.Fatalf("expected contract violation, got %v", err)
			}
		})
	}
}

func TestValidateResponse(t *testing.T) {
	c := mustLoad(t)
	req := newRequest(t, nil)
	header := http.Header{"Content-Type": []string{"application/json"}}

	if err := c.ValidateResponse(context.Background(), req, http.StatusOK, header, []byte(`{"Diabetes":1,"Probability":0.82}`)); err != nil {
		t.Fatalf("expected canonical response to pass, got %v", err)
	}
	if err := c.ValidateResponse(context.Background(), req, http.StatusOK, header, []byte(`{"Diabetes":true,"Probability":0.3}`)); err != nil {
		t.Fatalf("expected untyped class to pass, got %v", err)
	}

	err := c.ValidateResponse(context.Background(), req, http.StatusOK, header, []byte(`{"Diabetes":1}`))
	if !errors.Is(err, contract.ErrViolation) {
		t.Fatalf("expected violation for missing probability, got %v", err)
	}
	err = c.ValidateResponse(context.Background(), req, http.StatusOK, header, []byte(`{"Diabetes":1,"Probability":"high"}`))
	if !errors.Is(err, contract.ErrViolation) {
		t.Fatalf("expected violation for string probability, got %v", err)
	}
}

func TestDecodeOutcome(t *testing.T) {
	cases := []struct {
		name string
		body string
		want model.PredictionOutcome
	}{
		{"positive", `{"Diabetes": 1, "Probability": 0.82}`, model.PredictionOutcome{Positive: true, Probability: 0.82}},
		{"negative", `{"Diabetes": 0, "Probability": 0.12}`, model.PredictionOutcome{Positive: false, Probability: 0.12}},
		{"float one", `{"Diabetes": 1.0, "Probability": 0.6}`, model.PredictionOutcome{Positive: true, Probability: 0.6}},
		{"boolean true", `{"Diabetes": true, "Probability": 0.9}`, model.PredictionOutcome{Positive: false, Probability: 0.9}},
		{"string one", `{"Diabetes": "1", "Probability": 0.9}`, model.PredictionOutcome{Positive: false, Probability: 0.9}},
		{"two", `{"Diabetes": 2, "Probability": 0.9}`, model.PredictionOutcome{Positive: false, Probability: 0.9}},
		{"missing class", `{"Probability": 0.4}`, model.PredictionOutcome{Positive: false, Probability: 0.4}},
		{"unclamped", `{"Diabetes": 1, "Probability": 1.25}`, model.PredictionOutcome{Positive: true, Probability: 1.25}},
		{"unrounded", `{"Diabetes": 0, "Probability": 0.123456789}`, model.PredictionOutcome{Positive: false, Probability: 0.123456789}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := contract.DecodeOutcome([]byte(tc.body))
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("outcome mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeOutcome_Malformed(t *testing.T) {
	for _, body := range []string{``, `not json`, `null`, `[1, 0.5]`, `{"Diabetes": 1}`, `{"Diabetes": 1, "Probability": "0.5"}`} {
		if _, err := contract.DecodeOutcome([]byte(body)); !errors.Is(err, contract.ErrMalformedResponse) {
			t.Fatalf("body %q: expected ErrMalformedResponse, got %v", body, err)
		}
	}
}

func TestDecodeFailure(t *testing.T) {
	if got := contract.DecodeFailure([]byte(`{"error": "model not loaded"}`)); got != "model not loaded" {
		t.Fatalf("unexpected reason %q", got)
	}
	if got := contract.DecodeFailure([]byte(`<html>`)); got != "" {
		t.Fatalf("expected empty reason, got %q", got)
	}
}
