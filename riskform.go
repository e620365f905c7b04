// Package riskform exposes the diabetes risk form core from the top-level
// module: validation, the submission controller and the prediction client.
package riskform

import (
	"context"

	"github.com/goliatone/go-riskform/pkg/model"
	"github.com/goliatone/go-riskform/pkg/prediction"
	"github.com/goliatone/go-riskform/pkg/submission"
	"github.com/goliatone/go-riskform/pkg/validation"
)

// FieldSet aliases model.FieldSet.
type FieldSet = model.FieldSet

// Outcome aliases model.PredictionOutcome.
type Outcome = model.PredictionOutcome

// ValidationResult aliases validation.Result.
type ValidationResult = validation.Result

// NewController exposes the submission controller constructor.
func NewController(options ...submission.Option) (*submission.Controller, error) {
	return submission.New(options...)
}

// NewClient builds a prediction client for endpoint. An empty endpoint keeps
// prediction.DefaultEndpoint.
func NewClient(endpoint string, options ...prediction.Option) (*prediction.Client, error) {
	if endpoint != "" {
		options = append([]prediction.Option{prediction.WithEndpoint(endpoint)}, options...)
	}
	return prediction.New(options...)
}

// Validate checks fields without contacting the prediction service.
func Validate(fields map[string]string) (ValidationResult, error) {
	set, err := parseFields(fields)
	if err != nil {
		return ValidationResult{}, err
	}
	return validation.Validate(set), nil
}

// Predict validates fields and, when they are valid, submits them once
// through a controller targeting endpoint. Validation failures are returned
// as *submission.InvalidError.
func Predict(ctx context.Context, endpoint string, fields map[string]string, options ...submission.Option) (Outcome, error) {
	set, err := parseFields(fields)
	if err != nil {
		return Outcome{}, err
	}
	client, err := NewClient(endpoint)
	if err != nil {
		return Outcome{}, err
	}
	controller, err := NewController(append([]submission.Option{submission.WithPredictor(client)}, options...)...)
	if err != nil {
		return Outcome{}, err
	}
	return controller.SubmitFields(ctx, set)
}

func parseFields(fields map[string]string) (FieldSet, error) {
	var set FieldSet
	for name, value := range fields {
		id, err := model.ParseFieldID(name)
		if err != nil {
			return FieldSet{}, err
		}
		set.Set(id, value)
	}
	return set, nil
}
