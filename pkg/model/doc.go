// Package model defines the typed values that flow through the risk form: the
// eight metric identifiers, the raw FieldSet collected from the user, the field
// definitions with their validation rules, and the PredictionOutcome returned
// by the prediction service. Wire names used by the prediction endpoint are
// available through FieldID.String and ParseFieldID.
package model
