package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownField is returned for names or identifiers outside the eight
// metrics.
var ErrUnknownField = errors.New("model: unknown field")

// FieldID identifies one of the eight health metrics collected by the form.
type FieldID int

const (
	Pregnancies FieldID = iota
	Glucose
	BloodPressure
	SkinThickness
	Insulin
	BMI
	DiabetesPedigreeFunction
	Age

	fieldCount
)

// FieldCount is the number of metrics in a FieldSet.
const FieldCount = int(fieldCount)

var fieldNames = [fieldCount]string{
	Pregnancies:              "Pregnancies",
	Glucose:                  "Glucose",
	BloodPressure:            "BloodPressure",
	SkinThickness:            "SkinThickness",
	Insulin:                  "Insulin",
	BMI:                      "BMI",
	DiabetesPedigreeFunction: "DiabetesPedigreeFunction",
	Age:                      "Age",
}

// FieldIDs returns every identifier in canonical (wire) order.
func FieldIDs() []FieldID {
	ids := make([]FieldID, 0, fieldCount)
	for id := FieldID(0); id < fieldCount; id++ {
		ids = append(ids, id)
	}
	return ids
}

// String returns the wire name of the field, e.g. "BloodPressure".
func (id FieldID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("FieldID(%d)", int(id))
	}
	return fieldNames[id]
}

// Valid reports whether id names one of the eight metrics.
func (id FieldID) Valid() bool {
	return id >= 0 && id < fieldCount
}

// ParseFieldID maps a wire name back to its identifier. Matching is exact
// after trimming surrounding whitespace.
func ParseFieldID(name string) (FieldID, error) {
	trimmed := strings.TrimSpace(name)
	for id, candidate := range fieldNames {
		if candidate == trimmed {
			return FieldID(id), nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownField, name)
}

// MarshalText encodes the identifier as its wire name so maps keyed by FieldID
// serialise with readable keys.
func (id FieldID) MarshalText() ([]byte, error) {
	if !id.Valid() {
		return nil, fmt.Errorf("%w: id %d", ErrUnknownField, int(id))
	}
	return []byte(fieldNames[id]), nil
}

// UnmarshalText decodes a wire name.
func (id *FieldID) UnmarshalText(text []byte) error {
	parsed, err := ParseFieldID(string(text))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// FieldType is informational; every value is validated as a decimal number.
type FieldType string

const (
	FieldTypeInteger FieldType = "integer"
	FieldTypeNumber  FieldType = "number"
)

const (
	ValidationRuleRequired = "required"
	ValidationRuleNumeric  = "numeric"
	ValidationRuleMin      = "min"
	ValidationRuleMax      = "max"
)

// ValidationRule is a single constraint attached to a field. Numeric bounds
// keep their threshold in Params["value"]; Message is the text reported to the
// user when the rule fails.
type ValidationRule struct {
	Kind    string            `json:"kind"`
	Params  map[string]string `json:"params,omitempty"`
	Message string            `json:"message"`
}

// Field describes one metric and the rules applied to its raw value.
type Field struct {
	ID          FieldID          `json:"id"`
	Type        FieldType        `json:"type"`
	Validations []ValidationRule `json:"validations"`
}

// Name returns the wire name of the field.
func (f Field) Name() string {
	return f.ID.String()
}

// PredictionOutcome is the normalised result of a successful round trip to the
// prediction service. Probability is passed through exactly as the service
// returned it.
type PredictionOutcome struct {
	Positive    bool    `json:"positive"`
	Probability float64 `json:"probability"`
}

// Label returns "Positive" or "Negative".
func (o PredictionOutcome) Label() string {
	if o.Positive {
		return "Positive"
	}
	return "Negative"
}

// Percent converts the probability to a percentage for display.
func (o PredictionOutcome) Percent() float64 {
	return o.Probability * 100
}
