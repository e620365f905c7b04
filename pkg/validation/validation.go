// Package validation checks a FieldSet against the field definitions declared
// in pkg/model. Validation is pure: the same FieldSet always yields the same
// Result and nothing is retained between calls.
package validation

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/goliatone/go-riskform/pkg/model"
)

// Issue is a single field-level validation failure.
type Issue struct {
	Field   model.FieldID `json:"field"`
	Message string        `json:"message"`
}

// Result maps each failing field to its message. Fields without an entry are
// valid.
type Result struct {
	errors map[model.FieldID]string
}

// Valid reports whether no field produced an error.
func (r Result) Valid() bool {
	return len(r.errors) == 0
}

// Error returns the message recorded for a field.
func (r Result) Error(id model.FieldID) (string, bool) {
	msg, ok := r.errors[id]
	return msg, ok
}

// Errors returns a copy of the error map.
func (r Result) Errors() map[model.FieldID]string {
	out := make(map[model.FieldID]string, len(r.errors))
	for id, msg := range r.errors {
		out[id] = msg
	}
	return out
}

// Issues lists the failures in canonical field order.
func (r Result) Issues() []Issue {
	if len(r.errors) == 0 {
		return nil
	}
	out := make([]Issue, 0, len(r.errors))
	for _, id := range model.FieldIDs() {
		if msg, ok := r.errors[id]; ok {
			out = append(out, Issue{Field: id, Message: msg})
		}
	}
	return out
}

// MarshalJSON renders {"valid": bool, "issues": [...]}.
func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Valid  bool    `json:"valid"`
		Issues []Issue `json:"issues,omitempty"`
	}{
		Valid:  r.Valid(),
		Issues: r.Issues(),
	})
}

// Validate checks every field. A field failing its required or numeric rule
// skips its own range rules but never stops the remaining fields from being
// checked.
func Validate(fields model.FieldSet) Result {
	errs := make(map[model.FieldID]string)
	for _, def := range model.Definitions() {
		if msg, ok := validateField(def, fields.Get(def.ID)); !ok {
			errs[def.ID] = msg
		}
	}
	return Result{errors: errs}
}

// ValidateField checks a single raw value. It returns the failure message and
// false when the value is rejected.
func ValidateField(id model.FieldID, raw string) (string, bool) {
	def, ok := model.Definition(id)
	if !ok {
		return "", true
	}
	return validateField(def, raw)
}

// ParseNumber reports whether raw (after trimming) is a decimal number.
// Hexadecimal literals and NaN or infinity spellings are rejected. Literals
// too large for a float64 are numbers and come back as ±Inf.
func ParseNumber(raw string) (float64, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, false
	}
	unsigned := strings.TrimLeft(trimmed, "+-")
	if len(unsigned) > 1 && unsigned[0] == '0' && (unsigned[1] == 'x' || unsigned[1] == 'X') {
		return 0, false
	}
	if strings.Contains(trimmed, "_") {
		return 0, false
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if errors.Is(err, strconv.ErrRange) && math.IsInf(value, 0) {
		return value, true
	}
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, false
	}
	return value, true
}

func validateField(def model.Field, raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)

	var (
		value  float64
		parsed bool
	)
	number := func() (float64, bool) {
		if !parsed {
			v, ok := ParseNumber(trimmed)
			if !ok {
				return 0, false
			}
			value, parsed = v, true
		}
		return value, true
	}

	for _, rule := range def.Validations {
		switch rule.Kind {
		case model.ValidationRuleRequired:
			if trimmed == "" {
				return rule.Message, false
			}
		case model.ValidationRuleNumeric:
			if _, ok := number(); !ok {
				return rule.Message, false
			}
		case model.ValidationRuleMin:
			bound, ok := ruleBound(rule)
			if !ok {
				continue
			}
			v, ok := number()
			if !ok || v < bound {
				return rule.Message, false
			}
		case model.ValidationRuleMax:
			bound, ok := ruleBound(rule)
			if !ok {
				continue
			}
			v, ok := number()
			if !ok || v > bound {
				return rule.Message, false
			}
		}
	}
	return "", true
}

func ruleBound(rule model.ValidationRule) (float64, bool) {
	raw := rule.Params["value"]
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	return v, err == nil
}
