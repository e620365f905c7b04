// Package form holds the editable state of a single risk form: the raw values
// and, per field, whether the last validation run reported an error that the
// user has not yet touched.
package form

import (
	"github.com/goliatone/go-riskform/pkg/model"
	"github.com/goliatone/go-riskform/pkg/validation"
)

// FieldStatus is the per-field error state. A field becomes Invalid when a
// validation run reports an error for it and returns to Valid on the next
// edit, whatever the new content is.
type FieldStatus int

const (
	StatusValid FieldStatus = iota
	StatusInvalid
)

func (s FieldStatus) String() string {
	if s == StatusInvalid {
		return "invalid"
	}
	return "valid"
}

// FieldState captures the status of one field plus the message shown while it
// is Invalid.
type FieldState struct {
	Status  FieldStatus
	Message string
}

// Form tracks values and field states. It is not safe for concurrent use; the
// submission controller serialises access.
type Form struct {
	fields model.FieldSet
	states [model.FieldCount]FieldState
}

// New returns an empty form, optionally seeded with values.
func New(prefill model.FieldSet) *Form {
	return &Form{fields: prefill}
}

// Fields returns a copy of the current values.
func (f *Form) Fields() model.FieldSet {
	if f == nil {
		return model.FieldSet{}
	}
	return f.fields
}

// Value returns the raw value of a field.
func (f *Form) Value(id model.FieldID) string {
	if f == nil {
		return ""
	}
	return f.fields.Get(id)
}

// Set records an edit. The edited field leaves the Invalid state; other fields
// keep theirs.
func (f *Form) Set(id model.FieldID, value string) {
	if f == nil || !id.Valid() {
		return
	}
	f.fields.Set(id, value)
	f.states[id] = FieldState{Status: StatusValid}
}

// Load replaces every value, as if each field had been edited.
func (f *Form) Load(fields model.FieldSet) {
	if f == nil {
		return
	}
	f.fields = fields
	f.states = [model.FieldCount]FieldState{}
}

// Apply records a validation run: every failing field becomes Invalid with its
// message, every other field becomes Valid.
func (f *Form) Apply(result validation.Result) {
	if f == nil {
		return
	}
	for _, id := range model.FieldIDs() {
		if msg, failed := result.Error(id); failed {
			f.states[id] = FieldState{Status: StatusInvalid, Message: msg}
			continue
		}
		f.states[id] = FieldState{Status: StatusValid}
	}
}

// Reset clears all values and errors.
func (f *Form) Reset() {
	if f == nil {
		return
	}
	f.fields = model.FieldSet{}
	f.states = [model.FieldCount]FieldState{}
}

// State returns the state of a field.
func (f *Form) State(id model.FieldID) FieldState {
	if f == nil || !id.Valid() {
		return FieldState{}
	}
	return f.states[id]
}

// Error returns the message shown next to a field, if it is Invalid.
func (f *Form) Error(id model.FieldID) (string, bool) {
	state := f.State(id)
	if state.Status != StatusInvalid {
		return "", false
	}
	return state.Message, true
}

// Errors returns the messages of every Invalid field.
func (f *Form) Errors() map[model.FieldID]string {
	out := make(map[model.FieldID]string)
	if f == nil {
		return out
	}
	for _, id := range model.FieldIDs() {
		if msg, ok := f.Error(id); ok {
			out[id] = msg
		}
	}
	return out
}

// HasErrors reports whether any field is Invalid.
func (f *Form) HasErrors() bool {
	if f == nil {
		return false
	}
	for _, state := range f.states {
		if state.Status == StatusInvalid {
			return true
		}
	}
	return false
}
