package uischema

import (
	"strings"

	"github.com/goliatone/go-riskform/pkg/model"
)

// Store keeps the merged overlay. It is safe for concurrent readers when
// treated as immutable after construction.
type Store struct {
	form   FormConfig
	fields map[model.FieldID]FieldConfig
}

// FormConfig captures the heading and action labels.
type FormConfig struct {
	Title    string         `json:"title" yaml:"title"`
	Subtitle string         `json:"subtitle" yaml:"subtitle"`
	Actions  []ActionConfig `json:"actions" yaml:"actions"`
}

// ActionConfig labels one form action. Kind is "submit" or "reset".
type ActionConfig struct {
	Kind  string `json:"kind" yaml:"kind"`
	Label string `json:"label" yaml:"label"`
}

// FieldConfig customises how a single metric is presented.
type FieldConfig struct {
	Label       string `json:"label,omitempty" yaml:"label,omitempty"`
	Unit        string `json:"unit,omitempty" yaml:"unit,omitempty"`
	Placeholder string `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	HelpText    string `json:"helpText,omitempty" yaml:"helpText,omitempty"`
	Source      string `json:"-" yaml:"-"`
}

// DisplayLabel joins the label and unit, e.g. "Glucose (mg/dL)".
func (f FieldConfig) DisplayLabel() string {
	label := strings.TrimSpace(f.Label)
	unit := strings.TrimSpace(f.Unit)
	if unit == "" {
		return label
	}
	return label + " (" + unit + ")"
}

const (
	ActionSubmit = "submit"
	ActionReset  = "reset"
)
