package render

import (
	"fmt"

	"github.com/goliatone/go-riskform/pkg/model"
)

const (
	// Title heads every rendered result.
	Title = "Prediction Result"

	// DefaultDisclaimer is shown under every result unless overridden.
	DefaultDisclaimer = "Note: This is a simulation for demonstration purposes only and should not be used for medical diagnosis."

	positiveExplanation = "Based on the provided data, the prediction indicates a positive result for diabetes risk. Consider consulting with a healthcare professional."
	negativeExplanation = "Based on the provided data, the prediction indicates a negative result for diabetes risk. However, maintaining a healthy lifestyle is always recommended."
)

// Tone names used in templates and CSS classes.
const (
	TonePositive = "positive"
	ToneNegative = "negative"
)

// View is the data handed to renderers and templates.
type View struct {
	Title       string    `json:"title"`
	Label       string    `json:"label"`
	Tone        string    `json:"tone"`
	Positive    bool      `json:"positive"`
	Explanation string    `json:"explanation"`
	Probability float64   `json:"probability"`
	Percent     string    `json:"percent"`
	Disclaimer  string    `json:"disclaimer"`
	Theme       ThemeView `json:"theme"`
}

// NewView builds the presentation of an outcome. The probability is shown as
// a percentage with one decimal and is otherwise left untouched.
func NewView(outcome model.PredictionOutcome, disclaimer string, themeView ThemeView) View {
	view := View{
		Title:       Title,
		Label:       outcome.Label(),
		Positive:    outcome.Positive,
		Probability: outcome.Probability,
		Percent:     fmt.Sprintf("%.1f%%", outcome.Percent()),
		Disclaimer:  disclaimer,
		Theme:       themeView,
	}
	if outcome.Positive {
		view.Tone = TonePositive
		view.Explanation = positiveExplanation
	} else {
		view.Tone = ToneNegative
		view.Explanation = negativeExplanation
	}
	return view
}
