package tui

import (
	"github.com/goliatone/go-riskform/pkg/render"
	"github.com/goliatone/go-riskform/pkg/uischema"
)

// Theme holds the prefixes put in front of notices.
type Theme struct {
	InfoPrefix    string
	SuccessPrefix string
	ErrorPrefix   string
}

// Option configures the TUI session.
type Option func(*Renderer)

// WithPromptDriver overrides the prompt driver used by the session.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// WithSchema supplies labels, units and placeholders.
func WithSchema(store *uischema.Store) Option {
	return func(r *Renderer) {
		if store != nil {
			r.schema = store
		}
	}
}

// WithDisplay sets how outcomes are shown after a successful submission.
func WithDisplay(display *render.Display) Option {
	return func(r *Renderer) {
		if display != nil {
			r.display = display
		}
	}
}

// WithTheme applies optional message prefixes.
func WithTheme(theme Theme) Option {
	return func(r *Renderer) {
		r.theme = theme
	}
}

// WithConfirmReset asks before clearing the form.
func WithConfirmReset(confirm bool) Option {
	return func(r *Renderer) {
		r.confirmReset = confirm
	}
}

// WithLiveValidation checks each answer as it is typed in, so a field is
// only accepted once it passes its rules.
func WithLiveValidation(live bool) Option {
	return func(r *Renderer) {
		r.live = live
	}
}
