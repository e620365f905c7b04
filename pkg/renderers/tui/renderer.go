package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-riskform/pkg/form"
	"github.com/goliatone/go-riskform/pkg/model"
	"github.com/goliatone/go-riskform/pkg/render"
	"github.com/goliatone/go-riskform/pkg/submission"
	"github.com/goliatone/go-riskform/pkg/uischema"
	"github.com/goliatone/go-riskform/pkg/validation"
)

// Controller is the part of *submission.Controller the session drives.
type Controller interface {
	Fields() model.FieldSet
	FieldState(id model.FieldID) form.FieldState
	Edit(id model.FieldID, value string) error
	Submit(ctx context.Context) (model.PredictionOutcome, error)
	Reset()
}

var _ Controller = (*submission.Controller)(nil)

// Menu actions offered after the fields are filled.
const (
	actionPredict = iota
	actionEdit
	actionReset
	actionQuit
)

// Renderer runs an interactive form session in the terminal.
type Renderer struct {
	controller   Controller
	driver       PromptDriver
	schema       *uischema.Store
	display      *render.Display
	theme        Theme
	confirmReset bool
	live         bool
}

// New constructs a session over controller. Without options it prompts
// through survey, labels fields with the embedded UI schema and renders
// results as text.
func New(controller Controller, options ...Option) (*Renderer, error) {
	if controller == nil {
		return nil, ErrControllerRequired
	}
	r := &Renderer{controller: controller}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}

	if r.driver == nil {
		r.driver = NewSurveyDriver(nil)
	}
	if r.schema == nil {
		store, err := uischema.Default()
		if err != nil {
			return nil, fmt.Errorf("tui: load ui schema: %w", err)
		}
		r.schema = store
	}
	if r.display == nil {
		display, err := render.NewDisplay()
		if err != nil {
			return nil, fmt.Errorf("tui: display: %w", err)
		}
		r.display = display
	}
	return r, nil
}

// Run fills the form, then loops over the action menu until the user quits.
// ErrAborted is returned when the user interrupts a prompt.
func (r *Renderer) Run(ctx context.Context) error {
	if ctx == nil {
		return errors.New("tui: context is required")
	}
	if err := r.header(ctx); err != nil {
		return err
	}
	if err := r.fill(ctx, model.FieldIDs()); err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		choice, err := r.driver.Select(ctx, SelectConfig{
			Message: "What would you like to do?",
			Options: r.menu(),
		})
		if err != nil {
			return err
		}

		switch choice {
		case actionPredict:
			if err := r.predict(ctx); err != nil {
				return err
			}
		case actionEdit:
			if err := r.editOne(ctx); err != nil {
				return err
			}
		case actionReset:
			if err := r.reset(ctx); err != nil {
				return err
			}
		case actionQuit:
			return nil
		default:
			return fmt.Errorf("tui: unknown menu choice %d", choice)
		}
	}
}

// Notify satisfies submission.Notifier so controller notices reach the same
// terminal as the prompts.
func (r *Renderer) Notify(n submission.Notice) {
	_ = r.driver.Info(context.Background(), r.prefix(n.Level)+n.Message)
}

func (r *Renderer) header(ctx context.Context) error {
	cfg := r.schema.Form()
	for _, line := range []string{cfg.Title, cfg.Subtitle} {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := r.driver.Info(ctx, line); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) menu() []string {
	return []string{
		r.schema.Action(uischema.ActionSubmit, "Predict Risk"),
		"Edit a field",
		r.schema.Action(uischema.ActionReset, "Reset Form"),
		"Quit",
	}
}

func (r *Renderer) fill(ctx context.Context, ids []model.FieldID) error {
	for _, id := range ids {
		if err := r.promptField(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) promptField(ctx context.Context, id model.FieldID) error {
	cfg := r.schema.Field(id)
	message := cfg.DisplayLabel()
	if state := r.controller.FieldState(id); state.Status == form.StatusInvalid {
		message = fmt.Sprintf("%s [%s]", message, state.Message)
	}

	input := InputConfig{
		Message:     message,
		Default:     r.controller.Fields().Get(id),
		Help:        cfg.HelpText,
		Placeholder: cfg.Placeholder,
	}
	if r.live {
		input.Check = func(value string) error {
			if msg, ok := validation.ValidateField(id, value); !ok {
				return errors.New(msg)
			}
			return nil
		}
	}
	value, err := r.driver.Input(ctx, input)
	if err != nil {
		return err
	}
	return r.controller.Edit(id, value)
}

func (r *Renderer) predict(ctx context.Context) error {
	outcome, err := r.controller.Submit(ctx)
	var invalid *submission.InvalidError
	switch {
	case errors.As(err, &invalid):
		ids := make([]model.FieldID, 0, len(invalid.Result.Issues()))
		for _, issue := range invalid.Result.Issues() {
			ids = append(ids, issue.Field)
		}
		return r.fill(ctx, ids)
	case errors.Is(err, ErrAborted), errors.Is(err, context.Canceled):
		return err
	case err != nil:
		// The controller already emitted the failure notice.
		return nil
	}

	rendered, err := r.display.RenderString(&outcome)
	if err != nil {
		return err
	}
	return r.driver.Info(ctx, strings.TrimRight(rendered, "\n"))
}

func (r *Renderer) editOne(ctx context.Context) error {
	ids := model.FieldIDs()
	fields := r.controller.Fields()
	options := make([]string, 0, len(ids))
	for _, id := range ids {
		label := r.schema.Field(id).DisplayLabel()
		if value := fields.Get(id); value != "" {
			label = fmt.Sprintf("%s: %s", label, value)
		}
		options = append(options, label)
	}

	idx, err := r.driver.Select(ctx, SelectConfig{
		Message:  "Which field?",
		Options:  options,
		PageSize: len(options),
	})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(ids) {
		return fmt.Errorf("tui: unknown field choice %d", idx)
	}
	return r.promptField(ctx, ids[idx])
}

func (r *Renderer) reset(ctx context.Context) error {
	if r.confirmReset {
		ok, err := r.driver.Confirm(ctx, ConfirmConfig{Message: "Clear all fields?", Default: false})
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
	r.controller.Reset()
	return r.fill(ctx, model.FieldIDs())
}

func (r *Renderer) prefix(level submission.Level) string {
	switch level {
	case submission.LevelSuccess:
		return r.theme.SuccessPrefix
	case submission.LevelError:
		return r.theme.ErrorPrefix
	default:
		return r.theme.InfoPrefix
	}
}
