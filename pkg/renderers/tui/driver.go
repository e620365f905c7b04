package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// InputConfig describes one metric prompt. Check, when set, runs on every
// answer; a non-nil error is shown and the question is asked again.
type InputConfig struct {
	Message     string
	Default     string
	Help        string
	Placeholder string
	Check       func(string) error
}

type ConfirmConfig struct {
	Message string
	Default bool
}

// SelectConfig describes a menu. Select returns the chosen index.
type SelectConfig struct {
	Message      string
	Options      []string
	DefaultIndex int
	PageSize     int
}

// PromptDriver is the terminal seam of a session. Tests script it; the CLI
// uses the survey implementation.
type PromptDriver interface {
	Input(ctx context.Context, cfg InputConfig) (string, error)
	Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error)
	Select(ctx context.Context, cfg SelectConfig) (int, error)
	Info(ctx context.Context, msg string) error
}

type surveyDriver struct {
	out  io.Writer
	opts []survey.AskOpt
}

// NewSurveyDriver returns the survey-backed driver. Messages go to out, or
// stdout when out is nil. opts are passed to every question, e.g.
// survey.WithStdio.
func NewSurveyDriver(out io.Writer, opts ...survey.AskOpt) PromptDriver {
	if out == nil {
		out = os.Stdout
	}
	return &surveyDriver{out: out, opts: opts}
}

func (d *surveyDriver) ask(ctx context.Context, prompt survey.Prompt, answer any, extra ...survey.AskOpt) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	opts := append(append([]survey.AskOpt{}, d.opts...), extra...)
	if err := survey.AskOne(prompt, answer, opts...); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return ErrAborted
		}
		return err
	}
	return nil
}

func (d *surveyDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	var answer string
	var extra []survey.AskOpt
	if cfg.Check != nil {
		extra = append(extra, survey.WithValidator(checkAnswer(cfg.Check)))
	}
	err := d.ask(ctx, &survey.Input{
		Message: cfg.Message,
		Default: cfg.Default,
		Help:    joinHelp(cfg.Help, cfg.Placeholder),
	}, &answer, extra...)
	return answer, err
}

func (d *surveyDriver) Confirm(ctx context.Context, cfg ConfirmConfig) (bool, error) {
	var answer bool
	err := d.ask(ctx, &survey.Confirm{Message: cfg.Message, Default: cfg.Default}, &answer)
	return answer, err
}

func (d *surveyDriver) Select(ctx context.Context, cfg SelectConfig) (int, error) {
	prompt := &survey.Select{
		Message:  cfg.Message,
		Options:  cfg.Options,
		PageSize: cfg.PageSize,
	}
	if cfg.DefaultIndex > 0 && cfg.DefaultIndex < len(cfg.Options) {
		prompt.Default = cfg.Options[cfg.DefaultIndex]
	}
	var choice string
	if err := d.ask(ctx, prompt, &choice); err != nil {
		return -1, err
	}
	for i, option := range cfg.Options {
		if option == choice {
			return i, nil
		}
	}
	return -1, fmt.Errorf("tui: unexpected choice %q", choice)
}

func (d *surveyDriver) Info(ctx context.Context, msg string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(d.out, msg)
	return err
}

// checkAnswer adapts a string check to survey's validator signature.
func checkAnswer(check func(string) error) survey.Validator {
	return func(ans interface{}) error {
		text, ok := ans.(string)
		if !ok {
			return fmt.Errorf("tui: unexpected answer type %T", ans)
		}
		return check(text)
	}
}

// joinHelp folds the placeholder into the help text shown on "?".
func joinHelp(help, placeholder string) string {
	help = strings.TrimSpace(help)
	placeholder = strings.TrimSpace(placeholder)
	switch {
	case placeholder == "":
		return help
	case help == "":
		return "e.g. " + placeholder
	default:
		return help + " (e.g. " + placeholder + ")"
	}
}
