package submission

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-riskform/pkg/form"
	"github.com/goliatone/go-riskform/pkg/model"
	"github.com/goliatone/go-riskform/pkg/prediction"
	"github.com/goliatone/go-riskform/pkg/validation"
)

// Predictor turns a validated FieldSet into an outcome.
// *prediction.Client satisfies it.
type Predictor interface {
	Predict(ctx context.Context, fields model.FieldSet) (model.PredictionOutcome, error)
}

// PredictorFunc adapts a function to Predictor.
type PredictorFunc func(ctx context.Context, fields model.FieldSet) (model.PredictionOutcome, error)

func (fn PredictorFunc) Predict(ctx context.Context, fields model.FieldSet) (model.PredictionOutcome, error) {
	return fn(ctx, fields)
}

// Result is delivered once per accepted submission.
type Result struct {
	SubmissionID string
	Outcome      model.PredictionOutcome
	Err          error
}

// Controller owns a form and drives it through submission. All methods are
// safe for concurrent use.
type Controller struct {
	mu         sync.Mutex
	form       *form.Form
	state      State
	inFlight   bool
	generation uint64

	predictor  Predictor
	store      *Store
	notifier   Notifier
	observers  []Observer
	timeout    time.Duration
	minPending time.Duration
	logger     *slog.Logger
	prefill    map[string]string
}

// event is a notification collected under the lock and emitted after it is
// released.
type event struct {
	transition *Transition
	notice     *Notice
}

// New constructs a Controller in the Idle state.
func New(options ...Option) (*Controller, error) {
	c := &Controller{
		store:    NewStore(),
		notifier: discardNotifier{},
		timeout:  DefaultTimeout,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	if c.predictor == nil {
		client, err := prediction.New(prediction.WithLogger(c.logger))
		if err != nil {
			return nil, fmt.Errorf("submission: default predictor: %w", err)
		}
		c.predictor = client
	}

	prefill := model.FieldSet{}
	for name, value := range c.prefill {
		id, err := model.ParseFieldID(name)
		if err != nil {
			return nil, fmt.Errorf("submission: prefill: %w", err)
		}
		prefill.Set(id, value)
	}
	c.form = form.New(prefill)
	return c, nil
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// InFlight reports whether a request is outstanding.
func (c *Controller) InFlight() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inFlight
}

// Fields returns a snapshot of the current values.
func (c *Controller) Fields() model.FieldSet {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form.Fields()
}

// FieldState returns the status of one field.
func (c *Controller) FieldState(id model.FieldID) form.FieldState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form.State(id)
}

// Errors returns the field messages currently shown.
func (c *Controller) Errors() map[model.FieldID]string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form.Errors()
}

// Store exposes the result container.
func (c *Controller) Store() *Store {
	return c.store
}

// Outcome returns the last successful outcome, if any.
func (c *Controller) Outcome() (model.PredictionOutcome, bool) {
	return c.store.Outcome()
}

// Edit records a change to one field. Only that field's error is cleared. An
// Invalid controller returns to Idle.
func (c *Controller) Edit(id model.FieldID, value string) error {
	if !id.Valid() {
		return fmt.Errorf("submission: edit: %w", model.ErrUnknownField)
	}
	c.mu.Lock()
	c.form.Set(id, value)
	var events []event
	if c.state == StateInvalid {
		events = append(events, c.transitionLocked(StateIdle, ""))
	}
	c.mu.Unlock()
	c.emit(events)
	return nil
}

// Reset restores every field to empty, clears all errors and empties the
// store. If a request is in flight it keeps running but its outcome is
// discarded.
func (c *Controller) Reset() {
	c.mu.Lock()
	c.form.Reset()
	c.store.Clear()
	c.generation++
	var events []event
	if !c.inFlight && c.state != StateIdle {
		events = append(events, c.transitionLocked(StateIdle, ""))
	}
	c.mu.Unlock()
	c.logger.Debug("form reset")
	c.emit(events)
}

// SubmitFields replaces the form contents and submits them. The contents are
// left untouched when a request is already outstanding.
func (c *Controller) SubmitFields(ctx context.Context, fields model.FieldSet) (model.PredictionOutcome, error) {
	ch, err := c.submitAsync(ctx, &fields)
	if err != nil {
		return model.PredictionOutcome{}, err
	}
	return c.await(ctx, ch)
}

// Submit validates the form and, when valid, waits for the prediction.
func (c *Controller) Submit(ctx context.Context) (model.PredictionOutcome, error) {
	ch, err := c.SubmitAsync(ctx)
	if err != nil {
		return model.PredictionOutcome{}, err
	}
	return c.await(ctx, ch)
}

func (c *Controller) await(ctx context.Context, ch <-chan Result) (model.PredictionOutcome, error) {
	select {
	case res := <-ch:
		return res.Outcome, res.Err
	case <-ctx.Done():
		return model.PredictionOutcome{}, ctx.Err()
	}
}

// SubmitAsync validates synchronously and starts the request in the
// background. It returns ErrInFlight while an earlier request is outstanding
// and *InvalidError when validation fails. The returned channel yields exactly
// one Result and is then closed.
func (c *Controller) SubmitAsync(ctx context.Context) (<-chan Result, error) {
	return c.submitAsync(ctx, nil)
}

// submitAsync loads replacement fields, when given, and starts the request
// within one lock hold.
func (c *Controller) submitAsync(ctx context.Context, replace *model.FieldSet) (<-chan Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	c.mu.Lock()
	if c.inFlight {
		c.mu.Unlock()
		return nil, ErrInFlight
	}
	if replace != nil {
		c.form.Load(*replace)
	}

	events := []event{c.transitionLocked(StateValidating, "")}
	fields := c.form.Fields()
	result := validation.Validate(fields)
	c.form.Apply(result)

	if !result.Valid() {
		events = append(events,
			c.transitionLocked(StateInvalid, ""),
			noticeEvent(LevelError, NoticeInvalid),
		)
		c.mu.Unlock()
		c.logger.Debug("submission rejected", slog.Int("issues", len(result.Issues())))
		c.emit(events)
		return nil, &InvalidError{Result: result}
	}

	id := uuid.NewString()
	c.inFlight = true
	generation := c.generation
	events = append(events,
		c.transitionLocked(StateSubmitting, id),
		noticeEvent(LevelInfo, NoticeAnalyzing),
	)
	c.mu.Unlock()
	c.emit(events)

	out := make(chan Result, 1)
	go c.run(ctx, id, generation, fields, out)
	return out, nil
}

func (c *Controller) run(ctx context.Context, id string, generation uint64, fields model.FieldSet, out chan<- Result) {
	defer close(out)

	logger := c.logger.With(slog.String("submission_id", id))
	logger.Info("submitting prediction request")

	started := time.Now()
	outcome, err := c.predict(ctx, fields)
	c.holdPending(ctx, started)

	c.mu.Lock()
	c.inFlight = false
	var events []event
	switch {
	case c.generation != generation:
		events = append(events, c.transitionLocked(StateIdle, id))
		outcome, err = model.PredictionOutcome{}, ErrDiscarded
		logger.Info("discarding outcome after reset")
	case err != nil:
		events = append(events,
			c.transitionLocked(StateFailed, id),
			noticeEvent(LevelError, fmt.Sprintf(noticeFailedPattern, describe(err))),
			c.transitionLocked(StateIdle, id),
		)
		logger.Warn("prediction failed", slog.String("error", err.Error()), slog.Duration("elapsed", time.Since(started)))
	default:
		c.store.Set(outcome)
		events = append(events,
			c.transitionLocked(StateSucceeded, id),
			noticeEvent(LevelSuccess, NoticeComplete),
			c.transitionLocked(StateIdle, id),
		)
		logger.Info("prediction complete",
			slog.Bool("positive", outcome.Positive),
			slog.Float64("probability", outcome.Probability),
			slog.Duration("elapsed", time.Since(started)),
		)
	}
	c.mu.Unlock()
	c.emit(events)

	out <- Result{SubmissionID: id, Outcome: outcome, Err: err}
}

// predict calls the predictor under the configured timeout. The deadline is
// enforced here even if the predictor ignores its context.
func (c *Controller) predict(ctx context.Context, fields model.FieldSet) (model.PredictionOutcome, error) {
	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	type reply struct {
		outcome model.PredictionOutcome
		err     error
	}
	done := make(chan reply, 1)
	go func() {
		outcome, err := c.predictor.Predict(reqCtx, fields)
		done <- reply{outcome: outcome, err: err}
	}()

	select {
	case r := <-done:
		if r.err != nil && !prediction.IsTransportError(r.err) {
			return model.PredictionOutcome{}, wrapContextErr(r.err)
		}
		return r.outcome, r.err
	case <-reqCtx.Done():
		return model.PredictionOutcome{}, wrapContextErr(reqCtx.Err())
	}
}

func (c *Controller) holdPending(ctx context.Context, started time.Time) {
	wait := c.minPending - time.Since(started)
	if wait <= 0 {
		return
	}
	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}

func wrapContextErr(err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return &prediction.TransportError{Kind: prediction.KindTimeout, Err: err}
	case errors.Is(err, context.Canceled):
		return &prediction.TransportError{Kind: prediction.KindNetwork, Err: err}
	default:
		return err
	}
}

func describe(err error) string {
	var te *prediction.TransportError
	if errors.As(err, &te) {
		return te.Describe()
	}
	return err.Error()
}

func (c *Controller) transitionLocked(to State, id string) event {
	from := c.state
	c.state = to
	return event{transition: &Transition{From: from, To: to, SubmissionID: id}}
}

func noticeEvent(level Level, message string) event {
	return event{notice: &Notice{Level: level, Message: message}}
}

func (c *Controller) emit(events []event) {
	for _, ev := range events {
		if ev.transition != nil {
			for _, obs := range c.observers {
				obs(*ev.transition)
			}
		}
		if ev.notice != nil {
			c.notifier.Notify(*ev.notice)
		}
	}
}
