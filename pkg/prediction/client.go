// Package prediction talks to the remote prediction service. A Client posts a
// FieldSet as JSON and turns the response into a model.PredictionOutcome;
// every failure along the way is reported as a *TransportError.
package prediction

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"

	"github.com/goliatone/go-riskform/pkg/contract"
	"github.com/goliatone/go-riskform/pkg/model"
)

// DefaultEndpoint is where the reference backend listens.
const DefaultEndpoint = "http://localhost:5000" + contract.PredictPath

const maxResponseBytes = 1 << 20

// Client posts metrics to the prediction endpoint.
type Client struct {
	endpoint   string
	httpClient *http.Client
	contract   *contract.Contract
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithEndpoint overrides the prediction URL.
func WithEndpoint(endpoint string) Option {
	return func(c *Client) {
		c.endpoint = strings.TrimSpace(endpoint)
	}
}

// WithHTTPClient injects the HTTP client used for requests. Timeouts are
// normally applied through the request context by the submission controller.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithContract enables request and response validation against the OpenAPI
// document. Violations surface as KindContract transport errors.
func WithContract(ct *contract.Contract) Option {
	return func(c *Client) {
		c.contract = ct
	}
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New constructs a Client. Without options it targets DefaultEndpoint using
// http.DefaultClient.
func New(options ...Option) (*Client, error) {
	c := &Client{
		endpoint:   DefaultEndpoint,
		httpClient: http.DefaultClient,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(c)
	}
	if c.endpoint == "" {
		return nil, ErrEndpointRequired
	}
	return c, nil
}

// Endpoint reports the URL requests are sent to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Predict sends one request and interprets the response. It never retries.
func (c *Client) Predict(ctx context.Context, fields model.FieldSet) (model.PredictionOutcome, error) {
	if ctx == nil {
		return model.PredictionOutcome{}, errors.New("prediction: context is required")
	}

	body, err := json.Marshal(fields)
	if err != nil {
		return model.PredictionOutcome{}, fmt.Errorf("prediction: encode fields: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return model.PredictionOutcome{}, fmt.Errorf("prediction: request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	if c.contract != nil {
		if err := c.contract.ValidateRequest(ctx, req); err != nil {
			return model.PredictionOutcome{}, &TransportError{Kind: KindContract, Err: err}
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return model.PredictionOutcome{}, classify(ctx, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return model.PredictionOutcome{}, classify(ctx, err)
	}

	c.logger.Debug("prediction response",
		slog.String("endpoint", c.endpoint),
		slog.Int("status", resp.StatusCode),
		slog.Int("bytes", len(data)),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return model.PredictionOutcome{}, &TransportError{
			Kind:       KindStatus,
			StatusCode: resp.StatusCode,
			Reason:     failureReason(data),
		}
	}

	if c.contract != nil {
		if err := c.contract.ValidateResponse(ctx, req, resp.StatusCode, resp.Header, data); err != nil {
			return model.PredictionOutcome{}, &TransportError{Kind: KindContract, StatusCode: resp.StatusCode, Err: err}
		}
	}

	outcome, err := contract.DecodeOutcome(data)
	if err != nil {
		return model.PredictionOutcome{}, &TransportError{Kind: KindDecode, StatusCode: resp.StatusCode, Err: err}
	}
	return outcome, nil
}

func classify(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return &TransportError{Kind: KindTimeout, Err: context.DeadlineExceeded}
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &TransportError{Kind: KindTimeout, Err: err}
	}
	return &TransportError{Kind: KindNetwork, Err: err}
}

func failureReason(body []byte) string {
	if reason := contract.DecodeFailure(body); reason != "" {
		return reason
	}
	text := strings.TrimSpace(string(body))
	if len(text) > 200 {
		text = text[:200] + "..."
	}
	return text
}
