// Package contract describes the wire format of the prediction endpoint. The
// request and response shapes live in an embedded OpenAPI 3 document so both
// directions can be checked with kin-openapi, and DecodeOutcome turns a
// response body into a model.PredictionOutcome.
package contract

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"

	"github.com/goliatone/go-riskform/pkg/model"
)

const (
	// PredictPath is the path of the prediction operation.
	PredictPath = "/predict"
	// ClassKey holds the predicted class in the response body.
	ClassKey = "Diabetes"
	// ProbabilityKey holds the positive-class probability.
	ProbabilityKey = "Probability"
	// ErrorKey holds the failure reason in non-2xx responses.
	ErrorKey = "error"
)

var (
	// ErrMalformedResponse marks a response body that cannot be interpreted.
	ErrMalformedResponse = errors.New("contract: malformed response")
	// ErrViolation marks a request or response that does not match the
	// OpenAPI document.
	ErrViolation = errors.New("contract: violation")
)

//go:embed predict.yaml
var predictDocument []byte

// Document returns a copy of the embedded OpenAPI document.
func Document() []byte {
	return append([]byte(nil), predictDocument...)
}

// Contract validates traffic against the prediction operation.
type Contract struct {
	route *routers.Route
}

// Load parses the embedded document.
func Load(ctx context.Context) (*Contract, error) {
	return Parse(ctx, predictDocument)
}

// Parse builds a Contract from an OpenAPI document that declares POST
// /predict.
func Parse(ctx context.Context, data []byte) (*Contract, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	loader := openapi3.NewLoader()
	loader.Context = ctx

	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("contract: load document: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("contract: validate document: %w", err)
	}

	if doc.Paths == nil {
		return nil, errors.New("contract: document does not contain any paths")
	}
	item := doc.Paths.Value(PredictPath)
	if item == nil || item.Post == nil {
		return nil, fmt.Errorf("contract: document does not declare POST %s", PredictPath)
	}

	return &Contract{
		route: &routers.Route{
			Spec:      doc,
			Path:      PredictPath,
			PathItem:  item,
			Method:    http.MethodPost,
			Operation: item.Post,
		},
	}, nil
}

// OperationID returns the operation identifier declared in the document.
func (c *Contract) OperationID() string {
	if c == nil || c.route == nil {
		return ""
	}
	return c.route.Operation.OperationID
}

// ValidateRequest checks an outgoing request. The request body is restored so
// the request can still be sent.
func (c *Contract) ValidateRequest(ctx context.Context, req *http.Request) error {
	if c == nil {
		return nil
	}
	body, err := readAndRestore(req)
	if err != nil {
		return err
	}
	input := &openapi3filter.RequestValidationInput{
		Request: req,
		Route:   c.route,
	}
	err = openapi3filter.ValidateRequest(ctx, input)
	req.Body = io.NopCloser(bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: request: %w", ErrViolation, err)
	}
	return nil
}

// ValidateResponse checks a received response against the declared status
// codes and schemas.
func (c *Contract) ValidateResponse(ctx context.Context, req *http.Request, status int, header http.Header, body []byte) error {
	if c == nil {
		return nil
	}
	input := &openapi3filter.ResponseValidationInput{
		RequestValidationInput: &openapi3filter.RequestValidationInput{
			Request: req,
			Route:   c.route,
		},
		Status: status,
		Header: header,
		Options: &openapi3filter.Options{
			IncludeResponseStatus: true,
		},
	}
	input.SetBodyBytes(body)
	if err := openapi3filter.ValidateResponse(ctx, input); err != nil {
		return fmt.Errorf("%w: response: %w", ErrViolation, err)
	}
	return nil
}

// DecodeOutcome interprets a successful response body. The outcome is
// positive only when the class value is the JSON number 1; booleans, strings
// and other numbers are negative. The probability is passed through unchanged.
func DecodeOutcome(body []byte) (model.PredictionOutcome, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var payload map[string]any
	if err := dec.Decode(&payload); err != nil {
		return model.PredictionOutcome{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	if payload == nil {
		return model.PredictionOutcome{}, fmt.Errorf("%w: empty body", ErrMalformedResponse)
	}

	rawProb, ok := payload[ProbabilityKey].(json.Number)
	if !ok {
		return model.PredictionOutcome{}, fmt.Errorf("%w: %s missing or not a number", ErrMalformedResponse, ProbabilityKey)
	}
	probability, err := rawProb.Float64()
	if err != nil {
		return model.PredictionOutcome{}, fmt.Errorf("%w: %s: %w", ErrMalformedResponse, ProbabilityKey, err)
	}

	return model.PredictionOutcome{
		Positive:    isPositiveClass(payload[ClassKey]),
		Probability: probability,
	}, nil
}

// DecodeFailure extracts the reason from an error body ({"error": "..."}).
// It returns an empty string when the body has another shape.
func DecodeFailure(body []byte) string {
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	reason, _ := payload[ErrorKey].(string)
	return reason
}

func isPositiveClass(value any) bool {
	n, ok := value.(json.Number)
	if !ok {
		return false
	}
	f, err := n.Float64()
	return err == nil && f == 1
}

func readAndRestore(req *http.Request) ([]byte, error) {
	if req == nil {
		return nil, errors.New("contract: request is nil")
	}
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}
	data, err := io.ReadAll(req.Body)
	_ = req.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("contract: read request body: %w", err)
	}
	req.Body = io.NopCloser(bytes.NewReader(data))
	return data, nil
}
