package prediction

import (
	"errors"
	"fmt"
)

// ErrorKind classifies transport failures. Callers usually only need to know
// that a submission failed; the kind is kept for logs and tests.
type ErrorKind string

const (
	KindNetwork  ErrorKind = "network"
	KindStatus   ErrorKind = "status"
	KindDecode   ErrorKind = "decode"
	KindContract ErrorKind = "contract"
	KindTimeout  ErrorKind = "timeout"
)

// ErrEndpointRequired is returned when the client has no endpoint to call.
var ErrEndpointRequired = errors.New("prediction: endpoint is required")

// TransportError reports any failure between sending the request and
// interpreting the response.
type TransportError struct {
	Kind       ErrorKind
	StatusCode int
	Reason     string
	Err        error
}

func (e *TransportError) Error() string {
	switch {
	case e.Kind == KindStatus && e.Reason != "":
		return fmt.Sprintf("prediction: unexpected status %d: %s", e.StatusCode, e.Reason)
	case e.Kind == KindStatus:
		return fmt.Sprintf("prediction: unexpected status %d", e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("prediction: %s: %v", e.Kind, e.Err)
	default:
		return fmt.Sprintf("prediction: %s failure", e.Kind)
	}
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsTransportError reports whether err carries a TransportError.
func IsTransportError(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// Describe returns a short human readable reason suitable for a notice.
func (e *TransportError) Describe() string {
	switch e.Kind {
	case KindStatus:
		if e.Reason != "" {
			return e.Reason
		}
		return fmt.Sprintf("server responded with status %d", e.StatusCode)
	case KindTimeout:
		return "request timed out"
	case KindNetwork:
		return "could not reach the prediction service"
	default:
		return "unexpected response from the prediction service"
	}
}
