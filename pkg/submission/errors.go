package submission

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-riskform/pkg/validation"
)

var (
	// ErrInFlight is returned when a submit is attempted while a request is
	// still outstanding. No second request is sent.
	ErrInFlight = errors.New("submission: a submission is already in flight")
	// ErrDiscarded reports that the form was reset while the request was in
	// flight, so its outcome was dropped.
	ErrDiscarded = errors.New("submission: outcome discarded after reset")
)

// InvalidError reports that validation failed. No request was sent.
type InvalidError struct {
	Result validation.Result
}

func (e *InvalidError) Error() string {
	issues := e.Result.Issues()
	parts := make([]string, 0, len(issues))
	for _, issue := range issues {
		parts = append(parts, fmt.Sprintf("%s: %s", issue.Field, issue.Message))
	}
	return "submission: form has errors: " + strings.Join(parts, "; ")
}

// IsInvalid reports whether err carries an InvalidError.
func IsInvalid(err error) bool {
	var ie *InvalidError
	return errors.As(err, &ie)
}
