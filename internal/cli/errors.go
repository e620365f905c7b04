package cli

import "fmt"

// ExitCodeInvalid is returned when the metrics fail validation.
const ExitCodeInvalid = 2

// ExitError carries a process exit code. Err may be nil when the reason was
// already printed.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}
