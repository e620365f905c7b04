// Package submission coordinates one form through validation, a single
// outstanding prediction request and the resulting outcome.
//
// A Controller moves through the states Idle, Validating, Invalid,
// Submitting, Succeeded and Failed. Succeeded and Failed are reported to
// observers and then settle back to Idle.
package submission

import "fmt"

// State is a controller lifecycle state.
type State int

const (
	StateIdle State = iota
	StateValidating
	StateInvalid
	StateSubmitting
	StateSucceeded
	StateFailed
)

var stateNames = [...]string{
	StateIdle:       "idle",
	StateValidating: "validating",
	StateInvalid:    "invalid",
	StateSubmitting: "submitting",
	StateSucceeded:  "succeeded",
	StateFailed:     "failed",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("state(%d)", int(s))
	}
	return stateNames[s]
}

// Transition describes a state change. SubmissionID is empty for transitions
// that do not belong to a request, such as an edit leaving Invalid.
type Transition struct {
	From         State
	To           State
	SubmissionID string
}

// Observer receives state transitions in order. Observers run after the
// controller lock has been released and may call back into the controller.
type Observer func(Transition)
