package nhlapi

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when the upstream affirmatively reports that a
// resource does not exist (404 or an empty body where data is required).
var ErrNotFound = errors.New("not found")

// UpstreamError wraps any failure talking to the NHL APIs: transport
// errors, non-2xx statuses, and unparsable bodies. Status is 0 when the
// request never produced a response.
type UpstreamError struct {
	Operation string
	Status    int
	Err       error
}

func (e *UpstreamError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("nhlapi: %s: status %d: %v", e.Operation, e.Status, e.Err)
	}
	return fmt.Sprintf("nhlapi: %s: %v", e.Operation, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }

func upstreamErr(op string, status int, err error) error {
	return &UpstreamError{Operation: op, Status: status, Err: err}
}
