package server

import (
	"errors"
	"fmt"

	"github.com/argotdev/nhl-mcp/internal/nhlapi"
)

// Error kinds reported in structured tool-error responses.
const (
	KindInvalidArgument = "invalid_argument"
	KindNotFound        = "not_found"
	KindUpstream        = "upstream"
	KindInternal        = "internal"
)

// InvalidArgumentError reports bad or missing tool input. It is raised
// before any upstream fetch happens.
type InvalidArgumentError struct {
	Field  string
	Reason string
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func invalidArg(field, format string, args ...any) error {
	return &InvalidArgumentError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// errorKind classifies err into one of the reported kinds.
func errorKind(err error) string {
	var argErr *InvalidArgumentError
	if errors.As(err, &argErr) {
		return KindInvalidArgument
	}
	if errors.Is(err, nhlapi.ErrNotFound) {
		return KindNotFound
	}
	var upErr *nhlapi.UpstreamError
	if errors.As(err, &upErr) {
		return KindUpstream
	}
	return KindInternal
}
