package linear

import (
	"fmt"
	"strings"
)

// NotFoundError indicates that a user-supplied reference matched nothing.
type NotFoundError struct {
	Field string
	Value string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no %s found matching %q", e.Field, e.Value)
}

// AmbiguousError indicates that a name expected to be unique matched more
// than one entity. Candidates holds a human-readable label per match.
type AmbiguousError struct {
	Field      string
	Value      string
	Candidates []string
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("%s %q is ambiguous, candidates: %s", e.Field, e.Value, strings.Join(e.Candidates, ", "))
}

// ValidationError indicates bad client-side input: mutually exclusive flags,
// malformed numbers, missing required fields.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// RemoteError indicates that the API accepted the request but reported the
// mutation unsuccessful. It carries the operation and the identifiers the
// user supplied so the surface error never reads as a bare transport string.
type RemoteError struct {
	Operation  string
	Identifier string
	Cause      error
}

func (e *RemoteError) Error() string {
	msg := e.Operation
	if e.Identifier != "" {
		msg += " " + e.Identifier
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s failed: %v", msg, e.Cause)
	}
	return fmt.Sprintf("%s failed: the API reported no success", msg)
}

func (e *RemoteError) Unwrap() error {
	return e.Cause
}

func validationf(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func remoteErr(operation, identifier string, cause error) error {
	return &RemoteError{Operation: operation, Identifier: identifier, Cause: cause}
}

// isEntityNotFound recognizes the API's entity-not-found GraphQL error,
// which arrives as an error string rather than a null entity.
func isEntityNotFound(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "not found")
}
