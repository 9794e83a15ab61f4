package joinrequest

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("join request not found")

// ValidationError rejects the submitted form data. It is deliberately a
// distinct type from storage failures so callers can tell "fix your input"
// apart from "the store refused valid input" and word the retry guidance
// accordingly.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid join request: %s", e.Message)
}
