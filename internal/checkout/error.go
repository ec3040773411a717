package checkout

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// -- State Machine --
	ErrInvalidTransition = errors.New("invalid checkout transition")
	ErrCheckoutComplete  = errors.New("checkout already completed")
)

// ValidationError is a single field-level failure from a form submission.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors aggregates every failing field of one submission.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fmt.Sprintf("%s: %s", fe.Field, fe.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
