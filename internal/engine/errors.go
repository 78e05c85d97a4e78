package engine

import (
	"errors"
	"fmt"
)

// ErrDayBlocked is returned when a mission is added to a blocked date.
var ErrDayBlocked = errors.New("day is blocked")

// ValidationError reports a rejected command input. Callers surface it
// inline; it never corrupts state.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
