package calcerr

import (
	"errors"
	"fmt"
)

// InvalidInput is the only error kind the calculation packages produce.
// Reason names the violated precondition so handlers can show it to the user.
type InvalidInput struct {
	Reason string
}

func (e *InvalidInput) Error() string {
	return "invalid input: " + e.Reason
}

// Errorf builds an InvalidInput with a formatted reason.
func Errorf(format string, args ...any) error {
	return &InvalidInput{Reason: fmt.Sprintf(format, args...)}
}

// Is reports whether err is (or wraps) an InvalidInput.
func Is(err error) bool {
	var e *InvalidInput
	return errors.As(err, &e)
}
