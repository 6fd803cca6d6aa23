package cli

import (
	"errors"
	"fmt"
)

// ErrVerifyFailed is returned when --verify finds a mismatch.
var ErrVerifyFailed = errors.New("cli: distances differ from the sequential reference")

// UsageError marks malformed invocations. They are reported together with
// the usage text.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return e.Err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// usageErrorf builds a UsageError from a format string.
func usageErrorf(format string, args ...any) error {
	return &UsageError{Err: fmt.Errorf(format, args...)}
}
