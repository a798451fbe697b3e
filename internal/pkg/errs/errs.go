package errs

import (
	cr "github.com/cockroachdb/errors"
)

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

func New(msg string) error {
	return cr.New(msg)
}

func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}

// Is reports whether err matches reference, including marks applied with
// Mark. Marks live outside the Unwrap chain, so the standard library's
// errors.Is cannot see them; sentinel checks must go through here.
func Is(err error, reference error) bool {
	return cr.Is(err, reference)
}
