// Package errs wraps cockroachdb/errors behind the three operations the
// usecases need: context wrapping, new sentinel-free errors, and marking an
// error with a sentinel so callers can errors.Is on it without losing the
// original cause.
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

func New(msg string) error {
	return cr.New(msg)
}

// Mark attaches markErr as an identity while keeping err as the cause.
// A nil err collapses to the mark itself.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}
