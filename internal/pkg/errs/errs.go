// Package errs wraps cockroachdb/errors so call sites carry stack traces and
// sentinel marks without importing the library directly. Mark attaches a
// domain sentinel to an underlying cause; handlers branch on the sentinel
// with errors.Is while logs keep the full chain.
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

func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(err, markErr)
}
