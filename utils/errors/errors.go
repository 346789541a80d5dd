package errors

import (
	"errors"
)

type withKeyVals struct {
	error
	keyVals []interface{}
}

func (w withKeyVals) Unwrap() error {
	return w.error
}

// With attaches key/value pairs to the given error. They can be retrieved with KeyVals, even if the error gets wrapped further.
func With(err error, keyVals ...interface{}) error {
	if err == nil {
		return nil
	}

	return withKeyVals{error: err, keyVals: keyVals}
}

// KeyVals returns all key/value pairs attached to the error chain, outermost first
func KeyVals(err error) []interface{} {
	var keyVals []interface{}
	for err != nil {
		if w, ok := err.(withKeyVals); ok {
			keyVals = append(keyVals, w.keyVals...)
		}

		err = unwrap(err)
	}

	return keyVals
}

// Is returns true if any error in the chain is of type T
func Is[T error](err error) bool {
	var target T
	return errors.As(err, &target)
}

func unwrap(err error) error {
	if u := errors.Unwrap(err); u != nil {
		return u
	}

	// github.com/pkg/errors wrappers expose their cause through Cause
	if c, ok := err.(interface{ Cause() error }); ok {
		return c.Cause()
	}

	return nil
}
