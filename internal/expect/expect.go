// Package expect provides the equality checks test cases use to assert on responses.
package expect

import (
	"errors"
	"fmt"

	"github.com/stretchr/testify/assert"
)

// ErrAssertion is wrapped by every failed expectation
var ErrAssertion = errors.New("assertion failed")

// AssertionError describes one failed expectation
type AssertionError struct {
	Label    string
	Expected interface{}
	Actual   interface{}
}

func (e *AssertionError) Error() string {
	if e.Label == "" {
		return fmt.Sprintf("expected %#v, got %#v", e.Expected, e.Actual)
	}
	return fmt.Sprintf("%s: expected %#v, got %#v", e.Label, e.Expected, e.Actual)
}

func (e *AssertionError) Unwrap() error {
	return ErrAssertion
}

// Equal returns an AssertionError unless actual equals expected
func Equal(label string, expected, actual interface{}) error {
	if assert.ObjectsAreEqual(expected, actual) {
		return nil
	}
	return &AssertionError{Label: label, Expected: expected, Actual: actual}
}

// All returns the first failing check, or nil
func All(checks ...error) error {
	for _, err := range checks {
		if err != nil {
			return err
		}
	}
	return nil
}
