package expect

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqual(t *testing.T) {
	assert.NoError(t, Equal("status", 200, 200))
	assert.NoError(t, Equal("books", []string{"a"}, []string{"a"}))

	err := Equal("status", 200, 404)
	assert.ErrorIs(t, err, ErrAssertion)
	assert.Equal(t, "status: expected 200, got 404", err.Error())

	var ae *AssertionError
	assert.True(t, errors.As(err, &ae))
	assert.Equal(t, 404, ae.Actual)

	assert.Equal(t, `expected "x", got "y"`, Equal("", "x", "y").Error())
}

func TestAll(t *testing.T) {
	assert.NoError(t, All(nil, nil))

	first := Equal("first", 1, 2)
	err := All(nil, first, Equal("second", 3, 4))
	assert.Same(t, first, err)
}
