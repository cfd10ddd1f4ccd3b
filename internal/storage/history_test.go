package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHistoryStore(t *testing.T) {
	t.Run("valid dsn does not connect", func(t *testing.T) {
		h, err := NewHistoryStore("runner:secret@tcp(127.0.0.1:3306)/apirunner")
		require.NoError(t, err)
		assert.NoError(t, h.Close())
	})

	t.Run("invalid dsn", func(t *testing.T) {
		_, err := NewHistoryStore("not a dsn")
		assert.ErrorContains(t, err, "invalid history DSN")
	})
}
