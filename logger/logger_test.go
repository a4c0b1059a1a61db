package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	t.Run("Nil writer", func(t *testing.T) {
		_, err := New("APP", "", nil)
		assert.ErrorIs(t, err, ErrNilWriter)
	})

	t.Run("Levels", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New("SIM", "", &buf)
		require.NoError(t, err)

		l.Info("started")
		l.Error("failed")
		l.Debug("hidden")
		assert.Contains(t, buf.String(), "[SIM]")
		assert.Contains(t, buf.String(), "[INFO]"+colorReset+" started")
		assert.Contains(t, buf.String(), "[ERROR]"+colorReset+" failed")
		assert.NotContains(t, buf.String(), "hidden")

		l.SetDebug(true)
		l.Debug("shown")
		assert.Contains(t, buf.String(), "[DEBUG]"+colorReset+" shown")
	})
}
