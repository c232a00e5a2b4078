package logger

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsolatedLogger_GetLogs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	l := NewIsolatedLogger(path)

	l.Info("Deck", "opened", map[string]interface{}{"category": "mirror"})
	l.Warn("Deck", "write failed", nil)
	l.Debug("Deck", "below file level", nil)
	require.NoError(t, l.Sync())

	logs, err := l.GetLogs("", 10, 0)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, "write failed", logs[0].Message, "newest first")
	assert.Equal(t, "Deck", logs[1].Module)

	warns, err := l.GetLogs("WARN", 10, 0)
	require.NoError(t, err)
	assert.Len(t, warns, 1)

	entry, err := l.GetLogById(logs[1].Id)
	require.NoError(t, err)
	assert.Equal(t, "opened", entry.Message)

	_, err = l.GetLogById("missing")
	assert.ErrorIs(t, err, ErrLogNotFound)

	page, err := l.GetLogs("", 10, 5)
	require.NoError(t, err)
	assert.Empty(t, page)
}

func TestNopLogger(t *testing.T) {
	l := NewNopLogger()
	l.Error("Any", "dropped", map[string]interface{}{"error": "x"})

	logs, err := l.GetLogs("", 10, 0)
	require.NoError(t, err)
	assert.Empty(t, logs)
}
