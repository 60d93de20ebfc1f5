package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, c, err := New("loud", "")
	require.Error(t, err)
	assert.NoError(t, c.Close())
}

func TestNewWritesFileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "pyramid.log")
	log, c, err := New("debug", path)
	require.NoError(t, err)

	log.Debug().Int("depth", 4).Msg("depth changed")
	require.NoError(t, c.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"depth":4`)
	assert.Contains(t, string(data), `"message":"depth changed"`)
}

func TestLevelFiltersFileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pyramid.log")
	log, c, err := New("warn", path)
	require.NoError(t, err)

	log.Info().Msg("hidden")
	log.Warn().Msg("shown")
	require.NoError(t, c.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown")
}
