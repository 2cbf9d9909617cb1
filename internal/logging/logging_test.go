package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithWriter("warn", "json", &buf)
	require.NoError(t, err)

	logger.Info("dropped")
	logger.Warn("phase event not placed", zap.String("tile_id", "t-1"))
	require.NoError(t, logger.Sync())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "phase event not placed", entry["msg"])
	assert.Equal(t, "t-1", entry["tile_id"])
}

func TestNewWithWriter_ConsoleDefaultLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewWithWriter("", "", &buf)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("visible")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible")
	assert.Contains(t, out, "INFO")
}

func TestNewWithWriter_Rejects(t *testing.T) {
	_, err := NewWithWriter("loud", "json", &bytes.Buffer{})
	assert.Error(t, err)

	_, err = NewWithWriter("info", "xml", &bytes.Buffer{})
	assert.Error(t, err)
}
