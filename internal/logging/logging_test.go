package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfrund/pinboard/internal/config"
)

func TestNewJSON(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	var buf bytes.Buffer
	logger := New(&config.Config{LogFormat: "json", LogLevel: slog.LevelInfo}, &buf)

	logger.Debug("hidden")
	slog.Info("registered tags", "count", 32)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "registered tags", entry["msg"])
	assert.Equal(t, float64(32), entry["count"])
}

func TestNewText(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	var buf bytes.Buffer
	New(&config.Config{LogFormat: "text", LogLevel: slog.LevelDebug}, &buf).Debug("sealed")
	assert.Contains(t, buf.String(), "msg=sealed")
	assert.Contains(t, buf.String(), "source=")
}
