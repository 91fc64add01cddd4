package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("DEBUG", "")

	tests := []struct {
		name string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"INFO", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLevel(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLevelUnknown(t *testing.T) {
	level, err := ParseLevel("verbose")
	assert.Error(t, err)
	assert.Equal(t, zerolog.InfoLevel, level)
}

func TestParseLevelFromEnvironment(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("DEBUG", "1")

	level, err := ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, level)

	t.Setenv("LOG_LEVEL", "error")
	level, err = ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, zerolog.ErrorLevel, level)
}

func TestZerologAdapterWritesComponent(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.DebugLevel)

	log.Info("viewport", "image loaded", map[string]interface{}{"width": 640})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "viewport", entry["component"])
	assert.Equal(t, "image loaded", entry["message"])
	assert.Equal(t, float64(640), entry["width"])
}

func TestZerologAdapterRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.WarnLevel)

	log.Debug("viewport", "dropped", nil)
	log.Info("viewport", "dropped", nil)
	assert.Zero(t, buf.Len())

	log.Error("codec", errors.New("boom"), nil)
	assert.Contains(t, buf.String(), "boom")
}

func TestZerologAdapterWithAddsContext(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.InfoLevel).With(map[string]interface{}{"version": "1.0.0"})

	log.Warning("view", "window move not applied", map[string]interface{}{"error": "unsupported"})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "1.0.0", entry["version"])
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "view", entry["component"])
	assert.Equal(t, "unsupported", entry["error"])
}
