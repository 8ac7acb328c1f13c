package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   Debug,
		" INFO ":  Info,
		"":        Info,
		"warning": Warn,
		"error":   Error,
		"bogus":   Info,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), "input %q", in)
	}
}

func TestNew_JSONIncludesAppAndFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: Info, Format: FormatJSON, App: "bird-sightings", Output: &buf})

	log.With(map[string]any{"request_id": "r-1"}).Info("bird saved", map[string]any{"name": "Robin", "": "dropped"})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "bird saved", entry["message"])
	assert.Equal(t, "bird-sightings", entry["app"])
	assert.Equal(t, "r-1", entry["request_id"])
	assert.Equal(t, "Robin", entry["name"])
	assert.NotContains(t, entry, "")
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: Warn, Format: FormatJSON, Output: &buf})

	log.Info("quiet", nil)
	log.Debug("quieter", nil)
	assert.Empty(t, buf.String())

	log.Error("loud", nil)
	assert.Contains(t, buf.String(), "loud")
}

func TestNew_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Level: Debug, Format: FormatText, Output: &buf})

	log.Debug("listing birds", map[string]any{"count": 3})

	line := buf.String()
	assert.True(t, strings.Contains(line, "listing birds"), line)
	assert.True(t, strings.Contains(line, "count=3"), line)
}
