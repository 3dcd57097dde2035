package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_StructuredJSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("info", &buf)

	log.Info().Str("owner_id", "abc").Msg("deposit created")

	var output map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output), "logger output should be valid JSON")

	assert.Equal(t, "deposit created", output["message"])
	assert.Equal(t, "abc", output["owner_id"])
	assert.Equal(t, "info", output["level"])
	assert.Contains(t, output, "time")
}

func TestLevels(t *testing.T) {
	tests := []struct {
		level     string
		debugSeen bool
		infoSeen  bool
	}{
		{"debug", true, true},
		{"info", false, true},
		{"WARN", false, false},
		{"error", false, false},
		{"invalid", false, true},
		{"", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			log := NewWithWriter(tt.level, &buf)

			log.Debug().Msg("d")
			assert.Equal(t, tt.debugSeen, buf.Len() > 0)

			buf.Reset()
			log.Info().Msg("i")
			assert.Equal(t, tt.infoSeen, buf.Len() > 0)
		})
	}
}

func TestComponent(t *testing.T) {
	var buf bytes.Buffer
	log := Component(NewWithWriter("info", &buf), "ledger")

	log.Info().Msg("credit applied")

	var output map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &output))
	assert.Equal(t, "ledger", output["component"])
}

func TestNew_PrettyMode(t *testing.T) {
	log := New("info", true)
	log.Info().Msg("pretty mode test")
}
