package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		level     string
		wantDebug bool
		wantWarn  bool
	}{
		{level: "debug", wantDebug: true, wantWarn: true},
		{level: "info", wantDebug: false, wantWarn: true},
		{level: "warn", wantDebug: false, wantWarn: true},
		{level: "error", wantDebug: false, wantWarn: false},
		{level: "bogus", wantDebug: false, wantWarn: true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(tt.level, "text", &buf)
			logger.Debug("debug message")
			logger.Warn("warn message")

			assert.Equal(t, tt.wantDebug, strings.Contains(buf.String(), "debug message"))
			assert.Equal(t, tt.wantWarn, strings.Contains(buf.String(), "warn message"))
		})
	}
}

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	New("info", "json", &buf).Info("halting run", "example", "Array #size")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "halting run", entry["msg"])
	assert.Equal(t, "Array #size", entry["example"])
}
