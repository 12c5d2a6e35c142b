package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setup replaces the slog default, so these tests do not run in parallel.

func TestSetupLevels(t *testing.T) {
	tests := []struct {
		level     string
		wantDebug bool
		wantInfo  bool
	}{
		{level: "debug", wantDebug: true, wantInfo: true},
		{level: "INFO", wantDebug: false, wantInfo: true},
		{level: "error", wantDebug: false, wantInfo: false},
		{level: "verbose", wantDebug: false, wantInfo: true},
	}

	for _, tc := range tests {
		t.Run(tc.level, func(t *testing.T) {
			var buf bytes.Buffer
			l := setup(&buf, tc.level)

			l.Debug("debug message")
			l.Info("info message")

			out := buf.String()
			assert.Equal(t, tc.wantDebug, strings.Contains(out, "debug message"))
			assert.Equal(t, tc.wantInfo, strings.Contains(out, "info message"))
		})
	}
}

func TestSetupWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	l := setup(&buf, "info")

	l.Info("entry saved", "op", "usecases.Diary.SaveEntry", "entry_id", 3)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "INFO", record["level"])
	assert.Equal(t, "entry saved", record["msg"])
	assert.Equal(t, "usecases.Diary.SaveEntry", record["op"])
	assert.EqualValues(t, 3, record["entry_id"])
}
