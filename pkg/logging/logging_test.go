package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			t.Setenv("XDG_STATE_HOME", tempDir)

			SetupLogger(tt.verbosity)

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())

			logPath := filepath.Join(tempDir, "resconf", "resconf.log")
			_, err := os.Stat(logPath)
			assert.NoError(t, err, "log file should exist at %s", logPath)
		})
	}
}

func TestGetLogFilePath(t *testing.T) {
	t.Run("with XDG_STATE_HOME", func(t *testing.T) {
		t.Setenv("XDG_STATE_HOME", "/custom/state")
		assert.Equal(t, filepath.Join("/custom/state", "resconf", "resconf.log"), getLogFilePath())
	})

	t.Run("without XDG_STATE_HOME", func(t *testing.T) {
		t.Setenv("XDG_STATE_HOME", "")
		got := getLogFilePath()
		assert.True(t, filepath.IsAbs(got), "expected absolute path, got %s", got)
		assert.Contains(t, filepath.ToSlash(got), ".local/state/resconf/resconf.log")
	})
}

// captureLogs points the global logger at a buffer for the duration of the
// test.
func captureLogs(t *testing.T, verbosity int) *bytes.Buffer {
	t.Helper()
	prevLogger, prevLevel := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})

	var buf bytes.Buffer
	setLevel(verbosity)
	log.Logger = zerolog.New(&buf)
	return &buf
}

func TestGetLogger(t *testing.T) {
	buf := captureLogs(t, 1)

	logger := GetLogger("resolver")
	logger.Info().Msg("test message")

	assert.Contains(t, buf.String(), `"component":"resolver"`)
	assert.Contains(t, buf.String(), "test message")
}

func TestWithFields(t *testing.T) {
	buf := captureLogs(t, 1)

	logger := WithFields(map[string]interface{}{
		"folder":  "values-en",
		"matches": 2,
	})
	logger.Info().Msg("resolved")

	out := buf.String()
	assert.Contains(t, out, `"folder":"values-en"`)
	assert.Contains(t, out, `"matches":2`)
}

func TestSetLevel_FiltersBelowWarn(t *testing.T) {
	buf := captureLogs(t, 0)

	log.Info().Msg("hidden")
	log.Warn().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestLogOperationStart(t *testing.T) {
	buf := captureLogs(t, 2)

	done := LogOperationStart(GetLogger("test"), "match")
	done()

	out := buf.String()
	assert.Contains(t, out, "Operation started")
	assert.Contains(t, out, "Operation completed")
	assert.Contains(t, out, `"operation":"match"`)
	assert.Contains(t, out, "duration")
}
