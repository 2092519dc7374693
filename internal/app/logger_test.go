package app

import (
	"log/slog"
	"testing"

	"github.com/specialistvlad/pkgplan/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	testCases := []struct {
		in        string
		expected  slog.Level
		expectErr bool
	}{
		{in: "", expected: slog.LevelInfo},
		{in: "debug", expected: slog.LevelDebug},
		{in: "WARN", expected: slog.LevelWarn},
		{in: "error", expected: slog.LevelError},
		{in: "loud", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseLogLevel(tc.in)
			if tc.expectErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "debug, info, warn, error")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestLogLevels_AllParse(t *testing.T) {
	for _, name := range LogLevels {
		_, err := ParseLogLevel(name)
		assert.NoError(t, err, name)
	}
	assert.Len(t, logLevelValues, len(LogLevels))
}

func TestNewLogger_UnknownLevelIsReported(t *testing.T) {
	logs := &testutil.SafeBuffer{}
	logger := newLogger("loud", "text", logs)

	logger.Debug("hidden")
	logger.Info("shown")

	assert.Contains(t, logs.String(), "Falling back to info logging.")
	assert.Contains(t, logs.String(), `unknown log level \"loud\"`)
	assert.NotContains(t, logs.String(), "hidden")
	assert.Contains(t, logs.String(), "shown")
}

func TestNewLogger_JSONFormat(t *testing.T) {
	logs := &testutil.SafeBuffer{}
	newLogger("info", "JSON", logs).Info("hello")
	assert.Contains(t, logs.String(), `"msg":"hello"`)
}

func TestNewConfig_NormalizesLogging(t *testing.T) {
	cfg, err := NewConfig(Config{DescriptorPath: "pkg", LogLevel: "DEBUG", LogFormat: "Json"})
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)

	cfg, err = NewConfig(Config{DescriptorPath: "pkg"})
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)

	_, err = NewConfig(Config{DescriptorPath: "pkg", LogLevel: "loud"})
	assert.Error(t, err)
	_, err = NewConfig(Config{DescriptorPath: "pkg", LogFormat: "xml"})
	assert.Error(t, err)
}
