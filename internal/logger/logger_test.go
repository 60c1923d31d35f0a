package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelFromString(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"debug", DebugLevel},
		{"DEBUG", DebugLevel},
		{"info", InfoLevel},
		{"error", ErrorLevel},
		{"", InfoLevel},
		{"bogus", InfoLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelFromString(tt.input), "input %q", tt.input)
	}
}

func TestNewZapLogger(t *testing.T) {
	for _, development := range []bool{true, false} {
		logger, err := NewZapLogger(DebugLevel, development)
		require.NoError(t, err)
		require.NotNil(t, logger)
		_ = logger.Sync()
	}
}

func TestNewZapLoggerFromEnv(t *testing.T) {
	t.Setenv("LINCTL_LOG_LEVEL", "debug")
	t.Setenv("LINCTL_LOG_FORMAT", "json")
	t.Setenv("LINCTL_LOG_CALLER", "true")

	logger, err := NewZapLoggerFromEnv()
	require.NoError(t, err)
	require.NotNil(t, logger)
}

func TestTestLoggerIsSilentAndChainable(t *testing.T) {
	log := NewTestLogger()

	// A nil-backed logger must absorb every call without panicking.
	log.Debug("debug")
	log.Infof("info %d", 1)
	log.Warn("warn")
	log.Errorf("error %s", "x")
	log.WithField("k", "v").Debug("chained")
	log.WithFields(map[string]interface{}{"a": 1}).Info("chained")
	log.Sync()
}

func TestGlobalLogger(t *testing.T) {
	original := GetLogger()
	defer SetLogger(original)

	replacement := NewTestLogger()
	SetLogger(replacement)
	assert.Same(t, replacement, GetLogger())
}

func TestWithFieldsReturnsNewLogger(t *testing.T) {
	zapLogger, err := NewZapLogger(ErrorLevel, false)
	require.NoError(t, err)
	base := &Logger{zap: zapLogger}

	derived := base.WithFields(map[string]interface{}{"field": "team", "value": "ENG"})
	require.NotNil(t, derived)
	assert.NotSame(t, base, derived)
}
