package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"INFO", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"verbose", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNew(t *testing.T) {
	jsonLogger, err := New("warn", "json")
	require.NoError(t, err)
	assert.False(t, jsonLogger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, jsonLogger.Core().Enabled(zapcore.WarnLevel))

	consoleLogger, err := New("debug", "console")
	require.NoError(t, err)
	assert.True(t, consoleLogger.Core().Enabled(zapcore.DebugLevel))
}
