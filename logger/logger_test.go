package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestDefaultIsUsableBeforeSet(t *testing.T) {
	assert.NotPanics(t, func() {
		L().Info("before default", "k", 1)
	})
}

func TestSetDefault(t *testing.T) {
	l, err := New("test")
	require.NoError(t, err)

	SetDefault(l)
	t.Cleanup(func() { std.Store(nil) })

	assert.Same(t, l, L())
	assert.NotNil(t, L().With("component", "feed"))
}

func TestModeLevels(t *testing.T) {
	tests := []struct {
		mode    string
		enabled zapcore.Level
		muted   zapcore.Level
	}{
		{"prod", zapcore.InfoLevel, zapcore.DebugLevel},
		{"PRODUCTION", zapcore.InfoLevel, zapcore.DebugLevel},
		{"test", zapcore.WarnLevel, zapcore.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			l, err := New(tt.mode)
			require.NoError(t, err)
			assert.True(t, l.Enabled(tt.enabled))
			assert.False(t, l.Enabled(tt.muted))
		})
	}

	dev, err := New("dev")
	require.NoError(t, err)
	assert.True(t, dev.Enabled(zapcore.DebugLevel))
	assert.False(t, Nop().Enabled(zapcore.ErrorLevel))
}
