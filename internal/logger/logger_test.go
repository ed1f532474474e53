package logger_test

import (
	"testing"

	"github.com/ngranander/backstage/internal/logger"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	t.Run("valid level", func(t *testing.T) {
		log := logger.NewLogger("debug")
		require.NotNil(t, log)
		require.True(t, log.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		log := logger.NewLogger("chatty")
		require.NotNil(t, log)
		require.False(t, log.Core().Enabled(zapcore.DebugLevel))
		require.True(t, log.Core().Enabled(zapcore.InfoLevel))
	})
}
