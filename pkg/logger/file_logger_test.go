package logger_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Nazarious-ucu/weather-sms-webhook/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFileLogger_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "http.log")

	l, err := logger.NewFileLogger(path)
	require.NoError(t, err)

	l.Info("hello")
	_ = l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
}

func TestNewLogger_ConsoleOnly(t *testing.T) {
	l, err := logger.NewLogger("", "test")
	require.NoError(t, err)
	l.Debug().Msg("console only")
}
