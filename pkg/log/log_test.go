package log_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-recipedocs/pkg/log"
)

func TestCreateHandler(t *testing.T) {
	var buf bytes.Buffer

	h, err := log.CreateHandler(&buf, "info", "json")
	require.NoError(t, err)

	logger := slog.New(h)
	logger.Info("hello", "key", "value")
	assert.Contains(t, buf.String(), `"msg":"hello"`)

	logger.Debug("dropped")
	assert.NotContains(t, buf.String(), "dropped")
}

func TestCreateHandlerDefaults(t *testing.T) {
	var buf bytes.Buffer

	h, err := log.CreateHandler(&buf, "", "")
	require.NoError(t, err)
	require.NotNil(t, h)
}

func TestCreateHandlerErrors(t *testing.T) {
	var buf bytes.Buffer

	_, err := log.CreateHandler(&buf, "loud", "text")
	require.Error(t, err)

	_, err = log.CreateHandler(&buf, "info", "xml")
	require.Error(t, err)
}

func TestGetLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{in: "debug", want: slog.LevelDebug},
		{in: "info", want: slog.LevelInfo},
		{in: "WARN", want: slog.LevelWarn},
		{in: "warning", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
	}
	for _, tt := range tests {
		got, err := log.GetLevel(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}
