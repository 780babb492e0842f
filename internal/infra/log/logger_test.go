package logs

import (
	"log/slog"
	"testing"

	"suiteprop/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"Warning", slog.LevelWarn},
		{" error ", slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := parseLogLevel(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, level)
		})
	}

	_, err := parseLogLevel("verbose")
	assert.ErrorContains(t, err, "unknown log level")
}

func TestNew(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Log.Level = "debug"
	cfg.Env.Log.Pretty = true

	logger, err := New(Params{Config: cfg})
	require.NoError(t, err)
	assert.True(t, logger.Handler().Enabled(t.Context(), slog.LevelDebug))

	cfg.Env.Log.Level = "nope"
	_, err = New(Params{Config: cfg})
	assert.Error(t, err)
}
