package logger

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"WARN":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		" error ": slog.LevelError,
	}

	for input, expected := range cases {
		level, err := ParseLevel(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, expected, level, "input %q", input)
	}

	_, err := ParseLevel("verbose")
	require.Error(t, err)
}
