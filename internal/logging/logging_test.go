package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/shortpath/internal/logging"
)

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"trace": logging.LevelTrace,
		"DEBUG": logging.LevelDebug,
		"":      logging.LevelInfo,
		"Warn":  logging.LevelWarn,
		"ERROR": logging.LevelError,
	} {
		got, err := logging.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := logging.ParseLevel("LOUD")
	require.ErrorIs(t, err, logging.ErrInvalidLevel)
}

func TestNewTextFiltersAndNamesTrace(t *testing.T) {
	var buf bytes.Buffer
	l := logging.NewText(&buf, logging.LevelTrace)
	l.Log(context.Background(), logging.LevelTrace, "deep detail")
	assert.Contains(t, buf.String(), "level=TRACE")

	buf.Reset()
	l = logging.NewText(&buf, logging.LevelWarn)
	l.Info("hidden")
	l.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logging.NewJSON(&buf, logging.LevelInfo).Info("loaded", "rows", 3)
	assert.Contains(t, buf.String(), `"msg":"loaded"`)
	assert.Contains(t, buf.String(), `"rows":3`)
}
