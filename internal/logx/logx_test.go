package logx

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, slog.LevelWarn))
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, true, slog.LevelWarn))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, true, slog.LevelWarn))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, false, slog.LevelInfo))
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, slog.LevelInfo)
	log.Debug("hidden")
	log.Info("shown", "rotations", 13)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
	assert.Contains(t, buf.String(), "rotations=13")
}

func TestDiscard(t *testing.T) {
	assert.False(t, Discard().Enabled(context.Background(), slog.LevelError))
}
