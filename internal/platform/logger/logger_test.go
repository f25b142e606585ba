package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, Debug, ParseLevel("DEBUG"))
	assert.Equal(t, Info, ParseLevel(""))
	assert.Equal(t, Warn, ParseLevel("warning"))
	assert.Equal(t, Error, ParseLevel(" error "))
	assert.Equal(t, Info, ParseLevel("verbose"))
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat("JSON"))
	assert.Equal(t, FormatText, ParseFormat(""))
	assert.Equal(t, FormatText, ParseFormat("console"))
}

func TestZapLogger_WithMergesFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := FromZap(zap.New(core)).With(map[string]any{"component": "chat"})

	l.Info("reply sent", map[string]any{"session_id": "s-1", "": "ignored"})
	l.Error("reply failed", map[string]any{"error": errors.New("boom")})

	entries := logs.All()
	require.Len(t, entries, 2)

	first := entries[0].ContextMap()
	assert.Equal(t, "chat", first["component"])
	assert.Equal(t, "s-1", first["session_id"])
	assert.NotContains(t, first, "")

	second := entries[1].ContextMap()
	assert.Equal(t, "boom", second["error"])
}

func TestNewNop_DoesNotPanic(t *testing.T) {
	l := NewNop()
	l.Debug("x", nil)
	l.With(nil).Warn("y", map[string]any{"k": 1})
}
