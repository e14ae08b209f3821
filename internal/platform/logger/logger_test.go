package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zapcore.WarnLevel, ParseLevel("warning"))
	assert.Equal(t, zapcore.ErrorLevel, ParseLevel(" error "))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel(""))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel("nope"))
}

func TestZapLogger_WithMergesFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewFromZap(zap.New(core)).With(map[string]any{"request_id": "r-1"})

	l.Error("store failed", map[string]any{"err": errors.New("boom"), "pet_id": "p-1", "": "skip"})

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "store failed", entry.Message)
	ctx := entry.ContextMap()
	assert.Equal(t, "r-1", ctx["request_id"])
	assert.Equal(t, "p-1", ctx["pet_id"])
	assert.Equal(t, "boom", ctx["err"])
	_, hasEmpty := ctx[""]
	assert.False(t, hasEmpty)
}
