package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, Debug, ParseLevel(" DEBUG "))
	assert.Equal(t, Warn, ParseLevel("warning"))
	assert.Equal(t, Info, ParseLevel(""))
	assert.Equal(t, Info, ParseLevel("nope"))
	assert.Equal(t, "error", Error.String())
}

func TestZapLogger_JSONFieldsAndLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithCore(Options{Level: Info, Format: FormatJSON, App: "dog-years"}, zapcore.AddSync(&buf))

	l.Debug("hidden", nil)
	l.With(map[string]any{"request_id": "r-1"}).Info("calculated", map[string]any{
		"size": "small",
		"err":  errors.New("boom"),
		"":     "ignored",
	})

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "calculated", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "dog-years", entry["app"])
	assert.Equal(t, "r-1", entry["request_id"])
	assert.Equal(t, "small", entry["size"])
	assert.Equal(t, "boom", entry["err"])
	assert.NotContains(t, entry, "")
}

func TestFromContext_DefaultsToNop(t *testing.T) {
	l := FromContext(context.Background())
	require.NotNil(t, l)
	l.Info("nothing happens", nil)

	custom := Nop().With(map[string]any{"a": 1})
	ctx := WithContext(context.Background(), custom)
	assert.Same(t, custom, FromContext(ctx))
}
