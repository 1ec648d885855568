package logger_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/heph2/foxtail/internal/adapters/logger"
	"github.com/heph2/foxtail/internal/core/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
)

func newTestLogger(t *testing.T) (*bytes.Buffer, ports.Logger) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	l := logger.New()
	l.SetOutput(buf)
	return buf, l
}

func TestLogger_Info(t *testing.T) {
	buf, l := newTestLogger(t)

	l.Info("reload complete")

	assert.Contains(t, buf.String(), "reload complete")
}

func TestLogger_Warn(t *testing.T) {
	buf, l := newTestLogger(t)

	l.Warn("no cache files matched")

	assert.Contains(t, buf.String(), "! no cache files matched")
}

func TestLogger_Error_NilIsNoop(t *testing.T) {
	buf, l := newTestLogger(t)

	l.Error(nil)

	assert.Empty(t, buf.String())
}

func TestLogger_Error_ChainRendering(t *testing.T) {
	buf, l := newTestLogger(t)

	err := zerr.Wrap(zerr.Wrap(errors.New("permission denied"), "failed to touch marker file"), "failed to load configuration")
	l.Error(err)

	out := buf.String()
	require.Contains(t, out, "Error: failed to load configuration")
	assert.Contains(t, out, "Caused by:")
	assert.Contains(t, out, "→ failed to touch marker file")
	assert.Contains(t, out, "→ permission denied")
}

func TestLogger_Error_PlainError(t *testing.T) {
	buf, l := newTestLogger(t)

	l.Error(errors.New("boom"))

	assert.Contains(t, buf.String(), "Error: boom")
}

func TestLogger_Error_JSONMode(t *testing.T) {
	buf, l := newTestLogger(t)
	l.SetJSON(true)

	l.Error(errors.New("boom"))

	out := buf.String()
	assert.Contains(t, out, `"operation failed"`)
	assert.Contains(t, out, `"boom"`)
}
