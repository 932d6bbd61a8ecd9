package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func capture(l *Logger) (*bytes.Buffer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	l.info.SetOutput(out)
	l.warn.SetOutput(out)
	l.error.SetOutput(errOut)
	return out, errOut
}

func TestNew(t *testing.T) {
	l := New()
	assert.NotNil(t, l)
	assert.NotNil(t, l.info)
	assert.NotNil(t, l.error)
	assert.NotNil(t, l.warn)
}

func TestInfoWritesWithPrefix(t *testing.T) {
	l := New()
	out, errOut := capture(l)

	l.Info("slot %s moved to %s", "slot-1", "filmed")

	assert.Contains(t, out.String(), "[INFO]")
	assert.Contains(t, out.String(), "slot slot-1 moved to filmed")
	assert.Empty(t, errOut.String())
}

func TestErrorWritesToStderrStream(t *testing.T) {
	l := New()
	out, errOut := capture(l)

	l.Error("upload failed: %v", "timeout")

	assert.Contains(t, errOut.String(), "[ERROR]")
	assert.Contains(t, errOut.String(), "upload failed: timeout")
	assert.Empty(t, out.String())
}

func TestWarnWritesWithPrefix(t *testing.T) {
	l := New()
	out, _ := capture(l)

	l.Warn("%d slots still pending", 4)

	assert.Contains(t, out.String(), "[WARN]")
	assert.Contains(t, out.String(), "4 slots still pending")
}
