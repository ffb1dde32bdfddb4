package utils

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	original := logger.Out
	logger.SetOutput(buf)
	t.Cleanup(func() { logger.SetOutput(original) })
	return buf
}

func TestSetVerbose_And_IsVerbose(t *testing.T) {
	// save original state and restore after test
	original := IsVerbose()
	defer SetVerbose(original)

	SetVerbose(true)
	assert.True(t, IsVerbose())
	assert.Equal(t, logrus.DebugLevel, Logger().GetLevel())

	SetVerbose(false)
	assert.False(t, IsVerbose())
	assert.Equal(t, logrus.InfoLevel, Logger().GetLevel())
}

func TestVerbose_SuppressedWhenDisabled(t *testing.T) {
	original := IsVerbose()
	defer SetVerbose(original)
	buf := captureOutput(t)

	SetVerbose(false)
	Verbose("test message %s %d", "arg", 42)

	assert.Empty(t, buf.String())
}

func TestVerbose_WrittenWhenEnabled(t *testing.T) {
	original := IsVerbose()
	defer SetVerbose(original)
	buf := captureOutput(t)

	SetVerbose(true)
	Verbose("test message %s %d", "arg", 42)

	assert.Contains(t, buf.String(), "test message arg 42")
	assert.Contains(t, buf.String(), "level=debug")
}

func TestInfo_AlwaysWritten(t *testing.T) {
	buf := captureOutput(t)

	Info("test info %s", "message")

	assert.Contains(t, buf.String(), "test info message")
	assert.Contains(t, buf.String(), "level=info")
}

func TestWarn_AlwaysWritten(t *testing.T) {
	buf := captureOutput(t)

	Warn("careful %d", 1)

	assert.Contains(t, buf.String(), "careful 1")
	assert.Contains(t, buf.String(), "level=warning")
}
