package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := newAppLogger(&buf, "warning")

	l.Infof("hidden %d", 1)
	l.Warnf("shown %d", 2)
	l.Errorf("shown %d", 3)

	out := buf.String()
	assert.NotContains(t, out, "hidden 1")
	assert.Contains(t, out, "shown 2")
	assert.Contains(t, out, "shown 3")
}

func TestAppLogger_UnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := newAppLogger(&buf, "chatty")

	l.Debugf("debug line")
	l.Infof("info line")

	assert.NotContains(t, buf.String(), "debug line")
	assert.Contains(t, buf.String(), "info line")
}
