package log

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T, level LogLevel, fn func()) string {
	var buf bytes.Buffer
	oldOutput, oldLevel, oldNoColor := Output, Level, color.NoColor
	Output, Level, color.NoColor = &buf, level, true
	defer func() {
		Output, Level, color.NoColor = oldOutput, oldLevel, oldNoColor
	}()
	fn()
	return buf.String()
}

func TestLevels(t *testing.T) {
	emitAll := func() {
		Errorf("e%d", 1)
		Warnf("w%d", 2)
		Infof("i%d", 3)
		Debugf("d%d", 4)
	}
	assert.Equal(t, "", capture(t, LogLevel_None, emitAll))
	assert.Equal(t, "[ERROR] e1\n[WARNING] w2\n", capture(t, LogLevel_Warn, emitAll))
	assert.Equal(t, "[ERROR] e1\n[WARNING] w2\ni3\nd4\n", capture(t, LogLevel_Debug, emitAll))
}

func TestDebugIndent(t *testing.T) {
	out := capture(t, LogLevel_Debug, func() {
		Debugf("outer")
		Enter()
		Debugf("inner")
		Leave()
		Debugf("outer")
	})
	assert.Equal(t, "outer\n  inner\nouter\n", out)
}
