package logger

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T, verboseOn bool) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(verboseOn)
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})
	return &buf
}

func TestSetVerbose(t *testing.T) {
	capture(t, false)
	assert.False(t, IsVerbose())

	SetVerbose(true)
	assert.True(t, IsVerbose())

	SetVerbose(false)
	assert.False(t, IsVerbose())
}

func TestLevels_WhenVerbose(t *testing.T) {
	tests := []struct {
		name string
		log  func(string, ...any)
		want string
	}{
		{"debug", Debug, "[DEBUG] grid 1000 samples\n"},
		{"info", Info, "[INFO] grid 1000 samples\n"},
		{"warn", Warn, "[WARN] grid 1000 samples\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := capture(t, true)
			tt.log("grid %d samples", 1000)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestLevels_WhenNotVerbose(t *testing.T) {
	buf := capture(t, false)
	Debug("a")
	Info("b")
	Warn("c")
	Section("d")
	Timed("e")()
	assert.Zero(t, buf.Len())
}

func TestSection(t *testing.T) {
	buf := capture(t, true)
	Section("Size Distribution")
	assert.Equal(t, "\n=== Size Distribution ===\n", buf.String())
}

func TestFormatVerbsInArgsAreNotExpanded(t *testing.T) {
	buf := capture(t, true)
	Info("label %s", "100%d")
	assert.Equal(t, "[INFO] label 100%d\n", buf.String())
}

func TestTimed(t *testing.T) {
	buf := capture(t, true)
	done := Timed("warren plots")
	done()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2)
	assert.Equal(t, "[DEBUG] warren plots: started", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "[DEBUG] warren plots: done in "))
}
