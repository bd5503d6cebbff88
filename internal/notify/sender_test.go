// Package notify_test tests the osascript sender against a stand-in program.
// Related: internal/notify/sender.go
// Tags: notify, sender, osascript, script-format
package notify

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/ariel-frischer/notify/internal/sound"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProgram writes a shell script that records its arguments, one per line,
// into argsFile and exits with status.
func fakeProgram(t *testing.T, status int) (program, argsFile string) {
	t.Helper()
	dir := t.TempDir()
	argsFile = filepath.Join(dir, "args")
	program = filepath.Join(dir, "osascript")
	script := fmt.Sprintf("#!/bin/sh\nprintf '%%s\\n' \"$@\" > '%s'\nexit %d\n", argsFile, status)
	require.NoError(t, os.WriteFile(program, []byte(script), 0o755))
	return program, argsFile
}

func TestScript(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		n    Notification
		want string
	}{
		"fallback title": {
			n:    NewNotification("", "hi", sound.Pop),
			want: `display notification "hi" with title "from notify" sound name "Pop"`,
		},
		"failure title": {
			n:    NewNotification("Run Failed", "command: false exit 1", sound.Basso),
			want: `display notification "command: false exit 1" with title "Run Failed" sound name "Basso"`,
		},
		// Quotes are embedded unescaped; the resulting script is malformed.
		"quotes are not escaped": {
			n:    NewNotification("", `say "hi"`, sound.Blow),
			want: `display notification "say "hi"" with title "from notify" sound name "Blow"`,
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Script(tt.n))
		})
	}
}

func TestNewSender_DefaultProgram(t *testing.T) {
	t.Parallel()

	s, ok := NewSender("", nil).(*osascriptSender)
	require.True(t, ok)
	assert.Equal(t, DefaultProgram, s.program)
}

func TestOsascriptSender_Send(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Skipping test on Windows")
	}
	// Not parallel: exec of a freshly written script can hit ETXTBSY.

	program, argsFile := fakeProgram(t, 0)
	sender := NewSender(program, nil)

	err := sender.Send(NewNotification("", "hi", sound.Pop))
	require.NoError(t, err)

	got, err := os.ReadFile(argsFile)
	require.NoError(t, err)
	assert.Equal(t, "-e\n"+`display notification "hi" with title "from notify" sound name "Pop"`+"\n", string(got))
}

func TestOsascriptSender_NonZeroExitIsNotAnError(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("Skipping test on Windows")
	}
	// Not parallel: exec of a freshly written script can hit ETXTBSY.

	program, _ := fakeProgram(t, 1)
	sender := NewSender(program, nil)

	assert.NoError(t, sender.Send(NewNotification("", "hi", sound.Pop)))
}

func TestOsascriptSender_MissingProgram(t *testing.T) {
	t.Parallel()

	program := filepath.Join(t.TempDir(), "missing-osascript")
	sender := NewSender(program, nil)

	err := sender.Send(NewNotification("", "hi", sound.Pop))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing-osascript")
}
