//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package screen

import (
	"os"
	"testing"

	"github.com/creack/pty"
	gott "github.com/timburks/kilo/types"
	"golang.org/x/sys/unix"
)

func TestParseCursorPosition(t *testing.T) {
	tests := []struct {
		response string
		size     gott.Size
		ok       bool
	}{
		{"\x1b[24;80", gott.Size{Rows: 24, Cols: 80}, true},
		{"\x1b[1;1", gott.Size{Rows: 1, Cols: 1}, true},
		{"\x1b[999;132", gott.Size{Rows: 999, Cols: 132}, true},
		{"", gott.Size{}, false},
		{"\x1b", gott.Size{}, false},
		{"24;80", gott.Size{}, false},
		{"\x1b[24", gott.Size{}, false},
		{"\x1b[x;y", gott.Size{}, false},
		{"\x1b[0;80", gott.Size{}, false},
	}
	for _, test := range tests {
		size, err := parseCursorPosition([]byte(test.response))
		if test.ok && err != nil {
			t.Errorf("Unexpected error for %q: %+v", test.response, err)
		}
		if !test.ok && err == nil {
			t.Errorf("Expected an error for %q", test.response)
		}
		if size != test.size {
			t.Errorf("Unexpected size for %q: %+v", test.response, size)
		}
	}
}

func openPty(t *testing.T) (*os.File, *os.File) {
	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("No pseudo-terminal available: %+v", err)
	}
	t.Cleanup(func() {
		tty.Close()
		ptmx.Close()
	})
	return ptmx, tty
}

func TestRawMode(t *testing.T) {
	_, tty := openPty(t)
	before, err := unix.IoctlGetTermios(int(tty.Fd()), ioctlReadTermios)
	if err != nil {
		t.Fatalf("Unexpected error: %+v", err)
	}
	terminal, err := OpenTerminal(tty, tty)
	if err != nil {
		t.Fatalf("Unexpected error: %+v", err)
	}
	raw, err := unix.IoctlGetTermios(int(tty.Fd()), ioctlReadTermios)
	if err != nil {
		t.Fatalf("Unexpected error: %+v", err)
	}
	if raw.Lflag&(unix.ECHO|unix.ICANON|unix.ISIG|unix.IEXTEN) != 0 {
		t.Errorf("Unexpected local flags in raw mode: %x", raw.Lflag)
	}
	if raw.Iflag&(unix.ICRNL|unix.IXON) != 0 {
		t.Errorf("Unexpected input flags in raw mode: %x", raw.Iflag)
	}
	if raw.Oflag&unix.OPOST != 0 {
		t.Errorf("Unexpected output flags in raw mode: %x", raw.Oflag)
	}
	if raw.Cc[unix.VMIN] != 0 || raw.Cc[unix.VTIME] != 1 {
		t.Errorf("Unexpected read timing: VMIN=%d VTIME=%d", raw.Cc[unix.VMIN], raw.Cc[unix.VTIME])
	}
	if err := terminal.Restore(); err != nil {
		t.Fatalf("Unexpected error: %+v", err)
	}
	after, err := unix.IoctlGetTermios(int(tty.Fd()), ioctlReadTermios)
	if err != nil {
		t.Fatalf("Unexpected error: %+v", err)
	}
	if after.Lflag != before.Lflag || after.Iflag != before.Iflag || after.Oflag != before.Oflag {
		t.Errorf("Terminal settings were not restored: %+v", after)
	}
}

func TestRawModeReadTimesOut(t *testing.T) {
	ptmx, tty := openPty(t)
	terminal, err := OpenTerminal(tty, tty)
	if err != nil {
		t.Fatalf("Unexpected error: %+v", err)
	}
	defer terminal.Restore()

	input := NewInput(tty)
	event, err := input.ReadEvent()
	if err != nil {
		t.Fatalf("Unexpected error: %+v", err)
	}
	if event.Type != gott.EventNone {
		t.Errorf("Unexpected event with no input: %+v", event)
	}
	if _, err := ptmx.Write([]byte("\x1b[A")); err != nil {
		t.Fatalf("Unexpected error: %+v", err)
	}
	event, err = input.ReadEvent()
	if err != nil {
		t.Fatalf("Unexpected error: %+v", err)
	}
	if event.Key != gott.KeyArrowUp {
		t.Errorf("Unexpected event: %+v", event)
	}
}

func TestQuerySize(t *testing.T) {
	_, tty := openPty(t)
	if err := pty.Setsize(tty, &pty.Winsize{Rows: 30, Cols: 100}); err != nil {
		t.Fatalf("Unexpected error: %+v", err)
	}
	terminal, err := OpenTerminal(tty, tty)
	if err != nil {
		t.Fatalf("Unexpected error: %+v", err)
	}
	defer terminal.Restore()
	size, err := terminal.QuerySize()
	if err != nil {
		t.Fatalf("Unexpected error: %+v", err)
	}
	if size != (gott.Size{Rows: 30, Cols: 100}) {
		t.Errorf("Unexpected size: %+v", size)
	}
	if size, err = terminal.Size(); err != nil || size.Rows != 30 {
		t.Errorf("Unexpected size: %+v %+v", size, err)
	}
}

func TestSizeFallsBackToCursorPosition(t *testing.T) {
	ptmx, tty := openPty(t)
	if err := pty.Setsize(tty, &pty.Winsize{}); err != nil {
		t.Fatalf("Unexpected error: %+v", err)
	}
	terminal, err := OpenTerminal(tty, tty)
	if err != nil {
		t.Fatalf("Unexpected error: %+v", err)
	}
	defer terminal.Restore()

	// answer the cursor position query the way a terminal would
	go func() {
		buf := make([]byte, 64)
		var seen []byte
		for {
			n, err := ptmx.Read(buf)
			if err != nil {
				return
			}
			seen = append(seen, buf[:n]...)
			if len(seen) >= len(queryCursor) && string(seen[len(seen)-len(queryCursor):]) == queryCursor {
				ptmx.Write([]byte("\x1b[40;120R"))
				return
			}
		}
	}()
	size, err := terminal.Size()
	if err != nil {
		t.Fatalf("Unexpected error: %+v", err)
	}
	if size != (gott.Size{Rows: 40, Cols: 120}) {
		t.Errorf("Unexpected size: %+v", size)
	}
}

func TestOpenTerminalRequiresTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "input")
	if err != nil {
		t.Fatalf("Unexpected error: %+v", err)
	}
	defer f.Close()
	if _, err := OpenTerminal(f, f); err == nil {
		t.Errorf("Expected an error for a regular file")
	}
}
