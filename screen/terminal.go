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
	"errors"
	"fmt"
	"os"

	gott "github.com/timburks/kilo/types"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// A Terminal holds the terminal settings that were in place before raw mode.
type Terminal struct {
	in       *os.File
	out      *os.File
	original *unix.Termios
}

// OpenTerminal puts in into raw mode.
// Reads from in return after at most 100ms, with or without input.
// The caller must call Restore on every exit path.
func OpenTerminal(in, out *os.File) (*Terminal, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return nil, errors.New("input is not a terminal")
	}
	original, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return nil, fmt.Errorf("tcgetattr: %w", err)
	}
	raw := *original
	// no break signal, no CR to NL, no parity check, no stripping, no flow control
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	// no output processing
	raw.Oflag &^= unix.OPOST
	// 8 bit chars
	raw.Cflag |= unix.CS8
	// no echo, no canonical mode, no extended input, no signals
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	// return each byte, or nothing after 100ms
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 1
	if err := unix.IoctlSetTermios(fd, ioctlWriteTermios, &raw); err != nil {
		return nil, fmt.Errorf("tcsetattr: %w", err)
	}
	return &Terminal{in: in, out: out, original: original}, nil
}

// Restore returns the terminal to the settings it had before OpenTerminal.
func (t *Terminal) Restore() error {
	if err := unix.IoctlSetTermios(int(t.in.Fd()), ioctlWriteTermios, t.original); err != nil {
		return fmt.Errorf("tcsetattr: %w", err)
	}
	return nil
}

// Clear erases the screen and homes the cursor.
func (t *Terminal) Clear() error {
	_, err := t.out.WriteString(clearScreen + cursorHome)
	return err
}

// QuerySize asks the operating system for the window size.
func (t *Terminal) QuerySize() (gott.Size, error) {
	cols, rows, err := term.GetSize(int(t.out.Fd()))
	if err != nil {
		return gott.Size{}, err
	}
	if rows == 0 || cols == 0 {
		return gott.Size{}, errors.New("window size unavailable")
	}
	return gott.Size{Rows: rows, Cols: cols}, nil
}

// Size returns the window size. When the operating system can't report it,
// the cursor is pushed to the bottom right corner and its position is read back.
func (t *Terminal) Size() (gott.Size, error) {
	if size, err := t.QuerySize(); err == nil {
		return size, nil
	}
	if _, err := t.out.WriteString(fmt.Sprintf(cursorDown+cursorRight, 999, 999)); err != nil {
		return gott.Size{}, fmt.Errorf("write: %w", err)
	}
	return t.cursorPosition()
}

func (t *Terminal) cursorPosition() (gott.Size, error) {
	if _, err := t.out.WriteString(queryCursor); err != nil {
		return gott.Size{}, fmt.Errorf("write: %w", err)
	}
	input := NewInput(t.in)
	response := make([]byte, 0, 32)
	for len(response) < 31 {
		c, ok, err := input.readByte()
		if err != nil {
			return gott.Size{}, fmt.Errorf("read: %w", err)
		}
		if !ok {
			break
		}
		if c == 'R' {
			break
		}
		response = append(response, c)
	}
	return parseCursorPosition(response)
}

// parseCursorPosition reads a cursor position report without its final 'R'.
func parseCursorPosition(response []byte) (gott.Size, error) {
	if len(response) < 2 || response[0] != '\x1b' || response[1] != '[' {
		return gott.Size{}, fmt.Errorf("unexpected cursor position response %q", response)
	}
	var size gott.Size
	if _, err := fmt.Sscanf(string(response[2:]), "%d;%d", &size.Rows, &size.Cols); err != nil {
		return gott.Size{}, fmt.Errorf("parse cursor position %q: %w", response, err)
	}
	if size.Rows <= 0 || size.Cols <= 0 {
		return gott.Size{}, fmt.Errorf("invalid cursor position %q", response)
	}
	return size, nil
}
