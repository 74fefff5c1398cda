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
	"io"
	"os"
	"syscall"

	gott "github.com/timburks/kilo/types"
)

// Input decodes the bytes read from a terminal into key events.
type Input struct {
	r   io.Reader
	buf [1]byte
}

func NewInput(r io.Reader) *Input {
	return &Input{r: r}
}

// readByte reads one byte. ok is false if the read timed out with no input.
func (in *Input) readByte() (c byte, ok bool, err error) {
	n, err := in.r.Read(in.buf[:])
	if n == 1 {
		return in.buf[0], true, nil
	}
	if err == nil || isTimeout(err) {
		return 0, false, nil
	}
	return 0, false, err
}

// A raw terminal with VMIN=0 reports an expired read timeout as a zero-length read,
// which *os.File turns into io.EOF.
func isTimeout(err error) bool {
	return errors.Is(err, io.EOF) ||
		errors.Is(err, os.ErrDeadlineExceeded) ||
		errors.Is(err, syscall.EAGAIN) ||
		errors.Is(err, syscall.EINTR)
}

// ReadEvent returns the next key event.
// If no byte arrives before the read timeout it returns an event of type EventNone;
// errors are returned only for failed reads.
func (in *Input) ReadEvent() (gott.Event, error) {
	c, ok, err := in.readByte()
	if err != nil {
		return gott.Event{}, err
	}
	if !ok {
		return gott.Event{Type: gott.EventNone}, nil
	}
	switch {
	case c == '\x1b':
		key, err := in.readEscape()
		if err != nil {
			return gott.Event{}, err
		}
		return gott.Event{Type: gott.EventKey, Key: key}, nil
	case c == 0x7f:
		return gott.Event{Type: gott.EventKey, Key: gott.KeyBackspace}, nil
	case c < 0x20:
		return gott.Event{Type: gott.EventKey, Key: gott.Key(c)}, nil
	default:
		return gott.Event{Type: gott.EventKey, Ch: c}, nil
	}
}

// readEscape decodes the bytes that follow an ESC.
// Anything that isn't a recognized sequence is reported as a bare ESC.
func (in *Input) readEscape() (gott.Key, error) {
	var seq [3]byte
	for i := 0; i < 2; i++ {
		c, ok, err := in.readByte()
		if err != nil {
			return gott.KeyNone, err
		}
		if !ok {
			return gott.KeyEsc, nil
		}
		seq[i] = c
	}
	switch seq[0] {
	case '[':
		if seq[1] >= '0' && seq[1] <= '9' {
			c, ok, err := in.readByte()
			if err != nil {
				return gott.KeyNone, err
			}
			if !ok {
				return gott.KeyEsc, nil
			}
			seq[2] = c
			if seq[2] == '~' {
				switch seq[1] {
				case '1', '7':
					return gott.KeyHome, nil
				case '3':
					return gott.KeyDelete, nil
				case '4', '8':
					return gott.KeyEnd, nil
				case '5':
					return gott.KeyPgup, nil
				case '6':
					return gott.KeyPgdn, nil
				}
			}
			return gott.KeyEsc, nil
		}
		switch seq[1] {
		case 'A':
			return gott.KeyArrowUp, nil
		case 'B':
			return gott.KeyArrowDown, nil
		case 'C':
			return gott.KeyArrowRight, nil
		case 'D':
			return gott.KeyArrowLeft, nil
		case 'H':
			return gott.KeyHome, nil
		case 'F':
			return gott.KeyEnd, nil
		}
	case 'O':
		switch seq[1] {
		case 'H':
			return gott.KeyHome, nil
		case 'F':
			return gott.KeyEnd, nil
		}
	}
	return gott.KeyEsc, nil
}
