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
	"bytes"
	"fmt"
	"io"

	"github.com/timburks/kilo/editor"
	gott "github.com/timburks/kilo/types"
)

const (
	Name    = "Kilo"
	Version = "0.0.1"
)

// Rows at the bottom of the screen used by the status and message bars.
const reservedRows = 2

// The Screen draws the state of an Editor.
// Each frame is built in memory and written with a single call.
type Screen struct {
	out  io.Writer
	size gott.Size // screen size
}

func NewScreen(out io.Writer, size gott.Size) *Screen {
	return &Screen{out: out, size: size}
}

func (s *Screen) GetSize() gott.Size {
	return s.size
}

func (s *Screen) SetSize(size gott.Size) {
	s.size = size
}

// TextSize is the part of the screen used for buffer text.
func (s *Screen) TextSize() gott.Size {
	return gott.Size{Rows: s.size.Rows - reservedRows, Cols: s.size.Cols}
}

// Render draws a frame for e with message on the message bar.
func (s *Screen) Render(e *editor.Editor, message string) error {
	_, err := s.out.Write(s.Compose(e, message))
	return err
}

// Compose scrolls the editor's window to keep the cursor visible and
// returns the bytes that draw the resulting frame.
func (s *Screen) Compose(e *editor.Editor, message string) []byte {
	e.SetSize(s.TextSize())
	e.Scroll()

	var frame bytes.Buffer
	frame.WriteString(hideCursor)
	frame.WriteString(cursorHome)
	s.renderRows(&frame, e)
	s.renderInfoBar(&frame, e)
	s.renderMessageBar(&frame, message)
	cursor := e.Window.ScreenCursor()
	fmt.Fprintf(&frame, cursorMove, cursor.Row+1, cursor.Col+1)
	frame.WriteString(showCursor)
	return frame.Bytes()
}

func (s *Screen) renderRows(frame *bytes.Buffer, e *editor.Editor) {
	b := e.Buffer
	w := e.Window
	size := w.GetSize()
	offset := w.GetOffset()
	for i := 0; i < size.Rows; i++ {
		row := b.GetRow(i + offset.Rows)
		if row == nil {
			if b.GetRowCount() == 0 && i == size.Rows/3 {
				frame.WriteString(welcome(size.Cols))
			} else {
				frame.WriteString("~")
			}
		} else {
			line := row.Render()
			if offset.Cols < len(line) {
				line = line[offset.Cols:]
			} else {
				line = nil
			}
			// truncate line to fit screen
			if len(line) > size.Cols {
				line = line[0:size.Cols]
			}
			frame.Write(line)
		}
		frame.WriteString(clearLine)
		frame.WriteString(lineSeparator)
	}
}

// welcome centers the banner in a row of width cols.
func welcome(cols int) string {
	text := fmt.Sprintf("%s editor - version %s", Name, Version)
	if len(text) > cols {
		text = text[0:cols]
	}
	padding := (cols - len(text)) / 2
	var line bytes.Buffer
	if padding > 0 {
		line.WriteString("~")
		padding--
	}
	for ; padding > 0; padding-- {
		line.WriteString(" ")
	}
	line.WriteString(text)
	return line.String()
}

// Draw the info bar in inverted colors below the text.
func (s *Screen) renderInfoBar(frame *bytes.Buffer, e *editor.Editor) {
	frame.WriteString(invertColor)
	frame.WriteString(computeInfoBarText(e, s.size.Cols))
	frame.WriteString(defaultColor)
	frame.WriteString(lineSeparator)
}

// Compute the text to display on the info bar.
func computeInfoBarText(e *editor.Editor, length int) string {
	b := e.Buffer
	name := b.GetFileName()
	if name == "" {
		name = "[No name]"
	}
	if len(name) > 20 {
		name = name[0:20]
	}
	modified := ""
	if b.IsDirty() {
		modified = "(modified)"
	}
	text := fmt.Sprintf("%s - %d lines %s", name, b.GetRowCount(), modified)
	finalText := fmt.Sprintf("%d/%d", e.GetCursor().Row+1, b.GetRowCount())
	if len(text) > length {
		text = text[0:length]
	}
	for len(text) < length {
		if length-len(text) == len(finalText) {
			text += finalText
			break
		}
		text += " "
	}
	return text
}

func (s *Screen) renderMessageBar(frame *bytes.Buffer, message string) {
	frame.WriteString(clearLine)
	if len(message) > s.size.Cols {
		message = message[0:s.size.Cols]
	}
	frame.WriteString(message)
}
