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
package editor

import (
	"fmt"
	"os"

	gott "github.com/timburks/kilo/types"
)

// The Editor manages the editing of text in a Buffer.
// It owns the buffer and the window that views it; nothing else holds them.
type Editor struct {
	Buffer *Buffer // buffer being edited
	Window *Window // view of the buffer
}

func NewEditor(tabStop int) *Editor {
	e := &Editor{}
	e.Buffer = NewBuffer(tabStop)
	e.Window = NewWindow(e.Buffer)
	return e
}

func (e *Editor) GetCursor() gott.Point {
	return e.Window.GetCursor()
}

func (e *Editor) SetCursor(cursor gott.Point) {
	e.Window.SetCursor(cursor)
}

func (e *Editor) SetSize(s gott.Size) {
	e.Window.SetSize(s)
}

func (e *Editor) Scroll() {
	e.Window.Scroll()
}

// ReadFile replaces the buffer with the contents of path.
func (e *Editor) ReadFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	e.Buffer.LoadBytes(b)
	e.Buffer.SetFileName(path)
	e.Window.SetCursor(gott.Point{})
	e.Window.SetOffset(gott.Size{})
	return nil
}

// WriteFile saves the buffer to path and returns the number of bytes written.
// The buffer is marked clean only if the whole file was written.
func (e *Editor) WriteFile(path string) (int, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	b := e.Buffer.Bytes()
	if err := f.Truncate(int64(len(b))); err != nil {
		return 0, fmt.Errorf("truncate: %w", err)
	}
	n, err := f.Write(b)
	if err != nil {
		return n, err
	}
	e.Buffer.MarkClean()
	return n, nil
}

func (e *Editor) Bytes() []byte {
	return e.Buffer.Bytes()
}

// These editor primitives are combined into operations by the operations package.

func (e *Editor) InsertChar(c byte) {
	w := e.Window
	// if the cursor is on the line after the last row, add a row
	if w.cursor.Row == e.Buffer.GetRowCount() {
		e.Buffer.InsertRow(e.Buffer.GetRowCount(), nil)
	}
	e.Buffer.InsertCharacter(w.cursor.Row, w.cursor.Col, c)
	w.cursor.Col++
	w.KeepCursorInRow()
}

// InsertRow splits the current row at the cursor.
func (e *Editor) InsertRow() {
	w := e.Window
	if w.cursor.Col == 0 {
		e.Buffer.InsertRow(w.cursor.Row, nil)
	} else {
		after := e.Buffer.TruncateRow(w.cursor.Row, w.cursor.Col)
		e.Buffer.InsertRow(w.cursor.Row+1, after)
	}
	w.cursor.Row++
	w.cursor.Col = 0
	w.KeepCursorInRow()
}

// BackspaceChar deletes the character before the cursor, joining rows at column 0.
func (e *Editor) BackspaceChar() {
	w := e.Window
	if w.cursor.Row >= e.Buffer.GetRowCount() {
		return
	}
	if w.cursor.Row == 0 && w.cursor.Col == 0 {
		return
	}
	if w.cursor.Col > 0 {
		e.Buffer.DeleteCharacter(w.cursor.Row, w.cursor.Col-1)
		w.cursor.Col--
	} else {
		// remove the current row and join it with the previous one
		previous := w.cursor.Row - 1
		col := e.Buffer.GetRowLength(previous)
		e.Buffer.AppendText(previous, e.Buffer.GetRow(w.cursor.Row).Text)
		e.Buffer.DeleteRow(w.cursor.Row)
		w.cursor.Row = previous
		w.cursor.Col = col
	}
	w.KeepCursorInRow()
}

func (e *Editor) MoveCursor(direction int) {
	e.Window.MoveCursor(direction)
}

func (e *Editor) MoveToBeginningOfLine() {
	e.Window.MoveToBeginningOfLine()
}

func (e *Editor) MoveToEndOfLine() {
	e.Window.MoveToEndOfLine()
}

func (e *Editor) PageUp() {
	e.Window.PageUp()
}

func (e *Editor) PageDown() {
	e.Window.PageDown()
}
