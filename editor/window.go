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
	gott "github.com/timburks/kilo/types"
)

// A Window is the visible part of a buffer.
// The cursor is kept in buffer coordinates; the offset is in render
// coordinates because tabs make the two column counts diverge.
type Window struct {
	buffer    *Buffer
	cursor    gott.Point // cursor position
	renderCol int        // cursor column in the render form of its row
	offset    gott.Size  // display offset
	size      gott.Size  // size of the text area
}

func NewWindow(b *Buffer) *Window {
	return &Window{buffer: b}
}

func (w *Window) GetCursor() gott.Point {
	return w.cursor
}

func (w *Window) SetCursor(cursor gott.Point) {
	w.cursor = cursor
	w.KeepCursorInRow()
}

func (w *Window) GetOffset() gott.Size {
	return w.offset
}

func (w *Window) SetOffset(offset gott.Size) {
	w.offset = offset
}

func (w *Window) GetSize() gott.Size {
	return w.size
}

func (w *Window) SetSize(size gott.Size) {
	if size.Rows < 1 {
		size.Rows = 1
	}
	if size.Cols < 1 {
		size.Cols = 1
	}
	w.size = size
}

func (w *Window) GetRenderCol() int {
	return w.renderCol
}

// KeepCursorInRow clamps the cursor to the buffer.
// The row may equal the row count (the virtual line after the last row)
// and the column may equal the row length.
func (w *Window) KeepCursorInRow() {
	rowCount := w.buffer.GetRowCount()
	if w.cursor.Row > rowCount {
		w.cursor.Row = rowCount
	}
	if w.cursor.Row < 0 {
		w.cursor.Row = 0
	}
	rowLength := w.buffer.GetRowLength(w.cursor.Row)
	if w.cursor.Col > rowLength {
		w.cursor.Col = rowLength
	}
	if w.cursor.Col < 0 {
		w.cursor.Col = 0
	}
}

// Scroll recomputes the display offset to keep the cursor onscreen.
// The window moves only as far as needed to include the cursor.
func (w *Window) Scroll() {
	w.renderCol = 0
	if row := w.buffer.GetRow(w.cursor.Row); row != nil {
		w.renderCol = row.RenderColumn(w.cursor.Col)
	}
	if w.cursor.Row < w.offset.Rows {
		// scroll up
		w.offset.Rows = w.cursor.Row
	}
	if w.cursor.Row >= w.offset.Rows+w.size.Rows {
		// scroll down
		w.offset.Rows = w.cursor.Row - w.size.Rows + 1
	}
	if w.renderCol < w.offset.Cols {
		// scroll left
		w.offset.Cols = w.renderCol
	}
	if w.renderCol >= w.offset.Cols+w.size.Cols {
		// scroll right
		w.offset.Cols = w.renderCol - w.size.Cols + 1
	}
}

// ScreenCursor returns the zero-based screen position of the cursor.
// Call it after Scroll.
func (w *Window) ScreenCursor() gott.Point {
	return gott.Point{
		Row: w.cursor.Row - w.offset.Rows,
		Col: w.renderCol - w.offset.Cols,
	}
}

func (w *Window) MoveCursor(direction int) {
	b := w.buffer
	row := b.GetRow(w.cursor.Row)
	switch direction {
	case gott.MoveLeft:
		if w.cursor.Col > 0 {
			w.cursor.Col--
		} else if w.cursor.Row > 0 {
			w.cursor.Row--
			w.cursor.Col = b.GetRowLength(w.cursor.Row)
		}
	case gott.MoveRight:
		if row != nil && w.cursor.Col < row.Length() {
			w.cursor.Col++
		} else if row != nil && w.cursor.Col == row.Length() {
			w.cursor.Row++
			w.cursor.Col = 0
		}
	case gott.MoveUp:
		if w.cursor.Row > 0 {
			w.cursor.Row--
		}
	case gott.MoveDown:
		if w.cursor.Row < b.GetRowCount() {
			w.cursor.Row++
		}
	}
	// don't go past the end of the current line
	w.KeepCursorInRow()
}

func (w *Window) MoveToBeginningOfLine() {
	w.cursor.Col = 0
}

func (w *Window) MoveToEndOfLine() {
	w.cursor.Col = w.buffer.GetRowLength(w.cursor.Row)
}

func (w *Window) PageUp() {
	// move to the top of the screen
	w.cursor.Row = w.offset.Rows
	// move up by a page
	for i := 0; i < w.size.Rows; i++ {
		w.MoveCursor(gott.MoveUp)
	}
}

func (w *Window) PageDown() {
	// move to the bottom of the screen
	w.cursor.Row = w.offset.Rows + w.size.Rows - 1
	if w.cursor.Row > w.buffer.GetRowCount() {
		w.cursor.Row = w.buffer.GetRowCount()
	}
	// move down by a page
	for i := 0; i < w.size.Rows; i++ {
		w.MoveCursor(gott.MoveDown)
	}
}
