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
	"bytes"
)

// DefaultTabStop is the number of columns a tab expands to.
const DefaultTabStop = 4

// A Buffer represents a file being edited.
// Every mutation bumps the dirty counter; it is zero only right after a load or a save.
type Buffer struct {
	rows     []*Row
	fileName string
	dirty    int
	tabStop  int
}

func NewBuffer(tabStop int) *Buffer {
	if tabStop < 1 {
		tabStop = DefaultTabStop
	}
	return &Buffer{rows: make([]*Row, 0), tabStop: tabStop}
}

func (b *Buffer) GetFileName() string {
	return b.fileName
}

func (b *Buffer) SetFileName(name string) {
	b.fileName = name
}

func (b *Buffer) GetRowCount() int {
	return len(b.rows)
}

// GetRow returns the row at index i, or nil past the end of the buffer.
func (b *Buffer) GetRow(i int) *Row {
	if i < 0 || i >= len(b.rows) {
		return nil
	}
	return b.rows[i]
}

func (b *Buffer) GetRowLength(i int) int {
	if row := b.GetRow(i); row != nil {
		return row.Length()
	}
	return 0
}

func (b *Buffer) Dirty() int {
	return b.dirty
}

func (b *Buffer) IsDirty() bool {
	return b.dirty != 0
}

func (b *Buffer) MarkClean() {
	b.dirty = 0
}

// InsertRow inserts a row containing text at index at.
// Indices outside [0, GetRowCount()] are ignored.
func (b *Buffer) InsertRow(at int, text []byte) {
	if at < 0 || at > len(b.rows) {
		return
	}
	b.rows = append(b.rows, nil)
	copy(b.rows[at+1:], b.rows[at:])
	b.rows[at] = NewRow(text, b.tabStop)
	b.dirty++
}

// DeleteRow removes the row at index at.
// Indices outside [0, GetRowCount()) are ignored.
func (b *Buffer) DeleteRow(at int) {
	if at < 0 || at >= len(b.rows) {
		return
	}
	b.rows = append(b.rows[0:at], b.rows[at+1:]...)
	b.dirty++
}

func (b *Buffer) InsertCharacter(row, col int, c byte) {
	r := b.GetRow(row)
	if r == nil {
		return
	}
	r.InsertChar(col, c)
	b.dirty++
}

func (b *Buffer) DeleteCharacter(row, col int) {
	r := b.GetRow(row)
	if r == nil {
		return
	}
	if _, ok := r.DeleteChar(col); ok {
		b.dirty++
	}
}

// AppendText adds text to the end of a row.
func (b *Buffer) AppendText(row int, text []byte) {
	r := b.GetRow(row)
	if r == nil || len(text) == 0 {
		return
	}
	r.Append(text)
	b.dirty++
}

// TruncateRow cuts a row at col and returns the removed text.
func (b *Buffer) TruncateRow(row, col int) []byte {
	r := b.GetRow(row)
	if r == nil {
		return nil
	}
	after := r.Truncate(col)
	if after != nil {
		b.dirty++
	}
	return after
}

// LoadBytes replaces the contents of the buffer with the lines in data.
// Trailing carriage returns and newlines are stripped from each line.
func (b *Buffer) LoadBytes(data []byte) {
	b.rows = make([]*Row, 0)
	if len(data) > 0 {
		lines := bytes.Split(data, []byte("\n"))
		if len(lines[len(lines)-1]) == 0 {
			lines = lines[0 : len(lines)-1]
		}
		for _, line := range lines {
			line = bytes.TrimRight(line, "\r\n")
			b.rows = append(b.rows, NewRow(line, b.tabStop))
		}
	}
	b.dirty = 0
}

// Bytes returns the buffer in its on-disk form: every row followed by one newline.
func (b *Buffer) Bytes() []byte {
	size := 0
	for _, row := range b.rows {
		size += row.Length() + 1
	}
	out := make([]byte, 0, size)
	for _, row := range b.rows {
		out = append(out, row.Text...)
		out = append(out, '\n')
	}
	return out
}

func (b *Buffer) TextAfter(row, col int) string {
	if r := b.GetRow(row); r != nil {
		return r.TextAfter(col)
	}
	return ""
}
