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

// A row of text in the editor.
// Text holds the bytes as loaded or typed; the render form is derived from it
// and is rebuilt by every change to Text.
type Row struct {
	Text    []byte
	render  []byte
	tabStop int
}

func NewRow(text []byte, tabStop int) *Row {
	if tabStop < 1 {
		tabStop = DefaultTabStop
	}
	r := &Row{tabStop: tabStop}
	r.setText(append([]byte{}, text...))
	return r
}

// We replace any tabs with tabStop spaces
func (r *Row) setText(text []byte) {
	r.Text = text
	tabs := 0
	for _, c := range text {
		if c == '\t' {
			tabs++
		}
	}
	render := make([]byte, 0, len(text)+tabs*(r.tabStop-1))
	for _, c := range text {
		if c == '\t' {
			for i := 0; i < r.tabStop; i++ {
				render = append(render, ' ')
			}
		} else {
			render = append(render, c)
		}
	}
	r.render = render
}

func (r *Row) DisplayText() string {
	return string(r.render)
}

func (r *Row) Render() []byte {
	return r.render
}

func (r *Row) Length() int {
	return len(r.Text)
}

// RenderColumn converts a column in Text to a column in the render form.
func (r *Row) RenderColumn(col int) int {
	if col > len(r.Text) {
		col = len(r.Text)
	}
	rcol := 0
	for i := 0; i < col; i++ {
		if r.Text[i] == '\t' {
			rcol += r.tabStop
		} else {
			rcol++
		}
	}
	return rcol
}

// ColumnForRender returns the index of the byte covering render column rcol.
// Columns beyond the end of the row map to the last byte.
func (r *Row) ColumnForRender(rcol int) int {
	current := 0
	for i, c := range r.Text {
		if c == '\t' {
			current += r.tabStop
		} else {
			current++
		}
		if current > rcol {
			return i
		}
	}
	return len(r.Text) - 1
}

func (r *Row) InsertChar(col int, c byte) {
	if col < 0 || col > len(r.Text) {
		col = len(r.Text)
	}
	line := make([]byte, 0, len(r.Text)+1)
	line = append(line, r.Text[0:col]...)
	line = append(line, c)
	line = append(line, r.Text[col:]...)
	r.setText(line)
}

// delete character at col and return the deleted character
func (r *Row) DeleteChar(col int) (byte, bool) {
	if col < 0 || col >= len(r.Text) {
		return 0, false
	}
	c := r.Text[col]
	line := make([]byte, 0, len(r.Text)-1)
	line = append(line, r.Text[0:col]...)
	line = append(line, r.Text[col+1:]...)
	r.setText(line)
	return c, true
}

// appends text to the end of the row
func (r *Row) Append(text []byte) {
	line := make([]byte, 0, len(r.Text)+len(text))
	line = append(line, r.Text...)
	line = append(line, text...)
	r.setText(line)
}

// truncates the row at col and returns the text that was removed
func (r *Row) Truncate(col int) []byte {
	if col < 0 {
		col = 0
	}
	if col >= len(r.Text) {
		return nil
	}
	after := append([]byte{}, r.Text[col:]...)
	r.setText(append([]byte{}, r.Text[0:col]...))
	return after
}

// returns the text after a specified column
func (r *Row) TextAfter(col int) string {
	if col >= 0 && col < len(r.Text) {
		return string(r.Text[col:])
	}
	return ""
}
