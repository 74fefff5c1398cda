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

	gott "github.com/timburks/kilo/types"
)

// Results of advancing a search.
const (
	SearchContinue = 0
	SearchCommit   = 1
	SearchCancel   = 2
)

const noMatch = -1

// A Search is an incremental search session.
// It remembers where the cursor and view were when it started so that
// a cancelled search can put them back.
type Search struct {
	editor      *Editor
	savedCursor gott.Point
	savedOffset gott.Size
	lastMatch   int
	direction   int
}

func (e *Editor) StartSearch() *Search {
	return &Search{
		editor:      e,
		savedCursor: e.Window.GetCursor(),
		savedOffset: e.Window.GetOffset(),
		lastMatch:   noMatch,
		direction:   1,
	}
}

func (s *Search) LastMatch() int {
	return s.lastMatch
}

func (s *Search) reset() {
	s.lastMatch = noMatch
	s.direction = 1
}

// Advance handles one key of the search session for the current query.
// Enter commits, Esc cancels, arrows step to the next or previous match,
// and any other key starts over with the query as typed.
func (s *Search) Advance(query string, ev gott.Event) int {
	switch ev.Key {
	case gott.KeyEnter:
		s.reset()
		return SearchCommit
	case gott.KeyEsc:
		s.reset()
		return SearchCancel
	case gott.KeyArrowRight, gott.KeyArrowDown:
		s.direction = 1
	case gott.KeyArrowLeft, gott.KeyArrowUp:
		s.direction = -1
	default:
		s.reset()
	}
	if query != "" {
		s.find([]byte(query))
	}
	return SearchContinue
}

// Restore puts the cursor and view back where they were when the search started.
func (s *Search) Restore() {
	w := s.editor.Window
	w.SetCursor(s.savedCursor)
	w.SetOffset(s.savedOffset)
}

func (s *Search) find(query []byte) {
	b := s.editor.Buffer
	w := s.editor.Window
	rowCount := b.GetRowCount()
	current := s.lastMatch
	if current == noMatch {
		// a fresh query starts with the row the search began on
		s.direction = 1
		current = s.savedCursor.Row - 1
	}
	for i := 0; i < rowCount; i++ {
		current += s.direction
		if current < 0 {
			current = rowCount - 1
		} else if current >= rowCount {
			current = 0
		}
		row := b.GetRow(current)
		if index := bytes.Index(row.Render(), query); index != -1 {
			s.lastMatch = current
			col := row.ColumnForRender(index)
			if col < 0 {
				col = 0
			}
			w.SetCursor(gott.Point{Row: current, Col: col})
			// force the next scroll to bring the match to the top of the window
			w.offset.Rows = rowCount
			return
		}
	}
}
