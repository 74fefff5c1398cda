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
	"testing"

	gott "github.com/timburks/kilo/types"
)

func typed(c byte) gott.Event {
	return gott.Event{Type: gott.EventKey, Ch: c}
}

func pressed(key gott.Key) gott.Event {
	return gott.Event{Type: gott.EventKey, Key: key}
}

func TestSearchWrapsForward(t *testing.T) {
	e := NewEditor(4)
	e.Buffer.LoadBytes([]byte("match\nx\ny\nz\n"))
	e.SetCursor(gott.Point{Row: 3, Col: 0})
	s := e.StartSearch()
	if action := s.Advance("match", typed('h')); action != SearchContinue {
		t.Errorf("Unexpected action: %d", action)
	}
	if cursor := e.GetCursor(); cursor != (gott.Point{Row: 0, Col: 0}) {
		t.Errorf("Unexpected cursor: %+v", cursor)
	}
	if s.LastMatch() != 0 {
		t.Errorf("Unexpected last match: %d", s.LastMatch())
	}
}

func TestSearchDirections(t *testing.T) {
	e := NewEditor(4)
	e.Buffer.LoadBytes([]byte("foo\nbar\nfoo bar\n"))
	s := e.StartSearch()
	s.Advance("foo", typed('o'))
	if s.LastMatch() != 0 {
		t.Errorf("Unexpected first match: %d", s.LastMatch())
	}
	steps := []struct {
		key   gott.Key
		match int
	}{
		{gott.KeyArrowDown, 2},
		{gott.KeyArrowRight, 0},
		{gott.KeyArrowLeft, 2},
		{gott.KeyArrowUp, 0},
		{gott.KeyArrowUp, 2},
	}
	for _, step := range steps {
		s.Advance("foo", pressed(step.key))
		if s.LastMatch() != step.match {
			t.Errorf("Unexpected match after key %d: %d", step.key, s.LastMatch())
		}
		if row := e.GetCursor().Row; row != step.match {
			t.Errorf("Unexpected cursor row after key %d: %d", step.key, row)
		}
	}
}

func TestSearchMatchColumnSkipsTabs(t *testing.T) {
	e := NewEditor(4)
	e.Buffer.LoadBytes([]byte("nothing\n\tx\tfoo\n"))
	s := e.StartSearch()
	s.Advance("foo", typed('o'))
	if cursor := e.GetCursor(); cursor != (gott.Point{Row: 1, Col: 3}) {
		t.Errorf("Unexpected cursor: %+v", cursor)
	}
	if offset := e.Window.GetOffset().Rows; offset != 2 {
		t.Errorf("Unexpected row offset before scrolling: %d", offset)
	}
	e.SetSize(gott.Size{Rows: 10, Cols: 80})
	e.Scroll()
	if offset := e.Window.GetOffset().Rows; offset != 1 {
		t.Errorf("Unexpected row offset after scrolling: %d", offset)
	}
}

func TestSearchWithoutMatch(t *testing.T) {
	e := NewEditor(4)
	e.Buffer.LoadBytes([]byte("alpha\nbeta\ngamma\n"))
	e.SetCursor(gott.Point{Row: 1, Col: 2})
	s := e.StartSearch()
	s.Advance("gamma", typed('a'))
	found := e.GetCursor()
	s.Advance("gammax", typed('x'))
	if cursor := e.GetCursor(); cursor != found {
		t.Errorf("Cursor moved without a match: %+v", cursor)
	}
	s.Advance("gammax", pressed(gott.KeyArrowDown))
	if cursor := e.GetCursor(); cursor != found {
		t.Errorf("Cursor moved without a match: %+v", cursor)
	}
}

func TestSearchCancelRestores(t *testing.T) {
	e := numberedEditor(100)
	e.SetSize(gott.Size{Rows: 10, Cols: 80})
	e.SetCursor(gott.Point{Row: 5, Col: 2})
	e.Scroll()
	s := e.StartSearch()
	s.Advance("line 77", typed('7'))
	if row := e.GetCursor().Row; row != 77 {
		t.Errorf("Unexpected match row: %d", row)
	}
	e.Scroll()
	if action := s.Advance("line 77", pressed(gott.KeyEsc)); action != SearchCancel {
		t.Errorf("Unexpected action: %d", action)
	}
	s.Restore()
	if cursor := e.GetCursor(); cursor != (gott.Point{Row: 5, Col: 2}) {
		t.Errorf("Unexpected cursor after cancel: %+v", cursor)
	}
	if offset := e.Window.GetOffset(); offset != (gott.Size{}) {
		t.Errorf("Unexpected offset after cancel: %+v", offset)
	}
}

func TestSearchCommitKeepsMatch(t *testing.T) {
	e := numberedEditor(100)
	s := e.StartSearch()
	s.Advance("line 42", typed('2'))
	if action := s.Advance("line 42", pressed(gott.KeyEnter)); action != SearchCommit {
		t.Errorf("Unexpected action: %d", action)
	}
	if cursor := e.GetCursor(); cursor != (gott.Point{Row: 42, Col: 0}) {
		t.Errorf("Unexpected cursor after commit: %+v", cursor)
	}
	if s.LastMatch() != noMatch {
		t.Errorf("Search state was not reset: %d", s.LastMatch())
	}
}

func TestSearchEmptyBuffer(t *testing.T) {
	e := NewEditor(4)
	s := e.StartSearch()
	s.Advance("x", typed('x'))
	if cursor := e.GetCursor(); cursor != (gott.Point{}) {
		t.Errorf("Unexpected cursor: %+v", cursor)
	}
}
