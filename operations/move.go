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

package operations

import (
	"github.com/timburks/kilo/editor"
	gott "github.com/timburks/kilo/types"
)

// MoveCursor moves the cursor one step in a direction.
type MoveCursor struct {
	Direction int
}

func (op *MoveCursor) Perform(e *editor.Editor) {
	e.MoveCursor(op.Direction)
}

type MoveToBeginningOfLine struct{}

func (op *MoveToBeginningOfLine) Perform(e *editor.Editor) {
	e.MoveToBeginningOfLine()
}

type MoveToEndOfLine struct{}

func (op *MoveToEndOfLine) Perform(e *editor.Editor) {
	e.MoveToEndOfLine()
}

type PageUp struct{}

func (op *PageUp) Perform(e *editor.Editor) {
	e.PageUp()
}

type PageDown struct{}

func (op *PageDown) Perform(e *editor.Editor) {
	e.PageDown()
}

// ForKey returns the cursor motion bound to a navigation key, or nil.
func ForKey(key gott.Key) Operation {
	switch key {
	case gott.KeyArrowUp:
		return &MoveCursor{Direction: gott.MoveUp}
	case gott.KeyArrowDown:
		return &MoveCursor{Direction: gott.MoveDown}
	case gott.KeyArrowLeft:
		return &MoveCursor{Direction: gott.MoveLeft}
	case gott.KeyArrowRight:
		return &MoveCursor{Direction: gott.MoveRight}
	case gott.KeyHome:
		return &MoveToBeginningOfLine{}
	case gott.KeyEnd:
		return &MoveToEndOfLine{}
	case gott.KeyPgup:
		return &PageUp{}
	case gott.KeyPgdn:
		return &PageDown{}
	}
	return nil
}
