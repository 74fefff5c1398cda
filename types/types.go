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
package types

// Editor modes
const (
	ModeEdit   = 0
	ModeSearch = 1
	ModePrompt = 2
	ModeQuit   = 9999
)

// Move directions
const (
	MoveUp    = 0
	MoveDown  = 1
	MoveRight = 2
	MoveLeft  = 3
)

// Event types
const (
	EventNone = 0 // the read timed out with no input
	EventKey  = 1
)

type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

// A Key identifies a control byte or a named special key.
// Control keys keep their byte value; special keys live above the byte range.
type Key int

const (
	KeyNone      Key = 0
	KeyCtrlA     Key = 0x01
	KeyCtrlB     Key = 0x02
	KeyCtrlC     Key = 0x03
	KeyCtrlD     Key = 0x04
	KeyCtrlE     Key = 0x05
	KeyCtrlF     Key = 0x06
	KeyCtrlG     Key = 0x07
	KeyCtrlH     Key = 0x08
	KeyTab       Key = 0x09
	KeyCtrlJ     Key = 0x0a
	KeyCtrlK     Key = 0x0b
	KeyCtrlL     Key = 0x0c
	KeyEnter     Key = 0x0d
	KeyCtrlN     Key = 0x0e
	KeyCtrlO     Key = 0x0f
	KeyCtrlP     Key = 0x10
	KeyCtrlQ     Key = 0x11
	KeyCtrlR     Key = 0x12
	KeyCtrlS     Key = 0x13
	KeyCtrlT     Key = 0x14
	KeyCtrlU     Key = 0x15
	KeyCtrlV     Key = 0x16
	KeyCtrlW     Key = 0x17
	KeyCtrlX     Key = 0x18
	KeyCtrlY     Key = 0x19
	KeyCtrlZ     Key = 0x1a
	KeyEsc       Key = 0x1b
	KeyBackspace Key = 0x7f
)

const (
	KeyArrowLeft Key = 1000 + iota
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown
	KeyDelete
	KeyHome
	KeyEnd
	KeyPgup
	KeyPgdn
)

// CtrlKey returns the key produced by holding Ctrl with a letter.
func CtrlKey(c byte) Key {
	return Key(c & 0x1f)
}

// An Event is one logical keypress.
// Printable bytes arrive in Ch with Key set to KeyNone.
type Event struct {
	Type int
	Key  Key
	Ch   byte
}

func (ev Event) IsPrintable() bool {
	return ev.Type == EventKey && ev.Key == KeyNone && ev.Ch != 0
}
