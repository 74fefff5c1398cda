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

// Control sequences written to the terminal.
const (
	clearScreen   = "\x1b[2J"
	clearLine     = "\x1b[K"
	cursorHome    = "\x1b[H"
	cursorMove    = "\x1b[%d;%dH"
	cursorDown    = "\x1b[%dB"
	cursorRight   = "\x1b[%dC"
	queryCursor   = "\x1b[6n"
	hideCursor    = "\x1b[?25l"
	showCursor    = "\x1b[?25h"
	invertColor   = "\x1b[7m"
	defaultColor  = "\x1b[m"
	lineSeparator = "\r\n"
)
