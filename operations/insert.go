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
)

// InsertCharacter inserts a byte at the cursor and moves past it.
type InsertCharacter struct {
	Character byte
}

func (op *InsertCharacter) Perform(e *editor.Editor) {
	e.InsertChar(op.Character)
}

// InsertRow splits the current row at the cursor.
type InsertRow struct{}

func (op *InsertRow) Perform(e *editor.Editor) {
	e.InsertRow()
}
