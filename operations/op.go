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

// An Operation is one editing action applied to an editor.
type Operation interface {
	Perform(e *editor.Editor)
}

// Sequence performs a list of operations in order.
type Sequence struct {
	Operations []Operation
}

func (op *Sequence) Perform(e *editor.Editor) {
	for _, operation := range op.Operations {
		operation.Perform(e)
	}
}
