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
package commander

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/timburks/kilo/config"
	"github.com/timburks/kilo/editor"
	"github.com/timburks/kilo/operations"
	gott "github.com/timburks/kilo/types"
)

const (
	helpMessage   = "HELP: Ctrl-S = save | Ctrl-Q = quit | Ctrl-F = find"
	searchPrompt  = "Search: %s (Use ESC/Arrows/Enter)"
	saveAsPrompt  = "Save as: %s (ESC to cancel)"
	quitWarning   = "WARNING!!! File has unsaved changes. Press Ctrl-Q %d more %s to quit."
	maxPromptText = 256
)

// The Commander converts user input into commands for the Editor.
type Commander struct {
	editor      *editor.Editor
	config      *config.Config
	logger      *log.Logger
	mode        int            // editor mode
	quitTimes   int            // remaining Ctrl-Q presses before quitting with unsaved changes
	message     string         // status message
	messageTime time.Time      // when the status message was set
	prompt      string         // format of the active prompt
	input       string         // text typed at the prompt
	search      *editor.Search // active search session
	now         func() time.Time
}

func NewCommander(e *editor.Editor, c *config.Config, logger *log.Logger) *Commander {
	if c == nil {
		c = config.Default()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Commander{
		editor:    e,
		config:    c,
		logger:    logger,
		mode:      gott.ModeEdit,
		quitTimes: c.QuitTimes,
		now:       time.Now,
	}
}

func (c *Commander) GetMode() int {
	return c.mode
}

func (c *Commander) IsRunning() bool {
	return c.mode != gott.ModeQuit
}

// SetMessage shows a message on the message bar.
func (c *Commander) SetMessage(format string, args ...interface{}) {
	c.message = fmt.Sprintf(format, args...)
	c.messageTime = c.now()
}

// GetMessage returns the status message, or "" once it has been up longer than the timeout.
// An open prompt is shown until it is answered.
func (c *Commander) GetMessage() string {
	switch c.mode {
	case gott.ModeSearch, gott.ModePrompt:
		return fmt.Sprintf(c.prompt, c.input)
	}
	if c.message == "" || c.now().Sub(c.messageTime) > c.config.MessageTimeout {
		return ""
	}
	return c.message
}

func (c *Commander) ShowHelp() {
	c.SetMessage(helpMessage)
}

func (c *Commander) ProcessEvent(event gott.Event) error {
	switch event.Type {
	case gott.EventKey:
		return c.ProcessKey(event)
	default:
		return nil
	}
}

func (c *Commander) ProcessKey(event gott.Event) error {
	switch c.mode {
	case gott.ModeEdit:
		return c.ProcessKeyEditMode(event)
	case gott.ModeSearch:
		return c.ProcessKeySearchMode(event)
	case gott.ModePrompt:
		return c.ProcessKeyPromptMode(event)
	}
	return nil
}

func (c *Commander) ProcessKeyEditMode(event gott.Event) error {
	e := c.editor
	key := event.Key

	if key == gott.KeyCtrlQ {
		c.quit()
		return nil
	}
	// any other key starts the quit confirmation over
	c.quitTimes = c.config.QuitTimes

	if event.IsPrintable() {
		(&operations.InsertCharacter{Character: event.Ch}).Perform(e)
		return nil
	}
	switch key {
	case gott.KeyEnter:
		(&operations.InsertRow{}).Perform(e)
	case gott.KeyTab:
		(&operations.InsertCharacter{Character: '\t'}).Perform(e)
	case gott.KeyBackspace, gott.KeyCtrlH:
		(&operations.Backspace{}).Perform(e)
	case gott.KeyDelete:
		operations.DeleteCharacter().Perform(e)
	case gott.KeyCtrlS:
		c.save()
	case gott.KeyCtrlF:
		c.startSearch()
	case gott.KeyCtrlL, gott.KeyEsc:
		break
	default:
		if op := operations.ForKey(key); op != nil {
			op.Perform(e)
		}
	}
	return nil
}

func (c *Commander) quit() {
	if c.editor.Buffer.IsDirty() && c.quitTimes > 0 {
		times := "times"
		if c.quitTimes == 1 {
			times = "time"
		}
		c.SetMessage(quitWarning, c.quitTimes, times)
		c.quitTimes--
		return
	}
	c.mode = gott.ModeQuit
}

func (c *Commander) save() {
	if c.editor.Buffer.GetFileName() == "" {
		c.startPrompt(saveAsPrompt)
		return
	}
	c.write()
}

func (c *Commander) write() {
	name := c.editor.Buffer.GetFileName()
	n, err := c.editor.WriteFile(name)
	if err != nil {
		c.logger.Error("save failed", "file", name, "err", err)
		c.SetMessage("Can't save! I/O error: %s", err)
		return
	}
	c.logger.Info("saved", "file", name, "bytes", n)
	c.SetMessage("%d bytes written to disk", n)
}

func (c *Commander) startSearch() {
	c.search = c.editor.StartSearch()
	c.startPrompt(searchPrompt)
	c.mode = gott.ModeSearch
}

func (c *Commander) startPrompt(prompt string) {
	c.mode = gott.ModePrompt
	c.prompt = prompt
	c.input = ""
	c.SetMessage(c.prompt, c.input)
}

// editInput applies line editing keys to the prompt text.
func (c *Commander) editInput(event gott.Event) {
	switch event.Key {
	case gott.KeyBackspace, gott.KeyCtrlH, gott.KeyDelete:
		if len(c.input) > 0 {
			c.input = c.input[0 : len(c.input)-1]
		}
	default:
		if event.IsPrintable() && event.Ch < 0x80 && len(c.input) < maxPromptText {
			c.input += string(event.Ch)
		}
	}
}

func (c *Commander) ProcessKeySearchMode(event gott.Event) error {
	c.editInput(event)
	switch c.search.Advance(c.input, event) {
	case editor.SearchCommit:
		c.logger.Debug("search committed", "query", c.input, "cursor", c.editor.GetCursor())
		c.endPrompt()
	case editor.SearchCancel:
		c.logger.Debug("search cancelled", "query", c.input)
		c.search.Restore()
		c.endPrompt()
	default:
		c.SetMessage(c.prompt, c.input)
	}
	return nil
}

func (c *Commander) ProcessKeyPromptMode(event gott.Event) error {
	switch event.Key {
	case gott.KeyEsc:
		c.endPrompt()
		c.SetMessage("Save aborted")
		return nil
	case gott.KeyEnter:
		if c.input == "" {
			break
		}
		name := c.input
		c.endPrompt()
		c.editor.Buffer.SetFileName(name)
		c.write()
		return nil
	default:
		c.editInput(event)
	}
	c.SetMessage(c.prompt, c.input)
	return nil
}

func (c *Commander) endPrompt() {
	c.mode = gott.ModeEdit
	c.prompt = ""
	c.input = ""
	c.search = nil
	c.SetMessage("")
}
