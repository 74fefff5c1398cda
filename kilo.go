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
package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"

	"github.com/timburks/kilo/commander"
	"github.com/timburks/kilo/config"
	"github.com/timburks/kilo/editor"
	"github.com/timburks/kilo/screen"
)

func main() {
	if len(os.Args) > 2 {
		fmt.Fprintf(os.Stderr, "usage: %s [file]\n", os.Args[0])
		os.Exit(1)
	}
	var filename string
	if len(os.Args) == 2 {
		filename = os.Args[1]
	}
	os.Exit(run(filename))
}

// openLog opens the log file, or discards logs if it can't be opened.
func openLog(path string) (*log.Logger, io.Closer) {
	if path != "" {
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
		if err == nil {
			logger := log.NewWithOptions(f, log.Options{
				ReportTimestamp: true,
				Prefix:          "kilo",
				Level:           log.DebugLevel,
			})
			return logger, f
		}
	}
	return log.New(io.Discard), io.NopCloser(nil)
}

func run(filename string) int {
	cfg, configErr := config.Load(config.InitFile())

	logger, logFile := openLog(cfg.LogPath())
	defer logFile.Close()

	// The editor manages all text manipulation.
	e := editor.NewEditor(cfg.TabStop)

	// The commander converts user inputs into commands for the editor.
	c := commander.NewCommander(e, cfg, logger)

	// Put the terminal into raw mode; it is restored however we exit.
	t, err := screen.OpenTerminal(os.Stdin, os.Stdout)
	if err != nil {
		logger.Error("fatal", "op", "enable raw mode", "err", err)
		fmt.Fprintf(os.Stderr, "enable raw mode: %v\n", err)
		return 1
	}
	defer func() {
		if r := recover(); r != nil {
			t.Clear()
			t.Restore()
			panic(r)
		}
	}()
	die := func(op string, err error) int {
		logger.Error("fatal", "op", op, "err", err)
		t.Clear()
		t.Restore()
		fmt.Fprintf(os.Stderr, "%s: %v\n", op, err)
		return 1
	}

	size, err := t.Size()
	if err != nil {
		return die("get window size", err)
	}
	s := screen.NewScreen(os.Stdout, size)
	logger.Info("started", "file", filename, "rows", size.Rows, "cols", size.Cols)

	c.ShowHelp()
	if filename != "" {
		err := e.ReadFile(filename)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			e.Buffer.SetFileName(filename)
			c.SetMessage("New file")
		case err != nil:
			e.Buffer.SetFileName(filename)
			c.SetMessage("Can't open %s: %s", filename, err)
		default:
			logger.Info("loaded", "file", filename, "lines", e.Buffer.GetRowCount())
		}
		if err != nil {
			logger.Warn("load failed", "file", filename, "err", err)
		}
	}
	if configErr != nil {
		logger.Warn("config", "err", configErr)
		c.SetMessage("Config error: %s", configErr)
	}

	// Run the main event loop.
	input := screen.NewInput(os.Stdin)
	for c.IsRunning() {
		if size, err := t.QuerySize(); err == nil {
			s.SetSize(size)
		}
		if err := s.Render(e, c.GetMessage()); err != nil {
			return die("write", err)
		}
		event, err := input.ReadEvent()
		if err != nil {
			return die("read", err)
		}
		if err := c.ProcessEvent(event); err != nil {
			logger.Error("event", "err", err)
		}
	}

	logger.Info("quit", "file", e.Buffer.GetFileName())
	t.Clear()
	if err := t.Restore(); err != nil {
		fmt.Fprintf(os.Stderr, "restore terminal: %v\n", err)
		return 1
	}
	return 0
}
