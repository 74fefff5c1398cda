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

// Package config holds the editor settings.
// Settings start from defaults and may be changed by an init file
// written in lisp, for example:
//
//	(tab-stop 8)
//	(quit-times 2)
//	(message-timeout 10)
//	(log-file "/tmp/kilo.log")
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

const (
	DefaultTabStop        = 4
	DefaultQuitTimes      = 3
	DefaultMessageTimeout = 5 * time.Second
)

type Config struct {
	TabStop        int           // columns per tab
	QuitTimes      int           // extra Ctrl-Q presses needed to quit with unsaved changes
	MessageTimeout time.Duration // how long a status message stays visible
	LogFile        string        // where the log is written
}

func Default() *Config {
	return &Config{
		TabStop:        DefaultTabStop,
		QuitTimes:      DefaultQuitTimes,
		MessageTimeout: DefaultMessageTimeout,
	}
}

// InitFile returns the path of the init file: $KILORC, or ~/.kilorc.
func InitFile() string {
	if path := os.Getenv("KILORC"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".kilorc")
}

// LogPath returns the path of the log file: $KILO_LOG, the configured file, or ~/.kilolog.
func (c *Config) LogPath() string {
	if path := os.Getenv("KILO_LOG"); path != "" {
		return path
	}
	if c.LogFile != "" {
		return c.LogFile
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".kilolog")
}

// Load reads the init file at path on top of the defaults.
// A missing file is not an error. On any other error the defaults are returned with it.
func Load(path string) (*Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	source, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return c, nil
	}
	if err != nil {
		return c, err
	}
	loaded, err := Eval(string(source))
	if err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}
	return loaded, nil
}

func (c *Config) validate() error {
	if c.TabStop < 1 || c.TabStop > 16 {
		return fmt.Errorf("tab-stop must be between 1 and 16, got %d", c.TabStop)
	}
	if c.QuitTimes < 0 {
		return fmt.Errorf("quit-times must not be negative, got %d", c.QuitTimes)
	}
	if c.MessageTimeout <= 0 {
		return fmt.Errorf("message-timeout must be positive, got %v", c.MessageTimeout)
	}
	return nil
}
