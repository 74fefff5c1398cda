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
package config

import (
	"errors"
	"sync"
	"time"

	"github.com/steelseries/golisp"
)

// The config being filled in by Eval; primitives write into it.
// evalMutex holds it for one Eval at a time.
var (
	loading   *Config
	evalMutex sync.Mutex
)

func init() {
	golisp.MakePrimitiveFunction("tab-stop", "1", TabStopImpl)
	golisp.MakePrimitiveFunction("quit-times", "1", QuitTimesImpl)
	golisp.MakePrimitiveFunction("message-timeout", "1", MessageTimeoutImpl)
	golisp.MakePrimitiveFunction("log-file", "1", LogFileImpl)
}

func numberArg(args *golisp.Data, name string) (float64, error) {
	val := golisp.Car(args)
	switch {
	case golisp.IntegerP(val):
		return float64(golisp.IntegerValue(val)), nil
	case golisp.FloatP(val):
		return float64(golisp.FloatValue(val)), nil
	}
	return 0, errors.New(name + " requires a number argument")
}

func TabStopImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	n, err := numberArg(args, "tab-stop")
	if err != nil {
		return nil, err
	}
	loading.TabStop = int(n)
	return golisp.Car(args), nil
}

func QuitTimesImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	n, err := numberArg(args, "quit-times")
	if err != nil {
		return nil, err
	}
	loading.QuitTimes = int(n)
	return golisp.Car(args), nil
}

func MessageTimeoutImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	n, err := numberArg(args, "message-timeout")
	if err != nil {
		return nil, err
	}
	loading.MessageTimeout = time.Duration(n * float64(time.Second))
	return golisp.Car(args), nil
}

func LogFileImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (result *golisp.Data, err error) {
	val := golisp.Car(args)
	if !golisp.StringP(val) {
		return nil, errors.New("log-file requires a string argument")
	}
	loading.LogFile = golisp.StringValue(val)
	return val, nil
}

// Eval runs an init script and returns the defaults as changed by it.
// Calls are serialized.
func Eval(source string) (*Config, error) {
	evalMutex.Lock()
	defer evalMutex.Unlock()
	c := Default()
	loading = c
	defer func() { loading = nil }()
	if _, err := golisp.ParseAndEval("(begin\n" + source + "\n)"); err != nil {
		return Default(), err
	}
	if err := c.validate(); err != nil {
		return Default(), err
	}
	return c, nil
}
