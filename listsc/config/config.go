// Copyright 2026 The gVisor Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config provides basic infrastructure to set configuration settings
// for listsc. Each setting is registered as a flag; a TOML file named by
// --config may override them.
package config

import (
	"fmt"
	"reflect"

	"github.com/YanochkaSp/Algorithms/pkg/log"
	"github.com/YanochkaSp/Algorithms/pkg/refs"
)

// Config holds configuration that is not part of the command arguments.
//
// Follow these steps to add a new flag:
//  1. Create a new field in Config.
//  2. Add a field tag with the flag name.
//  3. Register a new flag in flags.go, with name and description.
//  4. Add any necessary validation into validate().
type Config struct {
	// Debug indicates that debug logging should be enabled.
	Debug bool `flag:"debug"`

	// LogFilename is the filename to log to, if not empty. Logs go to stderr
	// otherwise.
	LogFilename string `flag:"log"`

	// LogFormat is the log format.
	LogFormat string `flag:"log-format"`

	// PanicLog is the path to log Go's runtime messages to, if not empty.
	PanicLog string `flag:"panic-log"`

	// ReferenceLeak sets reference leak check mode.
	ReferenceLeak refs.LeakMode `flag:"ref-leak-mode"`

	// LogReferences enables logging of every reference change on shared
	// list nodes. It only takes effect when leak checking is enabled.
	LogReferences bool `flag:"log-refs"`

	// CheckInvariants validates every list after each structural
	// operation.
	CheckInvariants bool `flag:"check-invariants"`

	// ConfigFile is a TOML file whose keys, named after flags, override
	// the flag values.
	ConfigFile string `flag:"config"`
}

func (c *Config) validate() error {
	if _, err := log.ParseFormat(c.LogFormat); err != nil {
		return err
	}
	if c.ReferenceLeak > refs.LeaksPanic {
		return fmt.Errorf("invalid ref leak mode %d", c.ReferenceLeak)
	}
	return nil
}

// Log logs important aspects of the configuration to the given log function.
func (c *Config) Log() {
	log.Infof("Config:")
	obj := reflect.ValueOf(c).Elem()
	st := obj.Type()
	for i := 0; i < st.NumField(); i++ {
		f := st.Field(i)
		name, ok := f.Tag.Lookup("flag")
		if !ok {
			continue
		}
		log.Infof("  %s (--%s): %s", f.Name, name, getVal(obj.Field(i)))
	}
}
