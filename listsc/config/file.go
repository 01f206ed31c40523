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

package config

import (
	"flag"
	"fmt"
	"sort"

	"github.com/BurntSushi/toml"
)

// loadFile applies the overrides in the TOML file at path. Keys are flag
// names; values may be strings, booleans or integers.
func (c *Config) loadFile(flagSet *flag.FlagSet, path string) error {
	var overrides map[string]any
	if _, err := toml.DecodeFile(path, &overrides); err != nil {
		return fmt.Errorf("reading config file %q: %w", path, err)
	}
	names := make([]string, 0, len(overrides))
	for name := range overrides {
		names = append(names, name)
	}
	// Apply in a stable order so that validation errors are reproducible.
	sort.Strings(names)
	for _, name := range names {
		if err := c.Override(flagSet, name, fmt.Sprint(overrides[name])); err != nil {
			return fmt.Errorf("config file %q: %w", path, err)
		}
	}
	return nil
}
