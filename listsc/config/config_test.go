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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/YanochkaSp/Algorithms/pkg/refs"
	"github.com/google/go-cmp/cmp"
)

func TestDefault(t *testing.T) {
	testFlags := flag.NewFlagSet("test", flag.ContinueOnError)
	RegisterFlags(testFlags)
	c, err := NewFromFlags(testFlags)
	if err != nil {
		t.Fatal(err)
	}

	// All defaults doesn't require setting flags.
	flags := c.ToFlags()
	if len(flags) > 0 {
		t.Errorf("default flags not set correctly for: %s", flags)
	}
}

func TestFromFlags(t *testing.T) {
	testFlags := flag.NewFlagSet("test", flag.ContinueOnError)
	RegisterFlags(testFlags)
	if err := testFlags.Parse([]string{"--debug", "--log-format=json", "--ref-leak-mode=log-traces", "--check-invariants"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	c, err := NewFromFlags(testFlags)
	if err != nil {
		t.Fatal(err)
	}
	want := &Config{
		Debug:           true,
		LogFormat:       "json",
		ReferenceLeak:   refs.LeaksLogTraces,
		CheckInvariants: true,
	}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("Config mismatch (-want +got):\n%s", diff)
	}
}

func TestToFlagsFromFlags(t *testing.T) {
	testFlags := flag.NewFlagSet("test", flag.ContinueOnError)
	RegisterFlags(testFlags)
	testFlags.Set("debug", "true")
	testFlags.Set("check-invariants", "false") // Matches default value.
	testFlags.Set("log", "/tmp/listsc.log")
	testFlags.Set("ref-leak-mode", "panic")
	c, err := NewFromFlags(testFlags)
	if err != nil {
		t.Fatal(err)
	}

	flags := c.ToFlags()
	t.Logf("Flags: %s", flags)
	fm := map[string]string{}
	for _, f := range flags {
		kv := strings.Split(f, "=")
		fm[kv[0]] = kv[1]
	}
	want := map[string]string{
		"--debug":         "true",
		"--log":           "/tmp/listsc.log",
		"--ref-leak-mode": "panic",
	}
	if diff := cmp.Diff(want, fm); diff != "" {
		t.Errorf("flags mismatch (-want +got):\n%s", diff)
	}
}

// TestInvalidFlags checks that enum flags fail when value is not in enum set.
func TestInvalidFlags(t *testing.T) {
	for _, tc := range []struct {
		name  string
		value string
		error string
	}{
		{
			name:  "ref-leak-mode",
			value: "invalid",
			error: "invalid ref leak mode",
		},
		{
			name:  "log-format",
			value: "yaml",
			error: "invalid log format",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			testFlags := flag.NewFlagSet("test", flag.ContinueOnError)
			RegisterFlags(testFlags)
			c, err := NewFromFlags(testFlags)
			if err != nil {
				t.Fatal(err)
			}
			if err := c.Override(testFlags, tc.name, tc.value); err == nil || !strings.Contains(err.Error(), tc.error) {
				t.Errorf("Override(%q, %q) got: %v, want error containing %q", tc.name, tc.value, err, tc.error)
			}
		})
	}
}

func TestOverride(t *testing.T) {
	testFlags := flag.NewFlagSet("test", flag.ContinueOnError)
	RegisterFlags(testFlags)
	c, err := NewFromFlags(testFlags)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.Override(testFlags, "debug", "true"); err != nil {
		t.Fatalf("Override(debug): %v", err)
	}
	if !c.Debug {
		t.Errorf("Debug = false after override")
	}
	if err := c.Override(testFlags, "no-such-flag", "1"); err == nil {
		t.Errorf("Override of unknown flag succeeded")
	}
	if err := c.Override(testFlags, "config", "other.toml"); err == nil {
		t.Errorf("Override of config succeeded")
	}
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "listsc.toml")
	const contents = `
debug = true
log-format = "json"
ref-leak-mode = "log-names"
`
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}

	testFlags := flag.NewFlagSet("test", flag.ContinueOnError)
	RegisterFlags(testFlags)
	if err := testFlags.Parse([]string{"--config=" + path, "--log-format=text"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	c, err := NewFromFlags(testFlags)
	if err != nil {
		t.Fatal(err)
	}
	want := &Config{
		Debug:         true,
		LogFormat:     "json",
		ReferenceLeak: refs.LeaksLogWarning,
		ConfigFile:    path,
	}
	if diff := cmp.Diff(want, c); diff != "" {
		t.Errorf("Config mismatch (-want +got):\n%s", diff)
	}
}

func TestConfigFileErrors(t *testing.T) {
	dir := t.TempDir()
	for _, tc := range []struct {
		name     string
		contents string
	}{
		{name: "syntax", contents: "debug = = true"},
		{name: "unknown", contents: "no-such-flag = 1"},
		{name: "invalid", contents: `log-format = "xml"`},
	} {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name+".toml")
			if err := os.WriteFile(path, []byte(tc.contents), 0644); err != nil {
				t.Fatal(err)
			}
			testFlags := flag.NewFlagSet("test", flag.ContinueOnError)
			RegisterFlags(testFlags)
			testFlags.Set("config", path)
			if _, err := NewFromFlags(testFlags); err == nil {
				t.Errorf("NewFromFlags accepted config file %q", tc.contents)
			}
		})
	}
}
