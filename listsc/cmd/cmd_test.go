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

package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseVariants(t *testing.T) {
	for _, tc := range []struct {
		in      string
		want    []Variant
		wantErr bool
	}{
		{in: "", want: allVariants},
		{in: "all", want: allVariants},
		{in: "rc", want: []Variant{RC}},
		{in: "vec, own,vec", want: []Variant{Vec, Own}},
		{in: "deque", wantErr: true},
	} {
		got, err := ParseVariants(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseVariants(%q) error = %v, wantErr %t", tc.in, err, tc.wantErr)
			continue
		}
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("ParseVariants(%q) mismatch (-want +got):\n%s", tc.in, diff)
		}
	}
}

func TestScenarios(t *testing.T) {
	for _, checks := range []bool{false, true} {
		var out bytes.Buffer
		if failed := runScenarios(&out, allVariants, checks); failed != 0 {
			t.Errorf("runScenarios(checks=%t): %d failures:\n%s", checks, failed, out.String())
		}
		if got, want := strings.Count(out.String(), "SKIP"), 2; got != want {
			t.Errorf("got %d skipped scenarios, want %d:\n%s", got, want, out.String())
		}
	}
}

func TestStress(t *testing.T) {
	if err := runStress(context.Background(), allVariants, 10000, true); err != nil {
		t.Errorf("runStress: %v", err)
	}
}

func TestStressCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := runStress(ctx, []Variant{Own}, 10, false); err == nil {
		t.Errorf("runStress on a canceled context succeeded")
	}
}

const tomlWorkload = `
variant = "arena"

[[ops]]
op = "extend"
values = [1, 2, 3]
expect = [3, 2, 1]

[[ops]]
op = "append_at"
pos = 1
value = 9
expect = [3, 9, 2, 1]

[[ops]]
op = "append_at"
pos = 7
expect_error = "PositionOutOfRange"

[[ops]]
op = "join"
values = [7, 8]
expect = [3, 9, 2, 1, 7, 8]

[[ops]]
op = "divide_at"
pos = 2
keep = "right"
expect = [2, 1, 7, 8]

[[ops]]
op = "remove_at"
pos = 3
expect = [2, 1, 7]
`

const yamlWorkload = `
variant: rc
ops:
  - op: extend
    values: [1, 2, 3, 4]
  - op: make_cycle_at
    pos: 1
  - op: has_cycle
  - op: pop_head
    expect_error: UniqueOwnershipViolation
  - op: append_at
    pos: 1
    value: 5
    expect_error: CycleDetected
  - op: break_cycle
  - op: pop_head
    expect: [3, 2, 1]
`

func writeWorkload(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestWorkloads(t *testing.T) {
	for _, tc := range []struct {
		name     string
		contents string
		variant  Variant
		want     []int
	}{
		{name: "w.toml", contents: tomlWorkload, variant: Arena, want: []int{2, 1, 7}},
		{name: "w.yaml", contents: yamlWorkload, variant: RC, want: []int{3, 2, 1}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			w, err := LoadWorkload(writeWorkload(t, tc.name, tc.contents))
			if err != nil {
				t.Fatalf("LoadWorkload: %v", err)
			}
			if got := Variant(w.Variant); got != tc.variant {
				t.Errorf("Variant = %q, want %q", got, tc.variant)
			}
			var out bytes.Buffer
			l, err := w.execute(tc.variant, newList(tc.variant, true), true, &out)
			defer l.release()
			if err != nil {
				t.Fatalf("execute: %v\n%s", err, out.String())
			}
			if diff := cmp.Diff(tc.want, l.values()); diff != "" {
				t.Errorf("final list mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWorkloadOnEveryVariant(t *testing.T) {
	w := &Workload{Ops: []Op{
		{Op: "push_head", Value: 1},
		{Op: "push_head", Value: 2},
		{Op: "append_at", Pos: 2, Value: 3, Expect: []int{2, 1, 3}},
		{Op: "remove_at", Pos: 0, Expect: []int{1, 3}},
		{Op: "remove_at", Pos: 5, ExpectError: "PositionOutOfRange"},
		{Op: "divide_at", Pos: 1, Expect: []int{1}},
		{Op: "pop_head", Expect: []int{}},
		{Op: "extend", Values: []int{4, 5}, Expect: []int{5, 4}},
		{Op: "extend", Values: []int{6}, Expect: []int{6, 5, 4}},
		{Op: "check"},
	}}
	for _, v := range allVariants {
		var out bytes.Buffer
		l, err := w.execute(v, newList(v, true), true, &out)
		l.release()
		if err != nil {
			t.Errorf("%s: %v\n%s", v, err, out.String())
		}
	}
}

func TestWorkloadErrors(t *testing.T) {
	for _, tc := range []struct {
		name     string
		contents string
	}{
		{name: "bad.json", contents: "{}"},
		{name: "unknown.toml", contents: "[[ops]]\nop = \"push_head\"\nvalu = 1\n"},
		{name: "unknown.yaml", contents: "ops:\n  - op: push_head\n    valu: 1\n"},
		{name: "syntax.yaml", contents: "ops: [\n"},
	} {
		if _, err := LoadWorkload(writeWorkload(t, tc.name, tc.contents)); err == nil {
			t.Errorf("LoadWorkload(%s) succeeded", tc.name)
		}
	}

	w := &Workload{Ops: []Op{{Op: "rotate"}}}
	l, err := w.execute(Own, newList(Own, false), false, &bytes.Buffer{})
	l.release()
	if err == nil {
		t.Errorf("unknown op succeeded")
	}

	w = &Workload{Ops: []Op{{Op: "make_cycle_at", Pos: 1, ExpectError: "CycleDetected"}}}
	l, err = w.execute(Vec, newList(Vec, false), false, &bytes.Buffer{})
	l.release()
	if err == nil {
		t.Errorf("unsupported cycle matched a list error code")
	}

	w = &Workload{Ops: []Op{
		{Op: "push_head", Value: 1},
		{Op: "remove_at", Pos: 5, ExpectError: "OutOfRange"},
	}}
	l, err = w.execute(Arena, newList(Arena, false), false, &bytes.Buffer{})
	l.release()
	if err == nil {
		t.Errorf("unknown error code matched")
	}
}

func TestFatalfRunsAtExit(t *testing.T) {
	defer func(exit func(int)) { osExit = exit }(osExit)
	code := -1
	osExit = func(c int) { code = c }

	var closed []string
	AtExit(func() { closed = append(closed, "log") })
	AtExit(func() { closed = append(closed, "panic log") })
	Fatalf("fatal: %s", "test")
	if code != 1 {
		t.Errorf("Fatalf exited with %d, want 1", code)
	}
	if diff := cmp.Diff([]string{"panic log", "log"}, closed); diff != "" {
		t.Errorf("AtExit order mismatch (-want +got):\n%s", diff)
	}

	Exit(0)
	if code != 0 {
		t.Errorf("Exit(0) exited with %d", code)
	}
	if len(closed) != 2 {
		t.Errorf("AtExit functions ran again: %v", closed)
	}
}
