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
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/BurntSushi/toml"
	"github.com/YanochkaSp/Algorithms/pkg/errors/listerr"
	"gopkg.in/yaml.v3"
)

// Workload is a scripted sequence of list operations.
type Workload struct {
	// Variant is the default variant to run on, if the command line does
	// not name one.
	Variant string `toml:"variant" yaml:"variant"`

	Ops []Op `toml:"ops" yaml:"ops"`
}

// Op is one step of a workload.
//
// Supported ops: push_head, pop_head, append_at, remove_at, extend, join,
// divide_at, make_cycle_at, break_cycle, has_cycle, print, check.
type Op struct {
	Op    string `toml:"op" yaml:"op"`
	Pos   int    `toml:"pos" yaml:"pos"`
	Value int    `toml:"value" yaml:"value"`

	// Values are pushed at the head by extend; join appends a list
	// holding them in order.
	Values []int `toml:"values" yaml:"values"`

	// Keep selects the half divide_at continues with: "left" (default) or
	// "right".
	Keep string `toml:"keep" yaml:"keep"`

	// Expect, if set, is the list contents required after the op.
	Expect []int `toml:"expect" yaml:"expect"`

	// ExpectError, if set, is the error code the op must fail with, for
	// example "PositionOutOfRange".
	ExpectError string `toml:"expect_error" yaml:"expect_error"`
}

// LoadWorkload reads a workload from a TOML or YAML file, chosen by
// extension.
func LoadWorkload(path string) (*Workload, error) {
	var w Workload
	switch ext := filepath.Ext(path); ext {
	case ".toml":
		md, err := toml.DecodeFile(path, &w)
		if err != nil {
			return nil, fmt.Errorf("decoding workload %q: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("workload %q: unknown keys %v", path, undecoded)
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&w); err != nil && err != io.EOF {
			return nil, fmt.Errorf("decoding workload %q: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("workload %q: unknown extension %q, want .toml, .yaml or .yml", path, ext)
	}
	return &w, nil
}

// execute applies the workload's ops to l in order, writing the list after
// each op to out. l may be replaced by divide_at, so the final list is
// returned; the caller releases it.
func (w *Workload) execute(v Variant, l intList, checks bool, out io.Writer) (intList, error) {
	for i, op := range w.Ops {
		next, err := op.apply(v, l, checks, out)
		if next != nil {
			l = next
		}
		if err := op.verify(err); err != nil {
			return l, fmt.Errorf("op %d (%s): %w", i, op.Op, err)
		}
		if op.ExpectError == "" {
			if got := l.values(); op.Expect != nil && !slices.Equal(got, op.Expect) {
				return l, fmt.Errorf("op %d (%s): got %v, want %v", i, op.Op, got, op.Expect)
			}
		}
		if checks {
			if err := l.check(); err != nil {
				return l, fmt.Errorf("op %d (%s): %w", i, op.Op, err)
			}
		}
		fmt.Fprintf(out, "%-14s %v\n", op.Op, l.values())
	}
	return l, nil
}

// verify matches the op's outcome against ExpectError.
func (op *Op) verify(err error) error {
	if op.ExpectError == "" {
		return err
	}
	if err == nil {
		return fmt.Errorf("succeeded, want error %s", op.ExpectError)
	}
	want, ok := listerr.Parse(op.ExpectError)
	if !ok {
		return fmt.Errorf("unknown error code %q", op.ExpectError)
	}
	if !listerr.Equals(want, err) {
		got := "an error without a list code"
		if e, ok := listerr.Translate(err); ok {
			got = e.Code().String()
		}
		return fmt.Errorf("got %s (%v), want %s", got, err, op.ExpectError)
	}
	return nil
}

// apply performs the op. It returns the list to continue with when the op
// replaces it.
func (op *Op) apply(v Variant, l intList, checks bool, out io.Writer) (intList, error) {
	switch op.Op {
	case "push_head":
		l.pushHead(op.Value)
	case "pop_head":
		val, ok, err := l.popHead()
		if err != nil {
			return nil, err
		}
		if ok {
			fmt.Fprintf(out, "popped %d\n", val)
		}
	case "append_at":
		return nil, l.appendAt(op.Pos, op.Value)
	case "remove_at":
		val, err := l.removeAt(op.Pos)
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(out, "removed %d\n", val)
	case "extend":
		l.extend(op.Values)
	case "join":
		other := newList(v, checks)
		for _, val := range slices.Backward(op.Values) {
			other.pushHead(val)
		}
		defer other.release()
		return nil, l.join(other)
	case "divide_at":
		left, right, err := l.divideAt(op.Pos)
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(out, "divided %v | %v\n", left.values(), right.values())
		l.release()
		if op.Keep == "right" {
			left.release()
			return right, nil
		}
		right.release()
		return left, nil
	case "make_cycle_at":
		return nil, l.makeCycleAt(op.Pos)
	case "break_cycle":
		return nil, l.breakCycle()
	case "has_cycle":
		c, err := l.hasCycle()
		if err != nil {
			return nil, err
		}
		fmt.Fprintf(out, "has_cycle %t\n", c)
	case "print":
	case "check":
		return nil, l.check()
	default:
		return nil, fmt.Errorf("unknown op %q", op.Op)
	}
	return nil, nil
}
