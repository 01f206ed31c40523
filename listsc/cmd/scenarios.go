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
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/YanochkaSp/Algorithms/listsc/config"
	"github.com/YanochkaSp/Algorithms/pkg/cleanup"
	"github.com/YanochkaSp/Algorithms/pkg/errors/listerr"
	"github.com/YanochkaSp/Algorithms/pkg/log"
	"github.com/google/subcommands"
)

// scenario is one reference behavior every list variant must reproduce.
type scenario struct {
	name string

	// cycles is set for scenarios that need a variant supporting cycles.
	cycles bool

	run func(newList func() intList) error
}

// build returns a list made by pushing vs at the head in order.
func build(newList func() intList, vs ...int) intList {
	l := newList()
	for _, v := range vs {
		l.pushHead(v)
	}
	return l
}

// expect compares l's contents to want and validates l.
func expect(what string, l intList, want ...int) error {
	if got := l.values(); !slices.Equal(got, want) {
		return fmt.Errorf("%s: got %v, want %v", what, got, want)
	}
	if got := l.length(); got != len(want) {
		return fmt.Errorf("%s: length %d, want %d", what, got, len(want))
	}
	return l.check()
}

var scenarios = []scenario{
	{
		name: "push-pop",
		run: func(newList func() intList) error {
			l := build(newList, 1, 2, 3)
			defer l.release()
			if err := expect("after push", l, 3, 2, 1); err != nil {
				return err
			}
			for _, want := range []int{3, 2} {
				v, ok, err := l.popHead()
				if err != nil || !ok || v != want {
					return fmt.Errorf("pop: got (%d, %t, %v), want %d", v, ok, err, want)
				}
			}
			return expect("after pop", l, 1)
		},
	},
	{
		name: "join",
		run: func(newList func() intList) error {
			a, b := build(newList, 1, 2), build(newList, 3, 4)
			cu := cleanup.Make(a.release)
			cu.Add(b.release)
			defer cu.Clean()
			if err := a.join(b); err != nil {
				return err
			}
			if err := expect("joined", a, 2, 1, 4, 3); err != nil {
				return err
			}
			return expect("consumed", b)
		},
	},
	{
		name: "divide",
		run: func(newList func() intList) error {
			l := build(newList, 1, 2, 3, 4, 5)
			cu := cleanup.Make(l.release)
			defer cu.Clean()
			left, right, err := l.divideAt(3)
			if err != nil {
				return err
			}
			cu.Add(left.release)
			cu.Add(right.release)
			if err := expect("left", left, 5, 4, 3); err != nil {
				return err
			}
			return expect("right", right, 2, 1)
		},
	},
	{
		name: "append-at",
		run: func(newList func() intList) error {
			l := build(newList, 1, 2, 3)
			defer l.release()
			if err := l.appendAt(1, 9); err != nil {
				return err
			}
			if err := expect("appended", l, 3, 9, 2, 1); err != nil {
				return err
			}
			if err := l.appendAt(9, 0); !errors.Is(err, listerr.ErrPositionOutOfRange) {
				return fmt.Errorf("append past the end: got %v, want %v", err, listerr.ErrPositionOutOfRange)
			}
			return nil
		},
	},
	{
		name: "remove-at",
		run: func(newList func() intList) error {
			l := build(newList, 1, 2, 3, 4)
			defer l.release()
			v, err := l.removeAt(3)
			if err != nil {
				return err
			}
			if v != 1 {
				return fmt.Errorf("removed %d, want 1", v)
			}
			return expect("removed", l, 4, 3, 2)
		},
	},
	{
		name:   "make-cycle",
		cycles: true,
		run: func(newList func() intList) error {
			l := build(newList, 1, 2, 3, 4)
			defer l.release()
			if c, _ := l.hasCycle(); c {
				return fmt.Errorf("cycle reported before make_cycle_at")
			}
			if err := l.makeCycleAt(1); err != nil {
				return err
			}
			if c, _ := l.hasCycle(); !c {
				return fmt.Errorf("no cycle reported after make_cycle_at")
			}
			if err := l.check(); err != nil {
				return err
			}
			return l.breakCycle()
		},
	},
}

// runScenarios runs every scenario on the given variants and reports the
// outcome of each to w. It returns the number of failures.
func runScenarios(w io.Writer, variants []Variant, checks bool) int {
	failed := 0
	for _, v := range variants {
		fresh := func() intList { return newList(v, checks) }
		for _, s := range scenarios {
			if s.cycles && !v.supportsCycles() {
				fmt.Fprintf(w, "SKIP %s/%s\n", v, s.name)
				continue
			}
			if err := s.run(fresh); err != nil {
				failed++
				log.Warningf("Scenario %s/%s failed: %v", v, s.name, err)
				fmt.Fprintf(w, "FAIL %s/%s: %v\n", v, s.name, err)
				continue
			}
			fmt.Fprintf(w, "PASS %s/%s\n", v, s.name)
		}
	}
	return failed
}

// Scenarios implements subcommands.Command for the "scenarios" command.
type Scenarios struct {
	variants *variantFlag
}

// Name implements subcommands.Command.Name.
func (*Scenarios) Name() string {
	return "scenarios"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*Scenarios) Synopsis() string {
	return "run the reference scenarios on each list variant"
}

// Usage implements subcommands.Command.Usage.
func (*Scenarios) Usage() string {
	return `scenarios [flags] - run the reference scenarios on each list variant.

Each scenario builds small lists, applies one operation and compares the
result to the expected contents. Cycle scenarios are skipped for variants
that do not support cycles.
`
}

// SetFlags implements subcommands.Command.SetFlags.
func (s *Scenarios) SetFlags(f *flag.FlagSet) {
	s.variants = allVariantsFlag()
	f.Var(s.variants, "variant", "list variant to run: all (default), own, rc, arena, vec, or a comma separated list.")
}

// Execute implements subcommands.Command.Execute.
func (s *Scenarios) Execute(_ context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	if f.NArg() != 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	conf := args[0].(*config.Config)
	if failed := runScenarios(os.Stdout, *s.variants, conf.CheckInvariants); failed > 0 {
		log.Warningf("%d scenarios failed", failed)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
