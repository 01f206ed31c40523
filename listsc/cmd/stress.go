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
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/YanochkaSp/Algorithms/listsc/config"
	"github.com/YanochkaSp/Algorithms/pkg/log"
	"github.com/google/subcommands"
	"golang.org/x/sync/errgroup"
)

// progressLog reports stress progress at most every few seconds.
var progressLog = log.BasicRateLimitedLogger(5 * time.Second)

// stressChunk is the number of elements added between cancellation checks.
const stressChunk = 65536

// stressList builds a list of n elements by extending it at the head, checks
// the iteration order, drains half of it and releases the rest. Each call
// uses its own list, so calls may run concurrently.
func stressList(ctx context.Context, v Variant, n int, checks bool) error {
	// Per-op validation is quadratic on long lists; validate once at the
	// end instead.
	l := newList(v, false)
	defer l.release()
	vals := make([]int, 0, min(n, stressChunk))
	for start := 0; start < n; start += stressChunk {
		if err := ctx.Err(); err != nil {
			return err
		}
		vals = vals[:0]
		for i := start; i < min(n, start+stressChunk); i++ {
			vals = append(vals, i)
		}
		l.extend(vals)
		progressLog.Infof("Stress %s: pushed %d of %d", v, start+len(vals), n)
	}
	want := n - 1
	for _, got := range l.values() {
		if got != want {
			return fmt.Errorf("%s: element %d, want %d", v, got, want)
		}
		want--
	}
	for i := 0; i < n/2; i++ {
		got, ok, err := l.popHead()
		if err != nil {
			return fmt.Errorf("%s: pop: %w", v, err)
		}
		if want := n - 1 - i; !ok || got != want {
			return fmt.Errorf("%s: popped (%d, %t), want %d", v, got, ok, want)
		}
	}
	if got, want := l.length(), n-n/2; got != want {
		return fmt.Errorf("%s: length %d after draining, want %d", v, got, want)
	}
	if checks {
		return l.check()
	}
	return nil
}

// runStress runs stressList for every variant concurrently. The first
// failure cancels the others.
func runStress(ctx context.Context, variants []Variant, n int, checks bool) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, v := range variants {
		g.Go(func() error {
			start := time.Now()
			if err := stressList(ctx, v, n, checks); err != nil {
				return err
			}
			log.Infof("Stress %s: %d elements in %v", v, n, time.Since(start))
			return nil
		})
	}
	return g.Wait()
}

// Stress implements subcommands.Command for the "stress" command.
type Stress struct {
	n        int
	variants *variantFlag
}

// Name implements subcommands.Command.Name.
func (*Stress) Name() string {
	return "stress"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*Stress) Synopsis() string {
	return "build, walk, drain and release large lists of every variant"
}

// Usage implements subcommands.Command.Usage.
func (*Stress) Usage() string {
	return `stress [flags] - build, walk, drain and release large lists of every variant.

One list per variant is exercised concurrently.
`
}

// SetFlags implements subcommands.Command.SetFlags.
func (s *Stress) SetFlags(f *flag.FlagSet) {
	s.variants = allVariantsFlag()
	f.IntVar(&s.n, "n", 1000000, "number of elements per list.")
	f.Var(s.variants, "variant", "list variant to run: all (default), own, rc, arena, vec, or a comma separated list.")
}

// Execute implements subcommands.Command.Execute.
func (s *Stress) Execute(ctx context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	if s.n < 0 || f.NArg() != 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	conf := args[0].(*config.Config)
	if err := runStress(ctx, *s.variants, s.n, conf.CheckInvariants); err != nil {
		Fatalf("stress: %v", err)
	}
	fmt.Fprintf(os.Stdout, "stress: %d variants, %d elements each: ok\n", len(*s.variants), s.n)
	return subcommands.ExitSuccess
}
