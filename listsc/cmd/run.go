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
	"os"

	"github.com/YanochkaSp/Algorithms/listsc/config"
	"github.com/YanochkaSp/Algorithms/pkg/log"
	"github.com/google/subcommands"
)

// Run implements subcommands.Command for the "run" command.
type Run struct {
	workload string
	variant  string
}

// Name implements subcommands.Command.Name.
func (*Run) Name() string {
	return "run"
}

// Synopsis implements subcommands.Command.Synopsis.
func (*Run) Synopsis() string {
	return "run a scripted workload of list operations"
}

// Usage implements subcommands.Command.Usage.
func (*Run) Usage() string {
	return `run -workload=FILE [flags] - run a scripted workload of list operations.

The workload is a TOML or YAML file holding a list of ops. The list is
printed after every op.

EXAMPLE:
    variant = "arena"

    [[ops]]
    op = "extend"
    values = [1, 2, 3]

    [[ops]]
    op = "append_at"
    pos = 1
    value = 9
    expect = [3, 9, 2, 1]
`
}

// SetFlags implements subcommands.Command.SetFlags.
func (r *Run) SetFlags(f *flag.FlagSet) {
	f.StringVar(&r.workload, "workload", "", "path to the workload file (.toml, .yaml or .yml).")
	f.StringVar(&r.variant, "variant", "", "list variant to run on, overriding the workload: own, rc, arena or vec.")
}

// Execute implements subcommands.Command.Execute.
func (r *Run) Execute(_ context.Context, f *flag.FlagSet, args ...any) subcommands.ExitStatus {
	if r.workload == "" || f.NArg() != 0 {
		f.Usage()
		return subcommands.ExitUsageError
	}
	conf := args[0].(*config.Config)

	w, err := LoadWorkload(r.workload)
	if err != nil {
		Fatalf("%v", err)
	}
	name := w.Variant
	if r.variant != "" {
		name = r.variant
	}
	if name == "" {
		name = string(Own)
	}
	variants, err := ParseVariants(name)
	if err != nil || len(variants) != 1 {
		Fatalf("workload %q: need exactly one variant, got %q", r.workload, name)
	}
	v := variants[0]

	log.Infof("Running %d ops from %q on %s lists", len(w.Ops), r.workload, v)
	l, err := w.execute(v, newList(v, conf.CheckInvariants), conf.CheckInvariants, os.Stdout)
	l.release()
	if err != nil {
		Fatalf("workload %q: %v", r.workload, err)
	}
	return subcommands.ExitSuccess
}
