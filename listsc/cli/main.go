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

// Package cli is the main entrypoint for listsc.
package cli

import (
	"context"
	"flag"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/YanochkaSp/Algorithms/listsc/cmd"
	"github.com/YanochkaSp/Algorithms/listsc/config"
	"github.com/YanochkaSp/Algorithms/pkg/log"
	"github.com/YanochkaSp/Algorithms/pkg/rclist"
	"github.com/YanochkaSp/Algorithms/pkg/refs"
	"github.com/google/subcommands"
	"golang.org/x/sys/unix"
)

// Main is the main entrypoint.
func Main() {
	// Register all commands.
	forEachCmd(subcommands.Register)

	// Register with the main command line.
	config.RegisterFlags(flag.CommandLine)

	// All subcommands must be registered before flag parsing.
	flag.Parse()

	// Create a new Config from the flags.
	conf, err := config.NewFromFlags(flag.CommandLine)
	if err != nil {
		cmd.Fatalf("%v", err)
	}

	// Sets the reference leak check mode.
	refs.SetLeakMode(conf.ReferenceLeak)
	rclist.SetLogReferences(conf.LogReferences)

	// Set up logging.
	if conf.Debug {
		log.SetLevel(log.Debug)
	}
	format, err := log.ParseFormat(conf.LogFormat)
	if err != nil {
		cmd.Fatalf("%v", err)
	}
	var logFile io.Writer = os.Stderr
	if conf.LogFilename != "" {
		// Append rather than truncate so that repeated runs share one log.
		f, err := log.OpenFile(conf.LogFilename)
		if err != nil {
			cmd.Fatalf("error opening log file %q: %v", conf.LogFilename, err)
		}
		cmd.AtExit(func() { f.Close() })
		logFile = f
	}
	log.SetTarget(log.NewEmitter(format, logFile))

	if conf.PanicLog != "" {
		f, err := log.OpenFile(conf.PanicLog)
		if err != nil {
			cmd.Fatalf("error opening panic log file %q: %v", conf.PanicLog, err)
		}
		cmd.AtExit(func() { f.Close() })
		// Dup the panic log onto stderr so that runtime panics and fatal
		// errors land in it.
		if err := unix.Dup3(int(f.Fd()), int(os.Stderr.Fd()), 0); err != nil {
			cmd.Fatalf("error dup'ing fd %d to stderr: %v", f.Fd(), err)
		}
	}

	const delimString = `**************** listsc ****************`
	log.Infof(delimString)
	log.Infof("%s, %s, %d CPUs, %s, PID %d", runtime.Version(), runtime.GOARCH, runtime.NumCPU(), runtime.GOOS, os.Getpid())
	log.Infof("Args: %v", os.Args)
	conf.Log()
	log.Infof("Equivalent flags: %s", strings.Join(conf.ToFlags(), " "))
	log.Infof(delimString)

	// Call the subcommand and pass in the configuration.
	subcmdCode := subcommands.Execute(context.Background(), conf)
	// Check for leaks before exiting.
	if leaked := refs.DoRepeatedLeakCheck(); leaked > 0 && subcmdCode == subcommands.ExitSuccess {
		subcmdCode = subcommands.ExitFailure
	}
	if subcmdCode != subcommands.ExitSuccess {
		log.Warningf("Failure to execute command, err: %v", subcmdCode)
	}
	cmd.Exit(int(subcmdCode))
}

// forEachCmd invokes the passed callback for each command supported by listsc.
func forEachCmd(cb func(cmd subcommands.Command, group string)) {
	// Help and flags commands are generated automatically.
	cb(subcommands.HelpCommand(), "")
	cb(subcommands.FlagsCommand(), "")

	cb(new(cmd.Scenarios), "")
	cb(new(cmd.Run), "")
	cb(new(cmd.Stress), "")
}
