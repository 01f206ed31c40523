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

// Package cmd holds implementations of the listsc commands.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/YanochkaSp/Algorithms/pkg/cleanup"
	"github.com/YanochkaSp/Algorithms/pkg/log"
)

var (
	// atExit holds the functions run by Exit.
	atExit cleanup.Cleanup

	// osExit is replaced in tests.
	osExit = os.Exit
)

// AtExit registers f to run when the process leaves through Exit or
// Fatalf. Functions run in reverse order of registration.
func AtExit(f func()) {
	atExit.Add(f)
}

// Exit runs the AtExit functions and exits with the given status.
func Exit(code int) {
	atExit.Clean()
	osExit(code)
}

// Fatalf logs the message, prints it to stderr and exits with status 1.
func Fatalf(format string, args ...any) {
	log.Warningf(format, args...)
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	Exit(1)
}

// variantFlag selects one list variant, or all of them.
type variantFlag []Variant

// String implements flag.Value.
func (v *variantFlag) String() string {
	if len(*v) == len(allVariants) {
		return "all"
	}
	names := make([]string, 0, len(*v))
	for _, x := range *v {
		names = append(names, string(x))
	}
	return strings.Join(names, ",")
}

// Get implements flag.Getter.
func (v *variantFlag) Get() any {
	return *v
}

// Set implements flag.Value.
func (v *variantFlag) Set(s string) error {
	vs, err := ParseVariants(s)
	if err != nil {
		return err
	}
	*v = vs
	return nil
}

func allVariantsFlag() *variantFlag {
	v := variantFlag(allVariants)
	return &v
}
