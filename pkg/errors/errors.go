// Copyright 2021 The gVisor Authors.
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

// Package errors holds the standardized error definition for the list
// packages.
package errors

// Code classifies a list error.
type Code uint32

// Error codes. Values are stable and used in log output.
const (
	// NoCode is never carried by a valid *Error.
	NoCode Code = iota

	// EmptyList means the operation needs at least one element.
	EmptyList

	// PositionOutOfRange means a positional argument exceeds what the
	// list can service.
	PositionOutOfRange

	// UniqueOwnership means a shared node could not be consumed because
	// other handles to it are still alive.
	UniqueOwnership

	// CycleDetected means an operation would have to walk a cyclic chain.
	CycleDetected
)

// String implements fmt.Stringer.
func (c Code) String() string {
	switch c {
	case EmptyList:
		return "EmptyList"
	case PositionOutOfRange:
		return "PositionOutOfRange"
	case UniqueOwnership:
		return "UniqueOwnershipViolation"
	case CycleDetected:
		return "CycleDetected"
	default:
		return "NoCode"
	}
}

// Error represents a list error code with a descriptive message.
type Error struct {
	code    Code
	message string
}

// New creates a new *Error.
func New(code Code, message string) *Error {
	return &Error{
		code:    code,
		message: message,
	}
}

// Error implements error.Error.
func (e *Error) Error() string { return e.message }

// Code returns the underlying Code value.
func (e *Error) Code() Code { return e.code }

// Is reports whether target is an *Error carrying the same code. It lets
// errors.Is match wrapped errors against the package sentinels.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.code == t.code
}
