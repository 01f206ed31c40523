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

// Package listerr contains the list error taxonomy exported as error
// interface pointers. This allows for fast comparison with == when no
// context was attached, and errors.Is when it was.
package listerr

import (
	stderrors "errors"
	"fmt"

	"github.com/YanochkaSp/Algorithms/pkg/errors"
)

var (
	noError *errors.Error = nil

	// ErrEmptyList is returned by operations that require at least one
	// element. PopHead reports emptiness with a bool instead.
	ErrEmptyList = errors.New(errors.EmptyList, "list is empty")

	// ErrPositionOutOfRange is returned when a position exceeds what the
	// list can service. It is a programmer error; the list is unchanged.
	ErrPositionOutOfRange = errors.New(errors.PositionOutOfRange, "position out of range")

	// ErrUniqueOwnership is returned when a shared node still has other
	// live handles and therefore cannot be consumed.
	ErrUniqueOwnership = errors.New(errors.UniqueOwnership, "node has other live handles")

	// ErrCycleDetected is returned when an operation would have to walk a
	// cyclic chain.
	ErrCycleDetected = errors.New(errors.CycleDetected, "cycle detected in list")
)

var errorMap = map[errors.Code]*errors.Error{
	errors.EmptyList:          ErrEmptyList,
	errors.PositionOutOfRange: ErrPositionOutOfRange,
	errors.UniqueOwnership:    ErrUniqueOwnership,
	errors.CycleDetected:      ErrCycleDetected,
}

// OutOfRange returns ErrPositionOutOfRange annotated with the operation,
// the offending position and the list length at the time of the call.
func OutOfRange(op string, pos, length int) error {
	return fmt.Errorf("%s: position %d, length %d: %w", op, pos, length, ErrPositionOutOfRange)
}

// Cyclic returns ErrCycleDetected annotated with the operation.
func Cyclic(op string) error {
	return fmt.Errorf("%s: %w", op, ErrCycleDetected)
}

// FromCode returns the sentinel for c, or nil if c is not a list error code.
func FromCode(c errors.Code) *errors.Error {
	return errorMap[c]
}

// Parse returns the sentinel whose code prints as name.
func Parse(name string) (*errors.Error, bool) {
	for c := errors.NoCode + 1; FromCode(c) != nil; c++ {
		if c.String() == name {
			return FromCode(c), true
		}
	}
	return nil, false
}

// ToError converts a list error to an error type.
func ToError(err *errors.Error) error {
	if err == noError {
		return nil
	}
	return err
}

// Translate extracts the *errors.Error carried by err, if any.
func Translate(err error) (*errors.Error, bool) {
	var e *errors.Error
	if !stderrors.As(err, &e) {
		return nil, false
	}
	return e, true
}

// Equals compares a list error to a given error, looking through any
// context wrapping.
func Equals(e *errors.Error, err error) bool {
	if e == noError || err == nil {
		return ToError(e) == err
	}
	return stderrors.Is(err, e)
}
