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

// Package freeslot provides the free-slot stack used by arena backed lists
// to recycle buffer slots.
//
// Indices are pushed when a slot is vacated and popped on the next
// allocation, so the most recently freed slot is reused first.
package freeslot

import "iter"

// Stack is a LIFO stack of vacant slot indices.
//
// The zero value for Stack is an empty stack ready to use.
type Stack struct {
	idx []int

	// at maps an index to its position in idx. It is built by the first
	// Remove and kept up to date from then on.
	at map[int]int
}

// Len returns the number of free indices.
func (s *Stack) Len() int {
	return len(s.idx)
}

// Empty returns true iff the stack holds no indices.
func (s *Stack) Empty() bool {
	return len(s.idx) == 0
}

// Push records i as vacant.
func (s *Stack) Push(i int) {
	if s.at != nil {
		s.at[i] = len(s.idx)
	}
	s.idx = append(s.idx, i)
}

// Pop removes and returns the most recently pushed index.
func (s *Stack) Pop() (int, bool) {
	n := len(s.idx)
	if n == 0 {
		return 0, false
	}
	i := s.idx[n-1]
	s.idx = s.idx[:n-1]
	if s.at != nil {
		delete(s.at, i)
	}
	return i, true
}

// Remove takes i off the stack wherever it is and reports whether it was
// there. The index on top of the stack takes i's place.
func (s *Stack) Remove(i int) bool {
	if s.at == nil {
		s.at = make(map[int]int, len(s.idx))
		for p, x := range s.idx {
			s.at[x] = p
		}
	}
	p, ok := s.at[i]
	if !ok {
		return false
	}
	last := s.idx[len(s.idx)-1]
	s.idx[p] = last
	s.at[last] = p
	s.idx = s.idx[:len(s.idx)-1]
	delete(s.at, i)
	return true
}

// Peek returns the index Pop would return without removing it.
func (s *Stack) Peek() (int, bool) {
	n := len(s.idx)
	if n == 0 {
		return 0, false
	}
	return s.idx[n-1], true
}

// Reset empties the stack, keeping its storage.
func (s *Stack) Reset() {
	s.idx = s.idx[:0]
	s.at = nil
}

// Rebase adds offset to every index in the stack.
func (s *Stack) Rebase(offset int) {
	for i := range s.idx {
		s.idx[i] += offset
	}
	s.at = nil
}

// Append pushes all of other's indices onto s, bottom first, and empties
// other.
func (s *Stack) Append(other *Stack) {
	s.idx = append(s.idx, other.idx...)
	other.idx, other.at = nil, nil
	s.at = nil
}

// All yields the free indices from the top of the stack down.
func (s *Stack) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := len(s.idx) - 1; i >= 0; i-- {
			if !yield(s.idx[i]) {
				return
			}
		}
	}
}
