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

package veclist

import "iter"

// Iterator walks the occupied slots in position order.
type Iterator[T any] struct {
	l         *List[T]
	next      int
	remaining int
}

// Iter returns an Iterator positioned at the head.
func (l *List[T]) Iter() *Iterator[T] {
	return &Iterator[T]{l: l, next: int(l.head), remaining: l.len}
}

// Next returns a pointer to the next value.
func (it *Iterator[T]) Next() (*T, bool) {
	if it.remaining == 0 {
		return nil, false
	}
	i, ok := it.l.occupied.FirstOne(it.next)
	if !ok {
		it.remaining = 0
		return nil, false
	}
	it.next = i + 1
	it.remaining--
	return &it.l.slots[i], true
}

// All returns the values front to back.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := l.Iter()
		for p, ok := it.Next(); ok; p, ok = it.Next() {
			if !yield(*p) {
				return
			}
		}
	}
}

// Values returns pointers to the values front to back.
func (l *List[T]) Values() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		it := l.Iter()
		for p, ok := it.Next(); ok; p, ok = it.Next() {
			if !yield(p) {
				return
			}
		}
	}
}

// Backward returns the values back to front.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		end := len(l.slots)
		for n := 0; n < l.len; n++ {
			i, ok := l.occupied.LastOne(end)
			if !ok || !yield(l.slots[i]) {
				return
			}
			end = i
		}
	}
}

// Drain pops values from the head until the list is empty.
func (l *List[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := l.PopHead()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
