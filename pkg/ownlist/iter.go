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

package ownlist

import "iter"

// Iterator is a forward, single pass view over a list. It yields pointers
// to elements in head to tail order and cannot be restarted.
//
// The list must not be modified while an Iterator is in use.
type Iterator[T any] struct {
	next *node[T]
}

// Iter returns an Iterator positioned at the head of l.
func (l *List[T]) Iter() *Iterator[T] {
	return &Iterator[T]{next: l.head}
}

// Next returns a pointer to the next element, or false once the list is
// exhausted.
func (it *Iterator[T]) Next() (*T, bool) {
	n := it.next
	if n == nil {
		return nil, false
	}
	it.next = n.next
	return &n.value, true
}

// All yields the elements of l in head to tail order.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Values yields pointers to the elements of l, allowing in place updates.
func (l *List[T]) Values() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for n := l.head; n != nil; n = n.next {
			if !yield(&n.value) {
				return
			}
		}
	}
}

// Drain yields owned elements by repeatedly popping the head. Elements not
// consumed when the loop stops stay in the list.
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
