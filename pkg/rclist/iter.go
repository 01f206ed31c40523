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

package rclist

import "iter"

// Iterator walks the list front to back without taking references. It is
// bounded by the list length at creation, so it terminates on cyclic
// lists. The list must not be modified while an Iterator is in use.
type Iterator[T any] struct {
	next      *Node[T]
	remaining int
}

// Iter returns an Iterator positioned at the head.
func (l *List[T]) Iter() *Iterator[T] {
	return &Iterator[T]{next: l.head, remaining: l.len}
}

// Next returns a pointer to the next value.
func (it *Iterator[T]) Next() (*T, bool) {
	n := it.next
	if n == nil || it.remaining == 0 {
		return nil, false
	}
	it.next = n.next
	it.remaining--
	return &n.value, true
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

// Drain pops values from the head until the list is empty. It stops early
// if the head is shared; the list then keeps the remaining nodes.
func (l *List[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok, err := l.PopHead()
			if err != nil || !ok || !yield(v) {
				return
			}
		}
	}
}

// NodeIter walks the chain holding a reference on the node it is parked
// on, so the node stays alive even if the list drops it. A NodeIter
// follows successor links without bound; on a cyclic list the caller
// decides when to stop. Close must be called when done.
type NodeIter[T any] struct {
	cur     *Node[T]
	started bool
}

// Nodes returns a NodeIter parked on the head.
func (l *List[T]) Nodes() *NodeIter[T] {
	it := &NodeIter[T]{cur: l.head}
	if it.cur != nil {
		it.cur.IncRef()
	}
	return it
}

// Next moves to the next node and returns it. The returned node is
// borrowed from the iterator: it is valid until the following call to
// Next or Close. Callers that keep it longer must take their own
// reference.
func (it *NodeIter[T]) Next() (*Node[T], bool) {
	if it.cur == nil {
		return nil, false
	}
	if !it.started {
		it.started = true
		return it.cur, true
	}
	next := it.cur.Next()
	it.cur.DecRef()
	it.cur = next
	return next, next != nil
}

// Close drops the iterator's reference.
func (it *NodeIter[T]) Close() {
	if it.cur != nil {
		it.cur.DecRef()
		it.cur = nil
	}
}
