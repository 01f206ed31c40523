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

// Package ownlist provides a singly linked list in which every node is
// owned by exactly one link: the list head or its predecessor's next field.
//
// Moving a chain between lists moves the single owning link; nothing is
// shared, so cycles cannot be represented and every walk terminates.
//
// Lists are not safe for concurrent use.
package ownlist

import (
	"iter"

	"github.com/YanochkaSp/Algorithms/pkg/errors/listerr"
)

// node holds one element and the owning link to its successor.
type node[T any] struct {
	value T
	next  *node[T]
}

// List is a singly linked list with exclusive ownership of its nodes.
//
// The zero value for List is an empty list ready to use.
type List[T any] struct {
	head *node[T]
	len  int
}

// New returns an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// Empty returns true iff the list is empty.
func (l *List[T]) Empty() bool {
	return l.head == nil
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return l.len
}

// Front returns a pointer to element 0, or nil if the list is empty.
func (l *List[T]) Front() *T {
	if l.head == nil {
		return nil
	}
	return &l.head.value
}

// PushHead inserts v at position 0.
func (l *List[T]) PushHead(v T) {
	l.head = &node[T]{value: v, next: l.head}
	l.len++
}

// PopHead removes and returns element 0. It returns false if the list is
// empty.
func (l *List[T]) PopHead() (T, bool) {
	n := l.head
	if n == nil {
		var zero T
		return zero, false
	}
	l.head = n.next
	n.next = nil
	l.len--
	return n.value, true
}

// linkAt returns the link that owns the node at position pos, that is the
// head for pos 0 and the (pos-1)-th node's next field otherwise.
//
// Precondition: 0 <= pos <= l.len.
func (l *List[T]) linkAt(pos int) **node[T] {
	link := &l.head
	for i := 0; i < pos; i++ {
		link = &(*link).next
	}
	return link
}

// At returns a pointer to the element at pos, or nil if pos is out of
// range.
func (l *List[T]) At(pos int) *T {
	if pos < 0 || pos >= l.len {
		return nil
	}
	return &(*l.linkAt(pos)).value
}

// AppendAt inserts v so that it becomes the element at pos. Position 0 is
// equivalent to PushHead and position Len() appends at the tail.
//
// A position outside [0, Len()] returns ErrPositionOutOfRange and leaves
// the list unchanged.
func (l *List[T]) AppendAt(pos int, v T) error {
	if pos < 0 || pos > l.len {
		return listerr.OutOfRange("append_at", pos, l.len)
	}
	link := l.linkAt(pos)
	*link = &node[T]{value: v, next: *link}
	l.len++
	return nil
}

// RemoveAt removes the element at pos and returns it.
//
// On an empty list RemoveAt is a no-op and returns the zero value with a
// nil error. On a non-empty list, a position outside [0, Len()) returns
// ErrPositionOutOfRange and leaves the list unchanged.
func (l *List[T]) RemoveAt(pos int) (T, error) {
	var zero T
	if l.head == nil {
		return zero, nil
	}
	if pos < 0 || pos >= l.len {
		return zero, listerr.OutOfRange("remove_at", pos, l.len)
	}
	link := l.linkAt(pos)
	n := *link
	*link = n.next
	n.next = nil
	l.len--
	return n.value, nil
}

// Join appends other's chain to the tail of l and returns l. other is left
// empty. Locating the tail costs O(Len()).
//
// If l is empty, l takes over other's chain unchanged; if other is empty,
// l is returned unchanged.
func (l *List[T]) Join(other *List[T]) *List[T] {
	if other == nil || other == l || other.head == nil {
		return l
	}
	*l.linkAt(l.len) = other.head
	l.len += other.len
	other.head, other.len = nil, 0
	return l
}

// DivideAt splits the list so that the first list holds the first pos
// elements and the second holds the rest. Ownership of the remaining chain
// moves to the second list without copying; l is left empty.
//
// Position 0 yields an empty prefix and position >= Len() an empty suffix.
// DivideAt on an empty list returns ErrEmptyList and a negative position
// returns ErrPositionOutOfRange; in both cases l is unchanged.
func (l *List[T]) DivideAt(pos int) (*List[T], *List[T], error) {
	if l.head == nil {
		return nil, nil, listerr.ErrEmptyList
	}
	if pos < 0 {
		return nil, nil, listerr.OutOfRange("divide_at", pos, l.len)
	}
	pos = min(pos, l.len)
	link := l.linkAt(pos)
	suffix := &List[T]{head: *link, len: l.len - pos}
	// Sever the (pos-1)-th node's link; it becomes the prefix terminator.
	*link = nil
	prefix := &List[T]{head: l.head, len: pos}
	l.head, l.len = nil, 0
	return prefix, suffix, nil
}

// Clear releases every node. It walks the chain iteratively, detaching each
// link before moving on, so arbitrarily long lists are released without
// deep recursion.
func (l *List[T]) Clear() {
	n := l.head
	l.head, l.len = nil, 0
	for n != nil {
		next := n.next
		n.next = nil
		n = next
	}
}

// Grow is a no-op kept for parity with the arena backed lists: heap nodes
// are allocated one at a time.
func (l *List[T]) Grow(int) {}

// Extend pushes every element of seq at the head, so draining the list
// afterwards yields them in reverse order.
func (l *List[T]) Extend(seq iter.Seq[T]) {
	for v := range seq {
		l.PushHead(v)
	}
}

// Collect returns a list built by Extend(seq).
func Collect[T any](seq iter.Seq[T]) *List[T] {
	l := New[T]()
	l.Extend(seq)
	return l
}

// FromSlice returns a list whose elements are vs in order.
func FromSlice[T any](vs []T) *List[T] {
	l := New[T]()
	for i := len(vs) - 1; i >= 0; i-- {
		l.PushHead(vs[i])
	}
	return l
}
