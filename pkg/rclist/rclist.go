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

// Package rclist provides a singly linked list whose nodes are reference
// counted and may be shared between the list, iterators and callers.
//
// Ownership follows three rules: the list holds one reference on its
// head, each node holds one reference on its successor, and a NodeIter
// holds one reference on the node it is parked on. A node is destroyed
// when its last reference is dropped.
package rclist

import (
	"fmt"
	"iter"

	"github.com/YanochkaSp/Algorithms/pkg/errors/listerr"
	"github.com/YanochkaSp/Algorithms/pkg/log"
	"github.com/mohae/deepcopy"
)

// List is a singly linked list of shared nodes. The zero value is an empty
// list.
type List[T any] struct {
	head *Node[T]
	len  int

	// cyclic is set by MakeCycleAt. While it is set the tail's successor is
	// the back edge target and len still counts distinct nodes.
	cyclic bool

	checks bool
}

// New returns an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// SetInvariantChecks enables or disables validation of the list around
// every structural operation. A failed validation panics.
func (l *List[T]) SetInvariantChecks(enabled bool) {
	l.checks = enabled
}

// Empty returns true iff the list has no nodes.
func (l *List[T]) Empty() bool {
	return l.head == nil
}

// Len returns the number of distinct nodes in the list.
func (l *List[T]) Len() int {
	return l.len
}

// Cyclic returns true if a cycle was installed with MakeCycleAt.
func (l *List[T]) Cyclic() bool {
	return l.cyclic
}

// Front returns a pointer to the first value, or nil if the list is empty.
func (l *List[T]) Front() *T {
	if l.head == nil {
		return nil
	}
	return &l.head.value
}

// nodeAt returns the node at pos without taking a reference. pos must be
// in [0, l.len).
func (l *List[T]) nodeAt(pos int) *Node[T] {
	n := l.head
	for ; pos > 0; pos-- {
		n = n.next
	}
	return n
}

// Node returns a new handle on the node at pos, or nil if pos is out of
// range.
func (l *List[T]) Node(pos int) *Node[T] {
	if pos < 0 || pos >= l.len {
		return nil
	}
	n := l.nodeAt(pos)
	n.IncRef()
	return n
}

// PushHead inserts v at the front of the list.
func (l *List[T]) PushHead(v T) {
	l.before("push_head")
	l.head = newNode(v, l.head)
	l.len++
	l.after("push_head")
}

// PopHead removes the first node and returns its value.
//
// The head must be held by the list alone. If anything else holds it (a
// caller handle, a NodeIter, or the back edge of a cycle) PopHead returns
// ErrUniqueOwnership and the list is unchanged.
func (l *List[T]) PopHead() (T, bool, error) {
	var zero T
	n := l.head
	if n == nil {
		return zero, false, nil
	}
	if refs := n.ReadRefs(); refs != 1 {
		return zero, false, fmt.Errorf("pop_head: head has %d references: %w", refs, listerr.ErrUniqueOwnership)
	}
	l.before("pop_head")
	v := n.value
	l.head = l.detach(n)
	l.len--
	l.after("pop_head")
	return v, true, nil
}

// PopHeadCopy removes the first node regardless of sharing. If the node is
// still held elsewhere after the list lets go of it, the returned value is
// a deep copy so that the caller does not alias state the other holders
// can observe.
//
// The head of a cyclic list cannot be unlinked; ErrCycleDetected is
// returned instead.
func (l *List[T]) PopHeadCopy() (T, bool, error) {
	var zero T
	n := l.head
	if n == nil {
		return zero, false, nil
	}
	if l.cyclic {
		return zero, false, listerr.Cyclic("pop_head_copy")
	}
	l.before("pop_head_copy")
	shared := n.ReadRefs() > 1
	v := n.value
	l.head = l.detach(n)
	l.len--
	l.after("pop_head_copy")
	if shared {
		c, _ := deepcopy.Copy(v).(T)
		return c, true, nil
	}
	return v, true, nil
}

// detach drops the reference held on n by its predecessor link and
// returns a reference on n's successor for the link to hold instead.
//
// If n survives because others hold it, n keeps its own successor so that
// iterators parked on it can continue.
func (l *List[T]) detach(n *Node[T]) *Node[T] {
	next := n.next
	if n.ReadRefs() == 1 {
		n.next = nil
	} else if next != nil {
		next.IncRef()
	}
	n.DecRef()
	return next
}

// AppendAt inserts v so that it becomes the element at pos. pos must be in
// [0, Len()].
func (l *List[T]) AppendAt(pos int, v T) error {
	if l.cyclic {
		return listerr.Cyclic("append_at")
	}
	if pos < 0 || pos > l.len {
		return listerr.OutOfRange("append_at", pos, l.len)
	}
	if pos == 0 {
		l.PushHead(v)
		return nil
	}
	l.before("append_at")
	prev := l.nodeAt(pos - 1)
	prev.next = newNode(v, prev.next)
	l.len++
	l.after("append_at")
	return nil
}

// RemoveAt unlinks the node at pos and returns its value. Removing from an
// empty list is a no-op. The node itself lives on while other handles
// hold it.
func (l *List[T]) RemoveAt(pos int) (T, error) {
	var zero T
	if l.head == nil {
		return zero, nil
	}
	if l.cyclic {
		return zero, listerr.Cyclic("remove_at")
	}
	if pos < 0 || pos >= l.len {
		return zero, listerr.OutOfRange("remove_at", pos, l.len)
	}
	l.before("remove_at")
	var v T
	if pos == 0 {
		v = l.head.value
		l.head = l.detach(l.head)
	} else {
		prev := l.nodeAt(pos - 1)
		v = prev.next.value
		prev.next = l.detach(prev.next)
	}
	l.len--
	l.after("remove_at")
	return v, nil
}

// Join moves all nodes of other to the end of l and returns l. other is
// left empty. Neither list may be cyclic.
func (l *List[T]) Join(other *List[T]) (*List[T], error) {
	if other == nil || other == l {
		return l, nil
	}
	if l.cyclic || other.cyclic {
		return l, listerr.Cyclic("join")
	}
	if other.head == nil {
		return l, nil
	}
	l.before("join")
	other.before("join")
	if l.head == nil {
		l.head = other.head
	} else {
		l.nodeAt(l.len - 1).next = other.head
	}
	l.len += other.len
	other.head, other.len = nil, 0
	l.after("join")
	return l, nil
}

// DivideAt splits the list into the first min(pos, Len()) nodes and the
// rest. The receiver is left empty.
func (l *List[T]) DivideAt(pos int) (*List[T], *List[T], error) {
	if l.head == nil {
		return nil, nil, listerr.ErrEmptyList
	}
	if l.cyclic {
		return nil, nil, listerr.Cyclic("divide_at")
	}
	if pos < 0 {
		return nil, nil, listerr.OutOfRange("divide_at", pos, l.len)
	}
	l.before("divide_at")
	pos = min(pos, l.len)
	prefix := &List[T]{checks: l.checks}
	suffix := &List[T]{checks: l.checks, len: l.len - pos}
	if pos == 0 {
		suffix.head = l.head
	} else {
		prev := l.nodeAt(pos - 1)
		suffix.head = prev.next
		prev.next = nil
		prefix.head, prefix.len = l.head, pos
	}
	l.head, l.len = nil, 0
	prefix.after("divide_at")
	suffix.after("divide_at")
	return prefix, suffix, nil
}

// MakeCycleAt links the tail back to the node at pos-1. pos must be in
// [1, Len()]. The list is marked cyclic until BreakCycle or Release.
func (l *List[T]) MakeCycleAt(pos int) error {
	if l.head == nil {
		return fmt.Errorf("make_cycle_at: %w", listerr.ErrEmptyList)
	}
	if l.cyclic {
		return listerr.Cyclic("make_cycle_at")
	}
	if pos <= 0 || pos > l.len {
		return listerr.OutOfRange("make_cycle_at", pos, l.len)
	}
	l.before("make_cycle_at")
	target := l.nodeAt(pos - 1)
	target.IncRef()
	l.nodeAt(l.len - 1).next = target
	l.cyclic = true
	log.Debugf("rclist: installed cycle from tail to position %d of %d", pos-1, l.len)
	l.after("make_cycle_at")
	return nil
}

// BreakCycle removes the back edge installed by MakeCycleAt, if any.
func (l *List[T]) BreakCycle() {
	if !l.cyclic {
		return
	}
	tail := l.nodeAt(l.len - 1)
	target := tail.next
	tail.next = nil
	l.cyclic = false
	target.DecRef()
	log.Debugf("rclist: removed cycle from list of %d", l.len)
	l.after("break_cycle")
}

// HasCycle returns true iff a cycle is reachable from the head, whether or
// not it was installed by MakeCycleAt.
func (l *List[T]) HasCycle() bool {
	slow, fast := l.head, l.head
	for fast != nil && fast.next != nil {
		slow = slow.next
		fast = fast.next.next
		if Same(slow, fast) {
			return true
		}
	}
	return false
}

// checkInvariants verifies that the chain is acyclic unless a cycle was
// installed on purpose, and that it has Len() distinct nodes.
func (l *List[T]) checkInvariants() error {
	if l.cyclic {
		return nil
	}
	if l.HasCycle() {
		return listerr.Cyclic("check_invariants")
	}
	count := 0
	for n := l.head; n != nil; n = n.next {
		count++
	}
	if count != l.len {
		return fmt.Errorf("check_invariants: chain has %d nodes, length is %d", count, l.len)
	}
	return nil
}

func (l *List[T]) before(op string) {
	if l.checks {
		l.mustCheck(op, "before")
	}
}

func (l *List[T]) after(op string) {
	if l.checks {
		l.mustCheck(op, "after")
	}
}

func (l *List[T]) mustCheck(op, when string) {
	if err := l.checkInvariants(); err != nil {
		panic(fmt.Sprintf("rclist: invariant violated %s %s: %v", when, op, err))
	}
}

// Release drops the list's reference on its head, breaking an installed
// cycle first. Nodes are destroyed front to back until one is found that
// is still held elsewhere. The list is left empty.
func (l *List[T]) Release() {
	l.BreakCycle()
	n := l.head
	l.head, l.len = nil, 0
	if n != nil {
		n.DecRef()
	}
}

// Clear is an alias for Release.
func (l *List[T]) Clear() {
	l.Release()
}

// Grow is a no-op; nodes are allocated one at a time.
func (l *List[T]) Grow(int) {}

// Extend pushes each element of seq at the head, so the list ends up
// holding them in reverse order.
func (l *List[T]) Extend(seq iter.Seq[T]) {
	for v := range seq {
		l.PushHead(v)
	}
}

// Collect returns a list built with Extend.
func Collect[T any](seq iter.Seq[T]) *List[T] {
	l := New[T]()
	l.Extend(seq)
	return l
}

// FromSlice returns a list holding vs in order.
func FromSlice[T any](vs []T) *List[T] {
	l := New[T]()
	for i := len(vs) - 1; i >= 0; i-- {
		l.PushHead(vs[i])
	}
	return l
}
