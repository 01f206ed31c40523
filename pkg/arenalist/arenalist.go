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

// Package arenalist provides a singly linked list whose nodes live in a
// contiguous slot buffer and link to each other by slot index.
//
// Slots never move while they are in use, so indices stay valid until the
// element is removed. Vacated slots are recycled through a free-slot stack;
// the buffer itself only grows.
package arenalist

import (
	"fmt"
	"iter"
	"slices"

	"github.com/YanochkaSp/Algorithms/pkg/errors/listerr"
	"github.com/YanochkaSp/Algorithms/pkg/freeslot"
	"github.com/YanochkaSp/Algorithms/pkg/log"
)

// Index identifies a slot in the list's buffer.
type Index int

// None is the terminator: it marks the absence of a successor.
const None Index = -1

type slot[T any] struct {
	value T
	used  bool
	next  Index
}

// List is a singly linked list stored in a slot arena. The zero value is
// an empty list.
type List[T any] struct {
	slots []slot[T]

	// head is only meaningful while len > 0.
	head Index
	free freeslot.Stack
	len  int

	// cyclic is set by MakeCycleAt; back is the slot the tail links to.
	cyclic bool
	back   Index
}

// New returns an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// Empty returns true iff the list has no elements.
func (l *List[T]) Empty() bool {
	return l.len == 0
}

// Len returns the number of elements in the chain.
func (l *List[T]) Len() int {
	return l.len
}

// Cap returns the number of slots in the buffer, used or not.
func (l *List[T]) Cap() int {
	return len(l.slots)
}

// Head returns the index of the first element, or None.
func (l *List[T]) Head() Index {
	if l.len == 0 {
		return None
	}
	return l.head
}

// Cyclic returns true if a cycle was installed with MakeCycleAt.
func (l *List[T]) Cyclic() bool {
	return l.cyclic
}

// Grow reserves room for n more elements.
func (l *List[T]) Grow(n int) {
	if extra := n - l.free.Len(); extra > 0 {
		l.slots = slices.Grow(l.slots, extra)
	}
}

// PushNode stores v in a vacant slot, or a new one, with next as its
// successor and returns the slot's index. The slot is not linked into the
// chain; PushHead and AppendAt link it.
func (l *List[T]) PushNode(v T, next Index) Index {
	s := slot[T]{value: v, used: true, next: next}
	if i, ok := l.free.Pop(); ok {
		l.slots[i] = s
		return Index(i)
	}
	l.slots = append(l.slots, s)
	return Index(len(l.slots) - 1)
}

// take empties slot i and returns its value. The index goes back on the
// free stack.
func (l *List[T]) take(i Index) T {
	v := l.slots[i].value
	l.slots[i] = slot[T]{next: None}
	l.free.Push(int(i))
	return v
}

// indexAt returns the slot holding the element at pos, which must be in
// [0, l.len).
func (l *List[T]) indexAt(pos int) Index {
	i := l.head
	for ; pos > 0; pos-- {
		i = l.slots[i].next
	}
	return i
}

// Index returns the slot holding the element at pos, or None if pos is out
// of range.
func (l *List[T]) Index(pos int) Index {
	if pos < 0 || pos >= l.len {
		return None
	}
	return l.indexAt(pos)
}

// At returns a pointer to the value in slot i.
func (l *List[T]) At(i Index) (*T, bool) {
	if i < 0 || int(i) >= len(l.slots) || !l.slots[i].used {
		return nil, false
	}
	return &l.slots[i].value, true
}

// PushHead inserts v at the front of the list.
func (l *List[T]) PushHead(v T) {
	next := None
	if l.len > 0 {
		next = l.head
	}
	l.head = l.PushNode(v, next)
	l.len++
}

// PopHead removes the first element and returns it.
//
// If the list is cyclic and its back edge points at the head, the back
// edge is removed first and the list becomes acyclic.
func (l *List[T]) PopHead() (T, bool) {
	if l.len == 0 {
		var zero T
		return zero, false
	}
	if l.cyclic && l.back == l.head {
		l.BreakCycle()
	}
	i := l.head
	l.head = l.slots[i].next
	l.len--
	return l.take(i), true
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
	prev := l.indexAt(pos - 1)
	i := l.PushNode(v, l.slots[prev].next)
	l.slots[prev].next = i
	l.len++
	return nil
}

// RemoveAt removes the element at pos and returns it. Removing from an
// empty list is a no-op.
func (l *List[T]) RemoveAt(pos int) (T, error) {
	var zero T
	if l.len == 0 {
		return zero, nil
	}
	if l.cyclic {
		return zero, listerr.Cyclic("remove_at")
	}
	if pos < 0 || pos >= l.len {
		return zero, listerr.OutOfRange("remove_at", pos, l.len)
	}
	if pos == 0 {
		v, _ := l.PopHead()
		return v, nil
	}
	prev := l.indexAt(pos - 1)
	i := l.slots[prev].next
	l.slots[prev].next = l.slots[i].next
	l.len--
	return l.take(i), nil
}

// Join appends other's elements to l and returns l. other's slots are
// copied behind l's and their links rebased; other is left empty.
func (l *List[T]) Join(other *List[T]) (*List[T], error) {
	if other == nil || other == l {
		return l, nil
	}
	if l.cyclic || other.cyclic {
		return l, listerr.Cyclic("join")
	}
	if other.len == 0 {
		return l, nil
	}
	if l.len == 0 {
		*l, *other = *other, List[T]{}
		return l, nil
	}
	offset := Index(len(l.slots))
	tail := l.indexAt(l.len - 1)
	l.slots = slices.Grow(l.slots, len(other.slots))
	for _, s := range other.slots {
		if s.next != None {
			s.next += offset
		}
		l.slots = append(l.slots, s)
	}
	l.slots[tail].next = other.head + offset
	other.free.Rebase(int(offset))
	l.free.Append(&other.free)
	l.len += other.len
	log.Debugf("arenalist: joined %d slots at offset %d", len(other.slots), offset)
	*other = List[T]{}
	return l, nil
}

// DivideAt splits the list into its first min(pos, Len()) elements and the
// rest. Both halves are rebuilt in fresh buffers; the receiver is left
// empty.
func (l *List[T]) DivideAt(pos int) (*List[T], *List[T], error) {
	if l.cyclic {
		return nil, nil, listerr.Cyclic("divide_at")
	}
	if pos < 0 {
		return nil, nil, listerr.OutOfRange("divide_at", pos, l.len)
	}
	vals := slices.Collect(l.Drain())
	pos = min(pos, len(vals))
	*l = List[T]{}
	return FromSlice(vals[:pos]), FromSlice(vals[pos:]), nil
}

// MakeCycleAt links the tail to the element at pos-1. pos must be in
// [1, Len()]. The list is marked cyclic until BreakCycle.
func (l *List[T]) MakeCycleAt(pos int) error {
	if l.len == 0 {
		return fmt.Errorf("make_cycle_at: %w", listerr.ErrEmptyList)
	}
	if l.cyclic {
		return listerr.Cyclic("make_cycle_at")
	}
	if pos <= 0 || pos > l.len {
		return listerr.OutOfRange("make_cycle_at", pos, l.len)
	}
	l.back = l.indexAt(pos - 1)
	l.slots[l.indexAt(l.len-1)].next = l.back
	l.cyclic = true
	log.Debugf("arenalist: installed cycle from tail to slot %d", l.back)
	return nil
}

// BreakCycle removes the back edge installed by MakeCycleAt, if any.
func (l *List[T]) BreakCycle() {
	if !l.cyclic {
		return
	}
	l.slots[l.indexAt(l.len-1)].next = None
	l.cyclic, l.back = false, None
}

// HasCycle returns true iff a cycle is reachable from the head.
func (l *List[T]) HasCycle() bool {
	if l.len == 0 {
		return false
	}
	next := func(i Index) Index { return l.slots[i].next }
	slow, fast := l.head, l.head
	for fast != None && next(fast) != None {
		slow = next(slow)
		fast = next(next(fast))
		if slow == fast {
			return true
		}
	}
	return false
}

// CheckInvariants validates the free stack, the head anchor and the shape
// of the chain.
func (l *List[T]) CheckInvariants() error {
	onFree := make([]bool, len(l.slots))
	for i := range l.free.All() {
		if i < 0 || i >= len(l.slots) {
			return fmt.Errorf("free index %d outside buffer of %d slots", i, len(l.slots))
		}
		if l.slots[i].used {
			return fmt.Errorf("free index %d holds a value", i)
		}
		if onFree[i] {
			return fmt.Errorf("free index %d listed twice", i)
		}
		onFree[i] = true
	}
	if l.len == 0 {
		if l.cyclic {
			return fmt.Errorf("empty list marked cyclic")
		}
		return nil
	}
	if l.head < 0 || int(l.head) >= len(l.slots) || !l.slots[l.head].used {
		return fmt.Errorf("head %d does not refer to a used slot", l.head)
	}

	seen := make([]bool, len(l.slots))
	i, last := l.head, None
	for n := 0; n < l.len; n++ {
		if i < 0 || int(i) >= len(l.slots) || !l.slots[i].used {
			return fmt.Errorf("element %d: slot %d is not in use", n, i)
		}
		if seen[i] {
			return fmt.Errorf("element %d: slot %d revisited: %w", n, i, listerr.ErrCycleDetected)
		}
		seen[i] = true
		last, i = i, l.slots[i].next
	}
	switch {
	case l.cyclic && i != l.back:
		return fmt.Errorf("tail slot %d links to %d, want back edge %d", last, i, l.back)
	case !l.cyclic && i != None:
		return fmt.Errorf("tail slot %d links to %d after %d elements, want terminator", last, i, l.len)
	}
	return nil
}

// Clear removes every element and releases the buffer.
func (l *List[T]) Clear() {
	*l = List[T]{}
}

// Extend pushes each element of seq at the head.
func (l *List[T]) Extend(seq iter.Seq[T]) {
	for v := range seq {
		l.PushHead(v)
	}
}

// ExtendN is Extend for a seq known to yield n elements. It reserves slots
// for them first.
func (l *List[T]) ExtendN(n int, seq iter.Seq[T]) {
	l.Grow(n)
	l.Extend(seq)
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
	l.Grow(len(vs))
	for i := len(vs) - 1; i >= 0; i-- {
		l.PushHead(vs[i])
	}
	return l
}
