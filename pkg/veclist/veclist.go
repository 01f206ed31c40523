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

// Package veclist provides a list stored in a slot buffer whose order is
// the slot position itself.
//
// There are no links: element k is the k-th occupied slot. Anchors cache
// the first and last occupied slots and an occupancy bitmap skips
// tombstones. Every vacant slot is on the free-slot stack. Slots outside
// the anchors are vacant, so PushHead and PushTail take the slot next to
// their anchor and remove it from the stack.
package veclist

import (
	"fmt"
	"iter"
	"slices"
	"time"

	"github.com/YanochkaSp/Algorithms/pkg/bitmap"
	"github.com/YanochkaSp/Algorithms/pkg/errors/listerr"
	"github.com/YanochkaSp/Algorithms/pkg/freeslot"
	"github.com/YanochkaSp/Algorithms/pkg/log"
)

// Index identifies a slot in the list's buffer.
type Index int

// None marks an absent anchor.
const None Index = -1

var rebuildLog = log.BasicRateLimitedLogger(time.Second)

// List is a positional list of values in a slot buffer. The zero value is
// an empty list.
type List[T any] struct {
	slots    []T
	occupied bitmap.Bitmap
	free     freeslot.Stack

	// head and tail are only meaningful while len > 0.
	head, tail Index
	len        int
}

// New returns an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// Empty returns true iff the list has no elements.
func (l *List[T]) Empty() bool {
	return l.len == 0
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	return l.len
}

// Cap returns the number of slots in the buffer, used or not.
func (l *List[T]) Cap() int {
	return len(l.slots)
}

// Head returns the slot of the first element, or None.
func (l *List[T]) Head() Index {
	if l.len == 0 {
		return None
	}
	return l.head
}

// Tail returns the slot of the last element, or None.
func (l *List[T]) Tail() Index {
	if l.len == 0 {
		return None
	}
	return l.tail
}

// At returns a pointer to the value in slot i.
func (l *List[T]) At(i Index) (*T, bool) {
	if !l.occupied.Contains(int(i)) {
		return nil, false
	}
	return &l.slots[i], true
}

// Grow reserves room for n more elements at the tail.
func (l *List[T]) Grow(n int) {
	if n > 0 {
		l.slots = slices.Grow(l.slots, n)
		l.occupied.Grow(len(l.slots) + n)
	}
}

// fill stores v in slot i and extends the anchors to cover it.
func (l *List[T]) fill(i Index, v T) {
	l.slots[i] = v
	l.occupied.Add(int(i))
	if l.len == 0 {
		l.head, l.tail = i, i
	} else {
		l.head, l.tail = min(l.head, i), max(l.tail, i)
	}
	l.len++
}

// vacate tombstones slot i, returns its value and moves the anchors off it.
func (l *List[T]) vacate(i Index) T {
	var zero T
	v := l.slots[i]
	l.slots[i] = zero
	l.occupied.Remove(int(i))
	l.free.Push(int(i))
	l.len--
	if l.len == 0 {
		return v
	}
	if i == l.head {
		h, _ := l.occupied.FirstOne(int(i) + 1)
		l.head = Index(h)
	}
	if i == l.tail {
		t, _ := l.occupied.LastOne(int(i))
		l.tail = Index(t)
	}
	return v
}

// PushTail appends v. The slot after the tail is used when the buffer has
// one; otherwise a slot is appended, after compacting the buffer if at
// least half of it is vacant space before the head.
func (l *List[T]) PushTail(v T) {
	if l.len == 0 {
		if i, ok := l.free.Pop(); ok {
			l.fill(Index(i), v)
			return
		}
	} else if next := l.tail + 1; int(next) < len(l.slots) {
		l.free.Remove(int(next))
		l.fill(next, v)
		return
	} else if int(l.head) >= l.len {
		l.rebuild(slices.Collect(l.All()), 0)
	}
	var zero T
	l.slots = append(l.slots, zero)
	l.fill(Index(len(l.slots)-1), v)
}

// PushHead inserts v at the front. The slot before the head is used when
// there is one; otherwise the list is rebuilt with headroom in front of the
// first element, so PushHead costs amortized O(1).
func (l *List[T]) PushHead(v T) {
	if l.len == 0 {
		l.PushTail(v)
		return
	}
	if l.head == 0 {
		l.rebuild(slices.Collect(l.All()), l.len)
	}
	prev := l.head - 1
	l.free.Remove(int(prev))
	l.fill(prev, v)
}

// rebuild lays vals out densely after gap vacant slots.
func (l *List[T]) rebuild(vals []T, gap int) {
	rebuildLog.Debugf("veclist: rebuilding %d values into %d slots with %d slots of headroom", len(vals), gap+len(vals), gap)
	l.slots = make([]T, gap+len(vals))
	copy(l.slots[gap:], vals)
	l.occupied.Reset()
	l.occupied.Grow(len(l.slots))
	l.free.Reset()
	for i := 0; i < gap; i++ {
		l.free.Push(i)
	}
	l.len = 0
	for i := gap; i < len(l.slots); i++ {
		l.occupied.Add(i)
	}
	if n := len(vals); n > 0 {
		l.head, l.tail, l.len = Index(gap), Index(gap+n-1), n
	}
}

// PopHead removes the first element and returns it.
func (l *List[T]) PopHead() (T, bool) {
	if l.len == 0 {
		var zero T
		return zero, false
	}
	return l.vacate(l.head), true
}

// PopTail removes the last element and returns it.
func (l *List[T]) PopTail() (T, bool) {
	if l.len == 0 {
		var zero T
		return zero, false
	}
	return l.vacate(l.tail), true
}

// indexAt returns the slot of the element at pos, which must be in
// [0, l.len).
func (l *List[T]) indexAt(pos int) Index {
	if pos == l.len-1 {
		return l.tail
	}
	i := int(l.head)
	for ; pos > 0; pos-- {
		i, _ = l.occupied.FirstOne(i + 1)
	}
	return Index(i)
}

// Index returns the slot of the element at pos, or None if pos is out of
// range.
func (l *List[T]) Index(pos int) Index {
	if pos < 0 || pos >= l.len {
		return None
	}
	return l.indexAt(pos)
}

// AppendAt inserts v so that it becomes the element at pos. pos must be in
// [0, Len()]. Interior inserts rebuild the buffer densely.
func (l *List[T]) AppendAt(pos int, v T) error {
	if pos < 0 || pos > l.len {
		return listerr.OutOfRange("append_at", pos, l.len)
	}
	switch pos {
	case 0:
		l.PushHead(v)
	case l.len:
		l.PushTail(v)
	default:
		vals := slices.Collect(l.All())
		l.rebuild(slices.Insert(vals, pos, v), 0)
	}
	return nil
}

// RemoveAt removes the element at pos and returns it. Removing from an
// empty list is a no-op.
func (l *List[T]) RemoveAt(pos int) (T, error) {
	var zero T
	if l.len == 0 {
		return zero, nil
	}
	if pos < 0 || pos >= l.len {
		return zero, listerr.OutOfRange("remove_at", pos, l.len)
	}
	return l.vacate(l.indexAt(pos)), nil
}

// Join appends other's elements to l and returns l. Values are moved into
// a fresh buffer; slot indices of both lists are not preserved. other is
// left empty.
func (l *List[T]) Join(other *List[T]) *List[T] {
	if other == nil || other == l {
		return l
	}
	joined := New[T]()
	joined.Grow(l.len + other.len)
	for v := range l.Drain() {
		joined.PushTail(v)
	}
	for v := range other.Drain() {
		joined.PushTail(v)
	}
	*l, *other = *joined, List[T]{}
	return l
}

// DivideAt splits the list into its first min(pos, Len()) elements and the
// rest, both in fresh buffers. The receiver is left empty.
func (l *List[T]) DivideAt(pos int) (*List[T], *List[T], error) {
	if pos < 0 {
		return nil, nil, listerr.OutOfRange("divide_at", pos, l.len)
	}
	pos = min(pos, l.len)
	prefix, suffix := New[T](), New[T]()
	prefix.Grow(pos)
	suffix.Grow(l.len - pos)
	for n := 0; n < pos; n++ {
		v, _ := l.PopHead()
		prefix.PushTail(v)
	}
	for v := range l.Drain() {
		suffix.PushTail(v)
	}
	*l = List[T]{}
	return prefix, suffix, nil
}

// CheckInvariants validates the free stack, the anchors and the occupancy
// bitmap.
func (l *List[T]) CheckInvariants() error {
	onFree := make([]bool, len(l.slots))
	for i := range l.free.All() {
		if i < 0 || i >= len(l.slots) {
			return fmt.Errorf("free index %d outside buffer of %d slots", i, len(l.slots))
		}
		if l.occupied.Contains(i) {
			return fmt.Errorf("free index %d holds a value", i)
		}
		if onFree[i] {
			return fmt.Errorf("free index %d listed twice", i)
		}
		onFree[i] = true
	}
	if got := l.occupied.Count(); got != l.len {
		return fmt.Errorf("bitmap has %d occupied slots, length is %d", got, l.len)
	}
	if got := l.occupied.Count() + l.free.Len(); got != len(l.slots) {
		return fmt.Errorf("%d occupied and free slots, buffer has %d", got, len(l.slots))
	}
	if l.len == 0 {
		return nil
	}
	if first, _ := l.occupied.Minimum(); Index(first) != l.head {
		return fmt.Errorf("head %d, first occupied slot is %d", l.head, first)
	}
	if last, _ := l.occupied.Maximum(); Index(last) != l.tail {
		return fmt.Errorf("tail %d, last occupied slot is %d", l.tail, last)
	}
	if int(l.tail) >= len(l.slots) {
		return fmt.Errorf("tail %d outside buffer of %d slots", l.tail, len(l.slots))
	}
	return nil
}

// Clear removes every element and releases the buffer.
func (l *List[T]) Clear() {
	*l = List[T]{}
}

// Extend appends each element of seq at the tail, preserving its order.
func (l *List[T]) Extend(seq iter.Seq[T]) {
	for v := range seq {
		l.PushTail(v)
	}
}

// ExtendN is Extend for a seq known to yield n elements. It reserves room
// for them first.
func (l *List[T]) ExtendN(n int, seq iter.Seq[T]) {
	l.Grow(n)
	l.Extend(seq)
}

// Collect returns a list holding the elements of seq in order.
func Collect[T any](seq iter.Seq[T]) *List[T] {
	l := New[T]()
	l.Extend(seq)
	return l
}

// FromSlice returns a list holding vs in order.
func FromSlice[T any](vs []T) *List[T] {
	l := New[T]()
	l.Grow(len(vs))
	for _, v := range vs {
		l.PushTail(v)
	}
	return l
}
