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

import (
	"fmt"

	"github.com/YanochkaSp/Algorithms/pkg/refs"
)

// logReferences enables per-node reference event logging while leak
// checking is on.
var logReferences = false

// SetLogReferences toggles logging of every IncRef and DecRef on list
// nodes. Events are only logged when leak checking is enabled.
func SetLogReferences(v bool) {
	logReferences = v
}

// Node is a reference-counted list node. A *Node returned by this package
// is a handle: it carries one reference that the holder must drop with
// DecRef.
type Node[T any] struct {
	refs.Refs

	value T

	// next holds one reference on the successor.
	next *Node[T]
}

// newNode returns a node with one reference. next's reference is moved
// into the new node.
func newNode[T any](v T, next *Node[T]) *Node[T] {
	n := &Node[T]{value: v, next: next}
	n.InitRefs()
	refs.Register(n)
	return n
}

// RefType implements refs.CheckedObject.RefType.
func (n *Node[T]) RefType() string {
	return fmt.Sprintf("rclist.Node[%T]", n.value)
}

// LeakMessage implements refs.CheckedObject.LeakMessage.
func (n *Node[T]) LeakMessage() string {
	return fmt.Sprintf("[%s %p] reference count of %d instead of 0", n.RefType(), n, n.ReadRefs())
}

// LogRefs implements refs.CheckedObject.LogRefs.
func (n *Node[T]) LogRefs() bool {
	return logReferences
}

// Value returns the node's value.
func (n *Node[T]) Value() T {
	return n.value
}

// Next returns a new handle on the successor, or nil at the end of the
// chain.
func (n *Node[T]) Next() *Node[T] {
	next := n.next
	if next != nil {
		next.IncRef()
	}
	return next
}

// SetNext makes succ the successor of n. n takes its own reference on
// succ; the caller keeps its handle. The reference on the previous
// successor is dropped.
//
// SetNext bypasses the bookkeeping of any list n belongs to. Lists with
// invariant checks enabled will report the damage on their next
// structural operation.
func (n *Node[T]) SetNext(succ *Node[T]) {
	if succ != nil {
		succ.IncRef()
	}
	old := n.next
	n.next = succ
	if old != nil {
		old.DecRef()
	}
}

// IncRef implements refs.RefCounter.IncRef.
func (n *Node[T]) IncRef() {
	v := n.Refs.IncRef()
	refs.LogIncRef(n, v)
}

// DecRef implements refs.RefCounter.DecRef.
//
// Destroying a node drops its reference on the successor. The resulting
// chain of destructions runs in a loop, so releasing a long uniquely held
// chain does not grow the stack.
func (n *Node[T]) DecRef() {
	for n != nil {
		var next *Node[T]
		v := n.Refs.DecRef(func() {
			refs.Unregister(n)
			next = n.next
			n.next = nil
		})
		refs.LogDecRef(n, v)
		n = next
	}
}

// Same reports whether a and b are handles on the same node.
func Same[T any](a, b *Node[T]) bool {
	return a == b
}
