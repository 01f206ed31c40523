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
	"errors"
	"math/rand"
	"os"
	"slices"
	"testing"

	"github.com/YanochkaSp/Algorithms/pkg/errors/listerr"
	"github.com/YanochkaSp/Algorithms/pkg/refs"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestMain(m *testing.M) {
	refs.SetLeakMode(refs.LeaksLogWarning)
	os.Exit(m.Run())
}

// checkLeaks fails the test if any node created so far is still alive.
func checkLeaks(t *testing.T) {
	t.Helper()
	if n := refs.DoRepeatedLeakCheck(); n != 0 {
		t.Errorf("%d nodes leaked", n)
	}
}

func pushed(vs ...int) *List[int] {
	l := New[int]()
	for _, v := range vs {
		l.PushHead(v)
	}
	return l
}

func checkList(t *testing.T, what string, l *List[int], want []int) {
	t.Helper()
	if diff := cmp.Diff(want, slices.Collect(l.All()), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("%s: contents mismatch (-want +got):\n%s", what, diff)
	}
	if got := l.Len(); got != len(want) {
		t.Errorf("%s: Len() = %d, want %d", what, got, len(want))
	}
}

func TestPushPop(t *testing.T) {
	defer checkLeaks(t)
	l := pushed(1, 2, 3)
	defer l.Release()
	checkList(t, "after push", l, []int{3, 2, 1})
	for _, want := range []int{3, 2} {
		v, ok, err := l.PopHead()
		if err != nil || !ok || v != want {
			t.Fatalf("PopHead() = (%d, %t, %v), want (%d, true, nil)", v, ok, err, want)
		}
	}
	checkList(t, "after pop", l, []int{1})
	l.PopHead()
	if v, ok, err := l.PopHead(); ok || err != nil {
		t.Errorf("PopHead() on empty list = (%d, %t, %v), want (0, false, nil)", v, ok, err)
	}
}

func TestJoin(t *testing.T) {
	defer checkLeaks(t)
	a, b := pushed(1, 2), pushed(3, 4)
	defer a.Release()
	j, err := a.Join(b)
	if err != nil {
		t.Fatalf("Join: %v", err)
	}
	checkList(t, "joined", j, []int{2, 1, 4, 3})
	checkList(t, "consumed", b, nil)

	e := New[int]()
	defer e.Release()
	if _, err := e.Join(pushed(5)); err != nil {
		t.Fatalf("Join into empty: %v", err)
	}
	checkList(t, "empty left", e, []int{5})
}

func TestDivideAt(t *testing.T) {
	defer checkLeaks(t)
	for _, tc := range []struct {
		pos         int
		left, right []int
	}{
		{pos: 0, left: nil, right: []int{5, 4, 3, 2, 1}},
		{pos: 3, left: []int{5, 4, 3}, right: []int{2, 1}},
		{pos: 7, left: []int{5, 4, 3, 2, 1}, right: nil},
	} {
		l := pushed(1, 2, 3, 4, 5)
		a, b, err := l.DivideAt(tc.pos)
		if err != nil {
			t.Fatalf("DivideAt(%d): %v", tc.pos, err)
		}
		checkList(t, "left", a, tc.left)
		checkList(t, "right", b, tc.right)
		checkList(t, "divided", l, nil)
		a.Release()
		b.Release()
	}
	if _, _, err := New[int]().DivideAt(1); !errors.Is(err, listerr.ErrEmptyList) {
		t.Errorf("DivideAt on empty list: got %v, want ErrEmptyList", err)
	}
}

func TestAppendRemove(t *testing.T) {
	defer checkLeaks(t)
	l := pushed(1, 2, 3)
	defer l.Release()
	if err := l.AppendAt(1, 9); err != nil {
		t.Fatalf("AppendAt(1, 9): %v", err)
	}
	checkList(t, "appended", l, []int{3, 9, 2, 1})
	if err := l.AppendAt(5, 0); !errors.Is(err, listerr.ErrPositionOutOfRange) {
		t.Errorf("AppendAt(5): got %v, want ErrPositionOutOfRange", err)
	}
	l.PushHead(4)
	if _, err := l.RemoveAt(1); err != nil {
		t.Fatalf("RemoveAt(1): %v", err)
	}
	checkList(t, "before tail removal", l, []int{4, 9, 2, 1})
	if v, err := l.RemoveAt(3); err != nil || v != 1 {
		t.Fatalf("RemoveAt(3) = (%d, %v), want (1, nil)", v, err)
	}
	checkList(t, "tail removed", l, []int{4, 9, 2})
	if _, err := l.RemoveAt(3); !errors.Is(err, listerr.ErrPositionOutOfRange) {
		t.Errorf("RemoveAt(3): got %v, want ErrPositionOutOfRange", err)
	}
}

func TestMakeCycle(t *testing.T) {
	defer checkLeaks(t)
	l := pushed(1, 2, 3, 4)
	defer l.Release()
	if l.HasCycle() {
		t.Fatalf("HasCycle() = true before MakeCycleAt")
	}
	if err := l.MakeCycleAt(1); err != nil {
		t.Fatalf("MakeCycleAt(1): %v", err)
	}
	if !l.HasCycle() {
		t.Fatalf("HasCycle() = false after MakeCycleAt")
	}
	tail, head := l.Node(3), l.Node(0)
	next := tail.Next()
	if !Same(next, head) {
		t.Errorf("tail successor is not the head")
	}
	for _, n := range []*Node[int]{tail, head, next} {
		n.DecRef()
	}
	checkList(t, "cyclic", l, []int{4, 3, 2, 1})

	if _, _, err := l.PopHead(); !errors.Is(err, listerr.ErrUniqueOwnership) {
		t.Errorf("PopHead on back edge target: got %v, want ErrUniqueOwnership", err)
	}
	if err := l.AppendAt(1, 0); !errors.Is(err, listerr.ErrCycleDetected) {
		t.Errorf("AppendAt on cyclic list: got %v, want ErrCycleDetected", err)
	}
	if _, _, err := l.DivideAt(2); !errors.Is(err, listerr.ErrCycleDetected) {
		t.Errorf("DivideAt on cyclic list: got %v, want ErrCycleDetected", err)
	}
	if err := l.MakeCycleAt(2); !errors.Is(err, listerr.ErrCycleDetected) {
		t.Errorf("second MakeCycleAt: got %v, want ErrCycleDetected", err)
	}

	l.BreakCycle()
	if l.HasCycle() {
		t.Errorf("HasCycle() = true after BreakCycle")
	}
	if v, ok, err := l.PopHead(); err != nil || !ok || v != 4 {
		t.Errorf("PopHead() = (%d, %t, %v), want (4, true, nil)", v, ok, err)
	}
}

func TestMakeCycleErrors(t *testing.T) {
	defer checkLeaks(t)
	if err := New[int]().MakeCycleAt(1); !errors.Is(err, listerr.ErrEmptyList) {
		t.Errorf("MakeCycleAt on empty list: got %v, want ErrEmptyList", err)
	}
	l := pushed(1, 2)
	defer l.Release()
	for _, pos := range []int{0, 3} {
		if err := l.MakeCycleAt(pos); !errors.Is(err, listerr.ErrPositionOutOfRange) {
			t.Errorf("MakeCycleAt(%d): got %v, want ErrPositionOutOfRange", pos, err)
		}
	}
}

func TestReleaseCyclic(t *testing.T) {
	defer checkLeaks(t)
	l := pushed(1, 2, 3, 4, 5)
	if err := l.MakeCycleAt(3); err != nil {
		t.Fatalf("MakeCycleAt(3): %v", err)
	}
	l.Release()
	if !l.Empty() || l.Cyclic() {
		t.Errorf("Release left Empty() = %t, Cyclic() = %t", l.Empty(), l.Cyclic())
	}
}

func TestPopHeadShared(t *testing.T) {
	defer checkLeaks(t)
	l := pushed(1, 2, 3)
	defer l.Release()

	h := l.Node(0)
	if _, _, err := l.PopHead(); !errors.Is(err, listerr.ErrUniqueOwnership) {
		t.Errorf("PopHead with caller handle: got %v, want ErrUniqueOwnership", err)
	}
	checkList(t, "unchanged", l, []int{3, 2, 1})
	h.DecRef()

	it := l.Nodes()
	if _, _, err := l.PopHead(); !errors.Is(err, listerr.ErrUniqueOwnership) {
		t.Errorf("PopHead with live iterator: got %v, want ErrUniqueOwnership", err)
	}
	it.Close()
	if v, _, err := l.PopHead(); err != nil || v != 3 {
		t.Errorf("PopHead() = (%d, %v), want (3, nil)", v, err)
	}
}

func TestPopHeadCopy(t *testing.T) {
	defer checkLeaks(t)
	l := New[[]int]()
	defer l.Release()
	l.PushHead([]int{1})
	l.PushHead([]int{2, 2})

	h := l.Node(0)
	v, ok, err := l.PopHeadCopy()
	if err != nil || !ok {
		t.Fatalf("PopHeadCopy() = (%v, %t, %v)", v, ok, err)
	}
	v[0] = 99
	if diff := cmp.Diff([]int{2, 2}, h.Value()); diff != "" {
		t.Errorf("copy aliases the shared node (-want +got):\n%s", diff)
	}
	if l.Len() != 1 {
		t.Errorf("Len() = %d, want 1", l.Len())
	}
	// The popped node keeps its successor while it is held.
	next, front := h.Next(), l.Node(0)
	if !Same(next, front) {
		t.Errorf("popped node lost its successor")
	}
	next.DecRef()
	front.DecRef()
	h.DecRef()

	v, _, err = l.PopHeadCopy()
	if err != nil {
		t.Fatalf("PopHeadCopy: %v", err)
	}
	if diff := cmp.Diff([]int{1}, v); diff != "" {
		t.Errorf("unshared pop mismatch (-want +got):\n%s", diff)
	}
}

func TestNodeIterSurvivesRemoval(t *testing.T) {
	defer checkLeaks(t)
	l := pushed(1, 2, 3)
	defer l.Release()

	it := l.Nodes()
	defer it.Close()
	n, ok := it.Next()
	if !ok || n.Value() != 3 {
		t.Fatalf("first Next() = %v, %t", n, ok)
	}
	if _, err := l.RemoveAt(0); err != nil {
		t.Fatalf("RemoveAt(0): %v", err)
	}
	got := []int{n.Value()}
	for n, ok := it.Next(); ok; n, ok = it.Next() {
		got = append(got, n.Value())
	}
	if diff := cmp.Diff([]int{3, 2, 1}, got); diff != "" {
		t.Errorf("iterator mismatch (-want +got):\n%s", diff)
	}
	checkList(t, "list", l, []int{2, 1})
}

func TestInvariantChecks(t *testing.T) {
	defer checkLeaks(t)
	l := pushed(1, 2, 3)
	defer l.Release()
	l.SetInvariantChecks(true)

	tail, head := l.Node(2), l.Node(0)
	tail.SetNext(head)
	if !l.HasCycle() {
		t.Fatalf("HasCycle() = false after SetNext")
	}
	func() {
		defer func() {
			if recover() == nil {
				t.Errorf("PushHead on a list with an unintended cycle did not panic")
			}
		}()
		l.PushHead(4)
	}()
	tail.SetNext(nil)
	tail.DecRef()
	head.DecRef()

	l.PushHead(4)
	checkList(t, "repaired", l, []int{4, 3, 2, 1})
}

func TestDrainRoundTrip(t *testing.T) {
	defer checkLeaks(t)
	l := Collect(slices.Values([]int{0, 1, 2, 3}))
	got := slices.Collect(l.Drain())
	if diff := cmp.Diff([]int{3, 2, 1, 0}, got); diff != "" {
		t.Errorf("drain mismatch (-want +got):\n%s", diff)
	}
	if !l.Empty() {
		t.Errorf("Drain left %d nodes", l.Len())
	}
}

func TestRandomOps(t *testing.T) {
	defer checkLeaks(t)
	rng := rand.New(rand.NewSource(1))
	l := New[int]()
	defer l.Release()
	l.SetInvariantChecks(true)
	var model []int
	for i := 0; i < 2000; i++ {
		switch rng.Intn(4) {
		case 0:
			l.PushHead(i)
			model = slices.Insert(model, 0, i)
		case 1:
			v, ok, err := l.PopHead()
			if err != nil {
				t.Fatalf("op %d: PopHead: %v", i, err)
			}
			if ok {
				if v != model[0] {
					t.Fatalf("op %d: PopHead = %d, want %d", i, v, model[0])
				}
				model = model[1:]
			}
		case 2:
			pos := rng.Intn(len(model) + 1)
			if err := l.AppendAt(pos, i); err != nil {
				t.Fatalf("op %d: AppendAt(%d): %v", i, pos, err)
			}
			model = slices.Insert(model, pos, i)
		case 3:
			if len(model) == 0 {
				continue
			}
			pos := rng.Intn(len(model))
			v, err := l.RemoveAt(pos)
			if err != nil || v != model[pos] {
				t.Fatalf("op %d: RemoveAt(%d) = (%d, %v), want (%d, nil)", i, pos, v, err, model[pos])
			}
			model = slices.Delete(model, pos, pos+1)
		}
	}
	checkList(t, "final", l, model)
}

func TestLargeList(t *testing.T) {
	defer refs.SetLeakMode(refs.GetLeakMode())
	refs.SetLeakMode(refs.NoLeakChecking)

	const n = 1_000_000
	l := New[int]()
	for i := 0; i < n; i++ {
		l.PushHead(i)
	}
	want := n - 1
	for v := range l.All() {
		if v != want {
			t.Fatalf("element = %d, want %d", v, want)
		}
		want--
	}
	l.Release()
	if !l.Empty() {
		t.Errorf("Release left %d nodes", l.Len())
	}
}
