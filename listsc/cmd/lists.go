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

package cmd

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/YanochkaSp/Algorithms/pkg/arenalist"
	"github.com/YanochkaSp/Algorithms/pkg/ownlist"
	"github.com/YanochkaSp/Algorithms/pkg/rclist"
	"github.com/YanochkaSp/Algorithms/pkg/veclist"
)

// Variant names one list implementation.
type Variant string

// Supported variants.
const (
	Own   Variant = "own"
	RC    Variant = "rc"
	Arena Variant = "arena"
	Vec   Variant = "vec"
)

var allVariants = []Variant{Own, RC, Arena, Vec}

// ParseVariants parses "all" or a comma separated list of variant names.
func ParseVariants(s string) ([]Variant, error) {
	if s == "" || s == "all" {
		return slices.Clone(allVariants), nil
	}
	var vs []Variant
	for _, name := range strings.Split(s, ",") {
		v := Variant(strings.TrimSpace(name))
		if !slices.Contains(allVariants, v) {
			return nil, fmt.Errorf("invalid list variant %q, must be 'all' or one of %v", name, allVariants)
		}
		if !slices.Contains(vs, v) {
			vs = append(vs, v)
		}
	}
	return vs, nil
}

// supportsCycles returns true if the variant can install a back edge.
func (v Variant) supportsCycles() bool {
	return v == RC || v == Arena
}

var errNoCycles = errors.New("variant does not support cycles")

// intList drives any list variant from the commands. Only lists of the
// same variant may be joined.
type intList interface {
	pushHead(v int)
	// extend pushes each of vs at the head in order.
	extend(vs []int)
	popHead() (int, bool, error)
	appendAt(pos, v int) error
	removeAt(pos int) (int, error)
	join(other intList) error
	divideAt(pos int) (intList, intList, error)
	makeCycleAt(pos int) error
	breakCycle() error
	hasCycle() (bool, error)
	values() []int
	length() int
	check() error
	release()
}

// newList returns an empty list of variant v. With checks set, lists
// validate themselves after structural operations.
func newList(v Variant, checks bool) intList {
	switch v {
	case Own:
		return &ownInts{l: ownlist.New[int]()}
	case RC:
		l := rclist.New[int]()
		l.SetInvariantChecks(checks)
		return &rcInts{l: l}
	case Arena:
		return &arenaInts{l: arenalist.New[int]()}
	case Vec:
		return &vecInts{l: veclist.New[int]()}
	default:
		panic(fmt.Sprintf("unknown list variant %q", v))
	}
}

type ownInts struct {
	l *ownlist.List[int]
}

func (o *ownInts) pushHead(v int) { o.l.PushHead(v) }
func (o *ownInts) extend(vs []int) { o.l.Extend(slices.Values(vs)) }

func (o *ownInts) popHead() (int, bool, error) {
	v, ok := o.l.PopHead()
	return v, ok, nil
}

func (o *ownInts) appendAt(pos, v int) error { return o.l.AppendAt(pos, v) }
func (o *ownInts) removeAt(pos int) (int, error) { return o.l.RemoveAt(pos) }
func (o *ownInts) makeCycleAt(int) error { return errNoCycles }
func (o *ownInts) breakCycle() error { return errNoCycles }
func (o *ownInts) hasCycle() (bool, error) { return false, errNoCycles }
func (o *ownInts) values() []int { return slices.Collect(o.l.All()) }
func (o *ownInts) length() int { return o.l.Len() }
func (o *ownInts) check() error { return nil }
func (o *ownInts) release() { o.l.Clear() }
func (o *ownInts) join(other intList) error { o.l.Join(other.(*ownInts).l); return nil }

func (o *ownInts) divideAt(pos int) (intList, intList, error) {
	a, b, err := o.l.DivideAt(pos)
	if err != nil {
		return nil, nil, err
	}
	return &ownInts{l: a}, &ownInts{l: b}, nil
}

type rcInts struct {
	l *rclist.List[int]
}

func (r *rcInts) pushHead(v int) { r.l.PushHead(v) }
func (r *rcInts) extend(vs []int) { r.l.Extend(slices.Values(vs)) }
func (r *rcInts) popHead() (int, bool, error) { return r.l.PopHead() }
func (r *rcInts) appendAt(pos, v int) error { return r.l.AppendAt(pos, v) }
func (r *rcInts) removeAt(pos int) (int, error) { return r.l.RemoveAt(pos) }
func (r *rcInts) makeCycleAt(pos int) error { return r.l.MakeCycleAt(pos) }
func (r *rcInts) breakCycle() error { r.l.BreakCycle(); return nil }
func (r *rcInts) hasCycle() (bool, error) { return r.l.HasCycle(), nil }
func (r *rcInts) values() []int { return slices.Collect(r.l.All()) }
func (r *rcInts) length() int { return r.l.Len() }
func (r *rcInts) release() { r.l.Release() }

// check is a no-op: shared lists validate themselves when invariant checks
// are enabled.
func (r *rcInts) check() error { return nil }

func (r *rcInts) join(other intList) error {
	_, err := r.l.Join(other.(*rcInts).l)
	return err
}

func (r *rcInts) divideAt(pos int) (intList, intList, error) {
	a, b, err := r.l.DivideAt(pos)
	if err != nil {
		return nil, nil, err
	}
	return &rcInts{l: a}, &rcInts{l: b}, nil
}

type arenaInts struct {
	l *arenalist.List[int]
}

func (a *arenaInts) pushHead(v int) { a.l.PushHead(v) }
func (a *arenaInts) extend(vs []int) { a.l.ExtendN(len(vs), slices.Values(vs)) }

func (a *arenaInts) popHead() (int, bool, error) {
	v, ok := a.l.PopHead()
	return v, ok, nil
}

func (a *arenaInts) appendAt(pos, v int) error { return a.l.AppendAt(pos, v) }
func (a *arenaInts) removeAt(pos int) (int, error) { return a.l.RemoveAt(pos) }
func (a *arenaInts) makeCycleAt(pos int) error { return a.l.MakeCycleAt(pos) }
func (a *arenaInts) breakCycle() error { a.l.BreakCycle(); return nil }
func (a *arenaInts) hasCycle() (bool, error) { return a.l.HasCycle(), nil }
func (a *arenaInts) values() []int { return slices.Collect(a.l.All()) }
func (a *arenaInts) length() int { return a.l.Len() }
func (a *arenaInts) check() error { return a.l.CheckInvariants() }
func (a *arenaInts) release() { a.l.Clear() }

func (a *arenaInts) join(other intList) error {
	_, err := a.l.Join(other.(*arenaInts).l)
	return err
}

func (a *arenaInts) divideAt(pos int) (intList, intList, error) {
	x, y, err := a.l.DivideAt(pos)
	if err != nil {
		return nil, nil, err
	}
	return &arenaInts{l: x}, &arenaInts{l: y}, nil
}

type vecInts struct {
	l *veclist.List[int]
}

func (v *vecInts) pushHead(x int) { v.l.PushHead(x) }

// extend appends vs reversed when the list is empty, which gives the same
// order as pushing each at the head.
func (v *vecInts) extend(vs []int) {
	if !v.l.Empty() {
		for _, x := range vs {
			v.l.PushHead(x)
		}
		return
	}
	v.l.ExtendN(len(vs), func(yield func(int) bool) {
		for _, x := range slices.Backward(vs) {
			if !yield(x) {
				return
			}
		}
	})
}

func (v *vecInts) popHead() (int, bool, error) {
	x, ok := v.l.PopHead()
	return x, ok, nil
}

func (v *vecInts) appendAt(pos, x int) error { return v.l.AppendAt(pos, x) }
func (v *vecInts) removeAt(pos int) (int, error) { return v.l.RemoveAt(pos) }
func (v *vecInts) makeCycleAt(int) error { return errNoCycles }
func (v *vecInts) breakCycle() error { return errNoCycles }
func (v *vecInts) hasCycle() (bool, error) { return false, errNoCycles }
func (v *vecInts) values() []int { return slices.Collect(v.l.All()) }
func (v *vecInts) length() int { return v.l.Len() }
func (v *vecInts) check() error { return v.l.CheckInvariants() }
func (v *vecInts) release() { v.l.Clear() }
func (v *vecInts) join(other intList) error { v.l.Join(other.(*vecInts).l); return nil }

func (v *vecInts) divideAt(pos int) (intList, intList, error) {
	a, b, err := v.l.DivideAt(pos)
	if err != nil {
		return nil, nil, err
	}
	return &vecInts{l: a}, &vecInts{l: b}, nil
}
