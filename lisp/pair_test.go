//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

import "testing"

func TestPairBasics(t *testing.T) {
	p := Cons(int64(1), Cons(int64(2), TheEmptyList))
	if p.First() != int64(1) {
		t.Errorf("expected car 1, got %v", p.First())
	}
	if p.Len() != 2 {
		t.Errorf("expected length 2, got %d", p.Len())
	}
	if p.String() != "(1 2)" {
		t.Errorf("expected '(1 2)', got %q", p.String())
	}
}

func TestPairDotted(t *testing.T) {
	p := Cons(int64(1), int64(2))
	if p.String() != "(1 . 2)" {
		t.Errorf("expected '(1 . 2)', got %q", p.String())
	}
	if IsProperList(p) {
		t.Error("expected dotted pair not to be a proper list")
	}
}

func TestPairReverse(t *testing.T) {
	p := Cons(int64(1), Cons(int64(2), Cons(int64(3), TheEmptyList)))
	r := p.Reverse()
	if r.String() != "(3 2 1)" {
		t.Errorf("expected '(3 2 1)', got %q", r.String())
	}
}

func TestCxr(t *testing.T) {
	p := List(int64(1), int64(2), int64(3))
	if Cxr("cadr", p) != int64(2) {
		t.Errorf("cadr: expected 2, got %v", Cxr("cadr", p))
	}
	if Cxr("caddr", p) != int64(3) {
		t.Errorf("caddr: expected 3, got %v", Cxr("caddr", p))
	}
	if Cxr("cddr", p) == nil {
		t.Error("cddr: expected a pair, got nil")
	}
}

func TestListToSliceAndBack(t *testing.T) {
	vals := []interface{}{int64(1), int64(2), int64(3)}
	l := SliceToList(vals)
	back := ListToSlice(l)
	if len(back) != 3 {
		t.Fatalf("expected 3 elements, got %d", len(back))
	}
	for i, v := range back {
		if v != vals[i] {
			t.Errorf("element %d: expected %v, got %v", i, vals[i], v)
		}
	}
}

func TestIsProperList(t *testing.T) {
	if !IsProperList(TheEmptyList) {
		t.Error("expected the empty list to be a proper list")
	}
	if !IsProperList(List(int64(1), int64(2))) {
		t.Error("expected (1 2) to be a proper list")
	}
	if IsProperList(int64(5)) {
		t.Error("expected an atom not to be a proper list")
	}
}
