//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

import "testing"

func TestStringifyAtoms(t *testing.T) {
	cases := []struct {
		val      interface{}
		expected string
	}{
		{int64(42), "42"},
		{float64(3.5), "3.5"},
		{true, "#t"},
		{false, "#f"},
		{Symbol("foo"), "foo"},
		{Character(' '), "#\\space"},
		{Character('\n'), "#\\newline"},
		{Character('x'), "#\\x"},
		{TheEmptyList, "()"},
		{NewSchemeString(`she said "hi"`), `"she said \"hi\""`},
	}
	for _, c := range cases {
		if got := Stringify(c.val); got != c.expected {
			t.Errorf("Stringify(%v): expected %q, got %q", c.val, c.expected, got)
		}
	}
}

// formatFloat must always show a decimal point, even in scientific
// notation.
func TestStringifyFloatAlwaysHasDecimalPoint(t *testing.T) {
	cases := []struct {
		val      float64
		expected string
	}{
		{1.0, "1."},
		{1.5, "1.5"},
		{0.000001, "1.e-06"},
	}
	for _, c := range cases {
		if got := formatFloat(c.val); got != c.expected {
			t.Errorf("formatFloat(%v): expected %q, got %q", c.val, c.expected, got)
		}
	}
}

func TestStringifyPair(t *testing.T) {
	p := List(int64(1), int64(2), int64(3))
	if got := Stringify(p); got != "(1 2 3)" {
		t.Errorf("expected '(1 2 3)', got %q", got)
	}
	dotted := Cons(int64(1), int64(2))
	if got := Stringify(dotted); got != "(1 . 2)" {
		t.Errorf("expected '(1 . 2)', got %q", got)
	}
}
