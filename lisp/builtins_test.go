//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

//
// Built-in function tests using testify's assertion helpers, in the
// style of Tangerg-lynx/pkg's test suite; the rest of this package's
// tests stick to the teacher's plain table-driven `testing` style, but
// these exercise testify directly as a grounded third-party dependency.
//

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArithmeticBuiltins(t *testing.T) {
	cases := []struct {
		input    string
		expected interface{}
	}{
		{"(+ 1 2 3)", int64(6)},
		{"(+)", int64(0)},
		{"(* 2 3 4)", int64(24)},
		{"(*)", int64(1)},
		{"(- 10 3 2)", int64(5)},
		{"(- 5)", int64(-5)},
		{"(/ 10 2)", 5.0},
		{"(+ 1 1.5)", 2.5},
		{"(quotient 7 2)", int64(3)},
		{"(remainder 7 2)", int64(1)},
		{"(modulo -7 2)", int64(1)},
	}
	for _, c := range cases {
		result, err := Interpret(c.input)
		require.Nil(t, err, "input %q", c.input)
		assert.Equal(t, c.expected, result, "input %q", c.input)
	}
}

func TestArithmeticDivisionByZero(t *testing.T) {
	_, err := Interpret("(/ 1 0)")
	require.Error(t, err)
	assert.Equal(t, EInvalidArgument, err.Kind)
}

func TestComparisonBuiltins(t *testing.T) {
	cases := map[string]bool{
		"(< 1 2 3)":  true,
		"(< 1 3 2)":  false,
		"(<= 1 1 2)": true,
		"(= 1 1 1)":  true,
		"(> 3 2 1)":  true,
		"(>= 3 3 2)": true,
	}
	for input, expected := range cases {
		result, err := Interpret(input)
		require.Nil(t, err, "input %q", input)
		assert.Equal(t, expected, result, "input %q", input)
	}
}

func TestListBuiltins(t *testing.T) {
	cases := map[string]string{
		"(car '(1 2 3))":         "1",
		"(cdr '(1 2 3))":         "(2 3)",
		"(cons 1 '(2 3))":        "(1 2 3)",
		"(list 1 2 3)":           "(1 2 3)",
		"(length '(1 2 3))":      "3",
		"(append '(1 2) '(3 4))": "(1 2 3 4)",
		"(reverse '(1 2 3))":     "(3 2 1)",
		"(cadr '(1 2 3))":        "2",
		"(caddr '(1 2 3))":       "3",
		"(map (lambda (x) (* x x)) '(1 2 3))": "(1 4 9)",
	}
	for input, expected := range cases {
		result, err := Interpret(input)
		require.Nil(t, err, "input %q", input)
		assert.Equal(t, expected, stringify(result), "input %q", input)
	}
}

func TestEquivalenceBuiltins(t *testing.T) {
	assertTrue := []string{
		"(eq? 'a 'a)",
		"(eq? 1 1)",
		"(equal? '(1 2) '(1 2))",
		"(null? '())",
		"(pair? '(1))",
		"(not #f)",
	}
	for _, input := range assertTrue {
		result, err := Interpret(input)
		require.Nil(t, err, "input %q", input)
		assert.Equal(t, true, result, "input %q", input)
	}
}

func TestStringBuiltins(t *testing.T) {
	result, err := Interpret(`(string-length "hello")`)
	require.Nil(t, err)
	assert.Equal(t, int64(5), result)

	result, err = Interpret(`(string-append "foo" "bar")`)
	require.Nil(t, err)
	assert.Equal(t, "foobar", result.(*SchemeString).String())

	result, err = Interpret(`
(define s (make-string 3 #\x))
(string-set! s 1 #\y)
s
`)
	require.Nil(t, err)
	assert.Equal(t, "xyx", result.(*SchemeString).String())
}
