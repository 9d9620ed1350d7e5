//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

import (
	"strings"
	"testing"
)

// verifyInterpret takes a map of inputs to expected stringified
// outputs, running each input through Interpret and checking the
// result.
func verifyInterpret(t *testing.T, inputs map[string]string) {
	for k, v := range inputs {
		result, err := Interpret(k)
		if err != nil {
			t.Errorf("Interpret() failed for %q with: %v", k, err)
			continue
		}
		str := stringify(result)
		if str != v {
			t.Errorf("Interpret() yielded wrong result for %q; expected %q but got %q", k, v, str)
		}
	}
}

// verifyInterpretError takes a map of inputs to expected error
// message substrings, ensuring each input fails the way expected.
func verifyInterpretError(t *testing.T, inputs map[string]string) {
	for k, v := range inputs {
		_, err := Interpret(k)
		if err == nil {
			t.Fatalf("Interpret() should have failed for %q", k)
		}
		str := err.ErrorMessage()
		if !strings.Contains(str, v) {
			t.Errorf("Interpret() yielded wrong error for %q; expected to contain %q but got %q", k, v, str)
		}
	}
}

func TestInterpretSelfEvaluating(t *testing.T) {
	verifyInterpret(t, map[string]string{
		"123":     "123",
		"1.5":     "1.5",
		"#t":      "#t",
		"#f":      "#f",
		`"hi"`:    `"hi"`,
		"'foo":    "foo",
		"'(1 2)":  "(1 2)",
		"'(1 . 2)": "(1 . 2)",
	})
}

func TestInterpretIfTrue(t *testing.T) {
	result, err := Interpret(`(if #t 1 2)`)
	if err != nil {
		t.Fatalf("Interpret() failed: %v", err)
	}
	if result != int64(1) {
		t.Errorf("expected 1, got %v", result)
	}
}

func TestInterpretIfFalse(t *testing.T) {
	result, err := Interpret(`(if #f 1 2)`)
	if err != nil {
		t.Fatalf("Interpret() failed: %v", err)
	}
	if result != int64(2) {
		t.Errorf("expected 2, got %v", result)
	}
	result, err = Interpret(`(if #f 1)`)
	if err != nil {
		t.Fatalf("Interpret() failed: %v", err)
	}
	if result != TheEmptyList {
		t.Error("expected if #f with no alternate to return the empty list")
	}
}

// only #f is false; 0 and () are both truthy.
func TestInterpretTruthiness(t *testing.T) {
	verifyInterpret(t, map[string]string{
		"(if 0 'yes 'no)":   "yes",
		"(if '() 'yes 'no)": "yes",
	})
}

func TestInterpretBegin(t *testing.T) {
	result, err := Interpret(`(begin (define foo 123) (set! foo 456) foo)`)
	if err != nil {
		t.Fatalf("Interpret() failed: %v", err)
	}
	if result != int64(456) {
		t.Errorf("expected 456, got %v", result)
	}
}

func TestInterpretDefine(t *testing.T) {
	result, err := Interpret(`(begin (define foo 123) foo)`)
	if err != nil {
		t.Fatalf("Interpret() failed: %v", err)
	}
	if result != int64(123) {
		t.Errorf("expected 123, got %v", result)
	}
}

func TestInterpretDefineFunction(t *testing.T) {
	result, err := Interpret(`
(define (fact n)
  (if (= n 0) 1 (* n (fact (- n 1)))))
(fact 5)
`)
	if err != nil {
		t.Fatalf("Interpret() failed: %v", err)
	}
	if result != int64(120) {
		t.Errorf("expected 120, got %v", result)
	}
}

func TestInterpretQuote(t *testing.T) {
	result, err := Interpret(`(begin (define foo (quote foo)) foo)`)
	if err != nil {
		t.Fatalf("Interpret() failed: %v", err)
	}
	if result != Symbol("foo") {
		t.Errorf("expected symbol foo, got %v", result)
	}
	// syntactic keywords cannot be derived as values and then applied
	_, err = Interpret(`((quote if) #f 1 2)`)
	if err == nil {
		t.Fatal("Interpret() should have failed")
	}
	if !strings.Contains(err.ErrorMessage(), "is not applicable") {
		t.Error("((quote if) ...) should have failed with 'is not applicable'")
	}
}

func TestInterpretLambda(t *testing.T) {
	result, err := Interpret(`
(define fun (lambda (x) (if x 'foo 'bar)))
(fun #t)
`)
	if err != nil {
		t.Fatalf("Interpret() failed: %v", err)
	}
	if result != Symbol("foo") {
		t.Error("expected lambda 'fun' to return symbol foo")
	}
}

func TestInterpretClosureCapture(t *testing.T) {
	result, err := Interpret(`
(define (make-adder n) (lambda (x) (+ x n)))
(define add5 (make-adder 5))
(add5 10)
`)
	if err != nil {
		t.Fatalf("Interpret() failed: %v", err)
	}
	if result != int64(15) {
		t.Errorf("expected 15, got %v", result)
	}
}

func TestInterpretVariadic(t *testing.T) {
	verifyInterpret(t, map[string]string{
		"(define (f . xs) xs) (f 1 2 3)":      "(1 2 3)",
		"(define (f a . xs) xs) (f 1 2 3)":    "(2 3)",
		"(define (f a . xs) (cons a xs)) (f 1 2 3)": "(1 2 3)",
	})
}

func TestInterpretArity(t *testing.T) {
	verifyInterpretError(t, map[string]string{
		"(define (f x y) x) (f 1)": "requires exactly",
		"(define (f x y) x) (f 1 2 3)": "requires exactly",
	})
}

func TestInterpretQuasiquote(t *testing.T) {
	verifyInterpret(t, map[string]string{
		"`(1 2 3)":                      "(1 2 3)",
		"`(1 ,(+ 1 1) ,@(list 3 4) 5)":  "(1 2 3 4 5)",
		"(define x 10) `(a ,x)":         "(a 10)",
	})
}

func TestInterpretDefmacro(t *testing.T) {
	result, err := Interpret(`
(defmacro incr! (var)
  (list 'set! var (list '+ var 1)))
(define x 5)
(incr! x)
x
`)
	if err != nil {
		t.Fatalf("Interpret() failed: %v", err)
	}
	if result != int64(6) {
		t.Errorf("expected 6, got %v", result)
	}
}

func TestInterpretWhenUnless(t *testing.T) {
	verifyInterpret(t, map[string]string{
		"(when #t 1 2 3)":  "3",
		"(when #f 1 2 3)":  "()",
		"(unless #f 1 2 3)": "3",
		"(unless #t 1 2 3)": "()",
	})
}

func TestInterpretUndefinedVariable(t *testing.T) {
	verifyInterpretError(t, map[string]string{
		"undefined-name": "is not defined",
	})
}

func TestInterpretRedefine(t *testing.T) {
	verifyInterpretError(t, map[string]string{
		"(begin (define foo 1) (define foo 2))": "already defined",
	})
}
