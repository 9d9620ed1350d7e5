//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

//
// Shared plumbing for the built-in function families in the
// builtins_*.go files: the def() registration helper and the small
// numeric-tower helpers every arithmetic/comparison built-in needs.
// Division-by-zero and integer overflow both resolve per spec.md §9:
// division by zero raises InvalidArgument, integer overflow is left
// untrapped (Go's wraparound int64 semantics apply), matching the
// "don't pay for a bignum tower this language doesn't have" choice
// spec.md's Non-goals already make for the numeric stack.
//

import "fmt"

// def registers a built-in named name in env, checked to take between
// minArgs and maxArgs arguments (-1 for unchecked/unbounded).
func def(env *Environment, name string, minArgs, maxArgs int, fn BuiltInFunc) {
	env.DefineOrReplace(Symbol(name), &BuiltIn{Name: name, Fn: fn, MinArgs: minArgs, MaxArgs: maxArgs})
}

func isNumber(v interface{}) bool {
	switch v.(type) {
	case int64, float64:
		return true
	}
	return false
}

func asFloat(v interface{}) (float64, bool) {
	switch x := v.(type) {
	case int64:
		return float64(x), true
	case float64:
		return x, true
	}
	return 0, false
}

func checkNumber(v interface{}, op string) *LispError {
	if !isNumber(v) {
		return NewLispError(EType, fmt.Sprintf("%s: %s is not a number", op, stringify(v)))
	}
	return nil
}
