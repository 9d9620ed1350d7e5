//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

//
// Equivalence and type predicates, grounded in the predicate family
// liswat/parser_test.go exercises indirectly through stringify, and in
// the eq?/eqv? distinction every Scheme report draws: eq? is identity
// comparison (safe for symbols, booleans, characters, and the empty
// list; implementation-defined for numbers), eqv? additionally treats
// numbers of the same exactness and value as equivalent.
//

func registerEquivalence(env *Environment) {
	def(env, "eq?", 2, 2, biEq)
	def(env, "eqv?", 2, 2, biEqv)
	def(env, "not", 1, 1, biNot)

	def(env, "pair?", 1, 1, typePredicate(func(v interface{}) bool {
		_, ok := v.(*Pair)
		return ok
	}))
	def(env, "null?", 1, 1, typePredicate(func(v interface{}) bool {
		return v == TheEmptyList
	}))
	def(env, "symbol?", 1, 1, typePredicate(func(v interface{}) bool {
		_, ok := v.(Symbol)
		return ok
	}))
	def(env, "string?", 1, 1, typePredicate(func(v interface{}) bool {
		_, ok := v.(*SchemeString)
		return ok
	}))
	def(env, "char?", 1, 1, typePredicate(func(v interface{}) bool {
		_, ok := v.(Character)
		return ok
	}))
	def(env, "boolean?", 1, 1, typePredicate(func(v interface{}) bool {
		_, ok := v.(bool)
		return ok
	}))
	def(env, "procedure?", 1, 1, typePredicate(isCallable))
	def(env, "list?", 1, 1, typePredicate(IsProperList))

	def(env, "number?", 1, 1, typePredicate(isNumber))
	def(env, "integer?", 1, 1, typePredicate(func(v interface{}) bool {
		_, ok := v.(int64)
		return ok
	}))
	def(env, "real?", 1, 1, typePredicate(isNumber))
	def(env, "rational?", 1, 1, typePredicate(isNumber))
	def(env, "complex?", 1, 1, typePredicate(isNumber))
	def(env, "exact?", 1, 1, typePredicate(func(v interface{}) bool {
		_, ok := v.(int64)
		return ok
	}))
	def(env, "inexact?", 1, 1, typePredicate(func(v interface{}) bool {
		_, ok := v.(float64)
		return ok
	}))
}

func typePredicate(pred func(interface{}) bool) BuiltInFunc {
	return func(args []interface{}) (interface{}, *LispError) {
		return pred(args[0]), nil
	}
}

func biNot(args []interface{}) (interface{}, *LispError) {
	return !isTruthy(args[0]), nil
}

// biEq implements eq?: identity for pairs, strings, and callables;
// value equality for symbols, booleans, characters, and the empty
// list; numeric value equality of like kind for numbers.
func biEq(args []interface{}) (interface{}, *LispError) {
	return eqValues(args[0], args[1]), nil
}

// biEqv implements eqv?, which in this implementation coincides with
// eq? since there are no separate boxed/unboxed number representations
// to distinguish.
func biEqv(args []interface{}) (interface{}, *LispError) {
	return eqValues(args[0], args[1]), nil
}

func eqValues(a, b interface{}) bool {
	switch x := a.(type) {
	case *Pair:
		y, ok := b.(*Pair)
		return ok && x == y
	case *SchemeString:
		y, ok := b.(*SchemeString)
		return ok && x == y
	case Symbol:
		y, ok := b.(Symbol)
		return ok && x == y
	case bool:
		y, ok := b.(bool)
		return ok && x == y
	case Character:
		y, ok := b.(Character)
		return ok && x == y
	case int64:
		y, ok := b.(int64)
		return ok && x == y
	case float64:
		y, ok := b.(float64)
		return ok && x == y
	case emptyListType:
		_, ok := b.(emptyListType)
		return ok
	}
	return a == b
}
