//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

//
// Arithmetic and numeric comparison built-ins. Two numeric
// representations only, int64 and float64, per spec.md's numeric
// tower (no rationals/complex/bignum, explicitly out of scope). Mixing
// an int64 and a float64 in any operation promotes the result to
// float64; an operation over only int64 operands stays exact.
//

func registerArithmetic(env *Environment) {
	def(env, "+", 0, -1, biAdd)
	def(env, "-", 1, -1, biSub)
	def(env, "*", 0, -1, biMul)
	def(env, "/", 1, -1, biDiv)

	def(env, "=", 1, -1, numCompare(func(a, b float64) bool { return a == b }))
	def(env, "<", 1, -1, numCompare(func(a, b float64) bool { return a < b }))
	def(env, ">", 1, -1, numCompare(func(a, b float64) bool { return a > b }))
	def(env, "<=", 1, -1, numCompare(func(a, b float64) bool { return a <= b }))
	def(env, ">=", 1, -1, numCompare(func(a, b float64) bool { return a >= b }))

	def(env, "quotient", 2, 2, intBinOp("quotient", func(a, b int64) (int64, *LispError) {
		if b == 0 {
			return 0, NewLispError(EInvalidArgument, "quotient: division by zero")
		}
		return a / b, nil
	}))
	def(env, "remainder", 2, 2, intBinOp("remainder", func(a, b int64) (int64, *LispError) {
		if b == 0 {
			return 0, NewLispError(EInvalidArgument, "remainder: division by zero")
		}
		return a % b, nil
	}))
	def(env, "modulo", 2, 2, intBinOp("modulo", func(a, b int64) (int64, *LispError) {
		if b == 0 {
			return 0, NewLispError(EInvalidArgument, "modulo: division by zero")
		}
		m := a % b
		if m != 0 && (m < 0) != (b < 0) {
			m += b
		}
		return m, nil
	}))
}

// intBinOp builds a two-argument exact-integer built-in named op.
func intBinOp(op string, fn func(a, b int64) (int64, *LispError)) BuiltInFunc {
	return func(args []interface{}) (interface{}, *LispError) {
		a, ok := args[0].(int64)
		if !ok {
			return nil, NewLispError(EType, op+": arguments must be integers")
		}
		b, ok := args[1].(int64)
		if !ok {
			return nil, NewLispError(EType, op+": arguments must be integers")
		}
		return fn(a, b)
	}
}

func biAdd(args []interface{}) (interface{}, *LispError) {
	var isum int64
	var fsum float64
	useFloat := false
	for _, a := range args {
		if err := checkNumber(a, "+"); err != nil {
			return nil, err
		}
		switch x := a.(type) {
		case int64:
			isum += x
			fsum += float64(x)
		case float64:
			useFloat = true
			fsum += x
		}
	}
	if useFloat {
		return fsum, nil
	}
	return isum, nil
}

func biMul(args []interface{}) (interface{}, *LispError) {
	iprod := int64(1)
	fprod := 1.0
	useFloat := false
	for _, a := range args {
		if err := checkNumber(a, "*"); err != nil {
			return nil, err
		}
		switch x := a.(type) {
		case int64:
			iprod *= x
			fprod *= float64(x)
		case float64:
			useFloat = true
			fprod *= x
		}
	}
	if useFloat {
		return fprod, nil
	}
	return iprod, nil
}

func biSub(args []interface{}) (interface{}, *LispError) {
	if err := checkNumber(args[0], "-"); err != nil {
		return nil, err
	}
	if len(args) == 1 {
		switch x := args[0].(type) {
		case int64:
			return -x, nil
		case float64:
			return -x, nil
		}
	}
	useFloat := false
	for _, a := range args {
		if _, ok := a.(float64); ok {
			useFloat = true
		}
	}
	if useFloat {
		result, _ := asFloat(args[0])
		for _, a := range args[1:] {
			if err := checkNumber(a, "-"); err != nil {
				return nil, err
			}
			f, _ := asFloat(a)
			result -= f
		}
		return result, nil
	}
	result := args[0].(int64)
	for _, a := range args[1:] {
		if err := checkNumber(a, "-"); err != nil {
			return nil, err
		}
		result -= a.(int64)
	}
	return result, nil
}

// biDiv always returns a Float, per spec.md §4.5: this language
// provides no integer division through `/` (use quotient instead).
func biDiv(args []interface{}) (interface{}, *LispError) {
	if err := checkNumber(args[0], "/"); err != nil {
		return nil, err
	}
	if len(args) == 1 {
		f, _ := asFloat(args[0])
		if f == 0 {
			return nil, NewLispError(EInvalidArgument, "/: division by zero")
		}
		return 1 / f, nil
	}
	result, _ := asFloat(args[0])
	for _, a := range args[1:] {
		if err := checkNumber(a, "/"); err != nil {
			return nil, err
		}
		f, _ := asFloat(a)
		if f == 0 {
			return nil, NewLispError(EInvalidArgument, "/: division by zero")
		}
		result /= f
	}
	return result, nil
}

// numCompare builds a variadic, chained numeric comparison built-in
// (e.g. (< 1 2 3) is true iff 1<2 and 2<3) from a two-argument test.
func numCompare(test func(a, b float64) bool) BuiltInFunc {
	return func(args []interface{}) (interface{}, *LispError) {
		prev, ok := asFloat(args[0])
		if !ok {
			return nil, NewLispError(EType, stringify(args[0])+" is not a number")
		}
		for _, a := range args[1:] {
			cur, ok := asFloat(a)
			if !ok {
				return nil, NewLispError(EType, stringify(a)+" is not a number")
			}
			if !test(prev, cur) {
				return false, nil
			}
			prev = cur
		}
		return true, nil
	}
}
