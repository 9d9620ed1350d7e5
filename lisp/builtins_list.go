//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

//
// List built-ins. car/cdr/cons are the irreducible primitives spec.md
// §5.2 names directly; the rest (length, append, reverse, map,
// for-each) are the supplemented convenience layer spec.md §9 calls
// for under "a minimal but usable standard environment", grounded in
// the Cxr/Reverse/Map helpers already on Pair in pair.go.
//

func registerList(env *Environment) {
	def(env, "cons", 2, 2, biCons)
	def(env, "car", 1, 1, biCar)
	def(env, "cdr", 1, 1, biCdr)
	def(env, "list", 0, -1, biList)
	def(env, "length", 1, 1, biLength)
	def(env, "append", 0, -1, biAppend)
	def(env, "reverse", 1, 1, biReverse)
	def(env, "map", 1, -1, biMap)
	def(env, "for-each", 1, -1, biForEach)

	for _, name := range []string{"caar", "cadr", "cdar", "cddr", "caaar", "caadr", "cadar", "caddr", "cdaar", "cdadr", "cddar", "cdddr"} {
		ops := name
		def(env, name, 1, 1, func(args []interface{}) (interface{}, *LispError) {
			result := Cxr(ops, args[0])
			if result == nil {
				return nil, NewLispError(EType, ops+": argument is not a suitable pair")
			}
			return result, nil
		})
	}
}

func biCons(args []interface{}) (interface{}, *LispError) {
	return Cons(args[0], args[1]), nil
}

func biCar(args []interface{}) (interface{}, *LispError) {
	p, ok := args[0].(*Pair)
	if !ok {
		return nil, NewLispError(EType, stringify(args[0])+" is not a pair")
	}
	return p.First(), nil
}

func biCdr(args []interface{}) (interface{}, *LispError) {
	p, ok := args[0].(*Pair)
	if !ok {
		return nil, NewLispError(EType, stringify(args[0])+" is not a pair")
	}
	return p.Rest(), nil
}

func biList(args []interface{}) (interface{}, *LispError) {
	return SliceToList(args), nil
}

func biLength(args []interface{}) (interface{}, *LispError) {
	if !IsProperList(args[0]) {
		return nil, NewLispError(EType, stringify(args[0])+" is not a proper list")
	}
	return int64(len(ListToSlice(args[0]))), nil
}

func biAppend(args []interface{}) (interface{}, *LispError) {
	if len(args) == 0 {
		return TheEmptyList, nil
	}
	var all []interface{}
	for _, a := range args[:len(args)-1] {
		if !IsProperList(a) {
			return nil, NewLispError(EType, stringify(a)+" is not a proper list")
		}
		all = append(all, ListToSlice(a)...)
	}
	result := args[len(args)-1]
	for i := len(all) - 1; i >= 0; i-- {
		result = Cons(all[i], result)
	}
	return result, nil
}

func biReverse(args []interface{}) (interface{}, *LispError) {
	if !IsProperList(args[0]) {
		return nil, NewLispError(EType, stringify(args[0])+" is not a proper list")
	}
	elems := ListToSlice(args[0])
	result := []interface{}{}
	for i := len(elems) - 1; i >= 0; i-- {
		result = append(result, elems[i])
	}
	return SliceToList(result), nil
}

func biMap(args []interface{}) (interface{}, *LispError) {
	fn := args[0]
	lists := args[1:]
	slices := make([][]interface{}, len(lists))
	n := -1
	for i, l := range lists {
		slices[i] = ListToSlice(l)
		if n == -1 || len(slices[i]) < n {
			n = len(slices[i])
		}
	}
	out := make([]interface{}, 0, n)
	for i := 0; i < n; i++ {
		call := make([]interface{}, len(slices))
		for j := range slices {
			call[j] = slices[j][i]
		}
		v, err := Apply(fn, call)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return SliceToList(out), nil
}

func biForEach(args []interface{}) (interface{}, *LispError) {
	_, err := biMap(args)
	if err != nil {
		return nil, err
	}
	return TheEmptyList, nil
}
