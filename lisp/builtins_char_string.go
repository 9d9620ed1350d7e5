//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

//
// Character and string built-ins. Strings are mutable rune slices
// (SchemeString), so string-set! mutates in place and is visible
// through every other reference to the same string, matching the
// reference-sharing semantics spec.md's string section requires.
//

import "fmt"

func registerCharString(env *Environment) {
	def(env, "char=?", 1, -1, charCompare(func(a, b rune) bool { return a == b }))
	def(env, "char<?", 1, -1, charCompare(func(a, b rune) bool { return a < b }))
	def(env, "char>?", 1, -1, charCompare(func(a, b rune) bool { return a > b }))
	def(env, "char<=?", 1, -1, charCompare(func(a, b rune) bool { return a <= b }))
	def(env, "char>=?", 1, -1, charCompare(func(a, b rune) bool { return a >= b }))

	def(env, "string-length", 1, 1, biStringLength)
	def(env, "string-ref", 2, 2, biStringRef)
	def(env, "string-set!", 3, 3, biStringSet)
	def(env, "make-string", 1, 2, biMakeString)
	def(env, "string-append", 0, -1, biStringAppend)
	def(env, "string->symbol", 1, 1, biStringToSymbol)
	def(env, "symbol->string", 1, 1, biSymbolToString)
	def(env, "string->list", 1, 1, biStringToList)
	def(env, "string-copy", 1, 1, biStringCopy)
}

func charCompare(test func(a, b rune) bool) BuiltInFunc {
	return func(args []interface{}) (interface{}, *LispError) {
		prev, ok := args[0].(Character)
		if !ok {
			return nil, NewLispError(EType, stringify(args[0])+" is not a character")
		}
		for _, a := range args[1:] {
			cur, ok := a.(Character)
			if !ok {
				return nil, NewLispError(EType, stringify(a)+" is not a character")
			}
			if !test(rune(prev), rune(cur)) {
				return false, nil
			}
			prev = cur
		}
		return true, nil
	}
}

func biStringLength(args []interface{}) (interface{}, *LispError) {
	s, ok := args[0].(*SchemeString)
	if !ok {
		return nil, NewLispError(EType, stringify(args[0])+" is not a string")
	}
	return int64(len(s.Runes)), nil
}

func biStringRef(args []interface{}) (interface{}, *LispError) {
	s, ok := args[0].(*SchemeString)
	if !ok {
		return nil, NewLispError(EType, stringify(args[0])+" is not a string")
	}
	idx, ok := args[1].(int64)
	if !ok {
		return nil, NewLispError(EType, "string-ref: index must be an integer")
	}
	if idx < 0 || int(idx) >= len(s.Runes) {
		return nil, NewLispError(EInvalidArgument, fmt.Sprintf("string-ref: index %d out of range", idx))
	}
	return Character(s.Runes[idx]), nil
}

func biStringSet(args []interface{}) (interface{}, *LispError) {
	s, ok := args[0].(*SchemeString)
	if !ok {
		return nil, NewLispError(EType, stringify(args[0])+" is not a string")
	}
	idx, ok := args[1].(int64)
	if !ok {
		return nil, NewLispError(EType, "string-set!: index must be an integer")
	}
	ch, ok := args[2].(Character)
	if !ok {
		return nil, NewLispError(EType, "string-set!: value must be a character")
	}
	if idx < 0 || int(idx) >= len(s.Runes) {
		return nil, NewLispError(EInvalidArgument, fmt.Sprintf("string-set!: index %d out of range", idx))
	}
	s.Runes[idx] = rune(ch)
	return TheEmptyList, nil
}

func biMakeString(args []interface{}) (interface{}, *LispError) {
	n, ok := args[0].(int64)
	if !ok || n < 0 {
		return nil, NewLispError(EInvalidArgument, "make-string: length must be a non-negative integer")
	}
	fill := ' '
	if len(args) == 2 {
		ch, ok := args[1].(Character)
		if !ok {
			return nil, NewLispError(EType, "make-string: fill value must be a character")
		}
		fill = rune(ch)
	}
	runes := make([]rune, n)
	for i := range runes {
		runes[i] = fill
	}
	return &SchemeString{Runes: runes}, nil
}

func biStringAppend(args []interface{}) (interface{}, *LispError) {
	var runes []rune
	for _, a := range args {
		s, ok := a.(*SchemeString)
		if !ok {
			return nil, NewLispError(EType, stringify(a)+" is not a string")
		}
		runes = append(runes, s.Runes...)
	}
	return &SchemeString{Runes: runes}, nil
}

func biStringToSymbol(args []interface{}) (interface{}, *LispError) {
	s, ok := args[0].(*SchemeString)
	if !ok {
		return nil, NewLispError(EType, stringify(args[0])+" is not a string")
	}
	return Symbol(s.String()), nil
}

func biSymbolToString(args []interface{}) (interface{}, *LispError) {
	sym, ok := args[0].(Symbol)
	if !ok {
		return nil, NewLispError(EType, stringify(args[0])+" is not a symbol")
	}
	return NewSchemeString(string(sym)), nil
}

func biStringToList(args []interface{}) (interface{}, *LispError) {
	s, ok := args[0].(*SchemeString)
	if !ok {
		return nil, NewLispError(EType, stringify(args[0])+" is not a string")
	}
	chars := make([]interface{}, len(s.Runes))
	for i, r := range s.Runes {
		chars[i] = Character(r)
	}
	return SliceToList(chars), nil
}

func biStringCopy(args []interface{}) (interface{}, *LispError) {
	s, ok := args[0].(*SchemeString)
	if !ok {
		return nil, NewLispError(EType, stringify(args[0])+" is not a string")
	}
	cp := make([]rune, len(s.Runes))
	copy(cp, s.Runes)
	return &SchemeString{Runes: cp}, nil
}
