//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

//
// The value model: a tagged sum of atoms and cons cells. Go's
// interface{} stands in for the sum type itself (as in every retrieved
// Lisp example, native Go values double as the interpreter's atoms);
// the types below are the tags that are not already built into Go.
//

import "fmt"

// Symbol represents a variable or procedure name. It is a distinct
// string type so that a symbol value can never be mistaken for string
// data read by the reader.
type Symbol string

// Character represents a single Scheme character literal, e.g. #\a or
// #\space.
type Character rune

// String returns the Scheme print form of the character.
func (c Character) String() string {
	switch rune(c) {
	case ' ':
		return "#\\space"
	case '\n':
		return "#\\newline"
	}
	return "#\\" + string(rune(c))
}

// emptyListType is the sentinel type for the empty list (). It is a
// zero-size struct so that every instance compares equal to every
// other by ordinary Go equality, letting it double as a comparable
// singleton the way the teacher's own theEmptyList variable is used in
// liswat/interpreter_test.go.
type emptyListType struct{}

// TheEmptyList is the unique value representing Nil / ().
var TheEmptyList = emptyListType{}

// SchemeString is a mutable sequence of characters. It is always
// handled through a pointer so that string-set! mutations, and the
// reference-sharing semantics spec.md requires, are visible to every
// holder of the value.
type SchemeString struct {
	Runes []rune
}

// NewSchemeString builds a SchemeString from Go string text.
func NewSchemeString(s string) *SchemeString {
	return &SchemeString{Runes: []rune(s)}
}

// String returns the raw text (no quoting); use stringifyBuffer for the
// quoted, escaped print form.
func (s *SchemeString) String() string {
	return string(s.Runes)
}

// Params describes the parameter list of a Lambda, UserFunction, or
// Macro: an ordered list of fixed names, optionally followed by a
// "rest" name that collects any remaining arguments into a proper
// list (the dotted-tail parameter, (a b . rest)).
type Params struct {
	Fixed    []Symbol
	Variadic bool
	Rest     Symbol
}

// Arity reports the minimum number of arguments this parameter list
// requires.
func (p Params) Arity() int {
	return len(p.Fixed)
}

// Lambda is a callable created by `lambda` or `define`. The two
// spec-level variants, anonymous Lambda and named UserFunction, differ
// only in whether Name is set; per the design notes this is modelled
// as one struct with a flag rather than two parallel types.
type Lambda struct {
	Name   string // "" for an anonymous lambda
	Params Params
	Body   []interface{} // sequence of body expressions, evaluated in order
	Env    *Environment  // captured definition environment
}

// String returns a compact printed representation.
func (l *Lambda) String() string {
	if l.Name != "" {
		return "#<function:" + l.Name + ">"
	}
	return "#<lambda>"
}

// Macro is the result of defmacro: a transform from unevaluated
// arguments to a new s-expression, which the evaluator re-evaluates in
// the caller's environment.
type Macro struct {
	Name   string
	Params Params
	Body   interface{}
}

// String returns a compact printed representation.
func (m *Macro) String() string {
	return "#<macro:" + m.Name + ">"
}

// PrimitiveFunc implements a special form: it receives its argument
// list unevaluated, along with the calling environment, and decides
// for itself what (if anything) to evaluate.
type PrimitiveFunc func(args interface{}, env *Environment) (interface{}, *LispError)

// Primitive is a non-evaluating callable value: the evaluator hands it
// the unevaluated argument list and the calling environment. The
// built-in special forms (`if`, `quote`, ...) are not Primitive values;
// they live in the specialForms table, which the evaluator consults by
// name before the environment.
type Primitive struct {
	Name string
	Fn   PrimitiveFunc
}

// String returns a compact printed representation.
func (p *Primitive) String() string {
	return "#<primitive:" + p.Name + ">"
}

// BuiltInFunc implements an ordinary function: all arguments are
// evaluated before the function receives them.
type BuiltInFunc func(args []interface{}) (interface{}, *LispError)

// BuiltIn is a natively implemented function, e.g. `+` or `car`.
type BuiltIn struct {
	Name    string
	Fn      BuiltInFunc
	MinArgs int // minimum argument count; -1 means unchecked
	MaxArgs int // maximum argument count; -1 means unbounded
}

// String returns a compact printed representation.
func (b *BuiltIn) String() string {
	return "#<built-in:" + b.Name + ">"
}

// checkArity validates argc against the built-in's declared range,
// returning an ArityError naming the operation when it doesn't fit.
func (b *BuiltIn) checkArity(argc int) *LispError {
	if b.MinArgs >= 0 && argc < b.MinArgs {
		return NewLispError(EArity, fmt.Sprintf("%s requires at least %d argument(s), got %d", b.Name, b.MinArgs, argc))
	}
	if b.MaxArgs >= 0 && argc > b.MaxArgs {
		return NewLispError(EArity, fmt.Sprintf("%s accepts at most %d argument(s), got %d", b.Name, b.MaxArgs, argc))
	}
	return nil
}

// Call invokes the built-in after checking its arity.
func (b *BuiltIn) Call(args []interface{}) (interface{}, *LispError) {
	if err := b.checkArity(len(args)); err != nil {
		return nil, err
	}
	return b.Fn(args)
}

// isCallable reports whether v is any of the callable kinds.
func isCallable(v interface{}) bool {
	switch v.(type) {
	case *Primitive, *BuiltIn, *Lambda, *Macro:
		return true
	}
	return false
}

// callableName returns a printable name for an arbitrary callable,
// used to name the callee in arity error messages.
func callableName(v interface{}) string {
	switch c := v.(type) {
	case *Primitive:
		return c.Name
	case *BuiltIn:
		return c.Name
	case *Lambda:
		if c.Name != "" {
			return c.Name
		}
		return "lambda"
	case *Macro:
		return c.Name
	}
	return stringify(v)
}
