//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

//
// defmacro: a transform from unevaluated arguments to a new
// s-expression, which is then evaluated in the caller's environment.
// Grounded in the macroTable stub liswat/parser.go declares but never
// wires up; this package gives it the full eval-time semantics
// spec.md §4.5 describes rather than liswat's unimplemented parse-time
// table.
//

// sfDefmacro implements (defmacro name params body).
func sfDefmacro(args interface{}, env *Environment) (interface{}, *LispError) {
	parts := ListToSlice(args)
	if len(parts) != 3 {
		return nil, NewLispError(EArity, "defmacro requires exactly 3 arguments: name, parameter list, and body")
	}
	name, ok := parts[0].(Symbol)
	if !ok {
		return nil, NewLispError(ESyntax, "defmacro: name must be a symbol")
	}
	params, perr := paramsFromList(parts[1])
	if perr != nil {
		return nil, perr
	}
	macro := &Macro{Name: string(name), Params: params, Body: parts[2]}
	if defErr := env.Define(name, macro); defErr != nil {
		return nil, defErr
	}
	return name, nil
}

// applyMacro expands a macro invocation and evaluates the result.
//
// The unevaluated argument s-expressions are bound to the macro's
// parameters in a frame extending the caller's own environment; the
// macro body is evaluated in that extended frame to produce a new
// s-expression, which is then evaluated again, this time in the
// caller's original (unextended) environment, and that final value is
// what the call returns.
func applyMacro(m *Macro, argsList interface{}, callerEnv *Environment) (interface{}, *LispError) {
	args := ListToSlice(argsList)
	if err := checkArity(callableName(m), m.Params, len(args)); err != nil {
		return nil, err
	}
	expandEnv := NewEnvironment(callerEnv)
	bindParams(expandEnv, m.Params, args)
	expanded, err := Eval(m.Body, expandEnv)
	if err != nil {
		return nil, err
	}
	return Eval(expanded, callerEnv)
}
