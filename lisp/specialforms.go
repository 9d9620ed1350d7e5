//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

//
// Special forms: the primitives the evaluator matches by name before
// ever consulting the environment, per spec.md §4.3/§4.4. Each entry
// in specialForms receives its argument list unevaluated; it is
// responsible for deciding what (if anything) gets passed to Eval.
//

// specialForms dispatches a leading symbol directly to its handler,
// bypassing the environment chain entirely. Registered here rather
// than as *Primitive bindings in the global environment because
// special forms must never be shadowable, whereas anything reachable
// through Environment.Find can be rebound by a nested `define`.
var specialForms map[Symbol]PrimitiveFunc

func init() {
	specialForms = map[Symbol]PrimitiveFunc{
		"quote":            sfQuote,
		"if":               sfIf,
		"define":           sfDefine,
		"set!":             sfSet,
		"lambda":           sfLambda,
		"begin":            sfBegin,
		"and":              sfAnd,
		"or":               sfOr,
		"defmacro":         sfDefmacro,
		"quasiquote":       sfQuasiquote,
	}
}

// sfQuote implements (quote datum): returns datum unevaluated.
func sfQuote(args interface{}, env *Environment) (interface{}, *LispError) {
	p, ok := args.(*Pair)
	if !ok || p.cdr != TheEmptyList {
		return nil, NewLispError(ESyntax, "quote requires exactly one datum")
	}
	return p.car, nil
}

// sfIf implements (if test consequent [alternate]). Only the boolean
// value #f is false; every other value, including 0 and (), is true.
func sfIf(args interface{}, env *Environment) (interface{}, *LispError) {
	parts := ListToSlice(args)
	if len(parts) < 2 || len(parts) > 3 {
		return nil, NewLispError(EArity, "if requires 2 or 3 arguments")
	}
	test, err := Eval(parts[0], env)
	if err != nil {
		return nil, err
	}
	if isTruthy(test) {
		return Eval(parts[1], env)
	}
	if len(parts) == 3 {
		return Eval(parts[2], env)
	}
	return TheEmptyList, nil
}

// isTruthy reports whether v counts as true in a boolean context.
func isTruthy(v interface{}) bool {
	b, ok := v.(bool)
	return !ok || b
}

// sfDefine implements both (define name value-expr) and the function
// shorthand (define (name params...) body...).
func sfDefine(args interface{}, env *Environment) (interface{}, *LispError) {
	p, ok := args.(*Pair)
	if !ok {
		return nil, NewLispError(ESyntax, "define requires a target and a value")
	}
	switch target := p.car.(type) {
	case Symbol:
		rest, ok := p.cdr.(*Pair)
		if !ok {
			return nil, NewLispError(ESyntax, "define requires a value expression")
		}
		val, err := Eval(rest.car, env)
		if err != nil {
			return nil, err
		}
		if defErr := env.Define(target, val); defErr != nil {
			return nil, defErr
		}
		return target, nil
	case *Pair:
		name, ok := target.car.(Symbol)
		if !ok {
			return nil, NewLispError(ESyntax, "define: function name must be a symbol")
		}
		params, perr := paramsFromList(target.cdr)
		if perr != nil {
			return nil, perr
		}
		body, berr := bodySlice(p.cdr, "define")
		if berr != nil {
			return nil, berr
		}
		lam := &Lambda{Name: string(name), Params: params, Body: body, Env: env}
		if defErr := env.Define(name, lam); defErr != nil {
			return nil, defErr
		}
		return name, nil
	}
	return nil, NewLispError(ESyntax, "define: malformed target")
}

// sfSet implements (set! name value-expr), mutating the innermost
// frame that already binds name.
func sfSet(args interface{}, env *Environment) (interface{}, *LispError) {
	p, ok := args.(*Pair)
	if !ok {
		return nil, NewLispError(ESyntax, "set! requires a name and a value expression")
	}
	name, ok := p.car.(Symbol)
	if !ok {
		return nil, NewLispError(ESyntax, "set! requires a symbol as its first argument")
	}
	rest, ok := p.cdr.(*Pair)
	if !ok {
		return nil, NewLispError(ESyntax, "set! requires a value expression")
	}
	val, err := Eval(rest.car, env)
	if err != nil {
		return nil, err
	}
	if serr := env.Set(name, val); serr != nil {
		return nil, serr
	}
	return TheEmptyList, nil
}

// sfLambda implements (lambda params body...).
func sfLambda(args interface{}, env *Environment) (interface{}, *LispError) {
	p, ok := args.(*Pair)
	if !ok {
		return nil, NewLispError(ESyntax, "lambda requires a parameter list and a body")
	}
	params, perr := paramsFromList(p.car)
	if perr != nil {
		return nil, perr
	}
	body, berr := bodySlice(p.cdr, "lambda")
	if berr != nil {
		return nil, berr
	}
	return &Lambda{Params: params, Body: body, Env: env}, nil
}

// sfBegin implements (begin expr...), evaluating each expression in
// order and returning the value of the last.
func sfBegin(args interface{}, env *Environment) (interface{}, *LispError) {
	var result interface{} = TheEmptyList
	for _, expr := range ListToSlice(args) {
		v, err := Eval(expr, env)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}

// sfAnd implements (and expr...): short-circuits on the first falsey
// value, otherwise returns the value of the last expression. (and)
// with no arguments is #t.
func sfAnd(args interface{}, env *Environment) (interface{}, *LispError) {
	var result interface{} = true
	for _, expr := range ListToSlice(args) {
		v, err := Eval(expr, env)
		if err != nil {
			return nil, err
		}
		if !isTruthy(v) {
			return v, nil
		}
		result = v
	}
	return result, nil
}

// sfOr implements (or expr...): short-circuits on the first truthy
// value, otherwise returns #f. (or) with no arguments is #f.
func sfOr(args interface{}, env *Environment) (interface{}, *LispError) {
	for _, expr := range ListToSlice(args) {
		v, err := Eval(expr, env)
		if err != nil {
			return nil, err
		}
		if isTruthy(v) {
			return v, nil
		}
	}
	return false, nil
}
