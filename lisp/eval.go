//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

import "fmt"

//
// Evaluator core: eval/apply, mutually recursive with the special
// forms in specialforms.go, macro.go and quasiquote.go. The dispatch
// precedence in Eval follows spec.md §4.3 exactly: a symbol naming a
// special form is matched before the environment is ever consulted,
// so `define` and friends can never be shadowed by a user binding.
//
// Unlike the source this was distilled from, Eval does not thread a
// second "updated environment" return value through every call: per
// spec.md §9's resolution of the update-back question, environments
// are chains of frames shared by reference, so a mutation performed
// anywhere (via Define/Set) is immediately visible to every holder of
// that frame without any threading.
//

// Eval evaluates expr in env and returns its value.
func Eval(expr interface{}, env *Environment) (interface{}, *LispError) {
	switch x := expr.(type) {
	case Symbol:
		v := env.Find(x)
		if v == nil {
			return nil, NewLispError(EUndefinedVariable, string(x)+" is not defined")
		}
		return v, nil
	case *Pair:
		return evalPair(x, env)
	default:
		// self-evaluating atom: int64, float64, bool, Character,
		// *SchemeString, emptyListType, or a callable value produced
		// by an earlier evaluation (quote can return one of these).
		return expr, nil
	}
}

// evalPair evaluates a function call or special form.
func evalPair(p *Pair, env *Environment) (interface{}, *LispError) {
	if sym, ok := p.car.(Symbol); ok {
		if handler, ok := specialForms[sym]; ok {
			return handler(p.cdr, env)
		}
	}
	head, err := Eval(p.car, env)
	if err != nil {
		return nil, err
	}
	switch fn := head.(type) {
	case *Primitive:
		return fn.Fn(p.cdr, env)
	case *Macro:
		return applyMacro(fn, p.cdr, env)
	case *BuiltIn:
		args, err := evalArgs(p.cdr, env)
		if err != nil {
			return nil, err
		}
		return fn.Call(args)
	case *Lambda:
		args, err := evalArgs(p.cdr, env)
		if err != nil {
			return nil, err
		}
		return applyLambda(fn, args)
	default:
		return nil, NewLispError(EType, stringify(p.car)+" is not applicable")
	}
}

// evalArgs evaluates a (possibly empty) argument list left-to-right.
func evalArgs(list interface{}, env *Environment) ([]interface{}, *LispError) {
	var args []interface{}
	for {
		p, ok := list.(*Pair)
		if !ok {
			break
		}
		v, err := Eval(p.car, env)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
		list = p.cdr
	}
	return args, nil
}

// Apply invokes any callable value with already-evaluated arguments.
// Primitives and Macros are not invokable this way since they require
// unevaluated argument access; built-ins used as higher-order values
// (passed to `map`, `for-each`, etc.) go through here.
func Apply(fn interface{}, args []interface{}) (interface{}, *LispError) {
	switch f := fn.(type) {
	case *BuiltIn:
		return f.Call(args)
	case *Lambda:
		return applyLambda(f, args)
	default:
		return nil, NewLispError(EType, stringify(fn)+" is not applicable")
	}
}

// applyLambda binds params to args in a fresh frame over the lambda's
// captured environment and evaluates the body in sequence.
func applyLambda(fn *Lambda, args []interface{}) (interface{}, *LispError) {
	if err := checkArity(callableName(fn), fn.Params, len(args)); err != nil {
		return nil, err
	}
	callEnv := NewEnvironment(fn.Env)
	bindParams(callEnv, fn.Params, args)
	var result interface{} = TheEmptyList
	for _, expr := range fn.Body {
		v, err := Eval(expr, callEnv)
		if err != nil {
			return nil, err
		}
		result = v
	}
	return result, nil
}

// checkArity validates argc against params, producing an ArityError
// naming op when it doesn't fit.
func checkArity(op string, params Params, argc int) *LispError {
	if params.Variadic {
		if argc < len(params.Fixed) {
			return NewLispError(EArity, fmt.Sprintf("%s requires at least %d argument(s), got %d", op, len(params.Fixed), argc))
		}
		return nil
	}
	if argc != len(params.Fixed) {
		return NewLispError(EArity, fmt.Sprintf("%s requires exactly %d argument(s), got %d", op, len(params.Fixed), argc))
	}
	return nil
}

// bindParams binds each fixed parameter to its argument in env, and
// (if variadic) binds the rest parameter to a proper list of the
// remaining arguments.
func bindParams(env *Environment, params Params, args []interface{}) {
	for i, name := range params.Fixed {
		env.DefineOrReplace(name, args[i])
	}
	if params.Variadic {
		env.DefineOrReplace(params.Rest, SliceToList(args[len(params.Fixed):]))
	}
}

// paramsFromList parses a parameter-list s-expression into a Params,
// accepting all three shapes spec.md's grammar allows: a proper list
// (a b c), a dotted-tail list (a b . rest), and a bare symbol standing
// for "collect every argument" (args).
func paramsFromList(v interface{}) (Params, *LispError) {
	var fixed []Symbol
	for {
		if v == TheEmptyList {
			return Params{Fixed: fixed}, nil
		}
		p, ok := v.(*Pair)
		if !ok {
			sym, ok := v.(Symbol)
			if !ok {
				return Params{}, NewLispError(ESyntax, "parameter list must contain only symbols")
			}
			return Params{Fixed: fixed, Variadic: true, Rest: sym}, nil
		}
		sym, ok := p.car.(Symbol)
		if !ok {
			return Params{}, NewLispError(ESyntax, "parameter list must contain only symbols")
		}
		fixed = append(fixed, sym)
		v = p.cdr
	}
}

// bodySlice converts a body s-expression list into a Go slice,
// failing if it is empty (lambda/define/defmacro all require one).
func bodySlice(list interface{}, what string) ([]interface{}, *LispError) {
	body := ListToSlice(list)
	if len(body) == 0 {
		return nil, NewLispError(ESyntax, what+" requires a body")
	}
	return body, nil
}
