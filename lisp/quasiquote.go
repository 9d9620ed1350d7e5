//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

//
// quasiquote/unquote/unquote-splicing. Unlike
// liswat/parser.go's expand/expandQuasiquote, which rewrite the
// template at parse time, this package treats quasiquote as an
// evaluator-time special form, per spec.md §4.4 listing it alongside
// `if` and `lambda` rather than in the reader grammar. Nesting is not
// tracked past one level: a nested quasiquote's own unquotes are
// resolved immediately rather than being deferred to an outer
// evaluation, per the resolution of spec.md §9's open question.
//

// sfQuasiquote implements (quasiquote template).
func sfQuasiquote(args interface{}, env *Environment) (interface{}, *LispError) {
	p, ok := args.(*Pair)
	if !ok || p.cdr != TheEmptyList {
		return nil, NewLispError(ESyntax, "quasiquote requires exactly one template")
	}
	return evalQuasiquote(p.car, env)
}

// evalQuasiquote walks tmpl, replacing every (unquote e) with the
// value of evaluating e, and every element of the form
// (unquote-splicing e) with the spliced-in contents of evaluating e.
func evalQuasiquote(tmpl interface{}, env *Environment) (interface{}, *LispError) {
	p, ok := tmpl.(*Pair)
	if !ok {
		return tmpl, nil
	}
	if sym, ok := p.car.(Symbol); ok && sym == unquoteSym {
		rest, ok := p.cdr.(*Pair)
		if !ok {
			return nil, NewLispError(ESyntax, "unquote requires exactly one expression")
		}
		return Eval(rest.car, env)
	}
	if headPair, ok := p.car.(*Pair); ok {
		if sym, ok := headPair.car.(Symbol); ok && sym == unquoteSplicingSym {
			rest, ok := headPair.cdr.(*Pair)
			if !ok {
				return nil, NewLispError(ESyntax, "unquote-splicing requires exactly one expression")
			}
			spliceVal, err := Eval(rest.car, env)
			if err != nil {
				return nil, err
			}
			tailVal, err := evalQuasiquote(p.cdr, env)
			if err != nil {
				return nil, err
			}
			return spliceOnto(spliceVal, tailVal), nil
		}
	}
	carVal, err := evalQuasiquote(p.car, env)
	if err != nil {
		return nil, err
	}
	cdrVal, err := evalQuasiquote(p.cdr, env)
	if err != nil {
		return nil, err
	}
	return Cons(carVal, cdrVal), nil
}

// spliceOnto prepends the elements of the proper list items onto tail.
func spliceOnto(items, tail interface{}) interface{} {
	elems := ListToSlice(items)
	result := tail
	for i := len(elems) - 1; i >= 0; i-- {
		result = Cons(elems[i], result)
	}
	return result
}
