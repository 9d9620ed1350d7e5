//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

//
// Parser: token stream -> s-expression tree, grounded in the grammar
// spec.md §4.2 defines and in the recursive-descent shape of
// liswat/parser.go's parserRead. Desugaring of the four reader-macro
// prefixes happens here, mechanically, exactly as spec.md prescribes.
//

import "strconv"

var (
	quoteSym           = Symbol("quote")
	quasiquoteSym      = Symbol("quasiquote")
	unquoteSym         = Symbol("unquote")
	unquoteSplicingSym = Symbol("unquote-splicing")
)

// ParseProgram parses an entire source string into a proper list of
// top-level s-expressions (TheEmptyList if the source held none).
func ParseProgram(source string) (interface{}, *LispError) {
	tokens := lex(source)
	var exprs []interface{}
	for {
		t, ok := <-tokens
		if !ok {
			break
		}
		if t.typ == tokenEOF {
			break
		}
		val, err := parseOne(t, tokens)
		if err != nil {
			drain(tokens)
			return nil, err
		}
		exprs = append(exprs, val)
	}
	return List(exprs...), nil
}

// ParseExpr parses exactly one s-expression from source, ignoring any
// trailing input; used by the parser tests.
func ParseExpr(source string) (interface{}, *LispError) {
	tokens := lex(source)
	t, ok := <-tokens
	if !ok {
		return nil, NewLispError(ESyntax, "Parse error: empty input")
	}
	if t.typ == tokenEOF {
		return TheEmptyList, nil
	}
	val, err := parseOne(t, tokens)
	drain(tokens)
	return val, err
}

// drain exhausts a token channel so the lexer goroutine feeding it can
// exit after a parse error aborts early.
func drain(tokens chan token) {
	for range tokens {
	}
}

// parseOne parses a complete expression starting with the given
// already-read token.
func parseOne(t token, tokens chan token) (interface{}, *LispError) {
	switch t.typ {
	case tokenError:
		return nil, NewLispErrorAt(ELexical, t.val, t.pos)
	case tokenEOF:
		return nil, NewLispErrorAt(ESyntax, "Parse error: unexpected end of input", t.pos)
	case tokenLParen:
		return parseList(tokens)
	case tokenRParen:
		return nil, NewLispErrorAt(ESyntax, "Parse error: unexpected )", t.pos)
	case tokenString:
		return NewSchemeString(t.contents()), nil
	case tokenInteger:
		v, err := strconv.ParseInt(t.val, 10, 64)
		if err != nil {
			return nil, NewLispErrorAt(ESyntax, "Parse error: invalid integer "+t.val, t.pos)
		}
		return v, nil
	case tokenFloat:
		v, err := strconv.ParseFloat(t.val, 64)
		if err != nil {
			return nil, NewLispErrorAt(ESyntax, "Parse error: invalid float "+t.val, t.pos)
		}
		return v, nil
	case tokenBoolean:
		return t.val == "#t" || t.val == "#T", nil
	case tokenCharacter:
		return parseCharacter(t)
	case tokenQuoteSugar:
		return parseQuoteSugar(quoteSym, tokens, t.pos)
	case tokenQuasiquoteSugar:
		return parseQuoteSugar(quasiquoteSym, tokens, t.pos)
	case tokenUnquoteSugar:
		return parseQuoteSugar(unquoteSym, tokens, t.pos)
	case tokenUnquoteSplicing:
		return parseQuoteSugar(unquoteSplicingSym, tokens, t.pos)
	case tokenSymbol:
		return Symbol(t.val), nil
	}
	return nil, NewLispErrorAt(ESyntax, "Parse error: unrecognized token", t.pos)
}

// parseQuoteSugar desugars 'X, `X, ,X and ,@X into (quote X),
// (quasiquote X), (unquote X) and (unquote-splicing X) respectively.
func parseQuoteSugar(sym Symbol, tokens chan token, pos int) (interface{}, *LispError) {
	next, ok := <-tokens
	if !ok {
		return nil, NewLispErrorAt(ESyntax, "Parse error: unexpected end of input after quote", pos)
	}
	val, err := parseOne(next, tokens)
	if err != nil {
		return nil, err
	}
	return NewList(sym, val), nil
}

// parseList reads the contents of a parenthesised list, handling the
// dotted-tail form (a b . rest) per spec.md's grammar.
func parseList(tokens chan token) (interface{}, *LispError) {
	var items []interface{}
	var tail interface{} = TheEmptyList
	for {
		t, ok := <-tokens
		if !ok {
			return nil, NewLispError(ESyntax, "Parse error: unexpected end of input in list")
		}
		if t.typ == tokenRParen {
			break
		}
		if t.typ == tokenEOF {
			return nil, NewLispErrorAt(ESyntax, "Parse error: unexpected end of input in list", t.pos)
		}
		if t.typ == tokenSymbol && t.val == "." {
			dt, ok := <-tokens
			if !ok {
				return nil, NewLispError(ESyntax, "Parse error: unexpected end of input after .")
			}
			val, err := parseOne(dt, tokens)
			if err != nil {
				return nil, err
			}
			tail = val
			closing, ok := <-tokens
			if !ok || closing.typ != tokenRParen {
				return nil, NewLispErrorAt(ESyntax, "Parse error: malformed dotted list", dt.pos)
			}
			break
		}
		val, err := parseOne(t, tokens)
		if err != nil {
			return nil, err
		}
		items = append(items, val)
	}
	result := tail
	for i := len(items) - 1; i >= 0; i-- {
		result = Cons(items[i], result)
	}
	return result, nil
}

// parseCharacter converts a #\... token into a Character value,
// recognizing the two named spellings, #\space and #\newline.
func parseCharacter(t token) (interface{}, *LispError) {
	if len(t.val) < 3 {
		return nil, NewLispErrorAt(ESyntax, "Parse error: malformed character literal "+t.val, t.pos)
	}
	rest := t.val[2:]
	switch rest {
	case "space":
		return Character(' '), nil
	case "newline":
		return Character('\n'), nil
	}
	runes := []rune(rest)
	if len(runes) != 1 {
		return nil, NewLispErrorAt(ESyntax, "Parse error: malformed character literal "+t.val, t.pos)
	}
	return Character(runes[0]), nil
}
