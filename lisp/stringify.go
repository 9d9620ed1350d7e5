//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

//
// Pretty-printer, grounded in stringify/stringifyBuffer from
// liswat/parser.go, adapted to this package's value model and to the
// exact print forms spec.md §6 specifies (floats always show a decimal
// point, strings escape only the embedded double quote, etc).
//

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// Stringify renders a value using Scheme print syntax, per spec.md §6.
func Stringify(v interface{}) string {
	buf := new(bytes.Buffer)
	stringifyBuffer(v, buf)
	return buf.String()
}

// stringify is the unexported alias used internally (error messages,
// macro diagnostics) so call sites read naturally.
func stringify(v interface{}) string {
	return Stringify(v)
}

func stringifyBuffer(v interface{}, buf *bytes.Buffer) {
	switch x := v.(type) {
	case nil:
		buf.WriteString("()")
	case emptyListType:
		buf.WriteString("()")
	case bool:
		if x {
			buf.WriteString("#t")
		} else {
			buf.WriteString("#f")
		}
	case int64:
		buf.WriteString(strconv.FormatInt(x, 10))
	case float64:
		buf.WriteString(formatFloat(x))
	case Character:
		buf.WriteString(x.String())
	case *SchemeString:
		buf.WriteString("\"")
		for _, r := range x.Runes {
			if r == '"' {
				buf.WriteString("\\\"")
			} else {
				buf.WriteRune(r)
			}
		}
		buf.WriteString("\"")
	case Symbol:
		buf.WriteString(string(x))
	case *Pair:
		stringifyPair(x, buf)
	case *Primitive, *BuiltIn, *Lambda, *Macro:
		fmt.Fprintf(buf, "%v", x)
	default:
		fmt.Fprintf(buf, "%v", x)
	}
}

func stringifyPair(p *Pair, buf *bytes.Buffer) {
	buf.WriteString("(")
	stringifyBuffer(p.car, buf)
	rest := p.cdr
	for {
		if rest == TheEmptyList {
			break
		}
		next, ok := rest.(*Pair)
		if !ok {
			buf.WriteString(" . ")
			stringifyBuffer(rest, buf)
			break
		}
		buf.WriteString(" ")
		stringifyBuffer(next.car, buf)
		rest = next.cdr
	}
	buf.WriteString(")")
}

// formatFloat ensures the printed form always carries a decimal point,
// as spec.md §6 requires, while using Go's shortest round-tripping
// representation otherwise.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if idx := strings.IndexAny(s, "eE"); idx >= 0 {
		mantissa, exp := s[:idx], s[idx:]
		if !strings.Contains(mantissa, ".") {
			mantissa += "."
		}
		return mantissa + exp
	}
	if !strings.Contains(s, ".") {
		s += "."
	}
	return s
}
