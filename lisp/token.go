//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

import "fmt"

// tokenType identifies the lexical category of a token, per spec.md §4.1.
type tokenType int

const (
	tokenError             tokenType = iota // lexical error
	tokenEOF                                // end of input
	tokenLParen                             // (
	tokenRParen                             // )
	tokenQuoteSugar                         // '
	tokenQuasiquoteSugar                    // `
	tokenUnquoteSugar                       // ,
	tokenUnquoteSplicing                    // ,@
	tokenSymbol                             // identifier
	tokenInteger                            // optional + or -, then [0-9]+
	tokenFloat                              // decimal with a dot
	tokenBoolean                            // #t or #f
	tokenCharacter                          // #\x, #\space, #\newline
	tokenString                            // "..."
)

// token is a single lexical token: its kind, its raw text, and its
// byte offset into the source (used for lexical error reporting).
type token struct {
	typ tokenType
	val string
	pos int
}

// String renders the token for diagnostics.
func (t token) String() string {
	if t.typ == tokenEOF {
		return "EOF"
	}
	if t.typ == tokenError {
		return fmt.Sprintf("error: %s", t.val)
	}
	return fmt.Sprintf("%q", t.val)
}

// contents returns the token text with any quoting markers stripped;
// for tokenString it removes the surrounding double quotes and
// resolves the one defined escape, \".
func (t token) contents() string {
	if t.typ != tokenString {
		return t.val
	}
	runes := []rune(t.val)
	if len(runes) >= 2 {
		runes = runes[1 : len(runes)-1]
	}
	out := make([]rune, 0, len(runes))
	for i := 0; i < len(runes); i++ {
		if runes[i] == '\\' && i+1 < len(runes) && runes[i+1] == '"' {
			out = append(out, '"')
			i++
			continue
		}
		out = append(out, runes[i])
	}
	return string(out)
}
