//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

//
// Lexer: source text -> token stream. Adapted from the Rob-Pike-style
// state-function scanner in src/pkg/liswat/lexer.go, trimmed to the
// token set spec.md §4.1 defines (no hex/octal/rational/complex number
// syntax, which belongs to the numeric tower spec.md explicitly puts
// out of scope).
//

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

const eof rune = -1

// lexer holds the scanning state for one source string.
type lexer struct {
	input  string
	start  int
	pos    int
	width  int
	tokens chan token
}

// stateFn is a scanner state; it returns the next state, or nil when
// scanning is complete.
type stateFn func(*lexer) stateFn

// lex starts scanning input in a new goroutine and returns the channel
// of tokens it produces, following the concurrent-scanner pattern the
// teacher's lexer uses.
func lex(input string) chan token {
	l := &lexer{input: input, tokens: make(chan token)}
	go l.run()
	return l.tokens
}

func (l *lexer) run() {
	for state := lexStart; state != nil; {
		state = state(l)
	}
	close(l.tokens)
}

func (l *lexer) emit(t tokenType) {
	l.tokens <- token{typ: t, val: l.input[l.start:l.pos], pos: l.start}
	l.start = l.pos
}

func (l *lexer) next() rune {
	if l.pos >= len(l.input) {
		l.width = 0
		return eof
	}
	r, w := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += w
	l.width = w
	return r
}

func (l *lexer) backup() {
	l.pos -= l.width
}

func (l *lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

func (l *lexer) ignore() {
	l.start = l.pos
}

func (l *lexer) accept(valid string) bool {
	if strings.ContainsRune(valid, l.next()) {
		return true
	}
	l.backup()
	return false
}

func (l *lexer) acceptRun(valid string) {
	for strings.ContainsRune(valid, l.next()) {
	}
	l.backup()
}

func (l *lexer) errorf(format string, args ...interface{}) stateFn {
	l.tokens <- token{typ: tokenError, val: fmt.Sprintf(format, args...), pos: l.start}
	return nil
}

// lexStart reads the next token and dispatches to the state that
// knows how to finish scanning it.
func lexStart(l *lexer) stateFn {
	r := l.next()
	switch {
	case r == eof:
		l.emit(tokenEOF)
		return nil
	case r == '(':
		l.emit(tokenLParen)
		return lexStart
	case r == ')':
		l.emit(tokenRParen)
		return lexStart
	case r == ' ' || r == '\t' || r == '\r' || r == '\n':
		l.ignore()
		return lexStart
	case r == ';':
		return lexComment
	case r == '"':
		return lexString
	case r == '#':
		return lexHash
	case r == '\'':
		l.emit(tokenQuoteSugar)
		return lexStart
	case r == '`':
		l.emit(tokenQuasiquoteSugar)
		return lexStart
	case r == ',':
		if l.peek() == '@' {
			l.next()
		}
		l.emit(tokenUnquoteSplicingOrUnquote(l))
		return lexStart
	case unicode.IsDigit(r):
		l.backup()
		return lexNumber
	default:
		l.backup()
		return lexSymbol
	}
}

// tokenUnquoteSplicingOrUnquote decides, after the fact, whether the
// comma just scanned was plain unquote or unquote-splicing, based on
// how much text was consumed.
func tokenUnquoteSplicingOrUnquote(l *lexer) tokenType {
	if l.pos-l.start == 2 {
		return tokenUnquoteSplicing
	}
	return tokenUnquoteSugar
}

func lexComment(l *lexer) stateFn {
	for {
		r := l.next()
		if r == eof || r == '\n' {
			l.ignore()
			return lexStart
		}
	}
}

func lexString(l *lexer) stateFn {
	for {
		r := l.next()
		switch r {
		case eof, '\n':
			return l.errorf("unclosed string literal: %q", l.input[l.start:l.pos])
		case '\\':
			l.next() // skip escaped character, \" is the only defined escape
		case '"':
			l.emit(tokenString)
			return lexStart
		}
	}
}

// lexHash handles #t, #f, and character literals (#\x, #\space,
// #\newline); no other # syntax is defined by spec.md.
func lexHash(l *lexer) stateFn {
	r := l.next()
	switch {
	case r == 't' || r == 'T' || r == 'f' || r == 'F':
		l.emit(tokenBoolean)
		return lexStart
	case r == '\\':
		return lexCharacter
	default:
		return l.errorf("unrecognized # syntax: %q", l.input[l.start:l.pos])
	}
}

func lexCharacter(l *lexer) stateFn {
	// try the two spelled-out names first
	rest := l.input[l.pos:]
	if strings.HasPrefix(rest, "space") && !followedByIdentChar(rest, 5) {
		l.pos += len("space")
		l.emit(tokenCharacter)
		return lexStart
	}
	if strings.HasPrefix(rest, "newline") && !followedByIdentChar(rest, 7) {
		l.pos += len("newline")
		l.emit(tokenCharacter)
		return lexStart
	}
	r := l.next()
	if r == eof {
		return l.errorf("unterminated character literal")
	}
	l.emit(tokenCharacter)
	return lexStart
}

func followedByIdentChar(s string, n int) bool {
	if len(s) <= n {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s[n:])
	return isAlphaNumeric(r)
}

// lexNumber scans an integer or floating point literal. It is reached
// from lexStart for a leading digit, or from lexSymbol after that has
// consumed a leading + or -, in which case the sign is part of the
// emitted token.
func lexNumber(l *lexer) stateFn {
	digits := "0123456789"
	l.acceptRun(digits)
	isFloat := false
	if l.accept(".") {
		isFloat = true
		l.acceptRun(digits)
	}
	if isAlphaNumeric(l.peek()) {
		l.next()
		return l.errorf("malformed number: %q", l.input[l.start:l.pos])
	}
	if isFloat {
		l.emit(tokenFloat)
	} else {
		l.emit(tokenInteger)
	}
	return lexStart
}

// lexNumberAfterDot finishes scanning a float whose leading "." has
// already been consumed by lexSymbol (e.g. ".5"); unlike lexNumber it
// never needs to discover the decimal point itself.
func lexNumberAfterDot(l *lexer) stateFn {
	l.acceptRun("0123456789")
	if isAlphaNumeric(l.peek()) {
		l.next()
		return l.errorf("malformed number: %q", l.input[l.start:l.pos])
	}
	l.emit(tokenFloat)
	return lexStart
}

// symbolChars is the extended punctuation spec.md §4.1 allows inside a
// symbol, beyond letters and digits.
const symbolChars = "*+/!?=<>.-"

func isAlphaNumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// lexSymbol scans an identifier, a lone ".", or a signed/leading-dot
// number (+1, -2, .5).
func lexSymbol(l *lexer) stateFn {
	r := l.next()
	if (r == '+' || r == '-') && unicode.IsDigit(l.peek()) {
		return lexNumber
	}
	if r == '.' && unicode.IsDigit(l.peek()) {
		// the leading "." has already been consumed, so this is
		// necessarily a float (e.g. ".5"); lexNumber can't rediscover
		// that on its own, hence the dedicated continuation below.
		return lexNumberAfterDot
	}
	for {
		if r == eof {
			break
		}
		if strings.ContainsRune("()'\"`, \t\n\r;", r) {
			l.backup()
			break
		}
		if !isAlphaNumeric(r) && !strings.ContainsRune(symbolChars, r) {
			return l.errorf("unrecognized character %q", string(r))
		}
		r = l.next()
	}
	if l.pos == l.start {
		return l.errorf("empty symbol")
	}
	l.emit(tokenSymbol)
	return lexStart
}
