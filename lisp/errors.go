//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

//
// Error taxonomy for the interpreter. A single closed sum type carries
// an error kind plus a human-readable message, mirroring the
// TclError/errno-constant pattern used throughout the retrieved Tcl
// interpreter this package was adapted from.
//

import "fmt"

// Kind identifies the category of a LispError.
type Kind int

// Error kinds, one per row of the error taxonomy.
const (
	_                 Kind = iota
	ELexical               // unrecognised character in source
	ESyntax                // grammar violation or malformed special-form syntax
	EType                  // operation applied to a value of the wrong kind
	EArity                 // wrong number of arguments
	EInvalidArgument       // right type, value out of allowed range
	EUndefinedVariable     // symbol lookup miss
	ERedefinedVariable     // define of a name already bound in the current frame
)

// String returns a short name for the error kind.
func (k Kind) String() string {
	switch k {
	case ELexical:
		return "LexicalError"
	case ESyntax:
		return "SyntaxError"
	case EType:
		return "TypeError"
	case EArity:
		return "ArityError"
	case EInvalidArgument:
		return "InvalidArgument"
	case EUndefinedVariable:
		return "UndefinedVariable"
	case ERedefinedVariable:
		return "RedefinedVariable"
	}
	return "UnknownError"
}

// LispError reports a failure while lexing, parsing, or evaluating a
// Scheme program. It implements the error interface.
type LispError struct {
	Kind    Kind
	Message string
	Pos     int // byte offset into the source, -1 if not applicable
}

// NewLispError creates a LispError of the given kind with the message.
func NewLispError(kind Kind, msg string) *LispError {
	return &LispError{Kind: kind, Message: msg, Pos: -1}
}

// NewLispErrorAt creates a LispError carrying a source position.
func NewLispErrorAt(kind Kind, msg string, pos int) *LispError {
	return &LispError{Kind: kind, Message: msg, Pos: pos}
}

// Error returns the string representation of the error, satisfying the
// standard error interface.
func (e *LispError) Error() string {
	return e.ErrorMessage()
}

// ErrorMessage returns the human-readable form of the error, naming its
// kind and the offending detail.
func (e *LispError) ErrorMessage() string {
	if e.Pos >= 0 {
		return fmt.Sprintf("%s: %s (at %d)", e.Kind, e.Message, e.Pos)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// String supports the same %s / String() convention the teacher's own
// TclError and parser error fixtures rely on.
func (e *LispError) String() string {
	return e.ErrorMessage()
}
