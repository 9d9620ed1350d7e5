//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

//
// display and newline, the minimal output facility spec.md §9
// supplements the core language with. Output goes through a package
// level io.Writer, following the same SetOutput convention the
// standard log package uses, so tests can capture what a program
// prints without touching os.Stdout.
//

import (
	"io"
	"os"
)

var output io.Writer = os.Stdout

// SetOutput redirects where display and newline write, for embedding
// or for tests; passing nil restores the default of os.Stdout.
func SetOutput(w io.Writer) {
	if w == nil {
		w = os.Stdout
	}
	output = w
}

func registerIO(env *Environment) {
	def(env, "display", 1, 1, biDisplay)
	def(env, "newline", 0, 0, biNewline)
}

func biDisplay(args []interface{}) (interface{}, *LispError) {
	if s, ok := args[0].(*SchemeString); ok {
		io.WriteString(output, s.String())
	} else {
		io.WriteString(output, stringify(args[0]))
	}
	return TheEmptyList, nil
}

func biNewline(args []interface{}) (interface{}, *LispError) {
	io.WriteString(output, "\n")
	return TheEmptyList, nil
}
