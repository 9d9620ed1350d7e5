//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

//
// The embedded prelude: Scheme-language source compiled into the
// binary via go:embed and loaded into every fresh global environment.
// Keeping derived procedures (list-tail, assoc, fold-left, ...) here
// rather than as Go built-ins follows the same "grow the language from
// itself" spirit as the supplemented macro layer in macro.go.
//

import _ "embed"

//go:embed prelude/prelude.scm
var preludeSource string

// loadPrelude evaluates the embedded prelude source in env. A failure
// here indicates a bug in the prelude itself, not in a user's program.
func loadPrelude(env *Environment) *LispError {
	_, err := InterpretIn(preludeSource, env)
	return err
}
