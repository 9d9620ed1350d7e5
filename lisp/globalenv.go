//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

//
// NewGlobalEnvironment builds the root frame every program runs in:
// every built-in function family registered, followed by the embedded
// Scheme-language prelude. Grounded in liswat/interpreter_test.go's
// NewEnvironment(nil) convention for the outermost frame.
//

// NewGlobalEnvironment returns a fresh root environment with every
// built-in bound and the prelude loaded. Special forms are not bound
// here: they live in the package-level specialForms table and are
// matched by the evaluator before the environment is ever consulted.
func NewGlobalEnvironment() (*Environment, *LispError) {
	env := NewEnvironment(nil)
	registerEquivalence(env)
	registerArithmetic(env)
	registerCharString(env)
	registerList(env)
	registerIO(env)
	if err := loadPrelude(env); err != nil {
		return nil, err
	}
	return env, nil
}
