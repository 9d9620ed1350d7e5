//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

//
// Public entry points, matching the Interpret(source) shape
// liswat/interpreter_test.go already exercises against the teacher's
// never-finished interpreter.go stub. InterpretIn additionally exposes
// the environment a caller is running in, so a REPL can keep state
// across successive calls (top-level defines persisting between
// lines).
//

// Interpret parses and evaluates source in a fresh global environment,
// returning the value of the last top-level expression.
func Interpret(source string) (interface{}, *LispError) {
	env, err := NewGlobalEnvironment()
	if err != nil {
		return nil, err
	}
	return InterpretIn(source, env)
}

// InterpretIn parses and evaluates source in env, returning the value
// of the last top-level expression (TheEmptyList if source held none).
func InterpretIn(source string, env *Environment) (interface{}, *LispError) {
	program, err := ParseProgram(source)
	if err != nil {
		return nil, err
	}
	var result interface{} = TheEmptyList
	for _, expr := range ListToSlice(program) {
		v, evalErr := Eval(expr, env)
		if evalErr != nil {
			return nil, evalErr
		}
		result = v
	}
	return result, nil
}
