//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

//
// Environment implements the "proper lexical scoping with mutable
// reference cells" design spec.md §9 recommends in place of the
// source's update-back discipline: a chain of frames, each a map from
// Symbol to value, linked to a parent. `define` always binds in the
// innermost frame; `set!` walks the chain to the first frame that
// already binds the name. Closures capture a *Environment by
// reference, so mutations performed through one reference are visible
// through every other reference to the same frame.
//

import "fmt"

// Environment is one lexical frame.
type Environment struct {
	vars   map[Symbol]interface{}
	parent *Environment
}

// NewEnvironment creates a new, empty frame whose parent is p (nil for
// the root/global frame).
func NewEnvironment(p *Environment) *Environment {
	return &Environment{vars: make(map[Symbol]interface{}), parent: p}
}

// Find looks up name, starting in this frame and walking outward
// through parents. It returns nil if no frame binds the name.
func (e *Environment) Find(name Symbol) interface{} {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.vars[name]; ok {
			return v
		}
	}
	return nil
}

// frameOf returns the innermost frame in the chain that binds name, or
// nil if none does.
func (e *Environment) frameOf(name Symbol) *Environment {
	for env := e; env != nil; env = env.parent {
		if _, ok := env.vars[name]; ok {
			return env
		}
	}
	return nil
}

// Define creates a new binding for name in this frame. It fails with
// RedefinedVariable if name is already bound in this specific frame
// (shadowing a binding in an outer frame is fine and expected).
func (e *Environment) Define(name Symbol, value interface{}) *LispError {
	if _, ok := e.vars[name]; ok {
		return NewLispError(ERedefinedVariable, fmt.Sprintf("%s is already defined", name))
	}
	e.vars[name] = value
	return nil
}

// DefineOrReplace behaves like Define but silently overwrites an
// existing binding in this frame; used to seed the initial
// environment (builtins, prelude) where redefinition is not an error.
func (e *Environment) DefineOrReplace(name Symbol, value interface{}) {
	e.vars[name] = value
}

// Set reassigns name's value in the innermost enclosing frame that
// already binds it, per spec.md §9's resolution of set!'s scope. It
// fails with UndefinedVariable if no frame binds the name.
func (e *Environment) Set(name Symbol, value interface{}) *LispError {
	frame := e.frameOf(name)
	if frame == nil {
		return NewLispError(EUndefinedVariable, fmt.Sprintf("%s is not defined", name))
	}
	frame.vars[name] = value
	return nil
}
