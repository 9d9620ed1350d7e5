//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

import "testing"

func TestEnvironment(t *testing.T) {
	e := NewEnvironment(nil)
	foo := Symbol("foo")
	if v := e.Find(foo); v != nil {
		t.Errorf("expected undefined var to return nil, got %v", v)
	}
	if err := e.Set(foo, "bar"); err == nil {
		t.Error("expected set of undefined var to fail")
	}
	if err := e.Define(foo, "bar"); err != nil {
		t.Fatalf("Define failed: %v", err)
	}
	if v := e.Find(foo); v != "bar" {
		t.Errorf("expected 'bar', got %v", v)
	}
}

func TestEnvironmentParent(t *testing.T) {
	p := NewEnvironment(nil)
	foo := Symbol("foo")
	p.Define(foo, "bar")
	e := NewEnvironment(p)
	if v := e.Find(foo); v != "bar" {
		t.Errorf("expected 'bar', got %v", v)
	}
	if err := e.Set(foo, "qux"); err != nil {
		t.Errorf("set of parent-defined var failed: %v", err)
	}
	if v := p.Find(foo); v != "qux" {
		t.Errorf("expected parent to see 'qux', got %v", v)
	}
	if v := e.Find(foo); v != "qux" {
		t.Errorf("expected child to see 'qux', got %v", v)
	}
}

func TestEnvironmentOverride(t *testing.T) {
	p := NewEnvironment(nil)
	foo := Symbol("foo")
	p.Define(foo, "bar")
	e := NewEnvironment(p)
	e.Define(foo, "qux")
	if e.Find(foo) != "qux" {
		t.Error("expected local binding to shadow parent")
	}
	if p.Find(foo) != "bar" {
		t.Error("expected parent binding to be unaffected by shadowing")
	}
}

func TestEnvironmentRedefine(t *testing.T) {
	e := NewEnvironment(nil)
	foo := Symbol("foo")
	if err := e.Define(foo, 1); err != nil {
		t.Fatalf("first Define failed: %v", err)
	}
	if err := e.Define(foo, 2); err == nil {
		t.Error("expected second Define of same name in same frame to fail")
	}
}

func TestEnvironmentDefineOrReplace(t *testing.T) {
	e := NewEnvironment(nil)
	foo := Symbol("foo")
	e.Define(foo, 1)
	e.DefineOrReplace(foo, 2)
	if e.Find(foo) != 2 {
		t.Error("expected DefineOrReplace to overwrite the existing binding")
	}
}
