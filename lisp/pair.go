//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
//

package lisp

//
// Pair is the cons cell at the heart of the homoiconic AST, adapted
// from src/pkg/liswat/pair.go in the teacher repository. The original
// restricted cdr to another *Pair, which cannot express a dotted list;
// here cdr is any Value (interface{}), terminated by TheEmptyList for
// proper lists or by an arbitrary atom for improper ones, as spec.md's
// data model requires.
//

import "bytes"

// Pair represents a single cons cell: (car . cdr).
type Pair struct {
	car interface{}
	cdr interface{}
}

// Cons constructs a new pair holding car and cdr.
func Cons(car, cdr interface{}) *Pair {
	return &Pair{car: car, cdr: cdr}
}

// NewPair constructs a singleton list holding just v, i.e. (v).
func NewPair(v interface{}) *Pair {
	return &Pair{car: v, cdr: TheEmptyList}
}

// NewList constructs a proper two-element list (a b).
func NewList(a, b interface{}) *Pair {
	return Cons(a, NewPair(b))
}

// List constructs a proper list from the given values.
func List(vs ...interface{}) interface{} {
	var result interface{} = TheEmptyList
	for i := len(vs) - 1; i >= 0; i-- {
		result = Cons(vs[i], result)
	}
	return result
}

// First returns the car of the pair, or nil if p is nil.
func (p *Pair) First() interface{} {
	if p == nil {
		return nil
	}
	return p.car
}

// Rest returns the cdr of the pair, or TheEmptyList if p is nil.
func (p *Pair) Rest() interface{} {
	if p == nil {
		return TheEmptyList
	}
	return p.cdr
}

// Second returns the second element of the list, or nil if there is
// none.
func (p *Pair) Second() interface{} {
	return Car(p.Rest())
}

// Third returns the third element of the list, or nil if there is
// none.
func (p *Pair) Third() interface{} {
	return Car(Cdr(p.Rest()))
}

// Len counts the elements in a proper (or improper) list, stopping at
// the first non-Pair cdr; an improper tail does not count as an
// element.
func (p *Pair) Len() int {
	n := 0
	for p != nil {
		n++
		next, ok := p.cdr.(*Pair)
		if !ok {
			break
		}
		p = next
	}
	return n
}

// Append destructively adds v to the end of the (proper) list rooted
// at p.
func (p *Pair) Append(v interface{}) {
	for {
		if next, ok := p.cdr.(*Pair); ok {
			p = next
			continue
		}
		break
	}
	p.cdr = NewPair(v)
}

// Join destructively concatenates another list onto the end of p,
// replacing p's terminating TheEmptyList with other's contents.
func (p *Pair) Join(other interface{}) {
	for {
		if next, ok := p.cdr.(*Pair); ok {
			p = next
			continue
		}
		break
	}
	p.cdr = other
}

// Reverse returns a new proper list with the elements of p in reverse
// order. The final (possibly improper) tail, if any, is dropped, since
// reversing an improper list is not meaningful.
func (p *Pair) Reverse() *Pair {
	var result interface{} = TheEmptyList
	for p != nil {
		result = Cons(p.car, result)
		next, ok := p.cdr.(*Pair)
		if !ok {
			break
		}
		p = next
	}
	r, _ := result.(*Pair)
	return r
}

// Map applies f to every element of the proper list and returns a new
// proper list of the results.
func (p *Pair) Map(f func(interface{}) interface{}) *Pair {
	if p == nil {
		return nil
	}
	head := NewPair(f(p.car))
	tail := head
	rest := p.cdr
	for {
		next, ok := rest.(*Pair)
		if !ok {
			break
		}
		tail.cdr = NewPair(f(next.car))
		tail = tail.cdr.(*Pair)
		rest = next.cdr
	}
	return head
}

// String returns the printed form of the pair using Scheme list
// syntax, including the dotted-tail form for improper lists.
func (p *Pair) String() string {
	buf := new(bytes.Buffer)
	stringifyBuffer(p, buf)
	return buf.String()
}

// Car returns the car of v, which must be a *Pair (or, conventionally,
// TheEmptyList, in which case nil is returned as there is nothing to
// take the car of).
func Car(v interface{}) interface{} {
	if p, ok := v.(*Pair); ok {
		return p.First()
	}
	return nil
}

// Cdr returns the cdr of v, defaulting to TheEmptyList when v is not a
// pair.
func Cdr(v interface{}) interface{} {
	if p, ok := v.(*Pair); ok {
		return p.Rest()
	}
	return TheEmptyList
}

// Cxr implements the cNr combinations (cadr, cddr, caddr, ...) named
// by the string of a's and d's between the leading c and trailing r,
// applied right-to-left as Scheme defines them. This generalizes the
// cadr/caddr/cddr helpers scattered throughout nlfiedler-goswat's
// parser.go into a single routine.
func Cxr(ops string, v interface{}) interface{} {
	if len(ops) < 2 || ops[0] != 'c' || ops[len(ops)-1] != 'r' {
		return nil
	}
	inner := ops[1 : len(ops)-1]
	result := v
	for i := len(inner) - 1; i >= 0; i-- {
		switch inner[i] {
		case 'a':
			result = Car(result)
		case 'd':
			result = Cdr(result)
		default:
			return nil
		}
	}
	return result
}

// IsProperList reports whether v is TheEmptyList or a Pair chain that
// terminates in TheEmptyList.
func IsProperList(v interface{}) bool {
	for {
		if v == TheEmptyList {
			return true
		}
		p, ok := v.(*Pair)
		if !ok {
			return false
		}
		v = p.cdr
	}
}

// ListToSlice flattens a proper list into a Go slice, in order.
// Improper tails are ignored once encountered.
func ListToSlice(v interface{}) []interface{} {
	var out []interface{}
	for {
		p, ok := v.(*Pair)
		if !ok {
			break
		}
		out = append(out, p.car)
		v = p.cdr
	}
	return out
}

// SliceToList builds a proper list from a Go slice.
func SliceToList(vs []interface{}) interface{} {
	return List(vs...)
}
