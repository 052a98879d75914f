// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ir

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/developer-dashboard/vblang/base/iter"
	"github.com/developer-dashboard/vblang/base/ordered"
	"github.com/developer-dashboard/vblang/base/stringseq"
)

// MinTupleArity is the smallest number of elements a tuple type can have.
const MinTupleArity = 2

// Element is one element of a tuple type: an optional name and a type.
// Names are case-insensitive for identity and case-preserving for display.
type Element struct {
	Name string
	Typ  Type
}

// Named returns true if the element carries a name.
func (e Element) Named() bool { return e.Name != "" }

// String representation of the element.
func (e Element) String() string {
	if !e.Named() {
		return e.Typ.String()
	}
	return e.Name + " As " + e.Typ.String()
}

// TupleType is an ordered, fixed-arity composite type.
// Element names do not take part in type identity.
// A TupleType is immutable once constructed and safe to share
// across binding threads.
type TupleType struct {
	elems []Element

	// names maps case-folded element names to their position.
	names *ordered.Map[string, int]
}

var _ Type = (*TupleType)(nil)

// NewTupleType builds a tuple type from elements.
// Two elements sharing a case-insensitive name make construction fail.
func NewTupleType(elems []Element) (*TupleType, error) {
	if len(elems) < MinTupleArity {
		return nil, errors.Errorf("tuple type needs at least %d elements, got %d", MinTupleArity, len(elems))
	}
	t := &TupleType{
		elems: append([]Element{}, elems...),
		names: ordered.NewMap[string, int](),
	}
	for i, elem := range elems {
		if !elem.Named() {
			continue
		}
		folded := strings.ToLower(elem.Name)
		if prev, in := t.names.Load(folded); in {
			return nil, errors.Errorf("tuple element name %s at position %d duplicates element %d", elem.Name, i, prev)
		}
		t.names.Store(folded, i)
	}
	return t, nil
}

// UnnamedTuple builds a tuple type from element types only.
func UnnamedTuple(types ...Type) (*TupleType, error) {
	elems := make([]Element, len(types))
	for i, typ := range types {
		elems[i] = Element{Typ: typ}
	}
	return NewTupleType(elems)
}

func (*TupleType) node() {}

// Kind of the tuple type.
func (*TupleType) Kind() Kind { return TupleKind }

// Arity returns the number of elements.
func (t *TupleType) Arity() int { return len(t.elems) }

// ElementAt returns the element at a position.
func (t *TupleType) ElementAt(i int) Element { return t.elems[i] }

// Elements returns an iterator over the elements.
func (t *TupleType) Elements() func(func(int, Element) bool) {
	return iter.Enumerate(t.elems)
}

// FindElement returns the position of the element declared with the
// given name, matching case-insensitively. Returns -1 when no element
// carries the name.
func (t *TupleType) FindElement(name string) int {
	pos, ok := t.names.Load(strings.ToLower(name))
	if !ok {
		return -1
	}
	return pos
}

// FullyNamed returns true if every element carries a name.
func (t *TupleType) FullyNamed() bool {
	return t.names.Size() == len(t.elems)
}

// Equal returns true if the other type is a tuple type with the same
// element types at every position. Names are ignored: identity is
// structural.
func (t *TupleType) Equal(other Type) bool {
	o, ok := other.(*TupleType)
	if !ok {
		return false
	}
	if len(t.elems) != len(o.elems) {
		return false
	}
	for i, elem := range t.elems {
		if !elem.Typ.Equal(o.elems[i].Typ) {
			return false
		}
	}
	return true
}

// NameMismatch returns true if the two tuple types are structurally
// equal, both fully named, and differ in at least one positional name
// (case-insensitively). The mismatch never changes a conversion
// classification; it only feeds a non-fatal diagnostic.
func (t *TupleType) NameMismatch(other *TupleType) bool {
	if !t.Equal(other) {
		return false
	}
	if !t.FullyNamed() || !other.FullyNamed() {
		return false
	}
	for i, elem := range t.elems {
		if !strings.EqualFold(elem.Name, other.elems[i].Name) {
			return true
		}
	}
	return false
}

// String representation of the tuple type.
func (t *TupleType) String() string {
	var b strings.Builder
	b.WriteString("(")
	stringseq.AppendStringer(&b, iter.All(t.elems), ", ")
	b.WriteString(")")
	return b.String()
}
