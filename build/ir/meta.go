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

import "github.com/pkg/errors"

// Element names cross the metadata boundary as an auxiliary attribute
// attached to the unnamed underlying tuple representation: a flat list
// of names, order-matched to the tuple positions of the type tree in
// depth-first pre-order, with an empty string for an unnamed position.
// Interop partners that do not understand names read and write the
// underlying representation untouched.

// Erase returns the type with all tuple element names removed,
// recursively. This is the shape the late binder and interop partners
// see: names are a compile-time-only concept.
func Erase(typ Type) Type {
	t, ok := typ.(*TupleType)
	if !ok {
		return typ
	}
	elems := make([]Element, t.Arity())
	for i, elem := range t.Elements() {
		elems[i] = Element{Typ: Erase(elem.Typ)}
	}
	// Construction cannot fail: no names, arity unchanged.
	erased, err := NewTupleType(elems)
	if err != nil {
		return InvalidType()
	}
	return erased
}

func appendNames(typ Type, names []string, any bool) ([]string, bool) {
	t, ok := typ.(*TupleType)
	if !ok {
		return names, any
	}
	for _, elem := range t.Elements() {
		names = append(names, elem.Name)
		any = any || elem.Named()
	}
	for _, elem := range t.Elements() {
		names, any = appendNames(elem.Typ, names, any)
	}
	return names, any
}

// EncodeElementNames returns the element-name attribute for a type,
// or nil when no element anywhere in the type carries a name (the
// attribute is then omitted entirely).
func EncodeElementNames(typ Type) []string {
	names, any := appendNames(typ, nil, false)
	if !any {
		return nil
	}
	return names
}

func applyNames(typ Type, names []string) (Type, []string, error) {
	t, ok := typ.(*TupleType)
	if !ok {
		return typ, names, nil
	}
	elems := make([]Element, t.Arity())
	for i, elem := range t.Elements() {
		if len(names) == 0 {
			return nil, nil, errors.Errorf("element name attribute too short for type %s", typ)
		}
		elems[i] = Element{Name: names[0], Typ: elem.Typ}
		names = names[1:]
	}
	for i := range elems {
		var err error
		elems[i].Typ, names, err = applyNames(elems[i].Typ, names)
		if err != nil {
			return nil, nil, err
		}
	}
	named, err := NewTupleType(elems)
	if err != nil {
		return nil, nil, err
	}
	return named, names, nil
}

// DecodeElementNames applies an element-name attribute read from
// metadata onto an (unnamed) underlying type. A nil attribute yields
// the type unchanged: an unnamed tuple.
func DecodeElementNames(typ Type, names []string) (Type, error) {
	if names == nil {
		return typ, nil
	}
	named, rest, err := applyNames(typ, names)
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, errors.Errorf("element name attribute has %d extra entries for type %s", len(rest), typ)
	}
	return named, nil
}
