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

package ir_test

import (
	"fmt"
	"testing"

	"github.com/developer-dashboard/vblang/build/ir"
)

func namedTuple(t *testing.T, elems ...ir.Element) *ir.TupleType {
	t.Helper()
	tpl, err := ir.NewTupleType(elems)
	if err != nil {
		t.Fatal(err)
	}
	return tpl
}

func TestNewTupleType(t *testing.T) {
	tests := []struct {
		elems   []ir.Element
		wantErr bool
	}{
		{
			elems: []ir.Element{
				{Name: "x", Typ: ir.IntegerType()},
				{Name: "y", Typ: ir.IntegerType()},
			},
		},
		{
			elems: []ir.Element{
				{Typ: ir.IntegerType()},
				{Typ: ir.StringType()},
			},
		},
		{
			// Names collide case-insensitively.
			elems: []ir.Element{
				{Name: "total", Typ: ir.IntegerType()},
				{Name: "Total", Typ: ir.IntegerType()},
			},
			wantErr: true,
		},
		{
			// Arity below the minimum.
			elems: []ir.Element{
				{Name: "x", Typ: ir.IntegerType()},
			},
			wantErr: true,
		},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("test%d", i), func(t *testing.T) {
			_, err := ir.NewTupleType(test.elems)
			if gotErr := err != nil; gotErr != test.wantErr {
				t.Errorf("unexpected error state: got error %v but want error %v", err, test.wantErr)
			}
		})
	}
}

func TestTupleStructuralEquality(t *testing.T) {
	xy := namedTuple(t,
		ir.Element{Name: "x", Typ: ir.IntegerType()},
		ir.Element{Name: "y", Typ: ir.IntegerType()},
	)
	ab := namedTuple(t,
		ir.Element{Name: "a", Typ: ir.IntegerType()},
		ir.Element{Name: "b", Typ: ir.IntegerType()},
	)
	unnamed := namedTuple(t,
		ir.Element{Typ: ir.IntegerType()},
		ir.Element{Typ: ir.IntegerType()},
	)
	other := namedTuple(t,
		ir.Element{Typ: ir.IntegerType()},
		ir.Element{Typ: ir.StringType()},
	)
	triple := namedTuple(t,
		ir.Element{Typ: ir.IntegerType()},
		ir.Element{Typ: ir.IntegerType()},
		ir.Element{Typ: ir.IntegerType()},
	)

	// Names never take part in identity.
	if !xy.Equal(ab) {
		t.Errorf("%s and %s must be the same type", xy, ab)
	}
	if !xy.Equal(unnamed) {
		t.Errorf("%s and %s must be the same type", xy, unnamed)
	}
	if xy.Equal(other) {
		t.Errorf("%s and %s must not be the same type", xy, other)
	}
	if xy.Equal(triple) {
		t.Errorf("%s and %s must not be the same type", xy, triple)
	}
	if xy.Equal(ir.IntegerType()) {
		t.Errorf("%s must not equal a scalar type", xy)
	}
}

func TestTupleNameMismatch(t *testing.T) {
	xy := namedTuple(t,
		ir.Element{Name: "x", Typ: ir.IntegerType()},
		ir.Element{Name: "y", Typ: ir.IntegerType()},
	)
	ab := namedTuple(t,
		ir.Element{Name: "a", Typ: ir.IntegerType()},
		ir.Element{Name: "b", Typ: ir.IntegerType()},
	)
	xyCased := namedTuple(t,
		ir.Element{Name: "X", Typ: ir.IntegerType()},
		ir.Element{Name: "Y", Typ: ir.IntegerType()},
	)
	partial := namedTuple(t,
		ir.Element{Name: "x", Typ: ir.IntegerType()},
		ir.Element{Typ: ir.IntegerType()},
	)

	if !xy.NameMismatch(ab) {
		t.Errorf("%s vs %s: want a name mismatch", xy, ab)
	}
	// Case differences alone are not a mismatch.
	if xy.NameMismatch(xyCased) {
		t.Errorf("%s vs %s: case difference must not be a mismatch", xy, xyCased)
	}
	// The check only applies to fully named pairs.
	if xy.NameMismatch(partial) {
		t.Errorf("%s vs %s: partially named tuple must not be a mismatch", xy, partial)
	}
}

func TestTupleFindElement(t *testing.T) {
	tpl := namedTuple(t,
		ir.Element{Name: "First", Typ: ir.IntegerType()},
		ir.Element{Name: "second", Typ: ir.StringType()},
	)
	tests := []struct {
		name string
		want int
	}{
		{name: "First", want: 0},
		{name: "first", want: 0},
		{name: "SECOND", want: 1},
		{name: "third", want: -1},
	}
	for _, test := range tests {
		if got := tpl.FindElement(test.name); got != test.want {
			t.Errorf("FindElement(%q): got %d but want %d", test.name, got, test.want)
		}
	}
}

func TestTupleString(t *testing.T) {
	tpl := namedTuple(t,
		ir.Element{Name: "x", Typ: ir.IntegerType()},
		ir.Element{Typ: ir.StringType()},
	)
	want := "(x As Integer, String)"
	if got := tpl.String(); got != want {
		t.Errorf("unexpected string: got %q but want %q", got, want)
	}
}
