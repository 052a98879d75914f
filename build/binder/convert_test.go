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

package binder_test

import (
	"fmt"
	"testing"

	"github.com/developer-dashboard/vblang/build/binder"
	"github.com/developer-dashboard/vblang/build/ir"
)

func mustTuple(t *testing.T, elems ...ir.Element) *ir.TupleType {
	t.Helper()
	tpl, err := ir.NewTupleType(elems)
	if err != nil {
		t.Fatal(err)
	}
	return tpl
}

func named(name string, typ ir.Type) ir.Element {
	return ir.Element{Name: name, Typ: typ}
}

func unnamed(typ ir.Type) ir.Element {
	return ir.Element{Typ: typ}
}

func TestAtomicClassifier(t *testing.T) {
	tests := []struct {
		src, dst ir.Type
		want     ir.Conversion
	}{
		{src: ir.IntegerType(), dst: ir.IntegerType(), want: ir.ConvIdentity},
		{src: ir.IntegerType(), dst: ir.LongType(), want: ir.ConvWidening},
		{src: ir.IntegerType(), dst: ir.DoubleType(), want: ir.ConvWidening},
		{src: ir.LongType(), dst: ir.IntegerType(), want: ir.ConvNarrowing},
		{src: ir.SingleType(), dst: ir.DoubleType(), want: ir.ConvWidening},
		{src: ir.DoubleType(), dst: ir.SingleType(), want: ir.ConvNarrowing},
		{src: ir.CharType(), dst: ir.StringType(), want: ir.ConvWidening},
		{src: ir.StringType(), dst: ir.CharType(), want: ir.ConvNarrowing},
		{src: ir.StringType(), dst: ir.IntegerType(), want: ir.ConvNarrowing},
		{src: ir.IntegerType(), dst: ir.ObjectType(), want: ir.ConvWidening},
		{src: ir.ObjectType(), dst: ir.IntegerType(), want: ir.ConvNarrowing},
		{src: ir.DateType(), dst: ir.IntegerType(), want: ir.ConvNone},
		{src: ir.BooleanType(), dst: ir.IntegerType(), want: ir.ConvNarrowing},
	}
	var classifier binder.AtomicClassifier
	for i, test := range tests {
		t.Run(fmt.Sprintf("test%d", i), func(t *testing.T) {
			got := classifier.Classify(test.src, test.dst)
			if got != test.want {
				t.Errorf("%s to %s: got %s but want %s", test.src, test.dst, got, test.want)
			}
		})
	}
}

func TestTupleClassification(t *testing.T) {
	intInt := mustTuple(t, unnamed(ir.IntegerType()), unnamed(ir.IntegerType()))
	xyInt := mustTuple(t, named("x", ir.IntegerType()), named("y", ir.IntegerType()))
	abInt := mustTuple(t, named("a", ir.IntegerType()), named("b", ir.IntegerType()))
	longLong := mustTuple(t, unnamed(ir.LongType()), unnamed(ir.LongType()))
	intLong := mustTuple(t, unnamed(ir.IntegerType()), unnamed(ir.LongType()))
	intDate := mustTuple(t, unnamed(ir.IntegerType()), unnamed(ir.DateType()))
	triple := mustTuple(t, unnamed(ir.IntegerType()), unnamed(ir.IntegerType()), unnamed(ir.IntegerType()))
	nested := mustTuple(t, unnamed(ir.IntegerType()), unnamed(intInt))
	nestedWide := mustTuple(t, unnamed(ir.LongType()), unnamed(longLong))

	tests := []struct {
		name     string
		src, dst ir.Type
		want     ir.Conversion
	}{
		// Identity iff every element pair is identical; names are ignored.
		{name: "identity", src: intInt, dst: intInt, want: ir.ConvIdentity},
		{name: "identityNamed", src: xyInt, dst: abInt, want: ir.ConvIdentity},
		// Widening iff no element narrows and at least one widens.
		{name: "widening", src: intInt, dst: longLong, want: ir.ConvWidening},
		{name: "wideningMixed", src: intInt, dst: intLong, want: ir.ConvWidening},
		// Narrowing iff at least one element narrows.
		{name: "narrowing", src: longLong, dst: intInt, want: ir.ConvNarrowing},
		{name: "weakestLink", src: intLong, dst: longLong, want: ir.ConvWidening},
		{name: "narrowingWins", src: longLong, dst: intLong, want: ir.ConvNarrowing},
		// Any impossible element makes the whole conversion impossible.
		{name: "none", src: intDate, dst: mustTuple(t, unnamed(ir.DateType()), unnamed(ir.IntegerType())), want: ir.ConvNone},
		// Differing arity is never convertible.
		{name: "arity", src: intInt, dst: triple, want: ir.ConvNone},
		// Tuples never convert to non-tuples and back.
		{name: "toScalar", src: intInt, dst: ir.IntegerType(), want: ir.ConvNone},
		{name: "fromScalar", src: ir.IntegerType(), dst: intInt, want: ir.ConvNone},
		// Nested tuples compose recursively.
		{name: "nested", src: nested, dst: nestedWide, want: ir.ConvWidening},
		{name: "nestedBack", src: nestedWide, dst: nested, want: ir.ConvNarrowing},
	}
	engine := binder.NewEngine(nil)
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := engine.Classify(test.src, test.dst)
			if got != test.want {
				t.Errorf("%s to %s: got %s but want %s", test.src, test.dst, got, test.want)
			}
		})
	}
}
