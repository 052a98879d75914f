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

package binder

import (
	"github.com/developer-dashboard/vblang/build/fmterr"
	"github.com/developer-dashboard/vblang/build/ir"
	"github.com/developer-dashboard/vblang/build/syntax"
)

// Classifier computes the conversion classification between two
// non-tuple types. It is the seam to the general type system: the
// engine composes tuple conversions on top of it.
type Classifier interface {
	Classify(src, dst ir.Type) ir.Conversion
}

// AtomicClassifier classifies conversions between scalar types
// following the numeric widening lattice of the language.
type AtomicClassifier struct{}

var _ Classifier = AtomicClassifier{}

// widens maps a kind to the kinds it widens to. A widening conversion
// never loses information.
var widens = map[ir.Kind][]ir.Kind{
	ir.SByteKind:    {ir.ShortKind, ir.IntegerKind, ir.LongKind, ir.DecimalKind, ir.SingleKind, ir.DoubleKind},
	ir.ByteKind:     {ir.ShortKind, ir.UShortKind, ir.IntegerKind, ir.UIntegerKind, ir.LongKind, ir.ULongKind, ir.DecimalKind, ir.SingleKind, ir.DoubleKind},
	ir.ShortKind:    {ir.IntegerKind, ir.LongKind, ir.DecimalKind, ir.SingleKind, ir.DoubleKind},
	ir.UShortKind:   {ir.IntegerKind, ir.UIntegerKind, ir.LongKind, ir.ULongKind, ir.DecimalKind, ir.SingleKind, ir.DoubleKind},
	ir.IntegerKind:  {ir.LongKind, ir.DecimalKind, ir.SingleKind, ir.DoubleKind},
	ir.UIntegerKind: {ir.LongKind, ir.ULongKind, ir.DecimalKind, ir.SingleKind, ir.DoubleKind},
	ir.LongKind:     {ir.DecimalKind, ir.SingleKind, ir.DoubleKind},
	ir.ULongKind:    {ir.DecimalKind, ir.SingleKind, ir.DoubleKind},
	ir.DecimalKind:  {ir.SingleKind, ir.DoubleKind},
	ir.SingleKind:   {ir.DoubleKind},
	ir.CharKind:     {ir.StringKind},
}

func widensTo(src, dst ir.Kind) bool {
	for _, k := range widens[src] {
		if k == dst {
			return true
		}
	}
	return false
}

// Classify returns the conversion classification from src to dst.
func (AtomicClassifier) Classify(src, dst ir.Type) ir.Conversion {
	sk, dk := src.Kind(), dst.Kind()
	switch {
	case sk == ir.InvalidKind || dk == ir.InvalidKind:
		return ir.ConvNone
	case src.Equal(dst):
		return ir.ConvIdentity
	case dk == ir.ObjectKind:
		return ir.ConvWidening
	case sk == ir.ObjectKind:
		return ir.ConvNarrowing
	case widensTo(sk, dk):
		return ir.ConvWidening
	case widensTo(dk, sk):
		return ir.ConvNarrowing
	case ir.IsNumericKind(sk) && ir.IsNumericKind(dk):
		return ir.ConvNarrowing
	case sk == ir.StringKind && (ir.IsNumericKind(dk) || dk == ir.BooleanKind || dk == ir.CharKind || dk == ir.DateKind):
		return ir.ConvNarrowing
	case dk == ir.StringKind && (ir.IsNumericKind(sk) || sk == ir.BooleanKind || sk == ir.DateKind):
		return ir.ConvNarrowing
	case sk == ir.BooleanKind && ir.IsNumericKind(dk):
		return ir.ConvNarrowing
	case dk == ir.BooleanKind && ir.IsNumericKind(sk):
		return ir.ConvNarrowing
	default:
		return ir.ConvNone
	}
}

// Engine computes conversion classifications, composing tuple
// conversions from per-element classifications.
type Engine struct {
	elems Classifier
}

// NewEngine returns an engine delegating non-tuple classifications to
// the given classifier, or to the atomic classifier when nil.
func NewEngine(elems Classifier) *Engine {
	if elems == nil {
		elems = AtomicClassifier{}
	}
	return &Engine{elems: elems}
}

// Classify returns the conversion classification from src to dst.
//
// A tuple conversion requires equal arity and composes per-element
// classifications under a weakest-link rule: the whole conversion is
// never safer than its least safe element. Element names never change
// the classification.
func (e *Engine) Classify(src, dst ir.Type) ir.Conversion {
	srcTuple, srcIsTuple := src.(*ir.TupleType)
	dstTuple, dstIsTuple := dst.(*ir.TupleType)
	if !srcIsTuple && !dstIsTuple {
		return e.elems.Classify(src, dst)
	}
	if !srcIsTuple || !dstIsTuple {
		return ir.ConvNone
	}
	if srcTuple.Arity() != dstTuple.Arity() {
		return ir.ConvNone
	}
	conv := ir.ConvIdentity
	for i, elem := range srcTuple.Elements() {
		conv = min(conv, e.Classify(elem.Typ, dstTuple.ElementAt(i).Typ))
		if conv == ir.ConvNone {
			return ir.ConvNone
		}
	}
	return conv
}

// checkAssign classifies a conversion at an assignment or
// target-typing site and reports the resulting diagnostics:
// impossible conversions and arity mismatches are errors, narrowing
// follows the strict-checking policy, and a name mismatch between
// fully named, structurally equal tuples is a non-fatal warning.
// Invalid types stay silent: their diagnostics were already emitted.
func (s *scope) checkAssign(node syntax.Node, src, dst ir.Type) (ir.Conversion, bool) {
	if !ir.IsValid(src) || !ir.IsValid(dst) {
		return ir.ConvIdentity, true
	}
	engine := s.binder.engine
	conv := engine.Classify(src, dst)
	switch conv {
	case ir.ConvNone:
		srcTuple, srcIsTuple := src.(*ir.TupleType)
		dstTuple, dstIsTuple := dst.(*ir.TupleType)
		if srcIsTuple && dstIsTuple && srcTuple.Arity() != dstTuple.Arity() {
			return conv, s.err().AppendCodef(fmterr.TupleArityMismatch, node,
				"cannot convert %s to %s: arity %d does not match %d",
				src, dst, srcTuple.Arity(), dstTuple.Arity())
		}
		return conv, s.err().Appendf(node, "cannot convert %s to %s", src, dst)
	case ir.ConvNarrowing:
		if s.binder.opts.Strict {
			return conv, s.err().AppendCodef(fmterr.NarrowingTupleConversion, node,
				"narrowing conversion from %s to %s", src, dst)
		}
		s.err().Warnf(fmterr.NarrowingTupleConversion, node,
			"narrowing conversion from %s to %s", src, dst)
	}
	s.checkNameMismatch(node, src, dst)
	return conv, true
}

func (s *scope) checkNameMismatch(node syntax.Node, src, dst ir.Type) {
	srcTuple, ok := src.(*ir.TupleType)
	if !ok {
		return
	}
	dstTuple, ok := dst.(*ir.TupleType)
	if !ok {
		return
	}
	if !srcTuple.NameMismatch(dstTuple) {
		return
	}
	s.err().Warnf(fmterr.NameMismatchWarning, node,
		"tuple element names of %s do not match %s", srcTuple, dstTuple)
}

// convertTo wraps an expression with a conversion to the target type
// when the classification requires one.
func (s *scope) convertTo(node syntax.Node, x ir.Expr, dst ir.Type) (ir.Expr, bool) {
	conv, ok := s.checkAssign(node, x.Type(), dst)
	if !ok || conv == ir.ConvIdentity {
		return x, ok
	}
	return &ir.ConvertExpr{Src: node, X: x, Typ: dst, Conv: conv}, true
}
