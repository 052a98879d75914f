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
	"strings"

	"github.com/pkg/errors"

	"github.com/developer-dashboard/vblang/build/fmterr"
	"github.com/developer-dashboard/vblang/build/ir"
	"github.com/developer-dashboard/vblang/build/syntax"
)

// ElementRef is the binding result of a name appearing in a tuple
// literal element. A name in literal position only ever references an
// element already declared by the target type (or describes the
// literal's own synthesized type); it never declares an element on
// the target.
type ElementRef struct {
	Name *syntax.Ident

	// Position is the position of the referenced element in the
	// target type, or -1 when the name matched no element.
	Position int
}

// Unmatched returns true when the name matched no target element.
func (r ElementRef) Unmatched() bool { return r.Position < 0 }

// resolveTypeExpr resolves a type expression. A name appearing in a
// tuple type element declares a new element: this is the only place
// element names are declared.
func (s *scope) resolveTypeExpr(te syntax.TypeExpr) (ir.Type, bool) {
	switch t := te.(type) {
	case *syntax.TypeRef:
		return s.resolveTypeRef(t)
	case *syntax.TupleTypeExpr:
		return s.resolveTupleTypeExpr(t)
	case nil:
		return ir.InvalidType(), s.err().Append(fmterr.Internal(errors.New("missing type expression")))
	default:
		return ir.InvalidType(), s.err().Appendf(te, "unsupported type expression %T", te)
	}
}

func (s *scope) resolveTypeRef(t *syntax.TypeRef) (ir.Type, bool) {
	if s.binder.env != nil {
		if typ, ok := s.binder.env.LookupType(t.Name.Name); ok {
			return typ, true
		}
	}
	typ := ir.AtomicFromString(t.Name.Name)
	if !ir.IsValid(typ) {
		return ir.InvalidType(), s.err().Appendf(t, "type %s is not defined", t.Name.Name)
	}
	return typ, true
}

func (s *scope) resolveTupleTypeExpr(t *syntax.TupleTypeExpr) (ir.Type, bool) {
	if len(t.Elems) < ir.MinTupleArity {
		return ir.InvalidType(), s.err().Appendf(t, "tuple type needs at least %d elements", ir.MinTupleArity)
	}
	elems := make([]ir.Element, len(t.Elems))
	seen := map[string]*syntax.Ident{}
	ok := true
	for i, elem := range t.Elems {
		typ, typOk := s.resolveTypeExpr(elem.Type)
		ok = ok && typOk
		elems[i] = ir.Element{Typ: typ}
		if elem.Name == nil {
			continue
		}
		folded := fold(elem.Name.Name)
		if prev, in := seen[folded]; in {
			ok = s.err().AppendCodef(fmterr.DuplicateElementName, elem.Name,
				"tuple element name %s duplicates element at %s",
				elem.Name.Name, fmterr.PosString(s.app.FSet().FSet, prev.Pos()))
			continue
		}
		seen[folded] = elem.Name
		elems[i].Name = elem.Name.Name
	}
	if !ok {
		return ir.InvalidType(), false
	}
	tuple, err := ir.NewTupleType(elems)
	if err != nil {
		return ir.InvalidType(), s.err().AppendAt(t, err)
	}
	return tuple, true
}

// bindExpr binds an expression with no target type.
func (s *scope) bindExpr(e syntax.Expr) (ir.Expr, bool) {
	switch x := e.(type) {
	case *syntax.Ident:
		return s.bindIdent(x)
	case *syntax.BasicLit:
		return s.bindBasicLit(x)
	case *syntax.TupleLit:
		res := s.bindTupleLit(x, nil)
		return res.expr, res.ok
	case *syntax.MemberAccess:
		return s.bindMemberRead(x)
	case *syntax.CallExpr:
		return s.bindCall(x)
	default:
		return invalidExpr(e), s.err().Appendf(e, "unsupported expression %T", e)
	}
}

// bindExprWith binds an expression against a target type and checks
// the conversion to it. A tuple literal is reclassified directly under
// the target tuple type instead of taking its natural type first.
func (s *scope) bindExprWith(e syntax.Expr, target ir.Type) (ir.Expr, bool) {
	if lit, isLit := e.(*syntax.TupleLit); isLit {
		if tuple, isTuple := target.(*ir.TupleType); isTuple {
			res := s.bindTupleLit(lit, tuple)
			return res.expr, res.ok
		}
	}
	x, ok := s.bindExpr(e)
	if !ok {
		return x, false
	}
	return s.convertTo(e, x, target)
}

func invalidExpr(src syntax.Node) ir.Expr {
	return &ir.AtomicLit{Typ: ir.InvalidType()}
}

func (s *scope) bindIdent(x *syntax.Ident) (ir.Expr, bool) {
	stor, ok := s.findStorage(x)
	if !ok {
		return invalidExpr(x), false
	}
	return &ir.ValueRef{Src: x, Stor: stor}, true
}

func litType(kind syntax.LitKind) ir.Type {
	switch kind {
	case syntax.IntLit:
		return ir.IntegerType()
	case syntax.FloatLit:
		return ir.DoubleType()
	case syntax.StringLit:
		return ir.StringType()
	case syntax.BoolLit:
		return ir.BooleanType()
	default:
		return ir.InvalidType()
	}
}

func (s *scope) bindBasicLit(x *syntax.BasicLit) (ir.Expr, bool) {
	typ := litType(x.Kind)
	if !ir.IsValid(typ) {
		return invalidExpr(x), s.err().Appendf(x, "unsupported literal kind")
	}
	return &ir.AtomicLit{Src: x, Typ: typ, Val: x.Value}, true
}

// bindTupleLit reclassifies a tuple literal. The literal itself is
// type-less: under a target type, elements are matched to target
// elements by position and names resolve as references; with no
// target, the literal takes the natural type of its operands and its
// names become the names of that synthesized type.
// Results are memoized per node: concurrent bindings converge to one
// cached value.
func (s *scope) bindTupleLit(lit *syntax.TupleLit, target *ir.TupleType) *literalResult {
	return s.binder.cache.literal(lit, func() *literalResult {
		if target != nil {
			return s.bindTargetedTupleLit(lit, target)
		}
		return s.bindNaturalTupleLit(lit)
	})
}

func (s *scope) bindTargetedTupleLit(lit *syntax.TupleLit, target *ir.TupleType) *literalResult {
	res := &literalResult{ok: true}
	if len(lit.Elems) != target.Arity() {
		s.err().AppendCodef(fmterr.TupleArityMismatch, lit,
			"tuple literal has %d elements but target type %s has %d",
			len(lit.Elems), target, target.Arity())
		res.ok = false
	}
	n := min(len(lit.Elems), target.Arity())
	elems := make([]ir.Expr, 0, n)
	for i := 0; i < n; i++ {
		elem := lit.Elems[i]
		if elem.Name != nil {
			res.ok = s.resolveElementName(&res.refs, elem.Name, i, target) && res.ok
		}
		x, ok := s.bindExprWith(elem.X, target.ElementAt(i).Typ)
		res.ok = res.ok && ok
		elems = append(elems, x)
	}
	res.expr = &ir.TupleValue{Src: lit, Typ: target, Elems: elems}
	return res
}

// resolveElementName resolves a literal element name against the
// target type. Elements are matched by position only: a name declared
// at another position warns and never reorders.
func (s *scope) resolveElementName(refs *[]ElementRef, name *syntax.Ident, pos int, target *ir.TupleType) bool {
	declared := target.FindElement(name.Name)
	*refs = append(*refs, ElementRef{Name: name, Position: declared})
	if declared < 0 {
		return s.err().AppendCodef(fmterr.UnmatchedElementName, name,
			"tuple type %s has no element named %s", target, name.Name)
	}
	declaredName := target.ElementAt(pos).Name
	if declaredName != "" && !strings.EqualFold(declaredName, name.Name) {
		s.err().Warnf(fmterr.NameMismatchWarning, name,
			"element name %s does not match %s declared at position %d",
			name.Name, declaredName, pos)
	}
	return true
}

func (s *scope) bindNaturalTupleLit(lit *syntax.TupleLit) *literalResult {
	res := &literalResult{expr: invalidExpr(lit), ok: true}
	if len(lit.Elems) < ir.MinTupleArity {
		s.err().Appendf(lit, "tuple literal needs at least %d elements", ir.MinTupleArity)
		res.ok = false
		return res
	}
	elems := make([]ir.Element, len(lit.Elems))
	exprs := make([]ir.Expr, len(lit.Elems))
	seen := map[string]*syntax.Ident{}
	for i, elem := range lit.Elems {
		x, ok := s.bindExpr(elem.X)
		res.ok = res.ok && ok
		exprs[i] = x
		elems[i] = ir.Element{Typ: x.Type()}
		if elem.Name == nil {
			continue
		}
		folded := fold(elem.Name.Name)
		if prev, in := seen[folded]; in {
			res.ok = s.err().AppendCodef(fmterr.DuplicateElementName, elem.Name,
				"tuple element name %s duplicates element at %s",
				elem.Name.Name, fmterr.PosString(s.app.FSet().FSet, prev.Pos()))
			continue
		}
		seen[folded] = elem.Name
		elems[i].Name = elem.Name.Name
		res.refs = append(res.refs, ElementRef{Name: elem.Name, Position: i})
	}
	if !res.ok {
		return res
	}
	typ, err := ir.NewTupleType(elems)
	if err != nil {
		s.err().AppendAt(lit, err)
		res.ok = false
		return res
	}
	res.expr = &ir.TupleValue{Src: lit, Typ: typ, Elems: exprs}
	return res
}

// ElementRefsOf returns the cached element-name resolution of a tuple
// literal node, for tooling. Returns nil before the node is bound and
// never affects a later binding of the node.
func (b *Binder) ElementRefsOf(lit *syntax.TupleLit) []ElementRef {
	res := b.cache.lookupLiteral(lit)
	if res == nil {
		return nil
	}
	return res.refs
}
