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

// bindDecompose lowers a decomposition statement into one elementary
// bind or assign operation per target position, executed left to
// right. The source is evaluated once into a temporary; nested
// targets recurse. The parser has already enforced the mandatory
// parentheses of the target, so the binder only checks arity and
// element conversions.
func (s *scope) bindDecompose(stmt *syntax.DecomposeStmt) (ir.Stmt, bool) {
	source, ok := s.bindExpr(stmt.Rhs)
	if !ok {
		return nil, false
	}
	return s.lowerDecompose(stmt, stmt.Target, source)
}

func (s *scope) lowerDecompose(stmt *syntax.DecomposeStmt, target *syntax.DecompTarget, source ir.Expr) (ir.Stmt, bool) {
	tuple, isTuple := source.Type().(*ir.TupleType)
	if !isTuple {
		if !ir.IsValid(source.Type()) {
			return nil, false
		}
		return nil, s.err().Appendf(target, "cannot decompose a value of type %s", source.Type())
	}
	if len(target.Elems) != tuple.Arity() {
		return nil, s.err().AppendCodef(fmterr.DecompositionArityMismatch, target,
			"decomposition target has %d position(s) but the source tuple %s has %d",
			len(target.Elems), tuple, tuple.Arity())
	}
	tmp := &ir.LocalVarStorage{
		Src: &syntax.Ident{NamePos: target.Pos(), Name: s.tmps.Name("decomp")},
		Typ: tuple,
	}
	ext := &ir.DecomposeStmt{Src: stmt, Tmp: tmp, X: source}
	ok := true
	for i, elem := range target.Elems {
		read := &ir.ElementRead{Src: elem, X: &ir.ValueRef{Src: tmp.Src, Stor: tmp}, Index: i}
		step, stepOk := s.lowerPosition(stmt, elem, read)
		ok = ok && stepOk
		if stepOk {
			ext.Steps = append(ext.Steps, step)
		}
	}
	return ext, ok
}

// lowerPosition lowers one target position: an assignment to an
// existing variable, a new variable binding, or a nested
// decomposition.
func (s *scope) lowerPosition(stmt *syntax.DecomposeStmt, elem syntax.DecompElem, read *ir.ElementRead) (ir.Stmt, bool) {
	switch target := elem.(type) {
	case *syntax.Ident:
		stor, ok := s.findStorage(target)
		if !ok {
			return nil, false
		}
		value, valueOk := s.convertTo(target, read, stor.Type())
		return &ir.AssignStmt{Src: elem, Stor: stor, X: value}, valueOk
	case *syntax.DecompDecl:
		typ := read.Type()
		value := ir.Expr(read)
		ok := true
		if target.Type != nil {
			typ, ok = s.resolveTypeExpr(target.Type)
			if ok {
				value, ok = s.convertTo(target, read, typ)
			}
		}
		stor := &ir.LocalVarStorage{Src: target.Name, Typ: typ}
		if !s.ns.define(stor) {
			ok = s.err().Appendf(target.Name, "%s redeclared in this block", target.Name.Name)
		}
		return &ir.VarDeclStmt{Src: elem, Stor: stor, X: value}, ok
	case *syntax.DecompTarget:
		return s.lowerDecompose(stmt, target, read)
	default:
		return nil, s.err().Appendf(elem, "unsupported decomposition target %T", elem)
	}
}
