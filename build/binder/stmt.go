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
	"github.com/developer-dashboard/vblang/build/ir"
	"github.com/developer-dashboard/vblang/build/syntax"
)

func (s *scope) bindStmt(st syntax.Stmt) (ir.Stmt, bool) {
	s.stmt = st
	switch stmt := st.(type) {
	case *syntax.DimStmt:
		return s.bindDim(stmt)
	case *syntax.AssignStmt:
		return s.bindAssign(stmt)
	case *syntax.DecomposeStmt:
		return s.bindDecompose(stmt)
	case *syntax.ExprStmt:
		x, ok := s.bindExpr(stmt.X)
		return &ir.ExprStmt{Src: stmt, X: x}, ok
	default:
		return nil, s.err().Appendf(st, "unsupported statement %T", st)
	}
}

func (s *scope) bindDim(stmt *syntax.DimStmt) (ir.Stmt, bool) {
	var typ ir.Type
	var value ir.Expr
	ok := true
	if stmt.Type != nil {
		typ, ok = s.resolveTypeExpr(stmt.Type)
		if stmt.Value != nil {
			var valueOk bool
			value, valueOk = s.bindExprWith(stmt.Value, typ)
			ok = ok && valueOk
		}
	} else {
		if stmt.Value == nil {
			return nil, s.err().Appendf(stmt, "%s needs a type or an initializer", stmt.Name.Name)
		}
		var valueOk bool
		value, valueOk = s.bindExpr(stmt.Value)
		ok = ok && valueOk
		typ = value.Type()
	}
	stor := &ir.LocalVarStorage{Src: stmt.Name, Typ: typ}
	if !s.ns.define(stor) {
		ok = s.err().Appendf(stmt.Name, "%s redeclared in this block", stmt.Name.Name)
	}
	return &ir.VarDeclStmt{Src: stmt, Stor: stor, X: value}, ok
}

func (s *scope) bindAssign(stmt *syntax.AssignStmt) (ir.Stmt, bool) {
	switch lhs := stmt.Lhs.(type) {
	case *syntax.Ident:
		stor, ok := s.findStorage(lhs)
		if !ok {
			return nil, false
		}
		value, valueOk := s.bindExprWith(stmt.Rhs, stor.Type())
		return &ir.AssignStmt{Src: stmt, Stor: stor, X: value}, valueOk
	case *syntax.MemberAccess:
		return s.bindMemberAssign(stmt, lhs)
	default:
		return nil, s.err().Appendf(stmt.Lhs, "expression is not assignable")
	}
}

func (s *scope) bindMemberAssign(stmt *syntax.AssignStmt, lhs *syntax.MemberAccess) (ir.Stmt, bool) {
	info, ok := s.classifyAccess(lhs)
	if !ok {
		return nil, false
	}
	switch info.Kind {
	case LateBound:
		return s.bindLateSet(stmt, info)
	case ReferenceReturning:
		return s.bindRefStore(stmt, info)
	default:
		if !info.Member.IsProperty {
			return nil, s.err().Appendf(lhs.Sel, "cannot assign to method %s", lhs.Sel.Name)
		}
		value, valueOk := s.bindExprWith(stmt.Rhs, info.Member.Result)
		if !valueOk {
			return nil, false
		}
		return &ir.PropertySetStmt{Src: stmt, X: info.Recv, Member: info.Member, Value: value}, true
	}
}
