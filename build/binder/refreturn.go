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

// AccessKind classifies a member access site.
type AccessKind int

// Access site classifications.
const (
	// OrdinaryValue is a member access producing a plain value.
	OrdinaryValue AccessKind = iota
	// ReferenceReturning is a member access producing a reference to
	// storage.
	ReferenceReturning
	// LateBound is a member access resolved at run time. The dynamic
	// tier sees erased types and a copy-back flag only, never element
	// names.
	LateBound
)

// AccessInfo is the classification of one member access site.
// It is computed once per site and not mutated afterwards.
type AccessInfo struct {
	Src  *syntax.MemberAccess
	Recv ir.Expr
	Kind AccessKind

	// Member is the resolved signature. For a late-bound access it is
	// the erased candidate recorded in metadata, or nil when unknown.
	Member *ir.Member
}

// RefReturning returns true for a statically classified
// reference-returning access.
func (info *AccessInfo) RefReturning() bool {
	return info.Kind == ReferenceReturning
}

// classifyAccess classifies a member access site. The result is
// memoized per node: binding the same site twice, including
// concurrently, observes one cached classification.
func (s *scope) classifyAccess(ma *syntax.MemberAccess) (*AccessInfo, bool) {
	info := s.binder.cache.access(ma, func() *AccessInfo {
		return s.computeAccess(ma)
	})
	return info, info != nil && (info.Kind == LateBound || info.Member != nil)
}

func (s *scope) computeAccess(ma *syntax.MemberAccess) *AccessInfo {
	recv, ok := s.bindExpr(ma.X)
	if !ok {
		return &AccessInfo{Src: ma, Recv: recv}
	}
	info := &AccessInfo{Src: ma, Recv: recv}
	if recv.Type().Kind() == ir.ObjectKind {
		info.Kind = LateBound
		// The erased candidate, when metadata recorded one, carries
		// the reference-return flag the dynamic tier needs.
		if s.binder.env != nil {
			info.Member, _ = s.binder.env.LookupMember(ir.ObjectType(), ma.Sel.Name)
		}
		return info
	}
	if s.binder.env == nil {
		s.err().Appendf(ma.Sel, "%s has no member %s", recv.Type(), ma.Sel.Name)
		return info
	}
	member, found := s.binder.env.LookupMember(recv.Type(), ma.Sel.Name)
	if !found {
		s.err().Appendf(ma.Sel, "%s has no member %s", recv.Type(), ma.Sel.Name)
		return info
	}
	info.Member = member
	if member.RefReturning() {
		info.Kind = ReferenceReturning
	}
	return info
}

// useToken governs the consumption of a reference-returning access.
// A token is valid for exactly one use inside the statement that
// issued it: there is no way to retain the reference itself, so a
// second use or a use from another statement is a capture error.
type useToken struct {
	info *AccessInfo
	stmt syntax.Stmt
	used bool
}

func (s *scope) issueToken(info *AccessInfo) *useToken {
	return &useToken{info: info, stmt: s.stmt}
}

func (s *scope) consumeToken(tok *useToken, at syntax.Node) bool {
	if tok.used || tok.stmt != s.stmt {
		return s.err().AppendCodef(fmterr.IllegalReferenceCapture, at,
			"the reference returned by %s cannot be retained: it must be read or assigned where it is produced",
			tok.info.Src.Sel.Name)
	}
	tok.used = true
	return true
}

// bindMemberRead binds a member access in value position.
// Reading a reference-returning access loads the value currently
// stored at the referenced location: the reference decays immediately.
func (s *scope) bindMemberRead(ma *syntax.MemberAccess) (ir.Expr, bool) {
	info, ok := s.classifyAccess(ma)
	if !ok {
		return invalidExpr(ma), false
	}
	switch info.Kind {
	case LateBound:
		return &ir.LateRead{Src: ma, X: info.Recv, Name: ma.Sel.Name}, true
	case ReferenceReturning:
		tok := s.issueToken(info)
		if !s.consumeToken(tok, ma) {
			return invalidExpr(ma), false
		}
		access := &ir.RefAccess{Src: ma, X: info.Recv, Member: info.Member}
		return &ir.RefLoad{Src: ma, Access: access}, true
	default:
		return &ir.MemberRead{Src: ma, X: info.Recv, Member: info.Member}, true
	}
}

// bindRefStore binds an assignment whose target is a
// reference-returning access: the value is stored into the referenced
// location directly, and no setter is ever involved. When the value
// itself comes from a reference-returning access, the store copies
// between the two locations without aliasing them.
func (s *scope) bindRefStore(st *syntax.AssignStmt, info *AccessInfo) (ir.Stmt, bool) {
	if !info.Member.Writable() {
		return nil, s.err().Appendf(st.Lhs,
			"cannot assign through %s: the referenced storage is read-only",
			info.Src.Sel.Name)
	}
	tok := s.issueToken(info)
	if !s.consumeToken(tok, st.Lhs) {
		return nil, false
	}
	access := &ir.RefAccess{Src: info.Src, X: info.Recv, Member: info.Member}
	value, ok := s.bindExprWith(st.Rhs, info.Member.Result)
	if !ok {
		return nil, false
	}
	return &ir.RefStoreStmt{Src: st, Access: access, X: value}, true
}

// bindLateSet binds an assignment whose target is a late-bound member
// access. When the erased candidate signature is reference-returning,
// the assignment is rejected: the binder cannot decide, before the
// call site resolves, whether copy-back is meaningful.
func (s *scope) bindLateSet(st *syntax.AssignStmt, info *AccessInfo) (ir.Stmt, bool) {
	if info.Member != nil && info.Member.RefReturning() {
		return nil, s.err().AppendCodef(fmterr.IllegalLateBoundReferenceAssignment, st.Lhs,
			"cannot assign %s through late binding: the member returns a reference",
			info.Src.Sel.Name)
	}
	value, ok := s.bindExpr(st.Rhs)
	if !ok {
		return nil, false
	}
	return &ir.LateSetStmt{Src: st, X: info.Recv, Name: info.Src.Sel.Name, Value: value}, true
}

// bindCall binds a call expression. A late-bound call passes every
// argument by value; an argument produced by a writable
// reference-returning access additionally copies the value back into
// its location once the call returns, reproducing reference-parameter
// semantics across the dynamic boundary.
func (s *scope) bindCall(call *syntax.CallExpr) (ir.Expr, bool) {
	ma, isAccess := call.Fun.(*syntax.MemberAccess)
	if !isAccess {
		return invalidExpr(call), s.err().Appendf(call.Fun, "expression is not callable")
	}
	info, ok := s.classifyAccess(ma)
	if !ok {
		return invalidExpr(call), false
	}
	if info.Kind == LateBound {
		return s.bindLateCall(call, info)
	}
	member := info.Member
	if len(call.Args) != len(member.Params) {
		return invalidExpr(call), s.err().Appendf(call,
			"%s expects %d argument(s), got %d", member.Name, len(member.Params), len(call.Args))
	}
	args := make([]ir.Expr, len(call.Args))
	argsOk := true
	for i, arg := range call.Args {
		var argOk bool
		args[i], argOk = s.bindExprWith(arg, member.Params[i])
		argsOk = argsOk && argOk
	}
	ext := &ir.CallExpr{Src: call, X: info.Recv, Member: member, Args: args}
	if info.Kind == ReferenceReturning {
		tok := s.issueToken(info)
		if !s.consumeToken(tok, call) {
			return invalidExpr(call), false
		}
	}
	return ext, argsOk
}

func (s *scope) bindLateCall(call *syntax.CallExpr, info *AccessInfo) (ir.Expr, bool) {
	ext := &ir.LateCall{Src: call, X: info.Recv, Name: info.Src.Sel.Name}
	ok := true
	for i, arg := range call.Args {
		x, argOk := s.bindLateArgument(arg, i, ext)
		ok = ok && argOk
		ext.Args = append(ext.Args, x)
	}
	return ext, ok
}

// bindLateArgument binds one argument of a late-bound call. The value
// crosses the boundary erased: names are a compile-time-only concept.
func (s *scope) bindLateArgument(arg syntax.Expr, index int, ext *ir.LateCall) (ir.Expr, bool) {
	ma, isAccess := arg.(*syntax.MemberAccess)
	if !isAccess {
		return s.bindExpr(arg)
	}
	info, ok := s.classifyAccess(ma)
	if !ok {
		return invalidExpr(arg), false
	}
	if info.Kind != ReferenceReturning {
		return s.bindMemberRead(ma)
	}
	tok := s.issueToken(info)
	if !s.consumeToken(tok, arg) {
		return invalidExpr(arg), false
	}
	access := &ir.RefAccess{Src: ma, X: info.Recv, Member: info.Member}
	if info.Member.Writable() {
		ext.CopyBacks = append(ext.CopyBacks, &ir.CopyBack{ArgIndex: index, Dest: access})
	}
	return &ir.RefLoad{Src: ma, Access: access}, true
}
