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
	"testing"

	"github.com/developer-dashboard/vblang/build/binder"
	"github.com/developer-dashboard/vblang/build/fmterr"
	"github.com/developer-dashboard/vblang/build/ir"
	"github.com/developer-dashboard/vblang/build/syntax"
)

func widgetMethod(name string, body ...syntax.Stmt) *syntax.Member {
	m := method(name, body...)
	m.Params = []*syntax.Param{
		param("objA", "Widget"),
		param("objB", "Widget"),
	}
	return m
}

// objA.RefProp = objB.RefMethod()
//
// Both sides classify as reference-returning: the right side decays
// to a value load, the left side is a direct store into the
// referenced location. No setter is involved.
func TestRefStoreFromRefCall(t *testing.T) {
	m := widgetMethod("Run", &syntax.AssignStmt{
		Lhs: access("objA", "RefProp"),
		Rhs: &syntax.CallExpr{Fun: access("objB", "RefMethod")},
	})
	bm := bindMember(t, binder.Options{}, m)
	if len(bm.Diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", bm.Diags)
	}
	store, ok := bm.Body[0].(*ir.RefStoreStmt)
	if !ok {
		t.Fatalf("expected a reference store, got %T", bm.Body[0])
	}
	if store.Access.Member.Name != "RefProp" {
		t.Errorf("store targets %s but want RefProp", store.Access.Member.Name)
	}
	if _, isCall := store.X.(*ir.CallExpr); !isCall {
		t.Errorf("store value must be the call result, got %T", store.X)
	}
}

// Dim v As Integer = objA.RefProp
//
// Reading through a reference-returning access loads the referenced
// value immediately: the reference itself never escapes.
func TestRefReadDecaysToLoad(t *testing.T) {
	m := widgetMethod("Run", &syntax.DimStmt{
		Name:  ident("v"),
		Type:  typeRef("Integer"),
		Value: access("objA", "RefProp"),
	})
	bm := bindMember(t, binder.Options{}, m)
	if len(bm.Diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", bm.Diags)
	}
	decl := bm.Body[0].(*ir.VarDeclStmt)
	load, ok := decl.X.(*ir.RefLoad)
	if !ok {
		t.Fatalf("expected a reference load, got %T", decl.X)
	}
	if load.Access.Member.Name != "RefProp" {
		t.Errorf("load reads %s but want RefProp", load.Access.Member.Name)
	}
}

func TestReadOnlyRefStoreFails(t *testing.T) {
	m := widgetMethod("Run", &syntax.AssignStmt{
		Lhs: access("objA", "RefGet"),
		Rhs: intLit("1"),
	})
	bm := bindMember(t, binder.Options{}, m)
	if len(bm.Diags) == 0 {
		t.Fatalf("expected a read-only store error")
	}
	if len(bm.Body) != 0 {
		t.Errorf("a rejected store must not bind, got %T", bm.Body[0])
	}
}

func TestOrdinaryPropertyAssignUsesSetter(t *testing.T) {
	m := widgetMethod("Run", &syntax.AssignStmt{
		Lhs: access("objA", "Value"),
		Rhs: intLit("3"),
	})
	bm := bindMember(t, binder.Options{}, m)
	if len(bm.Diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", bm.Diags)
	}
	if _, ok := bm.Body[0].(*ir.PropertySetStmt); !ok {
		t.Errorf("expected a property set, got %T", bm.Body[0])
	}
}

func TestAssignToMethodFails(t *testing.T) {
	m := widgetMethod("Run", &syntax.AssignStmt{
		Lhs: access("objA", "Compute"),
		Rhs: intLit("3"),
	})
	bm := bindMember(t, binder.Options{}, m)
	if len(bm.Diags) == 0 {
		t.Errorf("expected an error assigning to a method")
	}
}

func lateMethod(name string, body ...syntax.Stmt) *syntax.Member {
	m := method(name, body...)
	m.Params = []*syntax.Param{
		param("o", "Object"),
		param("w", "Widget"),
	}
	return m
}

// o.Process(w.RefProp)
//
// The call is late-bound. The writable reference-returning argument
// is passed by value with a copy-back into its location after the
// call; a read-only one is passed by value alone.
func TestLateCallCopyBack(t *testing.T) {
	m := lateMethod("Run", &syntax.ExprStmt{
		X: &syntax.CallExpr{
			Fun:  access("o", "Process"),
			Args: []syntax.Expr{access("w", "RefProp"), access("w", "RefGet")},
		},
	})
	bm := bindMember(t, binder.Options{}, m)
	if len(bm.Diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", bm.Diags)
	}
	call, ok := bm.Body[0].(*ir.ExprStmt).X.(*ir.LateCall)
	if !ok {
		t.Fatalf("expected a late-bound call, got %T", bm.Body[0].(*ir.ExprStmt).X)
	}
	if len(call.CopyBacks) != 1 {
		t.Fatalf("expected one copy-back, got %d", len(call.CopyBacks))
	}
	back := call.CopyBacks[0]
	if back.ArgIndex != 0 {
		t.Errorf("copy-back targets argument %d but want 0", back.ArgIndex)
	}
	if back.Dest.Member.Name != "RefProp" {
		t.Errorf("copy-back destination is %s but want RefProp", back.Dest.Member.Name)
	}
	for i, arg := range call.Args {
		if _, isLoad := arg.(*ir.RefLoad); !isLoad {
			t.Errorf("argument %d must cross the boundary as a value load, got %T", i, arg)
		}
	}
}

// o.RefProp = 1
//
// The erased candidate recorded for RefProp is reference-returning,
// so the late-bound assignment is rejected.
func TestLateBoundRefAssignmentRejected(t *testing.T) {
	m := lateMethod("Run", &syntax.AssignStmt{
		Lhs: access("o", "RefProp"),
		Rhs: intLit("1"),
	})
	bm := bindMember(t, binder.Options{}, m)
	if !hasCode(bm, fmterr.IllegalLateBoundReferenceAssignment) {
		t.Errorf("expected code %v, got %v", fmterr.IllegalLateBoundReferenceAssignment, diagCodes(bm))
	}
}

func TestLateBoundOrdinarySet(t *testing.T) {
	m := lateMethod("Run", &syntax.AssignStmt{
		Lhs: access("o", "Plain"),
		Rhs: intLit("1"),
	})
	bm := bindMember(t, binder.Options{}, m)
	if len(bm.Diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", bm.Diags)
	}
	set, ok := bm.Body[0].(*ir.LateSetStmt)
	if !ok {
		t.Fatalf("expected a late set, got %T", bm.Body[0])
	}
	if set.Name != "Plain" {
		t.Errorf("late set targets %s but want Plain", set.Name)
	}
}

// Reading any member off an Object receiver stays late-bound, with or
// without an erased candidate.
func TestLateBoundRead(t *testing.T) {
	m := lateMethod("Run", &syntax.DimStmt{
		Name:  ident("v"),
		Value: access("o", "Anything"),
	})
	bm := bindMember(t, binder.Options{}, m)
	if len(bm.Diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", bm.Diags)
	}
	decl := bm.Body[0].(*ir.VarDeclStmt)
	read, ok := decl.X.(*ir.LateRead)
	if !ok {
		t.Fatalf("expected a late read, got %T", decl.X)
	}
	if !read.Type().Equal(ir.ObjectType()) {
		t.Errorf("a late read is Object-typed, got %s", read.Type())
	}
}

func TestStaticCallArity(t *testing.T) {
	m := widgetMethod("Run", &syntax.ExprStmt{
		X: &syntax.CallExpr{Fun: access("objA", "Compute")},
	})
	bm := bindMember(t, binder.Options{}, m)
	if len(bm.Diags) == 0 {
		t.Errorf("expected an argument count error")
	}
}
