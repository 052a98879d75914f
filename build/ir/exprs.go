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
	"github.com/developer-dashboard/vblang/build/syntax"
)

type (
	// AtomicLit is a typed literal value.
	AtomicLit struct {
		Src *syntax.BasicLit
		Typ Type
		Val string
	}

	// ValueRef reads the value held by a storage.
	ValueRef struct {
		Src  *syntax.Ident
		Stor Storage
	}

	// TupleValue is a tuple literal reclassified to a concrete tuple
	// type, either from a target type or from the natural type of its
	// operands.
	TupleValue struct {
		Src   syntax.Node
		Typ   *TupleType
		Elems []Expr
	}

	// ElementRead reads one element of a tuple value.
	ElementRead struct {
		Src   syntax.Node
		X     Expr
		Index int
	}

	// ConvertExpr applies a classified conversion to a value.
	ConvertExpr struct {
		Src  syntax.Node
		X    Expr
		Typ  Type
		Conv Conversion
	}

	// MemberRead reads an ordinary-value member.
	MemberRead struct {
		Src    *syntax.MemberAccess
		X      Expr
		Member *Member
	}

	// RefAccess denotes the storage location produced by a
	// reference-returning member access. It is only ever consumed
	// immediately by a RefLoad, a RefStoreStmt, or a late call
	// copy-back; it cannot be captured.
	RefAccess struct {
		Src    *syntax.MemberAccess
		X      Expr
		Member *Member
	}

	// RefLoad reads the value currently stored at a referenced
	// location.
	RefLoad struct {
		Src    syntax.Node
		Access *RefAccess
	}

	// CallExpr calls a statically resolved member.
	CallExpr struct {
		Src    *syntax.CallExpr
		X      Expr
		Member *Member
		Args   []Expr
	}

	// CopyBack rewrites a by-value argument copy into its original
	// referenced location after a late-bound call returns.
	CopyBack struct {
		ArgIndex int
		Dest     *RefAccess
	}

	// LateCall calls a member resolved at run time. Arguments are
	// passed by value; CopyBacks records the locations to write back
	// after the call returns. The callee sees erased types only.
	LateCall struct {
		Src       *syntax.CallExpr
		X         Expr
		Name      string
		Args      []Expr
		CopyBacks []*CopyBack
	}

	// LateRead reads a member resolved at run time.
	LateRead struct {
		Src  *syntax.MemberAccess
		X    Expr
		Name string
	}
)

var (
	_ Expr = (*AtomicLit)(nil)
	_ Expr = (*ValueRef)(nil)
	_ Expr = (*TupleValue)(nil)
	_ Expr = (*ElementRead)(nil)
	_ Expr = (*ConvertExpr)(nil)
	_ Expr = (*MemberRead)(nil)
	_ Expr = (*RefAccess)(nil)
	_ Expr = (*RefLoad)(nil)
	_ Expr = (*CallExpr)(nil)
	_ Expr = (*LateCall)(nil)
	_ Expr = (*LateRead)(nil)
)

func (*AtomicLit) node() {}

// Source returns the syntax node the literal was bound from.
func (x *AtomicLit) Source() syntax.Node { return x.Src }

// Type of the literal.
func (x *AtomicLit) Type() Type { return x.Typ }

func (*ValueRef) node() {}

// Source returns the identifier referencing the storage.
func (x *ValueRef) Source() syntax.Node { return x.Src }

// Type of the value held by the storage.
func (x *ValueRef) Type() Type { return x.Stor.Type() }

func (*TupleValue) node() {}

// Source returns the syntax node of the tuple literal.
func (x *TupleValue) Source() syntax.Node { return x.Src }

// Type of the tuple value.
func (x *TupleValue) Type() Type { return x.Typ }

func (*ElementRead) node() {}

// Source returns the syntax node of the element read.
func (x *ElementRead) Source() syntax.Node { return x.Src }

// Type of the element being read.
func (x *ElementRead) Type() Type {
	t, ok := x.X.Type().(*TupleType)
	if !ok || x.Index >= t.Arity() {
		return InvalidType()
	}
	return t.ElementAt(x.Index).Typ
}

func (*ConvertExpr) node() {}

// Source returns the syntax node of the converted expression.
func (x *ConvertExpr) Source() syntax.Node { return x.Src }

// Type the value is converted to.
func (x *ConvertExpr) Type() Type { return x.Typ }

func (*MemberRead) node() {}

// Source returns the member access syntax node.
func (x *MemberRead) Source() syntax.Node { return x.Src }

// Type of the member value.
func (x *MemberRead) Type() Type { return x.Member.Result }

func (*RefAccess) node() {}

// Source returns the member access syntax node.
func (x *RefAccess) Source() syntax.Node { return x.Src }

// Type of the values held at the referenced location.
func (x *RefAccess) Type() Type { return x.Member.Result }

func (*RefLoad) node() {}

// Source returns the syntax node of the read.
func (x *RefLoad) Source() syntax.Node { return x.Src }

// Type of the loaded value.
func (x *RefLoad) Type() Type { return x.Access.Type() }

func (*CallExpr) node() {}

// Source returns the call syntax node.
func (x *CallExpr) Source() syntax.Node { return x.Src }

// Type of the call result.
func (x *CallExpr) Type() Type { return x.Member.Result }

func (*LateCall) node() {}

// Source returns the call syntax node.
func (x *LateCall) Source() syntax.Node { return x.Src }

// Type of a late-bound call is Object: resolution happens at run time.
func (x *LateCall) Type() Type { return ObjectType() }

func (*LateRead) node() {}

// Source returns the member access syntax node.
func (x *LateRead) Source() syntax.Node { return x.Src }

// Type of a late-bound read is Object: resolution happens at run time.
func (x *LateRead) Type() Type { return ObjectType() }
