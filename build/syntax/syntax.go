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

// Package syntax defines the untyped tree nodes delivered by the parser.
//
// The parser is a separate component: it has already disambiguated the
// grammar (in particular the mandatory parentheses of a decomposition
// target in assignment position) before the binder sees these nodes.
// Positions are go/token positions against the file set of the
// compilation unit.
package syntax

import "go/token"

type (
	// Node is implemented by all syntax nodes.
	Node interface {
		Pos() token.Pos
	}

	// Expr is implemented by all expression nodes.
	Expr interface {
		Node
		exprNode()
	}

	// TypeExpr is implemented by all type expression nodes.
	TypeExpr interface {
		Node
		typeExprNode()
	}

	// Stmt is implemented by all statement nodes.
	Stmt interface {
		Node
		stmtNode()
	}
)

// Ident is a name occurrence.
type Ident struct {
	NamePos token.Pos
	Name    string
}

// Pos returns the position of the identifier.
func (x *Ident) Pos() token.Pos { return x.NamePos }

func (*Ident) exprNode() {}

// LitKind is the kind of a basic literal.
type LitKind int

// Basic literal kinds.
const (
	IntLit LitKind = iota
	FloatLit
	StringLit
	BoolLit
)

// BasicLit is an atomic literal value.
type BasicLit struct {
	ValuePos token.Pos
	Kind     LitKind
	Value    string
}

// Pos returns the position of the literal.
func (x *BasicLit) Pos() token.Pos { return x.ValuePos }

func (*BasicLit) exprNode() {}

// TupleLit is a tuple literal, for example (x:=0, y:=1) or (0, 1).
// The literal carries no type: the binder reclassifies it once a
// target type is known, or from the natural type of its operands.
type TupleLit struct {
	Lparen token.Pos
	Elems  []*TupleLitElem
}

// Pos returns the position of the opening parenthesis.
func (x *TupleLit) Pos() token.Pos { return x.Lparen }

func (*TupleLit) exprNode() {}

// TupleLitElem is one element of a tuple literal.
// Name is nil unless the element uses the name:=value form.
type TupleLitElem struct {
	Name *Ident
	X    Expr
}

// Pos returns the position of the element.
func (x *TupleLitElem) Pos() token.Pos {
	if x.Name != nil {
		return x.Name.Pos()
	}
	return x.X.Pos()
}

// MemberAccess is a member access expression, for example obj.Prop.
type MemberAccess struct {
	X   Expr
	Sel *Ident
}

// Pos returns the position of the receiver expression.
func (x *MemberAccess) Pos() token.Pos { return x.X.Pos() }

func (*MemberAccess) exprNode() {}

// CallExpr is a call expression.
type CallExpr struct {
	Fun    Expr
	Lparen token.Pos
	Args   []Expr
}

// Pos returns the position of the callee.
func (x *CallExpr) Pos() token.Pos { return x.Fun.Pos() }

func (*CallExpr) exprNode() {}

// TypeRef references a type by name, for example Integer.
type TypeRef struct {
	Name *Ident
}

// Pos returns the position of the type name.
func (x *TypeRef) Pos() token.Pos { return x.Name.Pos() }

func (*TypeRef) typeExprNode() {}

// TupleTypeExpr is a tuple type expression, for example
// (x As Integer, y As Integer) or (Integer, String).
// A name in this position declares a new element: it is the only
// place where element names are declared.
type TupleTypeExpr struct {
	Lparen token.Pos
	Elems  []*TupleTypeElem
}

// Pos returns the position of the opening parenthesis.
func (x *TupleTypeExpr) Pos() token.Pos { return x.Lparen }

func (*TupleTypeExpr) typeExprNode() {}

// TupleTypeElem is one element of a tuple type expression.
// Name is nil for an unnamed element.
type TupleTypeElem struct {
	Name *Ident
	Type TypeExpr
}

// Pos returns the position of the element.
func (x *TupleTypeElem) Pos() token.Pos {
	if x.Name != nil {
		return x.Name.Pos()
	}
	return x.Type.Pos()
}

// DimStmt declares a local variable with an optional declared type
// and an optional initializer.
type DimStmt struct {
	DimPos token.Pos
	Name   *Ident
	Type   TypeExpr
	Value  Expr
}

// Pos returns the position of the declaration keyword.
func (s *DimStmt) Pos() token.Pos { return s.DimPos }

func (*DimStmt) stmtNode() {}

// AssignStmt assigns the value of Rhs to Lhs.
type AssignStmt struct {
	Lhs    Expr
	TokPos token.Pos
	Rhs    Expr
}

// Pos returns the position of the assignment target.
func (s *AssignStmt) Pos() token.Pos { return s.Lhs.Pos() }

func (*AssignStmt) stmtNode() {}

// ExprStmt is an expression used as a statement, for example a call.
type ExprStmt struct {
	X Expr
}

// Pos returns the position of the expression.
func (s *ExprStmt) Pos() token.Pos { return s.X.Pos() }

func (*ExprStmt) stmtNode() {}

type (
	// DecompElem is one position of a decomposition target:
	// an existing variable, a new declaration, or a nested target.
	DecompElem interface {
		Node
		decompElem()
	}

	// DecompDecl declares a new variable at a decomposition position.
	// Type is nil when the variable type is inferred from the
	// corresponding source element.
	DecompDecl struct {
		Name *Ident
		Type TypeExpr
	}

	// DecompTarget is a parenthesized decomposition target.
	// The parentheses are mandatory in assignment position; the parser
	// guarantees the form before the binder sees it.
	DecompTarget struct {
		Lparen token.Pos
		Elems  []DecompElem
	}
)

// Pos returns the position of the declared name.
func (x *DecompDecl) Pos() token.Pos { return x.Name.Pos() }

func (*DecompDecl) decompElem() {}

// Pos returns the position of the opening parenthesis.
func (x *DecompTarget) Pos() token.Pos { return x.Lparen }

func (*DecompTarget) decompElem() {}

func (*Ident) decompElem() {}

// DecomposeStmt splits a tuple value into per-position targets.
type DecomposeStmt struct {
	Target *DecompTarget
	TokPos token.Pos
	Rhs    Expr
}

// Pos returns the position of the decomposition target.
func (s *DecomposeStmt) Pos() token.Pos { return s.Target.Pos() }

func (*DecomposeStmt) stmtNode() {}

// Param is a parameter declaration of a member.
type Param struct {
	Name *Ident
	Type TypeExpr
}

// Pos returns the position of the parameter name.
func (p *Param) Pos() token.Pos { return p.Name.Pos() }

// Member is a member declaration: a method or a property.
type Member struct {
	NamePos token.Pos
	Name    *Ident
	Params  []*Param

	// Result is the declared result type, nil for a subroutine.
	Result TypeExpr

	// RefReturn marks the member as returning a reference to storage
	// rather than a value. RefWritable allows assigning through it.
	RefReturn   bool
	RefWritable bool

	Body []Stmt
}

// Pos returns the position of the member declaration.
func (m *Member) Pos() token.Pos { return m.NamePos }

// Unit is a compilation unit: the members of one source file.
type Unit struct {
	FileStart token.Pos
	Members   []*Member
}

// Pos returns the position of the start of the unit.
func (u *Unit) Pos() token.Pos { return u.FileStart }
