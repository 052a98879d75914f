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
	// VarDeclStmt declares a local variable, with an optional
	// initializer.
	VarDeclStmt struct {
		Src  syntax.Node
		Stor Storage
		X    Expr
	}

	// AssignStmt stores a value into a storage.
	AssignStmt struct {
		Src  syntax.Node
		Stor Storage
		X    Expr
	}

	// RefStoreStmt stores a value into the location referenced by a
	// reference-returning access. No setter is involved: the store
	// writes the referenced storage directly.
	RefStoreStmt struct {
		Src    syntax.Node
		Access *RefAccess
		X      Expr
	}

	// PropertySetStmt assigns an ordinary, statically resolved
	// property through its setter.
	PropertySetStmt struct {
		Src    syntax.Node
		X      Expr
		Member *Member
		Value  Expr
	}

	// LateSetStmt assigns a property resolved at run time.
	// Only ordinary properties can be assigned this way; a late-bound
	// reference-returning target is rejected during binding.
	LateSetStmt struct {
		Src   syntax.Node
		X     Expr
		Name  string
		Value Expr
	}

	// DecomposeStmt is the lowered form of a decomposition: the source
	// is evaluated once into Tmp, then Steps run left to right, one
	// per target position.
	DecomposeStmt struct {
		Src   *syntax.DecomposeStmt
		Tmp   *LocalVarStorage
		X     Expr
		Steps []Stmt
	}

	// ExprStmt evaluates an expression for its effects.
	ExprStmt struct {
		Src syntax.Node
		X   Expr
	}
)

var (
	_ Stmt = (*VarDeclStmt)(nil)
	_ Stmt = (*AssignStmt)(nil)
	_ Stmt = (*RefStoreStmt)(nil)
	_ Stmt = (*PropertySetStmt)(nil)
	_ Stmt = (*LateSetStmt)(nil)
	_ Stmt = (*DecomposeStmt)(nil)
	_ Stmt = (*ExprStmt)(nil)
)

func (*VarDeclStmt) node() {}

// Source returns the declaration syntax node.
func (s *VarDeclStmt) Source() syntax.Node { return s.Src }

func (*AssignStmt) node() {}

// Source returns the assignment syntax node.
func (s *AssignStmt) Source() syntax.Node { return s.Src }

func (*RefStoreStmt) node() {}

// Source returns the assignment syntax node.
func (s *RefStoreStmt) Source() syntax.Node { return s.Src }

func (*PropertySetStmt) node() {}

// Source returns the assignment syntax node.
func (s *PropertySetStmt) Source() syntax.Node { return s.Src }

func (*LateSetStmt) node() {}

// Source returns the assignment syntax node.
func (s *LateSetStmt) Source() syntax.Node { return s.Src }

func (*DecomposeStmt) node() {}

// Source returns the decomposition syntax node.
func (s *DecomposeStmt) Source() syntax.Node { return s.Src }

func (*ExprStmt) node() {}

// Source returns the statement syntax node.
func (s *ExprStmt) Source() syntax.Node { return s.Src }
