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

// Package binder performs the semantic analysis of tuple types and
// reference-returning member accesses: it resolves element names,
// classifies conversions, governs reference-return use sites, and
// lowers decomposition statements.
//
// Binding one member is single-threaded and synchronous. Separate
// units may be bound concurrently on one Binder: the type model is
// immutable, and per-node results are memoized idempotently so that
// concurrent bindings of the same node converge to one cached result.
package binder

import (
	"context"
	"go/token"

	"go.uber.org/multierr"

	"github.com/developer-dashboard/vblang/build/fmterr"
	"github.com/developer-dashboard/vblang/build/ir"
	"github.com/developer-dashboard/vblang/build/syntax"
)

// Options configures binding behaviour.
type Options struct {
	// Strict reports narrowing conversions as errors instead of
	// warnings.
	Strict bool

	// ImplicitResultAliasing exposes the element names of a member's
	// tuple result as assignable aliases inside the member body.
	// Name collisions with parameters are rejected under either
	// setting.
	ImplicitResultAliasing bool
}

// Env resolves symbols declared outside the unit being bound:
// named types and member signatures of an already-loaded symbol table.
// Lookups are synchronous, non-blocking reads.
type Env interface {
	// LookupType returns a type given its source name.
	LookupType(name string) (ir.Type, bool)

	// LookupMember resolves a member on a receiver type.
	// For the Object receiver, an implementation may still return the
	// erased candidate signature recorded in metadata; binding of the
	// access stays late-bound.
	LookupMember(recv ir.Type, name string) (*ir.Member, bool)
}

// Binder binds compilation units against a read-only environment.
type Binder struct {
	fset   *token.FileSet
	env    Env
	opts   Options
	engine *Engine
	cache  nodeCache
}

// New returns a binder for a file set and an environment.
func New(fset *token.FileSet, env Env, opts Options) *Binder {
	return &Binder{
		fset:   fset,
		env:    env,
		opts:   opts,
		engine: NewEngine(nil),
	}
}

// Engine returns the conversion engine of the binder.
func (b *Binder) Engine() *Engine {
	return b.engine
}

type (
	// BoundMember is the binding result of one member declaration.
	BoundMember struct {
		Src    *syntax.Member
		Member *ir.Member
		Body   []ir.Stmt

		// Diags holds every diagnostic of the member, warnings
		// included. A member with only warnings is still usable.
		Diags []error
	}

	// BoundUnit is the binding result of a compilation unit.
	BoundUnit struct {
		Members []*BoundMember
	}
)

// BindUnit binds every member of a unit. Binding is cooperatively
// cancellable: the context is checked between top-level declarations
// and cancelling aborts the remainder of the unit.
//
// All diagnostics are recoverable: a failing declaration is bound with
// placeholder types so later declarations still produce their own
// diagnostics. The returned error aggregates the fatal diagnostics of
// the whole unit.
func (b *Binder) BindUnit(ctx context.Context, unit *syntax.Unit) (*BoundUnit, error) {
	bound := &BoundUnit{}
	var err error
	for _, m := range unit.Members {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return bound, multierr.Append(err, ctxErr)
		}
		bm := b.bindMember(m)
		bound.Members = append(bound.Members, bm)
		for _, diag := range bm.Diags {
			if fmterr.IsWarning(diag) {
				continue
			}
			err = multierr.Append(err, diag)
		}
	}
	return bound, err
}

func (b *Binder) bindMember(m *syntax.Member) *BoundMember {
	var errs fmterr.Errors
	app := errs.NewAppender(b.fset)
	bm := &BoundMember{Src: m}

	scope, member, ok := b.memberScope(app, m)
	bm.Member = member
	if ok {
		for _, st := range m.Body {
			stmt, stmtOk := scope.bindStmt(st)
			if stmtOk {
				bm.Body = append(bm.Body, stmt)
			}
		}
	}
	if diags := errs.ToError(); diags != nil {
		bm.Diags = errs.Errors()
	}
	return bm
}
