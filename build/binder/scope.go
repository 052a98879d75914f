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
	"slices"
	"strings"

	"golang.org/x/exp/maps"

	"github.com/developer-dashboard/vblang/base/ordered"
	"github.com/developer-dashboard/vblang/base/uname"
	"github.com/developer-dashboard/vblang/build/fmterr"
	"github.com/developer-dashboard/vblang/build/ir"
	"github.com/developer-dashboard/vblang/build/syntax"
)

// namespace maps case-folded names to storages. Scopes are explicit
// nested records: a lookup walks the parent chain.
type namespace struct {
	parent *namespace
	m      *ordered.Map[string, ir.Storage]
}

func newNamespace(parent *namespace) *namespace {
	return &namespace{
		parent: parent,
		m:      ordered.NewMap[string, ir.Storage](),
	}
}

func fold(name string) string {
	return strings.ToLower(name)
}

func (ns *namespace) find(name string) (ir.Storage, bool) {
	stor, ok := ns.m.Load(fold(name))
	if ok {
		return stor, true
	}
	if ns.parent == nil {
		return nil, false
	}
	return ns.parent.find(name)
}

func (ns *namespace) isLocal(name string) bool {
	return ns.m.Has(fold(name))
}

func (ns *namespace) define(stor ir.Storage) bool {
	name := stor.NameDef().Name
	if ns.isLocal(name) {
		return false
	}
	ns.m.Store(fold(name), stor)
	return true
}

// scope is the resolution context of one member body.
type scope struct {
	binder *Binder
	app    *fmterr.Appender
	member *ir.Member
	ns     *namespace

	// tmps names the temporaries of lowered statements, uniquely per
	// member body.
	tmps *uname.Unique

	// stmt is the statement currently being bound. Reference-return
	// use tokens are only valid within it.
	stmt syntax.Stmt
}

func (s *scope) child() *scope {
	child := *s
	child.ns = newNamespace(s.ns)
	return &child
}

func (s *scope) err() *fmterr.Appender {
	return s.app
}

// memberScope builds the resolution scope of a member body. Parameters
// and the element names of a tuple result share one flat scope: a
// return-tuple element name colliding with a parameter name fails
// regardless of where either appears in the source.
func (b *Binder) memberScope(app *fmterr.Appender, m *syntax.Member) (*scope, *ir.Member, bool) {
	s := &scope{
		binder: b,
		app:    app,
		ns:     newNamespace(nil),
		tmps:   uname.New(),
	}
	member := &ir.Member{Name: m.Name.Name, Result: ir.VoidType()}
	s.member = member

	ok := true
	flat := map[string]*syntax.Ident{}
	declare := func(ident *syntax.Ident) bool {
		folded := fold(ident.Name)
		if prev, in := flat[folded]; in {
			app.AppendCodef(fmterr.DuplicateElementName, ident,
				"%s already declared in this member at %s",
				ident.Name, fmterr.PosString(app.FSet().FSet, prev.Pos()))
			return false
		}
		flat[folded] = ident
		return true
	}

	for _, param := range m.Params {
		typ, typOk := s.resolveTypeExpr(param.Type)
		ok = ok && typOk
		member.Params = append(member.Params, typ)
		if !declare(param.Name) {
			ok = false
			continue
		}
		s.ns.define(&ir.ParamStorage{Src: param.Name, Typ: typ})
	}

	if m.Result != nil {
		result, resultOk := s.resolveTypeExpr(m.Result)
		ok = ok && resultOk
		member.Result = result
		if m.RefReturn {
			member.Ref = &ir.RefReturn{Writable: m.RefWritable}
		}
		if tuple, isTuple := result.(*ir.TupleType); isTuple {
			ok = s.declareResultElements(tuple, m, declare) && ok
		}
	}
	return s, member, ok
}

// declareResultElements checks tuple result element names against the
// flat member scope and, when implicit result aliasing is enabled,
// defines each named element as an assignable alias in the body.
func (s *scope) declareResultElements(tuple *ir.TupleType, m *syntax.Member, declare func(*syntax.Ident) bool) bool {
	names := resultElementIdents(m)
	ok := true
	for i, elem := range tuple.Elements() {
		if !elem.Named() {
			continue
		}
		ident := names[elem.Name]
		if ident == nil {
			ident = &syntax.Ident{NamePos: m.Pos(), Name: elem.Name}
		}
		if !declare(ident) {
			ok = false
			continue
		}
		if !s.binder.opts.ImplicitResultAliasing {
			continue
		}
		s.ns.define(&ir.ResultElementStorage{Src: ident, Typ: elem.Typ, Index: i})
	}
	return ok
}

// resultElementIdents maps declared result element names to their
// source identifiers for precise diagnostic positions.
func resultElementIdents(m *syntax.Member) map[string]*syntax.Ident {
	tupleExpr, ok := m.Result.(*syntax.TupleTypeExpr)
	if !ok {
		return nil
	}
	idents := map[string]*syntax.Ident{}
	for _, elem := range tupleExpr.Elems {
		if elem.Name != nil {
			idents[elem.Name.Name] = elem.Name
		}
	}
	return idents
}

// declaredNames returns the names visible in the local scope record,
// sorted for deterministic diagnostics.
func (ns *namespace) declaredNames() []string {
	byName := map[string]bool{}
	for name := range ns.m.Keys() {
		byName[name] = true
	}
	names := maps.Keys(byName)
	slices.Sort(names)
	return names
}

func (s *scope) findStorage(ident *syntax.Ident) (ir.Storage, bool) {
	stor, ok := s.ns.find(ident.Name)
	if !ok {
		s.err().Appendf(ident, "%s is not declared (declared names: %s)",
			ident.Name, strings.Join(s.ns.declaredNames(), ", "))
		return nil, false
	}
	return stor, true
}
