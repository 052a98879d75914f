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
	"github.com/developer-dashboard/vblang/base/sync"
	"github.com/developer-dashboard/vblang/build/ir"
	"github.com/developer-dashboard/vblang/build/syntax"
)

// nodeCache memoizes per-node binding results. Results are computed
// at most once per node from the caller's perspective: concurrent
// computations race to store and every caller observes the winning
// value, so repeated bindings of one node are idempotent.
type nodeCache struct {
	literals sync.Map[*syntax.TupleLit, *literalResult]
	accesses sync.Map[*syntax.MemberAccess, *AccessInfo]
}

// literalResult is the cached reclassification of a tuple literal.
// expr is always non-nil: a failed reclassification caches an invalid
// placeholder so binding can continue.
type literalResult struct {
	expr ir.Expr
	refs []ElementRef
	ok   bool
}

// literal returns the cached reclassification of a literal node,
// computing and storing it on the first call. The cache is keyed by
// node alone: a literal node occurs at exactly one source position in
// one binding context, so its target type is a function of the node.
func (c *nodeCache) literal(node *syntax.TupleLit, compute func() *literalResult) *literalResult {
	if cached, ok := c.literals.Load(node); ok {
		return cached
	}
	res, _ := c.literals.LoadOrStore(node, compute())
	return res
}

// lookupLiteral returns the cached reclassification of a literal node
// without computing one: nil when the node has not been bound.
func (c *nodeCache) lookupLiteral(node *syntax.TupleLit) *literalResult {
	cached, ok := c.literals.Load(node)
	if !ok {
		return nil
	}
	return cached
}

func (c *nodeCache) access(node *syntax.MemberAccess, compute func() *AccessInfo) *AccessInfo {
	if cached, ok := c.accesses.Load(node); ok {
		return cached
	}
	res, _ := c.accesses.LoadOrStore(node, compute())
	return res
}
