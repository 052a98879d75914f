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

import "strings"

// RefReturn describes a member whose result denotes a storage location
// rather than a value. Writable allows assigning through the member:
// assignment then stores into the referenced location and never runs
// a property setter.
type RefReturn struct {
	Writable bool
}

// Member is the resolved signature of a method or property.
type Member struct {
	Name       string
	Recv       Type
	Params     []Type
	Result     Type
	IsProperty bool

	// Ref is non-nil for a reference-returning member.
	Ref *RefReturn
}

// RefReturning returns true if the member result is a reference
// to storage.
func (m *Member) RefReturning() bool {
	return m.Ref != nil
}

// Writable returns true if storage can be assigned through the member.
func (m *Member) Writable() bool {
	return m.Ref != nil && m.Ref.Writable
}

// SyntheticSignature renders a non-compilable display signature for
// tooling. Reference-returning members have no surface syntax, so the
// rendering marks the result with ByRef.
func (m *Member) SyntheticSignature() string {
	var b strings.Builder
	if m.IsProperty {
		b.WriteString("Property ")
	} else {
		b.WriteString("Function ")
	}
	b.WriteString(m.Name)
	if !m.IsProperty {
		b.WriteString("(")
		for i, p := range m.Params {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(p.String())
		}
		b.WriteString(")")
	}
	if m.Result != nil && m.Result.Kind() != VoidKind {
		b.WriteString(" As ")
		if m.RefReturning() {
			b.WriteString("ByRef ")
		}
		b.WriteString(m.Result.String())
	}
	if m.RefReturning() && !m.Writable() {
		b.WriteString(" [ReadOnly]")
	}
	return b.String()
}
