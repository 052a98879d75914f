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
	// LocalVarStorage is the storage of a local variable.
	LocalVarStorage struct {
		Src *syntax.Ident
		Typ Type
	}

	// ParamStorage is the storage of a member parameter.
	ParamStorage struct {
		Src *syntax.Ident
		Typ Type
	}

	// ResultElementStorage aliases one element of a member's tuple
	// result. It only exists when implicit result aliasing is enabled.
	ResultElementStorage struct {
		Src   *syntax.Ident
		Typ   Type
		Index int
	}
)

var (
	_ Storage = (*LocalVarStorage)(nil)
	_ Storage = (*ParamStorage)(nil)
	_ Storage = (*ResultElementStorage)(nil)
)

func (*LocalVarStorage) node() {}

// NameDef returns the identifier declaring the variable.
func (s *LocalVarStorage) NameDef() *syntax.Ident { return s.Src }

// Type of the values held by the variable.
func (s *LocalVarStorage) Type() Type { return s.Typ }

func (*ParamStorage) node() {}

// NameDef returns the identifier declaring the parameter.
func (s *ParamStorage) NameDef() *syntax.Ident { return s.Src }

// Type of the values held by the parameter.
func (s *ParamStorage) Type() Type { return s.Typ }

func (*ResultElementStorage) node() {}

// NameDef returns the identifier declaring the result element.
func (s *ResultElementStorage) NameDef() *syntax.Ident { return s.Src }

// Type of the values held by the result element.
func (s *ResultElementStorage) Type() Type { return s.Typ }
