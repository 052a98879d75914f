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

// Package ir defines the typed representation produced by the binder:
// the type model (atomic types and tuple types), member signatures,
// conversion classifications, and the lowered expression and statement
// nodes consumed by downstream collaborators.
package ir

import (
	"github.com/developer-dashboard/vblang/build/syntax"
)

type (
	// Node is implemented by all represented constructs.
	Node interface {
		node()
	}

	// Type is the representation of a type.
	Type interface {
		Node
		// Kind of the type.
		Kind() Kind
		// Equal returns true if the other type is the same type.
		Equal(Type) bool
		// String representation of the type.
		String() string
	}

	// Expr is a typed expression.
	Expr interface {
		Node
		// Source returns the syntax node the expression was bound from.
		Source() syntax.Node
		// Type of the value computed by the expression.
		Type() Type
	}

	// Storage is a location a value can be assigned to.
	Storage interface {
		Node
		// NameDef returns the identifier defining the storage,
		// or nil for an anonymous location.
		NameDef() *syntax.Ident
		// Type of the values held by the storage.
		Type() Type
	}

	// Stmt is a lowered statement.
	Stmt interface {
		Node
		// Source returns the syntax node the statement was bound from.
		Source() syntax.Node
	}
)

// Conversion classifies how a source type converts to a destination
// type. The values are ordered from least to most safe so that the
// classification of a composite conversion is the least safe of its
// parts.
type Conversion int

// Conversion classifications.
const (
	ConvNone Conversion = iota
	ConvNarrowing
	ConvWidening
	ConvIdentity
)

var convNames = map[Conversion]string{
	ConvNone:      "none",
	ConvNarrowing: "narrowing",
	ConvWidening:  "widening",
	ConvIdentity:  "identity",
}

// String returns the name of the classification.
func (c Conversion) String() string {
	name, ok := convNames[c]
	if !ok {
		return "none"
	}
	return name
}

// Exists returns true if the conversion is possible at all.
func (c Conversion) Exists() bool {
	return c != ConvNone
}

// atomicType is the representation of a scalar type.
// All atomic types are singletons shared across threads.
type atomicType struct {
	Knd Kind
}

func (*atomicType) node() {}

// Kind of the atomic type.
func (t *atomicType) Kind() Kind { return t.Knd }

// Equal returns true if the other type has the same kind.
func (t *atomicType) Equal(other Type) bool {
	return other != nil && other.Kind() == t.Knd
}

// String representation of the type.
func (t *atomicType) String() string { return t.Knd.String() }

var atomicTypes = map[Kind]*atomicType{
	BooleanKind:  {Knd: BooleanKind},
	ByteKind:     {Knd: ByteKind},
	SByteKind:    {Knd: SByteKind},
	ShortKind:    {Knd: ShortKind},
	UShortKind:   {Knd: UShortKind},
	IntegerKind:  {Knd: IntegerKind},
	UIntegerKind: {Knd: UIntegerKind},
	LongKind:     {Knd: LongKind},
	ULongKind:    {Knd: ULongKind},
	DecimalKind:  {Knd: DecimalKind},
	SingleKind:   {Knd: SingleKind},
	DoubleKind:   {Knd: DoubleKind},
	CharKind:     {Knd: CharKind},
	StringKind:   {Knd: StringKind},
	DateKind:     {Knd: DateKind},
	ObjectKind:   {Knd: ObjectKind},
}

// TypeFromKind returns the singleton type of an atomic kind.
func TypeFromKind(kind Kind) Type {
	typ, ok := atomicTypes[kind]
	if !ok {
		return InvalidType()
	}
	return typ
}

// AtomicFromString returns a scalar type singleton from a type name.
func AtomicFromString(ident string) Type {
	return TypeFromKind(KindFromString(ident))
}

// BooleanType returns the type for Boolean.
func BooleanType() Type { return atomicTypes[BooleanKind] }

// IntegerType returns the type for Integer.
func IntegerType() Type { return atomicTypes[IntegerKind] }

// LongType returns the type for Long.
func LongType() Type { return atomicTypes[LongKind] }

// SingleType returns the type for Single.
func SingleType() Type { return atomicTypes[SingleKind] }

// DoubleType returns the type for Double.
func DoubleType() Type { return atomicTypes[DoubleKind] }

// StringType returns the type for String.
func StringType() Type { return atomicTypes[StringKind] }

// CharType returns the type for Char.
func CharType() Type { return atomicTypes[CharKind] }

// DateType returns the type for Date.
func DateType() Type { return atomicTypes[DateKind] }

// ObjectType returns the type for Object, the root of late binding.
func ObjectType() Type { return atomicTypes[ObjectKind] }

// NamedType is a class or structure type declared outside the core:
// the symbol table resolves its members. Two named types are the same
// type only if they are the same declaration.
type NamedType struct {
	Name string
}

var _ Type = (*NamedType)(nil)

func (*NamedType) node() {}

// Kind of a named type.
func (*NamedType) Kind() Kind { return ClassKind }

// Equal returns true if the other type is the same declaration.
func (t *NamedType) Equal(other Type) bool {
	o, ok := other.(*NamedType)
	return ok && o == t
}

// String returns the declared name of the type.
func (t *NamedType) String() string { return t.Name }

type invalidType struct{}

var invalidT = &invalidType{}

// InvalidType returns an invalid type.
// Often used as a placeholder when an error occurred.
func InvalidType() Type {
	return invalidT
}

func (*invalidType) node() {}

// Kind of the invalid type.
func (*invalidType) Kind() Kind { return InvalidKind }

// Equal always returns false.
// If the type is invalid, an error has already been emitted.
// We disable any checks to avoid reporting unhelpful errors.
func (*invalidType) Equal(Type) bool { return false }

// String representation of the type.
func (*invalidType) String() string { return InvalidKind.String() }

type voidType struct{}

var voidT = &voidType{}

// VoidType returns the type of a member with no result.
func VoidType() Type {
	return voidT
}

func (*voidType) node() {}

// Kind of the void type.
func (*voidType) Kind() Kind { return VoidKind }

// Equal returns true only for the void type itself.
func (*voidType) Equal(other Type) bool {
	return other != nil && other.Kind() == VoidKind
}

// String representation of the type.
func (*voidType) String() string { return VoidKind.String() }

// IsValid returns false for the invalid placeholder type.
func IsValid(typ Type) bool {
	return typ != nil && typ.Kind() != InvalidKind
}
