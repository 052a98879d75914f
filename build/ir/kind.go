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

// Kind of a type.
type Kind int

// Kinds of the type system.
const (
	InvalidKind Kind = iota
	BooleanKind
	ByteKind
	SByteKind
	ShortKind
	UShortKind
	IntegerKind
	UIntegerKind
	LongKind
	ULongKind
	DecimalKind
	SingleKind
	DoubleKind
	CharKind
	StringKind
	DateKind
	ObjectKind
	ClassKind
	TupleKind
	VoidKind
)

var kindNames = map[Kind]string{
	InvalidKind:  "invalid",
	BooleanKind:  "Boolean",
	ByteKind:     "Byte",
	SByteKind:    "SByte",
	ShortKind:    "Short",
	UShortKind:   "UShort",
	IntegerKind:  "Integer",
	UIntegerKind: "UInteger",
	LongKind:     "Long",
	ULongKind:    "ULong",
	DecimalKind:  "Decimal",
	SingleKind:   "Single",
	DoubleKind:   "Double",
	CharKind:     "Char",
	StringKind:   "String",
	DateKind:     "Date",
	ObjectKind:   "Object",
	ClassKind:    "class",
	TupleKind:    "tuple",
	VoidKind:     "void",
}

// String returns the source-level name of the kind.
func (k Kind) String() string {
	name, ok := kindNames[k]
	if !ok {
		return "invalid"
	}
	return name
}

// KindFromString returns the kind named by a type identifier.
func KindFromString(ident string) Kind {
	for k, name := range kindNames {
		if name == ident {
			return k
		}
	}
	return InvalidKind
}

// IsIntegralKind returns true for integral numeric kinds.
func IsIntegralKind(k Kind) bool {
	switch k {
	case ByteKind, SByteKind, ShortKind, UShortKind,
		IntegerKind, UIntegerKind, LongKind, ULongKind:
		return true
	}
	return false
}

// IsFloatingKind returns true for floating-point and decimal kinds.
func IsFloatingKind(k Kind) bool {
	switch k {
	case DecimalKind, SingleKind, DoubleKind:
		return true
	}
	return false
}

// IsNumericKind returns true for kinds that take part in the numeric
// widening lattice.
func IsNumericKind(k Kind) bool {
	return IsIntegralKind(k) || IsFloatingKind(k)
}
