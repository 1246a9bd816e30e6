// Copyright 2026 The tabwire Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package tabwire

import (
	"fmt"
	"hash/maphash"
)

// Type is the tag identifying a logical type. A type is either a primitive
// leaf (a value with no structural children) or a composite built from other
// types.
type Type int

const (
	// NIL is the absence of a value
	NIL Type = iota

	// INTEGER is a signed 64-bit integer
	INTEGER

	// FLOAT is a 64-bit floating point value
	FLOAT

	// BOOLEAN is a true/false value
	BOOLEAN

	// STRING is a UTF8 variable-length string
	STRING

	// TIMESTAMP is an instant in time with nanosecond resolution
	TIMESTAMP

	// BINARY is a variable-length byte sequence (no guarantee of UTF8-ness)
	BINARY

	// JSON is an arbitrary JSON document kept in its textual form
	JSON

	// ANY is the wildcard type, used where the value type is unknown
	// or deliberately unconstrained
	ANY

	// ARRAY is a variable-size sequence of values of one element type
	ARRAY

	// MAP is an association from keys of one type to values of another
	MAP

	// UNION is a choice between an ordered set of record types
	UNION

	// RECORD is a named, ordered sequence of (name, type) columns
	RECORD
)

var typeNames = [...]string{
	NIL:       "NIL",
	INTEGER:   "INTEGER",
	FLOAT:     "FLOAT",
	BOOLEAN:   "BOOLEAN",
	STRING:    "STRING",
	TIMESTAMP: "TIMESTAMP",
	BINARY:    "BINARY",
	JSON:      "JSON",
	ANY:       "ANY",
	ARRAY:     "ARRAY",
	MAP:       "MAP",
	UNION:     "UNION",
	RECORD:    "RECORD",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return fmt.Sprintf("Type(%d)", int(t))
	}
	return typeNames[t]
}

// DataType is the representation of a tabwire type. The concrete set of
// implementations is closed: the primitive leaves, Any, and the composites
// ArrayType, MapType, UnionType and RecordType.
//
// Signature returns the canonical string rendering of the type. It is a pure
// function of the type tree: two types are structurally equal exactly when
// their signatures are byte-identical, so the signature can stand in for the
// type as a map key or hash input. The rendering uses the reserved characters
// [ ] ( ) , | : to delimit nesting; primitive names never contain them.
type DataType interface {
	ID() Type
	// Name is the name of the data type. For records this is the record's
	// own given name, for every other variant it is the variant tag.
	Name() string
	Signature() string
	// TypeArgs returns the immediate structural children of the type:
	// empty for primitives and Any, the element for arrays, key and value
	// for maps, the member records for unions. Records return no type
	// args since their children are columns, not bare types.
	TypeArgs() []DataType
}

type NilType struct{}

func (*NilType) ID() Type             { return NIL }
func (*NilType) Name() string         { return "nil" }
func (*NilType) Signature() string    { return "nil" }
func (*NilType) String() string       { return "nil" }
func (*NilType) TypeArgs() []DataType { return nil }

type IntegerType struct{}

func (*IntegerType) ID() Type             { return INTEGER }
func (*IntegerType) Name() string         { return "int" }
func (*IntegerType) Signature() string    { return "int" }
func (*IntegerType) String() string       { return "int" }
func (*IntegerType) TypeArgs() []DataType { return nil }

type FloatType struct{}

func (*FloatType) ID() Type             { return FLOAT }
func (*FloatType) Name() string         { return "float" }
func (*FloatType) Signature() string    { return "float" }
func (*FloatType) String() string       { return "float" }
func (*FloatType) TypeArgs() []DataType { return nil }

type BooleanType struct{}

func (*BooleanType) ID() Type             { return BOOLEAN }
func (*BooleanType) Name() string         { return "boolean" }
func (*BooleanType) Signature() string    { return "boolean" }
func (*BooleanType) String() string       { return "boolean" }
func (*BooleanType) TypeArgs() []DataType { return nil }

type StringType struct{}

func (*StringType) ID() Type             { return STRING }
func (*StringType) Name() string         { return "string" }
func (*StringType) Signature() string    { return "string" }
func (*StringType) String() string       { return "string" }
func (*StringType) TypeArgs() []DataType { return nil }

type TimestampType struct{}

func (*TimestampType) ID() Type             { return TIMESTAMP }
func (*TimestampType) Name() string         { return "timestamp" }
func (*TimestampType) Signature() string    { return "timestamp" }
func (*TimestampType) String() string       { return "timestamp" }
func (*TimestampType) TypeArgs() []DataType { return nil }

type BinaryType struct{}

func (*BinaryType) ID() Type             { return BINARY }
func (*BinaryType) Name() string         { return "binary" }
func (*BinaryType) Signature() string    { return "binary" }
func (*BinaryType) String() string       { return "binary" }
func (*BinaryType) TypeArgs() []DataType { return nil }

type JSONType struct{}

func (*JSONType) ID() Type             { return JSON }
func (*JSONType) Name() string         { return "json" }
func (*JSONType) Signature() string    { return "json" }
func (*JSONType) String() string       { return "json" }
func (*JSONType) TypeArgs() []DataType { return nil }

type AnyType struct{}

func (*AnyType) ID() Type             { return ANY }
func (*AnyType) Name() string         { return "any" }
func (*AnyType) Signature() string    { return "any" }
func (*AnyType) String() string       { return "any" }
func (*AnyType) TypeArgs() []DataType { return nil }

var (
	// PrimitiveTypes holds the shared instance of each primitive leaf
	// type. Primitives carry no state, so there is never a reason to
	// allocate a fresh one.
	PrimitiveTypes = struct {
		Nil       DataType
		Integer   DataType
		Float     DataType
		Boolean   DataType
		String    DataType
		Timestamp DataType
		Binary    DataType
		JSON      DataType
	}{
		Nil:       &NilType{},
		Integer:   &IntegerType{},
		Float:     &FloatType{},
		Boolean:   &BooleanType{},
		String:    &StringType{},
		Timestamp: &TimestampType{},
		Binary:    &BinaryType{},
		JSON:      &JSONType{},
	}

	// Any is the shared instance of the wildcard type.
	Any DataType = &AnyType{}
)

// TypeEqual reports whether two types are structurally equal. Signatures are
// injective over type trees, so comparing them is sufficient.
func TypeEqual(a, b DataType) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Signature() == b.Signature()
}

// HashType produces a 64-bit hash of a type for use in hash-based
// containers keyed by type.
func HashType(seed maphash.Seed, dt DataType) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	h.WriteString(dt.Signature())
	return h.Sum64()
}
