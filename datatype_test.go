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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeSignatures(t *testing.T) {
	person := NewRecordType("Person", []Column{
		{Name: "id", Type: PrimitiveTypes.Integer},
		{Name: "name", Type: PrimitiveTypes.String},
	})

	for _, tc := range []struct {
		dt   DataType
		want string
	}{
		{PrimitiveTypes.Nil, "nil"},
		{PrimitiveTypes.Integer, "int"},
		{PrimitiveTypes.Float, "float"},
		{PrimitiveTypes.Boolean, "boolean"},
		{PrimitiveTypes.String, "string"},
		{PrimitiveTypes.Timestamp, "timestamp"},
		{PrimitiveTypes.Binary, "binary"},
		{PrimitiveTypes.JSON, "json"},
		{Any, "any"},
		{ArrayOf(PrimitiveTypes.String), "array[string]"},
		{ArrayOf(ArrayOf(PrimitiveTypes.Integer)), "array[array[int]]"},
		{MapOf(PrimitiveTypes.String, PrimitiveTypes.Integer), "map[string,int]"},
		{MapOf(PrimitiveTypes.String, ArrayOf(Any)), "map[string,array[any]]"},
		{person, "Person(id:int,name:string)"},
		{NewRecordType("Empty", nil), "Empty()"},
		{UnionOf(NewRecordType("A", nil), NewRecordType("B", nil)), "union[A()|B()]"},
		{ArrayOf(person), "array[Person(id:int,name:string)]"},
	} {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.dt.Signature())
			// signatures are stable
			assert.Equal(t, tc.dt.Signature(), tc.dt.Signature())
			assert.Equal(t, tc.want, fmt.Sprintf("%v", tc.dt))
		})
	}
}

func TestTypeNamesAndIDs(t *testing.T) {
	for _, tc := range []struct {
		dt   DataType
		id   Type
		name string
	}{
		{PrimitiveTypes.Nil, NIL, "nil"},
		{PrimitiveTypes.Integer, INTEGER, "int"},
		{PrimitiveTypes.Float, FLOAT, "float"},
		{PrimitiveTypes.Boolean, BOOLEAN, "boolean"},
		{PrimitiveTypes.String, STRING, "string"},
		{PrimitiveTypes.Timestamp, TIMESTAMP, "timestamp"},
		{PrimitiveTypes.Binary, BINARY, "binary"},
		{PrimitiveTypes.JSON, JSON, "json"},
		{Any, ANY, "any"},
		{ArrayOf(Any), ARRAY, "array"},
		{MapOf(Any, Any), MAP, "map"},
		{UnionOf(NewRecordType("A", nil)), UNION, "union"},
		{NewRecordType("Person", nil), RECORD, "Person"},
	} {
		t.Run(tc.id.String(), func(t *testing.T) {
			assert.Equal(t, tc.id, tc.dt.ID())
			assert.Equal(t, tc.name, tc.dt.Name())
		})
	}
}

func TestTypeArgs(t *testing.T) {
	a := NewRecordType("A", nil)
	b := NewRecordType("B", nil)

	assert.Empty(t, PrimitiveTypes.Integer.TypeArgs())
	assert.Empty(t, Any.TypeArgs())
	assert.Equal(t,
		[]DataType{PrimitiveTypes.String},
		ArrayOf(PrimitiveTypes.String).TypeArgs())
	assert.Equal(t,
		[]DataType{PrimitiveTypes.String, PrimitiveTypes.Integer},
		MapOf(PrimitiveTypes.String, PrimitiveTypes.Integer).TypeArgs())
	// union members come back as declared, duplicates included
	assert.Equal(t,
		[]DataType{a, b, a},
		UnionOf(a, b, a).TypeArgs())
	// record children are columns, not type args
	assert.Empty(t, NewRecordType("Person", []Column{
		{Name: "id", Type: PrimitiveTypes.Integer},
	}).TypeArgs())
}

func TestTypeEqual(t *testing.T) {
	assert.True(t, TypeEqual(nil, nil))
	assert.False(t, TypeEqual(nil, PrimitiveTypes.Integer))
	assert.False(t, TypeEqual(PrimitiveTypes.Integer, nil))
	assert.True(t, TypeEqual(PrimitiveTypes.Integer, &IntegerType{}))
	assert.True(t, TypeEqual(ArrayOf(PrimitiveTypes.Integer), ArrayOf(PrimitiveTypes.Integer)))
	assert.False(t, TypeEqual(ArrayOf(PrimitiveTypes.Integer), ArrayOf(PrimitiveTypes.Float)))
	assert.False(t, TypeEqual(PrimitiveTypes.String, ArrayOf(PrimitiveTypes.String)))
}

func TestSignatureInjectivity(t *testing.T) {
	// distinct trees over the same leaves never collide
	types := []DataType{
		PrimitiveTypes.Integer,
		PrimitiveTypes.String,
		ArrayOf(PrimitiveTypes.Integer),
		ArrayOf(ArrayOf(PrimitiveTypes.Integer)),
		MapOf(PrimitiveTypes.Integer, PrimitiveTypes.String),
		MapOf(PrimitiveTypes.String, PrimitiveTypes.Integer),
		NewRecordType("A", []Column{{Name: "x", Type: PrimitiveTypes.Integer}}),
		NewRecordType("A", []Column{{Name: "x", Type: PrimitiveTypes.String}}),
		NewRecordType("B", []Column{{Name: "x", Type: PrimitiveTypes.Integer}}),
		UnionOf(NewRecordType("A", nil)),
		UnionOf(NewRecordType("A", nil), NewRecordType("B", nil)),
	}
	seen := make(map[string]DataType, len(types))
	for _, dt := range types {
		sig := dt.Signature()
		prev, dup := seen[sig]
		assert.Falsef(t, dup, "signature %q produced by both %v and %v", sig, prev, dt)
		seen[sig] = dt
	}
}

func TestHashType(t *testing.T) {
	seed := maphash.MakeSeed()

	// structurally equal types hash alike regardless of instance
	assert.Equal(t,
		HashType(seed, ArrayOf(PrimitiveTypes.Integer)),
		HashType(seed, ArrayOf(PrimitiveTypes.Integer)))
	assert.NotEqual(t,
		HashType(seed, PrimitiveTypes.Integer),
		HashType(seed, PrimitiveTypes.Float))
}

func TestNestedConstructorPanics(t *testing.T) {
	assert.Panics(t, func() { ArrayOf(nil) })
	assert.Panics(t, func() { MapOf(nil, PrimitiveTypes.Integer) })
	assert.Panics(t, func() { MapOf(PrimitiveTypes.Integer, nil) })
	assert.Panics(t, func() { UnionOf() })
	assert.Panics(t, func() { UnionOf(NewRecordType("A", nil), nil) })
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "INTEGER", INTEGER.String())
	assert.Equal(t, "RECORD", RECORD.String())
	assert.Equal(t, "Type(99)", Type(99).String())
}
