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

import "strings"

// ArrayType describes a composite type in which each value is a
// variable-size sequence of elements, all having the same relative type.
type ArrayType struct {
	elem DataType
}

// ArrayOf returns the array type with element type t.
//
// ArrayOf panics if t is nil.
func ArrayOf(t DataType) *ArrayType {
	if t == nil {
		panic("tabwire: nil element type for ArrayType")
	}
	return &ArrayType{elem: t}
}

func (*ArrayType) ID() Type     { return ARRAY }
func (*ArrayType) Name() string { return "array" }

// Elem returns the ArrayType's element type.
func (t *ArrayType) Elem() DataType { return t.elem }

func (t *ArrayType) Signature() string {
	return "array[" + t.elem.Signature() + "]"
}

func (t *ArrayType) String() string { return t.Signature() }

func (t *ArrayType) TypeArgs() []DataType { return []DataType{t.elem} }

// MapType describes a composite type associating keys of one type with
// values of another.
type MapType struct {
	key, value DataType
}

// MapOf returns the map type with key type key and value type value.
//
// MapOf panics if either type is nil.
func MapOf(key, value DataType) *MapType {
	if key == nil || value == nil {
		panic("tabwire: nil key or value type for MapType")
	}
	return &MapType{key: key, value: value}
}

func (*MapType) ID() Type     { return MAP }
func (*MapType) Name() string { return "map" }

func (t *MapType) KeyType() DataType   { return t.key }
func (t *MapType) ValueType() DataType { return t.value }

func (t *MapType) Signature() string {
	return "map[" + t.key.Signature() + "," + t.value.Signature() + "]"
}

func (t *MapType) String() string { return t.Signature() }

func (t *MapType) TypeArgs() []DataType { return []DataType{t.key, t.value} }

// UnionType describes a choice between an ordered, non-empty set of record
// types. Members are restricted to records: a value of a union type is
// always one of a known set of named shapes, never a bare scalar.
type UnionType struct {
	members []*RecordType
}

// UnionOf returns the union type over the given member records, in order.
//
// UnionOf panics if no members are given or any member is nil.
func UnionOf(members ...*RecordType) *UnionType {
	if len(members) == 0 {
		panic("tabwire: no member records for UnionType")
	}
	ms := make([]*RecordType, len(members))
	for i, m := range members {
		if m == nil {
			panic("tabwire: nil member record for UnionType")
		}
		ms[i] = m
	}
	return &UnionType{members: ms}
}

func (*UnionType) ID() Type     { return UNION }
func (*UnionType) Name() string { return "union" }

// Members returns the union's member records, in declaration order.
func (t *UnionType) Members() []*RecordType { return t.members }

func (t *UnionType) Signature() string {
	o := new(strings.Builder)
	o.WriteString("union[")
	for i, m := range t.members {
		if i > 0 {
			o.WriteByte('|')
		}
		o.WriteString(m.Signature())
	}
	o.WriteByte(']')
	return o.String()
}

func (t *UnionType) String() string { return t.Signature() }

// TypeArgs returns the member records as they were declared, without
// flattening or deduplication. Every element is a *RecordType.
func (t *UnionType) TypeArgs() []DataType {
	args := make([]DataType, len(t.members))
	for i, m := range t.members {
		args[i] = m
	}
	return args
}

var (
	_ DataType = (*ArrayType)(nil)
	_ DataType = (*MapType)(nil)
	_ DataType = (*UnionType)(nil)
	_ DataType = (*RecordType)(nil)
)
