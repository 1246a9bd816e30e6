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
	"errors"
	"fmt"
	"strings"

	"github.com/tabwire/tabwire/internal/debug"
)

var (
	// ErrIndexOutOfRange is wrapped by errors returned from positional
	// column lookups called with an index outside [0, Size).
	ErrIndexOutOfRange = errors.New("column index out of range")

	// ErrNoSuchColumn is wrapped by errors returned from column lookups
	// when no column in the record matches the argument.
	ErrNoSuchColumn = errors.New("no such column")
)

// Column pairs a name with the type of the values stored under that name.
// Columns are value objects: two columns are equal exactly when both name
// and type are equal.
type Column struct {
	Name string
	Type DataType
}

// Signature returns the column's canonical rendering, name:type.
func (c Column) Signature() string {
	return c.Name + ":" + c.Type.Signature()
}

func (c Column) String() string { return c.Signature() }

func (c Column) Equal(o Column) bool {
	return c.Name == o.Name && TypeEqual(c.Type, o.Type)
}

// RecordType describes a named, ordered sequence of columns. Column order is
// significant: it defines positional indices and signature rendering. A
// RecordType is immutable once constructed and safe for concurrent readers.
type RecordType struct {
	name    string
	columns []Column
	index   map[string]int // column name -> position
}

// NewRecordType returns the record type with the given name and columns.
//
// NewRecordType panics if a column has a nil type or if two columns share
// a name.
func NewRecordType(name string, cols []Column) *RecordType {
	t := &RecordType{
		name:    name,
		columns: make([]Column, len(cols)),
		index:   make(map[string]int, len(cols)),
	}
	for i, c := range cols {
		if c.Type == nil {
			panic("tabwire: column with nil DataType")
		}
		if _, dup := t.index[c.Name]; dup {
			panic(fmt.Errorf("tabwire: duplicate column with name %q", c.Name))
		}
		t.columns[i] = c
		t.index[c.Name] = i
	}
	debug.Assert(len(t.index) == len(t.columns), "column index must cover every column")
	return t
}

func (*RecordType) ID() Type { return RECORD }

// Name returns the record's own given name, which acts as its nominal tag.
func (t *RecordType) Name() string { return t.name }

// Size returns the number of columns.
func (t *RecordType) Size() int { return len(t.columns) }

// Columns returns the record's columns in declaration order. The returned
// slice must not be modified.
func (t *RecordType) Columns() []Column { return t.columns }

// Column returns the column at position i. It panics if i is out of range;
// use ColumnType for a checked positional lookup.
func (t *RecordType) Column(i int) Column { return t.columns[i] }

// ColumnType returns the type of the column at position i. The error wraps
// ErrIndexOutOfRange if i is outside [0, Size).
func (t *RecordType) ColumnType(i int) (DataType, error) {
	if i < 0 || i >= len(t.columns) {
		return nil, fmt.Errorf("tabwire: %w: index %d in record %q of size %d",
			ErrIndexOutOfRange, i, t.name, len(t.columns))
	}
	return t.columns[i].Type, nil
}

// ColumnIndex returns the position of the given column. Equality is
// structural: both name and type must match. The error wraps ErrNoSuchColumn
// if no column in the record equals the argument.
func (t *RecordType) ColumnIndex(c Column) (int, error) {
	if i, ok := t.index[c.Name]; ok && t.columns[i].Equal(c) {
		return i, nil
	}
	return -1, fmt.Errorf("tabwire: %w: column %q in record %q",
		ErrNoSuchColumn, c.Name, t.name)
}

// ColumnIdx returns the position of the column with the given name, O(1).
func (t *RecordType) ColumnIdx(name string) (int, bool) {
	i, ok := t.index[name]
	return i, ok
}

// ColumnByName returns the column with the given name.
func (t *RecordType) ColumnByName(name string) (Column, bool) {
	i, ok := t.index[name]
	if !ok {
		return Column{}, false
	}
	return t.columns[i], true
}

func (t *RecordType) Signature() string {
	o := new(strings.Builder)
	o.WriteString(t.name)
	o.WriteByte('(')
	for i, c := range t.columns {
		if i > 0 {
			o.WriteByte(',')
		}
		o.WriteString(c.Signature())
	}
	o.WriteByte(')')
	return o.String()
}

func (t *RecordType) String() string { return t.Signature() }

// TypeArgs returns nil: a record's children are its columns, not bare
// types. Walk Columns to recurse into a record.
func (t *RecordType) TypeArgs() []DataType { return nil }
