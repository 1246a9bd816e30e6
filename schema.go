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
	"strings"

	"github.com/zeebo/xxh3"
)

// Schema is an ordered sequence of record types, the top-level unit handed
// to a value codec. A Schema holds its records and nothing more: it does
// not validate that nested or union record references are consistent across
// members. Immutable once constructed.
type Schema struct {
	records []*RecordType
}

// NewSchema returns the schema over the given records, in order.
//
// NewSchema panics if any record is nil.
func NewSchema(records ...*RecordType) *Schema {
	s := &Schema{records: make([]*RecordType, len(records))}
	for i, r := range records {
		if r == nil {
			panic("tabwire: nil RecordType for Schema")
		}
		s.records[i] = r
	}
	return s
}

// Records returns the schema's records in declaration order. The returned
// slice must not be modified.
func (s *Schema) Records() []*RecordType { return s.records }

// Record returns the record at position i. It panics if i is out of range.
func (s *Schema) Record(i int) *RecordType { return s.records[i] }

func (s *Schema) NumRecords() int { return len(s.records) }

// String renders the schema for diagnostics. The output is not a format
// other components may parse back.
func (s *Schema) String() string {
	o := new(strings.Builder)
	o.WriteString("Schema(")
	for i, r := range s.records {
		if i > 0 {
			o.WriteString(", ")
		}
		o.WriteString(r.Signature())
	}
	o.WriteByte(')')
	return o.String()
}

// Hash returns a 64-bit hash of the schema's rendering, stable across
// processes, for use as a cache key by codec layers.
func (s *Schema) Hash() uint64 {
	return xxh3.HashString(s.String())
}
