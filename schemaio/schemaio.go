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

// Package schemaio reads and writes schema documents, the durable textual
// description from which a tabwire.Schema is built.
package schemaio

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/tabwire/tabwire"
)

// Format selects the document encoding.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Document is the root of a schema document.
type Document struct {
	Records []RecordDef `json:"records" yaml:"records"`
}

// RecordDef describes one record type.
type RecordDef struct {
	Name    string      `json:"name" yaml:"name"`
	Columns []ColumnDef `json:"columns" yaml:"columns"`
}

// ColumnDef describes one column of a record.
type ColumnDef struct {
	Name string  `json:"name" yaml:"name"`
	Type TypeDef `json:"type" yaml:"type"`
}

// MapDef carries the key and value types of a map type.
type MapDef struct {
	Key   TypeDef `json:"key" yaml:"key"`
	Value TypeDef `json:"value" yaml:"value"`
}

// TypeDef describes a type. Exactly one field must be set. A bare string in
// the document is a scalar type name; objects select one composite form.
type TypeDef struct {
	Scalar string      `json:"-" yaml:"-"`
	Array  *TypeDef    `json:"array,omitempty" yaml:"array,omitempty"`
	Map    *MapDef     `json:"map,omitempty" yaml:"map,omitempty"`
	Union  []RecordDef `json:"union,omitempty" yaml:"union,omitempty"`
	Record *RecordDef  `json:"record,omitempty" yaml:"record,omitempty"`
}

// typeDefAlias avoids recursing into the custom (un)marshalers.
type typeDefAlias TypeDef

func (d *TypeDef) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &d.Scalar)
	}
	var a typeDefAlias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*d = TypeDef(a)
	return nil
}

func (d TypeDef) MarshalJSON() ([]byte, error) {
	if d.Scalar != "" {
		return json.Marshal(d.Scalar)
	}
	return json.Marshal(typeDefAlias(d))
}

func (d *TypeDef) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		return value.Decode(&d.Scalar)
	}
	var a typeDefAlias
	if err := value.Decode(&a); err != nil {
		return err
	}
	*d = TypeDef(a)
	return nil
}

func (d TypeDef) MarshalYAML() (interface{}, error) {
	if d.Scalar != "" {
		return d.Scalar, nil
	}
	return typeDefAlias(d), nil
}

// Decode reads a schema document from r and builds the schema it describes.
func Decode(r io.Reader, format Format) (*tabwire.Schema, error) {
	var doc Document
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("schemaio: decoding json document: %w", err)
		}
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("schemaio: decoding yaml document: %w", err)
		}
	default:
		return nil, fmt.Errorf("schemaio: unknown format %d", int(format))
	}
	return doc.Build()
}

// DecodeJSON reads a JSON schema document.
func DecodeJSON(r io.Reader) (*tabwire.Schema, error) { return Decode(r, FormatJSON) }

// DecodeYAML reads a YAML schema document.
func DecodeYAML(r io.Reader) (*tabwire.Schema, error) { return Decode(r, FormatYAML) }

// Encode writes the document form of s to w.
func Encode(w io.Writer, s *tabwire.Schema, format Format) error {
	doc := DocumentFor(s)
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("schemaio: encoding json document: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("schemaio: encoding yaml document: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("schemaio: unknown format %d", int(format))
	}
}

// Build resolves the document into a schema.
func (doc Document) Build() (*tabwire.Schema, error) {
	if len(doc.Records) == 0 {
		return nil, fmt.Errorf("schemaio: document defines no records")
	}
	records := make([]*tabwire.RecordType, len(doc.Records))
	for i, rd := range doc.Records {
		r, err := rd.resolve()
		if err != nil {
			return nil, err
		}
		records[i] = r
	}
	return tabwire.NewSchema(records...), nil
}

// DocumentFor returns the document form of a schema, suitable for Encode.
func DocumentFor(s *tabwire.Schema) Document {
	doc := Document{Records: make([]RecordDef, s.NumRecords())}
	for i, r := range s.Records() {
		doc.Records[i] = recordDef(r)
	}
	return doc
}

func (d RecordDef) resolve() (*tabwire.RecordType, error) {
	if d.Name == "" {
		return nil, fmt.Errorf("schemaio: record with empty name")
	}
	cols := make([]tabwire.Column, len(d.Columns))
	seen := make(map[string]struct{}, len(d.Columns))
	for i, c := range d.Columns {
		if c.Name == "" {
			return nil, fmt.Errorf("schemaio: record %q: column %d has no name", d.Name, i)
		}
		if _, dup := seen[c.Name]; dup {
			return nil, fmt.Errorf("schemaio: record %q: duplicate column %q", d.Name, c.Name)
		}
		seen[c.Name] = struct{}{}
		t, err := c.Type.resolve()
		if err != nil {
			return nil, fmt.Errorf("schemaio: record %q, column %q: %w", d.Name, c.Name, err)
		}
		cols[i] = tabwire.Column{Name: c.Name, Type: t}
	}
	return tabwire.NewRecordType(d.Name, cols), nil
}

func (d TypeDef) resolve() (tabwire.DataType, error) {
	n := 0
	if d.Scalar != "" {
		n++
	}
	if d.Array != nil {
		n++
	}
	if d.Map != nil {
		n++
	}
	if len(d.Union) > 0 {
		n++
	}
	if d.Record != nil {
		n++
	}
	if n != 1 {
		return nil, fmt.Errorf("exactly one of a scalar name, array, map, union or record must be given")
	}

	switch {
	case d.Scalar != "":
		return scalarType(d.Scalar), nil
	case d.Array != nil:
		elem, err := d.Array.resolve()
		if err != nil {
			return nil, err
		}
		return tabwire.ArrayOf(elem), nil
	case d.Map != nil:
		key, err := d.Map.Key.resolve()
		if err != nil {
			return nil, err
		}
		value, err := d.Map.Value.resolve()
		if err != nil {
			return nil, err
		}
		return tabwire.MapOf(key, value), nil
	case len(d.Union) > 0:
		members := make([]*tabwire.RecordType, len(d.Union))
		for i, rd := range d.Union {
			m, err := rd.resolve()
			if err != nil {
				return nil, err
			}
			members[i] = m
		}
		return tabwire.UnionOf(members...), nil
	default:
		return d.Record.resolve()
	}
}

// scalarType resolves a scalar type name. It accepts everything TypeForName
// does plus the canonical names only reachable by direct construction
// (int, binary, any), so documents produced by Encode read back unchanged.
func scalarType(name string) tabwire.DataType {
	switch strings.ToLower(name) {
	case "int":
		return tabwire.PrimitiveTypes.Integer
	case "binary":
		return tabwire.PrimitiveTypes.Binary
	case "any":
		return tabwire.Any
	default:
		return tabwire.TypeForName(name)
	}
}

func recordDef(r *tabwire.RecordType) RecordDef {
	d := RecordDef{Name: r.Name(), Columns: make([]ColumnDef, r.Size())}
	for i, c := range r.Columns() {
		d.Columns[i] = ColumnDef{Name: c.Name, Type: typeDef(c.Type)}
	}
	return d
}

func typeDef(t tabwire.DataType) TypeDef {
	switch t := t.(type) {
	case *tabwire.ArrayType:
		elem := typeDef(t.Elem())
		return TypeDef{Array: &elem}
	case *tabwire.MapType:
		return TypeDef{Map: &MapDef{Key: typeDef(t.KeyType()), Value: typeDef(t.ValueType())}}
	case *tabwire.UnionType:
		members := make([]RecordDef, len(t.Members()))
		for i, m := range t.Members() {
			members[i] = recordDef(m)
		}
		return TypeDef{Union: members}
	case *tabwire.RecordType:
		rd := recordDef(t)
		return TypeDef{Record: &rd}
	default:
		return TypeDef{Scalar: t.Name()}
	}
}
