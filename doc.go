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

/*
Package tabwire provides the schema and type system describing the structure
of tabular, semi-structured records.

Types form a closed hierarchy: primitive leaves (nil, int, float, boolean,
string, timestamp, binary, json), the wildcard Any, and the composites
array, map, union and record. Every type renders to a deterministic
Signature string that stands in for structural equality. A Schema, an
ordered collection of record types, is the unit consumed read-only by value
codecs; all entities are immutable after construction and safe to share
across goroutines without coordination.
*/
package tabwire
