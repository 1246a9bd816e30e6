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

// TypeForName maps a free-form type name, such as a column type reported by
// a database driver, to a canonical primitive type. Matching is
// case-insensitive and total: unrecognized names fall back to STRING rather
// than failing. BINARY and ANY are never produced here; composites must be
// built structurally by the schema layer.
func TypeForName(name string) DataType {
	switch strings.ToLower(name) {
	case "nil", "null":
		return PrimitiveTypes.Nil
	case "varchar", "string", "text":
		return PrimitiveTypes.String
	case "bigint", "integer":
		return PrimitiveTypes.Integer
	case "boolean":
		return PrimitiveTypes.Boolean
	case "float", "double":
		return PrimitiveTypes.Float
	case "timestamp":
		return PrimitiveTypes.Timestamp
	case "json":
		return PrimitiveTypes.JSON
	default:
		return PrimitiveTypes.String
	}
}
