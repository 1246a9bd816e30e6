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

//go:build debug || assert

package debug

import "fmt"

func getStringValue(v interface{}) string {
	switch a := v.(type) {
	case func() string:
		return a()

	case string:
		return a

	case fmt.Stringer:
		return a.String()

	default:
		panic(fmt.Sprintf("unexpected type, %t", v))
	}
}
