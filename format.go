// Copyright 2025 The Rivaas Authors
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

package unwrap

import (
	"fmt"
	"strconv"
)

// Formatter renders the offending value of a failed unwrap for inclusion in
// the failure message. Replace the default with [WithFormatter] when values
// need redaction or a domain-specific rendering.
type Formatter func(value any) string

// DebugString is the default [Formatter].
//
// Errors render as their quoted Error() text, everything else as Go-syntax
// via %#v. The quoting keeps message boundaries unambiguous when the value
// itself contains separators:
//
//	DebugString("boom")                  // `"boom"`
//	DebugString(42)                      // `42`
//	DebugString(errors.New("not found")) // `"not found"`
func DebugString(value any) string {
	if err, ok := value.(error); ok {
		return strconv.Quote(err.Error())
	}
	return fmt.Sprintf("%#v", value)
}
