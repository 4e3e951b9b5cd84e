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

// Default failure messages for the tuple helpers.
const (
	msgValue   = "called unwrap.Value on a non-nil error"
	msgNoError = "called unwrap.NoError on a non-nil error"
)

// Value unwraps a (value, error) pair already in hand, without an
// intermediate [Result].
//
// Why use this instead of From(...).UnwrapOrLog(log):
//   - No container construction on the hot path
//   - Reads naturally when the pair was produced a few lines earlier
//
// Go only spreads a multi-value call across all parameters of the callee,
// so lifting a call expression directly goes through [From] instead:
// unwrap.From(os.Open(path)).UnwrapOrLog(log).
//
// Thread-safe and safe to call concurrently.
//
// Example:
//
//	port, err := strconv.Atoi(os.Getenv("PORT"))
//	cfg.Port = unwrap.Value(log, port, err)
func Value[T any](log Logger, value T, err error) T {
	if err != nil {
		failWith(log, msgValue, err)
	}
	return value
}

// NoError asserts that err is nil. On a non-nil error it logs one record
// at [LevelCritical] and panics, like the unwrap operations.
//
// Thread-safe and safe to call concurrently.
//
// Example:
//
//	unwrap.NoError(log, listener.Close())
func NoError(log Logger, err error) {
	if err != nil {
		failWith(log, msgNoError, err)
	}
}
