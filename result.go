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

// Default failure messages for the Result operations. Expect variants
// substitute a caller-supplied message instead.
const (
	msgResultUnwrap    = "called Result.UnwrapOrLog on an Err value"
	msgResultUnwrapErr = "called Result.UnwrapErrOrLog on an Ok value"
)

// Result holds either a success value of type T or a failure value of
// type E. The zero value is a Result holding the zero E; use [Ok] and
// [Err] to construct meaningful values, or [From] to lift a (T, error)
// return directly.
//
// Result is an immutable value type. Copies are independent and any number
// of goroutines may use the same Result concurrently. Each unwrap call
// consumes a copy; nothing tracks whether a Result was already unwrapped.
type Result[T, E any] struct {
	value T
	err   E
	ok    bool
}

// Ok returns a Result holding the success value.
//
// Both type parameters are usually spelled out, since the failure type
// does not appear in the arguments:
//
//	r := unwrap.Ok[int, string](42)
func Ok[T, E any](value T) Result[T, E] {
	return Result[T, E]{value: value, ok: true}
}

// Err returns a Result holding the failure value.
func Err[T, E any](err E) Result[T, E] {
	return Result[T, E]{err: err}
}

// From lifts a conventional (value, error) return into a Result. A nil
// error produces an Ok, anything else an Err:
//
//	f := unwrap.From(os.Open(path))
func From[T any](value T, err error) Result[T, error] {
	if err != nil {
		return Err[T, error](err)
	}
	return Ok[T, error](value)
}

// Tuple is the inverse of [From]: it lowers a Result back into the
// conventional (value, error) pair. An Err yields the zero T alongside
// the failure value.
//
// This is a function rather than a method because Go methods cannot
// constrain E to error after the fact.
func Tuple[T any](r Result[T, error]) (T, error) {
	if !r.ok {
		var zero T
		return zero, r.err
	}
	return r.value, nil
}

// IsOk reports whether the Result holds a success value.
func (r Result[T, E]) IsOk() bool {
	return r.ok
}

// IsErr reports whether the Result holds a failure value.
func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

// Get returns the success value and whether it is present. This is the
// non-terminating accessor; use it when a failure is an expected outcome
// rather than a contract violation.
func (r Result[T, E]) Get() (T, bool) {
	return r.value, r.ok
}

// GetErr returns the failure value and whether it is present.
func (r Result[T, E]) GetErr() (E, bool) {
	return r.err, !r.ok
}

// Or returns the success value, or def when the Result is an Err.
func (r Result[T, E]) Or(def T) T {
	if !r.ok {
		return def
	}
	return r.value
}

// UnwrapOrLog returns the success value.
//
// If the Result is an Err it logs one record at [LevelCritical] through
// log, carrying the failure value rendered by the configured [Formatter],
// and then panics. The success path performs no logging.
func (r Result[T, E]) UnwrapOrLog(log Logger) T {
	if !r.ok {
		failWith(log, msgResultUnwrap, r.err)
	}
	return r.value
}

// ExpectOrLog is [Result.UnwrapOrLog] with a caller-supplied message.
// On an Err it logs and panics with "msg: <failure value>"; msg passes
// through verbatim, without sanitization or truncation.
func (r Result[T, E]) ExpectOrLog(log Logger, msg string) T {
	if !r.ok {
		failWith(log, msg, r.err)
	}
	return r.value
}

// UnwrapErrOrLog returns the failure value.
//
// If the Result is an Ok it logs one record at [LevelCritical] through
// log, carrying the success value, and then panics. This is the mirror of
// [Result.UnwrapOrLog] for call sites that require the failure.
func (r Result[T, E]) UnwrapErrOrLog(log Logger) E {
	if r.ok {
		failWith(log, msgResultUnwrapErr, r.value)
	}
	return r.err
}

// ExpectErrOrLog is [Result.UnwrapErrOrLog] with a caller-supplied message.
func (r Result[T, E]) ExpectErrOrLog(log Logger, msg string) E {
	if r.ok {
		failWith(log, msg, r.value)
	}
	return r.err
}
