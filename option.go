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

// Default failure messages for the Option operations.
const (
	msgOptionUnwrap     = "called Option.UnwrapOrLog on a None value"
	msgOptionUnwrapNone = "called Option.UnwrapNoneOrLog on a Some value"
)

// Option holds a value of type T or nothing at all. The zero value is
// None; use [Some] and [None] to construct values, or [FromOK] to lift a
// comma-ok pair directly.
//
// Like [Result], Option is an immutable value type and safe for concurrent
// use from any number of goroutines.
type Option[T any] struct {
	value T
	some  bool
}

// Some returns an Option holding the value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, some: true}
}

// None returns the empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromOK lifts a conventional comma-ok pair into an Option:
//
//	addr := unwrap.FromOK(cache.Lookup(key))
func FromOK[T any](value T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(value)
}

// IsSome reports whether the Option holds a value.
func (o Option[T]) IsSome() bool {
	return o.some
}

// IsNone reports whether the Option is empty.
func (o Option[T]) IsNone() bool {
	return !o.some
}

// Get returns the value and whether it is present. This is the
// non-terminating accessor.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// Or returns the value, or def when the Option is None.
func (o Option[T]) Or(def T) T {
	if !o.some {
		return def
	}
	return o.value
}

// UnwrapOrLog returns the value.
//
// If the Option is None it logs one record at [LevelCritical] through log
// and then panics. Absence carries no payload, so the record holds the
// message alone, with no value text appended.
func (o Option[T]) UnwrapOrLog(log Logger) T {
	if !o.some {
		fail(log, msgOptionUnwrap)
	}
	return o.value
}

// ExpectOrLog is [Option.UnwrapOrLog] with a caller-supplied message,
// logged verbatim on a None.
func (o Option[T]) ExpectOrLog(log Logger, msg string) T {
	if !o.some {
		fail(log, msg)
	}
	return o.value
}

// UnwrapNoneOrLog asserts that the Option is empty and returns.
//
// If the Option holds a value it logs one record at [LevelCritical]
// through log, carrying the unexpected value, and then panics.
func (o Option[T]) UnwrapNoneOrLog(log Logger) {
	if o.some {
		failWith(log, msgOptionUnwrapNone, o.value)
	}
}

// ExpectNoneOrLog is [Option.UnwrapNoneOrLog] with a caller-supplied
// message. On a Some it logs and panics with "msg: <value>".
func (o Option[T]) ExpectNoneOrLog(log Logger, msg string) {
	if o.some {
		failWith(log, msg, o.value)
	}
}
