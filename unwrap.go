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
	"context"
	"log/slog"
)

// Logger is the destination for failure records.
//
// The interface matches the Log method of [slog.Logger], so any *slog.Logger
// can be passed directly. A [Reporter] also satisfies it and additionally
// carries unwrap-specific configuration (quiet panics, a custom formatter,
// a bound context).
//
// Loggers are borrowed for the duration of a single call and never retained
// or mutated. This package never constructs, configures, or shuts down the
// logging backend; that remains the caller's responsibility.
type Logger interface {
	Log(ctx context.Context, level slog.Level, msg string, args ...any)
}

// QuietPanicMessage is the panic value used when quiet panics are enabled
// via [WithQuietPanic]. The full failure message still reaches the logger;
// only the panic value is reduced to this fixed string.
const QuietPanicMessage = "unwrap: failure logged"

// Package-level cached context reused across failure records.
//
// We reuse context.Background() because:
//   - It's immutable and safe for concurrent access across all goroutines
//   - slog.Logger.Log() requires a context but we don't use it for cancellation
var bgCtx = context.Background()

// settings is the optional configuration a [Logger] may carry.
//
// It is discovered by type assertion at the failure site, the same way
// optional handler capabilities are discovered in slog. Only [Reporter]
// implements it; a plain *slog.Logger falls back to the defaults (loud
// panic, [DebugString], background context).
type settings interface {
	failContext() context.Context
	quietPanic() bool
	valueFormatter() Formatter
}

// fail emits one record at [LevelCritical] and panics. It never returns.
//
// The order is fixed: the record is handed to the logger first, the panic
// follows. Delivery is best-effort; a handler that drops or fails the write
// does not stop the panic.
//
// A nil logger cannot receive the record, but the contract violation still
// must not go unanswered: fail panics with the message directly.
func fail(log Logger, msg string) {
	if log == nil {
		panic(msg)
	}

	ctx := bgCtx
	quiet := false
	if s, ok := log.(settings); ok {
		ctx = s.failContext()
		quiet = s.quietPanic()
	}

	log.Log(ctx, LevelCritical, msg)

	if quiet {
		panic(QuietPanicMessage)
	}
	panic(msg)
}

// failWith is fail with the offending value appended as "msg: <value>".
// The value is rendered by the logger's [Formatter] if it carries one,
// otherwise by [DebugString].
func failWith(log Logger, msg string, value any) {
	format := Formatter(DebugString)
	if s, ok := log.(settings); ok {
		if fn := s.valueFormatter(); fn != nil {
			format = fn
		}
	}
	fail(log, msg+": "+format(value))
}
