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

// Package unwrap provides force-unwrap operations that log before they panic.
//
// Design philosophy: a contract violation should crash the goroutine, but
// never silently. A bare panic in a service whose stderr nobody tails is a
// crash without a trace in the log pipeline. Every operation in this package
// therefore follows the same sequence on violation:
//   - Emit exactly one record at [LevelCritical] through the caller's logger
//   - Panic, so control flow matches a bare force-unwrap
//
// On the success path the operations return the payload and touch the logger
// not at all. The logging backend stays entirely under the caller's control:
// any *slog.Logger works as the destination, and this package never
// constructs, configures, or shuts down handlers.
//
// # Basic Usage
//
//	cfg := unwrap.From(loadConfig(path)).ExpectOrLog(logger, "loading config")
//
// On failure the logger receives one CRITICAL record, for example:
//
//	loading config: "open /etc/app.yaml: no such file or directory"
//
// and the goroutine panics with the same message.
//
// # Containers
//
// [Result] holds a success value or a failure value, [Option] holds a value
// or nothing. Both are small immutable value types with non-terminating
// accessors (Get, Or) alongside the unwrap operations, and both lift Go's
// conventional pairs directly: [From] for (value, error), [FromOK] for
// (value, ok).
//
// # Custom Messages
//
// The Expect variants replace the default message with a caller-supplied
// one, passed through verbatim:
//
//	conn := pool.Acquire().ExpectOrLog(logger, "acquiring connection")
//
// # Tuple Helpers
//
// [Value] and [NoError] cover call sites that already hold the pieces,
// without any container:
//
//	port, err := strconv.Atoi(os.Getenv("PORT"))
//	cfg.Port = unwrap.Value(logger, port, err)
//	unwrap.NoError(logger, listener.Close())
//
// # Configured Reporting
//
// Wrap the logger in a [Reporter] to adjust failure behavior. Options cover
// quiet panics (the panic value becomes a fixed string while the record
// keeps the details), custom value rendering, and a bound context:
//
//	reporter := unwrap.MustNew(logger,
//	    unwrap.WithQuietPanic(),
//	    unwrap.WithFormatter(redact),
//	    unwrap.WithContext(ctx),
//	)
//
// # Trace Correlation
//
// When the context bound with [WithContext] carries an active OpenTelemetry
// span, trace_id and span_id are attached to every failure record, tying the
// crash back to the request that died.
//
// # Critical Severity
//
// Failure records use [LevelCritical] (ERROR+4). Handlers unaware of the
// level render it as "ERROR+4"; [ReplaceLevelName] plugs into
// [slog.HandlerOptions.ReplaceAttr] to render it as "CRITICAL".
//
// # Testing
//
// [NewTestLogger] returns a logger backed by an in-memory [Recorder], and
// [CatchPanic] turns the panic into an assertable value:
//
//	logger, rec := unwrap.NewTestLogger()
//	_, panicked := unwrap.CatchPanic(func() {
//	    unwrap.Err[int, string]("boom").UnwrapOrLog(logger)
//	})
package unwrap
