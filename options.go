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

import "context"

// WithQuietPanic makes failed unwraps panic with the fixed
// [QuietPanicMessage] instead of the full failure message.
//
// The logged record always carries the full message and value; quiet mode
// only keeps the payload out of the panic value, for processes whose crash
// reporters capture panic values into channels with weaker access control
// than the log pipeline.
//
// Example:
//
//	reporter := unwrap.MustNew(logger, unwrap.WithQuietPanic())
//	cfg := loadConfig().UnwrapOrLog(reporter) // panic value carries no config data
func WithQuietPanic() ReporterOption {
	return func(r *Reporter) { r.quiet = true }
}

// WithFormatter replaces [DebugString] as the rendering applied to
// offending values in failure messages. Use it to redact fields or to
// shorten large values before they reach the log:
//
//	unwrap.WithFormatter(func(v any) string {
//	    return fmt.Sprintf("%T", v) // type only, no payload
//	})
func WithFormatter(fn Formatter) ReporterOption {
	return func(r *Reporter) { r.formatter = fn }
}

// WithContext binds a context to the Reporter. Failure records are emitted
// with this context, and if it carries an active OpenTelemetry span, trace
// and span IDs are attached to every failure record.
//
// Reporters are cheap to construct, so request handlers typically build one
// per request:
//
//	reporter := unwrap.MustNew(logger, unwrap.WithContext(r.Context()))
func WithContext(ctx context.Context) ReporterOption {
	return func(r *Reporter) { r.ctx = ctx }
}
