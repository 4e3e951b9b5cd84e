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

	"go.opentelemetry.io/otel/trace"
)

// Semantic convention field names for trace correlation.
const (
	fieldTraceID = "trace_id"
	fieldSpanID  = "span_id"
)

// traceLogger extracts trace correlation from ctx.
//
// Why this exists:
//   - A crash inside a traced request is exactly the record operators
//     search for, and without trace/span IDs it cannot be tied back to
//     the request that died
//   - Manually threading trace IDs into failure messages is error-prone
//   - This extracts them once at Reporter construction, keeping the
//     failure path free of per-call extraction work
//
// If ctx contains an active span, the returned logger carries trace_id and
// span_id attributes and both IDs are returned. Otherwise the logger passes
// through unchanged and the IDs are empty.
func traceLogger(ctx context.Context, log *slog.Logger) (*slog.Logger, string, string) {
	span := trace.SpanFromContext(ctx)
	if !span.SpanContext().IsValid() {
		return log, "", ""
	}

	sc := span.SpanContext()
	traceID := sc.TraceID().String()
	spanID := sc.SpanID().String()

	log = log.With(
		fieldTraceID, traceID,
		fieldSpanID, spanID,
	)

	return log, traceID, spanID
}

// TraceID returns the trace ID extracted from the bound context, or "" when
// the context carried no active span.
func (r *Reporter) TraceID() string {
	return r.traceID
}

// SpanID returns the span ID extracted from the bound context, or "" when
// the context carried no active span.
func (r *Reporter) SpanID() string {
	return r.spanID
}
