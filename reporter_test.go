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
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
)

// W3C trace context example IDs, reused across the trace correlation tests.
var (
	testTraceID = trace.TraceID{0x4b, 0xf9, 0x2f, 0x35, 0x77, 0xb3, 0x4d, 0xa6, 0xa3, 0xce, 0x92, 0x9d, 0x0e, 0x0e, 0x47, 0x36}
	testSpanID  = trace.SpanID{0x00, 0xf0, 0x67, 0xaa, 0x0b, 0xa9, 0x02, 0xb7}
)

// spanContext returns a context carrying a valid remote span.
func spanContext() context.Context {
	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    testTraceID,
		SpanID:     testSpanID,
		TraceFlags: trace.FlagsSampled,
	})

	return trace.ContextWithSpanContext(context.Background(), sc)
}

// TestNew tests Reporter construction and validation.
func TestNew(t *testing.T) {
	t.Parallel()

	logger, _ := NewTestLogger()

	tests := []struct {
		name    string
		log     *slog.Logger
		opts    []ReporterOption
		wantErr error
	}{
		{
			name: "default config",
			log:  logger,
		},
		{
			name: "with quiet panic",
			log:  logger,
			opts: []ReporterOption{WithQuietPanic()},
		},
		{
			name: "with formatter",
			log:  logger,
			opts: []ReporterOption{WithFormatter(func(any) string { return "x" })},
		},
		{
			name: "with context",
			log:  logger,
			opts: []ReporterOption{WithContext(context.Background())},
		},
		{
			name:    "nil logger",
			log:     nil,
			wantErr: ErrNilLogger,
		},
		{
			name:    "nil formatter",
			log:     logger,
			opts:    []ReporterOption{WithFormatter(nil)},
			wantErr: ErrNilFormatter,
		},
		{
			name:    "nil context",
			log:     logger,
			opts:    []ReporterOption{WithContext(nil)},
			wantErr: ErrNilContext,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r, err := New(tt.log, tt.opts...)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, r)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, r, "New() returned nil reporter without error")
		})
	}
}

// TestMustNew tests the panicking constructor.
func TestMustNew(t *testing.T) {
	t.Parallel()

	t.Run("returns reporter on valid config", func(t *testing.T) {
		t.Parallel()

		logger, _ := NewTestLogger()

		assert.NotPanics(t, func() { MustNew(logger) })
	})

	t.Run("panics on invalid config", func(t *testing.T) {
		t.Parallel()

		assert.PanicsWithValue(t,
			"unwrap initialization failed: invalid configuration: logger is nil",
			func() { MustNew(nil) },
		)
	})
}

// TestReporter_QuietPanic tests that quiet mode trims the panic value but
// never the record.
func TestReporter_QuietPanic(t *testing.T) {
	t.Parallel()

	logger, rec := NewTestLogger()
	reporter := MustNew(logger, WithQuietPanic())

	value, panicked := CatchPanic(func() {
		Err[int, string]("s3cr3t-dsn").ExpectOrLog(reporter, "connecting to database")
	})

	require.True(t, panicked)
	assert.Equal(t, QuietPanicMessage, value, "panic value must be the fixed quiet string")
	RequireCritical(t, rec, `connecting to database: "s3cr3t-dsn"`)
}

// TestReporter_Formatter tests custom value rendering.
func TestReporter_Formatter(t *testing.T) {
	t.Parallel()

	t.Run("replaces the default rendering", func(t *testing.T) {
		t.Parallel()

		logger, rec := NewTestLogger()
		reporter := MustNew(logger, WithFormatter(func(v any) string {
			return fmt.Sprintf("<%T>", v)
		}))

		_, panicked := CatchPanic(func() {
			Err[int, string]("boom").UnwrapOrLog(reporter)
		})

		require.True(t, panicked)
		RequireCritical(t, rec, "called Result.UnwrapOrLog on an Err value: <string>")
	})

	t.Run("applies to the panic value in loud mode", func(t *testing.T) {
		t.Parallel()

		logger, _ := NewTestLogger()
		reporter := MustNew(logger, WithFormatter(func(any) string { return "[redacted]" }))

		value, panicked := CatchPanic(func() {
			Some("token").UnwrapNoneOrLog(reporter)
		})

		require.True(t, panicked)
		assert.Equal(t, "called Option.UnwrapNoneOrLog on a Some value: [redacted]", value)
	})

	t.Run("does not affect operations without a value", func(t *testing.T) {
		t.Parallel()

		logger, rec := NewTestLogger()
		reporter := MustNew(logger, WithFormatter(func(any) string { return "[redacted]" }))

		_, panicked := CatchPanic(func() {
			None[int]().ExpectOrLog(reporter, "missing entry")
		})

		require.True(t, panicked)
		RequireCritical(t, rec, "missing entry")
	})
}

// TestReporter_TraceCorrelation tests that a span-bearing bound context
// stamps trace IDs onto failure records.
func TestReporter_TraceCorrelation(t *testing.T) {
	t.Parallel()

	t.Run("span context attaches trace attributes", func(t *testing.T) {
		t.Parallel()

		logger, rec := NewTestLogger()
		reporter := MustNew(logger, WithContext(spanContext()))

		assert.Equal(t, testTraceID.String(), reporter.TraceID())
		assert.Equal(t, testSpanID.String(), reporter.SpanID())

		_, panicked := CatchPanic(func() {
			None[int]().ExpectOrLog(reporter, "resolving tenant")
		})

		require.True(t, panicked)
		records := rec.Records()
		require.Len(t, records, 1)

		traceID, found := RecordAttr(records[0], "trace_id")
		require.True(t, found, "failure record should carry trace_id")
		assert.Equal(t, testTraceID.String(), traceID.String())

		spanID, found := RecordAttr(records[0], "span_id")
		require.True(t, found, "failure record should carry span_id")
		assert.Equal(t, testSpanID.String(), spanID.String())
	})

	t.Run("span-less context attaches nothing", func(t *testing.T) {
		t.Parallel()

		logger, rec := NewTestLogger()
		reporter := MustNew(logger, WithContext(context.Background()))

		assert.Empty(t, reporter.TraceID())
		assert.Empty(t, reporter.SpanID())

		_, panicked := CatchPanic(func() {
			None[int]().ExpectOrLog(reporter, "resolving tenant")
		})

		require.True(t, panicked)
		records := rec.Records()
		require.Len(t, records, 1)

		_, found := RecordAttr(records[0], "trace_id")
		assert.False(t, found, "no span means no trace_id attribute")
	})
}

// TestReporter_Log tests the Logger implementation used by callers that
// treat a Reporter as a plain log destination.
func TestReporter_Log(t *testing.T) {
	t.Parallel()

	logger, rec := NewTestLogger()
	reporter := MustNew(logger)

	reporter.Log(context.Background(), slog.LevelInfo, "checkpoint", "batch", 7)

	records := rec.Records()
	require.Len(t, records, 1)
	assert.Equal(t, slog.LevelInfo, records[0].Level)
	assert.Equal(t, "checkpoint", records[0].Message)

	batch, found := RecordAttr(records[0], "batch")
	require.True(t, found)
	assert.Equal(t, int64(7), batch.Int64())
}

// TestReporter_Accessors tests the configuration accessors.
func TestReporter_Accessors(t *testing.T) {
	t.Parallel()

	logger, _ := NewTestLogger()
	ctx := spanContext()

	reporter := MustNew(logger, WithQuietPanic(), WithContext(ctx))

	assert.True(t, reporter.Quiet())
	assert.Equal(t, ctx, reporter.Context())
	assert.NotNil(t, reporter.Logger())

	plain := MustNew(logger)
	assert.False(t, plain.Quiet())
	assert.Equal(t, context.Background(), plain.Context())
}
