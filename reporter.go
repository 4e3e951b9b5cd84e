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
)

// Reporter wraps a [slog.Logger] with unwrap-specific configuration and
// satisfies [Logger], so it can be passed anywhere a plain *slog.Logger
// can. Configuration is applied with functional options:
//
//	reporter := unwrap.MustNew(logger, unwrap.WithQuietPanic())
//	value := result.UnwrapOrLog(reporter)
//
// Thread-safety: a Reporter is immutable after [New] returns, so all
// methods are safe for concurrent use without coordination. A single
// Reporter may be shared by any number of goroutines.
type Reporter struct {
	// Destination (immutable after initialization)
	logger *slog.Logger

	// Failure behavior
	quiet     bool
	formatter Formatter

	// Bound context and the trace correlation extracted from it
	ctx     context.Context
	traceID string
	spanID  string
}

// ReporterOption is a functional option for configuring a [Reporter].
type ReporterOption func(*Reporter)

// defaultReporter returns a Reporter with default configuration.
func defaultReporter(log *slog.Logger) *Reporter {
	return &Reporter{
		logger:    log,
		quiet:     false,
		formatter: DebugString,
		ctx:       bgCtx,
	}
}

// New creates a Reporter around log with the given options.
//
// If the bound context (see [WithContext]) carries an active OpenTelemetry
// span, trace and span IDs are extracted once here and attached to every
// failure record the Reporter emits.
func New(log *slog.Logger, opts ...ReporterOption) (*Reporter, error) {
	r := defaultReporter(log)

	for _, opt := range opts {
		opt(r)
	}

	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	r.initialize()
	return r, nil
}

// MustNew creates a Reporter or panics on error.
func MustNew(log *slog.Logger, opts ...ReporterOption) *Reporter {
	r, err := New(log, opts...)
	if err != nil {
		panic("unwrap initialization failed: " + err.Error())
	}
	return r
}

// Validate checks if the configuration is valid.
func (r *Reporter) Validate() error {
	if r.logger == nil {
		return ErrNilLogger
	}
	if r.formatter == nil {
		return ErrNilFormatter
	}
	if r.ctx == nil {
		return ErrNilContext
	}
	return nil
}

// initialize resolves trace correlation from the bound context.
func (r *Reporter) initialize() {
	r.logger, r.traceID, r.spanID = traceLogger(r.ctx, r.logger)
}

// Log implements [Logger] by delegating to the wrapped (and, when trace
// correlation applies, enriched) slog logger.
func (r *Reporter) Log(ctx context.Context, level slog.Level, msg string, args ...any) {
	r.logger.Log(ctx, level, msg, args...)
}

// Logger returns the underlying [slog.Logger], including any trace
// correlation attributes added during initialization.
func (r *Reporter) Logger() *slog.Logger {
	return r.logger
}

// Quiet reports whether quiet panics are enabled.
// This field is immutable after initialization, so no lock is needed.
func (r *Reporter) Quiet() bool {
	return r.quiet
}

// Context returns the bound context.
// This field is immutable after initialization, so no lock is needed.
func (r *Reporter) Context() context.Context {
	return r.ctx
}

// failContext implements settings.
func (r *Reporter) failContext() context.Context {
	return r.ctx
}

// quietPanic implements settings.
func (r *Reporter) quietPanic() bool {
	return r.quiet
}

// valueFormatter implements settings.
func (r *Reporter) valueFormatter() Formatter {
	return r.formatter
}
