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
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// Recorder implements [slog.Handler] and records every Handle call for
// test assertions.
//
// Use cases:
//   - Verify a failed unwrap emitted exactly one record
//   - Inspect the level, message, and attributes of failure records
//   - Verify the success path emitted nothing
//
// Attributes added via Logger.With (for example trace correlation from
// [WithContext]) are folded back into the recorded records, so assertions
// see the record as a real handler would.
//
// Create Recorders with [NewRecorder] or [NewTestLogger]; the zero value
// is not usable because clones made by WithAttrs share recording state.
//
// Thread-safe: Safe for concurrent use from multiple goroutines.
type Recorder struct {
	shared *recorderState
	attrs  []slog.Attr
}

// recorderState is the recording storage shared by a Recorder and all of
// its WithAttrs/WithGroup clones.
type recorderState struct {
	mu      sync.Mutex
	records []slog.Record
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{shared: &recorderState{}}
}

// NewTestLogger creates a [slog.Logger] backed by an in-memory [Recorder].
// The logger accepts every level, so success-path assertions can rely on
// an empty Recorder meaning no emission was attempted.
func NewTestLogger() (*slog.Logger, *Recorder) {
	rec := NewRecorder()
	return slog.New(rec), rec
}

// Enabled implements [slog.Handler.Enabled]. Every level is enabled.
func (rec *Recorder) Enabled(_ context.Context, _ slog.Level) bool {
	return true
}

// Handle implements [slog.Handler.Handle].
func (rec *Recorder) Handle(_ context.Context, r slog.Record) error {
	if len(rec.attrs) > 0 {
		r = r.Clone()
		r.AddAttrs(rec.attrs...)
	}

	rec.shared.mu.Lock()
	defer rec.shared.mu.Unlock()
	rec.shared.records = append(rec.shared.records, r)

	return nil
}

// WithAttrs implements [slog.Handler.WithAttrs]. The clone shares the
// recording storage, so records land in the original Recorder.
func (rec *Recorder) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Recorder{
		shared: rec.shared,
		attrs:  append(slices.Clip(rec.attrs), attrs...),
	}
}

// WithGroup implements [slog.Handler.WithGroup]. Groups are not used by
// this package's failure records, so the group name is ignored.
func (rec *Recorder) WithGroup(_ string) slog.Handler {
	return rec
}

// Records returns a copy of all captured records.
func (rec *Recorder) Records() []slog.Record {
	rec.shared.mu.Lock()
	defer rec.shared.mu.Unlock()

	return append([]slog.Record(nil), rec.shared.records...)
}

// Len returns the number of captured records.
func (rec *Recorder) Len() int {
	rec.shared.mu.Lock()
	defer rec.shared.mu.Unlock()

	return len(rec.shared.records)
}

// Messages returns the message of every captured record, in order.
func (rec *Recorder) Messages() []string {
	records := rec.Records()

	msgs := make([]string, len(records))
	for i, r := range records {
		msgs[i] = r.Message
	}

	return msgs
}

// Reset clears all captured records.
func (rec *Recorder) Reset() {
	rec.shared.mu.Lock()
	defer rec.shared.mu.Unlock()
	rec.shared.records = nil
}

// RecordAttr returns the value of the named attribute in r, walking the
// record's attribute list.
func RecordAttr(r slog.Record, key string) (slog.Value, bool) {
	var val slog.Value
	var found bool

	r.Attrs(func(a slog.Attr) bool {
		if a.Key == key {
			val = a.Value
			found = true
			return false
		}
		return true
	})

	return val, found
}

// CatchPanic runs fn, recovers, and reports whether it panicked and with
// what value. Divergent operations are asserted through it:
//
//	value, panicked := unwrap.CatchPanic(func() {
//	    unwrap.None[int]().UnwrapOrLog(logger)
//	})
func CatchPanic(fn func()) (value any, panicked bool) {
	defer func() {
		if v := recover(); v != nil {
			value = v
			panicked = true
		}
	}()

	fn()

	return nil, false
}

// RequireCritical asserts that rec captured exactly one record, at
// [LevelCritical], with exactly the wanted message.
func RequireCritical(t *testing.T, rec *Recorder, want string) {
	t.Helper()

	records := rec.Records()
	require.Len(t, records, 1, "expected exactly one failure record")
	require.Equal(t, LevelCritical, records[0].Level, "failure record level")
	require.Equal(t, want, records[0].Message, "failure record message")
}

// RequireNoRecords asserts that rec captured nothing, the expected state
// after any success-path operation.
func RequireNoRecords(t *testing.T, rec *Recorder) {
	t.Helper()

	require.Zero(t, rec.Len(), "expected no records on the success path")
}
