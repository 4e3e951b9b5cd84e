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

import "errors"

// Error types for better error handling and testing.
//
// Design rationale:
//   - Sentinel errors (package-level vars) enable [errors.Is] checks
//   - Descriptive names make error handling self-documenting
//   - Explicit error types improve testability vs string comparison
//
// These errors surface only from [New]; the unwrap operations themselves
// report contract violations by logging and panicking, never by returning
// an error.
//
// Usage pattern:
//
//	if _, err := unwrap.New(logger, opts...); err != nil {
//	    if errors.Is(err, unwrap.ErrNilLogger) {
//	        // Handle missing logger case
//	    } else {
//	        // Handle other errors
//	    }
//	}
var (
	// ErrNilLogger indicates a nil [slog.Logger] was passed to [New].
	// This is a programmer error and should be caught during initialization.
	ErrNilLogger = errors.New("logger is nil")

	// ErrNilFormatter indicates a nil function was passed to [WithFormatter].
	// Pass [DebugString] explicitly to restore the default rendering.
	ErrNilFormatter = errors.New("formatter is nil")

	// ErrNilContext indicates a nil context was passed to [WithContext].
	// Use [context.Background] when no request context is available.
	ErrNilContext = errors.New("context is nil")
)
