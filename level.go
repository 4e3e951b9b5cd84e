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

import "log/slog"

// LevelCritical is the severity of every failure record emitted by this
// package. It sits one custom-level step above [slog.LevelError], following
// the slog convention for severities beyond the built-in four.
//
// Handlers render it as "ERROR+4" unless told otherwise; wire
// [ReplaceLevelName] into [slog.HandlerOptions.ReplaceAttr] to render it
// as "CRITICAL" instead.
const LevelCritical = slog.LevelError + 4

// criticalName is the display name substituted by [ReplaceLevelName].
const criticalName = "CRITICAL"

// ReplaceLevelName renames [LevelCritical] (and anything above it) from
// slog's default "ERROR+4" rendering to "CRITICAL". It is shaped for
// [slog.HandlerOptions.ReplaceAttr]:
//
//	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
//	    ReplaceAttr: unwrap.ReplaceLevelName,
//	})
//
// Records below [LevelCritical] pass through untouched, so it composes with
// handlers that already carry their own level vocabulary.
func ReplaceLevelName(groups []string, a slog.Attr) slog.Attr {
	if len(groups) > 0 || a.Key != slog.LevelKey {
		return a
	}
	if level, ok := a.Value.Any().(slog.Level); ok && level >= LevelCritical {
		return slog.String(a.Key, criticalName)
	}
	return a
}
