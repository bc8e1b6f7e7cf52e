// Copyright 2025 go-highway Authors
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

// Package envconfig reads process configuration from environment variables.
package envconfig

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/ajroetker/go-maxpool/hwy"
)

// Var returns the trimmed value of an environment variable, with surrounding
// quotes removed.
func Var(key string) string {
	return strings.Trim(strings.TrimSpace(os.Getenv(key)), "\"'")
}

// BoolWithDefault returns a reader for a boolean variable. A set but
// unparsable value counts as true.
func BoolWithDefault(k string) func(defaultValue bool) bool {
	return func(defaultValue bool) bool {
		if s := Var(k); s != "" {
			b, err := strconv.ParseBool(s)
			if err != nil {
				return true
			}
			return b
		}
		return defaultValue
	}
}

// Bool returns a reader for a boolean variable that defaults to false.
func Bool(k string) func() bool {
	withDefault := BoolWithDefault(k)
	return func() bool {
		return withDefault(false)
	}
}

// Uint returns a reader for an unsigned integer variable.
func Uint(key string, defaultValue uint) func() uint {
	return func() uint {
		if s := Var(key); s != "" {
			if n, err := strconv.ParseUint(s, 10, 64); err != nil {
				slog.Warn("invalid environment variable, using default", "key", key, "value", s, "default", defaultValue)
			} else {
				return uint(n)
			}
		}
		return defaultValue
	}
}

// LogLevel returns the log level from MAXPOOL_DEBUG.
// Unset or false is INFO, true or 1 is DEBUG, 2 is one step below DEBUG.
func LogLevel() slog.Level {
	level := slog.LevelInfo
	if s := Var("MAXPOOL_DEBUG"); s != "" {
		if b, _ := strconv.ParseBool(s); b {
			level = slog.LevelDebug
		} else if i, _ := strconv.ParseInt(s, 10, 64); i != 0 {
			level = slog.Level(i * -4)
		}
	}
	return level
}

var (
	// NumThreads caps the worker pool size; 0 means GOMAXPROCS.
	NumThreads = Uint("MAXPOOL_NUM_THREADS", 0)
	// NoSimd reports HWY_NO_SIMD exactly as the dispatcher reads it.
	NoSimd = hwy.NoSimdEnv
)

// EnvVar describes one configuration variable and its current value.
type EnvVar struct {
	Name        string
	Value       any
	Description string
}

// AsMap returns every variable this package reads, keyed by name.
func AsMap() map[string]EnvVar {
	return map[string]EnvVar{
		"MAXPOOL_DEBUG":       {"MAXPOOL_DEBUG", LogLevel(), "Show additional debug information (e.g. MAXPOOL_DEBUG=1)"},
		"MAXPOOL_NUM_THREADS": {"MAXPOOL_NUM_THREADS", NumThreads(), "Maximum number of pooling workers (0 = GOMAXPROCS)"},
		"HWY_NO_SIMD":         {"HWY_NO_SIMD", NoSimd(), "Disable lane-parallel kernels"},
	}
}
