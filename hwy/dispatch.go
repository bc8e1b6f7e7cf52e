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

package hwy

import (
	"os"
	"strconv"
	"strings"
)

// DispatchLevel identifies the instruction set tier selected at init.
type DispatchLevel int

const (
	// DispatchScalar uses pure Go loops with no lane parallelism.
	DispatchScalar DispatchLevel = iota
	// DispatchSSE2 is the amd64 baseline (128-bit).
	DispatchSSE2
	// DispatchAVX2 is 256-bit x86.
	DispatchAVX2
	// DispatchAVX512 is 512-bit x86.
	DispatchAVX512
	// DispatchNEON is 128-bit ARM Advanced SIMD.
	DispatchNEON
)

// String returns the lower-case name of the level.
func (l DispatchLevel) String() string {
	switch l {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

var (
	currentLevel DispatchLevel
	currentWidth int
	currentName  string
)

// CurrentLevel returns the dispatch level chosen for this process.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the vector register width in bytes for the current level.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human readable name for the current level.
func CurrentName() string {
	return currentName
}

// HasSIMD reports whether a lane-parallel level was selected.
func HasSIMD() bool {
	return currentLevel != DispatchScalar
}

// NoSimdEnv reports whether HWY_NO_SIMD is set to a true-ish value.
// Surrounding whitespace and quotes are ignored. Any other non-empty value
// that does not parse as false disables SIMD paths.
func NoSimdEnv() bool {
	s := strings.Trim(strings.TrimSpace(os.Getenv("HWY_NO_SIMD")), "\"'")
	if s == "" {
		return false
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return true
	}
	return b
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 16 // Use 16-byte vectors even in scalar mode for consistency
	currentName = "scalar"
}
