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

//go:build maxpooldebug

package pooling

import (
	"strings"
	"testing"
)

func expectPanic(t *testing.T, substr string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic containing %q", substr)
		}
		if msg, _ := r.(string); !strings.Contains(msg, substr) {
			t.Fatalf("panic %q does not contain %q", r, substr)
		}
	}()
	fn()
}

func TestDebugChecksMaxPool(t *testing.T) {
	in := make([]float32, 25)
	out := make([]float32, 9)
	inShape := [4]int{1, 1, 5, 5}
	outShape := [4]int{1, 1, 2, 2}

	expectPanic(t, "out of range", func() {
		MaxPool3x3S2(in, inShape, out, outShape, [2]int{5, 0})
	})
	expectPanic(t, "output shape", func() {
		MaxPool3x3S2(in, inShape, out, [4]int{1, 1, 3, 3}, [2]int{0, 0})
	})
	expectPanic(t, "input has", func() {
		MaxPool3x3S2(in[:20], inShape, out, outShape, [2]int{0, 0})
	})
	expectPanic(t, "non-positive", func() {
		MaxPool3x3S2(in, [4]int{1, 0, 5, 5}, out, outShape, [2]int{0, 0})
	})
}

func TestDebugChecksMaxPoolPadded(t *testing.T) {
	in := make([]float32, 36)
	out := make([]float32, 4)
	expectPanic(t, "does not match", func() {
		MaxPool3x3S2Padded(in, [4]int{1, 1, 6, 6}, out, [4]int{1, 1, 2, 2})
	})
	expectPanic(t, "output has", func() {
		MaxPool3x3S2Padded(in, [4]int{1, 1, 5, 5}, out[:3], [4]int{1, 1, 2, 2})
	})
}
