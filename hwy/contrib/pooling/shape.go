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

package pooling

import (
	"fmt"
	"math"
)

const (
	// KernelSize is the window height and width.
	KernelSize = 3
	// Stride is the window step along both spatial axes.
	Stride = 2

	// Lowest is the most negative finite float32. It seeds running maxima and
	// is the border value Pad uses by default.
	Lowest float32 = -math.MaxFloat32
)

// padding is a per-axis total split into leading and trailing halves.
type padding struct {
	top, bottom, left, right int
}

func splitPadding(paddings [2]int) padding {
	top := paddings[0] / 2
	left := paddings[1] / 2
	return padding{
		top:    top,
		bottom: paddings[0] - top,
		left:   left,
		right:  paddings[1] - left,
	}
}

// NumElements returns the number of elements of an NCHW shape.
func NumElements(shape [4]int) int {
	return shape[0] * shape[1] * shape[2] * shape[3]
}

// OutputShape returns the pooled shape of inShape given per-axis padding
// totals. Panics if the padded input is smaller than the window.
func OutputShape(inShape [4]int, paddings [2]int) [4]int {
	h := inShape[2] + paddings[0]
	w := inShape[3] + paddings[1]
	if h < KernelSize || w < KernelSize {
		panic(fmt.Sprintf("pooling: padded input %dx%d is smaller than the %dx%d window", h, w, KernelSize, KernelSize))
	}
	return [4]int{
		inShape[0],
		inShape[1],
		(h-KernelSize)/Stride + 1,
		(w-KernelSize)/Stride + 1,
	}
}

// PaddedShape returns the shape Pad produces for inShape: the smallest
// padded extent whose windows cover every output, 2*out + 1 per axis.
func PaddedShape(inShape [4]int, paddings [2]int) [4]int {
	out := OutputShape(inShape, paddings)
	return [4]int{out[0], out[1], 2*out[2] + 1, 2*out[3] + 1}
}
