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

import "fmt"

// checkMaxPool asserts the bordered kernel's preconditions.
// It compiles to nothing unless built with -tags maxpooldebug.
func checkMaxPool(inputLen int, inShape [4]int, outputLen int, outShape [4]int, paddings [2]int) {
	if !debugChecks {
		return
	}
	checkShapes(inputLen, inShape, outputLen, outShape)
	for axis, total := range paddings {
		if total < 0 || total > 4 {
			panic(fmt.Sprintf("pooling: padding %d on axis %d out of range [0, 4]", total, axis))
		}
	}
	if want := OutputShape(inShape, paddings); want != outShape {
		panic(fmt.Sprintf("pooling: output shape %v, want %v for input %v with paddings %v", outShape, want, inShape, paddings))
	}
}

// checkMaxPoolPadded asserts the pre-padded kernel's preconditions.
func checkMaxPoolPadded(inputLen int, inShape [4]int, outputLen int, outShape [4]int) {
	if !debugChecks {
		return
	}
	checkShapes(inputLen, inShape, outputLen, outShape)
	if inShape[2] != 2*outShape[2]+1 || inShape[3] != 2*outShape[3]+1 {
		panic(fmt.Sprintf("pooling: padded input %dx%d does not match output %dx%d (want %dx%d)",
			inShape[2], inShape[3], outShape[2], outShape[3], 2*outShape[2]+1, 2*outShape[3]+1))
	}
}

func checkShapes(inputLen int, inShape [4]int, outputLen int, outShape [4]int) {
	for i := range inShape {
		if inShape[i] <= 0 || outShape[i] <= 0 {
			panic(fmt.Sprintf("pooling: non-positive dimension in input %v or output %v", inShape, outShape))
		}
	}
	if inShape[0] != outShape[0] || inShape[1] != outShape[1] {
		panic(fmt.Sprintf("pooling: batch/channels differ between input %v and output %v", inShape, outShape))
	}
	if n := NumElements(inShape); inputLen < n {
		panic(fmt.Sprintf("pooling: input has %d elements, shape %v needs %d", inputLen, inShape, n))
	}
	if n := NumElements(outShape); outputLen < n {
		panic(fmt.Sprintf("pooling: output has %d elements, shape %v needs %d", outputLen, outShape, n))
	}
}
