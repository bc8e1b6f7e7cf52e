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

// maxf returns the larger of a and b. Unlike the max builtin it does not
// propagate NaN from a, which keeps the scalar and vector paths identical.
func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func max3(a, b, c float32) float32 {
	return maxf(maxf(a, b), c)
}

// BaseMax3x3S2Rows writes n outputs from three input rows:
//
//	dst[k] = max(r[2k], r[2k+1], r[2k+2]) over r in {r0, r1, r2}
//
// Each row must hold at least 2n+1 elements.
func BaseMax3x3S2Rows(r0, r1, r2, dst []float32, n int) {
	for k := range n {
		i := 2 * k
		m0 := max3(r0[i], r0[i+1], r0[i+2])
		m1 := max3(r1[i], r1[i+1], r1[i+2])
		m2 := max3(r2[i], r2[i+1], r2[i+2])
		dst[k] = max3(m0, m1, m2)
	}
}

// maxWindowClipped returns the max over the 3×3 window whose top-left corner
// is (row, col) in plane coordinates, skipping positions outside the plane.
// The running max starts at Lowest, so a window of only -Inf yields Lowest.
func maxWindowClipped(plane []float32, height, width, row, col int) float32 {
	m := Lowest
	for kh := range KernelSize {
		y := row + kh
		if y < 0 || y >= height {
			continue
		}
		line := plane[y*width : (y+1)*width]
		for kw := range KernelSize {
			x := col + kw
			if x >= 0 && x < width {
				m = maxf(m, line[x])
			}
		}
	}
	return m
}

// BaseMaxPool3x3S2 is the straightforward bounds-checked reference for
// MaxPool3x3S2: every output visits its full window. It accepts the same
// arguments and produces identical results for finite inputs.
func BaseMaxPool3x3S2(input []float32, inShape [4]int, output []float32, outShape [4]int, paddings [2]int) {
	pad := splitPadding(paddings)
	inH, inW := inShape[2], inShape[3]
	outH, outW := outShape[2], outShape[3]
	inPlane := inH * inW
	outPlane := outH * outW

	for p := range inShape[0] * inShape[1] {
		plane := input[p*inPlane : (p+1)*inPlane]
		out := output[p*outPlane : (p+1)*outPlane]
		for h := range outH {
			for w := range outW {
				out[h*outW+w] = maxWindowClipped(plane, inH, inW, h*Stride-pad.top, w*Stride-pad.left)
			}
		}
	}
}
