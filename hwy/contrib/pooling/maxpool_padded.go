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

import "github.com/ajroetker/go-maxpool/hwy/contrib/workerpool"

// MaxPool3x3S2Padded computes 3×3, stride-2 max pooling of a tensor whose
// border has already been written by the caller, for example with Pad.
//
// The input extent must be exactly 2*out + 1 on both spatial axes
// (PaddedShape). Every window lies inside the input, so the kernel has no
// boundary handling at all.
func MaxPool3x3S2Padded(input []float32, inShape [4]int, output []float32, outShape [4]int) {
	ParallelMaxPool3x3S2Padded(nil, input, inShape, output, outShape)
}

// ParallelMaxPool3x3S2Padded is MaxPool3x3S2Padded with (batch, channel)
// planes spread over pool. A nil pool runs inline.
func ParallelMaxPool3x3S2Padded(pool workerpool.Executor, input []float32, inShape [4]int, output []float32, outShape [4]int) {
	checkMaxPoolPadded(len(input), inShape, len(output), outShape)

	inW := inShape[3]
	outH, outW := outShape[2], outShape[3]
	inPlane := inShape[2] * inW
	outPlane := outH * outW
	numPlanes := inShape[0] * inShape[1]

	run := func(start, end int) {
		for p := start; p < end; p++ {
			maxPoolPlanePadded(
				input[p*inPlane:(p+1)*inPlane], inW,
				output[p*outPlane:(p+1)*outPlane], outH, outW,
			)
		}
	}

	if pool == nil || numPlanes < 2 || numPlanes*outPlane < MinParallelOutputs {
		run(0, numPlanes)
		return
	}
	pool.ParallelFor(numPlanes, run)
}

// maxPoolPlanePadded pools one pre-padded plane. i0, i1, i2 are cursors into
// the plane for the three window rows.
func maxPoolPlanePadded(in []float32, inW int, out []float32, outH, outW int) {
	i0 := 0
	i1 := inW
	i2 := 2 * inW
	o := 0

	numVectors := outW >> 2
	remain := outW - numVectors<<2

	for range outH {
		if numVectors > 0 {
			n := numVectors << 2
			Max3x3S2Rows(in[i0:], in[i1:], in[i2:], out[o:o+n], n)
			i0 += 2 * n
			i1 += 2 * n
			i2 += 2 * n
			o += n
		}

		for range remain {
			r0 := in[i0 : i0+3]
			r1 := in[i1 : i1+3]
			r2 := in[i2 : i2+3]
			out[o] = max3(
				max3(r0[0], r0[1], r0[2]),
				max3(r1[0], r1[1], r1[2]),
				max3(r2[0], r2[1], r2[2]),
			)
			i0 += 2
			i1 += 2
			i2 += 2
			o++
		}

		// The cursors sit on the last window's third column. Step past it and
		// skip one row to reach the next window's top row.
		i0 += 1 + inW
		i1 += 1 + inW
		i2 += 1 + inW
	}
}
