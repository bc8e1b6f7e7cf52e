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

// MinParallelOutputs is the output size below which the Parallel entry
// points run on the calling goroutine.
const MinParallelOutputs = 32 * 32

// MaxPool3x3S2 computes 3×3, stride-2 max pooling of an unpadded NCHW tensor.
//
//   - input has shape inShape = [batch, channels, inH, inW]
//   - output has shape outShape = [batch, channels, outH, outW] and is fully
//     overwritten
//   - paddings holds the total height and width padding; positions that fall
//     into the padding are left out of the max rather than read as zero
//
// The shapes must be consistent (see OutputShape) and each side's padding
// must be 0, 1, or 2. Nothing is validated.
func MaxPool3x3S2(input []float32, inShape [4]int, output []float32, outShape [4]int, paddings [2]int) {
	ParallelMaxPool3x3S2(nil, input, inShape, output, outShape, paddings)
}

// ParallelMaxPool3x3S2 is MaxPool3x3S2 with (batch, channel) planes spread
// over pool. A nil pool runs inline.
func ParallelMaxPool3x3S2(pool workerpool.Executor, input []float32, inShape [4]int, output []float32, outShape [4]int, paddings [2]int) {
	checkMaxPool(len(input), inShape, len(output), outShape, paddings)

	pad := splitPadding(paddings)
	inH, inW := inShape[2], inShape[3]
	outH, outW := outShape[2], outShape[3]
	inPlane := inH * inW
	outPlane := outH * outW
	numPlanes := inShape[0] * inShape[1]

	run := func(start, end int) {
		for p := start; p < end; p++ {
			maxPoolPlane(
				input[p*inPlane:(p+1)*inPlane], inH, inW,
				output[p*outPlane:(p+1)*outPlane], outH, outW,
				pad,
			)
		}
	}

	if pool == nil || numPlanes < 2 || numPlanes*outPlane < MinParallelOutputs {
		run(0, numPlanes)
		return
	}
	pool.ParallelFor(numPlanes, run)
}

// maxPoolPlane pools one (batch, channel) plane.
func maxPoolPlane(in []float32, inH, inW int, out []float32, outH, outW int, pad padding) {
	for h := range outH {
		outRow := out[h*outW : (h+1)*outW]
		w := 0

		// Rows whose window reaches into top or bottom padding go entirely
		// through the clipped path below.
		inside := !((h == 0 && pad.top > 0) || (h == outH-1 && pad.bottom > 0))
		if inside && pad.left == 1 && inW < 2 {
			inside = false
		}

		if inside {
			rowStart := (h*Stride - pad.top) * inW
			r0 := in[rowStart : rowStart+inW]
			r1 := in[rowStart+inW : rowStart+2*inW]
			r2 := in[rowStart+2*inW : rowStart+3*inW]

			switch pad.left {
			case 1:
				// Window columns {-1, 0, 1}.
				outRow[0] = max3(maxf(r0[0], r0[1]), maxf(r1[0], r1[1]), maxf(r2[0], r2[1]))
				r0, r1, r2 = r0[1:], r1[1:], r2[1:]
				w = 1
			case 2:
				// Window columns {-2, -1, 0}.
				outRow[0] = max3(r0[0], r1[0], r2[0])
				w = 1
			}

			// The last window may hang over the right edge; leave it to the
			// clipped path.
			n := outW - w
			if pad.right > 0 {
				n--
			}
			if numVectors := max(n, 0) >> 2; numVectors > 0 {
				Max3x3S2Rows(r0, r1, r2, outRow[w:], numVectors<<2)
				w += numVectors << 2
			}
		}

		for ; w < outW; w++ {
			outRow[w] = maxWindowClipped(in, inH, inW, h*Stride-pad.top, w*Stride-pad.left)
		}
	}
}
