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

// Pad copies an NCHW tensor into dst, which must have shape
// PaddedShape(inShape, paddings), surrounding each plane with value.
// The leading border is total/2 wide per axis and the trailing border takes
// what is left of the padded extent, so input columns or rows that no window
// reaches are dropped.
//
// Pass Lowest as value to make MaxPool3x3S2Padded on dst agree with
// MaxPool3x3S2 on src.
func Pad(dst, src []float32, inShape [4]int, paddings [2]int, value float32) {
	padShape := PaddedShape(inShape, paddings)
	if len(src) < NumElements(inShape) {
		panic(fmt.Sprintf("pooling: Pad source has %d elements, shape %v needs %d", len(src), inShape, NumElements(inShape)))
	}
	if len(dst) < NumElements(padShape) {
		panic(fmt.Sprintf("pooling: Pad destination has %d elements, shape %v needs %d", len(dst), padShape, NumElements(padShape)))
	}

	pad := splitPadding(paddings)
	inH, inW := inShape[2], inShape[3]
	padH, padW := padShape[2], padShape[3]
	inPlane := inH * inW
	padPlane := padH * padW
	copyW := min(inW, padW-pad.left)

	for p := range inShape[0] * inShape[1] {
		srcPlane := src[p*inPlane : (p+1)*inPlane]
		dstPlane := dst[p*padPlane : (p+1)*padPlane]
		for y := range padH {
			row := dstPlane[y*padW : (y+1)*padW]
			sy := y - pad.top
			if sy < 0 || sy >= inH {
				fill(row, value)
				continue
			}
			fill(row[:pad.left], value)
			copy(row[pad.left:pad.left+copyW], srcPlane[sy*inW:sy*inW+copyW])
			fill(row[pad.left+copyW:], value)
		}
	}
}

func fill(s []float32, v float32) {
	for i := range s {
		s[i] = v
	}
}
