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

//go:build amd64 && goexperiment.simd

package pooling

import (
	"simd/archsimd"

	"github.com/ajroetker/go-maxpool/hwy"
)

func init() {
	if hwy.NoSimdEnv() {
		return
	}
	switch hwy.CurrentLevel() {
	case hwy.DispatchAVX2, hwy.DispatchAVX512:
		Max3x3S2Rows = Max3x3S2Rows_AVX2_F32x8
		rowsName = "avx2"
	}
}

// Max3x3S2Rows_AVX2_F32x8 is BaseMax3x3S2Rows using AVX2, 8 outputs per step.
//
// Eight outputs span input columns 2k..2k+16. The three rows are first
// reduced column-wise with two 8-lane loads per row, which leaves one value
// per column; the stride-2 horizontal max then runs over those 17 values.
// Column 2k+16 is shared with the next step's first window.
func Max3x3S2Rows_AVX2_F32x8(r0, r1, r2, dst []float32, n int) {
	var cols [17]float32
	k := 0
	for ; k+8 <= n; k += 8 {
		i := 2 * k
		lo := archsimd.LoadFloat32x8Slice(r0[i:]).
			Max(archsimd.LoadFloat32x8Slice(r1[i:])).
			Max(archsimd.LoadFloat32x8Slice(r2[i:]))
		hi := archsimd.LoadFloat32x8Slice(r0[i+8:]).
			Max(archsimd.LoadFloat32x8Slice(r1[i+8:])).
			Max(archsimd.LoadFloat32x8Slice(r2[i+8:]))
		lo.StoreSlice(cols[:8])
		hi.StoreSlice(cols[8:16])
		cols[16] = max3(r0[i+16], r1[i+16], r2[i+16])

		out := dst[k : k+8]
		for j := range out {
			out[j] = max3(cols[2*j], cols[2*j+1], cols[2*j+2])
		}
	}

	if k < n {
		i := 2 * k
		BaseMax3x3S2Rows(r0[i:], r1[i:], r2[i:], dst[k:], n-k)
	}
}
