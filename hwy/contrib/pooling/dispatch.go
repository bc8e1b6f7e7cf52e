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

// Max3x3S2Rows writes n outputs reduced from three input rows, each holding
// at least 2n+1 elements. It defaults to BaseMax3x3S2Rows; target files
// replace it at init when the CPU supports a vector form and HWY_NO_SIMD is
// unset.
//
// Emulated 4-lane vectors built from [4]float32 arrays ran about 7x slower
// than BaseMax3x3S2Rows (BenchmarkMax3x3S2Rows, n=64), so only native vector
// forms are registered here.
var Max3x3S2Rows = BaseMax3x3S2Rows

var rowsName = "scalar"

// RowsName names the implementation behind Max3x3S2Rows, e.g. "avx2" or
// "scalar".
func RowsName() string {
	return rowsName
}
