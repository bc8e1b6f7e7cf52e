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
	"testing"

	"github.com/ajroetker/go-maxpool/hwy"
)

func init() {
	if archsimd.X86.AVX2() {
		rowImpls = append(rowImpls, rowImpl{"avx2", Max3x3S2Rows_AVX2_F32x8})
	}
}

func TestAVX2RowsSelected(t *testing.T) {
	level := hwy.CurrentLevel()
	if level != hwy.DispatchAVX2 && level != hwy.DispatchAVX512 {
		t.Skipf("dispatch level %s", level)
	}
	if RowsName() != "avx2" {
		t.Errorf("RowsName() = %q at level %s, want avx2", RowsName(), level)
	}
}
