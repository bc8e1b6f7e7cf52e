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

// Package pooling provides 3×3, stride-2 max pooling over NCHW float32
// tensors.
//
// # Kernels
//
// Two call targets cover the two ways callers hold their input:
//   - MaxPool3x3S2 reads an unpadded tensor and excludes window positions
//     that fall outside it. Padding is given as per-axis totals, split as
//     before = total/2 and after = total - before.
//   - MaxPool3x3S2Padded reads a tensor whose border was already filled by
//     the caller (see Pad). It has no bounds checks at all.
//
// Each has a Parallel variant that spreads (batch, channel) planes over a
// workerpool.Executor.
//
// # Contract
//
// The kernels never allocate and never validate. Shapes must satisfy
//
//	out = (in + padding - 3) / 2 + 1
//
// with per-side padding in {0, 1, 2}; OutputShape computes it. Violations are
// caller bugs. Building with -tags maxpooldebug turns on precondition checks
// that panic with a description of the mismatch.
//
// # Example Usage
//
//	inShape := [4]int{1, 64, 112, 112}
//	paddings := [2]int{1, 1}
//	outShape := pooling.OutputShape(inShape, paddings)
//	output := make([]float32, pooling.NumElements(outShape))
//	pooling.ParallelMaxPool3x3S2(pool, input, inShape, output, outShape, paddings)
//
// # Row Reduction
//
// Both kernels reduce three input rows into one output row with Max3x3S2Rows.
// On amd64 builds with GOEXPERIMENT=simd and AVX2 it processes 8 outputs per
// step, taking the 3-row max on 8-lane vectors before the stride-2 horizontal
// max. Everywhere else, and with HWY_NO_SIMD=1, it is BaseMax3x3S2Rows.
//
// # Infinities
//
// Window positions that fall on the input are reduced with their own values,
// but the bounds-checked path used for border windows starts its running max
// at Lowest (-math.MaxFloat32). A border window whose in-range values are all
// -Inf therefore yields Lowest, while the same window in the interior yields
// -Inf. Finite inputs are unaffected.
package pooling
