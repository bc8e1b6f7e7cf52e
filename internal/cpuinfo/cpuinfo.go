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

// Package cpuinfo reports the CPU features detected by golang.org/x/sys/cpu
// that matter for choosing a pooling kernel.
package cpuinfo

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// Feature is one named CPU capability.
type Feature struct {
	Name    string
	Present bool
	Note    string
}

// Features returns the features relevant to GOARCH, in display order.
// Unsupported architectures return nil.
func Features() []Feature {
	switch runtime.GOARCH {
	case "arm64":
		return arm64Features()
	case "amd64":
		return amd64Features()
	}
	return nil
}

func arm64Features() []Feature {
	return []Feature{
		{"ASIMD", cpu.ARM64.HasASIMD, "NEON baseline"},
		{"FP", cpu.ARM64.HasFP, "Floating point"},
		{"FPHP", cpu.ARM64.HasFPHP, "FP16 scalar, ARMv8.2-A"},
		{"ASIMDHP", cpu.ARM64.HasASIMDHP, "FP16 NEON, ARMv8.2-A"},
		{"SVE", cpu.ARM64.HasSVE, "Scalable Vector Extension"},
		{"SVE2", cpu.ARM64.HasSVE2, "SVE2"},
	}
}

func amd64Features() []Feature {
	return []Feature{
		{"SSE2", cpu.X86.HasSSE2, "amd64 baseline"},
		{"SSE41", cpu.X86.HasSSE41, ""},
		{"AVX", cpu.X86.HasAVX, ""},
		{"AVX2", cpu.X86.HasAVX2, ""},
		{"FMA", cpu.X86.HasFMA, ""},
		{"AVX512F", cpu.X86.HasAVX512F, ""},
		{"AVX512BW", cpu.X86.HasAVX512BW, ""},
		{"AVX512VL", cpu.X86.HasAVX512VL, ""},
	}
}
