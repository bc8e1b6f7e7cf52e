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

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewCLI()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRunVerify(t *testing.T) {
	cases := [][]string{
		{"--shape", "1,1,5,5", "--pad", "0,0"},
		{"--shape", "2,3,17,23", "--pad", "1,2"},
		{"--shape", "1,2,1,1", "--pad", "4,4"},
		{"--shape", "1,4,30,41", "--pad", "3,4", "--threads", "3"},
	}
	for _, args := range cases {
		out, err := execute(t, append([]string{"run", "--verify"}, args...)...)
		require.NoError(t, err, "args %v\n%s", args, out)
		require.Contains(t, out, "reference")
		require.Contains(t, out, "padded")
	}
}

func TestRunRejectsBadFlags(t *testing.T) {
	cases := map[string][]string{
		"short shape":    {"run", "--shape", "1,2,3"},
		"zero dimension": {"run", "--shape", "1,0,5,5"},
		"large padding":  {"run", "--pad", "5,0"},
		"tiny input":     {"run", "--shape", "1,1,2,2", "--pad", "0,0"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := execute(t, args...)
			require.Error(t, err)
		})
	}
}

func TestBench(t *testing.T) {
	out, err := execute(t, "bench", "--shape", "1,2,9,11", "--pad", "1,1", "--iters", "2")
	require.NoError(t, err)
	for _, k := range []string{"bordered", "padded", "reference"} {
		require.Contains(t, out, k)
	}

	_, err = execute(t, "bench", "--iters", "0")
	require.Error(t, err)
}

func TestInfo(t *testing.T) {
	out, err := execute(t, "info")
	require.NoError(t, err)
	require.Contains(t, out, "Dispatch level")
	require.Contains(t, out, "HWY_NO_SIMD")
}

func TestMaxAbsDiff(t *testing.T) {
	require.Equal(t, 0.0, maxAbsDiff([]float32{1, 2}, []float32{1, 2}))
	require.Equal(t, 3.0, maxAbsDiff([]float32{1, -2}, []float32{0, 1}))
}
