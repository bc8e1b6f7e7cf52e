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

package envconfig

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-maxpool/hwy"
)

func TestVar(t *testing.T) {
	t.Setenv("MAXPOOL_TEST_VAR", `  "quoted"  `)
	require.Equal(t, "quoted", Var("MAXPOOL_TEST_VAR"))
}

func TestBool(t *testing.T) {
	cases := map[string]bool{
		"":      false,
		"0":     false,
		"false": false,
		"1":     true,
		"true":  true,
		"junk":  true,
		`"0"`:   false,
	}
	for value, want := range cases {
		t.Run(value, func(t *testing.T) {
			t.Setenv("MAXPOOL_TEST_BOOL", value)
			require.Equal(t, want, Bool("MAXPOOL_TEST_BOOL")())
		})
	}
}

func TestNoSimdMatchesDispatcher(t *testing.T) {
	for _, value := range []string{"", "0", "1", `"0"`, `'1'`, " false ", "junk"} {
		t.Run(value, func(t *testing.T) {
			t.Setenv("HWY_NO_SIMD", value)
			require.Equal(t, hwy.NoSimdEnv(), NoSimd())
			require.Equal(t, Bool("HWY_NO_SIMD")(), NoSimd())
		})
	}
}

func TestNumThreads(t *testing.T) {
	t.Setenv("MAXPOOL_NUM_THREADS", "")
	require.Equal(t, uint(0), NumThreads())

	t.Setenv("MAXPOOL_NUM_THREADS", "6")
	require.Equal(t, uint(6), NumThreads())

	t.Setenv("MAXPOOL_NUM_THREADS", "-2")
	require.Equal(t, uint(0), NumThreads())
}

func TestLogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"":      slog.LevelInfo,
		"false": slog.LevelInfo,
		"1":     slog.LevelDebug,
		"true":  slog.LevelDebug,
		"2":     slog.Level(-8),
	}
	for value, want := range cases {
		t.Run(value, func(t *testing.T) {
			t.Setenv("MAXPOOL_DEBUG", value)
			require.Equal(t, want, LogLevel())
		})
	}
}

func TestAsMap(t *testing.T) {
	m := AsMap()
	for _, k := range []string{"MAXPOOL_DEBUG", "MAXPOOL_NUM_THREADS", "HWY_NO_SIMD"} {
		v, ok := m[k]
		require.True(t, ok, k)
		require.Equal(t, k, v.Name)
		require.NotEmpty(t, v.Description)
	}
}
