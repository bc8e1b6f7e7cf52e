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

package workerpool

import (
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewDefaultsToGOMAXPROCS(t *testing.T) {
	p := New(0)
	defer p.Close()
	require.GreaterOrEqual(t, p.NumWorkers(), 1)

	p4 := New(4)
	defer p4.Close()
	require.Equal(t, 4, p4.NumWorkers())
}

func TestParallelForCoversEveryIndexOnce(t *testing.T) {
	for _, workers := range []int{1, 2, 3, 8} {
		for _, n := range []int{0, 1, 2, 5, 6, 17, 100} {
			t.Run(fmt.Sprintf("workers=%d/n=%d", workers, n), func(t *testing.T) {
				p := New(workers)
				defer p.Close()

				hits := make([]atomic.Int32, n)
				var calls atomic.Int32
				p.ParallelFor(n, func(start, end int) {
					calls.Add(1)
					require.Less(t, start, end)
					for i := start; i < end; i++ {
						hits[i].Add(1)
					}
				})
				for i := range hits {
					require.Equal(t, int32(1), hits[i].Load(), "index %d", i)
				}
				require.LessOrEqual(t, int(calls.Load()), max(workers, 1))
			})
		}
	}
}

func TestParallelForAtomicCoversEveryIndexOnce(t *testing.T) {
	p := New(4)
	defer p.Close()

	const n = 257
	hits := make([]atomic.Int32, n)
	p.ParallelForAtomic(n, func(i int) {
		hits[i].Add(1)
	})
	for i := range hits {
		require.Equal(t, int32(1), hits[i].Load(), "index %d", i)
	}
}

func TestClosedPoolRunsInline(t *testing.T) {
	p := New(8)
	p.Close()
	require.Equal(t, 1, p.NumWorkers())

	var calls int
	p.ParallelFor(10, func(start, end int) {
		calls++
		require.Equal(t, 0, start)
		require.Equal(t, 10, end)
	})
	require.Equal(t, 1, calls)

	sum := 0
	p.ParallelForAtomic(5, func(i int) { sum += i })
	require.Equal(t, 10, sum)
}
