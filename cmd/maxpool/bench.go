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
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/stat"

	"github.com/ajroetker/go-maxpool/hwy/contrib/pooling"
)

func newBenchCmd() *cobra.Command {
	var flags tensorFlags
	var iters int

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time the bordered, padded, and reference kernels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return benchHandler(cmd, &flags, iters)
		},
	}
	flags.register(cmd, []int{1, 64, 112, 112})
	cmd.Flags().IntVar(&iters, "iters", 20, "Timed iterations per kernel")
	return cmd
}

func benchHandler(cmd *cobra.Command, flags *tensorFlags, iters int) error {
	if iters <= 0 {
		return fmt.Errorf("bench: --iters must be positive, got %d", iters)
	}
	inShape, paddings, outShape, err := flags.parse()
	if err != nil {
		return fmt.Errorf("bench: %w", err)
	}

	pool := flags.newPool()
	defer pool.Close()

	input := randomInput(inShape, flags.seed)
	output := make([]float32, pooling.NumElements(outShape))
	padShape := pooling.PaddedShape(inShape, paddings)
	padded := make([]float32, pooling.NumElements(padShape))
	pooling.Pad(padded, input, inShape, paddings, pooling.Lowest)

	kernels := []struct {
		name string
		fn   func()
	}{
		{"bordered", func() {
			pooling.ParallelMaxPool3x3S2(pool, input, inShape, output, outShape, paddings)
		}},
		{"padded", func() {
			pooling.ParallelMaxPool3x3S2Padded(pool, padded, padShape, output, outShape)
		}},
		{"reference", func() {
			pooling.BaseMaxPool3x3S2(input, inShape, output, outShape, paddings)
		}},
	}

	table := newTable(cmd.OutOrStdout(), "KERNEL", "MEAN", "STDDEV", "OUTPUTS/S")
	for _, k := range kernels {
		k.fn() // warm up
		seconds := make([]float64, iters)
		for i := range seconds {
			start := time.Now()
			k.fn()
			seconds[i] = time.Since(start).Seconds()
		}
		mean, std := stat.MeanStdDev(seconds, nil)
		slog.Debug("bench", "kernel", k.name, "iters", iters, "mean", mean, "stddev", std)

		table.Append([]string{
			k.name,
			formatSeconds(mean),
			formatSeconds(std),
			fmt.Sprintf("%.3g", float64(len(output))/mean),
		})
	}
	table.Render()
	return nil
}

func formatSeconds(s float64) string {
	return time.Duration(s * float64(time.Second)).String()
}
