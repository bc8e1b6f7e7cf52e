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
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-maxpool/hwy/contrib/pooling"
)

var errMismatch = errors.New("kernel output differs from reference")

func newRunCmd() *cobra.Command {
	var flags tensorFlags
	var verify bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Pool a random tensor with both kernels and compare them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runHandler(cmd, &flags, verify)
		},
	}
	flags.register(cmd, []int{1, 4, 17, 23})
	cmd.Flags().BoolVar(&verify, "verify", false, "Compare against the reference implementation")
	return cmd
}

func runHandler(cmd *cobra.Command, flags *tensorFlags, verify bool) error {
	inShape, paddings, outShape, err := flags.parse()
	if err != nil {
		return fmt.Errorf("run: %w", err)
	}

	pool := flags.newPool()
	defer pool.Close()

	input := randomInput(inShape, flags.seed)
	slog.Debug("pooling", "input", inShape, "paddings", paddings, "output", outShape,
		"workers", pool.NumWorkers(), "rows", pooling.RowsName())

	bordered := make([]float32, pooling.NumElements(outShape))
	pooling.ParallelMaxPool3x3S2(pool, input, inShape, bordered, outShape, paddings)

	padShape := pooling.PaddedShape(inShape, paddings)
	padded := make([]float32, pooling.NumElements(padShape))
	pooling.Pad(padded, input, inShape, paddings, pooling.Lowest)
	fromPadded := make([]float32, pooling.NumElements(outShape))
	pooling.ParallelMaxPool3x3S2Padded(pool, padded, padShape, fromPadded, outShape)

	table := newTable(cmd.OutOrStdout(), "KERNEL", "INPUT", "OUTPUT", "MAX |DIFF|")
	table.Append([]string{"bordered", shapeString(inShape), shapeString(outShape), "-"})
	paddedDiff := maxAbsDiff(bordered, fromPadded)
	table.Append([]string{"padded", shapeString(padShape), shapeString(outShape), fmt.Sprint(paddedDiff)})

	var refDiff float64
	if verify {
		reference := make([]float32, pooling.NumElements(outShape))
		pooling.BaseMaxPool3x3S2(input, inShape, reference, outShape, paddings)
		refDiff = maxAbsDiff(bordered, reference)
		table.Append([]string{"reference", shapeString(inShape), shapeString(outShape), fmt.Sprint(refDiff)})
	}
	table.Render()

	if paddedDiff != 0 {
		return fmt.Errorf("run: padded kernel: %w (max |diff| %v)", errMismatch, paddedDiff)
	}
	if refDiff != 0 {
		return fmt.Errorf("run: bordered kernel: %w (max |diff| %v)", errMismatch, refDiff)
	}
	return nil
}

func maxAbsDiff(a, b []float32) float64 {
	var m float64
	for i := range a {
		m = math.Max(m, math.Abs(float64(a[i])-float64(b[i])))
	}
	return m
}
