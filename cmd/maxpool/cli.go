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
	"io"
	"math/rand/v2"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-maxpool/hwy/contrib/pooling"
	"github.com/ajroetker/go-maxpool/hwy/contrib/workerpool"
	"github.com/ajroetker/go-maxpool/internal/envconfig"
)

// NewCLI builds the root command.
func NewCLI() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "maxpool",
		Short:         "3x3 stride-2 max pooling kernels",
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.AddCommand(newInfoCmd(), newRunCmd(), newBenchCmd())
	return rootCmd
}

// tensorFlags are the shape options shared by run and bench.
type tensorFlags struct {
	shape   []int
	pad     []int
	seed    uint64
	threads uint
}

func (f *tensorFlags) register(cmd *cobra.Command, defaultShape []int) {
	cmd.Flags().IntSliceVar(&f.shape, "shape", defaultShape, "Input shape as batch,channels,height,width")
	cmd.Flags().IntSliceVar(&f.pad, "pad", []int{0, 0}, "Total padding as height,width (each 0..4)")
	cmd.Flags().Uint64Var(&f.seed, "seed", 1, "Seed for the random input")
	cmd.Flags().UintVar(&f.threads, "threads", envconfig.NumThreads(), "Worker count (0 = GOMAXPROCS)")
}

// parse validates the flags and returns input shape, paddings and output shape.
func (f *tensorFlags) parse() (inShape [4]int, paddings [2]int, outShape [4]int, err error) {
	if len(f.shape) != 4 {
		return inShape, paddings, outShape, fmt.Errorf("--shape needs 4 values, got %d", len(f.shape))
	}
	if len(f.pad) != 2 {
		return inShape, paddings, outShape, fmt.Errorf("--pad needs 2 values, got %d", len(f.pad))
	}
	for i, d := range f.shape {
		if d <= 0 {
			return inShape, paddings, outShape, fmt.Errorf("--shape dimension %d is %d, must be positive", i, d)
		}
		inShape[i] = d
	}
	for i, p := range f.pad {
		if p < 0 || p > 4 {
			return inShape, paddings, outShape, fmt.Errorf("--pad value %d is %d, must be in [0, 4]", i, p)
		}
		paddings[i] = p
	}
	if inShape[2]+paddings[0] < pooling.KernelSize || inShape[3]+paddings[1] < pooling.KernelSize {
		return inShape, paddings, outShape, fmt.Errorf("padded input %dx%d is smaller than the 3x3 window",
			inShape[2]+paddings[0], inShape[3]+paddings[1])
	}
	return inShape, paddings, pooling.OutputShape(inShape, paddings), nil
}

func (f *tensorFlags) newPool() *workerpool.Pool {
	return workerpool.New(int(f.threads))
}

func randomInput(shape [4]int, seed uint64) []float32 {
	rng := rand.New(rand.NewPCG(seed, seed+1))
	data := make([]float32, pooling.NumElements(shape))
	for i := range data {
		data[i] = rng.Float32()*2 - 1
	}
	return data
}

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetBorder(false)
	table.SetHeaderLine(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	return table
}

func shapeString(s [4]int) string {
	return fmt.Sprintf("%dx%dx%dx%d", s[0], s[1], s[2], s[3])
}
