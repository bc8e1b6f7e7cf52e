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

// Command maxpool inspects, runs, and benchmarks the 3×3 stride-2 max pooling
// kernels.
//
// Usage:
//
//	maxpool info
//	maxpool run --shape 1,8,17,23 --pad 1,2 --verify
//	maxpool bench --shape 1,64,112,112 --pad 1,1 --iters 50
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/ajroetker/go-maxpool/internal/envconfig"
)

func main() {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: envconfig.LogLevel(),
	})
	slog.SetDefault(slog.New(handler))

	if err := NewCLI().ExecuteContext(context.Background()); err != nil {
		slog.Error("maxpool failed", "error", err)
		os.Exit(1)
	}
}
