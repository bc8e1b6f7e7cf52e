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
	"runtime"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ajroetker/go-maxpool/hwy"
	"github.com/ajroetker/go-maxpool/hwy/contrib/pooling"
	"github.com/ajroetker/go-maxpool/internal/cpuinfo"
	"github.com/ajroetker/go-maxpool/internal/envconfig"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show dispatch level, CPU features, and configuration",
		Args:  cobra.NoArgs,
		RunE:  infoHandler,
	}
}

func infoHandler(cmd *cobra.Command, _ []string) error {
	upper := cases.Upper(language.Und)
	title := cases.Title(language.English)
	w := cmd.OutOrStdout()

	table := newTable(w, "PROPERTY", "VALUE")
	table.AppendBulk([][]string{
		{"GOOS", runtime.GOOS},
		{"GOARCH", runtime.GOARCH},
		{"NumCPU", fmt.Sprint(runtime.NumCPU())},
		{"Dispatch level", upper.String(hwy.CurrentName())},
		{"Dispatch width", fmt.Sprintf("%d bytes", hwy.CurrentWidth())},
		{"Row kernel", title.String(pooling.RowsName())},
	})
	table.Render()
	fmt.Fprintln(w)

	if features := cpuinfo.Features(); len(features) > 0 {
		table = newTable(w, "FEATURE", "PRESENT", "NOTE")
		for _, f := range features {
			table.Append([]string{f.Name, fmt.Sprint(f.Present), f.Note})
		}
		table.Render()
		fmt.Fprintln(w)
	}

	env := envconfig.AsMap()
	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	table = newTable(w, "VARIABLE", "VALUE", "DESCRIPTION")
	for _, k := range keys {
		v := env[k]
		table.Append([]string{v.Name, fmt.Sprint(v.Value), v.Description})
	}
	table.Render()
	return nil
}
