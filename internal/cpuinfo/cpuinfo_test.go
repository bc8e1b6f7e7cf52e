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

package cpuinfo

import (
	"runtime"
	"testing"
)

func TestFeatures(t *testing.T) {
	features := Features()
	switch runtime.GOARCH {
	case "amd64":
		if len(features) == 0 || features[0].Name != "SSE2" || !features[0].Present {
			t.Errorf("amd64 must report SSE2 first and present, got %+v", features)
		}
	case "arm64":
		if len(features) == 0 || features[0].Name != "ASIMD" {
			t.Errorf("arm64 must report ASIMD first, got %+v", features)
		}
	default:
		if features != nil {
			t.Errorf("unexpected features on %s: %+v", runtime.GOARCH, features)
		}
	}
	seen := map[string]bool{}
	for _, f := range features {
		if seen[f.Name] {
			t.Errorf("duplicate feature %s", f.Name)
		}
		seen[f.Name] = true
	}
}
