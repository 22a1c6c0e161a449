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
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/viterin/vek/vek32"

	"github.com/ajroetker/go-highway-convert/hwy"
)

type infoReport struct {
	GOOS   string           `json:"goos" yaml:"goos"`
	GOARCH string           `json:"goarch" yaml:"goarch"`
	NumCPU int              `json:"num_cpu" yaml:"num_cpu"`
	NoSimd bool             `json:"no_simd" yaml:"no_simd"`
	Hwy    hwy.Capabilities `json:"hwy" yaml:"hwy"`
	Vek    vekInfo          `json:"vek" yaml:"vek"`
}

// vekInfo is what the vek32 checksum kernels detected, reported next to hwy
// so disagreements between the two detectors are visible.
type vekInfo struct {
	Acceleration bool     `json:"acceleration" yaml:"acceleration"`
	CPUFeatures  []string `json:"cpu_features" yaml:"cpu_features"`
}

func newInfoCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show the dispatch level and detected CPU features",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			return a.info(format)
		},
	}
	addFormatFlag(cmd)
	return cmd
}

func collectInfo() infoReport {
	vi := vek32.Info()
	return infoReport{
		GOOS:   runtime.GOOS,
		GOARCH: runtime.GOARCH,
		NumCPU: runtime.NumCPU(),
		NoSimd: hwy.NoSimdEnv(),
		Hwy:    hwy.CurrentCapabilities(),
		Vek: vekInfo{
			Acceleration: vi.Acceleration,
			CPUFeatures:  vi.CPUFeatures,
		},
	}
}

func (a *app) info(format string) error {
	r := collectInfo()
	a.logger.Debug("detected target", "level", r.Hwy.Level, "width", r.Hwy.Width, "no_simd", r.NoSimd)
	return render(a.out, format, r, func(tw *tabwriter.Writer) {
		c := r.Hwy
		fmt.Fprintf(tw, "platform\t%s/%s (%d CPUs)\n", r.GOOS, r.GOARCH, r.NumCPU)
		fmt.Fprintf(tw, "target\t%s\n", c.Name)
		fmt.Fprintf(tw, "width\t%d bytes (%d f32 lanes)\n", c.Width, hwy.MaxLanes[float32]())
		fmt.Fprintf(tw, "HWY_NO_SIMD\t%t\n", r.NoSimd)
		fmt.Fprintf(tw, "simd experiment\t%t\n", c.SIMDExtension)
		fmt.Fprintf(tw, "avx512dq\t%t\n", c.AVX512DQ)
		fmt.Fprintf(tw, "avx512bw\t%t\n", c.AVX512BW)
		fmt.Fprintf(tw, "avx512bf16\t%t\n", c.AVX512BF16)
		fmt.Fprintf(tw, "f16c\t%t\n", c.F16C)
		fmt.Fprintf(tw, "arm fp16\t%t\n", c.ARMFP16)
		fmt.Fprintf(tw, "arm bf16\t%t\n", c.ARMBF16)
		fmt.Fprintf(tw, "vek acceleration\t%t\n", r.Vek.Acceleration)
		fmt.Fprintf(tw, "vek features\t%s\n", strings.Join(r.Vek.CPUFeatures, ","))
	})
}
