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
	"math"
	"slices"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-highway-convert/hwy"
	"github.com/ajroetker/go-highway-convert/hwy/contrib/vecconvert"
)

var (
	errUnknownType = errors.New("unknown lane type")
	errNoKernel    = errors.New("no kernel for conversion")
)

type laneResult struct {
	Lane   int    `json:"lane" yaml:"lane"`
	Input  string `json:"input" yaml:"input"`
	Output string `json:"output" yaml:"output"`
	Bits   string `json:"bits" yaml:"bits"`
}

type convertResult struct {
	Kernel     string                `json:"kernel" yaml:"kernel"`
	Src        string                `json:"src" yaml:"src"`
	Dst        string                `json:"dst" yaml:"dst"`
	Policy     vecconvert.Policy     `json:"policy" yaml:"policy"`
	Resolution vecconvert.Resolution `json:"resolution" yaml:"resolution"`
	Lanes      []laneResult          `json:"lanes" yaml:"lanes"`
}

// converter parses args as source lanes and runs them through one kernel,
// a register group at a time.
type converter func(args []string, fallback bool) ([]laneResult, error)

var converters = map[string]converter{
	"BF16ToF32": converterFor[float32, vecconvert.One, hwy.BFloat16, vecconvert.One](),
	"F32ToBF16": converterFor[hwy.BFloat16, vecconvert.One, float32, vecconvert.One](),
	"F16ToF32":  converterFor[float32, vecconvert.One, hwy.Float16, vecconvert.One](),
	"F32ToF16":  converterFor[hwy.Float16, vecconvert.One, float32, vecconvert.One](),
	"I64ToF32":  converterFor[float32, vecconvert.One, int64, vecconvert.Two](),
	"F32ToI64":  converterFor[int64, vecconvert.Two, float32, vecconvert.One](),
	"I32ToI64":  converterFor[int64, vecconvert.Two, int32, vecconvert.One](),
	"I64ToI32":  converterFor[int32, vecconvert.One, int64, vecconvert.Two](),
	"I8ToI32":   converterFor[int32, vecconvert.One, int8, vecconvert.One](),
	"U8ToI32":   converterFor[int32, vecconvert.One, uint8, vecconvert.One](),
	"I32ToI8":   converterFor[int8, vecconvert.One, int32, vecconvert.One](),
	"I32ToU8":   converterFor[uint8, vecconvert.One, int32, vecconvert.One](),
	"F32ToI8":   converterFor[int8, vecconvert.One, float32, vecconvert.One](),
	"F32ToU8":   converterFor[uint8, vecconvert.One, float32, vecconvert.One](),
	"I8ToF32":   converterFor[float32, vecconvert.One, int8, vecconvert.One](),
	"U8ToF32":   converterFor[float32, vecconvert.One, uint8, vecconvert.One](),
	"I64ToI8":   converterFor[int8, vecconvert.One, int64, vecconvert.Two](),
	"I64ToU8":   converterFor[uint8, vecconvert.One, int64, vecconvert.Two](),
	"I8ToI64":   converterFor[int64, vecconvert.Two, int8, vecconvert.One](),
	"U8ToI64":   converterFor[int64, vecconvert.Two, uint8, vecconvert.One](),
}

func newConvertCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert --from TYPE --to TYPE [--] VALUE...",
		Short: "Convert values through a registered kernel",
		Long: `Convert parses each VALUE as a lane of the source type and prints the
converted lane with its bit pattern. Floating-point values are parsed as
float32 first; bf16 and f16 sources are then rounded to nearest even.
Integer values accept a 0x prefix. Put -- before the values whenever any
of them is negative, otherwise it is parsed as a flag.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, _ := cmd.Flags().GetString("from")
			to, _ := cmd.Flags().GetString("to")
			fallback, _ := cmd.Flags().GetBool("fallback")
			format, _ := cmd.Flags().GetString("format")
			return a.convert(from, to, fallback, format, args)
		},
	}
	cmd.Flags().String("from", "f32", "Source lane type")
	cmd.Flags().String("to", "bf16", "Destination lane type")
	cmd.Flags().Bool("fallback", false, "Use the lane-wise fallback instead of the kernel")
	addFormatFlag(cmd)
	return cmd
}

// findKernel returns the registered kernel converting from to to.
func findKernel(from, to string) (vecconvert.KernelInfo, error) {
	ks := vecconvert.Kernels()
	var known []string
	for _, k := range ks {
		if k.Src == from && k.Dst == to {
			return k, nil
		}
		for _, name := range []string{k.Src, k.Dst} {
			if !slices.Contains(known, name) {
				known = append(known, name)
			}
		}
	}
	for _, name := range []string{from, to} {
		if !slices.Contains(known, name) {
			return vecconvert.KernelInfo{}, fmt.Errorf("%w: %q (known: %v)", errUnknownType, name, known)
		}
	}
	return vecconvert.KernelInfo{}, fmt.Errorf("%w: %s to %s", errNoKernel, from, to)
}

func (a *app) convert(from, to string, fallback bool, format string, args []string) error {
	k, err := findKernel(from, to)
	if err != nil {
		return err
	}
	lanes, err := converters[k.Name](args, fallback)
	if err != nil {
		return err
	}
	res := convertResult{
		Kernel:     k.Name,
		Src:        k.Src,
		Dst:        k.Dst,
		Policy:     k.Policy,
		Resolution: k.Resolution,
		Lanes:      lanes,
	}
	if fallback {
		res.Resolution = vecconvert.Generic
	}
	a.logger.Debug("converted", "kernel", k.Name, "resolution", res.Resolution, "values", len(args))

	return render(a.out, format, res, func(tw *tabwriter.Writer) {
		fmt.Fprintf(tw, "# %s: %s -> %s (%s, %s)\n", res.Kernel, res.Src, res.Dst, res.Policy, res.Resolution)
		fmt.Fprintln(tw, "LANE\tINPUT\tOUTPUT\tBITS")
		for _, l := range res.Lanes {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", l.Lane, l.Input, l.Output, l.Bits)
		}
	})
}

func converterFor[DT hwy.Lanes, DN vecconvert.Size, ST hwy.Lanes, SN vecconvert.Size]() converter {
	return func(args []string, fallback bool) ([]laneResult, error) {
		src := make([]ST, len(args))
		for i, s := range args {
			v, err := parseLane[ST](s)
			if err != nil {
				return nil, err
			}
			src[i] = v
		}

		count := vecconvert.LogicalCount[DT, DN, ST, SN]()
		results := make([]laneResult, 0, len(src))
		for start := 0; start < len(src); start += count {
			chunk := src[start:min(start+count, len(src))]
			g := vecconvert.LoadN[ST, SN](chunk)
			var out vecconvert.VecN[DT, DN]
			if fallback {
				out = vecconvert.Fallback[DT, DN](g)
			} else {
				out = vecconvert.Convert[DT, DN](g)
			}
			for i, x := range chunk {
				y := out.Lane(i)
				results = append(results, laneResult{
					Lane:   start + i,
					Input:  formatValue(x),
					Output: formatValue(y),
					Bits:   formatBits(y),
				})
			}
		}
		return results, nil
	}
}

func parseLane[T hwy.Lanes](s string) (T, error) {
	var (
		zero T
		v    any
		f    float64
		i    int64
		u    uint64
		err  error
	)
	switch any(zero).(type) {
	case float32:
		f, err = strconv.ParseFloat(s, 32)
		v = float32(f)
	case hwy.BFloat16:
		f, err = strconv.ParseFloat(s, 32)
		v = hwy.Float32ToBFloat16(float32(f))
	case hwy.Float16:
		f, err = strconv.ParseFloat(s, 32)
		v = hwy.Float32ToFloat16(float32(f))
	case int64:
		i, err = strconv.ParseInt(s, 0, 64)
		v = i
	case int32:
		i, err = strconv.ParseInt(s, 0, 32)
		v = int32(i)
	case int8:
		i, err = strconv.ParseInt(s, 0, 8)
		v = int8(i)
	case uint8:
		u, err = strconv.ParseUint(s, 0, 8)
		v = uint8(u)
	default:
		return zero, fmt.Errorf("%w: %s", errUnknownType, vecconvert.TypeName[T]())
	}
	if err != nil {
		return zero, fmt.Errorf("parse %q as %s: %w", s, vecconvert.TypeName[T](), err)
	}
	return v.(T), nil
}

func formatValue[T hwy.Lanes](v T) string {
	switch x := any(v).(type) {
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case hwy.BFloat16:
		return strconv.FormatFloat(float64(x.Float32()), 'g', -1, 32)
	case hwy.Float16:
		return strconv.FormatFloat(float64(x.Float32()), 'g', -1, 32)
	}
	return fmt.Sprint(v)
}

func formatBits[T hwy.Lanes](v T) string {
	switch x := any(v).(type) {
	case float32:
		return fmt.Sprintf("0x%08X", math.Float32bits(x))
	case hwy.BFloat16:
		return fmt.Sprintf("0x%04X", uint16(x))
	case hwy.Float16:
		return fmt.Sprintf("0x%04X", uint16(x))
	case int64:
		return fmt.Sprintf("0x%016X", uint64(x))
	case int32:
		return fmt.Sprintf("0x%08X", uint32(x))
	case int8:
		return fmt.Sprintf("0x%02X", uint8(x))
	case uint8:
		return fmt.Sprintf("0x%02X", x)
	}
	return ""
}
