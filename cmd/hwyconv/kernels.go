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
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-highway-convert/hwy/contrib/vecconvert"
)

func newKernelsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kernels",
		Short: "List the registered conversion kernels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			return a.kernels(format)
		},
	}
	addFormatFlag(cmd)
	return cmd
}

func (a *app) kernels(format string) error {
	ks := vecconvert.Kernels()
	a.logger.Debug("listing kernels", "count", len(ks))
	return render(a.out, format, ks, func(tw *tabwriter.Writer) {
		fmt.Fprintln(tw, "KERNEL\tSRC\tDST\tLANES\tPOLICY\tRESOLUTION")
		for _, k := range ks {
			res := k.Resolution.String()
			if k.Via != "" {
				res += " via " + k.Via
			}
			fmt.Fprintf(tw, "%s\t%s x%d\t%s x%d\t%d\t%s\t%s\n",
				k.Name, k.Src, k.SrcRegs, k.Dst, k.DstRegs, k.Lanes, k.Policy, res)
		}
	})
}
