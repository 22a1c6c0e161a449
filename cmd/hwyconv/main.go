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

// Command hwyconv inspects and exercises the register conversion kernels on
// the running machine.
//
// Usage:
//
//	hwyconv info                          # dispatch level and CPU features
//	hwyconv kernels --format yaml         # registered kernels and policies
//	hwyconv convert --from f32 --to i8 -- 1000 -3.7 nan
//	hwyconv verify --samples 65536 --type bf16,f16
//
// Set HWY_NO_SIMD=1 to force the portable kernels. HWYCONV_FORMAT and
// HWYCONV_WORKERS supply defaults for --format and --workers.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

// app carries the output streams shared by every subcommand.
type app struct {
	out    io.Writer
	logger *slog.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{out: stdout, logger: newLogger(stderr, false)}

	rootCmd := &cobra.Command{
		Use:   "hwyconv",
		Short: "Inspect and verify SIMD register conversion kernels",
		Long: `hwyconv reports which conversion kernels the running CPU dispatches to,
converts individual values through them, and checks every kernel against
scalar reference semantics.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			verbose, _ := cmd.Flags().GetBool("verbose")
			a.logger = newLogger(stderr, verbose)
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.PersistentFlags().BoolP("verbose", "v", getEnvBool("HWYCONV_VERBOSE", false), "Enable debug logging")

	rootCmd.AddCommand(
		newInfoCmd(a),
		newKernelsCmd(a),
		newConvertCmd(a),
		newVerifyCmd(a),
	)
	return rootCmd
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func addFormatFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("format", "f", getEnvStr("HWYCONV_FORMAT", formatTable),
		fmt.Sprintf("Output format (%s, %s, %s)", formatTable, formatJSON, formatYAML))
}

func getEnvStr(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}
