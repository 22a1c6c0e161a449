package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-highway-convert/hwy"
	"github.com/ajroetker/go-highway-convert/internal/verify"
)

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

// convertDoc mirrors the JSON form of convertResult.
type convertDoc struct {
	Kernel     string       `json:"kernel"`
	Policy     string       `json:"policy"`
	Resolution string       `json:"resolution"`
	Lanes      []laneResult `json:"lanes"`
}

func runConvert(t *testing.T, args ...string) convertDoc {
	t.Helper()
	out, _, err := run(t, append([]string{"convert", "--format", "json"}, args...)...)
	require.NoError(t, err)
	var res convertDoc
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	return res
}

func outputs(res convertDoc) []string {
	out := make([]string, len(res.Lanes))
	for i, l := range res.Lanes {
		out[i] = l.Output
	}
	return out
}

func TestInfo(t *testing.T) {
	out, _, err := run(t, "info", "--format", "json")
	require.NoError(t, err)

	var info map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	caps, ok := info["hwy"].(map[string]any)
	require.True(t, ok, "hwy section missing: %s", out)
	assert.Equal(t, hwy.CurrentLevel().String(), caps["level"])
	assert.EqualValues(t, hwy.CurrentWidth(), caps["width"])
	assert.Contains(t, info, "vek")

	out, _, err = run(t, "info")
	require.NoError(t, err)
	assert.Contains(t, out, "target")
	assert.Contains(t, out, hwy.CurrentName())
}

func TestKernelsTable(t *testing.T) {
	out, _, err := run(t, "kernels")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 21)
	assert.True(t, strings.HasPrefix(lines[0], "KERNEL"))
	assert.Contains(t, out, "F32ToI8")
	assert.Contains(t, out, "saturate")
	assert.Contains(t, out, "composed via i32")
}

func TestKernelsYAML(t *testing.T) {
	out, _, err := run(t, "kernels", "--format", "yaml")
	require.NoError(t, err)

	var ks []map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &ks))
	require.Len(t, ks, 20)
	assert.Equal(t, "BF16ToF32", ks[0]["name"])
	assert.Equal(t, "round-nearest-even", ks[1]["policy"])
}

func TestFormatFromEnv(t *testing.T) {
	t.Setenv("HWYCONV_FORMAT", "json")
	out, _, err := run(t, "kernels")
	require.NoError(t, err)

	var ks []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &ks))
	assert.Len(t, ks, 20)
}

func TestUnknownFormat(t *testing.T) {
	_, _, err := run(t, "kernels", "--format", "xml")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errUnknownFormat))
}

func TestConvertSaturates(t *testing.T) {
	res := runConvert(t, "--from", "f32", "--to", "i8", "--", "1000", "-1000", "100", "-3.7", "nan")
	assert.Equal(t, "F32ToI8", res.Kernel)
	assert.Equal(t, "saturate", res.Policy)
	assert.Equal(t, []string{"127", "-128", "100", "-3", "-128"}, outputs(res))
	assert.Equal(t, "0x7F", res.Lanes[0].Bits)
	assert.Equal(t, "0x80", res.Lanes[1].Bits)
}

func TestConvertNegativeNeedsSeparator(t *testing.T) {
	_, _, err := run(t, "convert", "--from", "f32", "--to", "i8", "1000", "-3.7", "nan")
	require.Error(t, err, "a negative value without -- parses as a flag")

	res := runConvert(t, "--from", "f32", "--to", "i8", "--", "1000", "-3.7", "nan")
	assert.Equal(t, []string{"127", "-3", "-128"}, outputs(res))
}

func TestConvertBFloat16Ties(t *testing.T) {
	// Both inputs sit halfway between two bf16 values.
	res := runConvert(t, "--from", "f32", "--to", "bf16", "1.00390625", "1.01171875")
	require.Len(t, res.Lanes, 2)
	assert.Equal(t, "0x3F80", res.Lanes[0].Bits)
	assert.Equal(t, "0x3F82", res.Lanes[1].Bits)
}

func TestConvertFallbackAgrees(t *testing.T) {
	args := []string{"--from", "i64", "--to", "i8", "--", "-129", "255", "0x7FFFFFFFFFFFFFFF", "3"}
	kernel := runConvert(t, args...)
	fallback := runConvert(t, append([]string{"--fallback"}, args...)...)

	assert.Equal(t, []string{"127", "-1", "-1", "3"}, outputs(kernel))
	assert.Equal(t, outputs(kernel), outputs(fallback))
	assert.Equal(t, "composed", kernel.Resolution)
	assert.Equal(t, "fallback", fallback.Resolution)
}

func TestConvertSpansGroups(t *testing.T) {
	n := 3*hwy.MaxLanes[float32]() + 1
	args := []string{"--from", "i32", "--to", "i64", "--"}
	want := make([]string, n)
	for i := range n {
		v := strconv.Itoa(i*7919 - 100000)
		args = append(args, v)
		want[i] = v
	}

	res := runConvert(t, args...)
	require.Len(t, res.Lanes, n)
	assert.Equal(t, want, outputs(res))
	assert.Equal(t, n-1, res.Lanes[n-1].Lane)
}

func TestConvertErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
		text string
	}{
		{"unknown source", []string{"--from", "f128", "--to", "f32", "1"}, errUnknownType, "f128"},
		{"unknown destination", []string{"--from", "f32", "--to", "q4", "1"}, errUnknownType, "q4"},
		{"no kernel", []string{"--from", "i8", "--to", "u8", "1"}, errNoKernel, "i8 to u8"},
		{"out of range", []string{"--from", "i8", "--to", "i32", "300"}, strconv.ErrRange, "300"},
		{"not a number", []string{"--from", "f32", "--to", "f16", "abc"}, strconv.ErrSyntax, "abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, append([]string{"convert"}, tt.args...)...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			assert.Contains(t, err.Error(), tt.text)
		})
	}
}

func TestVerify(t *testing.T) {
	out, stderr, err := run(t, "verify", "--samples", "8", "--type", "i8,u8", "--workers", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "I8ToI32")
	assert.Contains(t, out, "exhaustive")
	assert.NotContains(t, out, "FAIL")
	assert.Contains(t, stderr, "verification finished")
}

func TestVerifyJSON(t *testing.T) {
	out, _, err := run(t, "verify", "--samples", "4", "--type", "i64", "--format", "json")
	require.NoError(t, err)

	var report struct {
		Target  string `json:"target"`
		Kernels []struct {
			Name    string `json:"name"`
			Checked int64  `json:"checked"`
		} `json:"kernels"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, hwy.CurrentName(), report.Target)
	require.NotEmpty(t, report.Kernels)
	for _, k := range report.Kernels {
		assert.Positive(t, k.Checked, k.Name)
	}
}

func TestVerifyUnknownType(t *testing.T) {
	_, _, err := run(t, "verify", "--type", "f128")
	require.Error(t, err)
	assert.True(t, errors.Is(err, verify.ErrUnknownType))
}

func TestVerboseLogging(t *testing.T) {
	_, stderr, err := run(t, "--verbose", "kernels")
	require.NoError(t, err)
	assert.Contains(t, stderr, "level=DEBUG")

	_, stderr, err = run(t, "kernels")
	require.NoError(t, err)
	assert.NotContains(t, stderr, "level=DEBUG")
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("HWYCONV_TEST_INT", "12")
	t.Setenv("HWYCONV_TEST_BAD", "twelve")
	t.Setenv("HWYCONV_TEST_BOOL", "true")

	assert.Equal(t, 12, getEnvInt("HWYCONV_TEST_INT", 3))
	assert.Equal(t, 3, getEnvInt("HWYCONV_TEST_BAD", 3))
	assert.Equal(t, 3, getEnvInt("HWYCONV_TEST_UNSET", 3))
	assert.True(t, getEnvBool("HWYCONV_TEST_BOOL", false))
	assert.False(t, getEnvBool("HWYCONV_TEST_BAD", false))
	assert.Equal(t, "twelve", getEnvStr("HWYCONV_TEST_BAD", "x"))
	assert.Equal(t, "x", getEnvStr("HWYCONV_TEST_UNSET", "x"))
}
