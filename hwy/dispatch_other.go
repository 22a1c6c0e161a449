//go:build !amd64 && !arm64

package hwy

const simdExperiment = false

func init() {
	// Non-amd64/arm64 architectures run the portable kernels.
	setScalarMode()
}

func HasAVX512DQ() bool   { return false }
func HasAVX512BW() bool   { return false }
func HasF16C() bool       { return false }
func HasAVX512BF16() bool { return false }
func HasARMFP16() bool    { return false }
func HasARMBF16() bool    { return false }
