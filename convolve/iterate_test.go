package convolve_test

import (
	"testing"

	"github.com/katalvlaran/repeater-chain/backend"
	"github.com/katalvlaran/repeater-chain/convolve"
	"github.com/stretchr/testify/assert"
)

func geometricInput(n int, p float64) []float64 {
	f := make([]float64, n)
	survival := 1.0
	for t := 1; t < n; t++ {
		f[t] = p * survival
		survival *= 1 - p
	}
	return f
}

func TestIterateSum_RejectsLengthMismatch(t *testing.T) {
	cfg := backend.DefaultConfig()
	f := make([]float64, 8)
	first := make([]float64, 7)
	_, err := convolve.IterateSum(cfg, f, first, 0, nil, nil)
	assert.Error(t, err, "first must share f's length when explicitly supplied")
}

func TestIterateSum_RejectsNegativeShift(t *testing.T) {
	cfg := backend.DefaultConfig()
	f := make([]float64, 4)
	_, err := convolve.IterateSum(cfg, f, nil, -1, nil, nil)
	assert.Error(t, err)
}

func TestIterateSum_FFTMatchesDirect(t *testing.T) {
	n := 64
	f := geometricInput(n, 0.2)

	cfgFFT := backend.DefaultConfig()
	cfgFFT.UseFFT = true
	resultFFT, err := convolve.IterateSum(cfgFFT, f, nil, 0, nil, nil)
	assert.NoError(t, err)

	cfgDirect := backend.DefaultConfig()
	cfgDirect.UseFFT = false
	resultDirect, err := convolve.IterateSum(cfgDirect, f, nil, 0, nil, nil)
	assert.NoError(t, err)

	for i := range resultFFT {
		assert.InDelta(t, resultDirect[i], resultFFT[i], 1e-9, "FFT and direct paths must agree at index %d", i)
	}
}

func TestIterateSum_PSwapWeightsFirstTerm(t *testing.T) {
	n := 32
	f := geometricInput(n, 0.3)
	pSwap := 0.6
	cfg := backend.DefaultConfig()

	result, err := convolve.IterateSum(cfg, f, nil, 0, &pSwap, nil)
	assert.NoError(t, err)
	assert.InDelta(t, pSwap*f[1], result[1], 1e-9, "the k=0 term dominates the first non-zero index")
}

func TestIterateSum_ShiftDelaysRetryContribution(t *testing.T) {
	n := 20
	f := geometricInput(n, 0.25)
	impulse := make([]float64, n)
	impulse[0] = 1
	cfg := backend.DefaultConfig()

	result, err := convolve.IterateSum(cfg, f, impulse, 5, nil, nil)
	assert.NoError(t, err)
	assert.InDelta(t, 1.0, result[0], 1e-9, "the k=0 term is the unshifted first array")
	for i := 1; i < 5; i++ {
		assert.InDelta(t, 0, result[i], 1e-9, "no retry can land before the shift window elapses")
	}
	assert.Greater(t, result[6], 0.0, "the first shifted retry term lands one step after the shift, since f[0] = 0")
}

func TestIterateSum_DegenerateZeroInputStaysZero(t *testing.T) {
	n := 10
	f := make([]float64, n)
	cfg := backend.DefaultConfig()
	result, err := convolve.IterateSum(cfg, f, nil, 0, nil, nil)
	assert.NoError(t, err)
	for _, v := range result {
		assert.Equal(t, 0.0, v)
	}
}

func TestIterateSum_GPURequestFallsBackWithDiagnostic(t *testing.T) {
	n := 8
	f := geometricInput(n, 0.5)
	cfg := backend.DefaultConfig()
	cfg.UseGPU = true
	var diag backend.Diagnostics
	_, err := convolve.IterateSum(cfg, f, nil, 0, nil, &diag)
	assert.NoError(t, err)
	assert.True(t, diag.HasCode(backend.WarnGPUUnavailable))
}

func TestIterateSum_GPUWarningFiresOnceAcrossRepeatedCalls(t *testing.T) {
	n := 8
	f := geometricInput(n, 0.5)
	cfg := backend.DefaultConfig()
	cfg.UseGPU = true
	var diag backend.Diagnostics

	for i := 0; i < 3; i++ {
		_, err := convolve.IterateSum(cfg, f, nil, 0, nil, &diag)
		assert.NoError(t, err)
	}

	count := 0
	for _, d := range diag {
		if d.Code == backend.WarnGPUUnavailable {
			count++
		}
	}
	assert.Equal(t, 1, count, "a shared diagnostics accumulator should only record the GPU fallback once")
}
