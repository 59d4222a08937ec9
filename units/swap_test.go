package units_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/repeater-chain/backend"
	"github.com/katalvlaran/repeater-chain/cutoff"
	"github.com/katalvlaran/repeater-chain/joinlinks"
	"github.com/katalvlaran/repeater-chain/linkstate"
	"github.com/katalvlaran/repeater-chain/units"
	"github.com/stretchr/testify/assert"
)

func TestSwap_RejectsOutOfRangePSwap(t *testing.T) {
	cfg := backend.DefaultConfig()
	s := linkstate.Elementary(0.3, 0.9, 10)
	_, err := units.Swap(cfg, s, s, 0, cutoff.NoCutoff(), joinlinks.Homogeneous(10), true, nil)
	assert.Error(t, err)
	_, err = units.Swap(cfg, s, s, 1.5, cutoff.NoCutoff(), joinlinks.Homogeneous(10), true, nil)
	assert.Error(t, err)
}

func TestSwap_PerfectLinksStayPerfect(t *testing.T) {
	cfg := backend.DefaultConfig()
	n := 64
	s := linkstate.Elementary(0.3, 1, n)
	out, err := units.Swap(cfg, s, s, 1, cutoff.NoCutoff(), joinlinks.Homogeneous(math.Inf(1)), true, nil)
	assert.NoError(t, err)
	for t := 1; t < n; t++ {
		assert.InDelta(t, 1.0, out.W[t], 1e-6, "w0=1 with no decoherence and p_swap=1 must stay perfect")
	}
}

func TestSwap_DecoherenceLowersWerner(t *testing.T) {
	cfg := backend.DefaultConfig()
	n := 64
	s := linkstate.Elementary(0.3, 1, n)

	outNoDecoherence, err := units.Swap(cfg, s, s, 0.8, cutoff.NoCutoff(), joinlinks.Homogeneous(math.Inf(1)), true, nil)
	assert.NoError(t, err)
	outWithDecoherence, err := units.Swap(cfg, s, s, 0.8, cutoff.NoCutoff(), joinlinks.Homogeneous(5), true, nil)
	assert.NoError(t, err)

	assert.Less(t, outWithDecoherence.W[10], outNoDecoherence.W[10]+1e-9,
		"finite coherence time must not improve the Werner parameter versus no decoherence")
}

func TestSwap_CoverageWarningOnTightTruncation(t *testing.T) {
	cfg := backend.DefaultConfig()
	n := 5 // far too short for p_gen=0.05 to accumulate 0.99 coverage
	s := linkstate.Elementary(0.05, 0.9, n)
	var diag backend.Diagnostics
	_, err := units.Swap(cfg, s, s, 0.5, cutoff.NoCutoff(), joinlinks.Homogeneous(math.Inf(1)), true, &diag)
	assert.NoError(t, err)
	assert.True(t, diag.HasCode(backend.WarnLowCoverage))
}

func TestSwap_StrictCoverageReturnsError(t *testing.T) {
	cfg := backend.DefaultConfig()
	cfg.StrictCoverage = true
	n := 5
	s := linkstate.Elementary(0.05, 0.9, n)
	_, err := units.Swap(cfg, s, s, 0.5, cutoff.NoCutoff(), joinlinks.Homogeneous(math.Inf(1)), true, nil)
	assert.Error(t, err)
	var thresholdErr *backend.ThresholdExceededError
	assert.ErrorAs(t, err, &thresholdErr)
}
