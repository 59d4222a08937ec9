package linkstate_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/repeater-chain/linkstate"
	"github.com/stretchr/testify/assert"
)

func TestElementary_ZeroAtOrigin(t *testing.T) {
	s := linkstate.Elementary(0.5, 0.9, 5)
	assert.Equal(t, 0.0, s.PMF[0], "pmf[0] must be zero: no link can be delivered at t=0")
	for _, w := range s.W {
		assert.Equal(t, 0.9, w, "werner parameter is constant across the truncation window")
	}
}

func TestElementary_GeometricShape(t *testing.T) {
	pGen := 0.3
	s := linkstate.Elementary(pGen, 1, 4)
	assert.InDelta(t, pGen, s.PMF[1], 1e-12)
	assert.InDelta(t, pGen*(1-pGen), s.PMF[2], 1e-12)
	assert.InDelta(t, pGen*(1-pGen)*(1-pGen), s.PMF[3], 1e-12)
}

func TestCoverage_SumsPMF(t *testing.T) {
	pmf := []float64{0, 0.2, 0.3, 0.1}
	assert.InDelta(t, 0.6, linkstate.Coverage(pmf), 1e-12)
}

func TestScrubWerner_NaNDefaultsToOne(t *testing.T) {
	w := []float64{math.NaN(), 1.5, -0.2, 0.5}
	linkstate.ScrubWerner(w)
	assert.Equal(t, 1.0, w[0], "NaN (0/0 from an unreached step) must scrub to 1")
	assert.Equal(t, 1.0, w[1], "values above 1 clamp to 1")
	assert.Equal(t, 0.0, w[2], "values below 0 clamp to 0")
	assert.Equal(t, 0.5, w[3], "in-range values are untouched")
}

func TestFidelity_WernerToFidelity(t *testing.T) {
	assert.InDelta(t, 1.0, linkstate.Fidelity(1), 1e-12)
	assert.InDelta(t, 0.25, linkstate.Fidelity(0), 1e-12)
}

func TestSecretKeyRate_ZeroWhenNoMass(t *testing.T) {
	pmf := make([]float64, 4)
	w := []float64{1, 1, 1, 1}
	assert.Equal(t, 0.0, linkstate.SecretKeyRate(pmf, w))
}

func TestClone_IsIndependent(t *testing.T) {
	s := linkstate.Elementary(0.4, 0.8, 3)
	c := s.Clone()
	c.PMF[1] = 999
	assert.NotEqual(t, s.PMF[1], c.PMF[1], "Clone must not alias the source backing arrays")
}
