package joinlinks

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoherence_DecayAtZeroIsOne(t *testing.T) {
	c := Homogeneous(10)
	assert.Equal(t, 1.0, c.decay(0))
}

func TestCoherence_HomogeneousMatchesClosedForm(t *testing.T) {
	c := Homogeneous(5)
	got := c.decay(3)
	want := math.Exp(-3.0 / 5.0)
	assert.InDelta(t, want, got, 1e-12)
}

func TestCoherence_InfiniteCoherenceNeverDecays(t *testing.T) {
	c := Homogeneous(math.Inf(1))
	assert.Equal(t, 1.0, c.decay(1000))
}

func TestCoherence_HeterogeneousSwapExcludesSharedNode(t *testing.T) {
	withSharedDecoherence := HeterogeneousSwap(10, 1, 10)
	withoutSharedDecoherence := HeterogeneousSwap(10, math.Inf(1), 10)
	assert.Equal(t, withSharedDecoherence.decay(4), withoutSharedDecoherence.decay(4),
		"the shared swap node's own coherence time must not affect the decay rate")
}

func TestCoherence_CutoffStepsMonotone(t *testing.T) {
	c := Homogeneous(10)
	near := c.cutoffSteps(1.0, 0.5)
	far := c.cutoffSteps(1.0, 0.1)
	assert.Greater(t, far, near, "a lower fidelity floor must take longer to trigger")
}
