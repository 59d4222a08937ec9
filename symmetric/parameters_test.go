package symmetric_test

import (
	"testing"

	"github.com/katalvlaran/repeater-chain/cutoff"
	"github.com/katalvlaran/repeater-chain/symmetric"
	"github.com/stretchr/testify/assert"
)

func TestParameters_ValidAccepted(t *testing.T) {
	p := baseParams([]symmetric.StepKind{symmetric.Swap})
	assert.NoError(t, p.Validate())
}

func TestParameters_RejectsPGenOutOfRange(t *testing.T) {
	p := baseParams([]symmetric.StepKind{symmetric.Swap})
	p.PGen = 0
	assert.Error(t, p.Validate())
	p.PGen = 1.1
	assert.Error(t, p.Validate())
}

func TestParameters_RejectsTTruncBelowTwo(t *testing.T) {
	p := baseParams([]symmetric.StepKind{symmetric.Swap})
	p.TTrunc = 1
	assert.Error(t, p.Validate())
	p.TTrunc = 0
	assert.Error(t, p.Validate())
}

func TestParameters_RejectsCutoffsLengthMismatch(t *testing.T) {
	p := baseParams([]symmetric.StepKind{symmetric.Swap, symmetric.Dist})
	p.Cutoffs = cutoff.Broadcast(cutoff.NoCutoff(), 1)
	assert.Error(t, p.Validate())
}
