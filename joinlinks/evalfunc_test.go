package joinlinks

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKernelValue_One(t *testing.T) {
	assert.Equal(t, 1.0, kernelValue(EvalOne, 0.7, 0.3, 0.9))
}

func TestKernelValue_W1W2(t *testing.T) {
	assert.Equal(t, 0.42, kernelValue(EvalW1W2, 0.7, 0.3, 0.42))
}

func TestKernelValue_DistSuccessAndFailureSumToOne(t *testing.T) {
	success := kernelValue(EvalDistSuccess, 0.7, 0.3, 0.21)
	failure := kernelValue(EvalDistFailure, 0.7, 0.3, 0.21)
	assert.InDelta(t, 1.0, success+failure, 1e-12)
}

func TestKernelValue_DistWerner(t *testing.T) {
	got := kernelValue(EvalDistWerner, 0.5, 0.5, 0.25)
	assert.InDelta(t, 0.5+0.5+4*0.25, got, 1e-12)
}
