package cutoff_test

import (
	"testing"

	"github.com/katalvlaran/repeater-chain/cutoff"
	"github.com/stretchr/testify/assert"
)

func TestBroadcast_RepeatsPolicy(t *testing.T) {
	p := cutoff.WithRunTime(42)
	s := cutoff.Broadcast(p, 3)
	assert.Len(t, s, 3)
	for i := 0; i < 3; i++ {
		got, err := s.At(i)
		assert.NoError(t, err)
		assert.Equal(t, p, got)
	}
}

func TestSchedule_AtOutOfRange(t *testing.T) {
	s := cutoff.Broadcast(cutoff.NoCutoff(), 2)
	_, err := s.At(2)
	assert.Error(t, err)
	_, err = s.At(-1)
	assert.Error(t, err)
}

func TestFromSequence_Positional(t *testing.T) {
	seq := []cutoff.Policy{cutoff.WithMemoryTime(1), cutoff.WithFidelity(0.2)}
	s := cutoff.FromSequence(seq)
	got0, _ := s.At(0)
	got1, _ := s.At(1)
	assert.Equal(t, cutoff.MemoryTime, got0.Kind)
	assert.Equal(t, cutoff.Fidelity, got1.Kind)
}
