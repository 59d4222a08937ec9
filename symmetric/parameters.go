// SPDX-License-Identifier: MIT
package symmetric

import (
	"math"

	"github.com/katalvlaran/repeater-chain/backend"
	"github.com/katalvlaran/repeater-chain/cutoff"
)

// StepKind identifies which unit operator a protocol step applies.
type StepKind int

const (
	Swap StepKind = iota
	Dist
)

func (k StepKind) String() string {
	switch k {
	case Swap:
		return "SWAP"
	case Dist:
		return "DIST"
	default:
		return "unknown"
	}
}

// Parameters is the nested-driver input envelope: a single
// chain doubled or purified in place by a SWAP/DIST protocol, each step
// carrying its own cut-off policy.
type Parameters struct {
	PGen  float64 // per-step elementary-link generation probability
	W0    float64 // elementary-link initial Werner parameter
	PSwap float64 // swap-success probability, applied at every SWAP step

	// TCoh is the homogeneous coherence time shared by the memories
	// involved in every step. Use math.Inf(1) for a decoherence-free
	// chain.
	TCoh float64

	Protocol []StepKind
	Cutoffs  cutoff.Schedule // len(Cutoffs) == len(Protocol)

	TTrunc int

	// Config.Efficient selects the join-links path for every step: the
	// bounded O(T_trunc*mt_cut) memory-time shortcut, or the general
	// O(T_trunc^2) path.
	Config backend.Config

	// AllLevel is not read by Driver.Run, which always returns only the
	// final state; the per-prefix state history is returned by
	// Driver.RunAllLevels.
	AllLevel bool
}

// DefaultParameters returns the zero-decoherence, FFT-backed defaults;
// callers must still set PGen, W0, Protocol, Cutoffs and TTrunc.
func DefaultParameters() Parameters {
	return Parameters{
		PSwap:  1,
		TCoh:   math.Inf(1),
		Config: backend.DefaultConfig(),
	}
}

// Validate enforces precondition set for the nested driver.
func (p Parameters) Validate() error {
	if p.PGen <= 0 || p.PGen > 1 {
		return &backend.ConfigError{Field: "PGen", Reason: "must be in (0, 1]"}
	}
	if p.W0 < 0 || p.W0 > 1 {
		return &backend.ConfigError{Field: "W0", Reason: "must be in [0, 1]"}
	}
	if p.PSwap <= 0 || p.PSwap > 1 {
		return &backend.ConfigError{Field: "PSwap", Reason: "must be in (0, 1]"}
	}
	if p.TCoh <= 0 {
		return &backend.ConfigError{Field: "TCoh", Reason: "must be > 0 (use +Inf for no decoherence)"}
	}
	if p.TTrunc < 2 {
		return &backend.ConfigError{Field: "TTrunc", Reason: "must be >= 2"}
	}
	if len(p.Cutoffs) != len(p.Protocol) {
		return &backend.ConfigError{Field: "Cutoffs", Reason: "must have one policy per protocol step"}
	}
	for _, pol := range p.Cutoffs {
		if err := pol.Validate(); err != nil {
			return err
		}
	}
	return p.Config.Validate()
}
