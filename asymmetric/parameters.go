// SPDX-License-Identifier: MIT
package asymmetric

import (
	"github.com/katalvlaran/repeater-chain/backend"
	"github.com/katalvlaran/repeater-chain/cutoff"
)

// OpKind identifies which unit operator a protocol step applies.
type OpKind int

const (
	OpSwap OpKind = iota
	OpDist
)

// Op is one protocol step: OpSwap(Index) merges segment Index with its
// smallest live right-neighbor; OpDist(Index) distills segment Index
// in place against itself.
type Op struct {
	Kind  OpKind
	Index int
}

// Parameters is the segment-indexed driver input envelope.
type Parameters struct {
	PGen []float64 // length S, per-segment generation probability
	W0   []float64 // length S, per-segment initial Werner parameter
	PSwap float64  // swap-success probability, applied at every OpSwap step

	Heterogeneous bool
	// TCoh is the single coherence time shared by every memory in
	// homogeneous mode.
	TCoh float64
	// TCohNodes holds one coherence time per node (length S+1) in
	// heterogeneous mode; TCohNodes[k] is the memory at the boundary
	// between segment k-1 and segment k.
	TCohNodes []float64

	Protocol []Op
	Cutoffs  cutoff.Schedule // len(Cutoffs) == len(Protocol); heterogeneous mode requires Kind == None

	TTrunc int

	// Config.Efficient selects the join-links path for every step; it is
	// forced off in heterogeneous mode regardless of its value, since the
	// bounded shortcut only applies to homogeneous memory-time cut-offs.
	Config backend.Config
}

// Validate enforces the segment-indexed driver's structural and scalar
// preconditions.
func (p Parameters) Validate() error {
	s := len(p.PGen)
	if s < 1 {
		return &backend.ConfigError{Field: "PGen", Reason: "must have at least one segment"}
	}
	if len(p.W0) != s {
		return &backend.ConfigError{Field: "W0", Reason: "must have one value per segment"}
	}
	for i, pg := range p.PGen {
		if pg <= 0 || pg > 1 {
			return &backend.ConfigError{Field: "PGen", Reason: "each value must be in (0, 1]"}
		}
		if p.W0[i] < 0 || p.W0[i] > 1 {
			return &backend.ConfigError{Field: "W0", Reason: "each value must be in [0, 1]"}
		}
	}
	if p.PSwap <= 0 || p.PSwap > 1 {
		return &backend.ConfigError{Field: "PSwap", Reason: "must be in (0, 1]"}
	}
	if p.Heterogeneous {
		if len(p.TCohNodes) != s+1 {
			return &backend.ConfigError{Field: "TCohNodes", Reason: "heterogeneous mode requires one value per node (S+1)"}
		}
		for _, c := range p.Cutoffs {
			if c.Kind != cutoff.None {
				return &backend.ConfigError{Field: "Cutoffs", Reason: "cut-offs are not implemented for heterogeneous protocols"}
			}
		}
	} else if p.TCoh <= 0 {
		return &backend.ConfigError{Field: "TCoh", Reason: "must be > 0 (use +Inf for no decoherence)"}
	}
	if len(p.Cutoffs) != len(p.Protocol) {
		return &backend.ConfigError{Field: "Cutoffs", Reason: "must have one policy per protocol step"}
	}
	for _, pol := range p.Cutoffs {
		if err := pol.Validate(); err != nil {
			return err
		}
	}
	for i, op := range p.Protocol {
		if op.Index < 0 || op.Index >= s {
			return &backend.ProtocolError{Step: i, Reason: "segment index out of range"}
		}
	}
	if p.TTrunc < 2 {
		return &backend.ConfigError{Field: "TTrunc", Reason: "must be >= 2"}
	}
	return p.Config.Validate()
}
