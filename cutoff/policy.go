// SPDX-License-Identifier: MIT
package cutoff

import (
	"math"

	"github.com/katalvlaran/repeater-chain/backend"
)

// Kind enumerates the cut-off policy families. The zero value, None, means
// "effectively unbounded".
type Kind int

const (
	// None applies no cut-off: both links are held until delivered.
	None Kind = iota
	// MemoryTime discards both links if, after the first delivers, the
	// partner has not arrived within MemoryTimeSteps additional steps.
	MemoryTime
	// Fidelity discards the held link once its decohered Werner parameter
	// drops below FidelityFloor.
	Fidelity
	// RunTime requires max(t1, t2) <= RunTimeSteps, an absolute deadline.
	RunTime
)

// String renders the Kind using its wire vocabulary.
func (k Kind) String() string {
	switch k {
	case MemoryTime:
		return "memory_time"
	case Fidelity:
		return "fidelity"
	case RunTime:
		return "run_time"
	default:
		return "none"
	}
}

// Unbounded is the conventional "+infinity" cutoff used for MemoryTime and
// RunTime when no bound is configured.
const Unbounded = math.MaxInt32

// Policy is one cut-off configuration, applied at a single protocol step.
//
//	MemoryTimeSteps - integer, used when Kind == MemoryTime.
//	FidelityFloor   - real in [0, 1), used when Kind == Fidelity.
//	RunTimeSteps    - integer, used when Kind == RunTime.
//
// Only the field matching Kind is read; the others are ignored.
type Policy struct {
	Kind            Kind
	MemoryTimeSteps int
	FidelityFloor   float64
	RunTimeSteps    int
}

// NoCutoff returns the degenerate "no cut-off" policy. Its step-count fields are
// set to Unbounded rather than left at their zero value, so a Policy
// printed or inspected directly reads as "no bound" rather than "bound
// of zero steps".
func NoCutoff() Policy {
	return Policy{Kind: None, MemoryTimeSteps: Unbounded, RunTimeSteps: Unbounded}
}

// WithMemoryTime builds a memory-time cut-off policy.
func WithMemoryTime(steps int) Policy {
	return Policy{Kind: MemoryTime, MemoryTimeSteps: steps}
}

// WithFidelity builds a fidelity cut-off policy.
func WithFidelity(floor float64) Policy {
	return Policy{Kind: Fidelity, FidelityFloor: floor}
}

// WithRunTime builds a run-time cut-off policy.
func WithRunTime(steps int) Policy {
	return Policy{Kind: RunTime, RunTimeSteps: steps}
}

// Validate reports whether p is internally consistent. It does not know
// T_trunc, so it only checks the shape of the payload for its Kind.
func (p Policy) Validate() error {
	switch p.Kind {
	case None:
		return nil
	case MemoryTime:
		if p.MemoryTimeSteps < 0 {
			return &backend.ConfigError{Field: "MemoryTimeSteps", Reason: "must be >= 0"}
		}
	case Fidelity:
		if p.FidelityFloor < 0 || p.FidelityFloor >= 1 {
			return &backend.ConfigError{Field: "FidelityFloor", Reason: "must be in [0, 1)"}
		}
	case RunTime:
		if p.RunTimeSteps < 0 {
			return &backend.ConfigError{Field: "RunTimeSteps", Reason: "must be >= 0"}
		}
	default:
		return &backend.ConfigError{Field: "Kind", Reason: "unknown cut-off kind"}
	}
	return nil
}

// Shift is the iterative-convolution shift implied by this policy: the
// memory-time window for MemoryTime, zero for every other kind.
func (p Policy) Shift() int {
	if p.Kind == MemoryTime {
		return p.MemoryTimeSteps
	}
	return 0
}
