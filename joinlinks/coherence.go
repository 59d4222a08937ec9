// SPDX-License-Identifier: MIT
package joinlinks

import "math"

// Coherence carries the coherence time(s) relevant to one join-links call:
// a single homogeneous value, or (heterogeneous mode) the per-memory
// values threaded in from the asymmetric driver.
//
// Open-question decision (see DESIGN.md): heterogeneous decay takes the
// form exp(-Δt_L/t_coh_L)·exp(-Δt_R/t_coh_R), but which two of the three
// swap-time memories (left endpoint, shared node, right endpoint) act as
// L and R is not pinned down elsewhere. We take L and R to be the two
// *outer* endpoints —
// the nodes that must hold their half of each link for the whole waiting
// window — and do not apply extra decay at the shared node, whose memory
// is only touched at the instant of the swap itself.
type Coherence struct {
	// TCoh holds 1 value (homogeneous), 2 values (heterogeneous distill:
	// left, right endpoint of the segment), or 3 values (heterogeneous
	// swap: left endpoint of the left segment, shared node, right
	// endpoint of the right segment).
	TCoh []float64
}

// Homogeneous builds a single-coherence-time Coherence.
func Homogeneous(tCoh float64) Coherence { return Coherence{TCoh: []float64{tCoh}} }

// HeterogeneousDistill builds a two-memory Coherence for an in-place
// distillation on a segment spanning (left, right).
func HeterogeneousDistill(left, right float64) Coherence {
	return Coherence{TCoh: []float64{left, right}}
}

// HeterogeneousSwap builds a three-memory Coherence for a swap joining a
// left segment (outer endpoint `left`) and a right segment (outer endpoint
// `right`) at a `shared` node.
func HeterogeneousSwap(left, shared, right float64) Coherence {
	return Coherence{TCoh: []float64{left, shared, right}}
}

// rate returns the effective decoherence rate (1/t_coh, combined across
// the relevant outer memories) used by decay and cutoffSteps.
func (c Coherence) rate() float64 {
	switch len(c.TCoh) {
	case 0:
		return 0
	case 1:
		return invOrZero(c.TCoh[0])
	case 2:
		return invOrZero(c.TCoh[0]) + invOrZero(c.TCoh[1])
	default: // 3: left, shared, right — shared does not contribute (see doc).
		return invOrZero(c.TCoh[0]) + invOrZero(c.TCoh[2])
	}
}

func invOrZero(t float64) float64 {
	if t <= 0 || math.IsInf(t, 1) {
		return 0
	}
	return 1 / t
}

// decay returns exp(-dt*rate), the bit-exact homogeneous form
// exp(-|t1-t2|/t_coh) when len(TCoh) == 1, and its heterogeneous
// generalization otherwise ("Decoherence").
func (c Coherence) decay(dt float64) float64 {
	if dt == 0 {
		return 1
	}
	rate := c.rate()
	if rate == 0 {
		return 1
	}
	return math.Exp(-dt * rate)
}

// cutoffSteps returns the smallest non-negative integer d such that
// decay(d)*w drops (strictly) below wCut — the deterministic trigger time
// of a fidelity cut-off, given the held link's Werner parameter w at the
// moment it started waiting.
func (c Coherence) cutoffSteps(w, wCut float64) int {
	if w < wCut {
		return 0
	}
	rate := c.rate()
	if rate <= 0 {
		return math.MaxInt32 / 2
	}
	d := math.Log(w/wCut) / rate
	return int(math.Floor(d)) + 1
}
