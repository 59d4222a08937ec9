// SPDX-License-Identifier: MIT
package joinlinks

import (
	"github.com/katalvlaran/repeater-chain/backend"
	"github.com/katalvlaran/repeater-chain/cutoff"
	"github.com/katalvlaran/repeater-chain/linkstate"
)

// Join combines two link states into a single-step array.
// yCut selects the success branch (true: both links arrived within the
// cut-off window) or the failure branch (false: the cut-off was hit).
// useEfficient requests the bounded-window shortcut for MemoryTime cut
// -offs; it is ignored (and the compatible path used) for every other
// Kind, which has no such shortcut.
func Join(s1, s2 linkstate.State, yCut bool, policy cutoff.Policy, coh Coherence, fn EvalFunc, useEfficient bool) ([]float64, error) {
	t := len(s1.PMF)
	if t != len(s2.PMF) || t != len(s1.W) || t != len(s2.W) {
		return nil, &backend.ConfigError{Field: "link lengths", Reason: "pmf1, w1, pmf2, w2 must share T_trunc"}
	}
	if err := policy.Validate(); err != nil {
		return nil, err
	}
	if !yCut && fn != EvalOne {
		return nil, &backend.ConfigError{Field: "evaluate_func", Reason: "the cut-off failure branch only supports EvalOne"}
	}

	if useEfficient && policy.Kind == cutoff.MemoryTime {
		return joinMemoryTimeEfficient(s1, s2, yCut, policy.MemoryTimeSteps, coh, fn), nil
	}
	return joinCompatible(s1, s2, yCut, policy, coh, fn), nil
}

// joinCompatible is the general O(T_trunc²) path: enumerate every (t1, t2)
// pair, classify it against the cut-off policy, and accumulate into the
// output bucket that pair belongs to.
func joinCompatible(s1, s2 linkstate.State, yCut bool, policy cutoff.Policy, coh Coherence, fn EvalFunc) []float64 {
	t := len(s1.PMF)
	result := make([]float64, t)
	for t1 := 0; t1 < t; t1++ {
		p1 := s1.PMF[t1]
		if p1 == 0 {
			continue
		}
		for t2 := 0; t2 < t; t2++ {
			p2 := s2.PMF[t2]
			if p2 == 0 {
				continue
			}
			success, outT, decay := classify(policy, coh, s1.W, s2.W, t1, t2)
			if success != yCut || outT < 0 || outT >= t {
				continue
			}
			if yCut {
				result[outT] += p1 * p2 * kernelValue(fn, s1.W[t1], s2.W[t2], s1.W[t1]*s2.W[t2]*decay)
			} else {
				result[outT] += p1 * p2
			}
		}
	}
	return result
}

// classify decides whether the pair (t1, t2) lands in the cut-off's
// success or failure region, and the elapsed-time bucket it contributes
// to. decay is only meaningful when success is true.
func classify(policy cutoff.Policy, coh Coherence, w1, w2 []float64, t1, t2 int) (success bool, outT int, decay float64) {
	d := absInt(t1 - t2)
	switch policy.Kind {
	case cutoff.None:
		return true, maxInt(t1, t2), coh.decay(float64(d))

	case cutoff.MemoryTime:
		mt := policy.MemoryTimeSteps
		if d <= mt {
			return true, maxInt(t1, t2), coh.decay(float64(d))
		}
		return false, minInt(t1, t2) + mt, 1

	case cutoff.RunTime:
		rt := policy.RunTimeSteps
		m := maxInt(t1, t2)
		if m <= rt {
			return true, m, coh.decay(float64(d))
		}
		return false, rt, 1

	case cutoff.Fidelity:
		wCut := policy.FidelityFloor
		var wFirst float64
		var tFirst int
		if t1 <= t2 {
			wFirst, tFirst = w1[t1], t1
		} else {
			wFirst, tFirst = w2[t2], t2
		}
		decayed := coh.decay(float64(d))
		if wFirst*decayed >= wCut {
			return true, maxInt(t1, t2), decayed
		}
		return false, tFirst + coh.cutoffSteps(wFirst, wCut), 1

	default:
		return false, -1, 1
	}
}

// joinMemoryTimeEfficient computes the MemoryTime marginal directly in
// O(T_trunc·mt_cut) by summing over the bounded relative delay d instead
// of enumerating the full (t1, t2) grid.
func joinMemoryTimeEfficient(s1, s2 linkstate.State, yCut bool, mt int, coh Coherence, fn EvalFunc) []float64 {
	t := len(s1.PMF)
	result := make([]float64, t)

	if yCut {
		for at := 0; at < t; at++ {
			window := mt
			if window > at {
				window = at
			}
			// d == 0: t1 == t2 == at.
			result[at] += s1.PMF[at] * s2.PMF[at] * kernelValue(fn, s1.W[at], s2.W[at], s1.W[at]*s2.W[at])
			for d := 1; d <= window; d++ {
				decay := coh.decay(float64(d))
				// link 1 arrives first, at at-d; link 2 arrives at at.
				result[at] += s1.PMF[at-d] * s2.PMF[at] *
					kernelValue(fn, s1.W[at-d], s2.W[at], s1.W[at-d]*s2.W[at]*decay)
				// link 2 arrives first, at at-d; link 1 arrives at at.
				result[at] += s1.PMF[at] * s2.PMF[at-d] *
					kernelValue(fn, s1.W[at], s2.W[at-d], s1.W[at]*s2.W[at-d]*decay)
			}
		}
		return result
	}

	// Failure branch: the attempt started at m = min(t1, t2) is declared
	// dead at m+mt once the partner fails to arrive within the window.
	tail1 := tailSums(s1.PMF)
	tail2 := tailSums(s2.PMF)
	for m := 0; m < t; m++ {
		outT := m + mt
		if outT >= t {
			break
		}
		boundary := m + mt + 1
		result[outT] += s1.PMF[m] * tailFrom(tail2, boundary)
		result[outT] += s2.PMF[m] * tailFrom(tail1, boundary)
	}
	return result
}

// tailSums returns, for each index i, sum(pmf[i:]) — the survival
// function P(T >= i).
func tailSums(pmf []float64) []float64 {
	n := len(pmf)
	tail := make([]float64, n+1)
	for i := n - 1; i >= 0; i-- {
		tail[i] = tail[i+1] + pmf[i]
	}
	return tail
}

// tailFrom returns P(T >= from) from a precomputed tailSums table,
// clamped to the table's bounds.
func tailFrom(tail []float64, from int) float64 {
	if from < 0 {
		from = 0
	}
	if from >= len(tail) {
		return 0
	}
	return tail[from]
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
