// SPDX-License-Identifier: MIT
package linkstate

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// State is the (pmf, w) pair of one link, of length TTrunc.
type State struct {
	PMF []float64
	W   []float64
}

// TTrunc returns the common length of PMF and W.
func (s State) TTrunc() int { return len(s.PMF) }

// Elementary builds the waiting-time distribution and Werner parameter of
// a freshly generated elementary link: PMF[t] = pGen*(1-pGen)^(t-1) for
// t >= 1, PMF[0] = 0; W[t] = w0 for every t.
func Elementary(pGen, w0 float64, tTrunc int) State {
	pmf := make([]float64, tTrunc)
	w := make([]float64, tTrunc)
	survival := 1.0
	for t := 1; t < tTrunc; t++ {
		pmf[t] = pGen * survival
		survival *= 1 - pGen
	}
	for t := range w {
		w[t] = w0
	}
	return State{PMF: pmf, W: w}
}

// Coverage is sum(PMF), the fraction of probability mass captured before
// truncation.
func Coverage(pmf []float64) float64 {
	return floats.Sum(pmf)
}

// ScrubWerner applies the hygiene pass common to Swap and Distill: any
// NaN becomes 1 (unobservable delivery, harmless default), then the
// result is clamped to [0, 1].
func ScrubWerner(w []float64) {
	for i, v := range w {
		if math.IsNaN(v) {
			w[i] = 1
			continue
		}
		if v > 1 {
			w[i] = 1
		} else if v < 0 {
			w[i] = 0
		}
	}
}

// Fidelity converts a Werner parameter to the corresponding Bell-state
// fidelity, fidelity = (1+3w)/4.
func Fidelity(w float64) float64 {
	return (1 + 3*w) / 4
}

// SecretKeyRate is a coarse per-step secret-key-rate proxy: the delivery
// probability at t weighted by a simple linear penalty on imperfect
// fidelity, summed and divided by the mean waiting time.
func SecretKeyRate(pmf, w []float64) float64 {
	meanT := MeanWaitingTime(pmf)
	if meanT <= 0 {
		return 0
	}
	var keyed float64
	for t, p := range pmf {
		if p <= 0 {
			continue
		}
		fid := Fidelity(w[t])
		if fid <= 0.5 {
			continue
		}
		// Binary-entropy-free linear proxy: clamp at zero for fid<=0.5.
		keyed += p * (2*fid - 1)
	}
	return keyed / meanT
}

// MeanWaitingTime returns sum_t t*PMF[t], the mean of the (possibly
// sub-normalized, since truncated) waiting-time distribution.
func MeanWaitingTime(pmf []float64) float64 {
	var mean float64
	for t, p := range pmf {
		mean += float64(t) * p
	}
	return mean
}

// Clone returns a deep copy of s.
func (s State) Clone() State {
	out := State{PMF: make([]float64, len(s.PMF)), W: make([]float64, len(s.W))}
	copy(out.PMF, s.PMF)
	copy(out.W, s.W)
	return out
}
