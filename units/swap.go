// SPDX-License-Identifier: MIT
package units

import (
	"github.com/katalvlaran/repeater-chain/backend"
	"github.com/katalvlaran/repeater-chain/convolve"
	"github.com/katalvlaran/repeater-chain/cutoff"
	"github.com/katalvlaran/repeater-chain/joinlinks"
	"github.com/katalvlaran/repeater-chain/linkstate"
)

// Swap implements the entanglement-swap unit operator: two incoming
// links are joined under the cut-off policy, the
// cut-off retry loop and the swap-success retry loop are each closed by
// IterateSum, and the output Werner series is recovered by dividing the
// Werner-weighted numerator by the final delivery PMF.
func Swap(cfg backend.Config, s1, s2 linkstate.State, pSwap float64, policy cutoff.Policy, coh joinlinks.Coherence, useEfficient bool, diag *backend.Diagnostics) (linkstate.State, error) {
	if pSwap <= 0 || pSwap > 1 {
		return linkstate.State{}, &backend.ConfigError{Field: "pSwap", Reason: "must be in (0, 1]"}
	}
	if err := policy.Validate(); err != nil {
		return linkstate.State{}, err
	}

	// Step 1: one cut-off attempt's fail/success probability.
	pFail, err := joinlinks.Join(s1, s2, false, policy, coh, joinlinks.EvalOne, useEfficient)
	if err != nil {
		return linkstate.State{}, err
	}
	pSuccess, err := joinlinks.Join(s1, s2, true, policy, coh, joinlinks.EvalOne, useEfficient)
	if err != nil {
		return linkstate.State{}, err
	}

	shift := policy.Shift()

	// Step 2: close the cut-off retry loop.
	pCutoff, err := convolve.IterateSum(cfg, pFail, pSuccess, shift, nil, diag)
	if err != nil {
		return linkstate.State{}, err
	}

	// Step 3: close the swap retry loop — the final delivery PMF.
	pSwapPMF, err := convolve.IterateSum(cfg, pCutoff, nil, 0, &pSwap, diag)
	if err != nil {
		return linkstate.State{}, err
	}

	// Step 4: Werner-weighted success kernel, carried through both loops.
	successKernel, err := joinlinks.Join(s1, s2, true, policy, coh, joinlinks.EvalW1W2, useEfficient)
	if err != nil {
		return linkstate.State{}, err
	}
	sPrep, err := convolve.IterateSum(cfg, pFail, successKernel, shift, nil, diag)
	if err != nil {
		return linkstate.State{}, err
	}
	sOut, err := convolve.IterateSum(cfg, pCutoff, sPrep, 0, &pSwap, diag)
	if err != nil {
		return linkstate.State{}, err
	}

	// Step 5: divide elementwise, scrub, clamp.
	wOut := divideWerner(sOut, pSwapPMF)

	if err := checkCoverage(pSwapPMF, cfg, diag); err != nil {
		return linkstate.State{}, err
	}

	return linkstate.State{PMF: pSwapPMF, W: wOut}, nil
}
