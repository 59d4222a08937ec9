// SPDX-License-Identifier: MIT
package units

import (
	"github.com/katalvlaran/repeater-chain/backend"
	"github.com/katalvlaran/repeater-chain/convolve"
	"github.com/katalvlaran/repeater-chain/cutoff"
	"github.com/katalvlaran/repeater-chain/joinlinks"
	"github.com/katalvlaran/repeater-chain/linkstate"
)

// Distill implements the entanglement-distillation unit operator:
// unlike Swap, there is no swap-success retry loop —
// the distillation success/failure split itself closes the final
// retry loop (failure retries the whole two-link wait, success
// terminates it).
func Distill(cfg backend.Config, s1, s2 linkstate.State, policy cutoff.Policy, coh joinlinks.Coherence, useEfficient bool, diag *backend.Diagnostics) (linkstate.State, error) {
	if err := policy.Validate(); err != nil {
		return linkstate.State{}, err
	}

	// Step 1: one cut-off attempt's fail probability, and the two
	// distillation branch kernels on the success branch.
	pFail, err := joinlinks.Join(s1, s2, false, policy, coh, joinlinks.EvalOne, useEfficient)
	if err != nil {
		return linkstate.State{}, err
	}
	distSuccessKernel, err := joinlinks.Join(s1, s2, true, policy, coh, joinlinks.EvalDistSuccess, useEfficient)
	if err != nil {
		return linkstate.State{}, err
	}
	distFailureKernel, err := joinlinks.Join(s1, s2, true, policy, coh, joinlinks.EvalDistFailure, useEfficient)
	if err != nil {
		return linkstate.State{}, err
	}

	shift := policy.Shift()

	// Step 2: distillation success and failure branches, each closing
	// the cut-off retry loop independently.
	pSuccess, err := convolve.IterateSum(cfg, pFail, distSuccessKernel, shift, nil, diag)
	if err != nil {
		return linkstate.State{}, err
	}
	pDistFail, err := convolve.IterateSum(cfg, pFail, distFailureKernel, shift, nil, diag)
	if err != nil {
		return linkstate.State{}, err
	}

	// Step 3: final distribution — distillation failure retries, success
	// terminates.
	pDist, err := convolve.IterateSum(cfg, pDistFail, pSuccess, 0, nil, diag)
	if err != nil {
		return linkstate.State{}, err
	}

	// Step 4: Werner success kernel, carried through both loops.
	wernerKernel, err := joinlinks.Join(s1, s2, true, policy, coh, joinlinks.EvalDistWerner, useEfficient)
	if err != nil {
		return linkstate.State{}, err
	}
	sPrep, err := convolve.IterateSum(cfg, pFail, wernerKernel, shift, nil, diag)
	if err != nil {
		return linkstate.State{}, err
	}
	sOut, err := convolve.IterateSum(cfg, pDistFail, sPrep, 0, nil, diag)
	if err != nil {
		return linkstate.State{}, err
	}

	// Step 5: divide elementwise, scrub, clamp.
	wOut := divideWerner(sOut, pDist)

	if err := checkCoverage(pDist, cfg, diag); err != nil {
		return linkstate.State{}, err
	}

	return linkstate.State{PMF: pDist, W: wOut}, nil
}
