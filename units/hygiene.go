// SPDX-License-Identifier: MIT
package units

import (
	"github.com/katalvlaran/repeater-chain/backend"
	"github.com/katalvlaran/repeater-chain/linkstate"
)

// divideWerner computes w_out[t] = numerator[t]/denom[t] for t >= 1,
// pins w_out[0] = 1 (step 5, both operators), then applies the
// shared NaN-scrub / [0,1]-clamp hygiene.
func divideWerner(numerator, denom []float64) []float64 {
	out := make([]float64, len(numerator))
	if len(out) > 0 {
		out[0] = 1
	}
	for t := 1; t < len(numerator); t++ {
		out[t] = numerator[t] / denom[t]
	}
	linkstate.ScrubWerner(out)
	return out
}

// checkCoverage implements "coverage = sum(pmf) must be >=
// 0.99 or a low_coverage warning is raised (non-fatal)", promoted to a
// hard error when cfg.StrictCoverage is set.
func checkCoverage(pmf []float64, cfg backend.Config, diag *backend.Diagnostics) error {
	coverage := linkstate.Coverage(pmf)
	if coverage >= cfg.CoverageThreshold {
		return nil
	}
	if cfg.StrictCoverage {
		return &backend.ThresholdExceededError{Coverage: coverage, Threshold: cfg.CoverageThreshold}
	}
	if diag != nil {
		diag.Append(backend.WarnLowCoverage, "coverage", coverage, "threshold", cfg.CoverageThreshold)
	}
	return nil
}
