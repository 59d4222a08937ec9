// SPDX-License-Identifier: MIT
package repeater

import (
	"github.com/katalvlaran/repeater-chain/asymmetric"
	"github.com/katalvlaran/repeater-chain/backend"
	"github.com/katalvlaran/repeater-chain/cutoff"
	"github.com/katalvlaran/repeater-chain/joinlinks"
	"github.com/katalvlaran/repeater-chain/linkstate"
	"github.com/katalvlaran/repeater-chain/symmetric"
	"github.com/katalvlaran/repeater-chain/units"
)

// Simulate runs the nested SWAP/DIST protocol of params and returns the
// final end-to-end link state. Memoization is disabled; use
// SimulateCached to share a Cache across calls.
func Simulate(params symmetric.Parameters) (linkstate.State, backend.Diagnostics, error) {
	return symmetric.NewDriver(nil).Run(params)
}

// SimulateCached is Simulate with an explicit, caller-owned memoization
// cache. cache is not safe for concurrent
// use; give each goroutine its own instance.
func SimulateCached(params symmetric.Parameters, cache *symmetric.Cache) (linkstate.State, backend.Diagnostics, error) {
	return symmetric.NewDriver(cache).Run(params)
}

// SimulateAllLevels runs the nested protocol and returns the state
// after every prefix, index 0 being the bare elementary link.
func SimulateAllLevels(params symmetric.Parameters) ([]linkstate.State, backend.Diagnostics, error) {
	return symmetric.NewDriver(nil).RunAllLevels(params)
}

// SimulateAsymmetric runs the segment-indexed protocol of params and
// returns the single surviving segment's link state.
func SimulateAsymmetric(params asymmetric.Parameters) (linkstate.State, backend.Diagnostics, error) {
	return asymmetric.NewDriver().Run(params)
}

// UnitKind selects which unit operator ComputeUnit invokes.
type UnitKind int

const (
	UnitSwap UnitKind = iota
	UnitDist
)

// ComputeUnit exposes a single Swap or Distill call directly, without
// going through either driver. s2 is only consulted for UnitSwap;
// UnitDist distills s1 against itself.
func ComputeUnit(cfg backend.Config, kind UnitKind, s1, s2 linkstate.State, pSwap float64, policy cutoff.Policy, coh joinlinks.Coherence, useEfficient bool) (linkstate.State, backend.Diagnostics, error) {
	var diag backend.Diagnostics
	switch kind {
	case UnitSwap:
		out, err := units.Swap(cfg, s1, s2, pSwap, policy, coh, useEfficient, &diag)
		return out, diag, err
	case UnitDist:
		out, err := units.Distill(cfg, s1, s1, policy, coh, useEfficient, &diag)
		return out, diag, err
	default:
		return linkstate.State{}, diag, &backend.ConfigError{Field: "kind", Reason: "unknown unit kind"}
	}
}
