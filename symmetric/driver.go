// SPDX-License-Identifier: MIT
package symmetric

import (
	"github.com/katalvlaran/repeater-chain/backend"
	"github.com/katalvlaran/repeater-chain/joinlinks"
	"github.com/katalvlaran/repeater-chain/linkstate"
	"github.com/katalvlaran/repeater-chain/units"
)

// Driver folds a single elementary link through a nested SWAP/DIST
// protocol. The zero value is a cache-less driver; use
// NewDriver to attach a Cache.
type Driver struct {
	cache *Cache
}

// NewDriver returns a Driver using cache for memoization; cache may be
// nil to disable memoization entirely.
func NewDriver(cache *Cache) *Driver {
	return &Driver{cache: cache}
}

// Run executes the full protocol and returns the final link state.
func (d *Driver) Run(params Parameters) (linkstate.State, backend.Diagnostics, error) {
	history, diag, err := d.run(params, false)
	if err != nil {
		return linkstate.State{}, diag, err
	}
	return history[len(history)-1], diag, nil
}

// RunAllLevels executes the full protocol and returns the state after
// every prefix, including the initial elementary link at index 0. It
// does not resume from a cached prefix, so the history is always
// complete; each computed prefix is still stored in the cache.
func (d *Driver) RunAllLevels(params Parameters) ([]linkstate.State, backend.Diagnostics, error) {
	return d.run(params, true)
}

func (d *Driver) run(params Parameters, allLevels bool) ([]linkstate.State, backend.Diagnostics, error) {
	if err := params.Validate(); err != nil {
		return nil, nil, err
	}

	var diag backend.Diagnostics
	coh := joinlinks.Homogeneous(params.TCoh)

	start := 0
	current := linkstate.Elementary(params.PGen, params.W0, params.TTrunc)
	history := []linkstate.State{current}

	if d.cache != nil && !allLevels {
		if cached, prefixLen, ok := d.cache.lookup(params); ok {
			current = cached
			start = prefixLen
			history = []linkstate.State{current}
		}
	}

	for i := start; i < len(params.Protocol); i++ {
		policy, err := params.Cutoffs.At(i)
		if err != nil {
			return nil, diag, err
		}

		var next linkstate.State
		switch params.Protocol[i] {
		case Swap:
			next, err = units.Swap(params.Config, current, current, params.PSwap, policy, coh, params.Config.Efficient, &diag)
		case Dist:
			next, err = units.Distill(params.Config, current, current, policy, coh, params.Config.Efficient, &diag)
		default:
			err = &backend.ProtocolError{Step: i, Reason: "unknown step kind"}
		}
		if err != nil {
			return nil, diag, err
		}

		current = next
		history = append(history, current)
		if d.cache != nil {
			d.cache.store(params, i+1, current)
		}
	}

	return history, diag, nil
}
