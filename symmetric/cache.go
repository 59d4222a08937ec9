// SPDX-License-Identifier: MIT
package symmetric

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/repeater-chain/linkstate"
)

// Cache is a process-scoped, explicitly-not-goroutine-safe memoization
// table keyed by every parameter except T_trunc and the protocol
// suffix beyond the cached prefix. A shared cache is never required to
// be safe for concurrent use — run one instance per worker.
//
// Unlike the original HashableParameters dict keying, Go has no
// structural hash for arbitrary parameter bags; Cache instead builds
// an explicit comparable key struct from the fields the cached state
// actually depends on.
type Cache struct {
	entries map[cacheKey]linkstate.State
}

// NewCache returns an empty cache ready for use with Driver.
func NewCache() *Cache {
	return &Cache{entries: make(map[cacheKey]linkstate.State)}
}

type cacheKey struct {
	pGen, w0, pSwap, tCoh float64
	useFFT, useGPU        bool
	efficient             bool
	zeroPad               int
	coverageThreshold     float64
	strictCoverage        bool
	prefix                string
}

// prefixKey builds the key for the state reached after executing the
// first prefixLen steps of params.Protocol under their matching
// cut-off policies.
func prefixKey(params Parameters, prefixLen int) cacheKey {
	var b strings.Builder
	for i := 0; i < prefixLen; i++ {
		pol := params.Cutoffs[i]
		fmt.Fprintf(&b, "%s:%d:%d:%g:%d|", params.Protocol[i], pol.Kind, pol.MemoryTimeSteps, pol.FidelityFloor, pol.RunTimeSteps)
	}
	cfg := params.Config
	return cacheKey{
		pGen: params.PGen, w0: params.W0, pSwap: params.PSwap, tCoh: params.TCoh,
		useFFT: cfg.UseFFT, useGPU: cfg.UseGPU, efficient: cfg.Efficient,
		zeroPad: cfg.ZeroPaddingSize, coverageThreshold: cfg.CoverageThreshold,
		strictCoverage: cfg.StrictCoverage,
		prefix:         b.String(),
	}
}

// lookup finds the longest cached prefix whose cached T_trunc is at
// least params.TTrunc, returning the state (truncated down
// to params.TTrunc if the cached entry ran longer) and how many
// protocol steps it already covers.
func (c *Cache) lookup(params Parameters) (linkstate.State, int, bool) {
	for prefixLen := len(params.Protocol); prefixLen >= 1; prefixLen-- {
		key := prefixKey(params, prefixLen)
		state, ok := c.entries[key]
		if !ok || len(state.PMF) < params.TTrunc {
			continue
		}
		if len(state.PMF) > params.TTrunc {
			state = linkstate.State{
				PMF: append([]float64{}, state.PMF[:params.TTrunc]...),
				W:   append([]float64{}, state.W[:params.TTrunc]...),
			}
		}
		return state, prefixLen, true
	}
	return linkstate.State{}, 0, false
}

// store records the state reached after the first prefixLen protocol
// steps.
func (c *Cache) store(params Parameters, prefixLen int, state linkstate.State) {
	c.entries[prefixKey(params, prefixLen)] = state.Clone()
}
