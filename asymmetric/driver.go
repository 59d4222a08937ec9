// SPDX-License-Identifier: MIT
package asymmetric

import (
	"github.com/katalvlaran/repeater-chain/backend"
	"github.com/katalvlaran/repeater-chain/cutoff"
	"github.com/katalvlaran/repeater-chain/joinlinks"
	"github.com/katalvlaran/repeater-chain/linkstate"
	"github.com/katalvlaran/repeater-chain/units"
)

// Segment is one live (or consumed) link in the chain, carrying the
// node indices (Left, Right) it spans so heterogeneous mode can check
// adjacency and look up the coherence time of each endpoint.
type Segment struct {
	State      linkstate.State
	Left, Right int
	Alive      bool
}

// Driver runs the segment-indexed protocol over a chain of live
// segments. It is stateless between calls; there is no memoization
// cache for either homogeneous or heterogeneous mode.
type Driver struct{}

// NewDriver returns a ready-to-use asymmetric driver.
func NewDriver() *Driver { return &Driver{} }

// Run executes the full protocol and returns the single surviving
// segment's link state.
func (d *Driver) Run(params Parameters) (linkstate.State, backend.Diagnostics, error) {
	if err := params.Validate(); err != nil {
		return linkstate.State{}, nil, err
	}

	s := len(params.PGen)
	segments := make([]*Segment, s)
	for i := range segments {
		segments[i] = &Segment{
			State: linkstate.Elementary(params.PGen[i], params.W0[i], params.TTrunc),
			Left:  i,
			Right: i + 1,
			Alive: true,
		}
	}

	useEfficient := params.Config.Efficient && !params.Heterogeneous

	var diag backend.Diagnostics
	for step, op := range params.Protocol {
		policy, err := params.Cutoffs.At(step)
		if err != nil {
			return linkstate.State{}, diag, err
		}

		switch op.Kind {
		case OpSwap:
			err = d.swap(params, segments, step, op.Index, policy, useEfficient, &diag)
		case OpDist:
			err = d.dist(params, segments, step, op.Index, policy, useEfficient, &diag)
		default:
			err = &backend.ProtocolError{Step: step, Reason: "unknown op kind"}
		}
		if err != nil {
			return linkstate.State{}, diag, err
		}
	}

	live := liveSegments(segments)
	if len(live) != 1 {
		return linkstate.State{}, diag, &backend.ProtocolError{
			Step: len(params.Protocol), Reason: "protocol must terminate with exactly one live segment",
		}
	}
	return live[0].State, diag, nil
}

// swap implements SWAP(idx): merge segment idx with its smallest live
// right-neighbor.
func (d *Driver) swap(params Parameters, segments []*Segment, step, idx int, policy cutoff.Policy, useEfficient bool, diag *backend.Diagnostics) error {
	cur := segments[idx]
	if !cur.Alive {
		return &backend.ProtocolError{Step: step, Reason: "segment already consumed"}
	}
	j := findRightSegment(segments, idx)
	if j < 0 {
		return &backend.ProtocolError{Step: step, Reason: "no live segment found to the right"}
	}
	next := segments[j]

	var coh joinlinks.Coherence
	if params.Heterogeneous {
		if cur.Right != next.Left {
			return &backend.ProtocolError{Step: step, Reason: "segments are not adjacent"}
		}
		coh = joinlinks.HeterogeneousSwap(params.TCohNodes[cur.Left], params.TCohNodes[cur.Right], params.TCohNodes[next.Right])
	} else {
		coh = joinlinks.Homogeneous(params.TCoh)
	}

	merged, err := units.Swap(params.Config, cur.State, next.State, params.PSwap, policy, coh, useEfficient, diag)
	if err != nil {
		return err
	}

	cur.Alive = false
	segments[j] = &Segment{State: merged, Left: cur.Left, Right: next.Right, Alive: true}
	return nil
}

// dist implements DIST(idx): distill segment idx against itself,
// in place.
func (d *Driver) dist(params Parameters, segments []*Segment, step, idx int, policy cutoff.Policy, useEfficient bool, diag *backend.Diagnostics) error {
	cur := segments[idx]
	if !cur.Alive {
		return &backend.ProtocolError{Step: step, Reason: "segment already consumed"}
	}

	var coh joinlinks.Coherence
	if params.Heterogeneous {
		coh = joinlinks.HeterogeneousDistill(params.TCohNodes[cur.Left], params.TCohNodes[cur.Right])
	} else {
		coh = joinlinks.Homogeneous(params.TCoh)
	}

	out, err := units.Distill(params.Config, cur.State, cur.State, policy, coh, useEfficient, diag)
	if err != nil {
		return err
	}
	segments[idx] = &Segment{State: out, Left: cur.Left, Right: cur.Right, Alive: true}
	return nil
}

func findRightSegment(segments []*Segment, start int) int {
	for j := start + 1; j < len(segments); j++ {
		if segments[j].Alive {
			return j
		}
	}
	return -1
}

func liveSegments(segments []*Segment) []*Segment {
	var out []*Segment
	for _, s := range segments {
		if s.Alive {
			out = append(out, s)
		}
	}
	return out
}
