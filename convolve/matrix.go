// SPDX-License-Identifier: MIT
package convolve

import "github.com/katalvlaran/repeater-chain/backend"

// MatrixSeries is the optional dense-state (density-matrix) analogue of a
// 1-D Werner series: a time-indexed stack of small square matrices,
// flattened row-major. This "shape polymorphism" is explicitly partial
// and untested beyond shape-passthrough; it
// exists so the convolution engine's contract is uniform across both
// representations, not because any driver in this module produces one.
type MatrixSeries struct {
	Dim     int
	Entries [][]float64 // len == T_trunc, each len == Dim*Dim
}

// IterateSumMatrix applies IterateSum's scalar geometric series to every
// cell of g independently and reassembles the result: the engine applies
// the same scalar series elementwise to each matrix entry.
func IterateSumMatrix(cfg backend.Config, f []float64, g MatrixSeries, shift int, pSwap *float64, diag *backend.Diagnostics) (MatrixSeries, error) {
	trunc := len(f)
	cell := g.Dim * g.Dim
	out := MatrixSeries{Dim: g.Dim, Entries: make([][]float64, trunc)}
	for t := range out.Entries {
		out.Entries[t] = make([]float64, cell)
	}

	column := make([]float64, trunc)
	for c := 0; c < cell; c++ {
		for t := 0; t < trunc && t < len(g.Entries); t++ {
			if c < len(g.Entries[t]) {
				column[t] = g.Entries[t][c]
			} else {
				column[t] = 0
			}
		}
		r, err := IterateSum(cfg, f, column, shift, pSwap, diag)
		if err != nil {
			return MatrixSeries{}, err
		}
		for t := 0; t < trunc; t++ {
			out.Entries[t][c] = r[t]
		}
	}
	return out, nil
}
