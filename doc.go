// Package repeater simulates a quantum-repeater chain: elementary
// links are generated with a fixed success probability, decohere in
// memory, and are combined by entanglement swapping and distillation
// into a single end-to-end link, tracked as a waiting-time
// distribution paired with a Werner parameter per elapsed time step.
//
// Everything is organized under topic subpackages:
//
//	linkstate/   — the (PMF, Werner) link-state representation
//	cutoff/      — memory_time / fidelity / run_time cut-off policies
//	joinlinks/   — the two-link join kernel under a cut-off policy
//	convolve/    — the iterative (geometric-series) convolution engine
//	units/       — the Swap and Distill unit operators
//	symmetric/   — the nested (chain-doubling) driver
//	asymmetric/  — the segment-indexed driver, homogeneous or not
//	backend/     — Config, Diagnostics and the typed error taxonomy
//
// This package is the facade: Simulate and SimulateAllLevels drive the
// nested protocol, SimulateAsymmetric drives the segment-indexed one,
// and ComputeUnit exposes a single Swap or Distill call directly.
package repeater
