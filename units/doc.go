// Package units implements the two unit operators of the repeater
// chain — Swap and Distill — each a fixed five-step pipeline over
// joinlinks.Join and convolve.IterateSum.
//
// Both operators share the same closing shape: join two link states
// under the cut-off policy to get a one-step success/failure pair,
// close the cut-off retry loop and (Swap only) the operation-success
// retry loop with IterateSum, do the same for a Werner-weighted
// numerator, then divide the numerator by the final PMF to recover the
// output Werner series. The NaN-scrub / [0,1]-clamp / coverage-warning
// hygiene at the end is identical for both and lives in divideWerner
// and checkCoverage.
package units
