// Package linkstate defines the shared representation of an entangled
// link's waiting-time distribution and Werner parameter: two parallel
// float64 slices of length T_trunc, PMF and W.
//
// PMF[t] is P[T = t] for the waiting time T; PMF[0] is always 0 (delivery
// at step zero is impossible) and sum(PMF) <= 1+eps. W[t] is the Werner
// parameter of the pair conditional on delivery at step t, in [0, 1].
// Elementary sets W[t] = w0 at every t, including t = 0. In the output of
// Swap and Distill, W[0] = 1 and any W[t] whose division is 0/0 becomes 1
// (see ScrubWerner and DESIGN.md's ScrubWerner entry): the delivery
// probability there is zero, so the Werner value is unobserved and the
// convention picks a harmless default rather than propagating NaN. Entries
// with a tiny but non-zero PMF[t] keep their computed ratio, clamped to
// [0, 1].
package linkstate
