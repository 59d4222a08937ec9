// Package symmetric implements the nested repeater-chain driver: a
// single initial elementary link is folded through a protocol of
// SWAP/DIST steps, each delegating to units.Swap
// or units.Distill, with an optional process-scoped memoization cache
// keyed on the protocol prefix.
package symmetric
