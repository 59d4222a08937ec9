// Package asymmetric implements the segment-indexed repeater-chain
// driver: S independent elementary segments are merged in place by a
// protocol of (SWAP, index)/(DIST, index) steps until exactly one live
// segment remains.
//
// Heterogeneous mode threads a distinct coherence time per node
// (S+1 of them) through each operation and disables the memory-time
// efficient join-links path, since that shortcut assumes one shared
// coherence time.
package asymmetric
