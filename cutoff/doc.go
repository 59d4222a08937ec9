// Package cutoff models the three mutually-exclusive cut-off policies a
// repeater protocol step may apply while waiting for two elementary links
// to both become available: memory_time (hold the first arrival for a
// bounded number of extra steps), fidelity (discard the held link once it
// has decohered past a threshold), and run_time (an absolute deadline on
// both links).
//
// Kind is a small sum type in the style of dtw.MemoryMode: a bounded enum
// plus a Policy struct that carries exactly the payload each kind needs.
// Schedule expands a single Policy (applied at every protocol step) or an
// explicit per-step sequence, mirroring the symmetric driver's scalar
// -broadcast-or-positional-sequence convention.
package cutoff
