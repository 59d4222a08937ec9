// Package backend holds the engine-wide, immutable knobs shared by every
// repeater-chain computation: whether to use the FFT convolution path, the
// optional (and optional-ly absent) GPU backend, the "efficient" memory-time
// join-links shortcut, and the coverage threshold used for the low-coverage
// diagnostic.
//
// The original simulator threaded these as mutable fields on a long-lived
// simulator object (use_fft, use_gpu, efficient). Here they are a plain value
// type, built once and passed down explicitly — no package-level or
// receiver-level mutable state (see SPEC_FULL.md, package layout, backend/).
//
// backend also defines the typed error taxonomy (ConfigError, ProtocolError,
// ThresholdExceededError) and the Diagnostics channel used to surface
// non-fatal numeric warnings (low coverage, insufficient FFT zero-padding,
// GPU unavailable) without forcing a logging dependency on callers.
package backend
