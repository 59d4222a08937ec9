// SPDX-License-Identifier: MIT
package backend

import "fmt"

// Code identifies the kind of non-fatal numeric warning. These are
// observability events, not errors: they never
// abort a call, and the core never logs them itself — they are returned to
// the caller to render, log, or ignore as that caller sees fit.
type Code string

const (
	// WarnLowCoverage fires when sum(pmf) < Config.CoverageThreshold after
	// a unit operation or a full simulation.
	WarnLowCoverage Code = "low_coverage"
	// WarnFFTPaddingInsufficient fires when the last retained FFT sample
	// exceeds the 1e-15 residual quality gate.
	WarnFFTPaddingInsufficient Code = "fft_padding_insufficient"
	// WarnGPUUnavailable fires once per call when UseGPU was requested but
	// no GPU backend is available and the engine fell back to CPU.
	WarnGPUUnavailable Code = "gpu_unavailable"
)

// Diagnostic is one structured warning: a stable Code plus a free-form
// context map for the fields relevant to that code (e.g. "coverage",
// "threshold", "residual", "shape").
type Diagnostic struct {
	Code    Code
	Context map[string]any
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s %v", d.Code, d.Context)
}

// Diagnostics accumulates warnings across the nested calls that make up one
// public operation (join, convolve, swap/distill, driver). It is a plain
// slice: call sites append to it; there is no shared or global state.
type Diagnostics []Diagnostic

// Append records a warning with the given code and context pairs. kv must
// be an even number of arguments, alternating key (string) and value.
func (d *Diagnostics) Append(code Code, kv ...any) {
	ctx := make(map[string]any, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		key, _ := kv[i].(string)
		ctx[key] = kv[i+1]
	}
	*d = append(*d, Diagnostic{Code: code, Context: ctx})
}

// HasCode reports whether any recorded diagnostic carries the given code.
func (d Diagnostics) HasCode(code Code) bool {
	for _, diag := range d {
		if diag.Code == code {
			return true
		}
	}
	return false
}
