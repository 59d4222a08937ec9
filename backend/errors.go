// SPDX-License-Identifier: MIT
//
// errors.go — the error taxonomy: ConfigurationError, ProtocolError
// and ThresholdExceeded are typed errors (not bare sentinels) because each
// carries caller-useful context (which field, which index). Callers that
// only care about the class use errors.As; callers that want a stable
// identity check errors.Is against the sentinel each typed error wraps.

package backend

import (
	"errors"
	"fmt"
)

// Sentinel classes, for errors.Is. Typed errors below wrap one of these.
var (
	// ErrConfig is the sentinel class for every *ConfigError.
	ErrConfig = errors.New("repeater: configuration error")
	// ErrProtocol is the sentinel class for every *ProtocolError.
	ErrProtocol = errors.New("repeater: protocol error")
	// ErrThresholdExceeded is the sentinel class for every
	// *ThresholdExceededError.
	ErrThresholdExceeded = errors.New("repeater: CDF coverage threshold exceeded")
)

// ConfigError reports an invalid type, range, or length in the parameter
// envelope: unknown cut-off kind, mismatched heterogeneous vector lengths,
// an out-of-range probability, etc. Configuration errors abort the call
// immediately.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("repeater: configuration error: field %q: %s", e.Field, e.Reason)
}

// Unwrap lets errors.Is(err, ErrConfig) succeed for any *ConfigError.
func (e *ConfigError) Unwrap() error { return ErrConfig }

// ProtocolError reports a structurally invalid protocol: an asymmetric
// swap with no live right-neighbor, a swap across non-adjacent segments in
// heterogeneous mode, or a protocol that does not end with exactly one
// live segment.
type ProtocolError struct {
	Step   int
	Reason string
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("repeater: protocol error at step %d: %s", e.Step, e.Reason)
}

// Unwrap lets errors.Is(err, ErrProtocol) succeed for any *ProtocolError.
func (e *ProtocolError) Unwrap() error { return ErrProtocol }

// ThresholdExceededError is raised instead of a warning when
// Config.StrictCoverage is set and the CDF coverage of any Swap or
// Distill output, intermediate or final, falls below
// Config.CoverageThreshold.
type ThresholdExceededError struct {
	Coverage  float64
	Threshold float64
}

func (e *ThresholdExceededError) Error() string {
	return fmt.Sprintf(
		"repeater: CDF coverage %.6f below threshold %.6f; increase T_trunc",
		e.Coverage, e.Threshold)
}

// Unwrap lets errors.Is(err, ErrThresholdExceeded) succeed for any
// *ThresholdExceededError.
func (e *ThresholdExceededError) Unwrap() error { return ErrThresholdExceeded }
