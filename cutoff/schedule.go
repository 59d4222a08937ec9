// SPDX-License-Identifier: MIT
package cutoff

import (
	"fmt"

	"github.com/katalvlaran/repeater-chain/backend"
)

// Schedule assigns one Policy per protocol step. It is built either by
// broadcasting a single Policy to every step or by taking an explicit
// per-step sequence, matching "scalar cut-offs broadcast to
// the protocol length; sequences are used positionally."
type Schedule []Policy

// Broadcast returns a Schedule that repeats p for every one of n steps.
func Broadcast(p Policy, n int) Schedule {
	s := make(Schedule, n)
	for i := range s {
		s[i] = p
	}
	return s
}

// FromSequence wraps an explicit per-step slice of policies as a Schedule.
// It is the caller's responsibility that len(seq) matches the protocol
// length; At returns a ConfigError instead of panicking if it does not.
func FromSequence(seq []Policy) Schedule { return Schedule(seq) }

// At returns the policy for protocol step i.
func (s Schedule) At(i int) (Policy, error) {
	if i < 0 || i >= len(s) {
		return Policy{}, &backend.ConfigError{
			Field:  "Schedule",
			Reason: fmt.Sprintf("index %d out of range for schedule of length %d", i, len(s)),
		}
	}
	return s[i], nil
}
