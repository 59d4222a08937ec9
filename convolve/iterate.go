// SPDX-License-Identifier: MIT
package convolve

import (
	"math"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/katalvlaran/repeater-chain/backend"
)

// fftResidualGate is the quality-gate threshold: the last retained
// zero-padded FFT sample must not exceed this magnitude.
const fftResidualGate = 1e-15

// IterateSum computes the geometric sum described in doc.go. first is the
// "g" term; if nil, f itself is used as g. shift >= 0 right-shifts f
// before use (memory-time cut-off retries).
// pSwap, if non-nil, selects the swap-success weighting α=p_swap and the
// (1-p_swap) decay of the retry loop; nil selects the plain α=1 geometric
// sum (closed form, both branches).
//
// diag accumulates non-fatal warnings (insufficient zero-padding); it may
// be nil to discard them.
func IterateSum(cfg backend.Config, f, first []float64, shift int, pSwap *float64, diag *backend.Diagnostics) ([]float64, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	trunc := len(f)
	if first == nil {
		first = f
	}
	if len(first) != trunc {
		return nil, &backend.ConfigError{Field: "first", Reason: "length must equal len(f)"}
	}
	if shift < 0 {
		return nil, &backend.ConfigError{Field: "shift", Reason: "must be >= 0"}
	}

	fShifted := shiftRight(f, shift, trunc)

	alpha := 1.0
	hasPSwap := pSwap != nil
	if hasPSwap {
		alpha = *pSwap
	}

	if cfg.UseGPU {
		if diag != nil && !diag.HasCode(backend.WarnGPUUnavailable) {
			diag.Append(backend.WarnGPUUnavailable, "requested", true)
		}
		// No GPU backend ships with this module; always falls through to
		// CPU.
	}

	if cfg.UseFFT {
		return iterateFFT(fShifted, first, trunc, pSwap, cfg.ZeroPaddingSize, diag), nil
	}
	return iterateDirect(fShifted, first, trunc, shift, alpha, pSwap), nil
}

// shiftRight returns f shifted right by `shift` positions, zero-padded on
// the left, truncated (or zero-extended) to length trunc.
func shiftRight(f []float64, shift, trunc int) []float64 {
	out := make([]float64, trunc)
	for t := shift; t < trunc; t++ {
		src := t - shift
		if src < len(f) {
			out[t] = f[src]
		}
	}
	return out
}

// iterateFFT is the primary path: evaluate the closed-form geometric sum
// in the Fourier domain.
func iterateFFT(fShifted, first []float64, trunc int, pSwap *float64, padHint int, diag *backend.Diagnostics) []float64 {
	pad := padHint
	if pad == 0 {
		pad = nextPow2(2*trunc - 1)
	}

	gPadded := make([]float64, pad)
	copy(gPadded, first)
	fPadded := make([]float64, pad)
	copy(fPadded, fShifted)

	fft := fourier.NewFFT(pad)
	gCoef := fft.Coefficients(nil, gPadded)
	fCoef := fft.Coefficients(nil, fPadded)

	rCoef := make([]complex128, len(gCoef))
	for i := range rCoef {
		if pSwap != nil {
			num := complex(*pSwap, 0) * gCoef[i]
			den := complex(1, 0) - complex(1-*pSwap, 0)*fCoef[i]
			rCoef[i] = num / den
		} else {
			den := complex(1, 0) - fCoef[i]
			rCoef[i] = gCoef[i] / den
		}
	}

	full := fft.Sequence(nil, rCoef)
	// Coefficients followed by Sequence scales the input by the transform
	// length; undo that scaling.
	for i := range full {
		full[i] /= float64(pad)
	}

	if residual := math.Abs(full[len(full)-1]); residual > fftResidualGate {
		if diag != nil {
			diag.Append(backend.WarnFFTPaddingInsufficient,
				"shape", pad, "residual", residual)
		}
	}

	result := make([]float64, trunc)
	copy(result, full[:trunc])
	return result
}

// nextPow2 returns the smallest power of two >= n (n > 0).
func nextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// iterateDirect is the fallback path: sum the series term by term,
// bounding the number of terms per K_max derivation.
func iterateDirect(fShifted, first []float64, trunc, shift int, alpha float64, pSwap *float64) []float64 {
	sumF := 0.0
	for _, v := range fShifted {
		sumF += v
	}
	maxK := deriveMaxK(trunc, shift, sumF, pSwap)

	sum := make([]float64, trunc)
	copy(sum, first)
	for i := range sum {
		sum[i] *= alpha
	}

	convolved := make([]float64, trunc)
	copy(convolved, first)

	decay := 1.0
	for k := 1; k < maxK; k++ {
		convolved = truncatedConv(convolved, fShifted, trunc)
		if pSwap != nil {
			decay *= 1 - *pSwap
		}
		coeff := alpha * decay
		for i := range sum {
			sum[i] += coeff * convolved[i]
		}
		if coeff < 1e-300 {
			break
		}
	}
	return sum
}

// deriveMaxK bounds the number of direct-convolution terms: a
// shift-derived bound (each term advances the shifted tail by at least
// `shift` steps, so ceil(trunc/shift) terms exhaust T_trunc) combined with
// a decay-rate estimate from sum(f_shifted)*(1-p_swap), both clipped to
// T_trunc.
func deriveMaxK(trunc, shift int, sumF float64, pSwap *float64) int {
	shiftBound := trunc
	if shift > 0 {
		shiftBound = int(math.Ceil(float64(trunc) / float64(shift)))
	}

	pf := sumF
	if pSwap != nil {
		pf *= 1 - *pSwap
	}

	maxK := shiftBound
	if pf > 0 && pf < 1 {
		derived := int(math.Ceil((-52 - math.Log(float64(trunc))) / math.Log(pf)))
		if derived < maxK {
			maxK = derived
		}
	}
	if maxK > trunc {
		maxK = trunc
	}
	if maxK < 1 {
		maxK = 1
	}
	return maxK
}

// truncatedConv returns the length-trunc prefix of the convolution of a
// and b (both already length trunc, zero elsewhere).
func truncatedConv(a, b []float64, trunc int) []float64 {
	out := make([]float64, trunc)
	for i := 0; i < trunc; i++ {
		ai := a[i]
		if ai == 0 {
			continue
		}
		maxJ := trunc - i
		if maxJ > len(b) {
			maxJ = len(b)
		}
		for j := 0; j < maxJ; j++ {
			out[i+j] += ai * b[j]
		}
	}
	return out
}
