// Package convolve implements the iterative-convolution engine: the
// discrete-time geometric sum
//
//	r = g·α + g·α·f_shifted + g·α·f_shifted² + …
//
// where f_shifted[t] = f[t-shift] (zero-padded on the left) and α is either
// 1 or a swap-success probability p_swap.
//
// IterateSum's primary path evaluates the closed form in the Fourier
// domain via gonum's real FFT (gonum.org/v1/gonum/dsp/fourier):
//
//	R(ω) = α·G(ω) / (1 - (1-p_swap)·F_shifted(ω))   when p_swap is given
//	R(ω) =   G(ω) / (1 -        F_shifted(ω))        otherwise
//
// A direct-convolution fallback (backend.Config.UseFFT = false) sums the
// series term by term, deriving an early-exit bound from the series'
// convergence rate. Both paths return the same T_trunc-length result to
// within floating-point and zero-padding residual.
package convolve
