// Package conv provides batched 1-D valid convolution over rank-3
// signals.
//
// A valid convolution uses no implicit padding: for a signal of time
// length T and a kernel of width W, the output has time length T - W + 1.
// Stride is fixed at 1. For each batch element b, output step t and
// output channel o:
//
//	out[b,t,o] = sum over k, c of in[b,t+k,c] * kernel[k,c,o]
//
// Two strategies are available:
//
//   - Direct: time-domain dot products, best for short kernels
//   - FFT: frequency-domain convolution per channel pair, efficient for
//     long kernels
//
// [Valid] selects between them automatically based on kernel width. The
// direct path accumulates in a fixed iteration order, so its results are
// bit-reproducible; the FFT path matches it to floating-point rounding.
//
// # Usage
//
//	out, err := conv.Valid(sig, kernel)   // auto-selects best algorithm
//	out, err := conv.Direct(sig, kernel)  // force time-domain path
package conv
