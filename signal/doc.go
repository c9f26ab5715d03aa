// Package signal defines the sample containers shared by the convolution
// packages, along with the padding and trimming transforms on them.
//
// A [Signal] is an ordered rank-3 array with axes (batch, time, channel),
// stored channel-interleaved in a flat float64 slice. A [Kernel] is a
// rank-3 finite impulse response with axes (width, in-channel,
// out-channel).
//
// All transforms in this package are pure: they allocate and return a new
// Signal and never alias the input's backing storage into the output.
//
// # Usage
//
//	x := signal.Mono([]float64{0, 1, 2, 3})
//	padded, err := signal.CausalPad(x, 2)   // [0 0 0 1 2 3]
//	trimmed, err := signal.TrimTail(x, 1)   // [0 1 2]
package signal
