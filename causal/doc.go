// Package causal provides causal and dilated-causal 1-D convolution over
// rank-3 (batch, time, channel) signals.
//
// A causal convolution produces an output of the same time length as its
// input in which sample t depends only on input samples at positions
// <= t. Dilation spaces the kernel taps d samples apart, growing the
// receptive field without adding taps; it is implemented by polyphase
// decomposition (decimate into d streams, convolve each stream with the
// un-dilated kernel, re-interleave) rather than by constructing a
// zero-stuffed kernel.
//
// # Usage
//
//	out, err := causal.Conv(sig, kernel)            // no dilation
//	out, err := causal.DilatedConv(sig, kernel, 4)  // taps 4 steps apart
//
// Both operators guarantee out.Len() == sig.Len().
package causal
