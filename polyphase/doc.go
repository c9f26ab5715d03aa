// Package polyphase decimates rank-3 signals into interleaved phase
// streams and re-interleaves them.
//
// [Split] right-pads a signal to a multiple of the dilation rate d, then
// gathers every d-th time step into one of d phase streams: stream s
// holds the padded samples at original indices s, s+d, s+2d, ... Each
// stream becomes an independent batch element, so a (B, T, C) signal
// becomes (B*d, ceil(T/d), C). [Merge] is the exact structural inverse.
//
// Splitting this way lets an ordinary un-dilated convolution emulate a
// kernel with d-spaced taps: stream s's output at local position p
// corresponds to a dilated convolution centered at global position
// p*d + s.
//
// Both transforms are pure index-arithmetic gathers over the flat
// backing storage; no reshape or transpose is materialized.
package polyphase
