package causal

import (
	"github.com/cwbudde/algo-causalconv/conv"
	"github.com/cwbudde/algo-causalconv/polyphase"
	"github.com/cwbudde/algo-causalconv/signal"
)

// Conv performs a causal (non-dilated) convolution of s with k. The
// signal is left-padded with k.Width()-1 zeros so the valid convolution
// never looks ahead and the output keeps the input's time length.
//
// Conv always uses the time-domain convolution path: its fixed
// accumulation order keeps the output prefix bit-identical under any
// change to later input samples, for every kernel width. Callers who
// prefer the frequency-domain path for very long kernels can compose
// [signal.CausalPad] with [conv.FFT] directly.
func Conv(s *signal.Signal, k *signal.Kernel) (*signal.Signal, error) {
	padded, err := signal.CausalPad(s, k.Width()-1)
	if err != nil {
		return nil, err
	}

	return conv.Direct(padded, k)
}

// DilatedConv performs a causal convolution of s with k whose taps are
// spaced d time steps apart. The output has the same time length as the
// input; with d == 1 it equals Conv exactly.
//
// The dilation is realized by polyphase decomposition: the signal is
// decimated into d phase streams, each stream is causally convolved with
// the un-dilated kernel, and the streams are re-interleaved. When the
// input length is not a multiple of d, the decimation right-pads with
// zeros; the corresponding tail of the merged result is trimmed away so
// the length contract holds for every input length.
//
// Like [Conv], the per-stream convolutions run on the time-domain path,
// so the output prefix stays bit-identical under changes to later input
// samples regardless of kernel width.
func DilatedConv(s *signal.Signal, k *signal.Kernel, d int) (*signal.Signal, error) {
	phaseBatch, pad, err := polyphase.Split(s, d)
	if err != nil {
		return nil, err
	}

	// Left-padding each stream by width-1 exactly cancels the length
	// lost to the valid convolution, keeping stream lengths unchanged.
	padded, err := signal.CausalPad(phaseBatch, k.Width()-1)
	if err != nil {
		return nil, err
	}

	convOut, err := conv.Direct(padded, k)
	if err != nil {
		return nil, err
	}

	merged, err := polyphase.Merge(convOut, d, s.Batch())
	if err != nil {
		return nil, err
	}

	return signal.TrimTail(merged, pad)
}

// ReceptiveField returns the number of input time steps a single output
// sample of a dilated causal convolution can see: (width-1)*d + 1.
// Width and d are assumed to be at least 1.
func ReceptiveField(width, d int) int {
	return (width-1)*d + 1
}

// StackReceptiveField returns the receptive field of a stack of dilated
// causal convolutions with the given per-layer dilation rates, all using
// the same kernel width.
func StackReceptiveField(width int, dilations []int) int {
	field := 1
	for _, d := range dilations {
		field += (width - 1) * d
	}
	return field
}
