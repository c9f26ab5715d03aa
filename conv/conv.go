package conv

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-causalconv/internal/vecmath"
	"github.com/cwbudde/algo-causalconv/signal"
)

// Errors returned by convolution functions.
var (
	ErrChannelMismatch = errors.New("conv: signal and kernel channel counts differ")
	ErrShortSignal     = errors.New("conv: signal shorter than kernel width")
)

// fftThreshold is the kernel width above which Valid switches from the
// direct path to the FFT path, following the usual break-even point for
// time-domain FIR filtering.
const fftThreshold = 64

// validate checks the shape contract shared by all convolution paths.
func validate(s *signal.Signal, k *signal.Kernel) error {
	if s.Channels() != k.InChannels() {
		return fmt.Errorf("%w: signal has %d, kernel expects %d",
			ErrChannelMismatch, s.Channels(), k.InChannels())
	}
	if s.Len() < k.Width() {
		return fmt.Errorf("%w: %d time steps, width %d", ErrShortSignal, s.Len(), k.Width())
	}
	return nil
}

// Valid performs a batched valid 1-D convolution of s with k, selecting
// the best algorithm for the kernel width. The output has shape
// (s.Batch(), s.Len()-k.Width()+1, k.OutChannels()).
func Valid(s *signal.Signal, k *signal.Kernel) (*signal.Signal, error) {
	if err := validate(s, k); err != nil {
		return nil, err
	}

	if k.Width() > fftThreshold {
		return fftConv(s, k)
	}
	return directConv(s, k)
}

// Direct performs a batched valid 1-D convolution in the time domain.
// Accumulation order is fixed, so results are bit-reproducible.
func Direct(s *signal.Signal, k *signal.Kernel) (*signal.Signal, error) {
	if err := validate(s, k); err != nil {
		return nil, err
	}
	return directConv(s, k)
}

func directConv(s *signal.Signal, k *signal.Kernel) (*signal.Signal, error) {
	width := k.Width()
	in := k.InChannels()
	numOut := k.OutChannels()
	outLen := s.Len() - width + 1

	out, err := signal.New(s.Batch(), outLen, numOut)
	if err != nil {
		return nil, err
	}

	// Gather each output channel's taps into (time, channel) order so one
	// contiguous window of the signal pairs with one contiguous tap run.
	taps := make([][]float64, numOut)
	for o := 0; o < numOut; o++ {
		taps[o] = make([]float64, width*in)
		for kidx := 0; kidx < width; kidx++ {
			for c := 0; c < in; c++ {
				taps[o][kidx*in+c] = k.At(kidx, c, o)
			}
		}
	}

	data := s.Data()
	outData := out.Data()
	window := width * in

	for b := 0; b < s.Batch(); b++ {
		frame := data[b*s.Len()*in : (b+1)*s.Len()*in]
		for t := 0; t < outLen; t++ {
			x := frame[t*in : t*in+window]
			for o := 0; o < numOut; o++ {
				outData[out.Index(b, t, o)] = vecmath.DotProduct(x, taps[o])
			}
		}
	}

	return out, nil
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
