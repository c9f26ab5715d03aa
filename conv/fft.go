package conv

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-causalconv/signal"
)

// FFT performs a batched valid 1-D convolution in the frequency domain.
// It computes the same quantities as [Direct]; results agree to
// floating-point rounding. Efficient when the kernel width is large.
func FFT(s *signal.Signal, k *signal.Kernel) (*signal.Signal, error) {
	if err := validate(s, k); err != nil {
		return nil, err
	}
	return fftConv(s, k)
}

func fftConv(s *signal.Signal, k *signal.Kernel) (*signal.Signal, error) {
	width := k.Width()
	in := k.InChannels()
	numOut := k.OutChannels()
	length := s.Len()
	outLen := length - width + 1

	fftSize := nextPowerOf2(length + width - 1)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("conv: failed to create FFT plan: %w", err)
	}

	// The valid convolution here is a correlation; reversing the taps
	// turns it into a plain linear convolution whose full result holds
	// the valid region at offset width-1.
	kernelFFT := make([][]complex128, in*numOut)
	scratch := make([]complex128, fftSize)
	for c := 0; c < in; c++ {
		for o := 0; o < numOut; o++ {
			for i := range scratch {
				scratch[i] = 0
			}
			for kidx := 0; kidx < width; kidx++ {
				scratch[kidx] = complex(k.At(width-1-kidx, c, o), 0)
			}

			spec := make([]complex128, fftSize)
			if err := plan.Forward(spec, scratch); err != nil {
				return nil, fmt.Errorf("conv: kernel FFT failed: %w", err)
			}
			kernelFFT[c*numOut+o] = spec
		}
	}

	out, err := signal.New(s.Batch(), outLen, numOut)
	if err != nil {
		return nil, err
	}

	chanFFT := make([][]complex128, in)
	for c := range chanFFT {
		chanFFT[c] = make([]complex128, fftSize)
	}
	acc := make([]complex128, fftSize)

	for b := 0; b < s.Batch(); b++ {
		// One forward transform per input channel, reused for every
		// output channel.
		for c := 0; c < in; c++ {
			for i := range scratch {
				scratch[i] = 0
			}
			for t := 0; t < length; t++ {
				scratch[t] = complex(s.At(b, t, c), 0)
			}
			if err := plan.Forward(chanFFT[c], scratch); err != nil {
				return nil, fmt.Errorf("conv: forward FFT failed: %w", err)
			}
		}

		for o := 0; o < numOut; o++ {
			for i := range acc {
				acc[i] = 0
			}
			for c := 0; c < in; c++ {
				spec := kernelFFT[c*numOut+o]
				x := chanFFT[c]
				for i := range acc {
					acc[i] += x[i] * spec[i]
				}
			}

			if err := plan.Inverse(acc, acc); err != nil {
				return nil, fmt.Errorf("conv: inverse FFT failed: %w", err)
			}

			for t := 0; t < outLen; t++ {
				out.Set(b, t, o, real(acc[width-1+t]))
			}
		}
	}

	return out, nil
}
