package signal

import "fmt"

// Kernel is a rank-3 finite impulse response with axes
// (width, in-channel, out-channel), width >= 1.
//
// Taps are stored out-channel-interleaved: the tap at (k, c, o) lives at
// flat index ((k*InChannels())+c)*OutChannels() + o. A Kernel is owned by
// its creator; the convolution routines only read it.
type Kernel struct {
	data  []float64
	width int
	in    int
	out   int
}

// NewKernel creates a zero-valued Kernel with the given shape.
// Width and both channel counts must be at least 1.
func NewKernel(width, in, out int) (*Kernel, error) {
	if width < 1 || in < 1 || out < 1 {
		return nil, fmt.Errorf("%w: kernel (%d, %d, %d)", ErrInvalidShape, width, in, out)
	}

	return &Kernel{
		data:  make([]float64, width*in*out),
		width: width,
		in:    in,
		out:   out,
	}, nil
}

// KernelFromTaps creates a Kernel with the given shape from a flat tap
// slice in (width, in-channel, out-channel) order. The taps are copied.
func KernelFromTaps(width, in, out int, taps []float64) (*Kernel, error) {
	k, err := NewKernel(width, in, out)
	if err != nil {
		return nil, err
	}
	if len(taps) != len(k.data) {
		return nil, fmt.Errorf("%w: %d taps for kernel (%d, %d, %d)",
			ErrInvalidShape, len(taps), width, in, out)
	}

	copy(k.data, taps)
	return k, nil
}

// FIR wraps a single-channel tap slice as a (len(taps), 1, 1) Kernel.
// The taps are copied. Returns an error for an empty slice.
func FIR(taps []float64) (*Kernel, error) {
	return KernelFromTaps(len(taps), 1, 1, taps)
}

// DiagonalFIR builds a Kernel that applies the same single-channel taps
// independently to each of the given channels: tap (k, c, o) is taps[k]
// when c == o and 0 otherwise.
func DiagonalFIR(taps []float64, channels int) (*Kernel, error) {
	k, err := NewKernel(len(taps), channels, channels)
	if err != nil {
		return nil, err
	}

	for i, tap := range taps {
		for c := 0; c < channels; c++ {
			k.Set(i, c, c, tap)
		}
	}

	return k, nil
}

// Width returns the filter width.
func (k *Kernel) Width() int { return k.width }

// InChannels returns the input channel count.
func (k *Kernel) InChannels() int { return k.in }

// OutChannels returns the output channel count.
func (k *Kernel) OutChannels() int { return k.out }

// At returns the tap at (kidx, c, o).
func (k *Kernel) At(kidx, c, o int) float64 {
	return k.data[((kidx*k.in)+c)*k.out+o]
}

// Set stores v at (kidx, c, o).
func (k *Kernel) Set(kidx, c, o int, v float64) {
	k.data[((kidx*k.in)+c)*k.out+o] = v
}

// Data returns the backing tap slice in (width, in, out) order.
// The slice is shared with the Kernel.
func (k *Kernel) Data() []float64 {
	return k.data
}

// Clone returns a deep copy of k.
func (k *Kernel) Clone() *Kernel {
	out := &Kernel{
		data:  make([]float64, len(k.data)),
		width: k.width,
		in:    k.in,
		out:   k.out,
	}
	copy(out.data, k.data)

	return out
}
