package signal

import (
	"errors"
	"fmt"
)

// Errors returned by signal constructors and transforms.
var (
	ErrInvalidShape = errors.New("signal: invalid shape")
	ErrInvalidPad   = errors.New("signal: invalid pad amount")
	ErrInvalidTrim  = errors.New("signal: invalid trim amount")
)

// Signal is a rank-3 ordered array with axes (batch, time, channel).
//
// Samples are stored channel-interleaved: the element at (b, t, c) lives
// at flat index ((b*Len())+t)*Channels() + c. A batch element's samples
// therefore form one contiguous run, and a single time step's channels
// form one contiguous row within it.
type Signal struct {
	data     []float64
	batch    int
	length   int
	channels int
}

// New creates a zero-valued Signal with the given shape.
// All dimensions must be non-negative.
func New(batch, length, channels int) (*Signal, error) {
	if batch < 0 || length < 0 || channels < 0 {
		return nil, fmt.Errorf("%w: (%d, %d, %d)", ErrInvalidShape, batch, length, channels)
	}

	return &Signal{
		data:     make([]float64, batch*length*channels),
		batch:    batch,
		length:   length,
		channels: channels,
	}, nil
}

// FromSamples creates a Signal with the given shape from a flat,
// channel-interleaved sample slice. The samples are copied.
func FromSamples(batch, length, channels int, samples []float64) (*Signal, error) {
	s, err := New(batch, length, channels)
	if err != nil {
		return nil, err
	}
	if len(samples) != len(s.data) {
		return nil, fmt.Errorf("%w: %d samples for shape (%d, %d, %d)",
			ErrInvalidShape, len(samples), batch, length, channels)
	}

	copy(s.data, samples)
	return s, nil
}

// Mono wraps a single-channel sample slice as a Signal with batch size 1.
// The samples are copied.
func Mono(samples []float64) *Signal {
	s := &Signal{
		data:     make([]float64, len(samples)),
		batch:    1,
		length:   len(samples),
		channels: 1,
	}
	copy(s.data, samples)

	return s
}

// Batch returns the batch size.
func (s *Signal) Batch() int { return s.batch }

// Len returns the time length.
func (s *Signal) Len() int { return s.length }

// Channels returns the channel count.
func (s *Signal) Channels() int { return s.channels }

// Index returns the flat index of element (b, t, c).
// Indices are not bounds-checked beyond the slice access itself.
func (s *Signal) Index(b, t, c int) int {
	return ((b*s.length)+t)*s.channels + c
}

// At returns the sample at (b, t, c).
func (s *Signal) At(b, t, c int) float64 {
	return s.data[s.Index(b, t, c)]
}

// Set stores v at (b, t, c).
func (s *Signal) Set(b, t, c int, v float64) {
	s.data[s.Index(b, t, c)] = v
}

// Data returns the backing sample slice, channel-interleaved in
// (batch, time, channel) order. The slice is shared with the Signal;
// callers that mutate it mutate the Signal.
func (s *Signal) Data() []float64 {
	return s.data
}

// frame returns the contiguous samples of batch element b as a shared view.
func (s *Signal) frame(b int) []float64 {
	n := s.length * s.channels
	return s.data[b*n : (b+1)*n]
}

// Channel extracts the samples of channel c in batch element b as a new
// slice of length Len().
func (s *Signal) Channel(b, c int) []float64 {
	out := make([]float64, s.length)
	for t := 0; t < s.length; t++ {
		out[t] = s.data[s.Index(b, t, c)]
	}

	return out
}

// Clone returns a deep copy of s.
func (s *Signal) Clone() *Signal {
	out := &Signal{
		data:     make([]float64, len(s.data)),
		batch:    s.batch,
		length:   s.length,
		channels: s.channels,
	}
	copy(out.data, s.data)

	return out
}
