package polyphase

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-causalconv/signal"
)

// Errors returned by polyphase transforms.
var (
	ErrInvalidRate = errors.New("polyphase: dilation rate must be positive")
	ErrPhaseBatch  = errors.New("polyphase: phase batch does not factor into rate and batch size")
)

// PadAmount returns the number of zero time steps Split appends so a
// signal of the given length becomes a multiple of rate d. Rates below
// 1 carry no padding; PadAmount returns 0 for them.
func PadAmount(length, d int) int {
	if d < 1 {
		return 0
	}
	return (d - length%d) % d
}

// Split decimates s into d interleaved phase streams and returns them as
// a phase batch of shape (s.Batch()*d, ceil(s.Len()/d), s.Channels())
// together with the amount of right-padding applied.
//
// Streams are laid out phase-major: stream s of batch element b is phase
// batch element s*s.Batch() + b. Padding samples are zero and carry over
// into the tail of the last streams; Merge does not remove them.
func Split(s *signal.Signal, d int) (*signal.Signal, int, error) {
	if d <= 0 {
		return nil, 0, fmt.Errorf("%w: %d", ErrInvalidRate, d)
	}

	pad := PadAmount(s.Len(), d)
	if d == 1 {
		return s.Clone(), pad, nil
	}

	streamLen := (s.Len() + pad) / d

	out, err := signal.New(s.Batch()*d, streamLen, s.Channels())
	if err != nil {
		return nil, 0, err
	}

	channels := s.Channels()
	data := s.Data()
	outData := out.Data()

	for phase := 0; phase < d; phase++ {
		for b := 0; b < s.Batch(); b++ {
			sb := phase*s.Batch() + b
			for p := 0; p < streamLen; p++ {
				t := p*d + phase
				if t >= s.Len() {
					// Right-padding region; stays zero.
					continue
				}
				src := s.Index(b, t, 0)
				dst := out.Index(sb, p, 0)
				copy(outData[dst:dst+channels], data[src:src+channels])
			}
		}
	}

	return out, pad, nil
}

// Merge re-interleaves a phase batch produced by Split back into batch
// time-ordered signals: local position p of stream s becomes time step
// p*d + s of the merged signal. The output has shape
// (batch, phaseBatch.Len()*d, phaseBatch.Channels()).
//
// Merge does not know how much padding Split applied; trimming the tail
// is the caller's responsibility.
func Merge(phaseBatch *signal.Signal, d, batch int) (*signal.Signal, error) {
	if d <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRate, d)
	}
	if batch < 0 || phaseBatch.Batch() != d*batch {
		return nil, fmt.Errorf("%w: %d streams for rate %d, batch %d",
			ErrPhaseBatch, phaseBatch.Batch(), d, batch)
	}

	if d == 1 {
		return phaseBatch.Clone(), nil
	}

	streamLen := phaseBatch.Len()

	out, err := signal.New(batch, streamLen*d, phaseBatch.Channels())
	if err != nil {
		return nil, err
	}

	channels := phaseBatch.Channels()
	data := phaseBatch.Data()
	outData := out.Data()

	for phase := 0; phase < d; phase++ {
		for b := 0; b < batch; b++ {
			sb := phase*batch + b
			for p := 0; p < streamLen; p++ {
				src := phaseBatch.Index(sb, p, 0)
				dst := out.Index(b, p*d+phase, 0)
				copy(outData[dst:dst+channels], data[src:src+channels])
			}
		}
	}

	return out, nil
}
