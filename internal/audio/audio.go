// Package audio bridges WAV data and rank-3 signals for the command-line
// tools.
package audio

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/cwbudde/wav"
	goaudio "github.com/go-audio/audio"

	"github.com/cwbudde/algo-causalconv/signal"
)

// BitDepth used when encoding output files.
const BitDepth = 16

// ErrInvalidWAV is returned for data that does not parse as a WAV file.
var ErrInvalidWAV = errors.New("audio: invalid WAV data")

// Decode parses WAV bytes into a batch-1 Signal with one channel per WAV
// channel, along with the sample rate.
func Decode(data []byte) (*signal.Signal, int, error) {
	if len(data) == 0 {
		return nil, 0, fmt.Errorf("%w: empty input", ErrInvalidWAV)
	}

	dec := wav.NewDecoder(bytes.NewReader(data))
	if !dec.IsValidFile() {
		return nil, 0, ErrInvalidWAV
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("audio: reading PCM data: %w", err)
	}

	channels := int(dec.NumChans)
	if channels <= 0 || len(buf.Data)%channels != 0 {
		return nil, 0, fmt.Errorf("%w: %d samples across %d channels",
			ErrInvalidWAV, len(buf.Data), channels)
	}

	samples := make([]float64, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = float64(v)
	}

	s, err := signal.FromSamples(1, len(samples)/channels, channels, samples)
	if err != nil {
		return nil, 0, err
	}

	return s, int(dec.SampleRate), nil
}

// Encode serializes batch element 0 of s as 16-bit PCM WAV bytes at the
// given sample rate.
func Encode(s *signal.Signal, sampleRate int) ([]byte, error) {
	if s.Batch() < 1 {
		return nil, fmt.Errorf("audio: nothing to encode in an empty batch")
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("audio: invalid sample rate %d", sampleRate)
	}

	data := make([]float32, s.Len()*s.Channels())
	for t := 0; t < s.Len(); t++ {
		for c := 0; c < s.Channels(); c++ {
			data[t*s.Channels()+c] = float32(s.At(0, t, c))
		}
	}

	var buf bytes.Buffer
	sw := &seekBuffer{buf: &buf}

	enc := wav.NewEncoder(sw, sampleRate, BitDepth, s.Channels(), 1) // 1 = PCM

	pcmBuf := &goaudio.Float32Buffer{
		Data:           data,
		Format:         &goaudio.Format{SampleRate: sampleRate, NumChannels: s.Channels()},
		SourceBitDepth: BitDepth,
	}

	if err := enc.Write(pcmBuf); err != nil {
		return nil, fmt.Errorf("audio: writing PCM: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("audio: closing encoder: %w", err)
	}

	return buf.Bytes(), nil
}

// seekBuffer wraps a bytes.Buffer to satisfy io.WriteSeeker; the WAV
// encoder seeks back to patch chunk sizes on Close.
type seekBuffer struct {
	buf *bytes.Buffer
	pos int
}

func (s *seekBuffer) Write(p []byte) (int, error) {
	if s.pos == s.buf.Len() {
		n, err := s.buf.Write(p)
		s.pos += n
		return n, err
	}

	data := s.buf.Bytes()
	n := copy(data[s.pos:], p)
	if n < len(p) {
		data = append(data, p[n:]...)
		s.buf.Reset()
		s.buf.Write(data)
		n = len(p)
	}
	s.pos += n
	return n, nil
}

func (s *seekBuffer) Seek(offset int64, whence int) (int64, error) {
	var newPos int
	switch whence {
	case 0: // io.SeekStart
		newPos = int(offset)
	case 1: // io.SeekCurrent
		newPos = s.pos + int(offset)
	case 2: // io.SeekEnd
		newPos = s.buf.Len() + int(offset)
	default:
		return 0, fmt.Errorf("audio: unsupported seek whence %d", whence)
	}
	if newPos < 0 {
		return 0, fmt.Errorf("audio: negative seek position %d", newPos)
	}

	s.pos = newPos
	return int64(newPos), nil
}
