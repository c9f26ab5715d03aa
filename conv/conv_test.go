package conv

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-causalconv/internal/testutil"
	"github.com/cwbudde/algo-causalconv/signal"
)

func mustFIR(t *testing.T, taps []float64) *signal.Kernel {
	t.Helper()
	k, err := signal.FIR(taps)
	if err != nil {
		t.Fatalf("building kernel: %v", err)
	}
	return k
}

func TestValidMonoAccumulator(t *testing.T) {
	// Valid convolution of a ramp with an all-ones filter of width 3:
	// output length 6 = 8 - 3 + 1.
	s := signal.Mono([]float64{0, 1, 2, 3, 4, 5, 6, 7})
	k := mustFIR(t, []float64{1, 1, 1})

	out, err := Valid(s, k)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []float64{3, 6, 9, 12, 15, 18}
	if out.Len() != len(expected) {
		t.Fatalf("length = %d, expected %d", out.Len(), len(expected))
	}
	for i, v := range expected {
		if out.At(0, i, 0) != v {
			t.Errorf("out[%d] = %v, expected %v", i, out.At(0, i, 0), v)
		}
	}
}

func TestValidWidthOneIdentity(t *testing.T) {
	s := signal.Mono([]float64{4, -2, 7})
	k := mustFIR(t, []float64{1})

	out, err := Valid(s, k)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Len() != s.Len() {
		t.Fatalf("length = %d, expected %d", out.Len(), s.Len())
	}
	for i := 0; i < s.Len(); i++ {
		if out.At(0, i, 0) != s.At(0, i, 0) {
			t.Errorf("out[%d] = %v, expected %v", i, out.At(0, i, 0), s.At(0, i, 0))
		}
	}
}

func TestValidMultiChannel(t *testing.T) {
	// Two input channels, one output channel, width 2; every product has
	// a distinct order of magnitude so misrouted taps are visible.
	s, err := signal.FromSamples(1, 3, 2, []float64{1, 2, 3, 4, 5, 6})
	if err != nil {
		t.Fatalf("building signal: %v", err)
	}
	k, err := signal.KernelFromTaps(2, 2, 1, []float64{1, 10, 100, 1000})
	if err != nil {
		t.Fatalf("building kernel: %v", err)
	}

	out, err := Valid(s, k)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []float64{4321, 6543}
	if out.Len() != len(expected) || out.Channels() != 1 {
		t.Fatalf("shape = (%d, %d, %d), expected (1, 2, 1)", out.Batch(), out.Len(), out.Channels())
	}
	for i, v := range expected {
		if out.At(0, i, 0) != v {
			t.Errorf("out[%d] = %v, expected %v", i, out.At(0, i, 0), v)
		}
	}
}

func TestValidMultiOutChannel(t *testing.T) {
	s := signal.Mono([]float64{1, 2, 3})
	k, err := signal.KernelFromTaps(1, 1, 2, []float64{2, 3})
	if err != nil {
		t.Fatalf("building kernel: %v", err)
	}

	out, err := Valid(s, k)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < 3; i++ {
		x := s.At(0, i, 0)
		if out.At(0, i, 0) != 2*x {
			t.Errorf("out[%d,0] = %v, expected %v", i, out.At(0, i, 0), 2*x)
		}
		if out.At(0, i, 1) != 3*x {
			t.Errorf("out[%d,1] = %v, expected %v", i, out.At(0, i, 1), 3*x)
		}
	}
}

func TestValidMultiBatch(t *testing.T) {
	// Batch elements must be convolved independently.
	s, err := signal.FromSamples(2, 4, 1, []float64{
		1, 2, 3, 4,
		10, 20, 30, 40,
	})
	if err != nil {
		t.Fatalf("building signal: %v", err)
	}
	k := mustFIR(t, []float64{1, 1})

	out, err := Valid(s, k)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := [][]float64{
		{3, 5, 7},
		{30, 50, 70},
	}
	for b := range expected {
		for i, v := range expected[b] {
			if out.At(b, i, 0) != v {
				t.Errorf("out[%d][%d] = %v, expected %v", b, i, out.At(b, i, 0), v)
			}
		}
	}
}

func TestValidChannelMismatch(t *testing.T) {
	s, err := signal.New(1, 5, 2)
	if err != nil {
		t.Fatalf("building signal: %v", err)
	}
	k := mustFIR(t, []float64{1})

	if _, err := Valid(s, k); !errors.Is(err, ErrChannelMismatch) {
		t.Errorf("expected ErrChannelMismatch, got %v", err)
	}
}

func TestValidShortSignal(t *testing.T) {
	s := signal.Mono([]float64{1, 2})
	k := mustFIR(t, []float64{1, 1, 1})

	if _, err := Valid(s, k); !errors.Is(err, ErrShortSignal) {
		t.Errorf("expected ErrShortSignal, got %v", err)
	}
}

func TestValidEmptyTimeAxis(t *testing.T) {
	s, err := signal.New(1, 0, 1)
	if err != nil {
		t.Fatalf("building signal: %v", err)
	}
	k := mustFIR(t, []float64{1})

	if _, err := Valid(s, k); !errors.Is(err, ErrShortSignal) {
		t.Errorf("expected ErrShortSignal for empty time axis, got %v", err)
	}
}

func TestValidDoesNotMutateInputs(t *testing.T) {
	s := signal.Mono([]float64{1, 2, 3, 4})
	k := mustFIR(t, []float64{0.5, 0.5})
	sCopy := s.Clone()
	kCopy := k.Clone()

	out, err := Valid(s, k)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out.Set(0, 0, 0, 999)

	for i := range s.Data() {
		if s.Data()[i] != sCopy.Data()[i] {
			t.Fatal("Valid mutated its input signal")
		}
	}
	for i := range k.Data() {
		if k.Data()[i] != kCopy.Data()[i] {
			t.Fatal("Valid mutated its kernel")
		}
	}
}

func TestFFTMatchesDirect(t *testing.T) {
	s := testutil.DeterministicSignal(t, 2, 200, 2)
	k := testutil.DeterministicKernel(t, 80, 2, 3)

	direct, err := Direct(s, k)
	if err != nil {
		t.Fatalf("direct convolution failed: %v", err)
	}
	fft, err := FFT(s, k)
	if err != nil {
		t.Fatalf("FFT convolution failed: %v", err)
	}

	testutil.RequireSignalsNearlyEqual(t, fft, direct, 1e-9)
}

func TestValidSelectsFFTForLongKernels(t *testing.T) {
	// Valid must agree with Direct on both sides of the dispatch
	// threshold.
	s := testutil.DeterministicSignal(t, 1, 300, 1)

	for _, width := range []int{3, fftThreshold, fftThreshold + 1, 128} {
		k := testutil.DeterministicKernel(t, width, 1, 1)

		auto, err := Valid(s, k)
		if err != nil {
			t.Fatalf("Valid failed for width %d: %v", width, err)
		}
		direct, err := Direct(s, k)
		if err != nil {
			t.Fatalf("Direct failed for width %d: %v", width, err)
		}

		testutil.RequireSignalsNearlyEqual(t, auto, direct, 1e-9)
	}
}

func TestDirectIsReproducible(t *testing.T) {
	s := testutil.DeterministicSignal(t, 1, 64, 3)
	k := testutil.DeterministicKernel(t, 5, 3, 2)

	a, err := Direct(s, k)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := Direct(s, k)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.RequireSignalsEqual(t, a, b)
}
