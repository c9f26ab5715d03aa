package signal

import (
	"errors"
	"testing"
)

func TestNewKernel(t *testing.T) {
	k, err := NewKernel(3, 2, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if k.Width() != 3 || k.InChannels() != 2 || k.OutChannels() != 4 {
		t.Errorf("shape = (%d, %d, %d), expected (3, 2, 4)", k.Width(), k.InChannels(), k.OutChannels())
	}
	if len(k.Data()) != 24 {
		t.Errorf("backing length = %d, expected 24", len(k.Data()))
	}
}

func TestNewKernelInvalidShape(t *testing.T) {
	cases := [][3]int{{0, 1, 1}, {1, 0, 1}, {1, 1, 0}, {-1, 1, 1}}
	for _, c := range cases {
		if _, err := NewKernel(c[0], c[1], c[2]); !errors.Is(err, ErrInvalidShape) {
			t.Errorf("NewKernel(%d, %d, %d): expected ErrInvalidShape, got %v", c[0], c[1], c[2], err)
		}
	}
}

func TestKernelFromTaps(t *testing.T) {
	k, err := KernelFromTaps(2, 1, 2, []float64{1, 2, 3, 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if k.At(0, 0, 1) != 2 {
		t.Errorf("At(0,0,1) = %v, expected 2", k.At(0, 0, 1))
	}
	if k.At(1, 0, 0) != 3 {
		t.Errorf("At(1,0,0) = %v, expected 3", k.At(1, 0, 0))
	}
}

func TestKernelFromTapsLengthMismatch(t *testing.T) {
	_, err := KernelFromTaps(2, 1, 2, []float64{1, 2, 3})
	if !errors.Is(err, ErrInvalidShape) {
		t.Errorf("expected ErrInvalidShape, got %v", err)
	}
}

func TestFIR(t *testing.T) {
	k, err := FIR([]float64{0.5, 0.25})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if k.Width() != 2 || k.InChannels() != 1 || k.OutChannels() != 1 {
		t.Fatalf("shape = (%d, %d, %d), expected (2, 1, 1)", k.Width(), k.InChannels(), k.OutChannels())
	}
	if k.At(1, 0, 0) != 0.25 {
		t.Errorf("At(1,0,0) = %v, expected 0.25", k.At(1, 0, 0))
	}
}

func TestFIREmpty(t *testing.T) {
	if _, err := FIR(nil); !errors.Is(err, ErrInvalidShape) {
		t.Errorf("expected ErrInvalidShape for empty taps, got %v", err)
	}
}

func TestDiagonalFIR(t *testing.T) {
	k, err := DiagonalFIR([]float64{1, 2}, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for kidx := 0; kidx < 2; kidx++ {
		for c := 0; c < 3; c++ {
			for o := 0; o < 3; o++ {
				want := 0.0
				if c == o {
					want = float64(kidx + 1)
				}
				if got := k.At(kidx, c, o); got != want {
					t.Errorf("At(%d,%d,%d) = %v, expected %v", kidx, c, o, got, want)
				}
			}
		}
	}
}

func TestKernelCloneIsDeep(t *testing.T) {
	k, err := FIR([]float64{1, 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c := k.Clone()
	c.Set(0, 0, 0, 42)
	if k.At(0, 0, 0) != 1 {
		t.Error("Clone shares backing storage with the original")
	}
}
