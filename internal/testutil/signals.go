// Package testutil provides deterministic fixtures and comparison
// helpers for the convolution package tests.
package testutil

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-causalconv/signal"
)

// DeterministicSignal builds a reproducible signal whose samples mix two
// incommensurate sinusoids, so no two positions carry the same value
// pattern.
func DeterministicSignal(tb testing.TB, batch, length, channels int) *signal.Signal {
	tb.Helper()

	s, err := signal.New(batch, length, channels)
	if err != nil {
		tb.Fatalf("building signal: %v", err)
	}
	for i := range s.Data() {
		phase := float64(i)
		s.Data()[i] = math.Sin(0.1*phase) + 0.5*math.Cos(0.37*phase)
	}
	return s
}

// DeterministicKernel builds a reproducible kernel with non-repeating
// tap values.
func DeterministicKernel(tb testing.TB, width, in, out int) *signal.Kernel {
	tb.Helper()

	k, err := signal.NewKernel(width, in, out)
	if err != nil {
		tb.Fatalf("building kernel: %v", err)
	}
	for i := range k.Data() {
		k.Data()[i] = math.Cos(0.21 * float64(i))
	}
	return k
}
