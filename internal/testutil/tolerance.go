package testutil

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-causalconv/signal"
)

// RequireSameShape fails tb if got and want differ in any dimension.
func RequireSameShape(tb testing.TB, got, want *signal.Signal) {
	tb.Helper()

	if got.Batch() != want.Batch() || got.Len() != want.Len() || got.Channels() != want.Channels() {
		tb.Fatalf("shape mismatch: got (%d, %d, %d), want (%d, %d, %d)",
			got.Batch(), got.Len(), got.Channels(),
			want.Batch(), want.Len(), want.Channels())
	}
}

// RequireSignalsEqual fails tb unless got and want match bit-exactly.
func RequireSignalsEqual(tb testing.TB, got, want *signal.Signal) {
	tb.Helper()

	RequireSameShape(tb, got, want)
	for i, v := range want.Data() {
		if got.Data()[i] != v {
			tb.Fatalf("index %d: got %v, want %v", i, got.Data()[i], v)
		}
	}
}

// RequireSignalsNearlyEqual fails tb if any element pair differs by more
// than eps (absolute tolerance).
func RequireSignalsNearlyEqual(tb testing.TB, got, want *signal.Signal, eps float64) {
	tb.Helper()

	RequireSameShape(tb, got, want)
	for i, v := range want.Data() {
		diff := math.Abs(got.Data()[i] - v)
		if diff > eps {
			tb.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got.Data()[i], v, diff, eps)
		}
	}
}
