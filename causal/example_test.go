package causal_test

import (
	"fmt"

	"github.com/cwbudde/algo-causalconv/causal"
	"github.com/cwbudde/algo-causalconv/signal"
)

func ExampleConv() {
	// Running sum of the current and two previous samples.
	sig := signal.Mono([]float64{0, 1, 2, 3, 4, 5, 6, 7})
	kernel, _ := signal.FIR([]float64{1, 1, 1})

	out, _ := causal.Conv(sig, kernel)
	fmt.Println(out.Data())

	// Output:
	// [0 1 3 6 9 12 15 18]
}

func ExampleDilatedConv() {
	// The same filter with dilation 2 sums samples t, t-2 and t-4.
	sig := signal.Mono([]float64{0, 1, 2, 3, 4, 5, 6, 7})
	kernel, _ := signal.FIR([]float64{1, 1, 1})

	out, _ := causal.DilatedConv(sig, kernel, 2)
	fmt.Println(out.Data())

	// Output:
	// [0 1 2 4 6 9 12 15]
}

func ExampleReceptiveField() {
	// Dilation grows the receptive field without adding taps.
	fmt.Println(causal.ReceptiveField(3, 1))
	fmt.Println(causal.ReceptiveField(3, 8))

	// Output:
	// 3
	// 17
}
