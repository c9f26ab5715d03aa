// Command dcfilter applies a causal, optionally dilated FIR filter to a
// WAV file. It exists to exercise the convolution core end to end; the
// library itself has no I/O.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)

		os.Exit(1)
	}
}
