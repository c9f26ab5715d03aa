// Command dcinfo prints layout properties of dilated causal
// convolutions: receptive field, polyphase stream geometry and the
// padding introduced for a given input length.
//
// Usage:
//
//	dcinfo [flags] [dilation ...]
//
// Without arguments it prints info for power-of-two dilation rates up to
// 256.
//
// Examples:
//
//	dcinfo 4
//	dcinfo -width 3 1 2 4 8
//	dcinfo -width 2 -length 16000 64
//	dcinfo -width 2 -stack 1 2 4 8 16
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/cwbudde/algo-causalconv/causal"
	"github.com/cwbudde/algo-causalconv/polyphase"
)

var defaultDilations = []int{1, 2, 4, 8, 16, 32, 64, 128, 256}

func main() {
	width := flag.Int("width", 2, "kernel width (taps per phase)")
	length := flag.Int("length", 0, "example input length for padding info (0 to omit)")
	stack := flag.Bool("stack", false, "treat the dilations as one layer stack and print its total receptive field")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: dcinfo [flags] [dilation ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints receptive field and polyphase layout of dilated causal convolutions.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *width < 1 {
		fmt.Fprintln(os.Stderr, "dcinfo: width must be at least 1")
		os.Exit(2)
	}

	dilations := defaultDilations
	if flag.NArg() > 0 {
		dilations = make([]int, 0, flag.NArg())
		for _, arg := range flag.Args() {
			d, err := strconv.Atoi(arg)
			if err != nil || d < 1 {
				fmt.Fprintf(os.Stderr, "dcinfo: invalid dilation %q\n", arg)
				os.Exit(2)
			}
			dilations = append(dilations, d)
		}
	}

	printTable(os.Stdout, *width, *length, dilations)

	if *stack {
		fmt.Printf("\nStack receptive field (width %d, %d layers): %d samples\n",
			*width, len(dilations), causal.StackReceptiveField(*width, dilations))
	}
}

func printTable(out *os.File, width, length int, dilations []int) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	if length > 0 {
		fmt.Fprintln(w, "DILATION\tRECEPTIVE FIELD\tSTREAMS\tSTREAM LEN\tPAD")
	} else {
		fmt.Fprintln(w, "DILATION\tRECEPTIVE FIELD\tSTREAMS")
	}

	for _, d := range dilations {
		field := causal.ReceptiveField(width, d)
		if length > 0 {
			pad := polyphase.PadAmount(length, d)
			fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%d\n", d, field, d, (length+pad)/d, pad)
		} else {
			fmt.Fprintf(w, "%d\t%d\t%d\n", d, field, d)
		}
	}

	w.Flush()
}
