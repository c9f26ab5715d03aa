package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/cwbudde/algo-vecmath"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/cwbudde/algo-causalconv/causal"
	"github.com/cwbudde/algo-causalconv/internal/audio"
	"github.com/cwbudde/algo-causalconv/signal"
)

// Filter presets; the last tap applies to the current sample.
var presets = map[string][]float64{
	"smooth":   {0.25, 0.5, 0.25},
	"diff":     {-1, 1},
	"echo":     {0.5, 1},
	"identity": {1},
}

// options holds the dcfilter command configuration.
type options struct {
	inPath   string
	outPath  string
	preset   string
	tapsArg  string
	dilation int
	fadeMS   float64
	logLevel string
}

// registerFlags binds the command options to a flag set.
func registerFlags(fs *pflag.FlagSet, o *options) {
	fs.StringVarP(&o.inPath, "input", "i", "", "input WAV file (required)")
	fs.StringVarP(&o.outPath, "output", "o", "", "output WAV file (required)")
	fs.StringVar(&o.preset, "preset", "smooth", "filter preset: smooth|diff|echo|identity")
	fs.StringVar(&o.tapsArg, "taps", "", "comma-separated filter taps, overrides --preset")
	fs.IntVarP(&o.dilation, "dilation", "d", 1, "tap spacing in samples")
	fs.Float64Var(&o.fadeMS, "fade", 0, "fade-in/out duration in milliseconds")
	fs.StringVar(&o.logLevel, "log-level", "info", "log level: debug|info|warn|error")
}

func NewRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "dcfilter",
		Short: "Apply a causal dilated FIR filter to a WAV file",
		Long: `dcfilter reads a WAV file, runs every channel through a causal
(optionally dilated) FIR filter and writes the result. With a dilation
rate d the filter taps are spaced d samples apart, so a short filter can
reach far back in time; at 48 kHz, "dcfilter --preset echo --dilation
14400" adds an echo 300 ms back.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			setupLogger(opts.logLevel)

			taps, err := resolveTaps(opts.preset, opts.tapsArg)
			if err != nil {
				return err
			}
			if opts.dilation < 1 {
				return fmt.Errorf("dilation must be at least 1, got %d", opts.dilation)
			}

			return run(opts.inPath, opts.outPath, taps, opts.dilation, opts.fadeMS)
		},
	}

	registerFlags(cmd.Flags(), &opts)

	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

// setupLogger configures the process-wide slog default logger.
func setupLogger(levelStr string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(levelStr)); err != nil {
		lvl = slog.LevelInfo
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(h))
}

func resolveTaps(preset, tapsArg string) ([]float64, error) {
	if tapsArg != "" {
		fields := strings.Split(tapsArg, ",")
		taps := make([]float64, 0, len(fields))
		for _, f := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil {
				return nil, fmt.Errorf("invalid tap %q: %w", f, err)
			}
			taps = append(taps, v)
		}
		if len(taps) == 0 {
			return nil, fmt.Errorf("no taps given")
		}
		return taps, nil
	}

	taps, ok := presets[preset]
	if !ok {
		return nil, fmt.Errorf("unknown preset %q", preset)
	}
	return taps, nil
}

func run(inPath, outPath string, taps []float64, dilation int, fadeMS float64) error {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", inPath, err)
	}

	sig, sampleRate, err := audio.Decode(data)
	if err != nil {
		return err
	}

	slog.Info("decoded input",
		"file", inPath,
		"sample_rate", sampleRate,
		"channels", sig.Channels(),
		"samples", sig.Len())

	kernel, err := signal.DiagonalFIR(taps, sig.Channels())
	if err != nil {
		return err
	}

	slog.Debug("filter configured",
		"taps", len(taps),
		"dilation", dilation,
		"receptive_field", causal.ReceptiveField(kernel.Width(), dilation))

	start := time.Now()
	out, err := causal.DilatedConv(sig, kernel, dilation)
	if err != nil {
		return err
	}
	slog.Info("filtered", "duration", time.Since(start))

	if fadeMS > 0 {
		applyFade(out, sampleRate, fadeMS)
	}

	encoded, err := audio.Encode(out, sampleRate)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outPath, encoded, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}

	slog.Info("wrote output", "file", outPath, "bytes", len(encoded))
	return nil
}

// applyFade multiplies the signal with a linear fade-in/out envelope.
func applyFade(s *signal.Signal, sampleRate int, fadeMS float64) {
	fade := int(float64(sampleRate) * fadeMS / 1000)
	if fade > s.Len()/2 {
		fade = s.Len() / 2
	}
	if fade <= 0 {
		return
	}

	channels := s.Channels()
	envelope := make([]float64, s.Len()*channels)
	for t := 0; t < s.Len(); t++ {
		gain := 1.0
		if t < fade {
			gain = float64(t) / float64(fade)
		} else if t >= s.Len()-fade {
			gain = float64(s.Len()-1-t) / float64(fade)
		}
		for c := 0; c < channels; c++ {
			envelope[t*channels+c] = gain
		}
	}

	frame := s.Len() * channels
	for b := 0; b < s.Batch(); b++ {
		vecmath.MulBlockInPlace(s.Data()[b*frame:(b+1)*frame], envelope)
	}
}
