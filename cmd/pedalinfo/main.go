// Command pedalinfo prints the echo tap layout and measured frequency
// response of a pedal configuration.
//
// Usage:
//
//	pedalinfo [flags]
//
// Examples:
//
//	pedalinfo -delay 250ms -repeats 2
//	pedalinfo -delay 120ms -mix 0.5 -fft 8192
//	pedalinfo -delay 40ms -shimmer 0.3 -reverse
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"text/tabwriter"
	"time"

	"github.com/cwbudde/algo-pedal/dsp/core"
	"github.com/cwbudde/algo-pedal/dsp/engine"
	"github.com/cwbudde/algo-pedal/measure/response"
)

func main() {
	rate := flag.Int("rate", 48000, "sample rate in Hz; delay line capacity is one second")
	delay := flag.Duration("delay", 250*time.Millisecond, "delay time, up to one second")
	repeats := flag.Int("repeats", 0, "number of echo taps [0, 5]")
	mix := flag.Float64("mix", 1, "wet mix [0, 1]")
	shimmer := flag.Float64("shimmer", 0, "shimmer level [0, 1]")
	reverse := flag.Bool("reverse", false, "reverse playback direction")
	fftSize := flag.Int("fft", 0, "FFT size for the magnitude response; 0 picks the next power of two")
	irLen := flag.Int("ir", 0, "impulse response length in samples; 0 picks a length covering all taps")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: pedalinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints the echo tap layout and frequency response of a pedal configuration.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  pedalinfo -delay 250ms -repeats 2\n")
		fmt.Fprintf(os.Stderr, "  pedalinfo -delay 120ms -mix 0.5 -fft 8192\n")
	}
	flag.Parse()

	if err := run(*rate, delay.Seconds(), *repeats, *mix, *shimmer, *reverse, *fftSize, *irLen); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(rate int, delaySec float64, repeats int, mix, shimmer float64, reverse bool, fftSize, irLen int) error {
	params, err := engine.NewParams(rate)
	if err != nil {
		return err
	}

	delaySamples := int(delaySec*float64(rate) + 0.5)
	params.SetDelaySamples(delaySamples)
	params.SetRepeats(repeats)
	params.SetWetMix(mix)
	params.SetShimmerLevel(shimmer)
	params.SetReverse(reverse)

	s := params.Snapshot()

	direction := "forward"
	if s.Reverse {
		direction = "reverse"
	}

	fmt.Printf("sample rate   %d Hz\n", rate)
	fmt.Printf("delay         %d samples (%.2f ms)\n", s.DelaySamples, samplesToMs(s.DelaySamples, rate))
	fmt.Printf("repeats       %d\n", s.Repeats)
	fmt.Printf("wet mix       %.2f\n", s.WetMix)
	fmt.Printf("shimmer       %.2f\n", s.ShimmerLevel)
	fmt.Printf("direction     %s\n\n", direction)

	if err := printTaps(rate, s); err != nil {
		return err
	}

	return printResponse(params, s, rate, fftSize, irLen)
}

func printTaps(rate int, s engine.Settings) error {
	lags, err := response.TapLags(rate, s.DelaySamples, s.Repeats)
	if err != nil {
		return err
	}

	gains, err := response.TapGains(s.Repeats)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Tap\tLag [smp]\tLag [ms]\tGain\tGain [dB]\n")
	fmt.Fprintf(tw, "---\t---------\t--------\t----\t---------\n")

	for i := range lags {
		fmt.Fprintf(tw, "%d\t%d\t%.2f\t%.1f\t%.2f\n",
			i, lags[i], samplesToMs(lags[i], rate), gains[i], core.LinearToDB(gains[i]))
	}

	return tw.Flush()
}

func printResponse(params *engine.Params, s engine.Settings, rate, fftSize, irLen int) error {
	e, err := engine.New(params)
	if err != nil {
		return err
	}

	if irLen <= 0 {
		// Long enough to capture the base tap plus a margin, bounded so
		// second-long delays stay affordable.
		irLen = 2 * s.DelaySamples
		if irLen < 4096 {
			irLen = 4096
		}
	}

	ir, err := response.Impulse(e, irLen)
	if err != nil {
		return err
	}

	mags, err := response.Magnitude(ir, fftSize)
	if err != nil {
		return err
	}

	binHz := float64(rate) / float64(2*(len(mags)-1))

	minBin, maxBin := 1, 1
	for i := 2; i < len(mags)-1; i++ {
		if mags[i] < mags[minBin] {
			minBin = i
		}

		if mags[i] > mags[maxBin] {
			maxBin = i
		}
	}

	fmt.Printf("\nimpulse response  %d samples, fft %d\n", irLen, 2*(len(mags)-1))
	fmt.Printf("magnitude peak    %.2f dB at %.1f Hz\n",
		core.LinearToDB(mags[maxBin]/mags[0]), float64(maxBin)*binHz)

	notch := core.LinearToDB(mags[minBin] / mags[0])
	if math.IsInf(notch, -1) {
		fmt.Printf("deepest notch     -inf dB at %.1f Hz\n", float64(minBin)*binHz)
	} else {
		fmt.Printf("deepest notch     %.2f dB at %.1f Hz\n", notch, float64(minBin)*binHz)
	}

	return nil
}

func samplesToMs(n, rate int) float64 {
	return float64(n) / float64(rate) * 1000
}
