// Package response measures a configured pedal engine offline: impulse
// response, magnitude spectrum and the echo tap layout implied by the
// current settings. It is a diagnostic tool; nothing here runs on the
// sample-rate path.
package response

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-pedal/dsp/core"
	"github.com/cwbudde/algo-pedal/dsp/engine"
)

// Impulse returns the engine's impulse response as normalized deviation
// from MidScale rest, in [-1, 1]. The engine is reset and settled at rest
// first, then excited with a full-scale excursion; the engine's delay
// state is consumed by the measurement.
func Impulse(e *engine.Engine, n int) ([]float64, error) {
	if e == nil {
		return nil, fmt.Errorf("impulse response requires an engine")
	}

	if n <= 0 {
		return nil, fmt.Errorf("impulse response length must be > 0: %d", n)
	}

	e.Reset()

	// Fill the whole line with rest so pre-history reads as silence
	// rather than zero code (which would register as a negative rail).
	for i := 0; i < e.Capacity(); i++ {
		e.ProcessSample(core.MidScale)
	}

	const rest = float64(core.MidScale)

	scale := 1 / float64(core.FullScale-core.MidScale)

	out := make([]float64, n)
	for i := range out {
		in := uint16(core.MidScale)
		if i == 0 {
			in = core.FullScale
		}

		out[i] = (float64(e.ProcessSample(in)) - rest) * scale
	}

	return out, nil
}

// Magnitude returns the single-sided magnitude spectrum of ir, Hann
// windowed and zero padded to fftSize. A non-positive fftSize selects the
// next power of two at or above len(ir).
func Magnitude(ir []float64, fftSize int) ([]float64, error) {
	if len(ir) == 0 {
		return nil, fmt.Errorf("magnitude requires a non-empty response")
	}

	if fftSize <= 0 {
		fftSize = nextPowerOf2(len(ir))
	}

	if fftSize < len(ir) {
		return nil, fmt.Errorf("magnitude fft size %d smaller than response %d", fftSize, len(ir))
	}

	in := make([]complex128, fftSize)
	for i, v := range ir {
		in[i] = complex(v*hann(i, len(ir)), 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("magnitude fft plan: %w", err)
	}

	spec := make([]complex128, fftSize)
	if err := plan.Forward(spec, in); err != nil {
		return nil, fmt.Errorf("magnitude fft: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)

	for i := 0; i < bins; i++ {
		re[i] = real(spec[i])
		im[i] = imag(spec[i])
	}

	out := make([]float64, bins)
	vecmath.Magnitude(out, re, im)

	return out, nil
}

// TapLags returns the lag, in samples, of the base tap and of every echo
// tap for the given settings. Echo taps step forward in buffer order, so
// tap k sits at (1-k)*delaySamples behind the cursor, modulo capacity.
// The layout is one-directional regardless of the reverse flag.
func TapLags(capacity, delaySamples, repeats int) ([]int, error) {
	if capacity < 2 {
		return nil, fmt.Errorf("tap lags capacity must be >= 2: %d", capacity)
	}

	if delaySamples < 1 || delaySamples > capacity-1 {
		return nil, fmt.Errorf("tap lags delay out of range [1, %d]: %d", capacity-1, delaySamples)
	}

	if repeats < 0 || repeats > engine.MaxRepeats {
		return nil, fmt.Errorf("tap lags repeats out of range [0, %d]: %d", engine.MaxRepeats, repeats)
	}

	lags := make([]int, 0, repeats+1)
	lags = append(lags, delaySamples)

	for k := 1; k <= repeats; k++ {
		lag := ((1-k)*delaySamples%capacity + capacity) % capacity
		lags = append(lags, lag)
	}

	return lags, nil
}

// TapTimes returns TapLags converted to seconds at the given sample rate.
func TapTimes(capacity, delaySamples, repeats int, sampleRate float64) ([]float64, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("tap times sample rate must be > 0: %f", sampleRate)
	}

	lags, err := TapLags(capacity, delaySamples, repeats)
	if err != nil {
		return nil, err
	}

	times := make([]float64, len(lags))
	for i, lag := range lags {
		times[i] = float64(lag) / sampleRate
	}

	return times, nil
}

// TapGains returns the linear gain of the base tap and of every echo tap.
func TapGains(repeats int) ([]float64, error) {
	if repeats < 0 || repeats > engine.MaxRepeats {
		return nil, fmt.Errorf("tap gains repeats out of range [0, %d]: %d", engine.MaxRepeats, repeats)
	}

	gains := make([]float64, 0, repeats+1)
	gains = append(gains, 1)

	for k := 1; k <= repeats; k++ {
		gains = append(gains, 0.4)
	}

	return gains, nil
}

func hann(i, n int) float64 {
	if n < 2 {
		return 1
	}

	return 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
}

func nextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
