// Package signal generates deterministic converter-code test signals for
// the engine, the measurement tools and the simulator. All signals swing
// around MidScale and are clamped to the code range.
package signal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-pedal/dsp/core"
)

// Generator creates deterministic signals at a fixed sample rate.
type Generator struct {
	sampleRate float64
	seed       int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a generator for the given sample rate.
func NewGenerator(sampleRate float64, opts ...Option) (*Generator, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("generator sample rate must be > 0: %f", sampleRate)
	}

	g := &Generator{sampleRate: sampleRate, seed: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}

	return g, nil
}

// SampleRate returns the generator sample rate in Hz.
func (g *Generator) SampleRate() float64 {
	return g.sampleRate
}

// Sine generates a sine wave around MidScale. Amplitude is a normalized
// level in [0, 1], where 1 swings the full code range.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]uint16, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("sine samples must be > 0: %d", samples)
	}

	if amplitude < 0 || amplitude > 1 {
		return nil, fmt.Errorf("sine amplitude must be in [0, 1]: %f", amplitude)
	}

	out := make([]uint16, samples)
	step := 2 * math.Pi * freqHz / g.sampleRate
	swing := amplitude * (core.FullScale / 2.0)

	for i := range out {
		out[i] = core.ClampCode(core.MidScale + swing*math.Sin(step*float64(i)))
	}

	return out, nil
}

// WhiteNoise generates deterministic noise around MidScale. Amplitude is a
// normalized level in [0, 1].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]uint16, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}

	if amplitude < 0 || amplitude > 1 {
		return nil, fmt.Errorf("noise amplitude must be in [0, 1]: %f", amplitude)
	}

	out := make([]uint16, samples)
	rng := rand.New(rand.NewSource(g.seed))
	swing := amplitude * (core.FullScale / 2.0)

	for i := range out {
		out[i] = core.ClampCode(core.MidScale + swing*(rng.Float64()*2-1))
	}

	return out, nil
}

// Impulse generates a MidScale-rest signal with a single excursion of the
// given normalized amplitude at index at.
func Impulse(samples, at int, amplitude float64) ([]uint16, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("impulse samples must be > 0: %d", samples)
	}

	if at < 0 || at >= samples {
		return nil, fmt.Errorf("impulse position out of range: %d", at)
	}

	if amplitude < 0 || amplitude > 1 {
		return nil, fmt.Errorf("impulse amplitude must be in [0, 1]: %f", amplitude)
	}

	out, err := DC(core.MidScale, samples)
	if err != nil {
		return nil, err
	}

	out[at] = core.ClampCode(core.MidScale + amplitude*(core.FullScale/2.0))

	return out, nil
}

// DC generates a constant signal at the given code.
func DC(level uint16, samples int) ([]uint16, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("dc samples must be > 0: %d", samples)
	}

	if level > core.FullScale {
		level = core.FullScale
	}

	out := make([]uint16, samples)
	for i := range out {
		out[i] = level
	}

	return out, nil
}
