package signal

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-pedal/dsp/core"
)

// Tone is a streaming sine oscillator in the converter-code domain. It
// satisfies the pedal's input-source contract and is allocation-free per
// sample, so it can feed the sample-rate path directly.
type Tone struct {
	phase float64
	step  float64
	swing float64
}

// NewTone returns an oscillator at freqHz for the given sample rate.
// Amplitude is a normalized level in [0, 1].
func NewTone(sampleRate, freqHz, amplitude float64) (*Tone, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("tone sample rate must be > 0: %f", sampleRate)
	}

	if freqHz <= 0 || freqHz >= sampleRate/2 {
		return nil, fmt.Errorf("tone frequency must be in (0, %f): %f", sampleRate/2, freqHz)
	}

	if amplitude < 0 || amplitude > 1 || math.IsNaN(amplitude) {
		return nil, fmt.Errorf("tone amplitude must be in [0, 1]: %f", amplitude)
	}

	return &Tone{
		step:  2 * math.Pi * freqHz / sampleRate,
		swing: amplitude * (core.FullScale / 2.0),
	}, nil
}

// ReadSample returns the next oscillator code.
func (t *Tone) ReadSample() uint16 {
	code := core.ClampCode(core.MidScale + t.swing*math.Sin(t.phase))

	t.phase += t.step
	if t.phase >= 2*math.Pi {
		t.phase -= 2 * math.Pi
	}

	return code
}
