package engine

import (
	"fmt"

	"github.com/cwbudde/algo-pedal/dsp/core"
	"github.com/cwbudde/algo-pedal/dsp/delay"
)

// echoTapGain attenuates every additional echo tap relative to the base
// sample. The gain is a fixed scalar per tap, not compounded, which gives
// the one-directional repeating-echo texture.
const echoTapGain = 0.4

// Shimmer sign rule: the three low bits of the truncated echo accumulator
// pick the perturbation direction.
const (
	shimmerBitMask      = 0x7
	shimmerBitThreshold = 3
)

// Engine produces one output code per input code. It exclusively owns its
// delay line and write cursor; the only shared state is the Params store
// it reads a snapshot from on every call.
type Engine struct {
	line   *delay.Line
	params *Params
}

// New returns an engine with a zeroed delay line sized to the parameter
// store's capacity.
func New(params *Params) (*Engine, error) {
	if params == nil {
		return nil, fmt.Errorf("engine params must not be nil")
	}

	line, err := delay.New(params.Capacity())
	if err != nil {
		return nil, err
	}

	return &Engine{line: line, params: params}, nil
}

// Params returns the shared parameter store.
func (e *Engine) Params() *Params {
	return e.params
}

// Capacity returns the delay line capacity in samples.
func (e *Engine) Capacity() int {
	return e.line.Len()
}

// ProcessSample runs one sample period: store the input, take the delayed
// base sample (forward or reverse addressing), accumulate echo taps, apply
// the shimmer perturbation, blend with the dry input, clamp to the code
// range and advance the write cursor. Bounded time, no allocation, no
// error paths.
func (e *Engine) ProcessSample(in uint16) uint16 {
	e.line.Store(in)

	s := e.params.Snapshot()

	var base int
	if s.Reverse {
		base = e.line.ReverseTapIndex(s.DelaySamples)
	} else {
		base = e.line.TapIndex(s.DelaySamples)
	}

	// The accumulator lives in float64; with five taps of full-scale input
	// it can reach three times the code range before the mix stage.
	delayed := float64(e.line.At(base))
	for tap := 1; tap <= s.Repeats; tap++ {
		delayed += echoTapGain * float64(e.line.At(e.line.EchoIndex(base, s.DelaySamples, tap)))
	}

	// Shimmer is a deterministic, data-dependent amplitude perturbation:
	// the low bits of the accumulator pick the sign, the level scales the
	// depth.
	sign := -1.0
	if uint64(delayed)&shimmerBitMask > shimmerBitThreshold {
		sign = 1.0
	}

	shimmered := delayed + delayed*s.ShimmerLevel*sign

	out := float64(in)*(1-s.WetMix) + shimmered*s.WetMix

	e.line.Advance()

	return core.ClampCode(out)
}

// ProcessInPlace applies the engine to buf in place, one sample period per
// element.
func (e *Engine) ProcessInPlace(buf []uint16) {
	for i := range buf {
		buf[i] = e.ProcessSample(buf[i])
	}
}

// Reset zeroes the delay line and rewinds the write cursor. Parameters are
// left untouched; they belong to the control side.
func (e *Engine) Reset() {
	e.line.Reset()
}
