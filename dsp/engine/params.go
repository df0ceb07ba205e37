package engine

import (
	"fmt"
	"math"
	"sync/atomic"
)

// MaxRepeats bounds the number of additional echo taps. The bound keeps the
// per-sample work constant-time.
const MaxRepeats = 5

// Settings is a plain snapshot of the shared parameters, read once per
// processed sample.
type Settings struct {
	DelaySamples int
	Reverse      bool
	Repeats      int
	WetMix       float64
	ShimmerLevel float64
}

// Params is the parameter store shared between the control loop (sole
// writer) and the engine (sole reader). Every field is held atomically so a
// write from the control context can never be observed torn by the sample
// context, regardless of word size. Setters clamp unconditionally instead
// of returning errors: a raw reading outside the expected range must
// degrade to the nearest legal value, not fault.
type Params struct {
	capacity int

	delaySamples atomic.Uint32
	reverse      atomic.Bool
	repeats      atomic.Uint32
	wetMix       atomic.Uint64
	shimmerLevel atomic.Uint64
}

// NewParams returns a store for a delay line of the given capacity, which
// fixes the valid delay range [1, capacity-1]. Initial settings are a
// one-sample forward delay, no repeats, fully dry, no shimmer.
func NewParams(capacity int) (*Params, error) {
	if capacity < 2 {
		return nil, fmt.Errorf("params capacity must be >= 2: %d", capacity)
	}

	p := &Params{capacity: capacity}
	p.delaySamples.Store(1)

	return p, nil
}

// Capacity returns the delay line capacity this store was sized for.
func (p *Params) Capacity() int {
	return p.capacity
}

// SetDelaySamples publishes the delay length, clamped to [1, capacity-1].
func (p *Params) SetDelaySamples(n int) {
	if n < 1 {
		n = 1
	}

	if n > p.capacity-1 {
		n = p.capacity - 1
	}

	p.delaySamples.Store(uint32(n))
}

// SetRepeats publishes the echo tap count, clamped to [0, MaxRepeats].
func (p *Params) SetRepeats(n int) {
	if n < 0 {
		n = 0
	}

	if n > MaxRepeats {
		n = MaxRepeats
	}

	p.repeats.Store(uint32(n))
}

// SetWetMix publishes the dry-to-wet blend, clamped to [0, 1]. NaN maps
// to 0 (fully dry).
func (p *Params) SetWetMix(mix float64) {
	p.wetMix.Store(math.Float64bits(clampUnit(mix)))
}

// SetShimmerLevel publishes the shimmer depth, clamped to [0, 1]. NaN maps
// to 0 (no perturbation).
func (p *Params) SetShimmerLevel(level float64) {
	p.shimmerLevel.Store(math.Float64bits(clampUnit(level)))
}

// SetReverse publishes the playback direction flag.
func (p *Params) SetReverse(reverse bool) {
	p.reverse.Store(reverse)
}

// ToggleReverse flips the playback direction flag and returns the new value.
func (p *Params) ToggleReverse() bool {
	for {
		old := p.reverse.Load()
		if p.reverse.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Snapshot returns the current settings, one atomic load per field.
// Individual fields may straddle a control-loop iteration; each value on
// its own is always a fully published, in-range value.
func (p *Params) Snapshot() Settings {
	return Settings{
		DelaySamples: int(p.delaySamples.Load()),
		Reverse:      p.reverse.Load(),
		Repeats:      int(p.repeats.Load()),
		WetMix:       math.Float64frombits(p.wetMix.Load()),
		ShimmerLevel: math.Float64frombits(p.shimmerLevel.Load()),
	}
}

func clampUnit(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}

	if v > 1 {
		return 1
	}

	return v
}
