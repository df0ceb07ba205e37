// Package control implements the control-rate side of the pedal: it polls
// four continuous controls and the mode button, scales raw readings onto
// the parameter ranges, and publishes them through the engine's clamped
// parameter store. It never touches the delay buffer.
package control

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/cwbudde/algo-pedal/dsp/core"
	"github.com/cwbudde/algo-pedal/dsp/engine"
	"github.com/cwbudde/algo-pedal/hw"
)

// DefaultInterval is the poll period. There is no hard timing contract;
// this just keeps knob response comfortably under perception.
const DefaultInterval = 5 * time.Millisecond

// Config wires a Loop. Params is required; any control left nil is simply
// not polled, so partial rigs (e.g. a two-knob build) work unchanged.
type Config struct {
	Params *engine.Params

	DelayPot   hw.Pot
	MixPot     hw.Pot
	RepeatsPot hw.Pot
	ShimmerPot hw.Pot
	Button     hw.Button

	Interval   time.Duration
	Refractory time.Duration
}

// Loop owns the control-rate polling. All parameter publication goes
// through the store's clamped setters, so the engine can trust every
// snapshot without re-validating.
type Loop struct {
	cfg      Config
	interval time.Duration
	debounce *Debouncer
}

// New returns a loop for the given configuration.
func New(cfg Config) (*Loop, error) {
	if cfg.Params == nil {
		return nil, fmt.Errorf("control loop requires a parameter store")
	}

	interval := cfg.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	return &Loop{
		cfg:      cfg,
		interval: interval,
		debounce: NewDebouncer(cfg.Refractory),
	}, nil
}

// Poll runs one control-rate iteration: read every attached control, map
// its raw reading monotonically onto the parameter range, publish, and
// feed the button through the debouncer.
func (l *Loop) Poll(now time.Time) {
	p := l.cfg.Params

	if l.cfg.DelayPot != nil {
		maxDelay := float64(p.Capacity() - 1)
		p.SetDelaySamples(int(math.Round(core.MapRange(l.cfg.DelayPot.Read(), 1, maxDelay))))
	}

	if l.cfg.MixPot != nil {
		p.SetWetMix(core.MapRange(l.cfg.MixPot.Read(), 0, 1))
	}

	if l.cfg.RepeatsPot != nil {
		p.SetRepeats(int(math.Round(core.MapRange(l.cfg.RepeatsPot.Read(), 0, engine.MaxRepeats))))
	}

	if l.cfg.ShimmerPot != nil {
		p.SetShimmerLevel(core.MapRange(l.cfg.ShimmerPot.Read(), 0, 1))
	}

	if l.cfg.Button != nil && l.debounce.Press(l.cfg.Button.Pressed(), now) {
		p.ToggleReverse()
	}
}

// Run polls at the configured interval until ctx is done.
func (l *Loop) Run(ctx context.Context) {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			l.Poll(now)
		}
	}
}
