package hw

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/cwbudde/algo-pedal/dsp/core"
)

// SimPot is a settable potentiometer. Set may be called from any
// goroutine (a UI, a test); Read is the control loop's view.
type SimPot struct {
	raw atomic.Uint32
}

// NewSimPot returns a pot at the given normalized position in [0, 1].
func NewSimPot(position float64) *SimPot {
	p := &SimPot{}
	p.SetPosition(position)

	return p
}

// Read returns the current raw reading.
func (p *SimPot) Read() uint16 {
	return uint16(p.raw.Load())
}

// Set stores a raw full-scale reading, clamped to the code range.
func (p *SimPot) Set(raw uint16) {
	if raw > core.FullScale {
		raw = core.FullScale
	}

	p.raw.Store(uint32(raw))
}

// SetPosition stores a normalized position in [0, 1].
func (p *SimPot) SetPosition(position float64) {
	p.Set(core.ClampCode(position * core.FullScale))
}

// Position returns the normalized position in [0, 1].
func (p *SimPot) Position() float64 {
	return float64(p.Read()) / core.FullScale
}

// SimButton is a momentary switch. Tap latches one press that is consumed
// by the next Pressed call, so a single tap is seen as exactly one
// pressed-then-released edge by the poller.
type SimButton struct {
	pressed atomic.Bool
}

// Tap registers one press.
func (b *SimButton) Tap() {
	b.pressed.Store(true)
}

// Pressed reports and consumes the latched press.
func (b *SimButton) Pressed() bool {
	return b.pressed.Swap(false)
}

// SliceSource plays a fixed code sequence, looping at the end. The zero
// value is not usable; use NewSliceSource.
type SliceSource struct {
	codes []uint16
	pos   int
}

// NewSliceSource returns a looping source over codes.
func NewSliceSource(codes []uint16) (*SliceSource, error) {
	if len(codes) == 0 {
		return nil, fmt.Errorf("slice source must not be empty")
	}

	return &SliceSource{codes: codes}, nil
}

// ReadSample returns the next code, wrapping at the end.
func (s *SliceSource) ReadSample() uint16 {
	code := s.codes[s.pos]

	s.pos++
	if s.pos >= len(s.codes) {
		s.pos = 0
	}

	return code
}

// SliceSink records every written code.
type SliceSink struct {
	mu    sync.Mutex
	codes []uint16
}

// WriteSample appends one code.
func (s *SliceSink) WriteSample(code uint16) {
	s.mu.Lock()
	s.codes = append(s.codes, code)
	s.mu.Unlock()
}

// Codes returns a copy of everything written so far.
func (s *SliceSink) Codes() []uint16 {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]uint16, len(s.codes))
	copy(out, s.codes)

	return out
}
