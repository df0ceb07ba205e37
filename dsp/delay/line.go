// Package delay provides the fixed-capacity circular tap line that backs
// the sampling engine. The line stores raw converter codes; all index
// arithmetic is modulo the capacity, so every tap lands inside the buffer
// for any in-range delay.
package delay

import "fmt"

// Line is a circular buffer of converter codes with a single write cursor.
// The cursor advances by exactly one per Advance call; Store writes the
// current cell without moving it, so a caller can write the incoming sample,
// take taps relative to it, and only then step forward.
type Line struct {
	buffer []uint16
	cursor int
}

// New returns a zeroed line of fixed capacity. Capacity must be at least 2
// so that a delay of one sample is representable.
func New(capacity int) (*Line, error) {
	if capacity < 2 {
		return nil, fmt.Errorf("delay capacity must be >= 2: %d", capacity)
	}

	return &Line{buffer: make([]uint16, capacity)}, nil
}

// Len returns the line capacity.
func (l *Line) Len() int {
	return len(l.buffer)
}

// Cursor returns the current write position.
func (l *Line) Cursor() int {
	return l.cursor
}

// Store writes code at the current cursor without advancing.
func (l *Line) Store(code uint16) {
	l.buffer[l.cursor] = code
}

// Advance steps the cursor forward by one, wrapping at capacity.
func (l *Line) Advance() {
	l.cursor++
	if l.cursor >= len(l.buffer) {
		l.cursor = 0
	}
}

// At returns the code stored at index i. The index must come from one of
// the tap computations below; no bounds check is performed here.
func (l *Line) At(i int) uint16 {
	return l.buffer[i]
}

// TapIndex returns the index delaySamples behind the cursor:
// (cursor + capacity - delaySamples) mod capacity.
func (l *Line) TapIndex(delaySamples int) int {
	return (l.cursor + len(l.buffer) - delaySamples) % len(l.buffer)
}

// ReverseTapIndex returns the reverse-mode base index. The subtraction is
// written with an explicit wraparound branch for cursor < delaySamples.
// The resulting position is identical to TapIndex for equal inputs; the
// two modes diverge only in how echo taps are interpreted downstream.
func (l *Line) ReverseTapIndex(delaySamples int) int {
	if l.cursor < delaySamples {
		return (l.cursor + len(l.buffer) - delaySamples) % len(l.buffer)
	}

	return (l.cursor - delaySamples) % len(l.buffer)
}

// EchoIndex returns the position of echo tap number tap, stepping forward
// from base in multiples of delaySamples: (base + tap*delaySamples) mod
// capacity.
func (l *Line) EchoIndex(base, delaySamples, tap int) int {
	return (base + tap*delaySamples) % len(l.buffer)
}

// Reset zeroes the buffer and rewinds the cursor.
func (l *Line) Reset() {
	for i := range l.buffer {
		l.buffer[i] = 0
	}

	l.cursor = 0
}
