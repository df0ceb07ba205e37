package control

import "time"

// DefaultRefractory is the minimum interval between two accepted button
// toggles. Mechanical switch bounce and nervous double-taps inside the
// window are dropped, not queued.
const DefaultRefractory = 150 * time.Millisecond

// Debouncer detects accepted press edges on a polled momentary switch.
type Debouncer struct {
	refractory time.Duration
	prev       bool
	last       time.Time
}

// NewDebouncer returns a debouncer with the given refractory interval.
// Non-positive intervals fall back to DefaultRefractory.
func NewDebouncer(refractory time.Duration) *Debouncer {
	if refractory <= 0 {
		refractory = DefaultRefractory
	}

	return &Debouncer{refractory: refractory}
}

// Press feeds one polled button state and reports whether it constitutes
// an accepted press edge: a released-to-pressed transition at least one
// refractory interval after the previously accepted edge.
func (d *Debouncer) Press(pressed bool, now time.Time) bool {
	edge := pressed && !d.prev
	d.prev = pressed

	if !edge {
		return false
	}

	if !d.last.IsZero() && now.Sub(d.last) < d.refractory {
		return false
	}

	d.last = now

	return true
}
