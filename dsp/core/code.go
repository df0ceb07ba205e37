package core

import "math"

// Converter code domain. All samples on the audio path are unsigned 12-bit
// codes, matching the ADC/DAC width of the target hardware.
const (
	// FullScale is the largest valid converter code.
	FullScale = 4095

	// MidScale is the code for silence; signals swing around it.
	MidScale = 2048
)

// ClampCode clamps value to [0, FullScale] and truncates to a code.
func ClampCode(value float64) uint16 {
	if value <= 0 || math.IsNaN(value) {
		return 0
	}

	if value >= FullScale {
		return FullScale
	}

	return uint16(value)
}

// MapRange maps a raw full-scale reading monotonically onto [lo, hi].
// Readings above FullScale clamp to hi. lo may exceed hi for inverted
// controls; the mapping stays monotonic either way.
func MapRange(raw uint16, lo, hi float64) float64 {
	if raw > FullScale {
		raw = FullScale
	}

	t := float64(raw) / FullScale

	return lo + t*(hi-lo)
}

// CodeToFloat converts a code to a normalized sample in [-1, 1].
func CodeToFloat(code uint16) float64 {
	if code > FullScale {
		code = FullScale
	}

	return float64(code)/(FullScale/2.0) - 1
}

// FloatToCode converts a normalized sample in [-1, 1] to a code,
// clamping out-of-range input.
func FloatToCode(sample float64) uint16 {
	return ClampCode((sample + 1) * (FullScale / 2.0))
}
