// Package core provides shared numeric helpers for the pedal DSP path:
// clamping, converter-code range mapping, and comparison utilities used
// across the engine, the control loop and the measurement tools.
package core
