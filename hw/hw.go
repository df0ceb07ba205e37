// Package hw declares the hardware-facing contracts of the pedal: sample
// input and output converters, continuous controls and the mode button.
// The engine and control loop depend only on these interfaces; real
// converter bindings and the in-memory simulations below satisfy them.
package hw

// InputSource returns one converter code in [0, core.FullScale] per call,
// synchronously. Called once per sample period from the sample context.
type InputSource interface {
	ReadSample() uint16
}

// OutputSink accepts one converter code per call. Writes are
// fire-and-forget; no acknowledgment is modeled.
type OutputSink interface {
	WriteSample(code uint16)
}

// Pot is a continuous control delivering raw full-scale readings.
// Polled from the control loop; must not block.
type Pot interface {
	Read() uint16
}

// Button reports the momentary switch state. Polled from the control
// loop; must not block. Debouncing is the control loop's job.
type Button interface {
	Pressed() bool
}
