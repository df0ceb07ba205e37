package rig

import (
	"fmt"

	"github.com/cwbudde/algo-pedal/dsp/engine"
	"github.com/cwbudde/algo-pedal/hw"
)

// Render runs the engine offline for n samples, pulling from source.
// Same per-sample contract as the device path, without a device.
func Render(source hw.InputSource, e *engine.Engine, n int) ([]uint16, error) {
	if source == nil {
		return nil, fmt.Errorf("render requires an input source")
	}

	if e == nil {
		return nil, fmt.Errorf("render requires an engine")
	}

	if n <= 0 {
		return nil, fmt.Errorf("render length must be > 0: %d", n)
	}

	out := make([]uint16, n)
	for i := range out {
		out[i] = e.ProcessSample(source.ReadSample())
	}

	return out, nil
}

// RenderTo is Render with delivery to an output sink, for rigs that drive
// a converter binding instead of the host device.
func RenderTo(source hw.InputSource, e *engine.Engine, sink hw.OutputSink, n int) error {
	if sink == nil {
		return fmt.Errorf("render requires an output sink")
	}

	out, err := Render(source, e, n)
	if err != nil {
		return err
	}

	for _, code := range out {
		sink.WriteSample(code)
	}

	return nil
}
