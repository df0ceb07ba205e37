// Package rig wires an input source and a pedal engine to the host audio
// device. The device pulls samples through Read at the output rate, which
// makes Read the hosted stand-in for the fixed-period sample callback:
// one input acquisition and one engine invocation per frame, no
// allocation, no blocking on the control side.
package rig

import (
	"encoding/binary"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/cwbudde/algo-pedal/dsp/core"
	"github.com/cwbudde/algo-pedal/dsp/engine"
	"github.com/cwbudde/algo-pedal/hw"
)

const bytesPerFrame = 4 // one float32 mono frame

// Config wires a Rig.
type Config struct {
	SampleRate int
	Source     hw.InputSource
	Engine     *engine.Engine

	// BufferSize is the device buffer length. Zero selects a latency
	// comfortable for interactive knob twisting.
	BufferSize time.Duration
}

// Rig owns the audio device connection. Start/Stop/Close are control
// operations guarded by a mutex; Read is the device's sample-rate pull
// and takes no locks.
type Rig struct {
	source hw.InputSource
	engine *engine.Engine

	ctx    *oto.Context
	player *oto.Player

	mu      sync.Mutex
	started bool
}

// New opens the audio device and prepares a player. It blocks until the
// device is ready.
func New(cfg Config) (*Rig, error) {
	if cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("rig sample rate must be > 0: %d", cfg.SampleRate)
	}

	if cfg.Source == nil {
		return nil, fmt.Errorf("rig requires an input source")
	}

	if cfg.Engine == nil {
		return nil, fmt.Errorf("rig requires an engine")
	}

	bufferSize := cfg.BufferSize
	if bufferSize <= 0 {
		bufferSize = 10 * time.Millisecond
	}

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   cfg.SampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
		BufferSize:   bufferSize,
	})
	if err != nil {
		return nil, fmt.Errorf("rig audio context: %w", err)
	}
	<-ready

	r := &Rig{
		source: cfg.Source,
		engine: cfg.Engine,
		ctx:    ctx,
	}
	r.player = ctx.NewPlayer(r)

	return r, nil
}

// Read produces float32 LE frames for the device: one source sample and
// one engine invocation per frame.
func (r *Rig) Read(p []byte) (int, error) {
	frames := len(p) / bytesPerFrame

	for i := 0; i < frames; i++ {
		out := r.engine.ProcessSample(r.source.ReadSample())
		bits := math.Float32bits(float32(core.CodeToFloat(out)))
		binary.LittleEndian.PutUint32(p[i*bytesPerFrame:], bits)
	}

	return frames * bytesPerFrame, nil
}

// Start begins playback.
func (r *Rig) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.started && r.player != nil {
		r.player.Play()
		r.started = true
	}
}

// Stop pauses playback; the rig can be started again.
func (r *Rig) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.started && r.player != nil {
		r.player.Pause()
		r.started = false
	}
}

// Close stops playback and releases the player.
func (r *Rig) Close() error {
	r.Stop()

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.player != nil {
		err := r.player.Close()
		r.player = nil

		return err
	}

	return nil
}
