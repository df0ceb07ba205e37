// Command pedalsim runs the delay pedal engine against a test tone on the
// host audio device. Virtual pots and the mode button are driven from a
// small terminal UI; every adjustment flows through the real control loop
// exactly as a hardware reading would.
package main

import (
	"bufio"
	"context"
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cwbudde/algo-pedal/control"
	"github.com/cwbudde/algo-pedal/dsp/core"
	"github.com/cwbudde/algo-pedal/dsp/engine"
	"github.com/cwbudde/algo-pedal/dsp/signal"
	"github.com/cwbudde/algo-pedal/hw"
	"github.com/cwbudde/algo-pedal/internal/rig"
)

// CLI defines the command-line interface.
type CLI struct {
	SampleRate int     `default:"48000" help:"Sample rate in Hz; also sets the one-second delay line capacity"`
	Tone       float64 `default:"220" help:"Test tone frequency in Hz"`
	Level      float64 `default:"0.6" help:"Test tone level in [0, 1]"`

	Delay   float64 `default:"0.35" help:"Initial delay pot position in [0, 1]"`
	Mix     float64 `default:"0.5" help:"Initial mix pot position in [0, 1]"`
	Repeats float64 `default:"0.4" help:"Initial repeats pot position in [0, 1]"`
	Shimmer float64 `default:"0" help:"Initial shimmer pot position in [0, 1]"`
	Reverse bool    `help:"Start in reverse mode"`

	Render  string  `type:"path" help:"Render raw float32 LE samples to this file instead of playing"`
	Seconds float64 `default:"5" help:"Render length in seconds"`
}

func main() {
	cli := &CLI{}
	kctx := kong.Parse(cli,
		kong.Name("pedalsim"),
		kong.Description("Interactive simulator for the algo-pedal delay engine"),
		kong.UsageOnError(),
	)

	kctx.FatalIfErrorf(run(cli))
}

func run(cli *CLI) error {
	params, err := engine.NewParams(cli.SampleRate)
	if err != nil {
		return err
	}

	eng, err := engine.New(params)
	if err != nil {
		return err
	}

	tone, err := signal.NewTone(float64(cli.SampleRate), cli.Tone, cli.Level)
	if err != nil {
		return err
	}

	pots := []potControl{
		{"delay", hw.NewSimPot(cli.Delay)},
		{"mix", hw.NewSimPot(cli.Mix)},
		{"repeats", hw.NewSimPot(cli.Repeats)},
		{"shimmer", hw.NewSimPot(cli.Shimmer)},
	}

	button := &hw.SimButton{}

	loop, err := control.New(control.Config{
		Params:     params,
		DelayPot:   pots[0].pot,
		MixPot:     pots[1].pot,
		RepeatsPot: pots[2].pot,
		ShimmerPot: pots[3].pot,
		Button:     button,
	})
	if err != nil {
		return err
	}

	// Publish the initial pot positions before any audio is pulled.
	loop.Poll(time.Now())
	params.SetReverse(cli.Reverse)

	if cli.Render != "" {
		return renderToFile(cli, tone, eng)
	}

	r, err := rig.New(rig.Config{
		SampleRate: cli.SampleRate,
		Source:     tone,
		Engine:     eng,
	})
	if err != nil {
		return err
	}
	defer r.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go loop.Run(ctx)

	r.Start()

	p := tea.NewProgram(newModel(cli.SampleRate, params, pots, button), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("ui: %w", err)
	}

	return nil
}

func renderToFile(cli *CLI, tone *signal.Tone, eng *engine.Engine) error {
	n := int(cli.Seconds * float64(cli.SampleRate))
	if n <= 0 {
		return fmt.Errorf("render length must be > 0: %f s", cli.Seconds)
	}

	out, err := rig.Render(tone, eng, n)
	if err != nil {
		return err
	}

	f, err := os.Create(cli.Render)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)

	var frame [4]byte
	for _, code := range out {
		binary.LittleEndian.PutUint32(frame[:], math.Float32bits(float32(core.CodeToFloat(code))))

		if _, err := w.Write(frame[:]); err != nil {
			return err
		}
	}

	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("rendered %d samples at %d Hz to %s\n", n, cli.SampleRate, cli.Render)

	return nil
}
