package hw

import (
	"testing"

	"github.com/cwbudde/algo-pedal/dsp/core"
)

func TestSimPotClampsRaw(t *testing.T) {
	p := NewSimPot(0)
	p.Set(60000)

	if got := p.Read(); got != core.FullScale {
		t.Fatalf("got %d want %d", got, core.FullScale)
	}
}

func TestSimPotPositionRoundTrip(t *testing.T) {
	p := NewSimPot(0.5)

	if got := p.Position(); got < 0.49 || got > 0.51 {
		t.Fatalf("position: got %v want about 0.5", got)
	}

	p.SetPosition(2) // clamped to full scale
	if got := p.Read(); got != core.FullScale {
		t.Fatalf("over-position: got %d want %d", got, core.FullScale)
	}
}

func TestSimButtonTapConsumedOnce(t *testing.T) {
	var b SimButton

	if b.Pressed() {
		t.Fatal("pressed before tap")
	}

	b.Tap()

	if !b.Pressed() {
		t.Fatal("tap not observed")
	}

	if b.Pressed() {
		t.Fatal("tap observed twice")
	}
}

func TestSliceSourceLoops(t *testing.T) {
	src, err := NewSliceSource([]uint16{1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}

	want := []uint16{1, 2, 3, 1, 2, 3, 1}
	for i, w := range want {
		if got := src.ReadSample(); got != w {
			t.Fatalf("sample %d: got %d want %d", i, got, w)
		}
	}
}

func TestSliceSourceValidation(t *testing.T) {
	if _, err := NewSliceSource(nil); err == nil {
		t.Fatal("expected error for empty source")
	}
}

func TestSliceSinkRecords(t *testing.T) {
	var sink SliceSink

	sink.WriteSample(7)
	sink.WriteSample(8)

	got := sink.Codes()
	if len(got) != 2 || got[0] != 7 || got[1] != 8 {
		t.Fatalf("got %v want [7 8]", got)
	}
}
