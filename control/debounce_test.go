package control

import (
	"testing"
	"time"
)

func TestDebouncerFirstEdgeAccepted(t *testing.T) {
	d := NewDebouncer(150 * time.Millisecond)
	now := time.Unix(0, 0)

	if !d.Press(true, now) {
		t.Fatal("first press edge not accepted")
	}
}

func TestDebouncerRequiresEdge(t *testing.T) {
	d := NewDebouncer(150 * time.Millisecond)
	now := time.Unix(0, 0)

	d.Press(true, now)

	// Held button is one edge, not a stream of them.
	for i := 1; i <= 100; i++ {
		if d.Press(true, now.Add(time.Duration(i)*time.Second)) {
			t.Fatalf("held press accepted at poll %d", i)
		}
	}
}

func TestDebouncerRefractoryDropsFastEdges(t *testing.T) {
	d := NewDebouncer(150 * time.Millisecond)
	now := time.Unix(0, 0)

	if !d.Press(true, now) {
		t.Fatal("first edge not accepted")
	}

	// Release then press again 100 ms later: inside the window, dropped.
	d.Press(false, now.Add(50*time.Millisecond))

	if d.Press(true, now.Add(100*time.Millisecond)) {
		t.Fatal("edge inside refractory window accepted")
	}

	// The dropped edge is not queued: nothing fires on its own later.
	if d.Press(true, now.Add(400*time.Millisecond)) {
		t.Fatal("held press after dropped edge accepted")
	}
}

func TestDebouncerSlowEdgesAllAccepted(t *testing.T) {
	d := NewDebouncer(150 * time.Millisecond)
	now := time.Unix(0, 0)

	accepted := 0
	for i := 0; i < 5; i++ {
		at := now.Add(time.Duration(i) * 200 * time.Millisecond)
		if d.Press(true, at) {
			accepted++
		}

		d.Press(false, at.Add(20*time.Millisecond))
	}

	if accepted != 5 {
		t.Fatalf("accepted %d edges, want 5", accepted)
	}
}

func TestDebouncerDefaultRefractory(t *testing.T) {
	d := NewDebouncer(0)
	if d.refractory != DefaultRefractory {
		t.Fatalf("got %v want %v", d.refractory, DefaultRefractory)
	}
}
