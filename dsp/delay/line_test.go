package delay

import "testing"

// --- construction and validation ---

func TestNewValidation(t *testing.T) {
	if _, err := New(0); err == nil {
		t.Fatal("expected error for capacity=0")
	}

	if _, err := New(1); err == nil {
		t.Fatal("expected error for capacity=1")
	}

	if _, err := New(-5); err == nil {
		t.Fatal("expected error for capacity=-5")
	}
}

func TestNewZeroed(t *testing.T) {
	l, err := New(8)
	if err != nil {
		t.Fatal(err)
	}

	if l.Len() != 8 {
		t.Fatalf("Len: got %d want 8", l.Len())
	}

	for i := 0; i < l.Len(); i++ {
		if l.At(i) != 0 {
			t.Fatalf("cell %d not zeroed: %d", i, l.At(i))
		}
	}
}

// --- store/advance ---

func TestStoreDoesNotAdvance(t *testing.T) {
	l, err := New(4)
	if err != nil {
		t.Fatal(err)
	}

	l.Store(100)
	l.Store(200)

	if l.Cursor() != 0 {
		t.Fatalf("cursor moved: %d", l.Cursor())
	}

	if l.At(0) != 200 {
		t.Fatalf("got %d want 200", l.At(0))
	}
}

func TestAdvanceWraps(t *testing.T) {
	l, err := New(3)
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 3; i++ {
		l.Advance()
	}

	if l.Cursor() != 0 {
		t.Fatalf("cursor after full cycle: got %d want 0", l.Cursor())
	}
}

func TestStoreMutatesExactlyOneCell(t *testing.T) {
	l, err := New(6)
	if err != nil {
		t.Fatal(err)
	}

	l.Store(1)
	l.Advance()
	l.Store(2)

	want := []uint16{1, 2, 0, 0, 0, 0}
	for i, w := range want {
		if l.At(i) != w {
			t.Fatalf("cell %d: got %d want %d", i, l.At(i), w)
		}
	}
}

// --- tap indexing ---

func TestTapIndexLookback(t *testing.T) {
	l, err := New(8)
	if err != nil {
		t.Fatal(err)
	}

	// Write 0..7; cursor ends back at 0.
	for i := 0; i < 8; i++ {
		l.Store(uint16(i))
		l.Advance()
	}

	// Rewind conceptually: cursor=0, so a delay of 1 points at index 7.
	if got := l.TapIndex(1); got != 7 {
		t.Fatalf("TapIndex(1): got %d want 7", got)
	}

	if got := l.TapIndex(7); got != 1 {
		t.Fatalf("TapIndex(7): got %d want 1", got)
	}
}

func TestTapIndicesAlwaysInRange(t *testing.T) {
	const capacity = 97

	l, err := New(capacity)
	if err != nil {
		t.Fatal(err)
	}

	for cursor := 0; cursor < capacity; cursor++ {
		for d := 1; d < capacity; d++ {
			fwd := l.TapIndex(d)
			rev := l.ReverseTapIndex(d)

			if fwd < 0 || fwd >= capacity {
				t.Fatalf("cursor=%d d=%d: forward index %d out of range", cursor, d, fwd)
			}

			if rev < 0 || rev >= capacity {
				t.Fatalf("cursor=%d d=%d: reverse index %d out of range", cursor, d, rev)
			}

			for tap := 1; tap <= 5; tap++ {
				e := l.EchoIndex(fwd, d, tap)
				if e < 0 || e >= capacity {
					t.Fatalf("cursor=%d d=%d tap=%d: echo index %d out of range", cursor, d, tap, e)
				}
			}
		}

		l.Advance()
	}
}

func TestForwardReverseSamePosition(t *testing.T) {
	const capacity = 64

	l, err := New(capacity)
	if err != nil {
		t.Fatal(err)
	}

	// Both branches of the reverse computation must land on the forward
	// position, including the wraparound case cursor < delay.
	for cursor := 0; cursor < capacity; cursor++ {
		for d := 1; d < capacity; d++ {
			if fwd, rev := l.TapIndex(d), l.ReverseTapIndex(d); fwd != rev {
				t.Fatalf("cursor=%d d=%d: forward %d != reverse %d", cursor, d, fwd, rev)
			}
		}

		l.Advance()
	}
}

func TestEchoIndexSpacing(t *testing.T) {
	l, err := New(100)
	if err != nil {
		t.Fatal(err)
	}

	base := 90
	if got := l.EchoIndex(base, 30, 1); got != 20 {
		t.Fatalf("tap 1: got %d want 20", got)
	}

	if got := l.EchoIndex(base, 30, 2); got != 50 {
		t.Fatalf("tap 2: got %d want 50", got)
	}
}

func TestReset(t *testing.T) {
	l, err := New(4)
	if err != nil {
		t.Fatal(err)
	}

	l.Store(9)
	l.Advance()
	l.Store(9)
	l.Reset()

	if l.Cursor() != 0 {
		t.Fatalf("cursor after reset: %d", l.Cursor())
	}

	for i := 0; i < 4; i++ {
		if l.At(i) != 0 {
			t.Fatalf("cell %d after reset: %d", i, l.At(i))
		}
	}
}

// --- benchmarks ---

func BenchmarkStoreAdvance(b *testing.B) {
	l, _ := New(48000)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		l.Store(uint16(i))
		l.Advance()
	}
}

func BenchmarkTapIndex(b *testing.B) {
	l, _ := New(48000)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = l.TapIndex(2000)
	}
}
