package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 10); got != 5 {
		t.Fatalf("inside: got %v want 5", got)
	}

	if got := Clamp(-3, 0, 10); got != 0 {
		t.Fatalf("below: got %v want 0", got)
	}

	if got := Clamp(42, 0, 10); got != 10 {
		t.Fatalf("above: got %v want 10", got)
	}

	// Swapped bounds are normalized.
	if got := Clamp(5, 10, 0); got != 5 {
		t.Fatalf("swapped: got %v want 5", got)
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Fatal("expected nearly equal")
	}

	if NearlyEqual(1.0, 1.1, 1e-12) {
		t.Fatal("expected not nearly equal")
	}
}

func TestLinearToDB(t *testing.T) {
	if got := LinearToDB(1); got != 0 {
		t.Fatalf("unity: got %v want 0", got)
	}

	if got := LinearToDB(0); !math.IsInf(got, -1) {
		t.Fatalf("zero: got %v want -Inf", got)
	}

	if got := LinearToDB(-1); !math.IsNaN(got) {
		t.Fatalf("negative: got %v want NaN", got)
	}

	// 0.4 is the per-tap echo gain; about -7.96 dB.
	if got := LinearToDB(0.4); math.Abs(got+7.9588) > 1e-3 {
		t.Fatalf("0.4: got %v want about -7.96", got)
	}
}
