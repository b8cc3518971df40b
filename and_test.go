package rlebitmap

import "testing"

func TestAnd_NoInputs(t *testing.T) {
	got, err := And()
	if err != nil {
		t.Fatalf("And(): %v", err)
	}
	checkBitmap(t, got, RleBitmap{})
}

func TestAnd_WithEmptyIsEmpty(t *testing.T) {
	a := mustBitmap(t, 0, 4, 2, 3)
	got, err := And(a, RleBitmap{})
	if err != nil {
		t.Fatalf("And: %v", err)
	}
	checkBitmap(t, got, RleBitmap{})
}

func TestAnd_Idempotent(t *testing.T) {
	a := mustBitmap(t, 0, 4, 2, 3)
	got, err := And(a, a)
	if err != nil {
		t.Fatalf("And: %v", err)
	}
	checkBitmap(t, got, a)
}

// Scenario #2 of the end-to-end corpus (spec §8) — same inputs as
// TestOr_ThreeInputs, no bit is set in all three.
func TestAnd_ThreeInputs_Disjoint(t *testing.T) {
	a := mustBitmap(t, 10, 2)
	b := mustBitmap(t, 15, 1)
	c := mustBitmap(t, 0, 4, 12, 2)
	got, err := And(a, b, c)
	if err != nil {
		t.Fatalf("And: %v", err)
	}
	checkBitmap(t, got, RleBitmap{})
}

// Scenario #5.
func TestAnd_Overlapping(t *testing.T) {
	a := mustBitmap(t, 0, 4)
	b := mustBitmap(t, 2, 4)
	got, err := And(a, b)
	if err != nil {
		t.Fatalf("And: %v", err)
	}
	checkBitmap(t, got, RleBitmap{2, 2})
}

// Scenario #9 — exercises early termination when a cursor is exhausted
// mid-run, and the subsequent canonicalization of the resulting trailing
// zero-run.
func TestAnd_EarlyTermination(t *testing.T) {
	a := mustBitmap(t, 1, 2, 3)
	b := mustBitmap(t, 1, 2, 4, 1)
	got, err := And(a, b)
	if err != nil {
		t.Fatalf("And: %v", err)
	}
	checkBitmap(t, got, RleBitmap{1, 2})
}

func TestAnd_AllZeroShortCircuits(t *testing.T) {
	a := mustBitmap(t, 5)
	b := mustBitmap(t, 0, 4)
	got, err := And(a, b)
	if err != nil {
		t.Fatalf("And: %v", err)
	}
	checkBitmap(t, got, RleBitmap{})
}
