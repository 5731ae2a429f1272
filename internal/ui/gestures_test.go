package ui

import (
	"testing"

	"fyne.io/fyne/v2"
)

func TestDragTracker_Classification(t *testing.T) {
	tests := []struct {
		name     string
		moves    []fyne.Delta
		expected bool
	}{
		{"no movement is a click", nil, false},
		{"exactly threshold is a click", []fyne.Delta{{DX: 2, DY: 1}}, false},
		{"just above threshold is a drag", []fyne.Delta{{DX: 2, DY: 1.5}}, true},
		{"negative deltas count by magnitude", []fyne.Delta{{DX: -3, DY: -1}}, true},
		{"back and forth accumulates displacement", []fyne.Delta{{DX: 5}, {DX: -5}}, false},
	}

	for _, test := range tests {
		dt := NewDragTracker()
		dt.Press()
		for _, move := range test.moves {
			dt.Move(move)
		}
		if got := dt.Release(); got != test.expected {
			t.Errorf("%s: Release() = %v, expected %v", test.name, got, test.expected)
		}
	}
}

func TestDragTracker_WholePixelMoves(t *testing.T) {
	dt := NewDragTracker()
	dt.Press()

	dx, dy := dt.Move(fyne.NewDelta(0.6, 0.4))
	if dx != 0 || dy != 0 {
		t.Errorf("Move(0.6, 0.4) = %d, %d, expected 0, 0", dx, dy)
	}

	dx, dy = dt.Move(fyne.NewDelta(0.6, 0.7))
	if dx != 1 || dy != 1 {
		t.Errorf("Carried fractions should give 1, 1, got %d, %d", dx, dy)
	}

	dx, dy = dt.Move(fyne.NewDelta(-2.5, 3))
	if dx != -2 || dy != 3 {
		t.Errorf("Move(-2.5, 3) = %d, %d, expected -2, 3", dx, dy)
	}
}

func TestDragTracker_MoveWithoutPress(t *testing.T) {
	dt := NewDragTracker()
	if dt.Active() {
		t.Fatal("New tracker should be inactive")
	}

	dt.Move(fyne.NewDelta(10, 0))
	if !dt.Active() {
		t.Error("Move should start a gesture")
	}
	if !dt.Release() {
		t.Error("10px move should be a drag")
	}
	if dt.Release() {
		t.Error("Second release without gesture should report false")
	}
}

func TestDragTracker_PressResets(t *testing.T) {
	dt := NewDragTracker()
	dt.Press()
	dt.Move(fyne.NewDelta(20, 20))
	dt.Release()

	dt.Press()
	if d := dt.Distance(); d != 0 {
		t.Errorf("Distance after Press = %v, expected 0", d)
	}
}
