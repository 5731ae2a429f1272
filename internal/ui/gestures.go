package ui

import (
	"math"

	"fyne.io/fyne/v2"
)

// DefaultDragThreshold is the Manhattan distance above which a press-release
// sequence counts as a drag rather than a click.
const DefaultDragThreshold float32 = 3

// DragTracker turns pointer deltas into whole-pixel moves and classifies the
// finished gesture as a drag or a click.
type DragTracker struct {
	active    bool
	total     fyne.Delta
	remainder fyne.Delta
	threshold float32
}

// NewDragTracker creates a tracker with the default threshold
func NewDragTracker() *DragTracker {
	return &DragTracker{threshold: DefaultDragThreshold}
}

// Press starts tracking a gesture
func (dt *DragTracker) Press() {
	dt.active = true
	dt.total = fyne.Delta{}
	dt.remainder = fyne.Delta{}
}

// Move records a pointer delta and returns the whole pixels to move by.
// Fractions are carried to the next call. A move without a press starts a
// gesture.
func (dt *DragTracker) Move(delta fyne.Delta) (int, int) {
	if !dt.active {
		dt.Press()
	}
	dt.total.DX += delta.DX
	dt.total.DY += delta.DY

	dt.remainder.DX += delta.DX
	dt.remainder.DY += delta.DY
	dx := int(dt.remainder.DX)
	dy := int(dt.remainder.DY)
	dt.remainder.DX -= float32(dx)
	dt.remainder.DY -= float32(dy)
	return dx, dy
}

// Release ends the gesture and reports whether it was a drag. Releasing
// without an active gesture reports false.
func (dt *DragTracker) Release() bool {
	if !dt.active {
		return false
	}
	dt.active = false
	return dt.Distance() > dt.threshold
}

// Active reports whether a gesture is in progress
func (dt *DragTracker) Active() bool {
	return dt.active
}

// Distance returns the Manhattan length of the displacement so far
func (dt *DragTracker) Distance() float32 {
	return float32(math.Abs(float64(dt.total.DX)) + math.Abs(float64(dt.total.DY)))
}
