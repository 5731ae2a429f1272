package model

import (
	"fmt"
	"image"
	"image/color"

	"github.com/google/uuid"
)

// Position is an integer offset in canvas coordinates
type Position struct {
	X int
	Y int
}

// Add returns the position translated by dx, dy
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Point converts the position to an image.Point
func (p Position) Point() image.Point {
	return image.Pt(p.X, p.Y)
}

// Overlay holds the caption text baked into a placed image's pixels
type Overlay struct {
	SizeText  string // e.g. "size: 64 x 64"
	ColorText string // e.g. "color: #ff0000"
}

// FormatSizeText returns the size caption for the given dimensions
func FormatSizeText(width, height int) string {
	return fmt.Sprintf("size: %d x %d", width, height)
}

// FormatColorText returns the color caption for a hex color name
func FormatColorText(hex string) string {
	return "color: " + hex
}

// PlacedImage is one image on the canvas: its raster, position and overlay.
// Records are owned by the board; the UI only renders them.
type PlacedImage struct {
	ID       string
	Raster   *image.NRGBA
	Position Position
	Overlay  Overlay
	Fill     color.Color // background fill behind transparent pixels, nil if unset
	Selected bool
	GroupID  string // empty when the image is not grouped
}

// NewPlacedImage creates a placed image with a fresh ID
func NewPlacedImage(raster *image.NRGBA, pos Position, overlay Overlay) *PlacedImage {
	return &PlacedImage{
		ID:       uuid.NewString(),
		Raster:   raster,
		Position: pos,
		Overlay:  overlay,
	}
}

// Width returns the raster width in pixels
func (p *PlacedImage) Width() int {
	if p.Raster == nil {
		return 0
	}
	return p.Raster.Bounds().Dx()
}

// Height returns the raster height in pixels
func (p *PlacedImage) Height() int {
	if p.Raster == nil {
		return 0
	}
	return p.Raster.Bounds().Dy()
}

// Bounds returns the image rectangle in canvas coordinates
func (p *PlacedImage) Bounds() image.Rectangle {
	return image.Rect(p.Position.X, p.Position.Y, p.Position.X+p.Width(), p.Position.Y+p.Height())
}

// Replacement returns a new instance carrying this image's position, overlay,
// fill, selection and group but holding the given raster.
// The overlay text is not recomputed.
func (p *PlacedImage) Replacement(raster *image.NRGBA) *PlacedImage {
	next := NewPlacedImage(raster, p.Position, p.Overlay)
	next.Fill = p.Fill
	next.Selected = p.Selected
	next.GroupID = p.GroupID
	return next
}

// SetSelected sets the selection flag
func (p *PlacedImage) SetSelected(selected bool) {
	p.Selected = selected
}

// ToggleSelected flips the selection flag and returns the new value
func (p *PlacedImage) ToggleSelected() bool {
	p.Selected = !p.Selected
	return p.Selected
}

// IsGrouped reports whether the image belongs to a group
func (p *PlacedImage) IsGrouped() bool {
	return p.GroupID != ""
}
