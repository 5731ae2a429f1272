package board

import (
	"fmt"
	"image"
	"image/color"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/ytget/emoji-desktop/internal/model"
	"github.com/ytget/emoji-desktop/internal/raster"
)

// Canvas defaults
const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

// CaptionOrigin is where the first caption line is stamped on every image
var CaptionOrigin = image.Pt(10, 10)

// BoundsObserver is notified after an image's on-canvas bounds changed
// because it was resized or reparented into a group.
type BoundsObserver func(img *model.PlacedImage)

// Board holds placed images in z-order
type Board struct {
	width      int
	height     int
	background image.Image
	images     []*model.PlacedImage
	group      *model.Group
	svgSize    int
	autoDouble bool
	intn       func(n int) int
	observers  []BoundsObserver
	notifying  bool
	log        zerolog.Logger
}

// New creates an empty board of the given size. The board subscribes its own
// caption restamp to bounds changes.
func New(width, height int, log zerolog.Logger) *Board {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	b := &Board{
		width:  width,
		height: height,
		images: make([]*model.PlacedImage, 0),
		intn:   rand.Intn,
		log:    log,
	}
	b.OnBoundsChanged(b.restampCaption)
	return b
}

// Size returns the canvas size in pixels
func (b *Board) Size() (int, int) {
	return b.width, b.height
}

// SetBackground sets the background raster, nil to clear
func (b *Board) SetBackground(img image.Image) {
	b.background = img
}

// Background returns the background raster or nil
func (b *Board) Background() image.Image {
	return b.background
}

// SetSVGSize sets the rasterization size for SVG images, 0 for viewBox size
func (b *Board) SetSVGSize(size int) {
	b.svgSize = size
}

// SetAutoDouble enables doubling an image's raster whenever its bounds change.
// Off by default.
func (b *Board) SetAutoDouble(enabled bool) {
	b.autoDouble = enabled
}

// AutoDouble reports whether auto doubling is enabled
func (b *Board) AutoDouble() bool {
	return b.autoDouble
}

// OnBoundsChanged registers a bounds observer
func (b *Board) OnBoundsChanged(observer BoundsObserver) {
	if observer != nil {
		b.observers = append(b.observers, observer)
	}
}

// Len returns the number of placed images
func (b *Board) Len() int {
	return len(b.images)
}

// Images returns the placed images in z-order (later drawn on top)
func (b *Board) Images() []*model.PlacedImage {
	out := make([]*model.PlacedImage, len(b.images))
	copy(out, b.images)
	return out
}

// Get returns a placed image by ID
func (b *Board) Get(id string) (*model.PlacedImage, bool) {
	_, img := b.find(id)
	return img, img != nil
}

// Group returns the current group or nil
func (b *Board) Group() *model.Group {
	return b.group
}

// PlaceBytes decodes fetched bytes and places the result
func (b *Board) PlaceBytes(data []byte) (*model.PlacedImage, error) {
	img, err := raster.Decode(data, b.svgSize)
	if err != nil {
		return nil, fmt.Errorf("place image: %w", err)
	}
	return b.Place(img), nil
}

// Place computes the overlay of src, bakes it onto a copy, positions the
// result at random inside the canvas and appends it on top.
func (b *Board) Place(src *image.NRGBA) *model.PlacedImage {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	overlay := model.Overlay{
		SizeText:  model.FormatSizeText(w, h),
		ColorText: model.FormatColorText(raster.HexColor(raster.AverageColor(src))),
	}

	baked := raster.StampLines(src, []string{overlay.SizeText, overlay.ColorText}, CaptionOrigin)
	img := model.NewPlacedImage(baked, b.RandomPosition(w, h), overlay)
	b.images = append(b.images, img)

	b.log.Info().
		Str("id", img.ID).
		Int("x", img.Position.X).
		Int("y", img.Position.Y).
		Str("size", overlay.SizeText).
		Str("color", overlay.ColorText).
		Msg("image placed")
	return img
}

// RandomPosition picks a top-left corner uniformly in
// [0, width-w] x [0, height-h]. An axis where the image is larger than the
// canvas is pinned to 0.
func (b *Board) RandomPosition(w, h int) model.Position {
	return model.Position{
		X: b.randomOffset(b.width - w),
		Y: b.randomOffset(b.height - h),
	}
}

func (b *Board) randomOffset(span int) int {
	if span <= 0 {
		return 0
	}
	return b.intn(span + 1)
}

// Move translates an image by dx, dy. Moving a grouped image moves the whole
// group. Overlays are not recomputed.
func (b *Board) Move(id string, dx, dy int) bool {
	_, img := b.find(id)
	if img == nil {
		return false
	}
	if img.IsGrouped() && b.group != nil && b.group.ID == img.GroupID {
		b.group.Translate(dx, dy)
		b.layoutGroup()
		return true
	}
	img.Position = img.Position.Add(dx, dy)
	return true
}

// RecolorAll sets the background fill of every placed image
func (b *Board) RecolorAll(c color.Color) {
	for _, img := range b.images {
		img.Fill = c
	}
	b.log.Debug().Str("color", raster.HexColor(c)).Int("images", len(b.images)).Msg("recolored")
}

// ToggleSelected flips the selection flag of an image
func (b *Board) ToggleSelected(id string) bool {
	_, img := b.find(id)
	if img == nil {
		return false
	}
	return img.ToggleSelected()
}

func (b *Board) find(id string) (int, *model.PlacedImage) {
	for i, img := range b.images {
		if img.ID == id {
			return i, img
		}
	}
	return -1, nil
}
