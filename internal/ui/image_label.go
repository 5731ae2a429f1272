package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/emoji-desktop/internal/model"
)

// ImageLabel shows one placed image: its fill, its raster and a selection
// outline. It forwards drag gestures and never mutates the image itself.
type ImageLabel struct {
	widget.BaseWidget

	image   *model.PlacedImage
	tracker *DragTracker

	// Callbacks
	onDrag    func(imageID string, dx, dy int)
	onRelease func(imageID string, dragged bool)
}

var (
	_ fyne.Draggable    = (*ImageLabel)(nil)
	_ desktop.Mouseable = (*ImageLabel)(nil)
)

// NewImageLabel creates a label for img
func NewImageLabel(img *model.PlacedImage) *ImageLabel {
	il := &ImageLabel{
		image:   img,
		tracker: NewDragTracker(),
	}
	il.ExtendBaseWidget(il)
	return il
}

// SetCallbacks sets the gesture callbacks
func (il *ImageLabel) SetCallbacks(onDrag func(imageID string, dx, dy int), onRelease func(imageID string, dragged bool)) {
	il.onDrag = onDrag
	il.onRelease = onRelease
}

// Image returns the placed image shown by the label
func (il *ImageLabel) Image() *model.PlacedImage {
	return il.image
}

// MouseDown starts a gesture on the primary button
func (il *ImageLabel) MouseDown(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary {
		return
	}
	il.tracker.Press()
}

// MouseUp ends a gesture that did not end through DragEnd
func (il *ImageLabel) MouseUp(ev *desktop.MouseEvent) {
	if ev.Button != desktop.MouseButtonPrimary || !il.tracker.Active() {
		return
	}
	il.release()
}

// Dragged moves the image by the pointer delta
func (il *ImageLabel) Dragged(ev *fyne.DragEvent) {
	dx, dy := il.tracker.Move(ev.Dragged)
	if (dx != 0 || dy != 0) && il.onDrag != nil {
		il.onDrag(il.image.ID, dx, dy)
	}
}

// DragEnd finishes a gesture that did not already end through MouseUp
func (il *ImageLabel) DragEnd() {
	if !il.tracker.Active() {
		return
	}
	il.release()
}

func (il *ImageLabel) release() {
	dragged := il.tracker.Release()
	if il.onRelease != nil {
		il.onRelease(il.image.ID, dragged)
	}
}

// MinSize returns the raster size
func (il *ImageLabel) MinSize() fyne.Size {
	return rasterSize(il.image)
}

// CreateRenderer creates the widget renderer
func (il *ImageLabel) CreateRenderer() fyne.WidgetRenderer {
	r := &imageLabelRenderer{
		label:   il,
		fill:    canvas.NewRectangle(color.Transparent),
		outline: canvas.NewRectangle(color.Transparent),
	}
	r.picture = canvas.NewImageFromImage(nil)
	r.picture.FillMode = canvas.ImageFillStretch
	r.picture.ScaleMode = canvas.ImageScalePixels
	r.outline.StrokeColor = SelectionColor
	r.outline.StrokeWidth = SelectionStrokeWidth
	r.Refresh()
	return r
}

func rasterSize(img *model.PlacedImage) fyne.Size {
	if img == nil {
		return fyne.NewSize(0, 0)
	}
	return fyne.NewSize(float32(img.Width()), float32(img.Height()))
}

// imageLabelRenderer renders the image label widget
type imageLabelRenderer struct {
	label   *ImageLabel
	fill    *canvas.Rectangle
	picture *canvas.Image
	outline *canvas.Rectangle
}

func (r *imageLabelRenderer) Layout(size fyne.Size) {
	for _, obj := range r.Objects() {
		obj.Move(fyne.NewPos(0, 0))
		obj.Resize(size)
	}
}

func (r *imageLabelRenderer) MinSize() fyne.Size {
	return rasterSize(r.label.image)
}

// Refresh copies fill, raster and selection from the placed image
func (r *imageLabelRenderer) Refresh() {
	img := r.label.image
	if img == nil {
		return
	}

	if img.Fill != nil {
		r.fill.FillColor = img.Fill
	} else {
		r.fill.FillColor = color.Transparent
	}

	if img.Raster != nil {
		r.picture.Image = img.Raster
	}

	if img.Selected {
		r.outline.Show()
	} else {
		r.outline.Hide()
	}

	r.fill.Refresh()
	r.picture.Refresh()
	r.outline.Refresh()
}

func (r *imageLabelRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.fill, r.picture, r.outline}
}

func (r *imageLabelRenderer) Destroy() {}
