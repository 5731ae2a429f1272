package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"github.com/rs/zerolog"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/ytget/emoji-desktop/internal/board"
	"github.com/ytget/emoji-desktop/internal/model"
)

// BoardView renders a board: the background stretched over the canvas, one
// ImageLabel per placed image in z-order and a frame around the group.
type BoardView struct {
	board *board.Board
	log   zerolog.Logger

	surface    *canvas.Rectangle
	background *canvas.Image
	groupFrame *canvas.Rectangle
	container  *fyne.Container

	labels    map[string]*ImageLabel
	animate   bool
	animation *fyne.Animation
}

// labelTween moves one label between two positions
type labelTween struct {
	label *ImageLabel
	x, y  *gween.Tween
}

// NewBoardView creates a view over b
func NewBoardView(b *board.Board, log zerolog.Logger) *BoardView {
	bv := &BoardView{
		board:   b,
		log:     log,
		labels:  make(map[string]*ImageLabel),
		animate: true,
	}
	bv.createUI()
	bv.Rebuild()
	return bv
}

// createUI creates the static canvas objects
func (bv *BoardView) createUI() {
	bv.surface = canvas.NewRectangle(color.Transparent)

	bv.background = canvas.NewImageFromImage(nil)
	bv.background.FillMode = canvas.ImageFillStretch
	bv.background.Hide()

	bv.groupFrame = canvas.NewRectangle(color.Transparent)
	bv.groupFrame.StrokeColor = GroupFrameColor
	bv.groupFrame.StrokeWidth = GroupFrameWidth
	bv.groupFrame.Hide()

	bv.container = container.NewWithoutLayout(bv.surface, bv.background, bv.groupFrame)
}

// Container returns the container holding the board objects
func (bv *BoardView) Container() *fyne.Container {
	return bv.container
}

// SetAnimate enables or disables the group layout animation
func (bv *BoardView) SetAnimate(enabled bool) {
	bv.animate = enabled
}

// Label returns the label showing the image with the given ID
func (bv *BoardView) Label(imageID string) (*ImageLabel, bool) {
	label, ok := bv.labels[imageID]
	return label, ok
}

// Labels returns the labels in z-order
func (bv *BoardView) Labels() []*ImageLabel {
	images := bv.board.Images()
	out := make([]*ImageLabel, 0, len(images))
	for _, img := range images {
		if label, ok := bv.labels[img.ID]; ok {
			out = append(out, label)
		}
	}
	return out
}

// Positions returns the current board position of every image
func (bv *BoardView) Positions() map[string]model.Position {
	positions := make(map[string]model.Position)
	for _, img := range bv.board.Images() {
		positions[img.ID] = img.Position
	}
	return positions
}

// Rebuild syncs labels with the board: new images get labels, replaced
// images lose theirs, every label is refreshed and repositioned.
func (bv *BoardView) Rebuild() {
	w, h := bv.board.Size()
	size := fyne.NewSize(float32(w), float32(h))
	bv.surface.SetMinSize(size)
	bv.surface.Resize(size)

	if bg := bv.board.Background(); bg != nil {
		bv.background.Image = bg
		bv.background.Resize(size)
		bv.background.Show()
		bv.background.Refresh()
	} else {
		bv.background.Hide()
	}

	images := bv.board.Images()
	labels := make(map[string]*ImageLabel, len(images))
	objects := []fyne.CanvasObject{bv.surface, bv.background}
	for _, img := range images {
		label, ok := bv.labels[img.ID]
		if !ok {
			label = NewImageLabel(img)
			label.SetCallbacks(bv.onLabelDrag, bv.onLabelRelease)
		}
		labels[img.ID] = label
		objects = append(objects, label)
	}
	objects = append(objects, bv.groupFrame)

	bv.labels = labels
	bv.container.Objects = objects

	for _, label := range labels {
		label.Refresh()
	}
	bv.syncPositions()
	bv.container.Refresh()
}

// syncPositions moves every label to its board position
func (bv *BoardView) syncPositions() {
	for _, label := range bv.labels {
		img := label.Image()
		label.Move(fyne.NewPos(float32(img.Position.X), float32(img.Position.Y)))
		label.Resize(label.MinSize())
	}
	bv.updateGroupFrame()
}

// updateGroupFrame draws the frame around the group bounds
func (bv *BoardView) updateGroupFrame() {
	bounds := bv.board.GroupBounds()
	if bounds.Empty() {
		bv.groupFrame.Hide()
		return
	}
	bv.groupFrame.Move(fyne.NewPos(float32(bounds.Min.X)-GroupFramePadding, float32(bounds.Min.Y)-GroupFramePadding))
	bv.groupFrame.Resize(fyne.NewSize(float32(bounds.Dx())+2*GroupFramePadding, float32(bounds.Dy())+2*GroupFramePadding))
	bv.groupFrame.Show()
	bv.groupFrame.Refresh()
}

// AnimateFrom slides labels from the given positions to their board
// positions. Images without a start position jump directly.
func (bv *BoardView) AnimateFrom(from map[string]model.Position) {
	bv.stopAnimation()
	if !bv.animate || len(from) == 0 {
		bv.syncPositions()
		return
	}

	tweens := make([]labelTween, 0, len(bv.labels))
	for id, label := range bv.labels {
		start, ok := from[id]
		if !ok {
			continue
		}
		end := label.Image().Position
		tweens = append(tweens, labelTween{
			label: label,
			x:     gween.New(float32(start.X), float32(end.X), 1, ease.InOutCubic),
			y:     gween.New(float32(start.Y), float32(end.Y), 1, ease.InOutCubic),
		})
		label.Move(fyne.NewPos(float32(start.X), float32(start.Y)))
	}
	bv.groupFrame.Hide()

	var last float32
	bv.animation = fyne.NewAnimation(GroupAnimationDuration, func(progress float32) {
		dt := progress - last
		last = progress
		for _, t := range tweens {
			x, _ := t.x.Update(dt)
			y, _ := t.y.Update(dt)
			t.label.Move(fyne.NewPos(x, y))
		}
		if progress >= 1 {
			bv.syncPositions()
		}
	})
	bv.animation.Curve = fyne.AnimationLinear
	bv.animation.Start()
}

func (bv *BoardView) stopAnimation() {
	if bv.animation != nil {
		bv.animation.Stop()
		bv.animation = nil
	}
}

// onLabelDrag moves the dragged image (or its group) on the board
func (bv *BoardView) onLabelDrag(imageID string, dx, dy int) {
	bv.stopAnimation()
	if !bv.board.Move(imageID, dx, dy) {
		bv.log.Warn().Str("id", imageID).Msg("drag on unknown image")
		return
	}
	bv.syncPositions()
}

// onLabelRelease ends a gesture; clicks have no action
func (bv *BoardView) onLabelRelease(imageID string, dragged bool) {
	img, ok := bv.board.Get(imageID)
	if !ok {
		return
	}
	if dragged {
		bv.log.Debug().Str("id", imageID).Int("x", img.Position.X).Int("y", img.Position.Y).Msg("drag finished")
		return
	}
	bv.log.Debug().Str("id", imageID).Msg("image clicked")
}
