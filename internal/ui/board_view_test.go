package ui

import (
	"image"
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/rs/zerolog"

	"github.com/ytget/emoji-desktop/internal/board"
	"github.com/ytget/emoji-desktop/internal/model"
)

func solidImage(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func newTestView(t *testing.T, count int) (*board.Board, *BoardView) {
	t.Helper()
	test.NewApp()

	b := board.New(board.DefaultWidth, board.DefaultHeight, zerolog.Nop())
	for i := 0; i < count; i++ {
		b.Place(solidImage(40, 30, color.NRGBA{R: 255, A: 255}))
	}
	bv := NewBoardView(b, zerolog.Nop())
	bv.SetAnimate(false)
	return b, bv
}

func labelPosition(label *ImageLabel) model.Position {
	pos := label.Position()
	return model.Position{X: int(pos.X), Y: int(pos.Y)}
}

func TestBoardView_RebuildCreatesLabels(t *testing.T) {
	b, bv := newTestView(t, 3)

	labels := bv.Labels()
	if len(labels) != 3 {
		t.Fatalf("Expected 3 labels, got %d", len(labels))
	}

	for i, img := range b.Images() {
		if labels[i].Image() != img {
			t.Errorf("Label %d shows %s, expected %s", i, labels[i].Image().ID, img.ID)
		}
		if pos := labelPosition(labels[i]); pos != img.Position {
			t.Errorf("Label %d at %v, expected %v", i, pos, img.Position)
		}
		if size := labels[i].Size(); size != fyne.NewSize(40, 30) {
			t.Errorf("Label %d size %v, expected 40x30", i, size)
		}
	}
}

func TestBoardView_ZOrder(t *testing.T) {
	b, bv := newTestView(t, 2)

	objects := bv.Container().Objects
	// surface, background, two labels, group frame
	if len(objects) != 5 {
		t.Fatalf("Expected 5 objects, got %d", len(objects))
	}
	images := b.Images()
	if objects[2].(*ImageLabel).Image() != images[0] || objects[3].(*ImageLabel).Image() != images[1] {
		t.Error("Labels should follow board list order")
	}
}

func TestBoardView_DragMovesImage(t *testing.T) {
	b, bv := newTestView(t, 1)
	img := b.Images()[0]
	start := img.Position

	label, ok := bv.Label(img.ID)
	if !ok {
		t.Fatal("Label not found")
	}

	label.Dragged(&fyne.DragEvent{Dragged: fyne.NewDelta(10, 5)})
	label.DragEnd()

	expected := start.Add(10, 5)
	if img.Position != expected {
		t.Errorf("Image at %v after drag, expected %v", img.Position, expected)
	}
	if pos := labelPosition(label); pos != expected {
		t.Errorf("Label at %v after drag, expected %v", pos, expected)
	}
}

func TestBoardView_DragMovesGroup(t *testing.T) {
	b, bv := newTestView(t, 2)
	if !b.GroupImages() {
		t.Fatal("GroupImages should group two images")
	}
	bv.Rebuild()

	images := b.Images()
	before := []model.Position{images[0].Position, images[1].Position}

	label, _ := bv.Label(images[1].ID)
	label.Dragged(&fyne.DragEvent{Dragged: fyne.NewDelta(-4, 7)})
	label.DragEnd()

	for i, img := range images {
		expected := before[i].Add(-4, 7)
		if img.Position != expected {
			t.Errorf("Member %d at %v, expected %v", i, img.Position, expected)
		}
	}
}

func TestBoardView_AnimateFromWithoutAnimationSnaps(t *testing.T) {
	b, bv := newTestView(t, 2)
	before := bv.Positions()

	b.GroupImages()
	bv.Rebuild()
	bv.AnimateFrom(before)

	for _, img := range b.Images() {
		label, _ := bv.Label(img.ID)
		if pos := labelPosition(label); pos != img.Position {
			t.Errorf("Label at %v, expected final position %v", pos, img.Position)
		}
	}
}

func TestBoardView_ScaleReplacesLabels(t *testing.T) {
	b, bv := newTestView(t, 1)
	oldID := b.Images()[0].ID

	if err := b.ScaleAll(2); err != nil {
		t.Fatalf("ScaleAll failed: %v", err)
	}
	bv.Rebuild()

	if _, ok := bv.Label(oldID); ok {
		t.Error("Label of replaced image should be dropped")
	}
	img := b.Images()[0]
	label, ok := bv.Label(img.ID)
	if !ok {
		t.Fatal("Replacement should get a label")
	}
	if size := label.Size(); size != fyne.NewSize(80, 60) {
		t.Errorf("Scaled label size %v, expected 80x60", size)
	}
}

func TestImageLabel_ClickDoesNotMove(t *testing.T) {
	test.NewApp()
	img := model.NewPlacedImage(solidImage(10, 10, color.NRGBA{A: 255}), model.Position{}, model.Overlay{})
	label := NewImageLabel(img)

	var moved [2]int
	var released, dragged bool
	label.SetCallbacks(
		func(id string, dx, dy int) { moved[0] += dx; moved[1] += dy },
		func(id string, d bool) { released = true; dragged = d },
	)

	label.Dragged(&fyne.DragEvent{Dragged: fyne.NewDelta(1, 1)})
	label.DragEnd()

	if !released {
		t.Fatal("Release callback not called")
	}
	if dragged {
		t.Error("2px displacement should be a click")
	}
	if moved != [2]int{1, 1} {
		t.Errorf("Deltas forwarded = %v, expected [1 1]", moved)
	}
}

func TestImageLabel_ReleasedOnceWhenMouseUpPrecedesDragEnd(t *testing.T) {
	test.NewApp()
	img := model.NewPlacedImage(solidImage(10, 10, color.NRGBA{A: 255}), model.Position{}, model.Overlay{})
	label := NewImageLabel(img)

	var releases []bool
	label.SetCallbacks(nil, func(id string, dragged bool) { releases = append(releases, dragged) })

	primary := &desktop.MouseEvent{Button: desktop.MouseButtonPrimary}
	label.MouseDown(primary)
	label.Dragged(&fyne.DragEvent{Dragged: fyne.NewDelta(20, 0)})
	label.MouseUp(primary)
	label.DragEnd()

	if len(releases) != 1 {
		t.Fatalf("Expected one release, got %d: %v", len(releases), releases)
	}
	if !releases[0] {
		t.Error("20px displacement should be reported as a drag")
	}
}

func TestImageLabel_ReleasedOnceWhenDragEndPrecedesMouseUp(t *testing.T) {
	test.NewApp()
	img := model.NewPlacedImage(solidImage(10, 10, color.NRGBA{A: 255}), model.Position{}, model.Overlay{})
	label := NewImageLabel(img)

	releases := 0
	label.SetCallbacks(nil, func(string, bool) { releases++ })

	primary := &desktop.MouseEvent{Button: desktop.MouseButtonPrimary}
	label.MouseDown(primary)
	label.Dragged(&fyne.DragEvent{Dragged: fyne.NewDelta(0, 20)})
	label.DragEnd()
	label.MouseUp(primary)

	if releases != 1 {
		t.Errorf("Expected one release, got %d", releases)
	}
}

func TestImageLabel_MinSizeFollowsRaster(t *testing.T) {
	test.NewApp()
	img := model.NewPlacedImage(solidImage(64, 32, color.NRGBA{A: 255}), model.Position{}, model.Overlay{})
	label := NewImageLabel(img)

	if size := label.MinSize(); size != fyne.NewSize(64, 32) {
		t.Errorf("MinSize() = %v, expected 64x32", size)
	}
}
