package board

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/emoji-desktop/internal/model"
	"github.com/ytget/emoji-desktop/internal/raster"
)

var (
	red   = color.NRGBA{R: 0xff, A: 0xff}
	green = color.NRGBA{G: 0xff, A: 0xff}
	blue  = color.NRGBA{B: 0xff, A: 0xff}
)

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func newBoard(t *testing.T) *Board {
	t.Helper()
	return New(800, 600, zerolog.Nop())
}

// fixedOffsets makes placement deterministic: each call returns the next value
func fixedOffsets(values ...int) func(int) int {
	i := 0
	return func(n int) int {
		v := values[i%len(values)]
		i++
		if v >= n {
			return n - 1
		}
		return v
	}
}

func TestNew_Defaults(t *testing.T) {
	b := New(0, -1, zerolog.Nop())
	w, h := b.Size()
	assert.Equal(t, DefaultWidth, w)
	assert.Equal(t, DefaultHeight, h)
	assert.Equal(t, 0, b.Len())
	assert.Nil(t, b.Group())
	assert.False(t, b.AutoDouble())
}

func TestPlace_RedSquareOverlay(t *testing.T) {
	b := newBoard(t)

	img := b.Place(solid(64, 64, red))

	assert.Equal(t, "size: 64 x 64", img.Overlay.SizeText)
	assert.Equal(t, "color: #ff0000", img.Overlay.ColorText)
	assert.Equal(t, 64, img.Width())
	assert.Equal(t, 64, img.Height())
	assert.Equal(t, 1, b.Len())

	// caption is baked into the pixels
	assert.NotEqual(t, red, img.Raster.NRGBAAt(CaptionOrigin.X+1, CaptionOrigin.Y+1))
	assert.Equal(t, red, img.Raster.NRGBAAt(60, 60))
}

func TestPlace_DoesNotMutateInput(t *testing.T) {
	b := newBoard(t)
	src := solid(64, 64, red)

	b.Place(src)

	assert.Equal(t, red, src.NRGBAAt(CaptionOrigin.X+1, CaptionOrigin.Y+1))
}

func TestPlace_StaysInsideCanvas(t *testing.T) {
	b := newBoard(t)
	canvas := image.Rect(0, 0, 800, 600)

	for i := 0; i < 300; i++ {
		img := b.Place(solid(72, 50, red))
		assert.True(t, img.Bounds().In(canvas), "image %d at %v escapes canvas", i, img.Bounds())
	}
}

func TestRandomPosition_UsesFullRange(t *testing.T) {
	b := newBoard(t)
	var spans []int
	b.intn = func(n int) int {
		spans = append(spans, n)
		return n - 1
	}

	pos := b.RandomPosition(100, 50)

	assert.Equal(t, []int{701, 551}, spans)
	assert.Equal(t, model.Position{X: 700, Y: 550}, pos)
}

func TestRandomPosition_ClampsOversized(t *testing.T) {
	b := New(100, 100, zerolog.Nop())
	b.intn = func(n int) int { return n - 1 }

	assert.Equal(t, model.Position{X: 0, Y: 0}, b.RandomPosition(300, 200))
	assert.Equal(t, model.Position{X: 0, Y: 50}, b.RandomPosition(300, 50))
	assert.Equal(t, model.Position{X: 0, Y: 0}, b.RandomPosition(100, 100))
}

func TestPlaceBytes(t *testing.T) {
	b := newBoard(t)

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, solid(16, 8, blue)))

	img, err := b.PlaceBytes(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, "size: 16 x 8", img.Overlay.SizeText)
	assert.Equal(t, "color: #0000ff", img.Overlay.ColorText)

	_, err = b.PlaceBytes([]byte("garbage"))
	assert.ErrorIs(t, err, raster.ErrDecode)
	assert.Equal(t, 1, b.Len())
}

func TestScaleAll_ReplacesInPlace(t *testing.T) {
	b := newBoard(t)
	b.intn = fixedOffsets(40, 30, 200, 100)

	first := b.Place(solid(64, 64, red))
	second := b.Place(solid(32, 16, green))

	require.NoError(t, b.ScaleAll(2))

	images := b.Images()
	require.Len(t, images, 2)

	assert.NotEqual(t, first.ID, images[0].ID)
	assert.Equal(t, first.Position, images[0].Position)
	assert.Equal(t, 128, images[0].Width())
	assert.Equal(t, 128, images[0].Height())
	assert.Equal(t, "size: 64 x 64", images[0].Overlay.SizeText, "overlay text is carried over")

	assert.Equal(t, second.Position, images[1].Position)
	assert.Equal(t, 64, images[1].Width())
	assert.Equal(t, 32, images[1].Height())

	_, ok := b.Get(first.ID)
	assert.False(t, ok, "old instance is discarded")
}

func TestScaleAll_ByOnePointOne(t *testing.T) {
	b := newBoard(t)
	b.Place(solid(72, 72, red))

	require.NoError(t, b.ScaleAll(1.1))

	img := b.Images()[0]
	assert.Equal(t, 79, img.Width())
	assert.Equal(t, 79, img.Height())
}

func TestScaleAll_InvalidFactor(t *testing.T) {
	b := newBoard(t)
	b.Place(solid(8, 8, red))

	err := b.ScaleAll(0)
	assert.ErrorIs(t, err, raster.ErrInvalidFactor)
}

func TestScaleAll_TooLargeLeavesImagesUntouched(t *testing.T) {
	b := newBoard(t)
	small := b.Place(solid(72, 72, red))
	large := b.Place(solid(900, 10, green))

	calls := 0
	b.OnBoundsChanged(func(*model.PlacedImage) { calls++ })

	err := b.ScaleAll(10)
	assert.ErrorIs(t, err, raster.ErrTooLarge)

	images := b.Images()
	require.Len(t, images, 2)
	assert.Same(t, small, images[0], "no image is replaced when any would exceed the cap")
	assert.Same(t, large, images[1])
	assert.Equal(t, 72, images[0].Width())
	assert.Zero(t, calls)
}

func TestScaleAll_RepeatedClicksStopAtCap(t *testing.T) {
	b := newBoard(t)
	b.Place(solid(9, 1, red))

	require.NoError(t, b.ScaleAll(10))
	require.NoError(t, b.ScaleAll(10))
	assert.Equal(t, 900, b.Images()[0].Width())

	err := b.ScaleAll(10)
	assert.ErrorIs(t, err, raster.ErrTooLarge)
	assert.Equal(t, 900, b.Images()[0].Width())
}

func TestAutoDouble_SkippedPastCap(t *testing.T) {
	b := newBoard(t)
	b.SetAutoDouble(true)
	b.Place(solid(5000, 10, red))

	require.NoError(t, b.ScaleAll(1))
	assert.Equal(t, 5000, b.Images()[0].Width(), "doubling past the cap is skipped")
}

func TestScaleAll_NotifiesObservers(t *testing.T) {
	b := newBoard(t)
	b.Place(solid(20, 20, red))

	var seen []*model.PlacedImage
	b.OnBoundsChanged(func(img *model.PlacedImage) {
		seen = append(seen, img)
	})

	require.NoError(t, b.ScaleAll(2))

	require.Len(t, seen, 1)
	assert.Equal(t, b.Images()[0].ID, seen[0].ID)
	assert.Equal(t, 40, seen[0].Width())
}

func TestAutoDouble(t *testing.T) {
	b := newBoard(t)
	b.SetAutoDouble(true)
	b.Place(solid(64, 64, red))

	calls := 0
	b.OnBoundsChanged(func(*model.PlacedImage) { calls++ })

	require.NoError(t, b.ScaleAll(2))

	img := b.Images()[0]
	assert.Equal(t, 256, img.Width(), "scale to 128 then doubled once")
	assert.Equal(t, 1, calls, "observers do not re-trigger on their own size change")
}

func TestGroupImages_NoopForSmallBoards(t *testing.T) {
	b := newBoard(t)
	assert.False(t, b.GroupImages())

	img := b.Place(solid(10, 10, red))
	before := img.Position

	assert.False(t, b.GroupImages())
	assert.Equal(t, before, img.Position)
	assert.Nil(t, b.Group())
	assert.False(t, img.IsGrouped())
}

func TestGroupImages_StacksAtMinCorner(t *testing.T) {
	b := newBoard(t)
	b.intn = fixedOffsets(300, 40, 120, 200, 500, 90)

	a := b.Place(solid(30, 20, red))
	c := b.Place(solid(40, 10, green))
	d := b.Place(solid(20, 50, blue))
	// positions: a (300,40) c (120,200) d (500,90) -> min corner (120,40)

	require.True(t, b.GroupImages())

	g := b.Group()
	require.NotNil(t, g)
	assert.Equal(t, model.Position{X: 120, Y: 40}, g.Origin)
	assert.Equal(t, []string{a.ID, c.ID, d.ID}, g.Members)

	assert.Equal(t, model.Position{X: 120, Y: 40}, a.Position)
	assert.Equal(t, model.Position{X: 120, Y: 40 + 20 + g.Spacing}, c.Position)
	assert.Equal(t, model.Position{X: 120, Y: 40 + 20 + 10 + 2*g.Spacing}, d.Position)

	bounds := b.GroupBounds()
	assert.Equal(t, g.Origin.Point(), bounds.Min)
	for _, img := range b.Images() {
		assert.True(t, img.Bounds().In(bounds))
		assert.Equal(t, g.ID, img.GroupID)
	}
}

func TestGroupImages_NotifiesEachMember(t *testing.T) {
	b := newBoard(t)
	b.Place(solid(10, 10, red))
	b.Place(solid(10, 10, green))

	calls := 0
	b.OnBoundsChanged(func(*model.PlacedImage) { calls++ })

	b.GroupImages()
	assert.Equal(t, 2, calls)
}

func TestMove(t *testing.T) {
	b := newBoard(t)
	b.intn = fixedOffsets(100, 100)
	img := b.Place(solid(10, 10, red))
	overlay := img.Overlay

	assert.True(t, b.Move(img.ID, 15, -20))
	assert.Equal(t, model.Position{X: 115, Y: 80}, img.Position)
	assert.Equal(t, overlay, img.Overlay, "drag never recomputes the overlay")

	assert.False(t, b.Move("missing", 1, 1))
}

func TestMove_GroupedMovesWholeGroup(t *testing.T) {
	b := newBoard(t)
	b.intn = fixedOffsets(10, 10, 50, 50)
	a := b.Place(solid(10, 10, red))
	c := b.Place(solid(10, 10, green))
	b.GroupImages()

	aBefore, cBefore := a.Position, c.Position
	b.Move(c.ID, 5, 7)

	assert.Equal(t, aBefore.Add(5, 7), a.Position)
	assert.Equal(t, cBefore.Add(5, 7), c.Position)
	assert.Equal(t, model.Position{X: 15, Y: 17}, b.Group().Origin)
}

func TestScaleAll_KeepsGroupLayout(t *testing.T) {
	b := newBoard(t)
	b.intn = fixedOffsets(10, 10, 50, 50)
	b.Place(solid(10, 10, red))
	b.Place(solid(10, 10, green))
	b.GroupImages()

	require.NoError(t, b.ScaleAll(2))

	images := b.Images()
	g := b.Group()
	assert.Equal(t, []string{images[0].ID, images[1].ID}, g.Members)
	assert.Equal(t, g.Origin, images[0].Position)
	assert.Equal(t, g.Origin.Add(0, 20+g.Spacing), images[1].Position)
}

func TestRecolorAll(t *testing.T) {
	b := newBoard(t)
	b.Place(solid(4, 4, red))
	b.Place(solid(4, 4, green))

	b.RecolorAll(blue)

	for _, img := range b.Images() {
		assert.Equal(t, color.Color(blue), img.Fill)
	}
}

func TestToggleSelected(t *testing.T) {
	b := newBoard(t)
	img := b.Place(solid(4, 4, red))

	assert.True(t, b.ToggleSelected(img.ID))
	assert.True(t, img.Selected)
	assert.False(t, b.ToggleSelected(img.ID))
	assert.False(t, b.ToggleSelected("missing"))
}

func TestRender_PainterOrder(t *testing.T) {
	b := New(200, 200, zerolog.Nop())
	b.intn = func(int) int { return 0 }
	b.SetBackground(solid(1, 1, blue))

	b.Place(solid(64, 64, red))
	b.Place(solid(64, 64, green))

	out := b.Render()
	assert.Equal(t, image.Rect(0, 0, 200, 200), out.Bounds())
	assert.Equal(t, green, out.NRGBAAt(60, 60), "later images are drawn on top")
	assert.Equal(t, blue, out.NRGBAAt(150, 150), "background is stretched to the canvas")
}

func TestRender_FillShowsThroughTransparency(t *testing.T) {
	b := New(100, 100, zerolog.Nop())
	b.intn = func(int) int { return 0 }

	img := b.Place(solid(64, 64, color.NRGBA{}))
	assert.Equal(t, "color: #000000", img.Overlay.ColorText)

	b.RecolorAll(green)
	out := b.Render()
	assert.Equal(t, green, out.NRGBAAt(60, 60))
	assert.Equal(t, uint8(0), out.NRGBAAt(90, 90).A, "nothing outside the image")
}

func TestWriteSnapshot(t *testing.T) {
	b := New(50, 40, zerolog.Nop())
	b.Place(solid(10, 10, red))

	var buf bytes.Buffer
	require.NoError(t, b.WriteSnapshot(&buf))

	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 50, 40), decoded.Bounds())
}
