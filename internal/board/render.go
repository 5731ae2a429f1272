package board

import (
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

// Render paints the board into a new raster: the background stretched to the
// canvas, then every image at its position in list order, each over its fill.
func (b *Board) Render() *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))

	if b.background != nil && !b.background.Bounds().Empty() {
		bg := imaging.Resize(b.background, b.width, b.height, imaging.Linear)
		draw.Draw(dst, dst.Bounds(), bg, image.Point{}, draw.Src)
	}

	for _, img := range b.images {
		if img.Raster == nil {
			continue
		}
		r := img.Bounds()
		if img.Fill != nil {
			draw.Draw(dst, r, image.NewUniform(img.Fill), image.Point{}, draw.Over)
		}
		draw.Draw(dst, r, img.Raster, img.Raster.Bounds().Min, draw.Over)
	}
	return dst
}

// WriteSnapshot encodes the rendered board as PNG
func (b *Board) WriteSnapshot(w io.Writer) error {
	if err := imaging.Encode(w, b.Render(), imaging.PNG); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}
