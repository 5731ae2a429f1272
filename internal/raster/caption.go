package raster

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Caption defaults
var (
	CaptionTextColor    = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	CaptionBackingColor = color.NRGBA{R: 50, G: 0, B: 0, A: 128}
	CaptionFace         = basicfont.Face7x13
)

// CaptionLineHeight is the vertical distance between stacked caption lines
const CaptionLineHeight = 15

// TextRect returns the rectangle the text occupies when its top-left corner
// is at `at`, measured with the caption face.
func TextRect(text string, at image.Point) image.Rectangle {
	metrics := CaptionFace.Metrics()
	width := font.MeasureString(CaptionFace, text).Ceil()
	height := (metrics.Ascent + metrics.Descent).Ceil()
	return image.Rect(at.X, at.Y, at.X+width, at.Y+height)
}

// StampText returns a copy of src with text drawn in white on a
// semi-transparent backing rectangle whose top-left corner is at `at`.
func StampText(src image.Image, text string, at image.Point) *image.NRGBA {
	dst := imaging.Clone(src)
	stampInto(dst, text, at)
	return dst
}

// StampLines stamps each line below the previous one, starting at origin.
func StampLines(src image.Image, lines []string, origin image.Point) *image.NRGBA {
	dst := imaging.Clone(src)
	for i, line := range lines {
		stampInto(dst, line, origin.Add(image.Pt(0, i*CaptionLineHeight)))
	}
	return dst
}

func stampInto(dst *image.NRGBA, text string, at image.Point) {
	if text == "" {
		return
	}

	rect := TextRect(text, at)
	draw.Draw(dst, rect, image.NewUniform(CaptionBackingColor), image.Point{}, draw.Over)

	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(CaptionTextColor),
		Face: CaptionFace,
		Dot:  fixed.P(at.X, at.Y+CaptionFace.Metrics().Ascent.Ceil()),
	}
	d.DrawString(text)
}
