package raster

import (
	"fmt"
	"image"
	"image/color"
)

// AverageColor returns the integer-truncated mean of the red, green and blue
// channels over every pixel. Alpha is reported as opaque. An empty image
// averages to black.
func AverageColor(img image.Image) color.NRGBA {
	b := img.Bounds()
	total := uint64(b.Dx()) * uint64(b.Dy())
	if total == 0 {
		return color.NRGBA{A: 0xff}
	}

	var sumR, sumG, sumB uint64
	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			row := nrgba.Pix[nrgba.PixOffset(b.Min.X, y):nrgba.PixOffset(b.Max.X, y)]
			for i := 0; i < len(row); i += 4 {
				sumR += uint64(row[i])
				sumG += uint64(row[i+1])
				sumB += uint64(row[i+2])
			}
		}
	} else {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
				sumR += uint64(c.R)
				sumG += uint64(c.G)
				sumB += uint64(c.B)
			}
		}
	}

	return color.NRGBA{
		R: uint8(sumR / total),
		G: uint8(sumG / total),
		B: uint8(sumB / total),
		A: 0xff,
	}
}

// HexColor formats a color as #rrggbb
func HexColor(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}
