package raster

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"math"

	"github.com/disintegration/imaging"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	_ "golang.org/x/image/webp"
)

// ErrDecode is returned when fetched bytes do not produce a usable raster
var ErrDecode = errors.New("raster: cannot decode image")

// svgSniffLen is how many leading bytes are inspected for an <svg tag
const svgSniffLen = 1024

// Decode turns raw image bytes into an NRGBA raster. SVG documents are
// rasterized at their viewBox size unless svgSize is positive, in which case
// the longer side is scaled to svgSize.
func Decode(data []byte, svgSize int) (*image.NRGBA, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrDecode)
	}

	if IsSVG(data) {
		return decodeSVG(data, svgSize)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("%w: empty raster", ErrDecode)
	}
	return imaging.Clone(img), nil
}

// IsSVG reports whether data looks like an SVG document
func IsSVG(data []byte) bool {
	head := data
	if len(head) > svgSniffLen {
		head = head[:svgSniffLen]
	}
	return bytes.Contains(bytes.ToLower(head), []byte("<svg"))
}

func decodeSVG(data []byte, svgSize int) (*image.NRGBA, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data), oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	w, h := icon.ViewBox.W, icon.ViewBox.H
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: svg has no viewBox size", ErrDecode)
	}
	if svgSize > 0 {
		scale := float64(svgSize) / math.Max(w, h)
		w, h = w*scale, h*scale
	}

	width := int(math.Round(w))
	height := int(math.Round(h))
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: svg target %dx%d", ErrDecode, width, height)
	}

	icon.SetTarget(0, 0, float64(width), float64(height))
	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, rgba, rgba.Bounds())
	dasher := rasterx.NewDasher(width, height, scanner)
	icon.Draw(dasher, 1.0)

	return imaging.Clone(rgba), nil
}
