package board

import (
	"fmt"
	"image"

	"github.com/ytget/emoji-desktop/internal/model"
	"github.com/ytget/emoji-desktop/internal/raster"
)

// ScaleAll replaces every image with a new instance whose raster is resampled
// by factor. The replacement keeps the slot in the list, the position and the
// overlay text of the image it replaces. Either every image is replaced or,
// on error, none is.
func (b *Board) ScaleAll(factor float64) error {
	for _, img := range b.images {
		if err := raster.CheckScale(img.Width(), img.Height(), factor); err != nil {
			return fmt.Errorf("scale image %s: %w", img.ID, err)
		}
	}

	scaled := make([]*image.NRGBA, len(b.images))
	for i, img := range b.images {
		out, err := raster.Scale(img.Raster, factor)
		if err != nil {
			return fmt.Errorf("scale image %s: %w", img.ID, err)
		}
		scaled[i] = out
	}

	replaced := make([]*model.PlacedImage, len(b.images))
	for i, img := range b.images {
		next := img.Replacement(scaled[i])
		b.images[i] = next
		if b.group != nil {
			b.group.ReplaceMember(img.ID, next.ID)
		}
		replaced[i] = next
	}
	b.layoutGroup()

	b.log.Info().Float64("factor", factor).Int("images", len(replaced)).Msg("images scaled")

	for _, img := range replaced {
		b.notify(img)
	}
	return nil
}

// notify runs bounds observers for img. Size changes made by observers do
// not notify again.
func (b *Board) notify(img *model.PlacedImage) {
	if b.notifying {
		return
	}
	b.notifying = true
	defer func() { b.notifying = false }()

	if b.autoDouble {
		b.double(img)
	}
	for _, observer := range b.observers {
		observer(img)
	}
}

// double doubles the raster of img in place
func (b *Board) double(img *model.PlacedImage) {
	doubled, err := raster.Scale(img.Raster, 2)
	if err != nil {
		b.log.Warn().Err(err).Str("id", img.ID).Msg("auto double failed")
		return
	}
	img.Raster = doubled
	b.layoutGroup()
	b.log.Debug().Str("id", img.ID).Int("width", img.Width()).Int("height", img.Height()).Msg("auto doubled")
}

// restampCaption stamps the current size caption onto img
func (b *Board) restampCaption(img *model.PlacedImage) {
	if img.Raster == nil {
		return
	}
	caption := model.FormatSizeText(img.Width(), img.Height())
	img.Raster = raster.StampText(img.Raster, caption, CaptionOrigin)
}
