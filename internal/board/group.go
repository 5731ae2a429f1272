package board

import (
	"image"

	"github.com/ytget/emoji-desktop/internal/model"
)

// GroupImages gathers every image into one group anchored at the minimum x
// and minimum y across all images and stacks them vertically in list order.
// With fewer than two images it does nothing and returns false.
func (b *Board) GroupImages() bool {
	if len(b.images) <= 1 {
		return false
	}

	origin := b.images[0].Position
	for _, img := range b.images[1:] {
		origin.X = min(origin.X, img.Position.X)
		origin.Y = min(origin.Y, img.Position.Y)
	}

	group := model.NewGroup(origin)
	for _, img := range b.images {
		group.AddMember(img.ID)
		img.GroupID = group.ID
	}
	b.group = group
	b.layoutGroup()

	b.log.Info().Str("group", group.ID).Int("members", group.Len()).
		Int("x", origin.X).Int("y", origin.Y).Msg("images grouped")

	for _, img := range b.images {
		b.notify(img)
	}
	return true
}

// GroupBounds returns the rectangle covering every group member, or an empty
// rectangle when there is no group.
func (b *Board) GroupBounds() image.Rectangle {
	if b.group == nil {
		return image.Rectangle{}
	}
	r := image.Rectangle{Min: b.group.Origin.Point(), Max: b.group.Origin.Point()}
	for _, id := range b.group.Members {
		if _, img := b.find(id); img != nil {
			r = r.Union(img.Bounds())
		}
	}
	return r
}

// layoutGroup stacks group members in a column starting at the group origin
func (b *Board) layoutGroup() {
	if b.group == nil {
		return
	}
	y := b.group.Origin.Y
	for _, id := range b.group.Members {
		_, img := b.find(id)
		if img == nil {
			continue
		}
		img.Position = model.Position{X: b.group.Origin.X, Y: y}
		y += img.Height() + b.group.Spacing
	}
}
