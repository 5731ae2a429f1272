package ui

import (
	"image"

	"fyne.io/fyne/v2"

	"github.com/ytget/emoji-desktop/internal/platform"
)

const (
	AppIcon = "emoji-desktop.png"
)

// LoadLogoResource loads the window icon from file path
func LoadLogoResource() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}

// LoadBackground loads the background image, trying common image
// extensions when path has none
func LoadBackground(path string) (image.Image, string, error) {
	return platform.LoadImageFile(path)
}
