package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// DeskTheme is a compact theme with light blue buttons that turn green on
// hover and press
type DeskTheme struct{}

// NewDeskTheme creates a new desk theme
func NewDeskTheme() fyne.Theme {
	return &DeskTheme{}
}

// Theme colors
var (
	ButtonColor  = color.NRGBA{R: 173, G: 216, B: 230, A: 255} // Light blue
	HoverColor   = color.NRGBA{R: 144, G: 238, B: 144, A: 160} // Light green
	PressedColor = color.NRGBA{R: 0, G: 128, B: 0, A: 200}     // Green
)

// Color returns theme colors
func (t *DeskTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameButton:
		return ButtonColor
	case theme.ColorNameHover:
		return HoverColor
	case theme.ColorNamePressed:
		return PressedColor
	case theme.ColorNameSuccess:
		return color.RGBA{R: 46, G: 160, B: 67, A: 255} // Green for completed
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255} // Red for errors
	case theme.ColorNamePrimary:
		return color.RGBA{R: 25, G: 118, B: 210, A: 255} // Blue for primary actions
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 18, G: 18, B: 18, A: 255} // Dark gray
		}
		return color.RGBA{R: 250, G: 250, B: 250, A: 255} // Light gray
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 255, G: 255, B: 255, A: 255} // White text
		}
		return color.RGBA{R: 33, G: 33, B: 33, A: 255} // Dark text
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *DeskTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *DeskTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *DeskTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameText:
		return 13
	case theme.SizeNameInputRadius:
		return 3
	}

	// Use default theme for everything else
	return theme.DefaultTheme().Size(name)
}
