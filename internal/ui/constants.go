package ui

import (
	"image/color"
	"time"
)

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
)

// Image label drawing
const (
	SelectionStrokeWidth float32 = 2
	GroupFrameWidth      float32 = 1
	GroupFramePadding    float32 = 2
)

// Colors used on the board
var (
	SelectionColor  = color.NRGBA{R: 255, G: 215, A: 255}
	GroupFrameColor = color.NRGBA{R: 46, G: 160, B: 67, A: 200}
)

// Group layout animation
const (
	GroupAnimationDuration = 300 * time.Millisecond
)

// Notification behavior
const (
	NotificationAutoHide = 5 * time.Second
)

// Dialog sizing
const (
	SettingsDialogWidth  float32 = 500
	SettingsDialogHeight float32 = 520
)
