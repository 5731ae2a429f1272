package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It wires the four toolbar actions to the fetch service and the board, renders
// placed images as draggable labels, and shows notifications and settings.
// All UI strings are localized via Localization.
