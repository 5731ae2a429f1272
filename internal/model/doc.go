package model

// Package model defines domain data structures used across the app: placed
// images, their overlay captions, groups, and fetch status enums. Structures
// are plain records owned by the board and rendered by the UI.
