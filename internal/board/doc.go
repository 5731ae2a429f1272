package board

// Package board is the canvas model. A Board owns the ordered list of placed
// images (list order is z-order), the optional background and the optional
// group, and exposes the operations the window buttons trigger. It has no
// GUI dependency; the ui package renders it and feeds it input.
//
// A Board is not safe for concurrent use. The UI mutates it only from the
// Fyne event goroutine.
