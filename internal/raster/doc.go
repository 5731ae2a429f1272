package raster

// Package raster holds the pure image functions behind the canvas: decoding
// fetched bytes (SVG via oksvg/rasterx, PNG/JPEG/WebP via image.Decode),
// averaging colors, stamping caption text and resampling. Every function
// returns a new raster and leaves its input untouched.
