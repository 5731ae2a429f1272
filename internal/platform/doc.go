package platform

// Package platform contains filesystem glue: locating the background image
// with extension fallbacks, loading it, and picking snapshot locations.
