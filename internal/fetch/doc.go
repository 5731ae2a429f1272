package fetch

// Package fetch implements the image fetcher: it lists a GitHub contents
// directory, picks one matching file uniformly at random and downloads it.
// Each call is a single best-effort attempt; progress is reported through an
// update callback so the UI can show it.
