package fetch

import (
	"errors"
	"fmt"
)

var (
	// ErrFetchFailed is returned when either request fails or returns a non-2xx status
	ErrFetchFailed = errors.New("fetch failed")

	// ErrNoImagesAvailable is returned when the listing has no matching files
	ErrNoImagesAvailable = errors.New("no images available")
)

// Request stages
const (
	StageListing  = "listing"
	StageDownload = "download"
)

// StatusError reports a non-success HTTP status for one stage of a fetch
type StatusError struct {
	Stage      string
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s request to %s returned status %d", e.Stage, e.URL, e.StatusCode)
}

// Unwrap makes errors.Is(err, ErrFetchFailed) true
func (e *StatusError) Unwrap() error {
	return ErrFetchFailed
}
