package model

// FetchStatus represents the stage of a single fetch-and-place request
type FetchStatus string

const (
	// FetchStatusListing means the directory listing is being requested
	FetchStatusListing FetchStatus = "Listing"

	// FetchStatusDownloading means a chosen image file is being downloaded
	FetchStatusDownloading FetchStatus = "Downloading"

	// FetchStatusCompleted means the image bytes were received
	FetchStatusCompleted FetchStatus = "Completed"

	// FetchStatusFailed means either request failed or the listing was empty
	FetchStatusFailed FetchStatus = "Failed"
)

// String returns the string representation of FetchStatus
func (fs FetchStatus) String() string {
	return string(fs)
}

// IsActive returns true while network requests are in flight
func (fs FetchStatus) IsActive() bool {
	return fs == FetchStatusListing || fs == FetchStatusDownloading
}

// IsFinished returns true if the fetch ended (completed or failed)
func (fs FetchStatus) IsFinished() bool {
	return fs == FetchStatusCompleted || fs == FetchStatusFailed
}
