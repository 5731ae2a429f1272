package fetch

import (
	"context"
	"time"

	"github.com/ytget/emoji-desktop/internal/model"
)

// Fetcher defines the interface for the image fetch service.
type Fetcher interface {
	SetUpdateCallback(func(model.FetchStatus, error))
	FetchRandomImage(ctx context.Context) ([]byte, error)

	// SetListingURL sets the directory listing endpoint
	SetListingURL(url string)

	// SetFileSuffix sets the file name suffix that marks an image entry
	SetFileSuffix(suffix string)

	// SetTimeout bounds both requests of one fetch; zero disables it
	SetTimeout(timeout time.Duration)
}
