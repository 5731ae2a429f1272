package fetch

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/encoding/json"

	"github.com/ytget/emoji-desktop/internal/model"
)

// Defaults for the OpenMoji geometric symbols directory
const (
	DefaultListingURL = "https://api.github.com/repos/hfg-gmuend/openmoji/contents/src/symbols/geometric"
	DefaultFileSuffix = ".svg"
	DefaultTimeout    = 30 * time.Second

	// MaxImageBytes caps the size of a downloaded image body
	MaxImageBytes = 10 << 20

	EntryTypeFile = "file"
	UserAgent     = "emoji-desktop"
	AcceptGitHub  = "application/vnd.github+json"
)

// ListEntry is one object of the GitHub contents API response
type ListEntry struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	DownloadURL string `json:"download_url"`
}

// Service fetches random images from a directory listing
type Service struct {
	client     *http.Client
	listingURL string
	suffix     string
	timeout    time.Duration
	intn       func(n int) int
	mu         sync.RWMutex
	log        zerolog.Logger
	onUpdate   func(model.FetchStatus, error) // callback for UI updates
}

// NewService creates a new fetch service
func NewService(listingURL, suffix string, timeout time.Duration, log zerolog.Logger) *Service {
	if listingURL == "" {
		listingURL = DefaultListingURL
	}
	if suffix == "" {
		suffix = DefaultFileSuffix
	}
	return &Service{
		client:     &http.Client{},
		listingURL: listingURL,
		suffix:     suffix,
		timeout:    timeout,
		intn:       rand.Intn,
		log:        log,
	}
}

// SetUpdateCallback sets the callback function for status updates
func (s *Service) SetUpdateCallback(callback func(model.FetchStatus, error)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onUpdate = callback
}

// SetHTTPClient replaces the HTTP client
func (s *Service) SetHTTPClient(client *http.Client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.client = client
}

// SetListingURL sets the directory listing endpoint
func (s *Service) SetListingURL(url string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if url != "" {
		s.listingURL = url
	}
}

// SetFileSuffix sets the file suffix used to filter entries
func (s *Service) SetFileSuffix(suffix string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if suffix != "" {
		s.suffix = suffix
	}
}

// SetTimeout sets the per-fetch timeout
func (s *Service) SetTimeout(timeout time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.timeout = timeout
}

// FetchRandomImage lists the directory, picks a random matching file and
// returns its raw bytes.
func (s *Service) FetchRandomImage(ctx context.Context) ([]byte, error) {
	s.mu.RLock()
	listingURL, suffix, timeout := s.listingURL, s.suffix, s.timeout
	s.mu.RUnlock()

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	s.notifyUpdate(model.FetchStatusListing, nil)

	entries, err := s.listEntries(ctx, listingURL)
	if err != nil {
		return nil, s.fail(err)
	}

	urls := FilterImageURLs(entries, suffix)
	if len(urls) == 0 {
		return nil, s.fail(fmt.Errorf("%w: no %q files at %s", ErrNoImagesAvailable, suffix, listingURL))
	}

	chosen := urls[s.intn(len(urls))]
	s.log.Debug().Int("candidates", len(urls)).Str("url", chosen).Msg("picked image")
	s.notifyUpdate(model.FetchStatusDownloading, nil)

	data, err := s.download(ctx, chosen)
	if err != nil {
		return nil, s.fail(err)
	}

	s.log.Info().Str("url", chosen).Int("bytes", len(data)).Msg("image fetched")
	s.notifyUpdate(model.FetchStatusCompleted, nil)
	return data, nil
}

// FilterImageURLs keeps file entries whose name ends with suffix and returns
// their download URLs in listing order
func FilterImageURLs(entries []ListEntry, suffix string) []string {
	urls := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.Type != EntryTypeFile || !strings.HasSuffix(entry.Name, suffix) {
			continue
		}
		if entry.DownloadURL == "" {
			continue
		}
		urls = append(urls, entry.DownloadURL)
	}
	return urls
}

// listEntries requests and decodes the directory listing
func (s *Service) listEntries(ctx context.Context, listingURL string) ([]ListEntry, error) {
	resp, err := s.get(ctx, listingURL, AcceptGitHub)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFetchFailed, StageListing, err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return nil, &StatusError{Stage: StageListing, URL: listingURL, StatusCode: resp.StatusCode}
	}

	var entries []ListEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("%w: decode listing: %w", ErrFetchFailed, err)
	}
	return entries, nil
}

// download fetches the raw bytes of one file
func (s *Service) download(ctx context.Context, url string) ([]byte, error) {
	resp, err := s.get(ctx, url, "")
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFetchFailed, StageDownload, err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return nil, &StatusError{Stage: StageDownload, URL: url, StatusCode: resp.StatusCode}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrFetchFailed, err)
	}
	if len(data) > MaxImageBytes {
		return nil, fmt.Errorf("%w: body exceeds %d bytes", ErrFetchFailed, MaxImageBytes)
	}
	return data, nil
}

func (s *Service) get(ctx context.Context, url, accept string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", UserAgent)
	if accept != "" {
		req.Header.Set("Accept", accept)
	}

	s.mu.RLock()
	client := s.client
	s.mu.RUnlock()
	return client.Do(req)
}

// fail logs err, reports the failed status and returns err unchanged
func (s *Service) fail(err error) error {
	s.log.Warn().Err(err).Msg("fetch failed")
	s.notifyUpdate(model.FetchStatusFailed, err)
	return err
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(status model.FetchStatus, err error) {
	s.mu.RLock()
	callback := s.onUpdate
	s.mu.RUnlock()
	if callback != nil {
		callback(status, err)
	}
}

func isSuccess(code int) bool {
	return code >= 200 && code < 300
}
