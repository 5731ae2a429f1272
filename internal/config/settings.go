package config

import (
	"math"
	"strings"
	"time"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyListingURL     = "listing_url"
	KeyFileSuffix     = "file_suffix"
	KeyScaleFactor    = "scale_factor"
	KeyBackgroundPath = "background_path"
	KeyRequestTimeout = "request_timeout_seconds"
	KeySVGSize        = "svg_size"
	KeyAutoDouble     = "auto_double_on_resize"
	KeyLanguage       = "app_language"
	KeyLogLevel       = "log_level"
)

// Default values
const (
	DefaultListingURL     = "https://api.github.com/repos/hfg-gmuend/openmoji/contents/src/symbols/geometric"
	DefaultFileSuffix     = ".svg"
	DefaultScaleFactor    = 1.1
	DefaultBackgroundPath = "profile"
	DefaultRequestTimeout = 30
	DefaultSVGSize        = 0
	DefaultAutoDouble     = false
	DefaultLanguage       = "system"
	DefaultLogLevel       = "info"
)

// Limits
const (
	MinScaleFactor    = 0.1
	MaxScaleFactor    = 10.0
	MinRequestTimeout = 1
	MaxRequestTimeout = 300
	MaxSVGSize        = 1024
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetListingURL returns the directory listing endpoint
func (s *Settings) GetListingURL() string {
	url := s.app.Preferences().String(KeyListingURL)
	if url == "" {
		s.SetListingURL(DefaultListingURL)
		return DefaultListingURL
	}
	return url
}

// SetListingURL sets the directory listing endpoint
func (s *Settings) SetListingURL(url string) {
	url = strings.TrimSpace(url)
	if url == "" {
		url = DefaultListingURL
	}
	s.app.Preferences().SetString(KeyListingURL, url)
}

// GetFileSuffix returns the image file suffix filter
func (s *Settings) GetFileSuffix() string {
	return s.app.Preferences().StringWithFallback(KeyFileSuffix, DefaultFileSuffix)
}

// SetFileSuffix sets the image file suffix filter
func (s *Settings) SetFileSuffix(suffix string) {
	suffix = strings.TrimSpace(suffix)
	if suffix == "" {
		suffix = DefaultFileSuffix
	}
	s.app.Preferences().SetString(KeyFileSuffix, suffix)
}

// GetScaleFactor returns the factor used by the change size action
func (s *Settings) GetScaleFactor() float64 {
	return s.app.Preferences().FloatWithFallback(KeyScaleFactor, DefaultScaleFactor)
}

// SetScaleFactor sets the scale factor, clamped to [MinScaleFactor, MaxScaleFactor]
func (s *Settings) SetScaleFactor(factor float64) {
	if math.IsNaN(factor) {
		factor = DefaultScaleFactor
	}
	if factor < MinScaleFactor {
		factor = MinScaleFactor
	}
	if factor > MaxScaleFactor {
		factor = MaxScaleFactor
	}
	s.app.Preferences().SetFloat(KeyScaleFactor, factor)
}

// GetBackgroundPath returns the background image path
func (s *Settings) GetBackgroundPath() string {
	return s.app.Preferences().StringWithFallback(KeyBackgroundPath, DefaultBackgroundPath)
}

// SetBackgroundPath sets the background image path; empty disables the background
func (s *Settings) SetBackgroundPath(path string) {
	s.app.Preferences().SetString(KeyBackgroundPath, strings.TrimSpace(path))
}

// GetRequestTimeout returns the per-fetch timeout
func (s *Settings) GetRequestTimeout() time.Duration {
	seconds := s.app.Preferences().Int(KeyRequestTimeout)
	if seconds <= 0 {
		s.SetRequestTimeoutSeconds(DefaultRequestTimeout)
		seconds = DefaultRequestTimeout
	}
	return time.Duration(seconds) * time.Second
}

// SetRequestTimeoutSeconds sets the timeout, clamped to [MinRequestTimeout, MaxRequestTimeout]
func (s *Settings) SetRequestTimeoutSeconds(seconds int) {
	if seconds < MinRequestTimeout {
		seconds = MinRequestTimeout
	}
	if seconds > MaxRequestTimeout {
		seconds = MaxRequestTimeout
	}
	s.app.Preferences().SetInt(KeyRequestTimeout, seconds)
}

// GetSVGSize returns the SVG rasterization size, 0 meaning the viewBox size
func (s *Settings) GetSVGSize() int {
	return s.app.Preferences().IntWithFallback(KeySVGSize, DefaultSVGSize)
}

// SetSVGSize sets the SVG rasterization size, clamped to [0, MaxSVGSize]
func (s *Settings) SetSVGSize(size int) {
	if size < 0 {
		size = 0
	}
	if size > MaxSVGSize {
		size = MaxSVGSize
	}
	s.app.Preferences().SetInt(KeySVGSize, size)
}

// GetAutoDouble returns whether images double whenever their bounds change
func (s *Settings) GetAutoDouble() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoDouble, DefaultAutoDouble)
}

// SetAutoDouble sets the auto double toggle
func (s *Settings) SetAutoDouble(enabled bool) {
	s.app.Preferences().SetBool(KeyAutoDouble, enabled)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// GetLogLevel returns the configured log level name
func (s *Settings) GetLogLevel() string {
	return s.app.Preferences().StringWithFallback(KeyLogLevel, DefaultLogLevel)
}

// SetLogLevel sets the log level name
func (s *Settings) SetLogLevel(level string) {
	s.app.Preferences().SetString(KeyLogLevel, strings.ToLower(strings.TrimSpace(level)))
}

// GetLogLevelOptions returns the accepted log level names
func (s *Settings) GetLogLevelOptions() []string {
	return []string{"debug", "info", "warn", "error"}
}
