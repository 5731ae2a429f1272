package platform

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/ytget/emoji-desktop/internal/raster"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Snapshot naming
const (
	SnapshotPrefix     = "emoji-desktop-"
	SnapshotTimeLayout = "20060102-150405"
	SnapshotExtension  = ".png"
)

// ImageExtensions are tried in order when a path has no usable extension
var (
	ImageExtensions = []string{".png", ".jpg", ".jpeg", ".webp", ".svg"}
)

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// FindFileWithFallback resolves an image path. It tries the path as given,
// then the path with each of ImageExtensions appended, then any file in the
// same directory whose name without extension matches case-insensitively.
func FindFileWithFallback(filePath string) (string, error) {
	if filePath == "" {
		return "", fmt.Errorf("file path is empty")
	}

	if strings.HasPrefix(filePath, "http") {
		return "", fmt.Errorf("file path appears to be a URL: %s", filePath)
	}

	// First, try the original path
	if info, err := os.Stat(filePath); err == nil && !info.IsDir() {
		return filePath, nil
	}

	for _, ext := range ImageExtensions {
		candidate := filePath + ext
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	dir := filepath.Dir(filePath)
	wanted := strings.ToLower(strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath)))

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var candidates []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		base := strings.ToLower(strings.TrimSuffix(name, filepath.Ext(name)))
		if base == wanted && isImageExtension(filepath.Ext(name)) {
			candidates = append(candidates, filepath.Join(dir, name))
		}
	}

	if len(candidates) > 0 {
		sort.Strings(candidates)
		return candidates[0], nil
	}

	return "", fmt.Errorf("file not found: %s", filePath)
}

// LoadImageFile resolves path with FindFileWithFallback and decodes it
func LoadImageFile(path string) (image.Image, string, error) {
	resolved, err := FindFileWithFallback(path)
	if err != nil {
		return nil, "", err
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		return nil, resolved, fmt.Errorf("failed to read %s: %w", resolved, err)
	}

	img, err := raster.Decode(data, 0)
	if err != nil {
		return nil, resolved, fmt.Errorf("failed to decode %s: %w", resolved, err)
	}
	return img, resolved, nil
}

// GetHomePicturesDir returns the user's Pictures directory
func GetHomePicturesDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, "Pictures"), nil
}

// SnapshotFileName returns a timestamped PNG file name
func SnapshotFileName(now time.Time) string {
	return SnapshotPrefix + now.Format(SnapshotTimeLayout) + SnapshotExtension
}

func isImageExtension(ext string) bool {
	ext = strings.ToLower(ext)
	for _, known := range ImageExtensions {
		if ext == known {
			return true
		}
	}
	return false
}
