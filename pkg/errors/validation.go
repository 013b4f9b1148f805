package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateEndpointURL validates a backend endpoint URL for safety.
// It ensures the URL has a safe scheme (http or https) and carries no
// control characters.
func ValidateEndpointURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "endpoint URL cannot be empty")
	}

	for _, r := range rawURL {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "endpoint URL contains invalid control characters")
		}
	}

	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "endpoint URL must use http or https scheme")
	}

	return nil
}

// windowRegex matches reporting windows such as "7d", "4w", "12m".
var windowRegex = regexp.MustCompile(`^[1-9][0-9]{0,3}[dwm]$`)

// ValidateWindow validates a reporting window expression.
// Windows are a positive count followed by a unit: d (days), w (weeks),
// or m (months). An empty window is valid and means the backend default.
func ValidateWindow(window string) error {
	if window == "" {
		return nil
	}
	if !windowRegex.MatchString(window) {
		return New(ErrCodeInvalidOption, "invalid window %q (expected forms like 7d, 4w, 12m)", window)
	}
	return nil
}

// hexColorRegex matches 3- and 6-digit hex color literals.
var hexColorRegex = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// ValidateHexColor validates a palette color entry.
func ValidateHexColor(color string) error {
	if !hexColorRegex.MatchString(color) {
		return New(ErrCodeInvalidOption, "invalid color %q (expected hex like #4e79a7)", color)
	}
	return nil
}

// ValidatePath validates an output or cache path for safety.
// It prevents path traversal and rejects unreasonable lengths.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	// Check for null bytes and control characters
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	// Check for path traversal
	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	return nil
}
