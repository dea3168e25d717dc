package errors

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
)

// chartKeyRegex matches registry keys: lowercase ASCII words joined by dashes.
var chartKeyRegex = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// ValidateChartKey checks that key can be used verbatim inside an HTML id
// (the canvas id is "chart-" + key).
func ValidateChartKey(key string) error {
	if key == "" {
		return New(ErrCodeInvalidInput, "chart key cannot be empty")
	}
	if !chartKeyRegex.MatchString(key) {
		return New(ErrCodeInvalidInput, "invalid chart key: %q", key)
	}
	return nil
}

// ValidateBasePath validates the URL path prefix the site is served under.
//
// Rules:
//   - "" and "/" mean the site root
//   - otherwise must start with "/" and must not end with "/"
//   - no "..", backslashes, whitespace or control characters
func ValidateBasePath(p string) error {
	if p == "" || p == "/" {
		return nil
	}
	if !strings.HasPrefix(p, "/") {
		return New(ErrCodeInvalidConfig, "base path must start with /: %q", p)
	}
	if strings.HasSuffix(p, "/") {
		return New(ErrCodeInvalidConfig, "base path must not end with /: %q", p)
	}
	if strings.Contains(p, "..") || strings.Contains(p, "\\") {
		return New(ErrCodeInvalidConfig, "base path contains invalid characters: %q", p)
	}
	for _, r := range p {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return New(ErrCodeInvalidConfig, "base path contains whitespace or control characters: %q", p)
		}
	}
	return nil
}

// ValidateOutputDir rejects output directories that would make a build
// overwrite something it should not: the working directory or any of its
// ancestors, however the path is spelled.
func ValidateOutputDir(dir string) error {
	if dir == "" {
		return New(ErrCodeInvalidPath, "output directory cannot be empty")
	}
	for _, r := range dir {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output directory contains invalid characters")
		}
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return Wrap(ErrCodeInvalidPath, err, "resolve output directory %q", dir)
	}
	if abs == filepath.VolumeName(abs)+string(filepath.Separator) {
		return New(ErrCodeInvalidPath, "refusing to build into the filesystem root %q", dir)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return Wrap(ErrCodeInvalidPath, err, "get working directory")
	}
	// abs contains cwd when the path from abs to cwd never leaves abs.
	if rel, err := filepath.Rel(abs, cwd); err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return New(ErrCodeInvalidPath, "refusing to build into %q: it contains the working directory", dir)
	}
	return nil
}

// ValidateURL validates a URL string for safety.
// It ensures the URL has a safe scheme (http or https).
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return New(ErrCodeInvalidInput, "URL cannot be empty")
	}

	// Simple scheme validation without full URL parsing
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		return New(ErrCodeInvalidInput, "URL must use http or https scheme")
	}

	return nil
}
