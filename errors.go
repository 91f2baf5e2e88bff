package html2png

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyHTML      = errors.New("html content cannot be empty")
	ErrPNGCapture     = errors.New("PNG capture failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrBrowserBin     = errors.New("browser executable not found")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")

	// Viewport validation errors.
	ErrInvalidViewport = errors.New("invalid viewport size")
)
