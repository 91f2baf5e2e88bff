package html2png

import (
	"fmt"
	"time"
)

// Default viewport dimensions in pixels, sized for the documentation
// diagrams this tool was built around.
const (
	DefaultViewportWidth  = 1400
	DefaultViewportHeight = 1100
)

// Viewport dimension bounds in pixels. The upper bound matches Chrome's
// maximum texture size for a single capture.
const (
	MinViewportDim = 1
	MaxViewportDim = 16384
)

// Viewport configures the pixel dimensions of the virtual browser window.
// The captured image has the same dimensions unless FullPage is set.
type Viewport struct {
	Width  int
	Height int
}

// DefaultViewport returns a viewport with default dimensions.
func DefaultViewport() *Viewport {
	return &Viewport{
		Width:  DefaultViewportWidth,
		Height: DefaultViewportHeight,
	}
}

// Validate checks that viewport dimensions are within bounds.
// Returns nil if v is nil (nil means use defaults).
func (v *Viewport) Validate() error {
	if v == nil {
		return nil
	}

	if v.Width < MinViewportDim || v.Width > MaxViewportDim {
		return fmt.Errorf("%w: width %d (must be between %d and %d)", ErrInvalidViewport, v.Width, MinViewportDim, MaxViewportDim)
	}

	if v.Height < MinViewportDim || v.Height > MaxViewportDim {
		return fmt.Errorf("%w: height %d (must be between %d and %d)", ErrInvalidViewport, v.Height, MinViewportDim, MaxViewportDim)
	}

	return nil
}

// Input contains conversion parameters.
type Input struct {
	HTML             string    // HTML content (required)
	Viewport         *Viewport // Viewport size (optional, nil = 1400x1100)
	FullPage         bool      // Capture full page height instead of viewport
	OpaqueBackground bool      // White background instead of transparent
}

// Option configures a Service.
type Option func(*Service)

// serviceConfig holds internal configuration for Service.
type serviceConfig struct {
	timeout    time.Duration
	browserBin string
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the capture timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("html2png: WithTimeout duration must be positive")
	}
	return func(s *Service) {
		s.cfg.timeout = d
	}
}

// WithBrowserBin sets the path to a pre-installed Chrome/Chromium binary.
// When empty, the ROD_BROWSER_BIN environment variable is consulted, and
// failing that go-rod downloads a managed Chromium.
func WithBrowserBin(path string) Option {
	return func(s *Service) {
		s.cfg.browserBin = path
	}
}
