package html2png

import (
	"context"
	"fmt"
)

// Service orchestrates HTML to PNG conversion through a headless browser.
// Create with New(), use Convert() for conversion, and Close() when done.
type Service struct {
	cfg          serviceConfig
	pngConverter pngConverter
}

// New creates a Service with default configuration.
// Use options to customize behavior (e.g., WithTimeout, WithBrowserBin).
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{timeout: defaultTimeout},
	}

	for _, opt := range opts {
		opt(s)
	}

	// Create PNG converter if not injected (e.g., by tests)
	if s.pngConverter == nil {
		s.pngConverter = newRodConverter(s.cfg.timeout, s.cfg.browserBin)
	}

	return s
}

// Convert captures the HTML content as a PNG image and returns the bytes.
// The context is used for cancellation and timeout.
func (s *Service) Convert(ctx context.Context, input Input) ([]byte, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	pngBytes, err := s.pngConverter.ToPNG(ctx, input.HTML, toPNGOptions(input))
	if err != nil {
		return nil, fmt.Errorf("converting to PNG: %w", err)
	}

	return pngBytes, nil
}

// Close releases resources (headless Chrome browser).
func (s *Service) Close() error {
	if s.pngConverter != nil {
		return s.pngConverter.Close()
	}
	return nil
}

// validateInput checks that required fields are present and valid.
func (s *Service) validateInput(input Input) error {
	if input.HTML == "" {
		return ErrEmptyHTML
	}
	if err := input.Viewport.Validate(); err != nil {
		return err
	}
	return nil
}

// toPNGOptions converts the public Input type to internal pngOptions.
func toPNGOptions(input Input) *pngOptions {
	vp := *DefaultViewport()
	if input.Viewport != nil {
		vp = *input.Viewport
	}
	return &pngOptions{
		Viewport: vp,
		FullPage: input.FullPage,
		Opaque:   input.OpaqueBackground,
	}
}
