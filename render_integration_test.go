//go:build integration

package html2png

// Notes:
// - These tests launch a real headless Chrome. Rod automatically downloads
//   Chromium on first run if none is found.
// - Run with: go test -tags integration ./...

import (
	"bytes"
	"context"
	"image/png"
	"testing"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

func assertValidPNG(t *testing.T, data []byte) {
	t.Helper()

	if !bytes.HasPrefix(data, pngMagic) {
		t.Fatalf("data does not have PNG magic bytes, got prefix: %q", data[:min(8, len(data))])
	}

	if len(data) < 100 {
		t.Errorf("PNG data suspiciously small: %d bytes", len(data))
	}
}

func TestRodConverter_ToPNG_Integration(t *testing.T) {
	ctx := context.Background()

	converter := newRodConverter(defaultTimeout, "")
	defer converter.Close()

	t.Run("valid HTML produces PNG at default viewport", func(t *testing.T) {
		html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body><h1>Hello, World!</h1><p>This is a test document.</p></body>
</html>`

		data, err := converter.ToPNG(ctx, html, &pngOptions{})
		if err != nil {
			t.Fatalf("ToPNG() error = %v", err)
		}

		assertValidPNG(t, data)

		img, err := png.Decode(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("decoding PNG: %v", err)
		}
		bounds := img.Bounds()
		if bounds.Dx() != DefaultViewportWidth || bounds.Dy() != DefaultViewportHeight {
			t.Errorf("image size = %dx%d, want %dx%d", bounds.Dx(), bounds.Dy(), DefaultViewportWidth, DefaultViewportHeight)
		}
	})

	t.Run("custom viewport controls image size", func(t *testing.T) {
		data, err := converter.ToPNG(ctx, "<html><body></body></html>", &pngOptions{
			Viewport: Viewport{Width: 640, Height: 480},
		})
		if err != nil {
			t.Fatalf("ToPNG() error = %v", err)
		}

		img, err := png.Decode(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("decoding PNG: %v", err)
		}
		bounds := img.Bounds()
		if bounds.Dx() != 640 || bounds.Dy() != 480 {
			t.Errorf("image size = %dx%d, want 640x480", bounds.Dx(), bounds.Dy())
		}
	})

	t.Run("background is transparent by default", func(t *testing.T) {
		data, err := converter.ToPNG(ctx, "<html><body></body></html>", &pngOptions{
			Viewport: Viewport{Width: 100, Height: 100},
		})
		if err != nil {
			t.Fatalf("ToPNG() error = %v", err)
		}

		img, err := png.Decode(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("decoding PNG: %v", err)
		}
		_, _, _, a := img.At(0, 0).RGBA()
		if a != 0 {
			t.Errorf("corner alpha = %d, want 0 (transparent)", a)
		}
	})

	t.Run("opaque option forces white background", func(t *testing.T) {
		data, err := converter.ToPNG(ctx, "<html><body></body></html>", &pngOptions{
			Viewport: Viewport{Width: 100, Height: 100},
			Opaque:   true,
		})
		if err != nil {
			t.Fatalf("ToPNG() error = %v", err)
		}

		img, err := png.Decode(bytes.NewReader(data))
		if err != nil {
			t.Fatalf("decoding PNG: %v", err)
		}
		_, _, _, a := img.At(0, 0).RGBA()
		if a == 0 {
			t.Error("corner alpha = 0, want opaque")
		}
	})
}

func TestService_Convert_Integration(t *testing.T) {
	svc := New()
	defer svc.Close()

	png1, err := svc.Convert(context.Background(), Input{HTML: "<html><body><h1>A</h1></body></html>"})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	assertValidPNG(t, png1)

	// Repeated conversion on the same service reuses the browser
	png2, err := svc.Convert(context.Background(), Input{HTML: "<html><body><h1>B</h1></body></html>"})
	if err != nil {
		t.Fatalf("second Convert() error = %v", err)
	}
	assertValidPNG(t, png2)
}
