// Package html2png renders HTML documents to PNG images using headless Chrome.
//
// # Quick Start
//
// Create a service, convert HTML, and close when done:
//
//	svc := html2png.New()
//	defer svc.Close()
//
//	png, err := svc.Convert(ctx, html2png.Input{
//	    HTML: "<html><body><h1>Diagram</h1></body></html>",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("diagram.png", png, 0644)
//
// # Rendering
//
// The HTML content is written to a temporary file, opened in headless Chrome
// over file://, and captured as a PNG screenshot of the viewport. The browser
// is launched with a fully transparent default background
// (--default-background-color=00000000) and hidden scrollbars, so captures of
// diagram markup compose cleanly onto any page.
//
// The default viewport is 1400x1100 pixels. Override it per conversion:
//
//	png, err := svc.Convert(ctx, html2png.Input{
//	    HTML:     content,
//	    Viewport: &html2png.Viewport{Width: 1920, Height: 1080},
//	})
//
// Use Input.FullPage to capture the entire page height instead of the
// viewport, and Input.OpaqueBackground for a white background.
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc := html2png.New(
//	    html2png.WithTimeout(2 * time.Minute),
//	    html2png.WithBrowserBin("/usr/bin/chromium"),
//	)
//
// # Parallel Processing
//
// For batch capture, use ServicePool to manage multiple browser instances:
//
//	pool := html2png.NewServicePool(4)
//	defer pool.Close()
//
//	svc := pool.Acquire()
//	defer pool.Release(svc)
//	png, err := svc.Convert(ctx, input)
//
// # Browser Requirements
//
// Rendering requires Chrome/Chromium. The go-rod library automatically
// downloads a managed Chromium instance on first run (~/.cache/rod/browser/).
//
// For containers and CI environments, set ROD_NO_SANDBOX=1 to disable the
// Chrome sandbox. Use ROD_BROWSER_BIN or WithBrowserBin to specify a custom
// Chrome binary.
package html2png
