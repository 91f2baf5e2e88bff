package html2png

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/ysmood/gson"

	"github.com/masaomi/html2png/internal/fileutil"
	"github.com/masaomi/html2png/internal/process"
)

// pngConverter abstracts HTML to PNG conversion to allow different backends.
type pngConverter interface {
	ToPNG(ctx context.Context, htmlContent string, opts *pngOptions) ([]byte, error)
	Close() error
}

// pngRenderer abstracts PNG capture from an HTML file to enable testing without a browser.
type pngRenderer interface {
	RenderFromFile(ctx context.Context, filePath string, opts *pngOptions) ([]byte, error)
	Close() error
}

// Compile-time interface checks
var (
	_ pngConverter = (*rodConverter)(nil)
	_ pngRenderer  = (*rodRenderer)(nil)
)

// pngOptions holds options for PNG capture.
type pngOptions struct {
	Viewport Viewport
	FullPage bool
	Opaque   bool
}

// transparentBackground is the Chrome default-background-color value for a
// fully transparent window (RGBA hex, alpha first to zero).
const transparentBackground = "00000000"

// rodRenderer implements pngRenderer using go-rod.
// Rod automatically downloads Chromium on first run if not found.
type rodRenderer struct {
	browser *rod.Browser
	lnch    *launcher.Launcher
	timeout time.Duration
	bin     string
}

// newRodRenderer creates a rodRenderer with the given timeout and browser binary.
func newRodRenderer(timeout time.Duration, bin string) *rodRenderer {
	return &rodRenderer{timeout: timeout, bin: bin}
}

// ensureBrowser lazily launches and connects to the browser.
// The browser is launched with a transparent default background and hidden
// scrollbars so viewport captures contain only the rendered document.
func (r *rodRenderer) ensureBrowser() error {
	if r.browser != nil {
		return nil
	}

	bin := r.bin
	if bin == "" {
		bin = os.Getenv("ROD_BROWSER_BIN")
	}

	// Fail fast on a misconfigured binary instead of letting the launcher
	// fall back to downloading a managed Chromium.
	if bin != "" && !fileutil.FileExists(bin) {
		return fmt.Errorf("%w: %s", ErrBrowserBin, bin)
	}

	l := launcher.New().
		Set("default-background-color", transparentBackground).
		Set("hide-scrollbars")

	if bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments
	if os.Getenv("CI") == "true" || bin != "" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	r.browser = browser
	r.lnch = l
	return nil
}

// Close releases browser resources, killing any leaked Chrome children.
func (r *rodRenderer) Close() error {
	if r.browser == nil {
		return nil
	}

	err := r.browser.Close()
	r.browser = nil

	if r.lnch != nil {
		if pid := r.lnch.PID(); pid > 0 {
			process.KillProcessGroup(pid)
		}
		r.lnch = nil
	}

	return err
}

// RenderFromFile opens a local HTML file in headless Chrome and captures it as PNG.
// Returns explicit errors instead of panicking when browser operations fail.
func (r *rodRenderer) RenderFromFile(ctx context.Context, filePath string, opts *pngOptions) ([]byte, error) {
	// Check context before starting
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := r.ensureBrowser(); err != nil {
		return nil, err
	}

	page, err := r.browser.Page(proto.TargetCreateTarget{URL: "file://" + filePath})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	if err := page.SetViewport(buildViewportOverride(opts)); err != nil {
		return nil, fmt.Errorf("%w: setting viewport: %v", ErrPageCreate, err)
	}

	// Wait for page to load with timeout from context or default
	timeout := r.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}

	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	// Check context after page load
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// The browser-level flag keeps the background transparent; an opaque
	// capture overrides it per page with solid white.
	if opts != nil && opts.Opaque {
		override := proto.EmulationSetDefaultBackgroundColorOverride{
			Color: &proto.DOMRGBA{R: 255, G: 255, B: 255, A: gson.Num(1)},
		}
		if err := override.Call(page); err != nil {
			return nil, fmt.Errorf("%w: background override: %v", ErrPNGCapture, err)
		}
	}

	fullPage := opts != nil && opts.FullPage
	pngBuf, err := page.Screenshot(fullPage, buildScreenshotRequest())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPNGCapture, err)
	}

	return pngBuf, nil
}

// buildViewportOverride constructs the CDP device metrics override for opts.
func buildViewportOverride(opts *pngOptions) *proto.EmulationSetDeviceMetricsOverride {
	vp := *DefaultViewport()
	if opts != nil && opts.Viewport != (Viewport{}) {
		vp = opts.Viewport
	}

	return &proto.EmulationSetDeviceMetricsOverride{
		Width:             vp.Width,
		Height:            vp.Height,
		DeviceScaleFactor: 1,
		Mobile:            false,
	}
}

// buildScreenshotRequest constructs the CDP screenshot request for PNG output.
func buildScreenshotRequest() *proto.PageCaptureScreenshot {
	return &proto.PageCaptureScreenshot{
		Format: proto.PageCaptureScreenshotFormatPng,
	}
}

// rodConverter converts HTML to PNG using headless Chrome via go-rod.
type rodConverter struct {
	renderer pngRenderer
}

// newRodConverter creates a rodConverter with production renderer.
func newRodConverter(timeout time.Duration, bin string) *rodConverter {
	return &rodConverter{
		renderer: newRodRenderer(timeout, bin),
	}
}

// ToPNG converts HTML content to PNG bytes using headless Chrome.
// The content is staged in a temporary file and loaded over file://.
func (c *rodConverter) ToPNG(ctx context.Context, htmlContent string, opts *pngOptions) ([]byte, error) {
	tmpPath, cleanup, err := fileutil.WriteTempFile(htmlContent, "html")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	return c.renderer.RenderFromFile(ctx, tmpPath, opts)
}

// Close releases browser resources.
func (c *rodConverter) Close() error {
	if c.renderer != nil {
		return c.renderer.Close()
	}
	return nil
}
