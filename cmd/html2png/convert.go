package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/automaxprocs/maxprocs"

	html2png "github.com/masaomi/html2png"
	"github.com/masaomi/html2png/internal/config"
	"github.com/masaomi/html2png/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput            = errors.New("no input specified")
	ErrReadHTML           = errors.New("failed to read HTML file")
	ErrWritePNG           = errors.New("failed to write PNG file")
	ErrOutputMissing      = errors.New("PNG file was not created")
	ErrInvalidExtension   = errors.New("file must have .html or .htm extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrInvalidTimeout     = errors.New("invalid timeout")
)

// defaultTimeout is used when neither flag nor config specify one.
const defaultTimeout = 30 * time.Second

// runConvertCmd parses flags, assembles the service pool, and runs the
// conversion. Returns an exit code.
func runConvertCmd(args []string, env *Environment) int {
	flags, positional, err := parseConvertFlags(args)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}

	// Configure GOMAXPROCS with conditional logging
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if flags.common.verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(env.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	if err := validateWorkers(flags.workers); err != nil {
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}

	// Load configuration and merge CLI flags (CLI wins)
	cfg := config.DefaultConfig()
	if flags.common.config != "" {
		cfg, err = config.LoadConfig(flags.common.config)
		if err != nil {
			fmt.Fprintf(env.Stderr, "loading config: %v%s\n", err, hintFor(err))
			return exitCodeFor(err)
		}
	}
	mergeFlags(flags, cfg)

	timeout, err := resolveTimeout(cfg.Render.Timeout)
	if err != nil {
		fmt.Fprintln(env.Stderr, err)
		return ExitUsage
	}

	opts := []html2png.Option{html2png.WithTimeout(timeout)}
	if cfg.Browser.Bin != "" {
		opts = append(opts, html2png.WithBrowserBin(cfg.Browser.Bin))
	}

	poolSize := resolvePoolSize(flags.workers)
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Pool size: %d\n", poolSize)
	}
	pool := newPoolAdapter(html2png.NewServicePool(poolSize, opts...))
	defer pool.Close()

	ctx, stop := notifyContext(context.Background())
	defer stop()

	start := env.Now()
	if err := runConvert(ctx, positional, flags, cfg, pool, env); err != nil {
		// Per-file failures are already on stderr via printResults.
		var bErr *batchError
		if !errors.As(err, &bErr) {
			fmt.Fprintf(env.Stderr, "%v%s\n", err, hintFor(err))
		}
		return exitCodeFor(err)
	}
	if flags.common.verbose {
		fmt.Fprintf(env.Stderr, "Total: %v\n", env.Now().Sub(start).Round(time.Millisecond))
	}
	return ExitSuccess
}

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, cfg *config.Config, pool Pool, env *Environment) error {
	inputPath, err := resolveInputPath(positionalArgs, cfg)
	if err != nil {
		return err
	}

	outputDir := resolveOutputDir(flags.output, cfg)

	files, err := discoverFiles(inputPath, outputDir)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}

	if len(files) == 0 {
		return fmt.Errorf("no HTML files found in %s", inputPath)
	}

	params := &captureParams{
		viewport: html2png.Viewport{Width: cfg.Render.Width, Height: cfg.Render.Height},
		fullPage: cfg.Render.FullPage,
		opaque:   cfg.Render.OpaqueBackground,
	}

	results := convertBatch(ctx, pool, files, params)

	failedCount := printResults(results, flags.common.quiet, flags.common.verbose, env)
	if failedCount > 0 {
		return &batchError{failed: failedCount, first: firstError(results)}
	}

	return nil
}

// batchError aggregates per-file failures already reported by printResults.
// It unwraps to the first failure so exit-code classification survives.
type batchError struct {
	failed int
	first  error
}

func (e *batchError) Error() string {
	return fmt.Sprintf("%d conversion(s) failed", e.failed)
}

func (e *batchError) Unwrap() error { return e.first }

// firstError returns the first per-file error in result order.
func firstError(results []ConversionResult) error {
	for _, r := range results {
		if r.Err != nil {
			return r.Err
		}
	}
	return nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.browserBin != "" {
		cfg.Browser.Bin = flags.browserBin
	}
	if flags.timeout != "" {
		cfg.Render.Timeout = flags.timeout
	}
	if flags.render.width > 0 {
		cfg.Render.Width = flags.render.width
	}
	if flags.render.height > 0 {
		cfg.Render.Height = flags.render.height
	}
	if flags.render.opaque {
		cfg.Render.OpaqueBackground = true
	}
	if flags.render.fullPage {
		cfg.Render.FullPage = true
	}
}

// resolveTimeout parses the timeout string, defaulting when empty.
func resolveTimeout(s string) (time.Duration, error) {
	if s == "" {
		return defaultTimeout, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeout, s)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: %q (must be positive)", ErrInvalidTimeout, s)
	}
	return d, nil
}

// resolveInputPath determines the input path from args or config.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultFile != "" {
		return cfg.Input.DefaultFile, nil
	}
	return "", ErrNoInput
}

// resolveOutputDir determines the output directory from flag or config.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}

// discoverFiles finds all HTML files to convert.
func discoverFiles(inputPath, outputDir string) ([]FileToConvert, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if err := validateHTMLExtension(inputPath); err != nil {
			return nil, err
		}
		outPath := resolveOutputPath(inputPath, outputDir, "")
		return []FileToConvert{{InputPath: inputPath, OutputPath: outPath}}, nil
	}

	var files []FileToConvert
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := filepath.Ext(path)
		if ext != ".html" && ext != ".htm" {
			return nil
		}
		outPath := resolveOutputPath(path, outputDir, inputPath)
		files = append(files, FileToConvert{InputPath: path, OutputPath: outPath})
		return nil
	})

	return files, err
}

// resolveOutputPath determines the PNG output path for an HTML file.
func resolveOutputPath(inputPath, outputDir, baseInputDir string) string {
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(filepath.Base(inputPath), ext)

	if outputDir == "" {
		return filepath.Join(filepath.Dir(inputPath), base+".png")
	}

	if strings.HasSuffix(outputDir, ".png") {
		return outputDir
	}

	if baseInputDir != "" {
		relPath, err := filepath.Rel(baseInputDir, inputPath)
		if err == nil {
			relDir := filepath.Dir(relPath)
			return filepath.Join(outputDir, relDir, base+".png")
		}
	}

	return filepath.Join(outputDir, base+".png")
}

// validateHTMLExtension checks that the file has a .html or .htm extension.
func validateHTMLExtension(path string) error {
	ext := filepath.Ext(path)
	if ext != ".html" && ext != ".htm" {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, ext)
	}
	return nil
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > html2png.MaxPoolSize {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, html2png.MaxPoolSize)
	}
	return nil
}

// hintFor returns an actionable hint suffix for user-facing errors.
func hintFor(err error) string {
	switch {
	case errors.Is(err, html2png.ErrBrowserConnect):
		return hints.ForBrowserConnect()
	case errors.Is(err, html2png.ErrBrowserBin):
		return hints.ForBrowserBin()
	case errors.Is(err, context.DeadlineExceeded):
		return hints.ForTimeout()
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(nil)
	default:
		return ""
	}
}
