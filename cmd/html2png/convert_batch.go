package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	html2png "github.com/masaomi/html2png"
	"github.com/masaomi/html2png/internal/fileutil"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	SizeBytes  int64
	Err        error
	Duration   time.Duration
}

// captureParams groups capture parameters shared across the batch.
type captureParams struct {
	viewport html2png.Viewport
	fullPage bool
	opaque   bool
}

// convertBatch processes files concurrently using the service pool.
func convertBatch(ctx context.Context, pool Pool, files []FileToConvert, params *captureParams) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := pool.Size()
	if concurrency > len(files) {
		concurrency = len(files)
	}

	results := make([]ConversionResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			svc := pool.Acquire()
			defer pool.Release(svc)

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = convertFile(ctx, svc, files[idx], params)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertFile processes a single file and returns the result.
func convertFile(ctx context.Context, service Converter, f FileToConvert, params *captureParams) ConversionResult {
	start := time.Now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrReadHTML, err)
		result.Duration = time.Since(start)
		return result
	}

	vp := params.viewport
	pngBytes, err := service.Convert(ctx, html2png.Input{
		HTML:             string(content),
		Viewport:         &vp,
		FullPage:         params.fullPage,
		OpaqueBackground: params.opaque,
	})
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	outDir := filepath.Dir(f.OutputPath)
	if err := os.MkdirAll(outDir, dirPermissions); err != nil {
		result.Err = fmt.Errorf("creating output directory: %w", err)
		result.Duration = time.Since(start)
		return result
	}

	// #nosec G306 -- PNGs are meant to be readable
	if err := os.WriteFile(f.OutputPath, pngBytes, filePermissions); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrWritePNG, err)
		result.Duration = time.Since(start)
		return result
	}

	// Verify the artifact actually materialized. The original script treated
	// this as a printed warning with a zero exit; here it is a real failure.
	size, err := fileutil.FileSize(f.OutputPath)
	if err != nil {
		result.Err = fmt.Errorf("%w: %s", ErrOutputMissing, f.OutputPath)
		result.Duration = time.Since(start)
		return result
	}

	result.SizeBytes = size
	result.Duration = time.Since(start)
	return result
}

// ResultSummary holds the count of succeeded and failed conversions.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed conversions.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printResults outputs conversion results using the environment writers.
// Returns the number of failed conversions.
func printResults(results []ConversionResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v%s\n", r.InputPath, r.Err, hintFor(r.Err))
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "Success: %s (%d KB, %v)\n", r.OutputPath, r.SizeBytes/1024, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Success: %s (%d KB)\n", r.OutputPath, r.SizeBytes/1024)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}
