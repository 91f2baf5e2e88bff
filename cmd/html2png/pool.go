package main

import (
	"context"
	"fmt"
	"runtime"

	html2png "github.com/masaomi/html2png"
)

// Converter is the interface for the conversion service.
type Converter interface {
	Convert(ctx context.Context, input html2png.Input) ([]byte, error)
}

// Compile-time interface implementation check.
var _ Converter = (*html2png.Service)(nil)

// Pool abstracts service pool operations for testability.
type Pool interface {
	Acquire() Converter
	Release(Converter)
	Size() int
}

// poolAdapter adapts html2png.ServicePool to the Pool interface.
type poolAdapter struct {
	pool *html2png.ServicePool
}

// Compile-time check that poolAdapter implements Pool.
var _ Pool = (*poolAdapter)(nil)

func newPoolAdapter(pool *html2png.ServicePool) *poolAdapter {
	return &poolAdapter{pool: pool}
}

func (a *poolAdapter) Acquire() Converter {
	return a.pool.Acquire()
}

func (a *poolAdapter) Release(c Converter) {
	svc, ok := c.(*html2png.Service)
	if !ok {
		panic(fmt.Sprintf("poolAdapter: unexpected type %T", c))
	}
	a.pool.Release(svc)
}

func (a *poolAdapter) Size() int {
	return a.pool.Size()
}

func (a *poolAdapter) Close() error {
	return a.pool.Close()
}

// resolvePoolSize determines the optimal pool size.
// Priority: explicit flag > GOMAXPROCS-based calculation.
func resolvePoolSize(flagWorkers int) int {
	// Explicit flag takes priority
	if flagWorkers > 0 {
		return flagWorkers
	}

	// Auto-calculate based on GOMAXPROCS (adjusted by automaxprocs for
	// containers), leaving headroom for Chrome child processes.
	n := runtime.GOMAXPROCS(0) / 2

	if n < html2png.MinPoolSize {
		return html2png.MinPoolSize
	}
	if n > html2png.MaxPoolSize {
		return html2png.MaxPoolSize
	}
	return n
}
