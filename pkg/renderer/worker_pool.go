package renderer

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/df07/go-raytracer-kernel/pkg/canvas"
	"github.com/df07/go-raytracer-kernel/pkg/core"
)

// ShadeFunc computes the color of pixel (x, y). It is called concurrently
// for pixels in different bands and must not write to the canvas itself.
type ShadeFunc func(x, y int) core.Color

// PaintConfig contains configuration for parallel painting
type PaintConfig struct {
	BandHeight int // Rows per band (0 = one band per worker)
	NumWorkers int // Number of parallel workers (0 = use CPU count)
}

// DefaultPaintConfig returns sensible default values
func DefaultPaintConfig() PaintConfig {
	return PaintConfig{
		BandHeight: 16,
		NumWorkers: 0, // Auto-detect CPU count
	}
}

// Painter fills a canvas in parallel. The canvas is split into disjoint row
// bands and every band is written by exactly one goroutine, so no locking is
// needed.
type Painter struct {
	config PaintConfig
	logger core.Logger
}

// NewPainter creates a painter. A nil logger discards output.
func NewPainter(config PaintConfig, logger core.Logger) *Painter {
	if config.NumWorkers <= 0 {
		config.NumWorkers = runtime.NumCPU()
	}
	if logger == nil {
		logger = NewNopLogger()
	}
	return &Painter{config: config, logger: logger}
}

// GetNumWorkers returns the number of workers used per pass
func (p *Painter) GetNumWorkers() int {
	return p.config.NumWorkers
}

// bandHeight resolves the configured band height for a canvas of the given height
func (p *Painter) bandHeight(height int) int {
	if p.config.BandHeight > 0 {
		return p.config.BandHeight
	}
	return (height + p.config.NumWorkers - 1) / p.config.NumWorkers
}

// Paint shades every pixel of c. Bands not yet started when ctx is cancelled
// are skipped and the context error is returned; bands already running finish.
func (p *Painter) Paint(ctx context.Context, c *canvas.Canvas, shade ShadeFunc) (RenderStats, error) {
	startTime := time.Now()
	bands := NewBandGrid(c.Height(), p.bandHeight(c.Height()))

	stats := RenderStats{
		Bands:   len(bands),
		Workers: min(p.config.NumWorkers, len(bands)),
	}

	p.logger.Printf("Painting %dx%d canvas: %d bands, %d workers\n", c.Width(), c.Height(), stats.Bands, stats.Workers)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.config.NumWorkers)

	painted := make([]int, len(bands)) // Pixels per band, indexed by band ID
	for _, band := range bands {
		band := band
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			painted[band.ID] = paintBand(c, band, shade)
			return nil
		})
	}

	err := g.Wait()
	for _, n := range painted {
		stats.TotalPixels += n
	}
	stats.Duration = time.Since(startTime)

	if err != nil {
		p.logger.Printf("Painting stopped after %d pixels: %v\n", stats.TotalPixels, err)
		return stats, fmt.Errorf("paint cancelled: %w", err)
	}

	p.logger.Printf("Painted %d pixels in %v\n", stats.TotalPixels, stats.Duration)
	return stats, nil
}

// paintBand shades all pixels in the band's rows and returns the pixel count
func paintBand(c *canvas.Canvas, band Band, shade ShadeFunc) int {
	width := c.Width()
	for y := band.MinY; y < band.MaxY; y++ {
		for x := 0; x < width; x++ {
			c.WritePixel(x, y, shade(x, y))
		}
	}
	return band.Rows() * width
}
