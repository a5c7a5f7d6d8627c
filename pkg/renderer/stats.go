package renderer

import (
	"time"

	"github.com/df07/go-raytracer-kernel/pkg/canvas"
)

// RenderStats contains statistics about a paint pass
type RenderStats struct {
	TotalPixels int           // Total number of pixels shaded
	Bands       int           // Number of row bands the canvas was split into
	Workers     int           // Maximum number of bands painted concurrently
	Duration    time.Duration // Wall-clock time of the pass
}

// PixelsPerSecond returns the shading throughput of the pass
func (s RenderStats) PixelsPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.TotalPixels) / s.Duration.Seconds()
}

// CalculateAverageLuminance returns the mean luminance of the canvas with
// channels clamped to [0, 1] as they would be encoded
func CalculateAverageLuminance(c *canvas.Canvas) float64 {
	total := 0.0
	for y := 0; y < c.Height(); y++ {
		for _, px := range c.Row(y) {
			total += px.Clamp(0, 1).Luminance()
		}
	}
	return total / float64(c.Width()*c.Height())
}
