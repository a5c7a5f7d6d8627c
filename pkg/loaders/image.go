package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/tiff" // TIFF decoder

	"github.com/df07/go-raytracer-kernel/pkg/canvas"
	"github.com/df07/go-raytracer-kernel/pkg/core"
)

// LoadImage loads a PNG, JPEG, BMP or TIFF image into a canvas
func LoadImage(filename string) (*canvas.Canvas, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	// Decode image (format detected from the file header)
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	return FromImage(img)
}

// FromImage copies an image into a new canvas. Alpha is ignored.
func FromImage(img image.Image) (*canvas.Canvas, error) {
	bounds := img.Bounds()
	c, err := canvas.New(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}

	for y := 0; y < bounds.Dy(); y++ {
		for x := 0; x < bounds.Dx(); x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535], convert to [0, 1]
			c.WritePixel(x, y, core.NewColor(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			))
		}
	}
	return c, nil
}

// LoadCanvas loads any supported image file, dispatching P3 files to LoadPPM
func LoadCanvas(filename string) (*canvas.Canvas, error) {
	if strings.EqualFold(filepath.Ext(filename), ".ppm") {
		return LoadPPM(filename)
	}
	return LoadImage(filename)
}
