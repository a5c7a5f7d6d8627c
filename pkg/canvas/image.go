package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
)

// Format identifies an output image encoding
type Format string

const (
	FormatPPM  Format = "ppm"
	FormatPNG  Format = "png"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
)

// ParseFormat maps a name or file extension (with or without the dot) to a Format
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "ppm", "p3":
		return FormatPPM, nil
	case "png":
		return FormatPNG, nil
	case "bmp":
		return FormatBMP, nil
	case "tif", "tiff":
		return FormatTIFF, nil
	}
	return "", fmt.Errorf("unsupported image format %q", name)
}

// FormatFromPath picks the format from the file extension of path
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", fmt.Errorf("cannot determine image format of %q: no extension", path)
	}
	return ParseFormat(ext)
}

// rgbaAt converts a canvas color to 8-bit RGBA using the same channel
// conversion as the P3 encoder
func (c *Canvas) rgbaAt(x, y int) color.RGBA {
	px := c.pixels[y*c.width+x]
	return color.RGBA{
		R: uint8(Channel(px.R)),
		G: uint8(Channel(px.G)),
		B: uint8(Channel(px.B)),
		A: 255,
	}
}

// Image converts the canvas to an opaque RGBA image
func (c *Canvas) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			img.SetRGBA(x, y, c.rgbaAt(x, y))
		}
	}
	return img
}

// Scaled returns the canvas as an image enlarged by an integer factor with
// nearest-neighbour sampling, so each pixel becomes a factor x factor block
func (c *Canvas) Scaled(factor int) *image.RGBA {
	src := c.Image()
	if factor <= 1 {
		return src
	}
	dst := image.NewRGBA(image.Rect(0, 0, c.width*factor, c.height*factor))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// Encode writes the canvas to w in the given format
func (c *Canvas) Encode(w io.Writer, format Format) error {
	return EncodeImage(w, c, c.Image(), format)
}

// EncodeImage writes img in the given format. P3 output is produced from the
// canvas itself since it cannot be derived from a resampled image.
func EncodeImage(w io.Writer, c *Canvas, img image.Image, format Format) error {
	var err error
	switch format {
	case FormatPPM:
		err = c.WritePPM(w)
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("unsupported image format %q", format)
	}
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", format, err)
	}
	return nil
}

// Save writes the canvas to path, choosing the format from the extension.
// On any error the partially written file is removed.
func (c *Canvas) Save(path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	return c.SaveAs(path, format)
}

// SaveAs writes the canvas to path in the given format
func (c *Canvas) SaveAs(path string, format Format) error {
	return SaveImage(path, c, c.Image(), format)
}

// SaveImage writes img (or the canvas, for P3) to path in a single pass
func SaveImage(path string, c *Canvas, img image.Image, format Format) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); err == nil && closeErr != nil {
			err = fmt.Errorf("failed to close image file: %w", closeErr)
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	return EncodeImage(file, c, img, format)
}
