package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/df07/go-raytracer-kernel/pkg/canvas"
	"github.com/df07/go-raytracer-kernel/pkg/core"
)

// ppmParser accumulates P3 tokens line by line
type ppmParser struct {
	header  []int // width, height, maxval
	magic   bool  // "P3" seen
	canvas  *canvas.Canvas
	values  [3]float64 // channels of the pixel being read
	channel int        // index into values
	pixel   int        // index of the next pixel
}

// ParsePPM parses a plain-text P3 image into a canvas. Comments and any
// layout of whitespace and line breaks are accepted. Channel values are
// scaled by the maxval in the header so that maxval maps to 1.0.
func ParsePPM(reader io.Reader) (*canvas.Canvas, error) {
	parser := &ppmParser{}

	scanner := bufio.NewScanner(reader)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		if err := parser.processLine(scanner.Text()); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNumber, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading input: %w", err)
	}

	if err := parser.finalize(); err != nil {
		return nil, err
	}
	return parser.canvas, nil
}

// LoadPPM loads and parses a P3 image file
func LoadPPM(filename string) (*canvas.Canvas, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open PPM file: %w", err)
	}
	defer file.Close()

	return ParsePPM(file)
}

func (p *ppmParser) processLine(line string) error {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	for _, field := range strings.Fields(line) {
		if err := p.processToken(field); err != nil {
			return err
		}
	}
	return nil
}

func (p *ppmParser) processToken(token string) error {
	if !p.magic {
		if token != "P3" {
			return fmt.Errorf("unsupported magic number %q: only P3 is supported", token)
		}
		p.magic = true
		return nil
	}

	n, err := strconv.Atoi(token)
	if err != nil {
		return fmt.Errorf("invalid integer %q: %w", token, err)
	}

	if len(p.header) < 3 {
		return p.processHeaderValue(n)
	}
	return p.processChannel(n)
}

func (p *ppmParser) processHeaderValue(n int) error {
	p.header = append(p.header, n)
	if len(p.header) < 3 {
		return nil
	}

	width, height, maxval := p.header[0], p.header[1], p.header[2]
	if maxval <= 0 || maxval > 65535 {
		return fmt.Errorf("invalid maxval %d", maxval)
	}
	c, err := canvas.New(width, height)
	if err != nil {
		return err
	}
	p.canvas = c
	return nil
}

func (p *ppmParser) processChannel(n int) error {
	maxval := p.header[2]
	if n < 0 || n > maxval {
		return fmt.Errorf("channel value %d outside 0..%d", n, maxval)
	}

	width, height := p.canvas.Width(), p.canvas.Height()
	if p.pixel >= width*height {
		return fmt.Errorf("too many values for a %dx%d image", width, height)
	}

	p.values[p.channel] = float64(n) / float64(maxval)
	p.channel++
	if p.channel == 3 {
		p.canvas.WritePixel(p.pixel%width, p.pixel/width, core.NewColor(p.values[0], p.values[1], p.values[2]))
		p.channel = 0
		p.pixel++
	}
	return nil
}

func (p *ppmParser) finalize() error {
	if !p.magic {
		return fmt.Errorf("empty PPM input")
	}
	if p.canvas == nil {
		return fmt.Errorf("incomplete PPM header")
	}
	if expected := p.canvas.Width() * p.canvas.Height(); p.pixel != expected || p.channel != 0 {
		return fmt.Errorf("truncated pixel data: got %d of %d pixels", p.pixel, expected)
	}
	return nil
}
