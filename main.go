package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/df07/go-raytracer-kernel/pkg/canvas"
	"github.com/df07/go-raytracer-kernel/pkg/core"
	"github.com/df07/go-raytracer-kernel/pkg/renderer"
	"github.com/df07/go-raytracer-kernel/pkg/simulation"
)

// options holds the parsed command line
type options struct {
	width, height int
	speed         float64
	ticks         int
	output        string
	format        string
	scale         int
	workers       int
	background    string
	verbose       bool
}

// summary describes a finished run
type summary struct {
	path      string
	format    canvas.Format
	positions int
	plotted   int
	skipped   int
	stats     renderer.RenderStats
	luminance float64
}

func main() {
	opts := options{}
	flag.IntVar(&opts.width, "width", 900, "Canvas width in pixels")
	flag.IntVar(&opts.height, "height", 550, "Canvas height in pixels")
	flag.Float64Var(&opts.speed, "speed", 11.25, "Launch speed in world units per tick")
	flag.IntVar(&opts.ticks, "ticks", 10000, "Maximum number of simulation ticks")
	flag.StringVar(&opts.output, "output", "", "Output file (default output/projectile/render_<timestamp>.ppm)")
	flag.StringVar(&opts.format, "format", "", "Output format: ppm, png, bmp or tiff (default from extension)")
	flag.IntVar(&opts.scale, "scale", 1, "Integer upscaling factor for raster formats")
	flag.IntVar(&opts.workers, "workers", 0, "Number of paint workers (0 = CPU count)")
	flag.StringVar(&opts.background, "background", "black", "Background: 'black' or 'sky'")
	flag.BoolVar(&opts.verbose, "verbose", false, "Log painting progress")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Projectile Plotter")
		fmt.Println("Usage: projectile [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Simulates a projectile and plots its trajectory onto a canvas.")
		fmt.Println("Output will be saved to output/projectile/render_<timestamp>.ppm unless -output is given")
		return
	}

	var logger core.Logger = renderer.NewNopLogger()
	if opts.verbose {
		logger = renderer.NewDefaultLogger()
	}

	result, err := run(context.Background(), opts, time.Now(), logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	p := message.NewPrinter(language.English)
	p.Printf("Simulated %d positions: %d plotted, %d outside the canvas\n", result.positions, result.plotted, result.skipped)
	p.Printf("Painted %d pixels in %d bands (%.0f pixels/s)\n", result.stats.TotalPixels, result.stats.Bands, result.stats.PixelsPerSecond())
	p.Printf("Average luminance: %.4f\n", result.luminance)
	fmt.Printf("Render saved as %s (%s)\n", result.path, result.format)
}

// run simulates, paints and saves according to opts
func run(ctx context.Context, opts options, now time.Time, logger core.Logger) (summary, error) {
	background, err := backgroundShader(opts.background, opts.height)
	if err != nil {
		return summary{}, err
	}

	path, err := createOutputPath(opts.output, now)
	if err != nil {
		return summary{}, err
	}
	format, err := resolveFormat(path, opts.format)
	if err != nil {
		return summary{}, err
	}

	c, err := canvas.New(opts.width, opts.height)
	if err != nil {
		return summary{}, err
	}

	painter := renderer.NewPainter(renderer.PaintConfig{
		BandHeight: renderer.DefaultPaintConfig().BandHeight,
		NumWorkers: opts.workers,
	}, logger)
	stats, err := painter.Paint(ctx, c, background)
	if err != nil {
		return summary{}, err
	}

	cfg := simulation.DefaultConfig()
	cfg.Velocity = cfg.Velocity.Normalize().Multiply(opts.speed)
	cfg.MaxTicks = opts.ticks
	trajectory := simulation.Run(cfg)
	plotted, skipped := simulation.Plot(c, trajectory, core.White)
	logger.Printf("Plotted %d of %d positions\n", plotted, len(trajectory))

	if opts.scale > 1 && format != canvas.FormatPPM {
		err = canvas.SaveImage(path, c, c.Scaled(opts.scale), format)
	} else {
		err = c.SaveAs(path, format)
	}
	if err != nil {
		return summary{}, fmt.Errorf("error saving %s: %w", path, err)
	}

	return summary{
		path:      path,
		format:    format,
		positions: len(trajectory),
		plotted:   plotted,
		skipped:   skipped,
		stats:     stats,
		luminance: renderer.CalculateAverageLuminance(c),
	}, nil
}

// backgroundShader returns the shade function for a named background
func backgroundShader(name string, height int) (renderer.ShadeFunc, error) {
	switch name {
	case "black":
		return func(x, y int) core.Color { return core.Black }, nil
	case "sky":
		top := core.NewColor(0.1, 0.2, 0.45)
		bottom := core.NewColor(0.6, 0.75, 0.9)
		return func(x, y int) core.Color {
			t := float64(y) / float64(max(1, height-1))
			return top.Multiply(1 - t).Add(bottom.Multiply(t))
		}, nil
	}
	return nil, fmt.Errorf("unknown background %q", name)
}

// createOutputPath returns the output file path, creating its directory.
// An empty output uses output/projectile/render_<timestamp>.ppm.
func createOutputPath(output string, now time.Time) (string, error) {
	if output == "" {
		timestamp := now.Format("20060102_150405")
		output = filepath.Join("output", "projectile", fmt.Sprintf("render_%s.ppm", timestamp))
	}

	if err := os.MkdirAll(filepath.Dir(output), 0755); err != nil {
		return "", fmt.Errorf("error creating output directory: %w", err)
	}
	return output, nil
}

// resolveFormat picks the explicit format if given, otherwise the file extension
func resolveFormat(path, format string) (canvas.Format, error) {
	if format != "" {
		return canvas.ParseFormat(format)
	}
	return canvas.FormatFromPath(path)
}
