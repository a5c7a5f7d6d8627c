package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/df07/go-raytracer-kernel/pkg/canvas"
	"github.com/df07/go-raytracer-kernel/pkg/core"
	"github.com/df07/go-raytracer-kernel/pkg/loaders"
	"github.com/df07/go-raytracer-kernel/pkg/renderer"
)

func testOptions(output string) options {
	return options{
		width:      900,
		height:     550,
		speed:      11.25,
		ticks:      10000,
		output:     output,
		scale:      1,
		workers:    2,
		background: "black",
	}
}

func TestRun(t *testing.T) {
	output := filepath.Join(t.TempDir(), "trajectory.ppm")

	result, err := run(context.Background(), testOptions(output), time.Now(), renderer.NewNopLogger())
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if result.path != output || result.format != canvas.FormatPPM {
		t.Errorf("Unexpected output %s (%s)", result.path, result.format)
	}
	if result.plotted == 0 {
		t.Errorf("Expected plotted positions")
	}
	if result.stats.TotalPixels != 900*550 {
		t.Errorf("Expected every pixel painted, got %d", result.stats.TotalPixels)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}
	if !strings.HasPrefix(string(data), "P3\n900 550\n255\n") {
		t.Errorf("Unexpected header: %q", string(data[:20]))
	}

	c, err := loaders.LoadPPM(output)
	if err != nil {
		t.Fatalf("Failed to parse output: %v", err)
	}
	// Launch position (0, 1) maps to row 550-1-1
	if c.PixelAt(0, 548) != core.White {
		t.Errorf("Expected launch position to be plotted, got %v", c.PixelAt(0, 548))
	}
}

func TestRun_ScaledPNG(t *testing.T) {
	opts := testOptions(filepath.Join(t.TempDir(), "trajectory.png"))
	opts.width, opts.height = 90, 55
	opts.speed = 3
	opts.scale = 2
	opts.background = "sky"

	if _, err := run(context.Background(), opts, time.Now(), renderer.NewNopLogger()); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	c, err := loaders.LoadImage(opts.output)
	if err != nil {
		t.Fatalf("Failed to load PNG: %v", err)
	}
	if c.Width() != 180 || c.Height() != 110 {
		t.Errorf("Expected 180x110 scaled image, got %dx%d", c.Width(), c.Height())
	}
}

func TestRun_Errors(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name   string
		modify func(*options)
	}{
		{"zero width", func(o *options) { o.width = 0 }},
		{"unknown background", func(o *options) { o.background = "plaid" }},
		{"unknown format", func(o *options) { o.format = "gif" }},
		{"no extension", func(o *options) { o.output = filepath.Join(tmpDir, "noext") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := testOptions(filepath.Join(tmpDir, "out.ppm"))
			tt.modify(&opts)
			if _, err := run(context.Background(), opts, time.Now(), renderer.NewNopLogger()); err == nil {
				t.Errorf("Expected error")
			}
		})
	}
}

func TestCreateOutputPath(t *testing.T) {
	tmpDir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd failed: %v", err)
	}
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("Chdir failed: %v", err)
	}
	defer os.Chdir(wd)

	now := time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC)
	path, err := createOutputPath("", now)
	if err != nil {
		t.Fatalf("createOutputPath failed: %v", err)
	}
	expected := filepath.Join("output", "projectile", "render_20240309_140507.ppm")
	if path != expected {
		t.Errorf("Expected %s, got %s", expected, path)
	}
	if info, err := os.Stat(filepath.Dir(path)); err != nil || !info.IsDir() {
		t.Errorf("Expected output directory to exist: %v", err)
	}

	custom := filepath.Join("nested", "dir", "image.png")
	if path, err := createOutputPath(custom, now); err != nil || path != custom {
		t.Errorf("Expected %s, got %s (%v)", custom, path, err)
	}
}

func TestResolveFormat(t *testing.T) {
	tests := []struct {
		path, format string
		expected     canvas.Format
		wantErr      bool
	}{
		{"out.ppm", "", canvas.FormatPPM, false},
		{"out.png", "", canvas.FormatPNG, false},
		{"out.ppm", "tiff", canvas.FormatTIFF, false},
		{"out", "", "", true},
		{"out.png", "gif", "", true},
	}

	for _, tt := range tests {
		got, err := resolveFormat(tt.path, tt.format)
		if (err != nil) != tt.wantErr || got != tt.expected {
			t.Errorf("resolveFormat(%q, %q) = %q, %v; expected %q, wantErr %v", tt.path, tt.format, got, err, tt.expected, tt.wantErr)
		}
	}
}

func TestBackgroundShader(t *testing.T) {
	sky, err := backgroundShader("sky", 11)
	if err != nil {
		t.Fatalf("backgroundShader failed: %v", err)
	}
	if !sky(0, 0).FuzzyEqual(core.NewColor(0.1, 0.2, 0.45)) {
		t.Errorf("Unexpected top color %v", sky(0, 0))
	}
	if !sky(5, 10).FuzzyEqual(core.NewColor(0.6, 0.75, 0.9)) {
		t.Errorf("Unexpected bottom color %v", sky(5, 10))
	}

	black, err := backgroundShader("black", 11)
	if err != nil || black(3, 3) != core.Black {
		t.Errorf("Expected black background, got %v (%v)", black(3, 3), err)
	}
}
