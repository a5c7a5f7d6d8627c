package simulation

import (
	"testing"

	"github.com/df07/go-raytracer-kernel/pkg/canvas"
	"github.com/df07/go-raytracer-kernel/pkg/core"
)

func TestTick(t *testing.T) {
	env := Environment{
		Gravity: core.NewVector(0, -0.1, 0),
		Wind:    core.NewVector(-0.01, 0, 0),
	}
	p := Projectile{
		Position: core.NewPoint(0, 1, 0),
		Velocity: core.NewVector(1, 1, 0),
	}

	next := Tick(env, p, 1)

	if !next.Position.FuzzyEqual(core.NewPoint(1, 2, 0)) {
		t.Errorf("Unexpected position %v", next.Position)
	}
	if !next.Velocity.FuzzyEqual(core.NewVector(0.99, 0.9, 0)) {
		t.Errorf("Unexpected velocity %v", next.Velocity)
	}
	if !next.Position.IsPoint() || !next.Velocity.IsVector() {
		t.Errorf("Tick must keep points as points and vectors as vectors")
	}
}

func TestRun(t *testing.T) {
	cfg := Config{
		Start:    core.NewPoint(0, 1, 0),
		Velocity: core.NewVector(1, 1, 0).Normalize(),
		Gravity:  core.NewVector(0, -0.1, 0),
		Wind:     core.NewVector(-0.01, 0, 0),
		TimeStep: 1,
		MaxTicks: 1000,
	}

	trajectory := Run(cfg)

	if len(trajectory) < 3 {
		t.Fatalf("Expected a trajectory of several ticks, got %d", len(trajectory))
	}
	if !trajectory[0].FuzzyEqual(cfg.Start) {
		t.Errorf("Trajectory should start at the launch position, got %v", trajectory[0])
	}
	last := trajectory[len(trajectory)-1]
	if last.Y >= 0 {
		t.Errorf("Expected the projectile to land, last position %v", last)
	}
	for i, pos := range trajectory[:len(trajectory)-1] {
		if pos.Y < 0 {
			t.Errorf("Position %d below ground before the final tick: %v", i, pos)
		}
	}
}

func TestRun_MaxTicks(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Gravity = core.NewVector(0, 0, 0)
	cfg.MaxTicks = 5

	if got := len(Run(cfg)); got != 6 {
		t.Errorf("Expected launch position plus 5 ticks, got %d positions", got)
	}
}

func TestPlot(t *testing.T) {
	c, err := canvas.New(10, 5)
	if err != nil {
		t.Fatalf("canvas.New failed: %v", err)
	}

	trajectory := []core.Tuple{
		core.NewPoint(0, 0, 0),     // bottom-left
		core.NewPoint(9, 4, 0),     // top-right
		core.NewPoint(3.4, 1.6, 0), // rounds to (3, 2)
		core.NewPoint(-1, 0, 0),    // left of canvas
		core.NewPoint(2, 5, 0),     // above canvas
	}

	plotted, skipped := Plot(c, trajectory, core.Red)
	if plotted != 3 || skipped != 2 {
		t.Errorf("Expected 3 plotted and 2 skipped, got %d and %d", plotted, skipped)
	}

	for _, px := range []struct{ x, y int }{{0, 4}, {9, 0}, {3, 2}} {
		if c.PixelAt(px.x, px.y) != core.Red {
			t.Errorf("Expected red at (%d, %d), got %v", px.x, px.y, c.PixelAt(px.x, px.y))
		}
	}
}

func TestDefaultConfig_FitsCanvas(t *testing.T) {
	c, err := canvas.New(900, 550)
	if err != nil {
		t.Fatalf("canvas.New failed: %v", err)
	}

	trajectory := Run(DefaultConfig())
	plotted, skipped := Plot(c, trajectory, core.White)

	// Only the final below-ground position may fall outside
	if skipped > 1 {
		t.Errorf("Expected at most 1 skipped position, got %d of %d", skipped, len(trajectory))
	}
	if plotted < 100 {
		t.Errorf("Expected a long trajectory, plotted only %d", plotted)
	}
}
