// Package simulation moves a projectile through a simple environment using
// the tuple algebra and plots its trajectory onto a canvas.
package simulation

import (
	"math"

	"github.com/df07/go-raytracer-kernel/pkg/canvas"
	"github.com/df07/go-raytracer-kernel/pkg/core"
)

// Projectile has a position (a point) and a velocity (a vector)
type Projectile struct {
	Position core.Tuple
	Velocity core.Tuple
}

// Environment applies gravity and wind (both vectors) on every tick
type Environment struct {
	Gravity core.Tuple
	Wind    core.Tuple
}

// Config contains the starting conditions of a simulation
type Config struct {
	Start    core.Tuple // Launch position (point)
	Velocity core.Tuple // Launch velocity (vector)
	Gravity  core.Tuple
	Wind     core.Tuple
	TimeStep float64 // Fraction of the velocity applied to the position per tick
	MaxTicks int     // Upper bound on the number of ticks
}

// DefaultConfig returns a launch that fits a 900x550 canvas at one pixel
// per world unit
func DefaultConfig() Config {
	return Config{
		Start:    core.NewPoint(0, 1, 0),
		Velocity: core.NewVector(1, 1.8, 0).Normalize().Multiply(11.25),
		Gravity:  core.NewVector(0, -0.1, 0),
		Wind:     core.NewVector(-0.01, 0, 0),
		TimeStep: 1,
		MaxTicks: 10000,
	}
}

// Tick advances the projectile by one step. The position moves by
// velocity*timeStep and the velocity picks up gravity and wind.
func Tick(env Environment, p Projectile, timeStep float64) Projectile {
	return Projectile{
		Position: p.Position.Add(p.Velocity.Multiply(timeStep)),
		Velocity: p.Velocity.Add(env.Gravity).Add(env.Wind),
	}
}

// Run simulates until the projectile drops below y=0 or MaxTicks is reached.
// The returned trajectory starts with the launch position.
func Run(cfg Config) []core.Tuple {
	env := Environment{Gravity: cfg.Gravity, Wind: cfg.Wind}
	p := Projectile{Position: cfg.Start, Velocity: cfg.Velocity}

	trajectory := []core.Tuple{p.Position}
	for i := 0; i < cfg.MaxTicks && p.Position.Y >= 0; i++ {
		p = Tick(env, p, cfg.TimeStep)
		trajectory = append(trajectory, p.Position)
	}
	return trajectory
}

// Plot marks each trajectory position on the canvas. World y grows upward
// while canvas rows grow downward, so y is flipped. Positions that fall
// outside the canvas are skipped and counted.
func Plot(c *canvas.Canvas, trajectory []core.Tuple, color core.Color) (plotted, skipped int) {
	for _, pos := range trajectory {
		x := int(math.Round(pos.X))
		y := c.Height() - 1 - int(math.Round(pos.Y))
		if !c.InBounds(x, y) {
			skipped++
			continue
		}
		c.WritePixel(x, y, color)
		plotted++
	}
	return plotted, skipped
}
