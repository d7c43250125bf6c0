package app

import (
	"github.com/Faultbox/sphere-explorer/internal/terrain"
	"github.com/Faultbox/sphere-explorer/pkg/math"
)

// Palette is the color cycle used by the explorer hotkey.
var Palette = [][3]float32{
	{0.2, 0.5, 0.8},
	{0.35, 0.65, 0.3},
	{0.8, 0.45, 0.25},
	{0.85, 0.85, 0.8},
	{0.6, 0.3, 0.7},
}

// Noise scale limits for live edits.
const (
	MinNoiseScale float32 = 0.1
	MaxNoiseScale float32 = 10
)

// StepResolution changes the grid resolution by delta within limit.
func (c *Context) StepResolution(delta, limit int) {
	r := c.Settings.Resolution + delta
	if r < terrain.MinResolution {
		r = terrain.MinResolution
	}
	if r > limit {
		r = limit
	}
	c.Settings.Resolution = r
}

// ToggleNoise flips noise displacement.
func (c *Context) ToggleNoise() {
	c.Settings.NoiseEnabled = !c.Settings.NoiseEnabled
}

// ScaleNoise multiplies the noise scale by factor.
func (c *Context) ScaleNoise(factor float32) {
	c.Settings.NoiseScale = math.Clamp(c.Settings.NoiseScale*factor, MinNoiseScale, MaxNoiseScale)
}

// CycleColor moves to the next palette color. A color not in the palette
// restarts the cycle.
func (c *Context) CycleColor() {
	next := 0
	for i, col := range Palette {
		if col == c.Settings.Color {
			next = (i + 1) % len(Palette)
			break
		}
	}
	c.Settings.Color = Palette[next]
}

// ToggleShape switches between sphere and cube.
func (c *Context) ToggleShape() {
	if c.Settings.Shape == terrain.ShapeSphere {
		c.Settings.Shape = terrain.ShapeCube
	} else {
		c.Settings.Shape = terrain.ShapeSphere
	}
}
