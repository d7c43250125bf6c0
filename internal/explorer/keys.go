package explorer

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/sphere-explorer/internal/app"
)

// Noise scale changes by this factor per key press.
const noiseScaleStep = 1.25

// applyEdit maps a live-edit hotkey onto the session settings. It reports
// whether key was an edit key. The planet is rebuilt on the next Update.
func applyEdit(c *app.Context, key sdl.Scancode, maxResolution int) bool {
	switch key {
	case sdl.SCANCODE_LEFTBRACKET:
		c.StepResolution(-1, maxResolution)
	case sdl.SCANCODE_RIGHTBRACKET:
		c.StepResolution(1, maxResolution)
	case sdl.SCANCODE_N:
		c.ToggleNoise()
	case sdl.SCANCODE_MINUS:
		c.ScaleNoise(1 / noiseScaleStep)
	case sdl.SCANCODE_EQUALS:
		c.ScaleNoise(noiseScaleStep)
	case sdl.SCANCODE_C:
		c.CycleColor()
	case sdl.SCANCODE_M:
		c.ToggleShape()
	default:
		return false
	}
	return true
}
