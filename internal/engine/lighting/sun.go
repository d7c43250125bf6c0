// Package lighting holds the light setup shared by the planet shaders.
package lighting

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/sphere-explorer/pkg/math"
)

// Sun is a directional light.
type Sun struct {
	Direction math.Vec3 // unit vector pointing towards the sun
	Color     [3]float32
	Ambient   float32
}

// NewSun builds a white sun from longitude/latitude in degrees.
func NewSun(longitude, latitude, ambient float32) Sun {
	return Sun{
		Direction: SunDirection(longitude, latitude),
		Color:     [3]float32{1, 1, 1},
		Ambient:   ambient,
	}
}

// SunDirection converts longitude/latitude angles in degrees to a unit
// direction. Longitude rotates around Y starting at +Z, latitude is the
// elevation above the XZ plane.
func SunDirection(longitude, latitude float32) math.Vec3 {
	lon := math.DegToRad(longitude)
	lat := math.DegToRad(latitude)

	return math.Vec3{
		X: math32.Cos(lat) * math32.Sin(lon),
		Y: math32.Sin(lat),
		Z: math32.Cos(lat) * math32.Cos(lon),
	}
}

// Diffuse returns the Lambert term for a surface normal, floored at the
// ambient level. It mirrors the fragment shader for CPU-side previews.
func (s Sun) Diffuse(normal math.Vec3) float32 {
	d := normal.Normalize().Dot(s.Direction)
	if d < 0 {
		d = 0
	}
	return math.Clamp(s.Ambient+(1-s.Ambient)*d, 0, 1)
}
