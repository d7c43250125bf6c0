package noise

import "github.com/Faultbox/sphere-explorer/pkg/math"

// Layer samples a Perlin generator at a frequency and remaps the result to
// a non-negative displacement.
type Layer struct {
	Noise *Perlin
	Scale float32
}

// NewLayer wraps p with the given frequency scale.
func NewLayer(p *Perlin, scale float32) *Layer {
	return &Layer{Noise: p, Scale: scale}
}

// Value returns 0.5 * (1 + noise(scale * pos)), roughly in [0, 1].
func (l *Layer) Value(pos math.Vec3) float32 {
	return 0.5 * (1 + l.Noise.Noise(pos.Scale(l.Scale)))
}

// Values returns Value(pos) replicated into all three components, ready to be
// used as a per-axis elevation.
func (l *Layer) Values(pos math.Vec3) math.Vec3 {
	e := l.Value(pos)
	return math.Vec3{X: e, Y: e, Z: e}
}
