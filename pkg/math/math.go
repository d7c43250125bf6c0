// Package math provides the vector and matrix types used for view, projection
// and model transforms.
//
// Matrices are column-major and act on column vectors: a.Mul(b) applied to a
// point is the same as applying b first and a second. Every builder in this
// package follows that rule, so a model matrix reads Translate * Rotate * Scale.
package math

import (
	"errors"

	"github.com/chewxy/math32"
)

var (
	// ErrZeroLength is returned when a unit vector is requested from a zero vector.
	ErrZeroLength = errors.New("math: zero-length vector")

	// ErrDegenerateView is returned when a view matrix cannot be built because
	// eye and center coincide or up is parallel to the view direction.
	ErrDegenerateView = errors.New("math: degenerate view")
)

// Epsilon is the tolerance used for degenerate-input checks.
const Epsilon = 1e-6

// DegToRad converts degrees to radians.
func DegToRad(deg float32) float32 {
	return deg * math32.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(rad float32) float32 {
	return rad * 180 / math32.Pi
}

// Clamp limits x to [lo, hi].
func Clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Lerp blends a and b by t.
func Lerp(a, b, t float32) float32 {
	return a*(1-t) + b*t
}

// ApproxEqual reports whether a and b differ by at most eps.
func ApproxEqual(a, b, eps float32) bool {
	return math32.Abs(a-b) <= eps
}
