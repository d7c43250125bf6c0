// Package picking casts rays from screen coordinates onto the planet.
package picking

import (
	gomath "math"

	"github.com/chewxy/math32"

	"github.com/Faultbox/sphere-explorer/internal/terrain"
	"github.com/Faultbox/sphere-explorer/pkg/math"
)

// Ray represents a ray in 3D space with origin and direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3 // normalized
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) math.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}

// ScreenToRay converts pixel coordinates to a world-space ray.
// invViewProj is the inverse of projection * view.
func ScreenToRay(screenX, screenY, viewportW, viewportH float32, invViewProj math.Mat4) Ray {
	ndcX := 2*screenX/viewportW - 1
	ndcY := 1 - 2*screenY/viewportH // screen y grows down

	near := unproject(invViewProj, math.Vec4{X: ndcX, Y: ndcY, Z: -1, W: 1})
	far := unproject(invViewProj, math.Vec4{X: ndcX, Y: ndcY, Z: 1, W: 1})

	return Ray{Origin: near, Direction: far.Sub(near).Normalize()}
}

func unproject(inv math.Mat4, ndc math.Vec4) math.Vec3 {
	p := inv.MulVec4(ndc)
	if p.W != 0 {
		return math.Vec3{X: p.X / p.W, Y: p.Y / p.W, Z: p.Z / p.W}
	}
	return p.XYZ()
}

// IntersectSphere returns the nearest non-negative hit distance with a sphere.
// A ray starting inside the sphere returns the exit distance.
func (r Ray) IntersectSphere(center math.Vec3, radius float32) (t float32, hit bool) {
	oc := r.Origin.Sub(center)
	b := oc.Dot(r.Direction)
	c := oc.Dot(oc) - radius*radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	sq := math32.Sqrt(disc)
	t0, t1 := -b-sq, -b+sq
	switch {
	case t0 >= 0:
		return t0, true
	case t1 >= 0:
		return t1, true
	default:
		return 0, false
	}
}

// IntersectBounds tests the ray against an axis-aligned box using the slab
// method. If the ray starts inside the box, the exit distance is returned.
func (r Ray) IntersectBounds(box terrain.Bounds) (t float32, hit bool) {
	tmin := float32(-gomath.MaxFloat32)
	tmax := float32(gomath.MaxFloat32)

	origin := r.Origin.Array()
	dir := r.Direction.Array()
	for axis := 0; axis < 3; axis++ {
		if dir[axis] == 0 {
			if origin[axis] < box.Min[axis] || origin[axis] > box.Max[axis] {
				return 0, false
			}
			continue
		}
		t1 := (box.Min[axis] - origin[axis]) / dir[axis]
		t2 := (box.Max[axis] - origin[axis]) / dir[axis]
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = max(tmin, t1)
		tmax = min(tmax, t2)
	}

	if tmax < tmin || tmax < 0 {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true
	}
	return tmin, true
}

// LatLon returns the latitude and longitude in degrees of a point on a sphere
// centered at the origin. Longitude 0 faces +Z, positive toward +X.
func LatLon(p math.Vec3) (lat, lon float32) {
	n := p.Normalize()
	lat = math.RadToDeg(math32.Asin(math.Clamp(n.Y, -1, 1)))
	lon = math.RadToDeg(math32.Atan2(n.X, n.Z))
	return lat, lon
}

// PickSurface casts a screen ray at a planet of the given radius and returns
// the hit point in the planet's local frame. model is the planet model matrix.
func PickSurface(screenX, screenY, viewportW, viewportH float32, view, projection, model math.Mat4, radius float32) (math.Vec3, bool) {
	ray := ScreenToRay(screenX, screenY, viewportW, viewportH, projection.Mul(view).Inverse())
	t, hit := ray.IntersectSphere(model.TransformPoint(math.Vec3{}), radius)
	if !hit {
		return math.Vec3{}, false
	}
	return model.Inverse().TransformPoint(ray.At(t)), true
}
