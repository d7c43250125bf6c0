// Package camera provides the free-fly and orbit cameras used to view a planet.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/sphere-explorer/pkg/math"
)

// Movement is a keyboard movement direction for FlyCamera.
type Movement int

const (
	Forward Movement = iota
	Backward
	Left
	Right
	Up
	Down
)

// Fly camera defaults. Angles are in degrees.
const (
	DefaultYaw         float32 = -90
	DefaultPitch       float32 = 0
	DefaultSpeed       float32 = 2.5
	DefaultSensitivity float32 = 0.1
	DefaultZoom        float32 = 45

	maxPitch float32 = 89
	minZoom  float32 = 1
)

// FlyCamera is a free-fly camera driven by Euler angles.
type FlyCamera struct {
	Position math.Vec3
	Front    math.Vec3
	Up       math.Vec3
	Right    math.Vec3
	WorldUp  math.Vec3

	Yaw   float32 // degrees
	Pitch float32 // degrees

	MovementSpeed    float32 // units per second
	MouseSensitivity float32 // degrees per pixel
	Zoom             float32 // vertical field of view in degrees
	MaxZoom          float32 // widest field of view scrolling can reach
}

// NewFlyCamera creates a camera at position looking down -Z.
func NewFlyCamera(position math.Vec3) *FlyCamera {
	c := &FlyCamera{
		Position:         position,
		WorldUp:          math.Vec3{X: 0, Y: 1, Z: 0},
		Yaw:              DefaultYaw,
		Pitch:            DefaultPitch,
		MovementSpeed:    DefaultSpeed,
		MouseSensitivity: DefaultSensitivity,
		Zoom:             DefaultZoom,
		MaxZoom:          DefaultZoom,
	}
	c.updateVectors()
	return c
}

// ViewMatrix returns the world-to-view transform.
func (c *FlyCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position, c.Position.Add(c.Front), c.Up)
}

// ProjectionMatrix returns a perspective projection using the current zoom.
func (c *FlyCamera) ProjectionMatrix(aspect, near, far float32) math.Mat4 {
	return math.Perspective(math.DegToRad(c.Zoom), aspect, near, far)
}

// ProcessKeyboard moves the camera along its local axes.
func (c *FlyCamera) ProcessKeyboard(dir Movement, dt float32) {
	velocity := c.MovementSpeed * dt
	switch dir {
	case Forward:
		c.Position = c.Position.Add(c.Front.Scale(velocity))
	case Backward:
		c.Position = c.Position.Sub(c.Front.Scale(velocity))
	case Left:
		c.Position = c.Position.Sub(c.Right.Scale(velocity))
	case Right:
		c.Position = c.Position.Add(c.Right.Scale(velocity))
	case Up:
		c.Position = c.Position.Add(c.WorldUp.Scale(velocity))
	case Down:
		c.Position = c.Position.Sub(c.WorldUp.Scale(velocity))
	}
}

// ProcessMouseMovement turns the camera by a mouse delta in pixels. Positive
// dy looks up.
func (c *FlyCamera) ProcessMouseMovement(dx, dy float32, constrainPitch bool) {
	c.Yaw += dx * c.MouseSensitivity
	c.Pitch += dy * c.MouseSensitivity

	if constrainPitch {
		c.Pitch = math.Clamp(c.Pitch, -maxPitch, maxPitch)
	}
	c.updateVectors()
}

// ProcessMouseScroll narrows or widens the field of view within
// [1, MaxZoom].
func (c *FlyCamera) ProcessMouseScroll(dy float32) {
	hi := c.MaxZoom
	if hi < minZoom {
		hi = minZoom
	}
	c.Zoom = math.Clamp(c.Zoom-dy, minZoom, hi)
}

func (c *FlyCamera) updateVectors() {
	yaw := math.DegToRad(c.Yaw)
	pitch := math.DegToRad(c.Pitch)

	front := math.Vec3{
		X: math32.Cos(yaw) * math32.Cos(pitch),
		Y: math32.Sin(pitch),
		Z: math32.Sin(yaw) * math32.Cos(pitch),
	}
	c.Front = front.Normalize()
	c.Right = c.Front.Cross(c.WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
}

// OrbitCamera orbits a center point at a distance.
type OrbitCamera struct {
	Center math.Vec3

	Distance float32
	Pitch    float32 // radians, positive looks down from above
	Yaw      float32 // radians around world Y

	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	DragSensitivity float32 // radians per pixel
	ZoomSensitivity float32 // fraction of distance per scroll step
}

// NewOrbitCamera creates an orbit camera framing a unit planet.
func NewOrbitCamera() *OrbitCamera {
	return &OrbitCamera{
		Distance:        3,
		Pitch:           0.3,
		MinDistance:     1.2,
		MaxDistance:     20,
		MinPitch:        -1.5,
		MaxPitch:        1.5,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	offset := math.Vec3{
		X: c.Distance * math32.Cos(c.Pitch) * math32.Sin(c.Yaw),
		Y: c.Distance * math32.Sin(c.Pitch),
		Z: c.Distance * math32.Cos(c.Pitch) * math32.Cos(c.Yaw),
	}
	return c.Center.Add(offset)
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Position(), c.Center, math.Vec3{X: 0, Y: 1, Z: 0})
}

// ProjectionMatrix returns a perspective projection. fovY is in degrees.
func (c *OrbitCamera) ProjectionMatrix(fovY, aspect, near, far float32) math.Mat4 {
	return math.Perspective(math.DegToRad(fovY), aspect, near, far)
}

// HandleDrag rotates around the center by a mouse drag delta.
func (c *OrbitCamera) HandleDrag(dx, dy float32) {
	c.Yaw -= dx * c.DragSensitivity
	c.Pitch = math.Clamp(c.Pitch+dy*c.DragSensitivity, c.MinPitch, c.MaxPitch)
}

// HandleZoom moves toward or away from the center by a scroll delta.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.Distance = math.Clamp(c.Distance-delta*c.Distance*c.ZoomSensitivity, c.MinDistance, c.MaxDistance)
}

// FitRadius centers on the origin and backs off far enough to frame a sphere
// of the given radius with the given vertical field of view in degrees.
func (c *OrbitCamera) FitRadius(radius, fovY float32) {
	c.Center = math.Vec3{}
	half := math.DegToRad(fovY) / 2
	d := radius / math32.Sin(half) * 1.1
	c.MinDistance = radius * 1.05
	if c.MaxDistance < d {
		c.MaxDistance = d * 4
	}
	c.Distance = math.Clamp(d, c.MinDistance, c.MaxDistance)
}
