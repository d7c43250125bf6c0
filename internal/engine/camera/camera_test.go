package camera

import (
	"testing"

	"github.com/Faultbox/sphere-explorer/pkg/math"
)

const eps = 1e-4

func TestNewFlyCameraDefaults(t *testing.T) {
	c := NewFlyCamera(math.Vec3{X: 0, Y: 0, Z: 3})

	if c.Yaw != -90 || c.Pitch != 0 {
		t.Errorf("yaw/pitch = %f/%f, want -90/0", c.Yaw, c.Pitch)
	}
	if c.MovementSpeed != 2.5 || c.MouseSensitivity != 0.1 || c.Zoom != 45 {
		t.Errorf("unexpected defaults %+v", c)
	}
	if !c.Front.ApproxEqual(math.Vec3{Z: -1}, eps) {
		t.Errorf("front = %v, want (0,0,-1)", c.Front)
	}
	if !c.Right.ApproxEqual(math.Vec3{X: 1}, eps) {
		t.Errorf("right = %v, want (1,0,0)", c.Right)
	}
	if !c.Up.ApproxEqual(math.Vec3{Y: 1}, eps) {
		t.Errorf("up = %v, want (0,1,0)", c.Up)
	}
}

func TestFlyCameraViewMatrix(t *testing.T) {
	c := NewFlyCamera(math.Vec3{X: 0, Y: 0, Z: 3})
	view := c.ViewMatrix()

	// The origin sits 3 units in front of the camera
	got := view.TransformPoint(math.Vec3{})
	if !got.ApproxEqual(math.Vec3{Z: -3}, eps) {
		t.Errorf("origin in view space = %v, want (0,0,-3)", got)
	}
}

func TestProcessKeyboard(t *testing.T) {
	tests := []struct {
		dir  Movement
		want math.Vec3
	}{
		{Forward, math.Vec3{Z: -2.5}},
		{Backward, math.Vec3{Z: 2.5}},
		{Left, math.Vec3{X: -2.5}},
		{Right, math.Vec3{X: 2.5}},
		{Up, math.Vec3{Y: 2.5}},
		{Down, math.Vec3{Y: -2.5}},
	}
	for _, tt := range tests {
		c := NewFlyCamera(math.Vec3{})
		c.ProcessKeyboard(tt.dir, 1)
		if !c.Position.ApproxEqual(tt.want, eps) {
			t.Errorf("move %d: position = %v, want %v", tt.dir, c.Position, tt.want)
		}
	}
}

func TestProcessMouseMovementClampsPitch(t *testing.T) {
	c := NewFlyCamera(math.Vec3{})
	c.ProcessMouseMovement(0, 10000, true)
	if c.Pitch != 89 {
		t.Errorf("pitch = %f, want 89", c.Pitch)
	}
	c.ProcessMouseMovement(0, -20000, true)
	if c.Pitch != -89 {
		t.Errorf("pitch = %f, want -89", c.Pitch)
	}

	c.ProcessMouseMovement(0, 2000, false)
	if c.Pitch <= 89 {
		t.Errorf("unconstrained pitch = %f, want > 89", c.Pitch)
	}
}

func TestProcessMouseMovementYaw(t *testing.T) {
	c := NewFlyCamera(math.Vec3{})
	c.ProcessMouseMovement(900, 0, true) // 90 degrees right
	if !c.Front.ApproxEqual(math.Vec3{X: 1}, eps) {
		t.Errorf("front = %v, want (1,0,0)", c.Front)
	}
	if l := c.Front.Length(); !math.ApproxEqual(l, 1, eps) {
		t.Errorf("|front| = %f", l)
	}
}

func TestProcessMouseScroll(t *testing.T) {
	c := NewFlyCamera(math.Vec3{})
	c.ProcessMouseScroll(10)
	if c.Zoom != 35 {
		t.Errorf("zoom = %f, want 35", c.Zoom)
	}
	c.ProcessMouseScroll(100)
	if c.Zoom != 1 {
		t.Errorf("zoom = %f, want 1", c.Zoom)
	}
	c.ProcessMouseScroll(-100)
	if c.Zoom != 45 {
		t.Errorf("zoom = %f, want 45", c.Zoom)
	}
}

func TestProcessMouseScrollWideFOV(t *testing.T) {
	c := NewFlyCamera(math.Vec3{})
	c.Zoom, c.MaxZoom = 90, 90
	c.ProcessMouseScroll(1)
	if c.Zoom != 89 {
		t.Errorf("zoom = %f, want 89", c.Zoom)
	}
	c.ProcessMouseScroll(-100)
	if c.Zoom != 90 {
		t.Errorf("zoom = %f, want 90", c.Zoom)
	}
}

func TestOrbitCameraPosition(t *testing.T) {
	c := NewOrbitCamera()
	c.Pitch = 0
	c.Yaw = 0
	if p := c.Position(); !p.ApproxEqual(math.Vec3{Z: 3}, eps) {
		t.Errorf("position = %v, want (0,0,3)", p)
	}

	got := c.ViewMatrix().TransformPoint(c.Center)
	if !got.ApproxEqual(math.Vec3{Z: -3}, eps) {
		t.Errorf("center in view space = %v, want (0,0,-3)", got)
	}
}

func TestOrbitCameraLimits(t *testing.T) {
	c := NewOrbitCamera()
	c.HandleDrag(0, 1e6)
	if c.Pitch != c.MaxPitch {
		t.Errorf("pitch = %f, want %f", c.Pitch, c.MaxPitch)
	}
	c.HandleZoom(100)
	if c.Distance != c.MinDistance {
		t.Errorf("distance = %f, want %f", c.Distance, c.MinDistance)
	}
	c.HandleZoom(-1000)
	if c.Distance != c.MaxDistance {
		t.Errorf("distance = %f, want %f", c.Distance, c.MaxDistance)
	}
}

func TestOrbitCameraFitRadius(t *testing.T) {
	c := NewOrbitCamera()
	c.Center = math.Vec3{X: 5}
	c.FitRadius(1, 45)
	if c.Center != (math.Vec3{}) {
		t.Errorf("center = %v, want origin", c.Center)
	}
	if c.Distance <= 1 {
		t.Errorf("distance %f puts the camera inside the planet", c.Distance)
	}
	if c.MinDistance <= 1 {
		t.Errorf("min distance %f allows entering the planet", c.MinDistance)
	}
}
