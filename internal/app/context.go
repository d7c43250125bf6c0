// Package app owns the per-session state of the explorer: camera, planet,
// live settings and lights. Nothing here touches the GPU, so a Context can be
// driven headless by tests and the mesh server.
package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/sphere-explorer/internal/config"
	"github.com/Faultbox/sphere-explorer/internal/engine/camera"
	"github.com/Faultbox/sphere-explorer/internal/engine/lighting"
	"github.com/Faultbox/sphere-explorer/internal/logger"
	"github.com/Faultbox/sphere-explorer/internal/terrain"
	"github.com/Faultbox/sphere-explorer/pkg/math"
)

// Controls is the input gathered for one frame.
type Controls struct {
	Moves  []camera.Movement
	MouseX float32 // pixels, positive right
	MouseY float32 // pixels, positive up
	Scroll float32
}

// Frame is everything a renderer needs to draw one frame.
type Frame struct {
	View       math.Mat4
	Projection math.Mat4
	Model      math.Mat4
	CameraPos  math.Vec3
	Sun        lighting.Sun
	Lights     *lighting.PointLightBuffer
	Meshes     []*terrain.Mesh
	Generation uint64
	Time       float32
}

// Context is one independent explorer session.
type Context struct {
	Camera   *camera.FlyCamera
	Planet   *terrain.Planet
	Settings terrain.Settings // edited by the UI, applied on Update
	Sun      lighting.Sun
	Lights   *lighting.PointLightBuffer

	near, far float32
	spinSpeed float32
	spin      float32
	elapsed   float32
	paused    bool
}

// New builds a context from a validated config.
func New(cfg *config.Config) (*Context, error) {
	settings := cfg.Planet.Settings()
	planet, err := terrain.NewPlanet(settings, cfg.Planet.Seed)
	if err != nil {
		return nil, fmt.Errorf("creating planet: %w", err)
	}

	cam := camera.NewFlyCamera(math.Vec3{
		X: cfg.Camera.Position[0],
		Y: cfg.Camera.Position[1],
		Z: cfg.Camera.Position[2],
	})
	cam.Zoom = cfg.Camera.FOV
	if cam.Zoom > cam.MaxZoom {
		cam.MaxZoom = cam.Zoom
	}
	cam.MovementSpeed = cfg.Camera.Speed
	cam.MouseSensitivity = cfg.Camera.Sensitivity

	lights := lighting.NewPointLightBuffer()
	lights.SetLights(cfg.Lighting.PointLights)

	logger.Info("session created",
		zap.Int64("seed", cfg.Planet.Seed),
		zap.Int("resolution", settings.Resolution),
		zap.Int("point_lights", lights.Count()),
	)

	return &Context{
		Camera:    cam,
		Planet:    planet,
		Settings:  settings,
		Sun:       lighting.NewSun(cfg.Lighting.SunLongitude, cfg.Lighting.SunLatitude, cfg.Lighting.Ambient),
		Lights:    lights,
		near:      cfg.Camera.Near,
		far:       cfg.Camera.Far,
		spinSpeed: cfg.Planet.SpinSpeed,
	}, nil
}

// Update advances time, applies camera input and rebuilds the planet if the
// live settings changed. It reports whether a rebuild happened.
func (c *Context) Update(dt float32, in Controls) (bool, error) {
	c.elapsed += dt
	if !c.paused {
		c.spin += c.spinSpeed * dt
	}

	for _, m := range in.Moves {
		c.Camera.ProcessKeyboard(m, dt)
	}
	if in.MouseX != 0 || in.MouseY != 0 {
		c.Camera.ProcessMouseMovement(in.MouseX, in.MouseY, true)
	}
	if in.Scroll != 0 {
		c.Camera.ProcessMouseScroll(in.Scroll)
	}

	rebuilt, err := c.Planet.Update(c.Settings)
	if err != nil {
		// Keep showing the last good planet
		c.Settings = c.Planet.Settings()
		return false, err
	}
	return rebuilt, nil
}

// Frame returns the matrices and geometry for the current state.
func (c *Context) Frame(aspect float32) Frame {
	return Frame{
		View:       c.Camera.ViewMatrix(),
		Projection: c.Camera.ProjectionMatrix(aspect, c.near, c.far),
		Model:      c.ModelMatrix(),
		CameraPos:  c.Camera.Position,
		Sun:        c.Sun,
		Lights:     c.Lights,
		Meshes:     c.Planet.Meshes(),
		Generation: c.Planet.Generation(),
		Time:       c.elapsed,
	}
}

// ModelMatrix spins the planet around its Y axis.
func (c *Context) ModelMatrix() math.Mat4 {
	return math.RotateY(c.spin)
}

// SetPaused stops or resumes the planet spin.
func (c *Context) SetPaused(paused bool) {
	c.paused = paused
}

// Paused reports whether the spin is stopped.
func (c *Context) Paused() bool {
	return c.paused
}

// Elapsed returns the total time passed to Update in seconds.
func (c *Context) Elapsed() float32 {
	return c.elapsed
}
