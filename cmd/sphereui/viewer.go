package main

import (
	"github.com/Faultbox/sphere-explorer/internal/app"
	"github.com/Faultbox/sphere-explorer/internal/engine/camera"
	"github.com/Faultbox/sphere-explorer/internal/engine/framebuffer"
	"github.com/Faultbox/sphere-explorer/internal/engine/picking"
	"github.com/Faultbox/sphere-explorer/internal/engine/renderer"
)

// PlanetViewer renders the session into an offscreen texture for ImGui.
type PlanetViewer struct {
	fb       *framebuffer.Framebuffer
	renderer *renderer.Renderer
	camera   *camera.OrbitCamera

	fov       float32
	near, far float32
}

// NewPlanetViewer creates the framebuffer, renderer and orbit camera.
func NewPlanetViewer(width, height int32, fov, near, far float32) (*PlanetViewer, error) {
	fb, err := framebuffer.New(width, height)
	if err != nil {
		return nil, err
	}
	r, err := renderer.New(renderer.Config{
		Width:      int(width),
		Height:     int(height),
		ClearColor: [4]float32{0.02, 0.02, 0.05, 1},
		Cull:       true,
	})
	if err != nil {
		fb.Destroy()
		return nil, err
	}

	v := &PlanetViewer{fb: fb, renderer: r, fov: fov, near: near, far: far}
	v.Reset()
	return v, nil
}

// Reset frames the unit planet plus its maximum noise displacement.
func (v *PlanetViewer) Reset() {
	v.camera = camera.NewOrbitCamera()
	v.camera.FitRadius(2, v.fov)
}

// Render draws the session and returns the color texture.
func (v *PlanetViewer) Render(session *app.Context) uint32 {
	restore := v.fb.BindWithViewport()
	defer restore()

	aspect := v.fb.Aspect()
	frame := session.Frame(aspect)
	frame.View = v.camera.ViewMatrix()
	frame.Projection = v.camera.ProjectionMatrix(v.fov, aspect, v.near, v.far)
	frame.CameraPos = v.camera.Position()

	v.renderer.Begin()
	v.renderer.Draw(frame)
	return v.fb.ColorTexture()
}

// Pick returns the latitude and longitude under a point of the displayed
// image, measured on the unit sphere in the planet's own frame.
func (v *PlanetViewer) Pick(x, y, displayW, displayH float32, session *app.Context) (lat, lon float32, ok bool) {
	view := v.camera.ViewMatrix()
	proj := v.camera.ProjectionMatrix(v.fov, v.fb.Aspect(), v.near, v.far)
	p, ok := picking.PickSurface(x, y, displayW, displayH, view, proj, session.ModelMatrix(), 1)
	if !ok {
		return 0, 0, false
	}
	lat, lon = picking.LatLon(p)
	return lat, lon, true
}

// Resize matches the framebuffer to the display size in pixels.
func (v *PlanetViewer) Resize(width, height int32) {
	v.fb.Resize(width, height)
}

// HandleMouseDrag rotates the orbit camera.
func (v *PlanetViewer) HandleMouseDrag(dx, dy float32) {
	v.camera.HandleDrag(dx, dy)
}

// HandleMouseWheel zooms the orbit camera.
func (v *PlanetViewer) HandleMouseWheel(delta float32) {
	v.camera.HandleZoom(delta)
}

// Destroy releases GPU resources.
func (v *PlanetViewer) Destroy() {
	v.renderer.Close()
	v.fb.Destroy()
}
