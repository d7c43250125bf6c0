// Package renderer draws planet meshes with OpenGL 4.1 core.
package renderer

import (
	_ "embed"
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/sphere-explorer/internal/app"
	"github.com/Faultbox/sphere-explorer/internal/engine/debug"
	"github.com/Faultbox/sphere-explorer/internal/engine/shader"
	"github.com/Faultbox/sphere-explorer/internal/logger"
	"github.com/Faultbox/sphere-explorer/internal/terrain"
)

//go:embed shaders/planet.vert
var planetVertSrc string

//go:embed shaders/planet.frag
var planetFragSrc string

//go:embed shaders/lines.vert
var linesVertSrc string

//go:embed shaders/lines.frag
var linesFragSrc string

// Bounds overlay style.
var boundsColor = [3]float32{1, 0.8, 0.2}

const boundsPadding = 0.01

// Config holds renderer configuration.
type Config struct {
	Width      int
	Height     int
	ClearColor [4]float32
	Cull       bool
}

// Renderer draws the planet and keeps its GPU meshes in step with the
// planet generation.
type Renderer struct {
	config  Config
	program *shader.Program

	lineProgram *shader.Program
	bounds      *lineBatch
	showBounds  bool

	meshes     []*GPUMesh
	generation uint64

	wireframe bool
	grid      bool
}

// New creates a renderer. It must be called after the GL context exists.
func New(cfg Config) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	program, err := shader.New(planetVertSrc, planetFragSrc)
	if err != nil {
		return nil, fmt.Errorf("planet shader: %w", err)
	}

	lineProgram, err := shader.New(linesVertSrc, linesFragSrc)
	if err != nil {
		program.Delete()
		return nil, fmt.Errorf("line shader: %w", err)
	}

	r := &Renderer{config: cfg, program: program, lineProgram: lineProgram, bounds: newLineBatch()}
	r.applyState()
	r.Resize(cfg.Width, cfg.Height)
	return r, nil
}

func (r *Renderer) applyState() {
	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	if r.config.Cull {
		// Face triangles wind clockwise seen from outside
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.BACK)
		gl.FrontFace(gl.CW)
	} else {
		gl.Disable(gl.CULL_FACE)
	}
}

// Close releases all GPU resources.
func (r *Renderer) Close() {
	logger.Info("closing renderer")
	r.releaseMeshes()
	r.bounds.delete()
	r.lineProgram.Delete()
	r.program.Delete()
}

// Resize updates the viewport.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	logger.Debug("renderer resized", zap.Int("width", width), zap.Int("height", height))
}

// Aspect returns width / height of the current viewport.
func (r *Renderer) Aspect() float32 {
	return Aspect(r.config.Width, r.config.Height)
}

// Aspect returns width / height, treating a zero height as 1.
func Aspect(width, height int) float32 {
	if height <= 0 {
		return float32(width)
	}
	return float32(width) / float32(height)
}

// SetWireframe toggles polygon line mode.
func (r *Renderer) SetWireframe(on bool) {
	r.wireframe = on
}

// Wireframe reports whether line mode is on.
func (r *Renderer) Wireframe() bool {
	return r.wireframe
}

// SetGrid toggles the texcoord grid overlay.
func (r *Renderer) SetGrid(on bool) {
	r.grid = on
}

// SetBounds toggles the per-face bounding box overlay.
func (r *Renderer) SetBounds(on bool) {
	r.showBounds = on
}

// Bounds reports whether the bounding box overlay is on.
func (r *Renderer) Bounds() bool {
	return r.showBounds
}

// Begin clears the current target.
func (r *Renderer) Begin() {
	c := r.config.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// Sync re-uploads meshes when the generation moved. It reports whether an
// upload happened.
func (r *Renderer) Sync(meshes []*terrain.Mesh, generation uint64) bool {
	if !needsUpload(r.generation, generation, len(r.meshes), len(meshes)) {
		return false
	}
	r.releaseMeshes()
	for _, m := range meshes {
		r.meshes = append(r.meshes, NewGPUMesh(m))
	}
	r.bounds.upload(debug.MeshBoxLines(meshes, boundsPadding))
	r.generation = generation
	logger.Debug("planet uploaded", zap.Int("meshes", len(meshes)), zap.Uint64("generation", generation))
	return true
}

func needsUpload(have, want uint64, haveMeshes, wantMeshes int) bool {
	return have != want || haveMeshes != wantMeshes
}

func (r *Renderer) releaseMeshes() {
	for _, m := range r.meshes {
		m.Delete()
	}
	r.meshes = r.meshes[:0]
}

// Draw renders one frame of the planet into the current target.
func (r *Renderer) Draw(f app.Frame) {
	r.Sync(f.Meshes, f.Generation)
	r.applyState()

	if r.wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		defer gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	p := r.program
	p.Use()
	p.SetMat4("uModel", f.Model)
	p.SetMat4("uView", f.View)
	p.SetMat4("uProjection", f.Projection)
	p.SetMat3("uNormalMatrix", f.Model.NormalMatrix())
	p.SetVec3("uSunDir", f.Sun.Direction)
	p.SetColor("uSunColor", f.Sun.Color)
	p.SetFloat("uAmbient", f.Sun.Ambient)
	p.SetVec3("uCameraPos", f.CameraPos)

	showGrid := int32(0)
	if r.grid {
		showGrid = 1
	}
	p.SetInt("uShowGrid", showGrid)

	lights := f.Lights
	if lights != nil {
		p.SetInt("uPointLightCount", int32(lights.Count()))
		p.SetVec3Array("uPointLightPositions", lights.Positions())
		p.SetVec3Array("uPointLightColors", lights.Colors())
		p.SetFloatArray("uPointLightRanges", lights.Ranges())
		p.SetFloatArray("uPointLightIntensities", lights.Intensities())
	} else {
		p.SetInt("uPointLightCount", 0)
	}

	for _, m := range r.meshes {
		m.Draw()
	}

	if r.showBounds {
		r.lineProgram.Use()
		r.lineProgram.SetMat4("uMVP", f.Projection.Mul(f.View).Mul(f.Model))
		r.lineProgram.SetColor("uColor", boundsColor)
		r.bounds.draw()
	}
}
