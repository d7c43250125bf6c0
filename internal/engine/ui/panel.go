package ui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/Faultbox/sphere-explorer/internal/app"
	"github.com/Faultbox/sphere-explorer/internal/terrain"
)

// Panel is the widget state of the "Sphere Explorer" settings window.
// ImGui edits the fields in place each frame.
type Panel struct {
	Resolution    int32
	Color         [3]float32
	Noise         bool
	NoiseScale    float32
	Cube          bool
	MaxResolution int32

	Wireframe bool
	Grid      bool
	Bounds    bool
	Paused    bool
}

// NewPanel seeds the widgets from settings.
func NewPanel(s terrain.Settings, maxResolution int) *Panel {
	p := &Panel{MaxResolution: int32(maxResolution)}
	p.Load(s)
	return p
}

// Load copies settings into the widgets.
func (p *Panel) Load(s terrain.Settings) {
	p.Resolution = int32(s.Resolution)
	p.Color = s.Color
	p.Noise = s.NoiseEnabled
	p.NoiseScale = s.NoiseScale
	p.Cube = s.Shape == terrain.ShapeCube
}

// Settings returns the planet settings the widgets describe, clamped to the
// slider ranges.
func (p *Panel) Settings() terrain.Settings {
	res := p.Resolution
	if res < terrain.MinResolution {
		res = terrain.MinResolution
	}
	if res > p.MaxResolution {
		res = p.MaxResolution
	}
	scale := p.NoiseScale
	if scale < app.MinNoiseScale {
		scale = app.MinNoiseScale
	}
	if scale > app.MaxNoiseScale {
		scale = app.MaxNoiseScale
	}

	shape := terrain.ShapeSphere
	if p.Cube {
		shape = terrain.ShapeCube
	}
	return terrain.Settings{
		Resolution:   int(res),
		Color:        p.Color,
		NoiseEnabled: p.Noise,
		NoiseScale:   scale,
		Shape:        shape,
	}
}

// PanelActions are the buttons pressed this frame.
type PanelActions struct {
	ExportOBJ  bool
	Screenshot bool
	ResetView  bool
	SaveConfig bool
}

// Draw renders the panel widgets into the current ImGui window.
func (p *Panel) Draw(stats terrain.Stats, generation uint64) PanelActions {
	var a PanelActions

	imgui.SeparatorText("Planet")
	imgui.SliderIntV("Resolution", &p.Resolution, terrain.MinResolution, p.MaxResolution, "%d", imgui.SliderFlagsNone)
	imgui.ColorEdit3("Color", &p.Color)
	imgui.Checkbox("Noise", &p.Noise)
	if !p.Noise {
		imgui.BeginDisabled()
	}
	imgui.SliderFloatV("Noise scale", &p.NoiseScale, app.MinNoiseScale, app.MaxNoiseScale, "%.2f", imgui.SliderFlagsLogarithmic)
	if !p.Noise {
		imgui.EndDisabled()
	}
	imgui.Checkbox("Cube (no projection)", &p.Cube)

	imgui.SeparatorText("View")
	imgui.Checkbox("Wireframe", &p.Wireframe)
	imgui.SameLine()
	imgui.Checkbox("Grid", &p.Grid)
	imgui.SameLine()
	imgui.Checkbox("Bounds", &p.Bounds)
	imgui.Checkbox("Pause spin", &p.Paused)
	a.ResetView = imgui.Button("Reset view")

	imgui.SeparatorText("Mesh")
	imgui.Text(fmt.Sprintf("Vertices:  %d", stats.Vertices))
	imgui.Text(fmt.Sprintf("Triangles: %d", stats.Triangles))
	imgui.Text(fmt.Sprintf("Build:     #%d", generation))
	imgui.Text(fmt.Sprintf("%.1f FPS", imgui.CurrentIO().Framerate()))

	a.ExportOBJ = imgui.Button("Export OBJ...")
	imgui.SameLine()
	a.Screenshot = imgui.Button("Screenshot...")
	imgui.SameLine()
	a.SaveConfig = imgui.Button("Save settings")
	return a
}
