// Sphere UI - an ImGui editor for cube-sphere planets.
package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"go.uber.org/zap"

	"github.com/Faultbox/sphere-explorer/internal/app"
	"github.com/Faultbox/sphere-explorer/internal/config"
	"github.com/Faultbox/sphere-explorer/internal/engine/framebuffer"
	"github.com/Faultbox/sphere-explorer/internal/engine/ui"
	"github.com/Faultbox/sphere-explorer/internal/logger"
	"github.com/Faultbox/sphere-explorer/internal/terrain"
)

const panelWidth = 320

func main() {
	runtime.LockOSThread()

	config.ParseFlags()
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	a, err := NewApp(cfg)
	if err != nil {
		logger.Error("failed to start", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	defer a.Close()

	a.Run()
}

// App is the editor state.
type App struct {
	cfg     *config.Config
	backend *ui.Backend
	session *app.Context
	viewer  *PlanetViewer
	panel   *ui.Panel

	lastFrame    time.Time
	lastMousePos imgui.Vec2

	// Save dialogs run off the main thread; results are polled each frame
	exportDialog     <-chan string
	screenshotDialog <-chan string
	screenshotPath   string // captured on the next frame

	status     string
	statusTime time.Time
}

// NewApp creates the window, session and offscreen viewer.
func NewApp(cfg *config.Config) (*App, error) {
	backend, err := ui.NewBackend(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height)
	if err != nil {
		return nil, err
	}

	session, err := app.New(cfg)
	if err != nil {
		return nil, err
	}

	viewer, err := NewPlanetViewer(int32(cfg.Window.Width-panelWidth), int32(cfg.Window.Height),
		cfg.Camera.FOV, cfg.Camera.Near, cfg.Camera.Far)
	if err != nil {
		return nil, fmt.Errorf("creating viewer: %w", err)
	}

	return &App{
		cfg:       cfg,
		backend:   backend,
		session:   session,
		viewer:    viewer,
		panel:     ui.NewPanel(session.Settings, cfg.Server.MaxResolution),
		lastFrame: time.Now(),
	}, nil
}

// Run blocks until the window closes.
func (a *App) Run() {
	logger.Info("starting ui loop")
	a.backend.Run(a.render)
}

// Close releases GPU resources.
func (a *App) Close() {
	if a.viewer != nil {
		a.viewer.Destroy()
	}
}

func (a *App) render() {
	now := time.Now()
	dt := float32(now.Sub(a.lastFrame).Seconds())
	a.lastFrame = now

	a.pollDialogs()

	a.session.Settings = a.panel.Settings()
	a.session.SetPaused(a.panel.Paused)
	if _, err := a.session.Update(dt, app.Controls{}); err != nil {
		a.setStatus(fmt.Sprintf("Rebuild failed: %v", err))
		a.panel.Load(a.session.Settings)
	}
	a.viewer.renderer.SetWireframe(a.panel.Wireframe)
	a.viewer.renderer.SetGrid(a.panel.Grid)
	a.viewer.renderer.SetBounds(a.panel.Bounds)

	posX, posY, width, height := ui.Viewport()
	flags := imgui.WindowFlagsNoMove | imgui.WindowFlagsNoResize | imgui.WindowFlagsNoCollapse

	imgui.SetNextWindowPos(imgui.NewVec2(posX, posY))
	imgui.SetNextWindowSize(imgui.NewVec2(panelWidth, height))
	if imgui.BeginV("Sphere Explorer", nil, flags) {
		actions := a.panel.Draw(a.session.Planet.Stats(), a.session.Planet.Generation())
		a.handleActions(actions)
		if a.status != "" && time.Since(a.statusTime) < 5*time.Second {
			imgui.Separator()
			imgui.TextWrapped(a.status)
		}
	}
	imgui.End()

	imgui.SetNextWindowPos(imgui.NewVec2(posX+panelWidth, posY))
	imgui.SetNextWindowSize(imgui.NewVec2(width-panelWidth, height))
	if imgui.BeginV("Planet", nil, flags|imgui.WindowFlagsNoScrollbar) {
		a.renderViewport()
	}
	imgui.End()
}

func (a *App) renderViewport() {
	avail := imgui.ContentRegionAvail()
	a.viewer.Resize(int32(avail.X), int32(avail.Y))

	textureID := a.viewer.Render(a.session)
	if a.screenshotPath != "" {
		a.saveScreenshot(a.screenshotPath)
		a.screenshotPath = ""
	}

	origin := imgui.CursorScreenPos()

	// GL textures are bottom-up, flip V
	texRef := imgui.NewTextureRefTextureID(imgui.TextureID(textureID))
	imgui.ImageWithBgV(
		*texRef,
		avail,
		imgui.NewVec2(0, 1),
		imgui.NewVec2(1, 0),
		imgui.NewVec4(0.02, 0.02, 0.05, 1),
		imgui.NewVec4(1, 1, 1, 1),
	)

	if imgui.IsItemHovered() {
		mousePos := imgui.MousePos()
		if imgui.IsMouseDragging(imgui.MouseButtonLeft) {
			a.viewer.HandleMouseDrag(mousePos.X-a.lastMousePos.X, mousePos.Y-a.lastMousePos.Y)
		}
		a.lastMousePos = mousePos

		if lat, lon, ok := a.viewer.Pick(mousePos.X-origin.X, mousePos.Y-origin.Y, avail.X, avail.Y, a.session); ok {
			imgui.SetTooltip(fmt.Sprintf("lat %.1f, lon %.1f", lat, lon))
		}

		if wheel := imgui.CurrentIO().MouseWheel(); wheel != 0 {
			a.viewer.HandleMouseWheel(wheel)
		}
	}
}

func (a *App) handleActions(actions ui.PanelActions) {
	if actions.ResetView {
		a.viewer.Reset()
	}
	if actions.ExportOBJ && a.exportDialog == nil {
		a.exportDialog = ui.SaveDialog("Export planet", "Wavefront OBJ", "obj")
	}
	if actions.Screenshot && a.screenshotDialog == nil {
		a.screenshotDialog = ui.SaveDialog("Save screenshot", "Images", "png", "bmp")
	}
	if actions.SaveConfig {
		a.saveConfig()
	}
}

func (a *App) pollDialogs() {
	if path, ok := ui.PollPath(&a.exportDialog); ok {
		a.exportOBJ(path)
	}
	if path, ok := ui.PollPath(&a.screenshotDialog); ok {
		// GL reads must happen on the main thread after the next render
		a.screenshotPath = path
	}
}

func (a *App) exportOBJ(path string) {
	f, err := os.Create(path)
	if err != nil {
		a.setStatus(fmt.Sprintf("Export failed: %v", err))
		return
	}
	defer f.Close()

	if err := terrain.WriteOBJ(f, "planet", a.session.Planet.Merged()); err != nil {
		a.setStatus(fmt.Sprintf("Export failed: %v", err))
		return
	}
	logger.Info("planet exported", zap.String("path", path))
	a.setStatus("Exported " + path)
}

func (a *App) saveScreenshot(path string) {
	img := a.viewer.fb.Snapshot()
	if err := framebuffer.WriteImage(path, img); err != nil {
		a.setStatus(fmt.Sprintf("Screenshot failed: %v", err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
	a.setStatus("Saved " + path)
}

func (a *App) saveConfig() {
	s := a.session.Settings
	a.cfg.Planet.Resolution = s.Resolution
	a.cfg.Planet.Color = s.Color
	a.cfg.Planet.Noise = s.NoiseEnabled
	a.cfg.Planet.NoiseScale = s.NoiseScale
	a.cfg.Planet.Shape = s.Shape

	if err := a.cfg.Save(); err != nil {
		a.setStatus(fmt.Sprintf("Save failed: %v", err))
		return
	}
	a.setStatus("Settings saved to " + config.ConfigDir())
}

func (a *App) setStatus(msg string) {
	a.status = msg
	a.statusTime = time.Now()
}
