// Package explorer runs the SDL2 free-fly planet explorer.
package explorer

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/sphere-explorer/internal/app"
	"github.com/Faultbox/sphere-explorer/internal/config"
	"github.com/Faultbox/sphere-explorer/internal/engine/framebuffer"
	"github.com/Faultbox/sphere-explorer/internal/engine/input"
	"github.com/Faultbox/sphere-explorer/internal/engine/renderer"
	"github.com/Faultbox/sphere-explorer/internal/engine/window"
	"github.com/Faultbox/sphere-explorer/internal/logger"
)

const screenshotDir = "screenshots"

// Explorer owns the window, renderer and session.
type Explorer struct {
	config   *config.Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	session  *app.Context
	shots    *framebuffer.Screenshots

	captured bool
	grid     bool
	shotDue  bool // capture after the next draw, before the swap
	width    int
	height   int
}

// New creates the window, GL state and session.
func New(cfg *config.Config) (*Explorer, error) {
	logger.Info("initializing explorer",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
	)

	session, err := app.New(cfg)
	if err != nil {
		return nil, err
	}

	e := &Explorer{
		config:  cfg,
		session: session,
		input:   input.New(),
		shots:   framebuffer.NewScreenshots(screenshotDir, "planet"),
	}

	// Window first: the renderer needs a current GL context
	e.window, err = window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	e.width, e.height = e.window.DrawableSize()
	e.renderer, err = renderer.New(renderer.Config{
		Width:      e.width,
		Height:     e.height,
		ClearColor: [4]float32{0.02, 0.02, 0.05, 1},
		Cull:       true,
	})
	if err != nil {
		e.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	logger.Info("explorer initialized")
	return e, nil
}

// Run drives the frame loop until the window closes or Escape is pressed.
func (e *Explorer) Run() error {
	e.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting frame loop")

	for e.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		if e.input.Update() {
			e.running = false
			break
		}
		e.handleEvents()

		if _, err := e.session.Update(dt, e.input.Controls(e.captured)); err != nil {
			logger.Warn("planet rebuild rejected", zap.Error(err))
		}

		e.renderer.Begin()
		e.renderer.Draw(e.session.Frame(e.renderer.Aspect()))
		if e.shotDue {
			e.shotDue = false
			e.screenshot()
		}
		e.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			stats := e.session.Planet.Stats()
			e.window.SetTitle(fmt.Sprintf("%s - %d fps - %d tris", e.config.Window.Title, frameCount, stats.Triangles))
			logger.Debug("fps", zap.Int("count", frameCount), zap.Float32("dt_ms", dt*1000))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}
	return nil
}

func (e *Explorer) handleEvents() {
	for _, event := range e.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			e.width, e.height = e.window.DrawableSize()
			e.renderer.Resize(e.width, e.height)
		case input.EventKeyDown:
			e.handleKey(event.Key)
		}
	}
}

func (e *Explorer) handleKey(key sdl.Scancode) {
	if applyEdit(e.session, key, e.config.Server.MaxResolution) {
		logger.Info("settings edited",
			zap.Int("resolution", e.session.Settings.Resolution),
			zap.Bool("noise", e.session.Settings.NoiseEnabled),
			zap.Float32("noise_scale", e.session.Settings.NoiseScale),
			zap.Stringer("shape", e.session.Settings.Shape),
		)
		return
	}

	switch key {
	case sdl.SCANCODE_ESCAPE:
		e.running = false
	case sdl.SCANCODE_TAB:
		e.captured = !e.captured
		e.window.SetMouseCaptured(e.captured)
	case sdl.SCANCODE_F:
		e.renderer.SetWireframe(!e.renderer.Wireframe())
	case sdl.SCANCODE_G:
		e.grid = !e.grid
		e.renderer.SetGrid(e.grid)
	case sdl.SCANCODE_B:
		e.renderer.SetBounds(!e.renderer.Bounds())
	case sdl.SCANCODE_P:
		e.session.SetPaused(!e.session.Paused())
	case sdl.SCANCODE_F11:
		if err := e.window.ToggleFullscreen(); err != nil {
			logger.Warn("fullscreen toggle failed", zap.Error(err))
		}
	case sdl.SCANCODE_F12:
		e.shotDue = true
	}
}

func (e *Explorer) screenshot() {
	img, err := framebuffer.CaptureScreen(e.width, e.height)
	if err != nil {
		logger.Error("screenshot capture failed", zap.Error(err))
		return
	}
	path, err := e.shots.Save(img)
	if err != nil {
		logger.Error("screenshot save failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// Close releases GPU and window resources.
func (e *Explorer) Close() {
	logger.Info("closing explorer")

	if e.renderer != nil {
		e.renderer.Close()
	}
	if e.window != nil {
		e.window.Close()
	}
}
