// Package config handles explorer configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/sphere-explorer/internal/engine/lighting"
	"github.com/Faultbox/sphere-explorer/internal/terrain"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid value")

// Config holds all explorer settings.
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Planet   PlanetConfig   `yaml:"planet"`
	Camera   CameraConfig   `yaml:"camera"`
	Lighting LightingConfig `yaml:"lighting"`
	Server   ServerConfig   `yaml:"server"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// PlanetConfig holds the initial planet settings.
type PlanetConfig struct {
	Resolution int           `yaml:"resolution"`
	Color      [3]float32    `yaml:"color,flow"`
	Noise      bool          `yaml:"noise"`
	NoiseScale float32       `yaml:"noise_scale"`
	Seed       int64         `yaml:"seed"`
	Shape      terrain.Shape `yaml:"shape"`
	SpinSpeed  float32       `yaml:"spin_speed"` // radians per second
}

// CameraConfig holds the free-fly camera setup.
type CameraConfig struct {
	Position    [3]float32 `yaml:"position,flow"`
	FOV         float32    `yaml:"fov"` // degrees
	Near        float32    `yaml:"near"`
	Far         float32    `yaml:"far"`
	Speed       float32    `yaml:"speed"`
	Sensitivity float32    `yaml:"sensitivity"`
}

// LightingConfig holds the sun placement in degrees and optional point lights.
type LightingConfig struct {
	SunLongitude float32               `yaml:"sun_longitude"`
	SunLatitude  float32               `yaml:"sun_latitude"`
	Ambient      float32               `yaml:"ambient"`
	PointLights  []lighting.PointLight `yaml:"point_lights,omitempty"`
}

// ServerConfig holds mesh server settings.
type ServerConfig struct {
	Addr          string `yaml:"addr"`
	MaxResolution int    `yaml:"max_resolution"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "Sphere Explorer",
			Width:  1280,
			Height: 720,
			VSync:  true,
		},
		Planet: PlanetConfig{
			Resolution: 24,
			Color:      [3]float32{0.2, 0.5, 0.8},
			NoiseScale: 1.5,
			Seed:       1,
			Shape:      terrain.ShapeSphere,
			SpinSpeed:  0.2,
		},
		Camera: CameraConfig{
			Position:    [3]float32{0, 0, 3},
			FOV:         45,
			Near:        0.1,
			Far:         100,
			Speed:       2.5,
			Sensitivity: 0.1,
		},
		Lighting: LightingConfig{
			SunLongitude: 45,
			SunLatitude:  30,
			Ambient:      0.15,
		},
		Server: ServerConfig{
			Addr:          ":8080",
			MaxResolution: 128,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Settings converts the planet section to generator settings.
func (p PlanetConfig) Settings() terrain.Settings {
	return terrain.Settings{
		Resolution:   p.Resolution,
		Color:        p.Color,
		NoiseEnabled: p.Noise,
		NoiseScale:   p.NoiseScale,
		Shape:        p.Shape,
	}
}

// Validate reports the first out-of-range value.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if err := c.Planet.Settings().Validate(); err != nil {
		return fmt.Errorf("%w: planet: %v", ErrInvalid, err)
	}
	if c.Camera.FOV < 1 || c.Camera.FOV > 179 {
		return fmt.Errorf("%w: camera.fov = %g", ErrInvalid, c.Camera.FOV)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("%w: camera clip planes %g..%g", ErrInvalid, c.Camera.Near, c.Camera.Far)
	}
	if c.Lighting.Ambient < 0 || c.Lighting.Ambient > 1 {
		return fmt.Errorf("%w: lighting.ambient = %g", ErrInvalid, c.Lighting.Ambient)
	}
	if len(c.Lighting.PointLights) > lighting.MaxPointLights {
		return fmt.Errorf("%w: %d point lights (max %d)", ErrInvalid, len(c.Lighting.PointLights), lighting.MaxPointLights)
	}
	if c.Server.MaxResolution < terrain.MinResolution || c.Server.MaxResolution > terrain.MaxResolution {
		return fmt.Errorf("%w: server.max_resolution = %d", ErrInvalid, c.Server.MaxResolution)
	}
	return nil
}
