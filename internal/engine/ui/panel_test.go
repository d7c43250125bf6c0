package ui

import (
	"testing"

	"github.com/Faultbox/sphere-explorer/internal/app"
	"github.com/Faultbox/sphere-explorer/internal/terrain"
)

func TestPanelRoundTrip(t *testing.T) {
	s := terrain.Settings{
		Resolution:   32,
		Color:        [3]float32{0.1, 0.2, 0.3},
		NoiseEnabled: true,
		NoiseScale:   2,
		Shape:        terrain.ShapeCube,
	}
	p := NewPanel(s, 128)
	if got := p.Settings(); got != s {
		t.Errorf("Settings() = %+v, want %+v", got, s)
	}
}

func TestPanelClamps(t *testing.T) {
	p := NewPanel(terrain.Settings{Resolution: 8, NoiseScale: 1}, 64)

	p.Resolution = 1000
	p.NoiseScale = 0
	s := p.Settings()
	if s.Resolution != 64 {
		t.Errorf("resolution = %d, want 64", s.Resolution)
	}
	if s.NoiseScale != app.MinNoiseScale {
		t.Errorf("noise scale = %f, want %f", s.NoiseScale, app.MinNoiseScale)
	}

	p.NoiseScale = 50
	if s := p.Settings(); s.NoiseScale != app.MaxNoiseScale {
		t.Errorf("noise scale = %f, want %f", s.NoiseScale, app.MaxNoiseScale)
	}

	p.Resolution = 0
	if s := p.Settings(); s.Resolution != terrain.MinResolution {
		t.Errorf("resolution = %d, want %d", s.Resolution, terrain.MinResolution)
	}
}

func TestPollPath(t *testing.T) {
	var ch <-chan string
	if _, ok := PollPath(&ch); ok {
		t.Error("nil channel should not yield")
	}

	c := make(chan string, 1)
	ch = c
	if _, ok := PollPath(&ch); ok {
		t.Error("pending dialog should not yield")
	}
	c <- "/tmp/planet.obj"
	path, ok := PollPath(&ch)
	if !ok || path != "/tmp/planet.obj" {
		t.Errorf("PollPath = %q, %v", path, ok)
	}
	if ch != nil {
		t.Error("channel should be cleared after a result")
	}

	c2 := make(chan string)
	close(c2)
	ch = c2
	if _, ok := PollPath(&ch); ok || ch != nil {
		t.Error("cancelled dialog should clear without a path")
	}
}
