package explorer

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/sphere-explorer/internal/app"
	"github.com/Faultbox/sphere-explorer/internal/config"
	"github.com/Faultbox/sphere-explorer/internal/terrain"
)

func newSession(t *testing.T) *app.Context {
	t.Helper()
	cfg := config.Default()
	cfg.Planet.Resolution = 4
	c, err := app.New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestApplyEdit(t *testing.T) {
	tests := []struct {
		name  string
		keys  []sdl.Scancode
		check func(s terrain.Settings) bool
	}{
		{"resolution up", []sdl.Scancode{sdl.SCANCODE_RIGHTBRACKET}, func(s terrain.Settings) bool { return s.Resolution == 5 }},
		{"resolution down", []sdl.Scancode{sdl.SCANCODE_LEFTBRACKET}, func(s terrain.Settings) bool { return s.Resolution == 3 }},
		{"resolution floor", []sdl.Scancode{sdl.SCANCODE_LEFTBRACKET, sdl.SCANCODE_LEFTBRACKET, sdl.SCANCODE_LEFTBRACKET}, func(s terrain.Settings) bool {
			return s.Resolution == terrain.MinResolution
		}},
		{"resolution limit", []sdl.Scancode{sdl.SCANCODE_RIGHTBRACKET, sdl.SCANCODE_RIGHTBRACKET, sdl.SCANCODE_RIGHTBRACKET}, func(s terrain.Settings) bool {
			return s.Resolution == 6
		}},
		{"noise", []sdl.Scancode{sdl.SCANCODE_N}, func(s terrain.Settings) bool { return s.NoiseEnabled }},
		{"noise twice", []sdl.Scancode{sdl.SCANCODE_N, sdl.SCANCODE_N}, func(s terrain.Settings) bool { return !s.NoiseEnabled }},
		{"scale up", []sdl.Scancode{sdl.SCANCODE_EQUALS}, func(s terrain.Settings) bool { return s.NoiseScale > 1.5 }},
		{"scale down", []sdl.Scancode{sdl.SCANCODE_MINUS}, func(s terrain.Settings) bool { return s.NoiseScale < 1.5 }},
		{"color", []sdl.Scancode{sdl.SCANCODE_C}, func(s terrain.Settings) bool { return s.Color == app.Palette[1] }},
		{"shape", []sdl.Scancode{sdl.SCANCODE_M}, func(s terrain.Settings) bool { return s.Shape == terrain.ShapeCube }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newSession(t)
			for _, k := range tt.keys {
				if !applyEdit(c, k, 6) {
					t.Fatalf("key %d not handled", k)
				}
			}
			if !tt.check(c.Settings) {
				t.Errorf("unexpected settings %+v", c.Settings)
			}
		})
	}
}

func TestApplyEditIgnoresOtherKeys(t *testing.T) {
	c := newSession(t)
	before := c.Settings
	for _, k := range []sdl.Scancode{sdl.SCANCODE_W, sdl.SCANCODE_ESCAPE, sdl.SCANCODE_F12, sdl.SCANCODE_TAB} {
		if applyEdit(c, k, 64) {
			t.Errorf("key %d treated as edit", k)
		}
	}
	if c.Settings != before {
		t.Errorf("settings changed: %+v", c.Settings)
	}
}

func TestEditRebuildsOnUpdate(t *testing.T) {
	c := newSession(t)
	gen := c.Planet.Generation()

	applyEdit(c, sdl.SCANCODE_RIGHTBRACKET, 64)
	rebuilt, err := c.Update(0, app.Controls{})
	if err != nil {
		t.Fatal(err)
	}
	if !rebuilt || c.Planet.Generation() != gen+1 {
		t.Errorf("rebuilt = %v, generation = %d", rebuilt, c.Planet.Generation())
	}
	if got := len(c.Planet.Meshes()[0].Vertices); got != 25 {
		t.Errorf("vertices = %d, want 25", got)
	}
}
