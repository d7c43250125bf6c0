// Package input turns SDL2 events into per-frame explorer input.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/sphere-explorer/internal/app"
	"github.com/Faultbox/sphere-explorer/internal/engine/camera"
)

// EventType classifies a processed event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventMouseDown
	EventMouseUp
)

// Event is a discrete input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
	Button uint8
}

// Input polls SDL and accumulates mouse motion between frames.
type Input struct {
	events []Event
	held   map[sdl.Scancode]bool

	mouseDX, mouseDY float32
	scroll           float32
	dragging         bool
}

// New creates an input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
		held:   make(map[sdl.Scancode]bool),
	}
}

// Update polls SDL events. It returns true when the app should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]
	i.mouseDX, i.mouseDY, i.scroll = 0, 0, 0

	quit := false
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			switch e.Type {
			case sdl.KEYDOWN:
				i.held[e.Keysym.Scancode] = true
				if e.Repeat == 0 {
					i.events = append(i.events, Event{Type: EventKeyDown, Key: e.Keysym.Scancode})
				}
			case sdl.KEYUP:
				i.held[e.Keysym.Scancode] = false
			}

		case *sdl.MouseMotionEvent:
			i.mouseDX += float32(e.XRel)
			i.mouseDY += float32(e.YRel)

		case *sdl.MouseWheelEvent:
			i.scroll += float32(e.Y)

		case *sdl.MouseButtonEvent:
			if e.Type == sdl.MOUSEBUTTONDOWN {
				i.events = append(i.events, Event{Type: EventMouseDown, Button: e.Button})
				if e.Button == sdl.BUTTON_RIGHT {
					i.dragging = true
				}
			} else {
				i.events = append(i.events, Event{Type: EventMouseUp, Button: e.Button})
				if e.Button == sdl.BUTTON_RIGHT {
					i.dragging = false
				}
			}
		}
	}
	return quit
}

// Events returns the discrete events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// IsKeyPressed reports whether a key went down this frame.
func (i *Input) IsKeyPressed(scancode sdl.Scancode) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == scancode {
			return true
		}
	}
	return false
}

// IsKeyHeld reports whether a key is currently down.
func (i *Input) IsKeyHeld(scancode sdl.Scancode) bool {
	return i.held[scancode]
}

// Controls builds the camera input for this frame. Mouse look is applied
// while captured is true or the right button is held.
func (i *Input) Controls(captured bool) app.Controls {
	var c app.Controls
	for key, move := range moveKeys {
		if i.held[key] {
			c.Moves = append(c.Moves, move)
		}
	}
	if captured || i.dragging {
		// SDL y grows downward, the camera wants positive up
		c.MouseX = i.mouseDX
		c.MouseY = -i.mouseDY
	}
	c.Scroll = i.scroll
	return c
}

var moveKeys = map[sdl.Scancode]camera.Movement{
	sdl.SCANCODE_W:      camera.Forward,
	sdl.SCANCODE_S:      camera.Backward,
	sdl.SCANCODE_A:      camera.Left,
	sdl.SCANCODE_D:      camera.Right,
	sdl.SCANCODE_SPACE:  camera.Up,
	sdl.SCANCODE_LSHIFT: camera.Down,
}
