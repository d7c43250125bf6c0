// Package terrain builds cube-sphere planet meshes: six grid faces projected
// onto the unit sphere and optionally displaced by Perlin noise.
package terrain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Faultbox/sphere-explorer/pkg/math"
)

// MinResolution and MaxResolution bound the per-face grid size.
const (
	MinResolution = 2
	MaxResolution = 512
)

var (
	// ErrResolution is returned for a grid resolution outside [MinResolution, MaxResolution].
	ErrResolution = errors.New("terrain: invalid resolution")

	// ErrSettings is returned for a noise scale or color outside its range.
	ErrSettings = errors.New("terrain: invalid settings")

	// ErrElevationCount is returned when an elevation buffer does not match the grid size.
	ErrElevationCount = errors.New("terrain: elevation count mismatch")
)

// Vertex is the GPU vertex record. Field order matches the shader attribute
// locations: 0 position, 1 color, 2 texcoord, 3 normal.
type Vertex struct {
	Position [3]float32
	Color    [3]float32
	TexCoord [2]float32
	Normal   [3]float32
}

// Mesh holds an indexed triangle list ready for GPU upload.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
	Bounds   Bounds
}

// Bounds holds an axis-aligned bounding box.
type Bounds struct {
	Min [3]float32
	Max [3]float32
}

// Shape selects how a face grid is mapped.
type Shape int

const (
	// ShapeSphere projects each face onto the unit sphere.
	ShapeSphere Shape = iota
	// ShapeCube keeps the flat unit-cube face.
	ShapeCube
)

// String returns the config name of the shape.
func (s Shape) String() string {
	switch s {
	case ShapeSphere:
		return "sphere"
	case ShapeCube:
		return "cube"
	default:
		return fmt.Sprintf("shape(%d)", int(s))
	}
}

// ParseShape parses a shape name.
func ParseShape(name string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "sphere", "":
		return ShapeSphere, nil
	case "cube":
		return ShapeCube, nil
	default:
		return ShapeSphere, fmt.Errorf("terrain: unknown shape %q", name)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Shape) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Shape) UnmarshalText(text []byte) error {
	shape, err := ParseShape(string(text))
	if err != nil {
		return err
	}
	*s = shape
	return nil
}

// Direction names a cube face by its local up vector.
type Direction int

// Face order used by every Planet.
const (
	Up Direction = iota
	Down
	Right
	Left
	Forward
	Back
)

// Directions lists the faces in build order.
var Directions = [6]Direction{Up, Down, Right, Left, Forward, Back}

// LocalUp returns the outward normal of the face.
func (d Direction) LocalUp() math.Vec3 {
	switch d {
	case Up:
		return math.Vec3{X: 0, Y: 1, Z: 0}
	case Down:
		return math.Vec3{X: 0, Y: -1, Z: 0}
	case Right:
		return math.Vec3{X: 1, Y: 0, Z: 0}
	case Left:
		return math.Vec3{X: -1, Y: 0, Z: 0}
	case Forward:
		return math.Vec3{X: 0, Y: 0, Z: 1}
	default:
		return math.Vec3{X: 0, Y: 0, Z: -1}
	}
}

// String returns the face name.
func (d Direction) String() string {
	return [...]string{"up", "down", "right", "left", "forward", "back"}[d]
}

// Settings are the live-editable planet parameters.
type Settings struct {
	Resolution   int        `yaml:"resolution" json:"resolution"`
	Color        [3]float32 `yaml:"color" json:"color"`
	NoiseEnabled bool       `yaml:"noise" json:"noise"`
	NoiseScale   float32    `yaml:"noise_scale" json:"noise_scale"`
	Shape        Shape      `yaml:"shape" json:"shape"`
}

// Validate checks the settings before a build. The noise scale must be
// positive even while noise is off.
func (s Settings) Validate() error {
	if s.Resolution < MinResolution || s.Resolution > MaxResolution {
		return fmt.Errorf("%w: %d (want %d..%d)", ErrResolution, s.Resolution, MinResolution, MaxResolution)
	}
	if s.Shape != ShapeSphere && s.Shape != ShapeCube {
		return fmt.Errorf("terrain: unknown shape %d", int(s.Shape))
	}
	if s.NoiseScale <= 0 {
		return fmt.Errorf("%w: noise scale %g", ErrSettings, s.NoiseScale)
	}
	for i, ch := range s.Color {
		if ch < 0 || ch > 1 {
			return fmt.Errorf("%w: color[%d] = %g", ErrSettings, i, ch)
		}
	}
	return nil
}

// Stats summarizes the generated geometry.
type Stats struct {
	Faces     int
	Vertices  int
	Indices   int
	Triangles int
}
