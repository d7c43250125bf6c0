package terrain

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/sphere-explorer/internal/logger"
	"github.com/Faultbox/sphere-explorer/pkg/math"
	"github.com/Faultbox/sphere-explorer/pkg/noise"
)

// Planet owns the six faces of a cube-sphere and rebuilds them whenever the
// settings change.
type Planet struct {
	faces    [6]*Face
	settings Settings
	layer    *noise.Layer
	seed     int64

	// elevations is the scratch buffer filled by the noise pass and drained
	// face by face in Directions order.
	elevations []math.Vec3

	generation uint64
}

// NewPlanet builds a planet. The noise generator is created once from seed
// and reused for every rebuild, so equal settings give equal meshes.
func NewPlanet(settings Settings, seed int64) (*Planet, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	p := &Planet{
		layer: noise.NewLayer(noise.New(seed), settings.NoiseScale),
		seed:  seed,
	}
	for i, dir := range Directions {
		face, err := NewFace(settings.Resolution, dir.LocalUp(), settings.Color)
		if err != nil {
			return nil, fmt.Errorf("face %s: %w", dir, err)
		}
		p.faces[i] = face
	}

	if err := p.rebuild(settings); err != nil {
		return nil, err
	}
	return p, nil
}

// Update rebuilds all faces if any setting differs from the last build.
// It reports whether a rebuild happened. Invalid settings are rejected even
// when they would not trigger a rebuild.
func (p *Planet) Update(settings Settings) (bool, error) {
	if err := settings.Validate(); err != nil {
		return false, err
	}
	if !p.changed(settings) {
		return false, nil
	}
	if err := p.rebuild(settings); err != nil {
		return false, err
	}
	return true, nil
}

// changed compares against the settings of the last successful build.
// Noise scale only matters while noise is on.
func (p *Planet) changed(s Settings) bool {
	prev := p.settings
	if prev.Resolution != s.Resolution ||
		prev.Color != s.Color ||
		prev.NoiseEnabled != s.NoiseEnabled ||
		prev.Shape != s.Shape {
		return true
	}
	return s.NoiseEnabled && prev.NoiseScale != s.NoiseScale
}

func (p *Planet) rebuild(s Settings) error {
	for _, f := range p.faces {
		f.Resolution = s.Resolution
		f.Color = s.Color
		f.Shape = s.Shape
		f.Elevations = nil
		if _, err := f.Build(); err != nil {
			return err
		}
	}

	if s.NoiseEnabled {
		p.layer.Scale = s.NoiseScale
		p.elevations = p.computeElevations()
		if err := p.drainElevations(); err != nil {
			return err
		}
		for _, f := range p.faces {
			if _, err := f.Build(); err != nil {
				return err
			}
		}
	}

	p.settings = s
	p.generation++

	stats := p.Stats()
	logger.Debug("planet rebuilt",
		zap.Int("resolution", s.Resolution),
		zap.Bool("noise", s.NoiseEnabled),
		zap.Float32("noise_scale", s.NoiseScale),
		zap.Stringer("shape", s.Shape),
		zap.Int("vertices", stats.Vertices),
		zap.Int("triangles", stats.Triangles),
		zap.Uint64("generation", p.generation),
	)
	return nil
}

// computeElevations evaluates the noise layer on every undisplaced vertex,
// face after face.
func (p *Planet) computeElevations() []math.Vec3 {
	per := p.faces[0].VertexCount()
	buf := make([]math.Vec3, 0, len(p.faces)*per)
	for _, f := range p.faces {
		for _, v := range f.Mesh().Vertices {
			buf = append(buf, p.layer.Values(vec3(v.Position)))
		}
	}
	return buf
}

// drainElevations hands each face the next contiguous N^2 entries of the
// scratch buffer and then discards it.
func (p *Planet) drainElevations() error {
	buf := p.elevations
	for i, f := range p.faces {
		per := f.VertexCount()
		if len(buf) < per {
			return fmt.Errorf("%w: face %s needs %d, %d left", ErrElevationCount, Directions[i], per, len(buf))
		}
		f.Elevations = buf[:per:per]
		buf = buf[per:]
	}
	if len(buf) != 0 {
		return fmt.Errorf("%w: %d elevations left over", ErrElevationCount, len(buf))
	}
	p.elevations = nil
	return nil
}

// Faces returns the faces in Directions order.
func (p *Planet) Faces() []*Face {
	return p.faces[:]
}

// Meshes returns the current face meshes in Directions order.
func (p *Planet) Meshes() []*Mesh {
	meshes := make([]*Mesh, len(p.faces))
	for i, f := range p.faces {
		meshes[i] = f.Mesh()
	}
	return meshes
}

// Merged returns all faces combined into a single mesh.
func (p *Planet) Merged() *Mesh {
	return Merge(p.Meshes()...)
}

// Settings returns the settings of the last build.
func (p *Planet) Settings() Settings {
	return p.settings
}

// Seed returns the noise seed.
func (p *Planet) Seed() int64 {
	return p.seed
}

// Generation increments on every rebuild.
func (p *Planet) Generation() uint64 {
	return p.generation
}

// Stats returns geometry totals across all faces.
func (p *Planet) Stats() Stats {
	var s Stats
	for _, f := range p.faces {
		m := f.Mesh()
		s.Faces++
		s.Vertices += len(m.Vertices)
		s.Indices += len(m.Indices)
	}
	s.Triangles = s.Indices / 3
	return s
}
