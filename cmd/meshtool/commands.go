package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Faultbox/sphere-explorer/internal/config"
	"github.com/Faultbox/sphere-explorer/internal/terrain"
	"github.com/Faultbox/sphere-explorer/pkg/math"
	"github.com/Faultbox/sphere-explorer/pkg/noise"
)

// planetFlags are shared by the commands that build a planet.
type planetFlags struct {
	config     *string
	resolution *int
	noise      *bool
	scale      *float64
	seed       *int64
	shape      *string
}

func addPlanetFlags(fs *flag.FlagSet) *planetFlags {
	return &planetFlags{
		config:     fs.String("config", "", "Config file for defaults"),
		resolution: fs.Int("resolution", 0, "Face grid resolution"),
		noise:      fs.Bool("noise", false, "Enable noise displacement"),
		scale:      fs.Float64("scale", 0, "Noise scale"),
		seed:       fs.Int64("seed", 0, "Noise seed"),
		shape:      fs.String("shape", "", "Face shape: sphere or cube"),
	}
}

func (f *planetFlags) build() (*terrain.Planet, error) {
	cfg, err := config.LoadFile(*f.config)
	if err != nil {
		return nil, err
	}
	if *f.resolution > 0 {
		cfg.Planet.Resolution = *f.resolution
	}
	if *f.noise {
		cfg.Planet.Noise = true
	}
	if *f.scale > 0 {
		cfg.Planet.NoiseScale = float32(*f.scale)
	}
	if *f.seed != 0 {
		cfg.Planet.Seed = *f.seed
	}
	if *f.shape != "" {
		shape, err := terrain.ParseShape(*f.shape)
		if err != nil {
			return nil, err
		}
		cfg.Planet.Shape = shape
	}
	return terrain.NewPlanet(cfg.Planet.Settings(), cfg.Planet.Seed)
}

func cmdInfo(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("info", flag.ContinueOnError)
	pf := addPlanetFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	planet, err := pf.build()
	if err != nil {
		return err
	}

	s := planet.Settings()
	stats := planet.Stats()
	fmt.Fprintf(out, "Shape:      %s\n", s.Shape)
	fmt.Fprintf(out, "Resolution: %d\n", s.Resolution)
	fmt.Fprintf(out, "Seed:       %d\n", planet.Seed())
	if s.NoiseEnabled {
		fmt.Fprintf(out, "Noise:      on (scale %.2f)\n", s.NoiseScale)
	} else {
		fmt.Fprintln(out, "Noise:      off")
	}
	fmt.Fprintf(out, "Faces:      %d\n", stats.Faces)
	fmt.Fprintf(out, "Vertices:   %d\n", stats.Vertices)
	fmt.Fprintf(out, "Triangles:  %d\n", stats.Triangles)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Per face:")
	for i, f := range planet.Faces() {
		m := f.Mesh()
		lo, hi := radiusRange(m)
		fmt.Fprintf(out, "  %-8s %6d verts  radius %.4f..%.4f\n", terrain.Directions[i], len(m.Vertices), lo, hi)
	}
	return nil
}

func cmdExport(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	pf := addPlanetFlags(fs)
	output := fs.String("o", "planet.obj", "Output OBJ path")
	split := fs.Bool("split", false, "Write one OBJ per face")
	smooth := fs.Bool("smooth", false, "Recompute normals from the surface and weld face seams")
	if err := fs.Parse(args); err != nil {
		return err
	}

	planet, err := pf.build()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(*output), 0755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	if !*split {
		merged := planet.Merged()
		if *smooth {
			merged.RecomputeNormals()
			merged.SmoothNormals()
		}
		if err := writeOBJFile(*output, "planet", merged); err != nil {
			return err
		}
		fmt.Fprintf(out, "Exported: %s (%d triangles)\n", *output, planet.Stats().Triangles)
		return nil
	}

	ext := filepath.Ext(*output)
	base := strings.TrimSuffix(*output, ext)
	if ext == "" {
		ext = ".obj"
	}
	for i, f := range planet.Faces() {
		name := terrain.Directions[i].String()
		path := base + "_" + name + ext
		if err := writeOBJFile(path, name, f.Mesh()); err != nil {
			return err
		}
		fmt.Fprintf(out, "Exported: %s\n", path)
	}
	return nil
}

func writeOBJFile(path, name string, m *terrain.Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	w := bufio.NewWriter(f)
	if err := terrain.WriteOBJ(w, name, m); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

func cmdInspect(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("inspect", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("usage: meshtool inspect <file.obj>")
	}

	m, err := terrain.ReadOBJ(fs.Arg(0), [3]float32{1, 1, 1})
	if err != nil {
		return err
	}

	lo, hi := radiusRange(m)
	fmt.Fprintf(out, "File:      %s\n", fs.Arg(0))
	fmt.Fprintf(out, "Vertices:  %d\n", len(m.Vertices))
	fmt.Fprintf(out, "Triangles: %d\n", m.TriangleCount())
	fmt.Fprintf(out, "Bounds:    (%.3f, %.3f, %.3f) .. (%.3f, %.3f, %.3f)\n",
		m.Bounds.Min[0], m.Bounds.Min[1], m.Bounds.Min[2],
		m.Bounds.Max[0], m.Bounds.Max[1], m.Bounds.Max[2])
	fmt.Fprintf(out, "Radius:    %.4f..%.4f\n", lo, hi)
	return nil
}

func cmdNoise(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("noise", flag.ContinueOnError)
	seed := fs.Int64("seed", 1, "Noise seed")
	scale := fs.Float64("scale", 1, "Noise scale")
	n := fs.Int("n", 16, "Number of samples along +X")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *n < 1 {
		return fmt.Errorf("-n must be positive")
	}

	layer := noise.NewLayer(noise.New(*seed), float32(*scale))
	fmt.Fprintf(out, "%8s  %8s\n", "x", "value")
	for i := 0; i < *n; i++ {
		x := float32(i) / float32(*n)
		v := layer.Value(math.Vec3{X: x, Y: 0.5, Z: 0.25})
		fmt.Fprintf(out, "%8.4f  %8.4f\n", x, v)
	}
	return nil
}

// radiusRange returns the min and max vertex distance from the origin.
func radiusRange(m *terrain.Mesh) (lo, hi float32) {
	if len(m.Vertices) == 0 {
		return 0, 0
	}
	lo = float32(1e30)
	for _, v := range m.Vertices {
		r := math.Vec3{X: v.Position[0], Y: v.Position[1], Z: v.Position[2]}.Length()
		lo = min(lo, r)
		hi = max(hi, r)
	}
	return lo, hi
}
