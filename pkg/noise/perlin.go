// Package noise provides seeded Perlin gradient noise for displacing
// sphere-surface vertices.
package noise

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/chewxy/math32"

	"github.com/Faultbox/sphere-explorer/pkg/math"
)

// TableSize is the number of gradient vectors and permutation entries.
const TableSize = 256

// ErrInvalidTable is returned when gradient or permutation tables are malformed.
var ErrInvalidTable = errors.New("noise: invalid table")

// Perlin is an immutable 3D gradient noise generator.
type Perlin struct {
	ranvec [TableSize]math.Vec3
	permX  [TableSize]int
	permY  [TableSize]int
	permZ  [TableSize]int
}

// New builds a generator from seed. Equal seeds produce identical noise.
func New(seed int64) *Perlin {
	rng := rand.New(rand.NewSource(seed))

	p := &Perlin{}
	for i := range p.ranvec {
		p.ranvec[i] = randomUnitVector(rng)
	}
	p.permX = permutation(rng)
	p.permY = permutation(rng)
	p.permZ = permutation(rng)
	return p
}

// NewFromTables builds a generator from explicit tables. Each permutation
// must contain every value in 0..255 exactly once and every vector must have
// unit length.
func NewFromTables(vectors [TableSize]math.Vec3, permX, permY, permZ [TableSize]int) (*Perlin, error) {
	for i, v := range vectors {
		if !math.ApproxEqual(v.Length(), 1, 1e-4) {
			return nil, fmt.Errorf("%w: vector %d has length %f", ErrInvalidTable, i, v.Length())
		}
	}
	for name, perm := range map[string][TableSize]int{"x": permX, "y": permY, "z": permZ} {
		if err := checkPermutation(perm); err != nil {
			return nil, fmt.Errorf("%w: permutation %s: %v", ErrInvalidTable, name, err)
		}
	}
	return &Perlin{ranvec: vectors, permX: permX, permY: permY, permZ: permZ}, nil
}

// Tables returns copies of the generator's tables.
func (p *Perlin) Tables() (vectors [TableSize]math.Vec3, permX, permY, permZ [TableSize]int) {
	return p.ranvec, p.permX, p.permY, p.permZ
}

// Noise returns the gradient noise at pos, roughly in [-1, 1].
func (p *Perlin) Noise(pos math.Vec3) float32 {
	fx := math32.Floor(pos.X)
	fy := math32.Floor(pos.Y)
	fz := math32.Floor(pos.Z)

	u := pos.X - fx
	v := pos.Y - fy
	w := pos.Z - fz

	i := int(fx)
	j := int(fy)
	k := int(fz)

	var c [2][2][2]math.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				c[di][dj][dk] = p.ranvec[p.permX[(i+di)&255]^
					p.permY[(j+dj)&255]^
					p.permZ[(k+dk)&255]]
			}
		}
	}

	return trilinear(c, u, v, w)
}

// trilinear blends the corner gradients with Hermite-smoothed weights.
func trilinear(c [2][2][2]math.Vec3, u, v, w float32) float32 {
	uu := hermite(u)
	vv := hermite(v)
	ww := hermite(w)

	var accum float32
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				fi, fj, fk := float32(i), float32(j), float32(k)
				weight := math.Vec3{X: u - fi, Y: v - fj, Z: w - fk}
				accum += (fi*uu + (1-fi)*(1-uu)) *
					(fj*vv + (1-fj)*(1-vv)) *
					(fk*ww + (1-fk)*(1-ww)) *
					c[i][j][k].Dot(weight)
			}
		}
	}
	return accum
}

// hermite is 3t^2 - 2t^3.
func hermite(t float32) float32 {
	return t * t * (3 - 2*t)
}

// randomUnitVector samples a direction uniformly by rejection in the unit ball.
func randomUnitVector(rng *rand.Rand) math.Vec3 {
	for {
		v := math.Vec3{
			X: 2*rng.Float32() - 1,
			Y: 2*rng.Float32() - 1,
			Z: 2*rng.Float32() - 1,
		}
		l := v.Length()
		if l > 1e-3 && l <= 1 {
			return v.Scale(1 / l)
		}
	}
}

// permutation returns a Fisher-Yates shuffle of 0..255.
func permutation(rng *rand.Rand) [TableSize]int {
	var perm [TableSize]int
	for i := range perm {
		perm[i] = i
	}
	for i := TableSize - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm
}

func checkPermutation(perm [TableSize]int) error {
	var seen [TableSize]bool
	for i, v := range perm {
		if v < 0 || v >= TableSize {
			return fmt.Errorf("entry %d out of range: %d", i, v)
		}
		if seen[v] {
			return fmt.Errorf("duplicate value %d", v)
		}
		seen[v] = true
	}
	return nil
}
