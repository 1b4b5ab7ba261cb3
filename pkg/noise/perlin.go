// Package noise implements lattice Perlin noise for procedural textures.
package noise

import (
	"math"
	"math/rand"

	"github.com/df07/go-raytracer/pkg/core"
)

const pointCount = 256

// Perlin holds the permutation tables and lattice values for one noise field.
// A Perlin is read-only after construction and safe for concurrent use.
type Perlin struct {
	permX   [pointCount]int
	permY   [pointCount]int
	permZ   [pointCount]int
	values  [pointCount]float64   // hash and value-noise lattice
	vectors [pointCount]core.Vec3 // gradient lattice
}

// NewPerlin builds a noise field from the given random source
func NewPerlin(random *rand.Rand) *Perlin {
	p := &Perlin{}
	for i := 0; i < pointCount; i++ {
		p.values[i] = random.Float64()
		p.vectors[i] = core.NewVec3(
			random.Float64()*2-1,
			random.Float64()*2-1,
			random.Float64()*2-1,
		)
	}
	generatePerm(random, &p.permX)
	generatePerm(random, &p.permY)
	generatePerm(random, &p.permZ)
	return p
}

func generatePerm(random *rand.Rand, perm *[pointCount]int) {
	for i := range perm {
		perm[i] = i
	}
	random.Shuffle(len(perm), func(i, j int) {
		perm[i], perm[j] = perm[j], perm[i]
	})
}

func (p *Perlin) hash(i, j, k int) int {
	return p.permX[i&255] ^ p.permY[j&255] ^ p.permZ[k&255]
}

// Noise returns blocky hash noise in [0, 1)
func (p *Perlin) Noise(point core.Vec3, frequency float64) float64 {
	i := int(math.Floor(frequency * point.X))
	j := int(math.Floor(frequency * point.Y))
	k := int(math.Floor(frequency * point.Z))
	return p.values[p.hash(i, j, k)]
}

// Smoothed returns value noise in [0, 1) with Hermite-smoothed trilinear interpolation
func (p *Perlin) Smoothed(point core.Vec3, frequency float64) float64 {
	point = point.Multiply(frequency)
	fx, fy, fz := math.Floor(point.X), math.Floor(point.Y), math.Floor(point.Z)
	u := hermite(point.X - fx)
	v := hermite(point.Y - fy)
	w := hermite(point.Z - fz)
	i, j, k := int(fx), int(fy), int(fz)

	accum := 0.0
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				c := p.values[p.hash(i+di, j+dj, k+dk)]
				accum += weight(di, u) * weight(dj, v) * weight(dk, w) * c
			}
		}
	}
	return accum
}

// SmoothedShifted returns gradient noise remapped to roughly [0, 1]
func (p *Perlin) SmoothedShifted(point core.Vec3, frequency float64) float64 {
	return 0.5 * (1.0 + p.gradient(point.Multiply(frequency)))
}

// Turbulence sums depth octaves of absolute gradient noise
func (p *Perlin) Turbulence(point core.Vec3, depth int) float64 {
	accum := 0.0
	amplitude := 1.0
	for i := 0; i < depth; i++ {
		accum += amplitude * p.gradient(point)
		amplitude *= 0.5
		point = point.Multiply(2)
	}
	return math.Abs(accum)
}

// gradient returns signed gradient noise, zero at every lattice point
func (p *Perlin) gradient(point core.Vec3) float64 {
	fx, fy, fz := math.Floor(point.X), math.Floor(point.Y), math.Floor(point.Z)
	u, v, w := point.X-fx, point.Y-fy, point.Z-fz
	hu, hv, hw := hermite(u), hermite(v), hermite(w)
	i, j, k := int(fx), int(fy), int(fz)

	accum := 0.0
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				g := p.vectors[p.hash(i+di, j+dj, k+dk)]
				offset := core.NewVec3(u-float64(di), v-float64(dj), w-float64(dk))
				accum += weight(di, hu) * weight(dj, hv) * weight(dk, hw) * g.Dot(offset)
			}
		}
	}
	return accum
}

func hermite(t float64) float64 {
	return t * t * (3 - 2*t)
}

// weight is the trilinear weight for corner c (0 or 1) at fraction t
func weight(c int, t float64) float64 {
	if c == 1 {
		return t
	}
	return 1 - t
}
