package material

import (
	"math"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/noise"
)

// NoiseKind selects which Perlin variant a NoiseTexture samples
type NoiseKind int

const (
	NoiseHash NoiseKind = iota
	NoiseSmoothed
	NoiseShifted
)

// NoiseTexture is a grayscale texture driven by Perlin noise
type NoiseTexture struct {
	Perlin    *noise.Perlin
	Frequency float64
	Kind      NoiseKind
}

// NewNoiseTexture creates a grayscale noise texture
func NewNoiseTexture(perlin *noise.Perlin, frequency float64, kind NoiseKind) *NoiseTexture {
	return &NoiseTexture{Perlin: perlin, Frequency: frequency, Kind: kind}
}

// Evaluate returns the noise value replicated on all channels
func (n *NoiseTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	var value float64
	switch n.Kind {
	case NoiseHash:
		value = n.Perlin.Noise(point, n.Frequency)
	case NoiseSmoothed:
		value = n.Perlin.Smoothed(point, n.Frequency)
	default:
		value = n.Perlin.SmoothedShifted(point, n.Frequency)
	}
	return core.NewVec3(value, value, value)
}

// MarbleTexture produces sine stripes along Z perturbed by turbulence
type MarbleTexture struct {
	Perlin     *noise.Perlin
	Scale      float64 // stripe density
	Turbulence float64 // stripe distortion strength
}

const marbleDepth = 7

// NewMarbleTexture creates a marble texture
func NewMarbleTexture(perlin *noise.Perlin, scale, turbulence float64) *MarbleTexture {
	return &MarbleTexture{Perlin: perlin, Scale: scale, Turbulence: turbulence}
}

// Evaluate returns 0.5 * (1 + sin(scale*z + turbulence*turb(p)))
func (m *MarbleTexture) Evaluate(uv core.Vec2, point core.Vec3) core.Vec3 {
	value := 0.5 * (1 + math.Sin(m.Scale*point.Z+m.Turbulence*m.Perlin.Turbulence(point, marbleDepth)))
	return core.NewVec3(value, value, value)
}
