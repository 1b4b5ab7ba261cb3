package scene

import (
	"path/filepath"

	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/geometry"
	"github.com/df07/go-raytracer/pkg/loaders"
	"github.com/df07/go-raytracer/pkg/log"
	"github.com/df07/go-raytracer/pkg/material"
	"github.com/df07/go-raytracer/pkg/noise"
)

var logger = log.New("scene")

const (
	earthTextureFile = "earthmap.jpg"
	maxTextureEdge   = 2048
)

// earthTexture loads the globe texture, falling back to a checker when it is unavailable
func (b *builder) earthTexture() material.ColorSource {
	fallback := material.NewChecker(core.NewVec3(0.1, 0.3, 0.7), core.NewVec3(0.2, 0.6, 0.2))
	if b.opts.TextureDir == "" {
		logger.Debugf("no texture directory set, using checker in place of %s", earthTextureFile)
		return fallback
	}

	path := filepath.Join(b.opts.TextureDir, earthTextureFile)
	pic, err := loaders.LoadPicture(path, maxTextureEdge)
	if err != nil {
		logger.Warningf("using checker in place of %s: %v", earthTextureFile, err)
		return fallback
	}
	logger.Infof("loaded %s (%dx%d)", path, pic.Width, pic.Height)
	return material.NewImageTexture(pic)
}

func globeCamera(b *builder, aperture float64) *geometry.Camera {
	lookFrom := core.NewVec3(13, 2, 4)
	lookAt := core.NewVec3(0, 0, 0)
	return b.camera(geometry.CameraConfig{
		LookFrom:      lookFrom,
		LookAt:        lookAt,
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20,
		AspectRatio:   1.5,
		Aperture:      aperture,
		FocusDistance: lookAt.Subtract(lookFrom).Length(),
		Time0:         0,
		Time1:         0.01,
	})
}

// NewTwoSpheresScene places a glowing textured globe on gradient-noise ground in the dark
func NewTwoSpheresScene(opts Options) *Scene {
	b := newBuilder(opts)
	perlin := noise.NewPerlin(b.random)

	ground := material.NewTexturedLambertian(material.NewNoiseTexture(perlin, 2, material.NoiseShifted))
	glowing := material.NewTexturedDiffuseLight(b.earthTexture(), 2)

	return &Scene{
		Name:   "two-spheres",
		Camera: globeCamera(b, 0),
		World: b.finalize(
			geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground),
			geometry.NewSphere(core.NewVec3(0, 2, 0), 2, glowing),
		),
		Environment: NewSolidEnvironment(core.Vec3{}),
		Sampling:    SamplingConfig{SamplesPerPixel: 200, MaxDepth: 50},
	}
}

// NewPerlinSpheresScene places a textured globe on marble ground under a day sky
func NewPerlinSpheresScene(opts Options) *Scene {
	b := newBuilder(opts)
	perlin := noise.NewPerlin(b.random)

	marble := material.NewTexturedLambertian(material.NewMarbleTexture(perlin, 2, 10))
	globe := material.NewTexturedLambertian(b.earthTexture())

	return &Scene{
		Name:   "perlin-spheres",
		Camera: globeCamera(b, 0.1),
		World: b.finalize(
			geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
			geometry.NewSphere(core.NewVec3(0, 2, 0), 2, globe),
		),
		Environment: NewDaySky(),
		Sampling:    SamplingConfig{SamplesPerPixel: 100, MaxDepth: 50},
	}
}
