package scene

import (
	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/geometry"
	"github.com/df07/go-raytracer/pkg/material"
)

const (
	gridExtent   = 11
	gridSpacing  = 1.2
	smallRadius  = 0.3
	glassIndex   = 1.33
	shutterClose = 0.25
)

func randomSpheresCamera(b *builder, lookFrom core.Vec3, vfov, aperture float64) *geometry.Camera {
	lookAt := core.NewVec3(0, 0, 0)
	return b.camera(geometry.CameraConfig{
		LookFrom:      lookFrom,
		LookAt:        lookAt,
		Up:            core.NewVec3(0, 1, 0),
		VFov:          vfov,
		AspectRatio:   1.5,
		Aperture:      aperture,
		FocusDistance: lookAt.Subtract(lookFrom).Length(),
		Time0:         0,
		Time1:         shutterClose,
	})
}

// gridCenter jitters a sphere position on the ground grid
func (b *builder) gridCenter(i, j int) core.Vec3 {
	return core.NewVec3(
		float64(i)*gridSpacing+b.rangeFloat(-0.5, 0.5),
		smallRadius,
		float64(j)*gridSpacing+b.rangeFloat(-0.5, 0.5),
	)
}

// NewRandomSpheresScene creates a field of small random spheres around three large ones.
// Diffuse spheres bounce upward during the shutter interval.
func NewRandomSpheresScene(opts Options) *Scene {
	b := newBuilder(opts)

	ground := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	shapes := []geometry.Shape{
		geometry.NewSphere(core.NewVec3(0, -1000, -1), 1000, ground),
	}

	for i := -gridExtent; i <= gridExtent; i++ {
		for j := -gridExtent; j <= gridExtent; j++ {
			if j == 0 {
				continue // keep the row of large spheres clear
			}
			center := b.gridCenter(i, j)

			choice := b.random.Float64()
			switch {
			case choice < 0.65:
				albedo := b.randomVec(0, 1).MultiplyVec(b.randomVec(0, 1))
				bounce := center.Add(core.NewVec3(0, b.rangeFloat(0, 0.5), 0))
				shapes = append(shapes, geometry.NewMovingSphere(center, bounce, 0, shutterClose, smallRadius, material.NewLambertian(albedo)))
			case choice < 0.9:
				metal := material.NewMetal(b.randomVec(0.5, 1), b.rangeFloat(0, 0.5))
				shapes = append(shapes, geometry.NewSphere(center, smallRadius, metal))
			default:
				shapes = append(shapes, geometry.NewSphere(center, smallRadius, material.NewDielectric(glassIndex)))
			}
		}
	}

	shapes = append(shapes,
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1, material.NewLambertian(b.randomVec(0, 1))),
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1, material.NewDielectric(glassIndex)),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.1)),
	)

	return &Scene{
		Name:        "random-spheres",
		Camera:      randomSpheresCamera(b, core.NewVec3(13, 2, 4), 20, 0.1),
		World:       b.finalize(shapes...),
		Environment: NewDaySky(),
		Sampling:    SamplingConfig{SamplesPerPixel: 100, MaxDepth: 50},
	}
}

// NewRandomSpheresNightScene is the random sphere field lit only by glowing spheres
func NewRandomSpheresNightScene(opts Options) *Scene {
	b := newBuilder(opts)

	checker := material.NewChecker(core.NewVec3(1, 1, 1), core.NewVec3(0.2, 0.3, 0.1))
	shapes := []geometry.Shape{
		geometry.NewSphere(core.NewVec3(0, -1000, -1), 1000, material.NewTexturedLambertian(checker)),
	}

	for i := -gridExtent; i <= gridExtent; i++ {
		for j := -gridExtent; j <= gridExtent; j++ {
			if j == 0 {
				continue
			}
			center := b.gridCenter(i, j)

			var mat material.Material
			choice := b.random.Float64()
			switch {
			case choice < 0.25:
				mat = material.NewLambertian(b.randomVec(0, 1).MultiplyVec(b.randomVec(0, 1)))
			case choice < 0.5:
				glow := material.NewSolidColor(b.randomVec(0, 1).MultiplyVec(b.randomVec(0, 1)))
				mat = material.NewTexturedDiffuseLight(glow, b.rangeFloat(0.5, 2))
			case choice < 0.8:
				mat = material.NewMetal(b.randomVec(0.5, 1), b.rangeFloat(0, 0.5))
			default:
				mat = material.NewDielectric(glassIndex)
			}
			shapes = append(shapes, geometry.NewSphere(center, smallRadius, mat))
		}
	}

	shapes = append(shapes,
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1, material.NewTexturedDiffuseLight(material.NewSolidColor(b.randomVec(0, 1)), 3)),
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1, material.NewTexturedDiffuseLight(checker, 1.5)),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1, material.NewDielectric(glassIndex)),
	)

	return &Scene{
		Name:        "random-spheres-night",
		Camera:      randomSpheresCamera(b, core.NewVec3(12, 3, 4), 35, 0),
		World:       b.finalize(shapes...),
		Environment: NewSolidEnvironment(core.Vec3{}),
		Sampling:    SamplingConfig{SamplesPerPixel: 200, MaxDepth: 50},
	}
}
