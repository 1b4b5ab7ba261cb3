package scene

import (
	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/geometry"
	"github.com/df07/go-raytracer/pkg/material"
	"github.com/df07/go-raytracer/pkg/noise"
)

const (
	boxesPerSide = 20
	floorBoxSize = 100.0
	ballCount    = 1000
)

// NewFinalScene combines every feature: box terrain, motion blur, glass, metal,
// participating media, image and noise textures and nested containers.
func NewFinalScene(opts Options) *Scene {
	b := newBuilder(opts)

	// Terrain of boxes with random heights, in its own container
	ground := material.NewLambertian(core.NewVec3(0.48, 0.83, 0.53))
	terrain := geometry.NewContainer()
	for i := 0; i < boxesPerSide; i++ {
		for j := 0; j < boxesPerSide; j++ {
			x0 := -1000.0 + float64(i)*floorBoxSize
			z0 := -1000.0 + float64(j)*floorBoxSize
			p0 := core.NewVec3(x0, 0, z0)
			p1 := core.NewVec3(x0+floorBoxSize, b.rangeFloat(1, 101), z0+floorBoxSize)
			terrain.Add(geometry.NewBox(p0, p1, ground, b.sampler))
		}
	}
	terrain.Finalize(b.sampler)

	light := material.NewTexturedDiffuseLight(material.NewSolidColor(core.NewVec3(1, 1, 1)), 7)

	movingCenter := core.NewVec3(400, 400, 200)
	moving := geometry.NewMovingSphere(
		movingCenter, movingCenter.Add(core.NewVec3(30, 0, 0)), 0, 1, 50,
		material.NewLambertian(core.NewVec3(0.7, 0.3, 0.1)),
	)

	glass := material.NewDielectric(1.5)

	// Blue subsurface-like ball: glass shell filled with fog
	fogBoundary := geometry.NewSphere(core.NewVec3(360, 150, 45), 50, glass)
	fog := geometry.NewConstantMedium(fogBoundary, 0.2, material.NewSolidColor(core.NewVec3(0.2, 0.4, 0.9)))

	// Thin haze over the whole scene
	haze := geometry.NewConstantMedium(
		geometry.NewSphere(core.NewVec3(0, 0, 0), 5000, glass), 0.0001,
		material.NewSolidColor(core.NewVec3(1, 1, 1)),
	)

	// Cube of small white balls, rotated and moved into place
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	balls := geometry.NewContainer()
	for i := 0; i < ballCount; i++ {
		balls.Add(geometry.NewSphere(b.randomVec(0, 165), 10, white))
	}
	balls.Finalize(b.sampler)
	ballCube := geometry.NewTranslate(geometry.NewRotateY(balls, 15), core.NewVec3(-100, 270, 395))

	perlin := noise.NewPerlin(b.random)

	return &Scene{
		Name: "final",
		Camera: b.camera(geometry.CameraConfig{
			LookFrom:    core.NewVec3(478, 278, -600),
			LookAt:      core.NewVec3(278, 278, 0),
			Up:          core.NewVec3(0, 1, 0),
			VFov:        40,
			AspectRatio: 1,
			Time0:       0,
			Time1:       1,
		}),
		World: b.finalize(
			terrain,
			geometry.NewXZRect(123, 423, 147, 412, 554, light),
			moving,
			geometry.NewSphere(core.NewVec3(260, 150, 45), 50, glass),
			geometry.NewSphere(core.NewVec3(0, 150, 145), 50, material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 1.0)),
			fogBoundary,
			fog,
			haze,
			geometry.NewSphere(core.NewVec3(400, 200, 400), 100, material.NewTexturedLambertian(b.earthTexture())),
			geometry.NewSphere(core.NewVec3(220, 280, 300), 80, material.NewTexturedLambertian(material.NewMarbleTexture(perlin, 0.1, 10))),
			ballCube,
		),
		Environment: NewSolidEnvironment(core.Vec3{}),
		Sampling:    SamplingConfig{SamplesPerPixel: 1000, MaxDepth: 50},
	}
}
