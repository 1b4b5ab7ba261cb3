package scene

import (
	"github.com/df07/go-raytracer/pkg/core"
	"github.com/df07/go-raytracer/pkg/geometry"
	"github.com/df07/go-raytracer/pkg/material"
)

// Cornell box dimensions (standard 555x555x555 units)
const boxSize = 555.0

func cornellCamera(b *builder) *geometry.Camera {
	return b.camera(geometry.CameraConfig{
		LookFrom:    core.NewVec3(278, 278, -800), // Position camera outside the box looking in
		LookAt:      core.NewVec3(278, 278, 0),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        40.0,
		AspectRatio: 1.0, // Square aspect ratio for Cornell box
		Time0:       0,
		Time1:       1,
	})
}

// cornellWalls returns the five walls of the box
func cornellWalls() []geometry.Shape {
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))

	return []geometry.Shape{
		geometry.NewYZRect(0, boxSize, 0, boxSize, boxSize, green), // right wall
		geometry.NewYZRect(0, boxSize, 0, boxSize, 0, red),         // left wall
		geometry.NewXZRect(0, boxSize, 0, boxSize, 0, white),       // floor
		geometry.NewXZRect(0, boxSize, 0, boxSize, boxSize, white), // ceiling
		geometry.NewXYRect(0, boxSize, 0, boxSize, boxSize, white), // back wall
	}
}

// cornellBlocks returns the tall and short blocks, rotated and placed inside the box
func cornellBlocks(b *builder) (tall, short geometry.Shape) {
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))

	tall = geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white, b.sampler)
	tall = geometry.NewRotateY(tall, 15)
	tall = geometry.NewTranslate(tall, core.NewVec3(265, 0, 295))

	short = geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white, b.sampler)
	short = geometry.NewRotateY(short, -18)
	short = geometry.NewTranslate(short, core.NewVec3(130, 0, 65))

	return tall, short
}

// NewCornellScene creates the classic Cornell box with two rotated blocks and a ceiling light
func NewCornellScene(opts Options) *Scene {
	b := newBuilder(opts)

	light := material.NewTexturedDiffuseLight(material.NewSolidColor(core.NewVec3(1, 1, 1)), 15)
	tall, short := cornellBlocks(b)

	shapes := cornellWalls()
	shapes = append(shapes,
		geometry.NewXZRect(213, 343, 227, 332, boxSize-1, light),
		tall,
		short,
	)

	return &Scene{
		Name:        "cornell",
		Camera:      cornellCamera(b),
		World:       b.finalize(shapes...),
		Environment: NewSolidEnvironment(core.Vec3{}),
		Sampling:    SamplingConfig{SamplesPerPixel: 200, MaxDepth: 50},
	}
}

// NewCornellSmokeScene replaces the blocks with volumes of dark and light smoke
func NewCornellSmokeScene(opts Options) *Scene {
	b := newBuilder(opts)

	light := material.NewTexturedDiffuseLight(material.NewSolidColor(core.NewVec3(1, 1, 1)), 7)
	tall, short := cornellBlocks(b)

	shapes := cornellWalls()
	shapes = append(shapes,
		geometry.NewXZRect(113, 443, 127, 432, boxSize-1, light),
		geometry.NewConstantMedium(tall, 0.01, material.NewSolidColor(core.NewVec3(0, 0, 0))),
		geometry.NewConstantMedium(short, 0.01, material.NewSolidColor(core.NewVec3(1, 1, 1))),
	)

	return &Scene{
		Name:        "cornell-smoke",
		Camera:      cornellCamera(b),
		World:       b.finalize(shapes...),
		Environment: NewSolidEnvironment(core.Vec3{}),
		Sampling:    SamplingConfig{SamplesPerPixel: 200, MaxDepth: 50},
	}
}
