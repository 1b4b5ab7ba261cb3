package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-raytracer/pkg/core"
)

func newHit(normal core.Vec3, frontFace bool) HitRecord {
	return HitRecord{
		T:         1,
		Point:     core.NewVec3(0, 0, 0),
		Normal:    normal,
		FrontFace: frontFace,
		UV:        core.NewVec2(0.5, 0.5),
	}
}

func TestLambertian_AlwaysScattersIntoHemisphere(t *testing.T) {
	albedo := core.NewVec3(0.5, 0.7, 0.9)
	lambertian := NewLambertian(albedo)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	normal := core.NewVec3(0, 0, 1)
	hit := newHit(normal, true)
	ray := core.NewRayAtTime(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1), 0.25)

	for i := 0; i < 500; i++ {
		scatter, didScatter := lambertian.Scatter(ray, hit, sampler)
		if !didScatter {
			t.Fatal("Lambertian should always scatter")
		}
		if scatter.Scattered.Direction.Dot(normal) < -1e-12 {
			t.Fatalf("Scattered direction %v points below the surface", scatter.Scattered.Direction)
		}
		if scatter.Attenuation != albedo {
			t.Fatalf("Expected attenuation %v, got %v", albedo, scatter.Attenuation)
		}
		if scatter.Scattered.Time != 0.25 {
			t.Fatalf("Scattered ray should keep the incoming time, got %f", scatter.Scattered.Time)
		}
		if scatter.Scattered.Origin != hit.Point {
			t.Fatalf("Scattered ray should start at the hit point, got %v", scatter.Scattered.Origin)
		}
	}
}

// oppositeSampler makes RandomUnitVector return (0, 0, -1)
type oppositeSampler struct{}

func (oppositeSampler) Get1D() float64  { return 0 }
func (oppositeSampler) Get2D() core.Vec2 { return core.NewVec2(1, 0) }
func (oppositeSampler) Get3D() core.Vec3 { return core.Vec3{} }

func TestLambertian_DegenerateDirectionFallsBackToNormal(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(1, 1, 1))
	normal := core.NewVec3(0, 0, 1)

	scatter, _ := lambertian.Scatter(core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1)), newHit(normal, true), oppositeSampler{})
	if scatter.Scattered.Direction != normal {
		t.Errorf("Expected fallback direction %v, got %v", normal, scatter.Scattered.Direction)
	}
}

func TestMetal_PerfectMirror(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.9, 0.9, 0.9), 0.0)
	normal := core.NewVec3(0, 1, 0)
	ray := core.NewRay(core.NewVec3(-1, 1, 0), core.NewVec3(1, -1, 0))

	scatter, didScatter := metal.Scatter(ray, newHit(normal, true), core.FixedSampler{Value: 0.5})
	if !didScatter {
		t.Fatal("Mirror reflection should scatter")
	}

	expected := core.NewVec3(1, 1, 0).Normalize()
	if !scatter.Scattered.Direction.Equals(expected, 1e-12) {
		t.Errorf("Expected reflected direction %v, got %v", expected, scatter.Scattered.Direction)
	}
}

func TestMetal_FuzzClamp(t *testing.T) {
	tests := []struct {
		fuzz     float64
		expected float64
	}{
		{-0.5, 0},
		{0.3, 0.3},
		{4, 1},
	}
	for _, tt := range tests {
		if m := NewMetal(core.NewVec3(1, 1, 1), tt.fuzz); m.Fuzzness != tt.expected {
			t.Errorf("Fuzz %f: expected %f, got %f", tt.fuzz, tt.expected, m.Fuzzness)
		}
	}
}

func TestMetal_GrazingFuzzIsAbsorbed(t *testing.T) {
	// Reflection of a grazing ray is (1, ~0, 0); fuzz along -Y pushes it below the surface
	metal := NewMetal(core.NewVec3(1, 1, 1), 1.0)
	normal := core.NewVec3(0, 1, 0)
	ray := core.NewRay(core.NewVec3(-1, 0.001, 0), core.NewVec3(1, -0.001, 0))

	_, didScatter := metal.Scatter(ray, newHit(normal, true), belowSampler{})
	if didScatter {
		t.Error("Fuzzed reflection below the surface should be absorbed")
	}
}

// belowSampler makes RandomUnitVector return approximately (0, -1, 0)
type belowSampler struct{}

func (belowSampler) Get1D() float64  { return 0.5 }
func (belowSampler) Get2D() core.Vec2 { return core.NewVec2(0.5, 0.75) }
func (belowSampler) Get3D() core.Vec3 { return core.NewVec3(0.5, 0.5, 0.5) }

func TestDielectric_TotalInternalReflection(t *testing.T) {
	glass := NewDielectric(1.5)

	// Leaving glass at a steep angle, sin(theta)*1.5 > 1
	normal := core.NewVec3(0, 1, 0)
	direction := core.NewVec3(1, -0.2, 0).Normalize()
	ray := core.NewRay(core.NewVec3(0, 1, 0), direction)

	// Get1D of 0.999 would refract if refraction were possible
	scatter, didScatter := glass.Scatter(ray, newHit(normal, false), core.FixedSampler{Value: 0.999})
	if !didScatter {
		t.Fatal("Dielectric should always scatter")
	}
	if scatter.Scattered.Direction.Y <= 0 {
		t.Errorf("Expected reflection above the surface, got %v", scatter.Scattered.Direction)
	}
}

func TestDielectric_NormalIncidenceRefracts(t *testing.T) {
	glass := NewTintedDielectric(1.5, core.NewVec3(0.9, 1, 0.9))
	normal := core.NewVec3(0, 1, 0)
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	// Schlick reflectance at normal incidence is 0.04, so U = 0.5 refracts
	scatter, _ := glass.Scatter(ray, newHit(normal, true), core.FixedSampler{Value: 0.5})
	if !scatter.Scattered.Direction.Equals(core.NewVec3(0, -1, 0), 1e-12) {
		t.Errorf("Expected straight-through refraction, got %v", scatter.Scattered.Direction)
	}
	if scatter.Attenuation != glass.Tint {
		t.Errorf("Expected tint %v, got %v", glass.Tint, scatter.Attenuation)
	}

	// U below the reflectance reflects
	scatter, _ = glass.Scatter(ray, newHit(normal, true), core.FixedSampler{Value: 0.01})
	if !scatter.Scattered.Direction.Equals(core.NewVec3(0, 1, 0), 1e-12) {
		t.Errorf("Expected reflection, got %v", scatter.Scattered.Direction)
	}
}

func TestReflectance(t *testing.T) {
	if r := Reflectance(1.0, 1.0/1.5); math.Abs(r-0.04) > 1e-12 {
		t.Errorf("Expected 0.04 at normal incidence, got %f", r)
	}
	if r := Reflectance(0.0, 1.0/1.5); math.Abs(r-1.0) > 1e-12 {
		t.Errorf("Expected 1.0 at grazing incidence, got %f", r)
	}
}

func TestDiffuseLight(t *testing.T) {
	light := NewTexturedDiffuseLight(NewSolidColor(core.NewVec3(1, 0.5, 0.25)), 4)

	if _, didScatter := light.Scatter(core.Ray{}, newHit(core.NewVec3(0, 1, 0), true), core.FixedSampler{}); didScatter {
		t.Error("Lights should never scatter")
	}

	hit := newHit(core.NewVec3(0, 1, 0), true)
	hit.Material = light
	if got := EmittedLight(&hit); got != core.NewVec3(4, 2, 1) {
		t.Errorf("Expected emission (4, 2, 1), got %v", got)
	}

	hit.Material = NewLambertian(core.NewVec3(1, 1, 1))
	if got := EmittedLight(&hit); got != (core.Vec3{}) {
		t.Errorf("Non-emitters should emit black, got %v", got)
	}
}

func TestIsotropic_ScattersUnitDirections(t *testing.T) {
	iso := NewIsotropic(core.NewVec3(0.5, 0.5, 0.5))
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(8)))

	for i := 0; i < 200; i++ {
		scatter, didScatter := iso.Scatter(core.NewRay(core.Vec3{}, core.NewVec3(1, 0, 0)), newHit(core.NewVec3(1, 0, 0), true), sampler)
		if !didScatter {
			t.Fatal("Isotropic should always scatter")
		}
		if math.Abs(scatter.Scattered.Direction.Length()-1) > 1e-9 {
			t.Fatalf("Expected unit direction, got %v", scatter.Scattered.Direction)
		}
	}
}

func TestSetFaceNormal(t *testing.T) {
	outward := core.NewVec3(0, 0, 1)

	var hit HitRecord
	hit.SetFaceNormal(core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)), outward)
	if !hit.FrontFace || hit.Normal != outward {
		t.Errorf("Entering ray: expected front face with outward normal, got %v %v", hit.FrontFace, hit.Normal)
	}

	hit.SetFaceNormal(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, 1)), outward)
	if hit.FrontFace || hit.Normal != outward.Negate() {
		t.Errorf("Exiting ray: expected back face with flipped normal, got %v %v", hit.FrontFace, hit.Normal)
	}
}
