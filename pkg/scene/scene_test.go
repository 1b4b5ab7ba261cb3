package scene

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-raytracer/pkg/core"
)

func TestGradientEnvironment(t *testing.T) {
	env := NewGradientEnvironment(core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 1))

	tests := []struct {
		name      string
		direction core.Vec3
		expected  core.Vec3
	}{
		{"Straight up", core.NewVec3(0, 5, 0), core.NewVec3(0, 0, 1)},
		{"Straight down", core.NewVec3(0, -2, 0), core.NewVec3(1, 0, 0)},
		{"Horizon", core.NewVec3(3, 0, 0), core.NewVec3(0.5, 0, 0.5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := env.Color(core.NewRay(core.Vec3{}, tt.direction))
			if !got.Equals(tt.expected, 1e-12) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}

	solid := NewSolidEnvironment(core.NewVec3(0.2, 0.3, 0.4))
	if got := solid.Color(core.NewRay(core.Vec3{}, core.NewVec3(0.3, -0.7, 0.1))); !got.Equals(core.NewVec3(0.2, 0.3, 0.4), 1e-12) {
		t.Errorf("Solid environment should be constant, got %v", got)
	}
}

func TestRegistry_BuildsEveryScene(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			s, err := New(name, Options{Seed: 1})
			if err != nil {
				t.Fatalf("New(%q) failed: %v", name, err)
			}
			if s.Name != name {
				t.Errorf("Expected scene name %q, got %q", name, s.Name)
			}
			if s.Camera == nil || s.World == nil || s.Environment == nil {
				t.Fatalf("Scene %q is incomplete: %+v", name, s)
			}
			if _, ok := s.World.BoundingBox(); !ok {
				t.Errorf("Scene %q world should be bounded", name)
			}
			if s.Sampling.SamplesPerPixel <= 0 || s.Sampling.MaxDepth <= 0 {
				t.Errorf("Scene %q has invalid sampling config %+v", name, s.Sampling)
			}

			if name == "final" {
				return // the center ray passes between objects
			}

			// A ray through the middle of the frame should hit something
			ray := s.Camera.GetRay(0.5, 0.5, core.FixedSampler{Value: 0.5})
			if _, hit := s.World.Hit(ray, 1e-3, math.Inf(1), core.FixedSampler{Value: 0.5}); !hit {
				t.Errorf("Center ray of %q should hit the world", name)
			}
		})
	}
}

func TestRegistry_UnknownScene(t *testing.T) {
	if _, err := New("does-not-exist", Options{}); !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}

func TestRegistry_ListMatchesNames(t *testing.T) {
	if len(List()) != len(Names()) {
		t.Errorf("List has %d entries, Names has %d", len(List()), len(Names()))
	}
	for _, info := range List() {
		if _, ok := registry[info.ID]; !ok {
			t.Errorf("Listed scene %q is not registered", info.ID)
		}
	}
}

func TestOptions_AspectRatioOverride(t *testing.T) {
	s, err := New("cornell", Options{AspectRatio: 2})
	if err != nil {
		t.Fatal(err)
	}
	if s.Camera.AspectRatio() != 2 {
		t.Errorf("Expected aspect ratio 2, got %f", s.Camera.AspectRatio())
	}
}

func TestScenes_AreDeterministicPerSeed(t *testing.T) {
	a, _ := New("random-spheres", Options{Seed: 7})
	b, _ := New("random-spheres", Options{Seed: 7})

	boxA, _ := a.World.BoundingBox()
	boxB, _ := b.World.BoundingBox()
	if boxA != boxB {
		t.Errorf("Same seed should produce the same world, got %v and %v", boxA, boxB)
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		name    string
		samples int
		height  int
	}{
		{"low", 16, 240},
		{"Medium", 64, 480},
		{"high", 256, 720},
		{"ULTRA", 1024, 1080},
	}
	for _, tt := range tests {
		p, err := LookupPreset(tt.name)
		if err != nil {
			t.Fatalf("LookupPreset(%q) failed: %v", tt.name, err)
		}
		if p.SamplesPerPixel != tt.samples || p.Height != tt.height {
			t.Errorf("%s: expected (%d, %d), got (%d, %d)", tt.name, tt.samples, tt.height, p.SamplesPerPixel, p.Height)
		}
	}

	if _, err := LookupPreset("extreme"); !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("Expected ErrUnknownPreset, got %v", err)
	}

	if w := (Preset{Height: 240}).Width(1.5); w != 360 {
		t.Errorf("Expected width 360, got %d", w)
	}
}
