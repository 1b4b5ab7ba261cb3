package scene

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownPreset is returned when a quality preset name is not recognized
var ErrUnknownPreset = errors.New("unknown quality preset")

// Preset is a named pair of sample count and vertical resolution
type Preset struct {
	Name            string
	SamplesPerPixel int
	Height          int
}

var presets = []Preset{
	{Name: "low", SamplesPerPixel: 16, Height: 240},
	{Name: "medium", SamplesPerPixel: 64, Height: 480},
	{Name: "high", SamplesPerPixel: 256, Height: 720},
	{Name: "ultra", SamplesPerPixel: 1024, Height: 1080},
}

// Presets returns the quality presets from fastest to slowest
func Presets() []Preset {
	out := make([]Preset, len(presets))
	copy(out, presets)
	return out
}

// LookupPreset finds a preset by case-insensitive name
func LookupPreset(name string) (Preset, error) {
	for _, p := range presets {
		if strings.EqualFold(p.Name, strings.TrimSpace(name)) {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("%w %q", ErrUnknownPreset, name)
}

// Width returns the horizontal resolution for the given aspect ratio
func (p Preset) Width(aspectRatio float64) int {
	return max(1, int(float64(p.Height)*aspectRatio+0.5))
}
