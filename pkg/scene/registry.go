package scene

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnknownScene is returned when a scene name is not registered
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string // Name accepted by New
	DisplayName string
	Description string
	Group       string
}

type entry struct {
	info  SceneInfo
	build func(Options) *Scene
}

var registry = map[string]entry{
	"cornell": {
		SceneInfo{"cornell", "Cornell Box", "Classic box with two rotated blocks and a ceiling light", "Indoor"},
		NewCornellScene,
	},
	"cornell-smoke": {
		SceneInfo{"cornell-smoke", "Cornell Smoke", "Cornell box with blocks replaced by smoke volumes", "Indoor"},
		NewCornellSmokeScene,
	},
	"two-spheres": {
		SceneInfo{"two-spheres", "Two Spheres", "Glowing globe on gradient noise ground", "Textures"},
		NewTwoSpheresScene,
	},
	"perlin-spheres": {
		SceneInfo{"perlin-spheres", "Perlin Spheres", "Textured globe on marble ground", "Textures"},
		NewPerlinSpheresScene,
	},
	"random-spheres": {
		SceneInfo{"random-spheres", "Random Spheres", "Field of random spheres with motion blur", "Spheres"},
		NewRandomSpheresScene,
	},
	"random-spheres-night": {
		SceneInfo{"random-spheres-night", "Random Spheres (Night)", "Sphere field lit by glowing spheres", "Spheres"},
		NewRandomSpheresNightScene,
	},
	"final": {
		SceneInfo{"final", "Final Scene", "Every feature at once: media, motion blur, textures and instancing", "Showcase"},
		NewFinalScene,
	},
}

// Names returns the registered scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// List returns information about every built-in scene, sorted by group then name
func List() []SceneInfo {
	infos := make([]SceneInfo, 0, len(registry))
	for _, e := range registry {
		infos = append(infos, e.info)
	}
	sort.Slice(infos, func(i, j int) bool {
		if infos[i].Group != infos[j].Group {
			return infos[i].Group < infos[j].Group
		}
		return infos[i].ID < infos[j].ID
	})
	return infos
}

// New builds the named scene
func New(name string, opts Options) (*Scene, error) {
	e, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %s)", ErrUnknownScene, name, strings.Join(Names(), ", "))
	}
	return e.build(opts), nil
}
