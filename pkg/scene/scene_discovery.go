package scene

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownScene is returned when no built-in scene has the requested name
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo describes a built-in scene
type SceneInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type builtin struct {
	description string
	create      func() Scene
}

var builtins = map[string]builtin{
	"default":  {"Unit sphere at the origin", NewDefaultScene},
	"squashed": {"Sphere shrunk along y", NewSquashedScene},
	"narrow":   {"Sphere shrunk along x", NewNarrowScene},
	"rotated":  {"Sphere shrunk along x and rotated about z", NewRotatedScene},
	"sheared":  {"Sphere shrunk along x and sheared", NewShearedScene},
}

// ByName creates the built-in scene with the given name
func ByName(name string) (Scene, error) {
	b, ok := builtins[name]
	if !ok {
		return Scene{}, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return b.create(), nil
}

// ListScenes returns every built-in scene sorted by name
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtins))
	for name, b := range builtins {
		scenes = append(scenes, SceneInfo{Name: name, Description: b.description})
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})
	return scenes
}

// Names returns the names of every built-in scene, sorted
func Names() []string {
	scenes := ListScenes()
	names := make([]string, len(scenes))
	for i, s := range scenes {
		names[i] = s.Name
	}
	return names
}
