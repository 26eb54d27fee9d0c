package prefabs

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/fightcore/ecs/component"
)

// LoadSpec reads and decodes a YAML table.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// CharacterSpec ties a character class to its command and animation tables
// and maps commands to the clips that perform them.
type CharacterSpec struct {
	Name       string            `yaml:"name"`
	Commands   string            `yaml:"commands"`
	Animations string            `yaml:"animations"`
	Neutral    string            `yaml:"neutral"`
	Damage     string            `yaml:"damage"`
	Skills     map[string]string `yaml:"skills"`
}

// CommandTableSpec lists command definitions in notation. Slack and window
// default to the table values, which default to the matcher defaults.
type CommandTableSpec struct {
	Name     string        `yaml:"name"`
	Slack    *int          `yaml:"slack"`
	Window   *int          `yaml:"window"`
	Commands []CommandSpec `yaml:"commands"`
}

type CommandSpec struct {
	ID       string `yaml:"id"`
	Notation string `yaml:"notation"`
	Slack    *int   `yaml:"slack"`
	Window   *int   `yaml:"window"`
}

// AnimationFileSpec is one animation file: packs of named clips.
type AnimationFileSpec struct {
	File  string                         `yaml:"file"`
	Packs map[string]map[string]ClipSpec `yaml:"packs"`
}

type ClipSpec struct {
	Frames int        `yaml:"frames"`
	Loop   bool       `yaml:"loop"`
	Parts  []PartSpec `yaml:"parts"`
}

type PartSpec struct {
	ID       int       `yaml:"id"`
	Parent   *int      `yaml:"parent"`
	Instance string    `yaml:"instance"`
	Keys     []KeySpec `yaml:"keys"`
}

// KeySpec is one keyframe of a part. Move is the per-frame displacement
// of the owner while the key is in effect, x forward.
type KeySpec struct {
	Frame     int            `yaml:"frame"`
	Transform TransformSpec  `yaml:"transform"`
	Visible   *bool          `yaml:"visible"`
	Move      MoveSpec       `yaml:"move"`
	Collision *CollisionSpec `yaml:"collision"`
	Cancel    CancelSpec     `yaml:"cancel"`
}

type MoveSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type TransformSpec struct {
	X        float64  `yaml:"x"`
	Y        float64  `yaml:"y"`
	ScaleX   *float64 `yaml:"scale_x"`
	ScaleY   *float64 `yaml:"scale_y"`
	Rotation float64  `yaml:"rotation"`
}

// ParseAnimationKey reads "file/pack/anim", or "pack/anim" within file.
func ParseAnimationKey(s, file string) (component.AnimationKey, error) {
	parts := strings.Split(strings.TrimSpace(s), "/")
	for _, p := range parts {
		if p == "" {
			return component.AnimationKey{}, fmt.Errorf("prefabs: bad animation key %q", s)
		}
	}
	switch len(parts) {
	case 2:
		return component.AnimationKey{File: file, Pack: parts[0], Anim: parts[1]}, nil
	case 3:
		return component.AnimationKey{File: parts[0], Pack: parts[1], Anim: parts[2]}, nil
	}
	return component.AnimationKey{}, fmt.Errorf("prefabs: bad animation key %q", s)
}
