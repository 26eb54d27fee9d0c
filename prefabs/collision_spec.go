package prefabs

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/fightcore/ecs/component"
)

// CollisionSpec decodes a keyframe's collision tag. Kinds without a payload
// may be written as a bare name:
//
//	collision: damaged
//	collision: {kind: blow, damage: 8, level: level2, swing: 1,
//	            ground: {frame: 18}, air: {frame: 24, reaction: launch}}
type CollisionSpec struct {
	component.CollisionType
}

type collisionFields struct {
	Kind   string       `yaml:"kind"`
	Damage int          `yaml:"damage"`
	Ground EffectSpec   `yaml:"ground"`
	Air    *EffectSpec  `yaml:"air"`
	Level  HitLevelSpec `yaml:"level"`
	Swing  uint32       `yaml:"swing"`
}

type EffectSpec struct {
	Frame    int    `yaml:"frame"`
	Reaction string `yaml:"reaction"`
}

func (c *CollisionSpec) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		kind, err := component.ParseCollisionKind(strings.TrimSpace(value.Value))
		if err != nil {
			return err
		}
		if kind == component.Blow || kind == component.Projectile {
			return fmt.Errorf("prefabs: line %d: %s needs attack fields", value.Line, kind)
		}
		c.CollisionType = component.CollisionType{Kind: kind}
		return nil
	}

	var f collisionFields
	if err := value.Decode(&f); err != nil {
		return err
	}
	kind, err := component.ParseCollisionKind(strings.TrimSpace(f.Kind))
	if err != nil {
		return fmt.Errorf("prefabs: line %d: %w", value.Line, err)
	}
	c.CollisionType = component.CollisionType{Kind: kind}
	if kind != component.Blow && kind != component.Projectile {
		return nil
	}
	if f.Level.Tier == 0 {
		return fmt.Errorf("prefabs: line %d: %s needs a hit level", value.Line, kind)
	}
	air := f.Ground
	if f.Air != nil {
		air = *f.Air
	}
	c.Attack = component.Attack{
		Damage: f.Damage,
		Ground: component.HitEffect{Frame: f.Ground.Frame, Reaction: f.Ground.Reaction},
		Air:    component.HitEffect{Frame: air.Frame, Reaction: air.Reaction},
		Level:  f.Level.HitLevel,
		Swing:  f.Swing,
	}
	return nil
}

// HitLevelSpec is "level1" to "level4", or {level, frames} for a custom
// hitstop.
type HitLevelSpec struct {
	component.HitLevel
}

func (h *HitLevelSpec) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var tier component.HitTier
		switch strings.ToLower(strings.TrimSpace(value.Value)) {
		case "level1":
			tier = component.Level1
		case "level2":
			tier = component.Level2
		case "level3":
			tier = component.Level3
		case "level4":
			tier = component.Level4
		default:
			return fmt.Errorf("prefabs: line %d: unknown hit level %q", value.Line, value.Value)
		}
		h.HitLevel = component.HitLevel{Tier: tier}
		return nil
	}

	var custom struct {
		Level  int `yaml:"level"`
		Frames int `yaml:"frames"`
	}
	if err := value.Decode(&custom); err != nil {
		return err
	}
	if custom.Frames < 0 {
		return fmt.Errorf("prefabs: line %d: negative hitstop", value.Line)
	}
	h.HitLevel = component.HitLevel{Tier: component.CustomLevel, Level: custom.Level, Frames: custom.Frames}
	return nil
}

// CancelSpec is a list of cancel flag names, or a single name.
type CancelSpec struct {
	component.Cancel
}

func (c *CancelSpec) UnmarshalYAML(value *yaml.Node) error {
	var names []string
	if value.Kind == yaml.ScalarNode {
		names = []string{value.Value}
	} else if err := value.Decode(&names); err != nil {
		return err
	}
	flags, err := component.ParseCancel(names)
	if err != nil {
		return fmt.Errorf("prefabs: line %d: %w", value.Line, err)
	}
	c.Cancel = flags
	return nil
}
