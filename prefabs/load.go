package prefabs

import (
	"fmt"
	"slices"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/fightcore/animation"
	"github.com/milk9111/fightcore/command"
	"github.com/milk9111/fightcore/ecs/component"
	"github.com/milk9111/fightcore/geometry"
	"github.com/milk9111/fightcore/logger"
)

// Character is a loaded character class. Its command table is shared by
// every entity of the class.
type Character struct {
	Name         string
	CommandsFile string
	Commands     *command.Table
	Skills       component.SkillSet
}

// Tolerance is the matcher slack and window for tables that set neither.
type Tolerance struct {
	Slack  int
	Window int
}

func DefaultTolerance() Tolerance {
	return Tolerance{Slack: command.DefaultSlack, Window: command.DefaultWindow}
}

// LoadCommandTable builds a command table. Definitions that fail to parse
// or validate are logged and skipped; the rest of the table still loads.
func LoadCommandTable(filename string, tol Tolerance) (*command.Table, error) {
	spec, err := LoadSpec[CommandTableSpec](filename)
	if err != nil {
		return nil, err
	}
	name := spec.Name
	if name == "" {
		name = filename
	}
	slack := intOr(spec.Slack, tol.Slack)
	window := intOr(spec.Window, tol.Window)

	table := command.NewTable(name)
	for i, c := range spec.Commands {
		if err := addCommand(table, c, slack, window); err != nil {
			logger.L().Warn("prefabs: skipped command", "file", filename, "index", i, "id", c.ID, "err", err)
		}
	}
	return table, nil
}

func addCommand(table *command.Table, c CommandSpec, slack, window int) error {
	id, err := command.ParseID(c.ID)
	if err != nil {
		return err
	}
	def, err := command.Compile(c.Notation, intOr(c.Slack, slack), intOr(c.Window, window))
	if err != nil {
		return err
	}
	return table.Add(id, def)
}

// LoadClips decodes every clip of an animation file, in key order. A clip
// that fails validation is logged and skipped.
func LoadClips(filename string) ([]*animation.Clip, error) {
	_, clips, err := loadAnimationFile(filename)
	return clips, err
}

func loadAnimationFile(filename string) (string, []*animation.Clip, error) {
	spec, err := LoadSpec[AnimationFileSpec](filename)
	if err != nil {
		return "", nil, err
	}
	if spec.File == "" {
		return "", nil, fmt.Errorf("prefabs: %s: animation file has no name", filename)
	}

	var clips []*animation.Clip
	for pack, anims := range spec.Packs {
		for anim, cs := range anims {
			key := component.AnimationKey{File: spec.File, Pack: pack, Anim: anim}
			clip, err := buildClip(key, cs)
			if err == nil {
				err = clip.Validate()
			}
			if err != nil {
				logger.L().Warn("prefabs: skipped clip", "file", filename, "clip", key, "err", err)
				continue
			}
			clips = append(clips, clip)
		}
	}
	slices.SortFunc(clips, func(a, b *animation.Clip) int { return a.Key.Compare(b.Key) })
	return spec.File, clips, nil
}

func buildClip(key component.AnimationKey, cs ClipSpec) (*animation.Clip, error) {
	clip := &animation.Clip{Key: key, Frames: cs.Frames, Loop: cs.Loop}
	for _, ps := range cs.Parts {
		part := animation.Part{ID: ps.ID, Parent: intOr(ps.Parent, -1)}
		if ps.Instance != "" {
			inst, err := ParseAnimationKey(ps.Instance, key.File)
			if err != nil {
				return nil, fmt.Errorf("part %d: %w", ps.ID, err)
			}
			part.Instance = &inst
		}
		for _, ks := range ps.Keys {
			part.Keys = append(part.Keys, buildKey(ks))
		}
		clip.Parts = append(clip.Parts, part)
	}
	return clip, nil
}

func buildKey(ks KeySpec) animation.PartKey {
	k := animation.PartKey{
		Frame: ks.Frame,
		Transform: geometry.Transform{
			X:        ks.Transform.X,
			Y:        ks.Transform.Y,
			ScaleX:   floatOr(ks.Transform.ScaleX, 1),
			ScaleY:   floatOr(ks.Transform.ScaleY, 1),
			Rotation: ks.Transform.Rotation,
		},
		Visible: ks.Visible == nil || *ks.Visible,
		Move:    cp.Vector{X: ks.Move.X, Y: ks.Move.Y},
	}
	if ks.Collision != nil || ks.Cancel.Cancel != 0 {
		k.Tag = &component.KeyframeTag{Cancel: ks.Cancel.Cancel}
		if ks.Collision != nil {
			ct := ks.Collision.CollisionType
			k.Tag.Collision = &ct
		}
	}
	return k
}

// AddClips registers clips in lib, logging and skipping those it rejects.
// It returns the number added.
func AddClips(lib *animation.Library, clips []*animation.Clip) int {
	added := 0
	for _, c := range clips {
		if err := lib.Add(c); err != nil {
			logger.L().Warn("prefabs: skipped clip", "clip", c.Key, "err", err)
			continue
		}
		added++
	}
	return added
}

// LoadCharacter loads a character, its command table and its clips. Clips
// go into lib, which may already hold other characters. Skills naming a
// clip lib does not have are logged and dropped.
func LoadCharacter(filename string, lib *animation.Library, tol Tolerance) (*Character, error) {
	spec, err := LoadSpec[CharacterSpec](filename)
	if err != nil {
		return nil, err
	}

	table, err := LoadCommandTable(spec.Commands, tol)
	if err != nil {
		return nil, err
	}
	file, clips, err := loadAnimationFile(spec.Animations)
	if err != nil {
		return nil, err
	}
	AddClips(lib, clips)

	resolve := func(s string) (component.AnimationKey, error) {
		key, err := ParseAnimationKey(s, file)
		if err != nil {
			return key, err
		}
		if _, ok := lib.Clip(key); !ok {
			return key, fmt.Errorf("%s: %w", key, animation.ErrUnknownClip)
		}
		return key, nil
	}

	ch := &Character{
		Name:         spec.Name,
		CommandsFile: spec.Commands,
		Commands:     table,
		Skills:       component.SkillSet{Skills: map[command.ID]component.AnimationKey{}},
	}
	if ch.Skills.Neutral, err = resolve(spec.Neutral); err != nil {
		return nil, fmt.Errorf("prefabs: %s: neutral: %w", filename, err)
	}
	if spec.Damage != "" {
		if ch.Skills.Damage, err = resolve(spec.Damage); err != nil {
			logger.L().Warn("prefabs: no damage clip", "file", filename, "err", err)
			ch.Skills.Damage = component.AnimationKey{}
		}
	}
	for name, s := range spec.Skills {
		id, err := command.ParseID(name)
		if err != nil {
			logger.L().Warn("prefabs: skipped skill", "file", filename, "command", name, "err", err)
			continue
		}
		key, err := resolve(s)
		if err != nil {
			logger.L().Warn("prefabs: skipped skill", "file", filename, "command", name, "err", err)
			continue
		}
		ch.Skills.Skills[id] = key
	}
	return ch, nil
}

func intOr(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}

func floatOr(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}
