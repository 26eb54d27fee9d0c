// Package sim assembles a fight from config and prefabs and steps it one
// fixed tick at a time.
package sim

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/milk9111/fightcore/animation"
	"github.com/milk9111/fightcore/config"
	"github.com/milk9111/fightcore/ecs"
	"github.com/milk9111/fightcore/ecs/component"
	"github.com/milk9111/fightcore/ecs/system"
	"github.com/milk9111/fightcore/input"
	"github.com/milk9111/fightcore/logger"
	"github.com/milk9111/fightcore/prefabs"
)

var ErrUnknownPlayer = errors.New("sim: unknown player")

// Player is one fighter in the world.
type Player struct {
	Tag       string
	Entity    ecs.Entity
	Character *prefabs.Character
}

type Sim struct {
	cfg        *config.Config
	world      *ecs.World
	lib        *animation.Library
	pipeline   *system.Pipeline
	players    []Player
	characters map[string]*prefabs.Character
}

// New builds the world described by cfg. Characters shared by several
// players are loaded once.
func New(cfg *config.Config) (*Sim, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Sim{
		cfg:        cfg,
		world:      ecs.NewWorld(),
		lib:        animation.NewLibrary(),
		characters: map[string]*prefabs.Character{},
	}

	for _, pc := range cfg.Players {
		ch, err := s.character(pc.Character)
		if err != nil {
			return nil, err
		}
		e, err := s.spawn(pc, ch)
		if err != nil {
			return nil, fmt.Errorf("sim: spawn %s: %w", pc.Tag, err)
		}
		s.players = append(s.players, Player{Tag: pc.Tag, Entity: e, Character: ch})
	}

	rule, err := loadHitRule(cfg.HitRule.Script)
	if err != nil {
		return nil, err
	}

	s.pipeline = system.NewPipeline(system.Options{
		Library:       s.lib,
		TickRate:      cfg.TickRate,
		AxisThreshold: cfg.Input.AxisThreshold,
		BufferSize:    cfg.Input.BufferSize,
		Facing:        cfg.FacingPolicy(),
		Extrusion:     cfg.ExtrusionPolicy(),
		Rule:          rule,
		Strict:        cfg.Strict,
	})
	return s, nil
}

func (s *Sim) character(file string) (*prefabs.Character, error) {
	if ch, ok := s.characters[file]; ok {
		return ch, nil
	}
	ch, err := prefabs.LoadCharacter(file, s.lib, s.cfg.Tolerance())
	if err != nil {
		return nil, err
	}
	s.characters[file] = ch
	return ch, nil
}

func (s *Sim) spawn(pc config.PlayerConfig, ch *prefabs.Character) (ecs.Entity, error) {
	facing, err := input.ParseDirection(pc.Facing)
	if err != nil {
		return 0, err
	}
	scaleX := 1.0
	if facing == input.FacingLeft {
		scaleX = -1
	}
	w := s.world
	e := ecs.CreateEntity(w)

	skills := ch.Skills
	kb := component.NewKnockback()
	var cond component.Condition
	adds := []error{
		ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{ID: pc.Tag}),
		ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: pc.X, Y: pc.Y, ScaleX: scaleX, ScaleY: 1}),
		ecs.Add(w, e, component.DirectionComponent.Kind(), &component.Direction{Facing: facing}),
		ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{History: input.NewBuffer(s.cfg.Input.BufferSize)}),
		ecs.Add(w, e, component.CommandTableComponent.Kind(), &component.CommandTable{Table: ch.Commands}),
		ecs.Add(w, e, component.ActiveCommandComponent.Kind(), &component.ActiveCommand{}),
		ecs.Add(w, e, component.ConditionComponent.Kind(), &cond),
		ecs.Add(w, e, component.AnimationStateComponent.Kind(), &component.AnimationState{Key: skills.Neutral}),
		ecs.Add(w, e, component.AnimationClockComponent.Kind(), &component.AnimationClock{}),
		ecs.Add(w, e, component.SkillSetComponent.Kind(), &skills),
		ecs.Add(w, e, component.SkillCountComponent.Kind(), &component.SkillCount{}),
		ecs.Add(w, e, component.KnockbackComponent.Kind(), &kb),
		ecs.Add(w, e, component.DamagedComponent.Kind(), &component.DamagedSet{}),
		ecs.Add(w, e, component.HitInfoComponent.Kind(), &component.HitInfo{}),
		ecs.Add(w, e, component.CollisionsComponent.Kind(), &component.Collisions{}),
	}
	if err := errors.Join(adds...); err != nil {
		ecs.DestroyEntity(w, e)
		return 0, err
	}
	return e, nil
}

func loadHitRule(script string) (system.HitRule, error) {
	if script == "" {
		return nil, nil
	}
	src, err := prefabs.LoadScript(script)
	if err != nil {
		return nil, fmt.Errorf("sim: hit rule %s: %w", script, err)
	}
	rule, err := system.NewScriptHitRule(script, src, nil)
	if err != nil {
		return nil, err
	}
	return rule, nil
}

// Step writes this tick's raw inputs and runs one tick. Players missing
// from raw read as released.
func (s *Sim) Step(raw map[string]input.RawState) {
	for _, p := range s.players {
		in, ok := ecs.Get(s.world, p.Entity, component.InputComponent.Kind())
		if !ok {
			continue
		}
		in.Raw = raw[p.Tag]
	}
	s.pipeline.Update(s.world)
}

// Tick is the number of completed ticks.
func (s *Sim) Tick() uint64 {
	return s.world.Tick()
}

func (s *Sim) World() *ecs.World {
	return s.world
}

func (s *Sim) Config() *config.Config {
	return s.cfg
}

func (s *Sim) Library() *animation.Library {
	return s.lib
}

// Players returns the fighters in config order.
func (s *Sim) Players() []Player {
	return append([]Player(nil), s.players...)
}

func (s *Sim) Player(tag string) (Player, error) {
	for _, p := range s.players {
		if p.Tag == tag {
			return p, nil
		}
	}
	return Player{}, fmt.Errorf("%w: %q", ErrUnknownPlayer, tag)
}

// Tags returns the player tags in config order.
func (s *Sim) Tags() []string {
	tags := make([]string, len(s.players))
	for i, p := range s.players {
		tags[i] = p.Tag
	}
	return tags
}

// ReloadCommands reloads the command table file and points every fighter
// using it at the new table. Call between ticks.
func (s *Sim) ReloadCommands(file string) error {
	name := filepath.Base(file)
	var matched bool
	for _, ch := range s.characters {
		if filepath.Base(ch.CommandsFile) != name {
			continue
		}
		table, err := prefabs.LoadCommandTable(ch.CommandsFile, s.cfg.Tolerance())
		if err != nil {
			return fmt.Errorf("sim: reload %s: %w", file, err)
		}
		ch.Commands = table
		matched = true
	}
	if !matched {
		return nil
	}

	for _, p := range s.players {
		ct, ok := ecs.Get(s.world, p.Entity, component.CommandTableComponent.Kind())
		if !ok {
			continue
		}
		ct.Table = p.Character.Commands
	}
	logger.L().Info("sim: reloaded commands", "file", name, "tick", s.Tick())
	return nil
}

// ReloadHitRule recompiles the configured hit-rule script. A script that
// fails to compile leaves the running rule in place.
func (s *Sim) ReloadHitRule() error {
	rule, err := loadHitRule(s.cfg.HitRule.Script)
	if err != nil {
		return err
	}
	s.pipeline.SetHitRule(rule)
	logger.L().Info("sim: reloaded hit rule", "script", s.cfg.HitRule.Script, "tick", s.Tick())
	return nil
}

// Reload dispatches a changed prefab file to the matching reload. Files
// that affect nothing hot-swappable are ignored.
func (s *Sim) Reload(path string) error {
	switch prefabs.Classify(path) {
	case prefabs.ChangeScript:
		if s.cfg.HitRule.Script == "" || filepath.Base(path) != filepath.Base(s.cfg.HitRule.Script) {
			return nil
		}
		return s.ReloadHitRule()
	case prefabs.ChangeTable:
		return s.ReloadCommands(path)
	}
	return nil
}
