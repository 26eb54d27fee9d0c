package sim

import (
	"bytes"
	"crypto/sha256"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/milk9111/fightcore/command"
	"github.com/milk9111/fightcore/ecs"
	"github.com/milk9111/fightcore/ecs/component"
)

// Snapshot is the observable state of every fighter after a tick.
type Snapshot struct {
	Tick    uint64        `msgpack:"tick"`
	Players []PlayerState `msgpack:"players"`
}

type PlayerState struct {
	Tag        string       `msgpack:"tag"`
	X          float64      `msgpack:"x"`
	Y          float64      `msgpack:"y"`
	ScaleX     float64      `msgpack:"scale_x"`
	Facing     string       `msgpack:"facing"`
	Anim       string       `msgpack:"anim"`
	Finished   bool         `msgpack:"finished"`
	Clock      float64      `msgpack:"clock"`
	FreezeLeft float64      `msgpack:"freeze_left"`
	Knockback  float64      `msgpack:"knockback"`
	Commands   []command.ID `msgpack:"commands"`
	Damaged    []string     `msgpack:"damaged"`
	SkillCount uint64       `msgpack:"skill_count"`
	Volumes    int          `msgpack:"volumes"`
}

func (s *Sim) Snapshot() Snapshot {
	snap := Snapshot{Tick: s.Tick()}
	for _, p := range s.players {
		snap.Players = append(snap.Players, s.playerState(p))
	}
	return snap
}

func (s *Sim) playerState(p Player) PlayerState {
	w := s.world
	st := PlayerState{Tag: p.Tag}
	if t, ok := ecs.Get(w, p.Entity, component.TransformComponent.Kind()); ok {
		st.X, st.Y, st.ScaleX = t.X, t.Y, t.ScaleX
	}
	if d, ok := ecs.Get(w, p.Entity, component.DirectionComponent.Kind()); ok {
		st.Facing = d.Facing.String()
	}
	if a, ok := ecs.Get(w, p.Entity, component.AnimationStateComponent.Kind()); ok {
		st.Anim = a.Key.String()
		st.Finished = a.Finished
		if sc, ok := ecs.Get(w, p.Entity, component.SkillCountComponent.Kind()); ok {
			st.SkillCount = sc.Count(a.Key)
		}
	}
	if c, ok := ecs.Get(w, p.Entity, component.AnimationClockComponent.Kind()); ok {
		st.Clock = c.Current
		st.FreezeLeft = c.FreezeLeft
	}
	if kb, ok := ecs.Get(w, p.Entity, component.KnockbackComponent.Kind()); ok && kb.Active() {
		st.Knockback = kb.Remaining
	}
	if ac, ok := ecs.Get(w, p.Entity, component.ActiveCommandComponent.Kind()); ok {
		st.Commands = append([]command.ID(nil), ac.Commands...)
	}
	if d, ok := ecs.Get(w, p.Entity, component.DamagedComponent.Kind()); ok {
		for _, id := range d.IDs() {
			st.Damaged = append(st.Damaged, id.String())
		}
	}
	if c, ok := ecs.Get(w, p.Entity, component.CollisionsComponent.Kind()); ok {
		st.Volumes = len(c.Volumes)
	}
	return st
}

// Encode serializes the snapshot. Equal states encode to equal bytes.
func (snap Snapshot) Encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(&snap); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Checksum hashes the current snapshot.
func (s *Sim) Checksum() ([]byte, error) {
	data, err := s.Snapshot().Encode()
	if err != nil {
		return nil, err
	}
	sum := sha256.Sum256(data)
	return sum[:], nil
}
