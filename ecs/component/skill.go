package component

import "github.com/milk9111/fightcore/command"

// SkillCount counts how many times each clip has been started.
type SkillCount struct {
	counts map[AnimationKey]uint64
}

var SkillCountComponent = NewComponent[SkillCount]()

func (s *SkillCount) Increment(key AnimationKey) {
	if s.counts == nil {
		s.counts = map[AnimationKey]uint64{}
	}
	s.counts[key]++
}

// Count is safe on a nil receiver.
func (s *SkillCount) Count(key AnimationKey) uint64 {
	if s == nil {
		return 0
	}
	return s.counts[key]
}

// SkillSet maps commands to the clips that perform them.
type SkillSet struct {
	Neutral AnimationKey
	Damage  AnimationKey
	Skills  map[command.ID]AnimationKey
}

var SkillSetComponent = NewComponent[SkillSet]()

// Skill returns the clip for id.
func (s *SkillSet) Skill(id command.ID) (AnimationKey, bool) {
	if s == nil {
		return AnimationKey{}, false
	}
	key, ok := s.Skills[id]
	return key, ok
}
