package system

import (
	"errors"
	"fmt"

	"github.com/milk9111/fightcore/ecs"
	"github.com/milk9111/fightcore/ecs/component"
	"github.com/milk9111/fightcore/logger"
)

var ErrUnclassifiable = errors.New("judge: pair is not an attack against a damaged volume")

// Classify reports whether the first volume of a pair is the attack. Only
// an attack kind against Damaged, in either order, is classifiable.
func Classify(a, b component.CollisionType) (attackFirst bool, err error) {
	switch {
	case a.Kind.IsAttack() && b.Kind == component.Damaged:
		return true, nil
	case b.Kind.IsAttack() && a.Kind == component.Damaged:
		return false, nil
	}
	return false, fmt.Errorf("%w: %s x %s", ErrUnclassifiable, a, b)
}

// DamageJudgeSystem classifies this tick's hit contacts and records their
// effects in each side's HitInfo through the hit rule. Contacts are handled
// in broad-phase order. A swing is counted once per victim per tick even
// when several of its volumes overlap.
type DamageJudgeSystem struct {
	rule   HitRule
	strict bool
}

// NewDamageJudgeSystem uses StandardHitRule when rule is nil. In strict mode
// an unclassifiable pair panics; otherwise it is logged and dropped.
func NewDamageJudgeSystem(rule HitRule, strict bool) *DamageJudgeSystem {
	s := &DamageJudgeSystem{strict: strict}
	s.SetRule(rule)
	return s
}

// SetRule swaps the hit rule. Call it between ticks.
func (s *DamageJudgeSystem) SetRule(rule HitRule) {
	if rule == nil {
		rule = StandardHitRule{}
	}
	s.rule = rule
}

type throwPair struct {
	attacker ecs.Entity
	victim   ecs.Entity
}

type swingKey struct {
	victim ecs.Entity
	id     component.DamageCollisionID
}

func (s *DamageJudgeSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	events := w.Events().Drain(EventHitContact)
	if len(events) == 0 {
		return
	}
	hits := make([]Hit, 0, len(events))
	throws := map[throwPair]bool{}
	for _, evt := range events {
		c, ok := evt.Data.(Contact)
		if !ok {
			continue
		}
		hit, ok := s.classify(c)
		if !ok {
			continue
		}
		if hit.Attack.Type.Kind == component.Throw {
			throws[throwPair{hit.Attacker, hit.Victim}] = true
		}
		hits = append(hits, hit)
	}

	seen := map[swingKey]bool{}
	for _, hit := range hits {
		if hit.Attack.ID != nil {
			k := swingKey{victim: hit.Victim, id: *hit.Attack.ID}
			if seen[k] {
				continue
			}
			seen[k] = true
		}
		hit.Traded = hit.Attack.Type.Kind == component.Throw && throws[throwPair{hit.Victim, hit.Attacker}]
		if cond, ok := ecs.Get(w, hit.Victim, component.ConditionComponent.Kind()); ok {
			hit.Air = cond.Has(component.ConditionAir)
		}
		s.judge(w, hit)
	}
}

func (s *DamageJudgeSystem) judge(w *ecs.World, hit Hit) {
	attacker := ecs.GetOrAdd(w, hit.Attacker, component.HitInfoComponent.Kind())
	victim := ecs.GetOrAdd(w, hit.Victim, component.HitInfoComponent.Kind())
	if attacker == nil || victim == nil {
		return
	}
	cancels := s.rule.AttackUpdate(attacker, hit)
	cancels = append(cancels, s.rule.DamageUpdate(victim, hit)...)
	for _, c := range cancels {
		if info, ok := ecs.Get(w, c.Target, component.HitInfoComponent.Kind()); ok {
			info.Cancel(c.Owner)
		}
	}
}

func (s *DamageJudgeSystem) classify(c Contact) (Hit, bool) {
	attackFirst, err := Classify(c.A.Volume.Type, c.B.Volume.Type)
	if err != nil {
		if s.strict {
			panic(err)
		}
		logger.L().Error("judge: dropped pair", "a", c.A.Entity, "b", c.B.Entity, "err", err)
		return Hit{}, false
	}
	if attackFirst {
		return Hit{Attacker: c.A.Entity, Victim: c.B.Entity, Attack: c.A.Volume, Damage: c.B.Volume}, true
	}
	return Hit{Attacker: c.B.Entity, Victim: c.A.Entity, Attack: c.B.Volume, Damage: c.A.Volume}, true
}
