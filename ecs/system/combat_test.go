package system

import (
	"math"
	"testing"

	"github.com/milk9111/fightcore/ecs"
	"github.com/milk9111/fightcore/ecs/component"
)

func TestSwingHitsOncePerKnockback(t *testing.T) {
	w := ecs.NewWorld()
	attacker := fighter(t, w, 0, node(0, component.Blow, 30, 50, 40, 20))
	victim := fighter(t, w, 60, node(0, component.Damaged, 0, 50, 40, 100))
	p := &hitLog{victim: victim}
	s := combatScheduler(p)

	var hitTicks []int
	for tick := 0; tick < 40; tick++ {
		s.Update(w)
		if len(p.seen[tick]) > 0 {
			hitTicks = append(hitTicks, tick)
		}
		if tick == 0 {
			d, _ := ecs.Get(w, victim, component.DamagedComponent.Kind())
			if d.Len() != 1 {
				t.Fatalf("expected one recorded swing after first hit, got %d", d.Len())
			}
		}
	}

	// 15 frozen ticks, then 18 ticks of knockback; the Damaged record is
	// cleared on tick 32 and the same swing lands again on tick 33.
	want := []int{0, 33}
	if len(hitTicks) != len(want) || hitTicks[0] != want[0] || hitTicks[1] != want[1] {
		t.Fatalf("expected hits on ticks %v, got %v", want, hitTicks)
	}

	first := p.info[0]
	id := first.DamageCollisionIDs[0]
	if id.Owner != uint64(attacker) || id.Key != jabKey || id.Swing != 1 {
		t.Fatalf("unexpected swing id %s", id)
	}
	if !first.Knockback.Set || first.Knockback.Frames != 18 {
		t.Fatalf("expected knockback of 18 frames, got %+v", first.Knockback)
	}
	if first.AttackOwner != uint64(attacker) {
		t.Fatalf("expected attack owner %d, got %d", attacker, first.AttackOwner)
	}
}

func TestLevel2HitstopFreezesBothClocks(t *testing.T) {
	w := ecs.NewWorld()
	attacker := fighter(t, w, 0, node(0, component.Blow, 30, 50, 40, 20))
	victim := fighter(t, w, 60, node(0, component.Damaged, 0, 50, 40, 100))
	p := &hitLog{victim: victim}
	combatScheduler(p).Update(w)

	if got := p.info[0].Hitstop; !got.Set || got.Frames != 15 {
		t.Fatalf("expected victim hitstop 15, got %+v", got)
	}
	for _, e := range []ecs.Entity{attacker, victim} {
		clock, _ := ecs.Get(w, e, component.AnimationClockComponent.Kind())
		if !clock.Frozen || math.Abs(clock.FreezeLeft-15.0/60) > 1e-12 {
			t.Fatalf("entity %s: expected clock frozen for 15/60s, got %+v", e, clock)
		}
		info, _ := ecs.Get(w, e, component.HitInfoComponent.Kind())
		if !info.IsDefault() {
			t.Fatalf("entity %s: hit info not reset: %+v", e, info)
		}
	}
	kb, _ := ecs.Get(w, victim, component.KnockbackComponent.Kind())
	if math.Abs(kb.Remaining-18.0/60) > 1e-12 {
		t.Fatalf("knockback must not tick while frozen, got %v", kb.Remaining)
	}
}

func TestAttackerHitstopLastPairWins(t *testing.T) {
	w := ecs.NewWorld()
	// Slots 1, 2 and 3 in creation order. Pairs are judged by ascending
	// slot, so the hit on the slot 3 victim writes the attacker last.
	left := fighter(t, w, -60, node(0, component.Damaged, 0, 50, 40, 100))
	heavy := node(0, component.Blow, -30, 50, 40, 20)
	heavy.Tag.Collision.Attack.Level = component.HitLevel{Tier: component.Level4}
	light := node(1, component.Blow, 30, 50, 40, 20)
	light.Tag.Collision.Attack.Level = component.HitLevel{Tier: component.Level1}
	light.Tag.Collision.Attack.Swing = 2
	attacker := fighter(t, w, 0, heavy, light)
	right := fighter(t, w, 60, node(0, component.Damaged, 0, 50, 40, 100))
	combatScheduler(&hitLog{victim: right}).Update(w)

	tests := []struct {
		name   string
		e      ecs.Entity
		frames float64
	}{
		{name: "attacker", e: attacker, frames: 11},
		{name: "level4_victim", e: left, frames: 23},
		{name: "level1_victim", e: right, frames: 11},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			clock, _ := ecs.Get(w, tc.e, component.AnimationClockComponent.Kind())
			if !clock.Frozen || math.Abs(clock.FreezeLeft-tc.frames/60) > 1e-12 {
				t.Fatalf("expected a %v frame freeze, got %+v", tc.frames, clock)
			}
		})
	}
}

func TestAirVictimUsesAirEffect(t *testing.T) {
	w := ecs.NewWorld()
	fighter(t, w, 0, node(0, component.Blow, 30, 50, 40, 20))
	victim := fighter(t, w, 60, node(0, component.Damaged, 0, 50, 40, 100))
	air := component.ConditionAir
	must(t, ecs.Add(w, victim, component.ConditionComponent.Kind(), &air))
	p := &hitLog{victim: victim}
	combatScheduler(p).Update(w)

	if got := p.info[0].Knockback; got.Frames != 30 {
		t.Fatalf("expected air knockback 30, got %+v", got)
	}
}

func TestSwingCountedOncePerVictimPerTick(t *testing.T) {
	w := ecs.NewWorld()
	fighter(t, w, 0,
		node(0, component.Blow, 30, 50, 40, 20),
		node(1, component.Blow, 30, 30, 40, 20),
	)
	victim := fighter(t, w, 60,
		node(0, component.Damaged, 0, 50, 40, 100),
		node(1, component.Damaged, -10, 30, 20, 20),
	)
	p := &hitLog{victim: victim}
	combatScheduler(p).Update(w)

	if got := len(p.seen[0]); got != 1 {
		t.Fatalf("expected one id for one swing, got %d", got)
	}
}

func TestThrowTechCancelsBothAttributions(t *testing.T) {
	w := ecs.NewWorld()
	a := fighter(t, w, 0,
		node(0, component.Throw, 20, 50, 20, 20),
		node(1, component.Damaged, 0, 50, 20, 100),
	)
	b := fighter(t, w, 30,
		node(0, component.Throw, -20, 50, 20, 20),
		node(1, component.Damaged, 0, 50, 20, 100),
	)

	var infos [2]component.HitInfo
	s := ecs.NewScheduler(
		NewRegisterColliderSystem(),
		NewCollideSystem(),
		NewDamageJudgeSystem(nil, true),
		ecs.SystemFunc(func(w *ecs.World) {
			for i, e := range []ecs.Entity{a, b} {
				info, _ := ecs.Get(w, e, component.HitInfoComponent.Kind())
				infos[i] = *info
			}
		}),
	)
	s.Update(w)

	for i, info := range infos {
		if info.AttackOwner != 0 || len(info.DamagedOwners) != 0 {
			t.Fatalf("fighter %d: expected traded throws to cancel, got %+v", i, info)
		}
	}
}

func TestExtrusionSeparatesSymmetrically(t *testing.T) {
	tests := []struct {
		name   string
		policy ExtrusionPolicy
		ax, bx float64
		depth  float64
	}{
		{name: "horizontal", policy: ExtrudeHorizontal, ax: 0, bx: 30, depth: 10},
		{name: "horizontal_reversed", policy: ExtrudeHorizontal, ax: 30, bx: 0, depth: 10},
		{name: "both", policy: ExtrudeBoth, ax: 0, bx: 36, depth: 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := ecs.NewWorld()
			a := fighter(t, w, tc.ax, node(0, component.Extrusion, 0, 50, 40, 100))
			b := fighter(t, w, tc.bx, node(0, component.Extrusion, 0, 50, 40, 100))
			ecs.NewScheduler(
				NewRegisterColliderSystem(),
				NewCollideSystem(),
				NewExtrudeSystem(tc.policy),
			).Update(w)

			ta, _ := ecs.Get(w, a, component.TransformComponent.Kind())
			tb, _ := ecs.Get(w, b, component.TransformComponent.Kind())
			da := ta.X - tc.ax
			db := tb.X - tc.bx
			if math.Abs(math.Abs(da)+math.Abs(db)-tc.depth) > 1e-9 {
				t.Fatalf("expected displacements to sum to %v, got %v and %v", tc.depth, da, db)
			}
			if da*db >= 0 {
				t.Fatalf("expected opposite displacements, got %v and %v", da, db)
			}
			if math.Abs(tb.X-ta.X) < 40-1e-9 {
				t.Fatalf("bodies still overlap: %v and %v", ta.X, tb.X)
			}
			if ta.Y != 0 || tb.Y != 0 {
				t.Fatalf("vertical position changed: %v and %v", ta.Y, tb.Y)
			}
		})
	}
}

func TestKnockbackHoldsWhileFrozen(t *testing.T) {
	w := ecs.NewWorld()
	e := fighter(t, w, 0)
	kb, _ := ecs.Get(w, e, component.KnockbackComponent.Kind())
	kb.Set(2 * testDT)
	clock, _ := ecs.Get(w, e, component.AnimationClockComponent.Kind())
	clock.Freeze(testDT)
	d := ecs.GetOrAdd(w, e, component.DamagedComponent.Kind())
	d.Add(component.DamageCollisionID{Owner: 9, Key: jabKey})

	s := NewKnockbackSystem(testDT)
	s.Update(w)
	if math.Abs(kb.Remaining-2*testDT) > 1e-12 {
		t.Fatalf("frozen knockback decremented to %v", kb.Remaining)
	}

	clock.Frozen = false
	s.Update(w)
	if !kb.Active() || d.Len() != 1 {
		t.Fatalf("knockback ended early: %v, damaged %d", kb.Remaining, d.Len())
	}
	s.Update(w)
	if kb.Active() || d.Len() != 0 {
		t.Fatalf("expected knockback over and damaged cleared: %v, damaged %d", kb.Remaining, d.Len())
	}
}
