package system

import (
	"errors"
	"testing"

	"github.com/milk9111/fightcore/ecs"
	"github.com/milk9111/fightcore/ecs/component"
)

var allKinds = []component.CollisionKind{
	component.Extrusion,
	component.Blow,
	component.Projectile,
	component.Throw,
	component.Damaged,
}

func volume(kind component.CollisionKind, id *component.DamageCollisionID) component.Volume {
	return component.Volume{Type: component.CollisionType{Kind: kind}, ID: id}
}

func TestFilterPairTable(t *testing.T) {
	w := ecs.NewWorld()
	e1 := ecs.CreateEntity(w)
	e2 := ecs.CreateEntity(w)

	accepted := map[[2]component.CollisionKind]bool{
		{component.Extrusion, component.Extrusion}: true,
		{component.Damaged, component.Blow}:        true,
		{component.Damaged, component.Projectile}:  true,
		{component.Damaged, component.Throw}:       true,
		{component.Blow, component.Damaged}:        true,
		{component.Projectile, component.Damaged}:  true,
		{component.Throw, component.Damaged}:       true,
	}

	for _, ka := range allKinds {
		for _, kb := range allKinds {
			a := Body{Entity: e1, Volume: volume(ka, nil)}
			b := Body{Entity: e2, Volume: volume(kb, nil)}
			want := accepted[[2]component.CollisionKind{ka, kb}]
			if got := FilterPair(w, a, b); got != want {
				t.Fatalf("%s x %s: expected %v, got %v", ka, kb, want, got)
			}
			if FilterPair(w, a, b) != FilterPair(w, b, a) {
				t.Fatalf("%s x %s: filter is not symmetric", ka, kb)
			}
			a.Entity = e2
			if FilterPair(w, a, b) {
				t.Fatalf("%s x %s: same entity pair accepted", ka, kb)
			}
		}
	}
}

func TestFilterPairRejectsRecordedSwing(t *testing.T) {
	w := ecs.NewWorld()
	attacker := ecs.CreateEntity(w)
	victim := ecs.CreateEntity(w)
	id := component.DamageCollisionID{Owner: uint64(attacker), Key: jabKey, Swing: 1}
	other := id
	other.Count = 1

	hit := Body{Entity: attacker, Volume: volume(component.Blow, &id)}
	hurt := Body{Entity: victim, Volume: volume(component.Damaged, nil)}
	if !FilterPair(w, hit, hurt) {
		t.Fatalf("expected fresh swing to be accepted")
	}

	d := ecs.GetOrAdd(w, victim, component.DamagedComponent.Kind())
	d.Add(id)
	if FilterPair(w, hit, hurt) || FilterPair(w, hurt, hit) {
		t.Fatalf("expected recorded swing to be rejected")
	}
	if d.Len() != 1 {
		t.Fatalf("filter must not modify Damaged")
	}

	hit.Volume.ID = &other
	if !FilterPair(w, hurt, hit) {
		t.Fatalf("expected a later use of the same move to be accepted")
	}
}

func TestClassify(t *testing.T) {
	for _, ka := range allKinds {
		for _, kb := range allKinds {
			a := component.CollisionType{Kind: ka}
			b := component.CollisionType{Kind: kb}
			attackFirst, err := Classify(a, b)
			switch {
			case ka.IsAttack() && kb == component.Damaged:
				if err != nil || !attackFirst {
					t.Fatalf("%s x %s: expected attack first, got %v %v", ka, kb, attackFirst, err)
				}
			case kb.IsAttack() && ka == component.Damaged:
				if err != nil || attackFirst {
					t.Fatalf("%s x %s: expected attack second, got %v %v", ka, kb, attackFirst, err)
				}
			default:
				if !errors.Is(err, ErrUnclassifiable) {
					t.Fatalf("%s x %s: expected ErrUnclassifiable, got %v", ka, kb, err)
				}
			}
		}
	}
}

func TestJudgeStrictPanicsOnUnclassifiablePair(t *testing.T) {
	contact := Contact{
		A: Body{Entity: 1, Volume: volume(component.Blow, nil)},
		B: Body{Entity: 2, Volume: volume(component.Blow, nil)},
	}

	t.Run("strict", func(t *testing.T) {
		w := ecs.NewWorld()
		w.Events().Push(ecs.Event{Type: EventHitContact, Data: contact})
		defer func() {
			if recover() == nil {
				t.Fatalf("expected panic in strict mode")
			}
		}()
		NewDamageJudgeSystem(nil, true).Update(w)
	})

	t.Run("lenient", func(t *testing.T) {
		w := ecs.NewWorld()
		w.Events().Push(ecs.Event{Type: EventHitContact, Data: contact})
		NewDamageJudgeSystem(nil, false).Update(w)
		if w.Events().Len() != 0 {
			t.Fatalf("expected contact to be drained")
		}
	})
}
