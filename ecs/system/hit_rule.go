package system

import (
	"github.com/milk9111/fightcore/ecs"
	"github.com/milk9111/fightcore/ecs/component"
)

// Hit is a classified contact: Attack belongs to Attacker and Damage to
// Victim. Air is set when the victim is airborne. Traded is set when the
// victim throws the attacker in the same tick.
type Hit struct {
	Attacker ecs.Entity
	Victim   ecs.Entity
	Attack   component.Volume
	Damage   component.Volume
	Air      bool
	Traded   bool
}

// Cancellation retracts Owner's attribution from Target's HitInfo.
type Cancellation struct {
	Target ecs.Entity
	Owner  uint64
}

// HitRule turns a hit into HitInfo updates. AttackUpdate writes the
// attacker's record and DamageUpdate the victim's. Returned cancellations
// are applied before the next hit is processed.
type HitRule interface {
	AttackUpdate(info *component.HitInfo, hit Hit) []Cancellation
	DamageUpdate(info *component.HitInfo, hit Hit) []Cancellation
}

// StandardHitRule is the default rule. Blows and projectiles freeze both
// sides for the hit level's hitstop and knock the victim back for the
// ground or air effect's frames. Throws only attribute, and two throws
// traded in one tick cancel each other.
type StandardHitRule struct{}

func (StandardHitRule) AttackUpdate(info *component.HitInfo, hit Hit) []Cancellation {
	info.DamagedOwners = append(info.DamagedOwners, uint64(hit.Victim))
	if hit.Attack.Type.HasID() {
		info.Hitstop = component.Frames(hit.Attack.Type.Attack.Level.Hitstop())
	}
	if hit.Traded {
		return []Cancellation{
			{Target: hit.Attacker, Owner: uint64(hit.Victim)},
			{Target: hit.Victim, Owner: uint64(hit.Attacker)},
		}
	}
	return nil
}

func (StandardHitRule) DamageUpdate(info *component.HitInfo, hit Hit) []Cancellation {
	info.AttackOwner = uint64(hit.Attacker)
	if !hit.Attack.Type.HasID() {
		return nil
	}
	atk := hit.Attack.Type.Attack
	effect := atk.Ground
	if hit.Air {
		effect = atk.Air
	}
	info.Hitstop = component.Frames(atk.Level.Hitstop())
	info.Knockback = component.Frames(effect.Frame)
	if hit.Attack.ID != nil {
		info.DamageCollisionIDs = append(info.DamageCollisionIDs, *hit.Attack.ID)
	}
	return nil
}
