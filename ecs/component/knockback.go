package component

import "math"

// KnockbackInactive is the resting value of Knockback.Remaining.
const KnockbackInactive = -math.MaxFloat32

// Knockback is the remaining reaction time in seconds. Any value <= 0
// means the entity is not in knockback.
type Knockback struct {
	Remaining float64
}

var KnockbackComponent = NewComponent[Knockback]()

func NewKnockback() Knockback {
	return Knockback{Remaining: KnockbackInactive}
}

func (k *Knockback) Active() bool {
	return k != nil && k.Remaining > 0
}

// Set starts or restarts knockback. The previous value is discarded.
func (k *Knockback) Set(seconds float64) {
	k.Remaining = seconds
}

// Decrement counts down an active knockback and reports whether it ended
// on this call.
func (k *Knockback) Decrement(dt float64) bool {
	if !k.Active() {
		return false
	}
	k.Remaining -= dt
	if k.Remaining <= knockbackEpsilon {
		k.Remaining = KnockbackInactive
		return true
	}
	return false
}

// knockbackEpsilon absorbs float drift so an n-frame knockback lasts n ticks.
const knockbackEpsilon = 1e-9
