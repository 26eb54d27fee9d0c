package component

import "slices"

// FrameCount is an optional number of frames.
type FrameCount struct {
	Frames int
	Set    bool
}

func Frames(n int) FrameCount {
	return FrameCount{Frames: n, Set: true}
}

// HitInfo collects what happened to an entity during this tick's contact
// processing. It is consumed and reset once per tick.
type HitInfo struct {
	DamagedOwners      []uint64
	AttackOwner        uint64
	DamageCollisionIDs []DamageCollisionID
	Hitstop            FrameCount
	Knockback          FrameCount
}

var HitInfoComponent = NewComponent[HitInfo]()

// IsDefault reports whether nothing was recorded.
func (h *HitInfo) IsDefault() bool {
	return h == nil || (len(h.DamagedOwners) == 0 &&
		h.AttackOwner == 0 &&
		len(h.DamageCollisionIDs) == 0 &&
		!h.Hitstop.Set &&
		!h.Knockback.Set)
}

// Reset returns the record to its empty default.
func (h *HitInfo) Reset() {
	*h = HitInfo{}
}

// Cancel retracts attributions involving owner: it clears AttackOwner when
// it is owner and removes owner from DamagedOwners.
func (h *HitInfo) Cancel(owner uint64) {
	if h == nil {
		return
	}
	if h.AttackOwner == owner {
		h.AttackOwner = 0
	}
	h.DamagedOwners = slices.DeleteFunc(h.DamagedOwners, func(o uint64) bool { return o == owner })
}
