package component

import (
	"cmp"
	"fmt"
)

// DamageCollisionID identifies one swing: every volume produced by the same
// use of the same attack shares it.
type DamageCollisionID struct {
	Owner uint64
	Key   AnimationKey
	Swing uint32
	Count uint64
}

// Compare orders ids by owner, file, pack, animation, swing, then count.
func (id DamageCollisionID) Compare(o DamageCollisionID) int {
	if c := cmp.Compare(id.Owner, o.Owner); c != 0 {
		return c
	}
	if c := id.Key.Compare(o.Key); c != 0 {
		return c
	}
	if c := cmp.Compare(id.Swing, o.Swing); c != 0 {
		return c
	}
	return cmp.Compare(id.Count, o.Count)
}

func (id DamageCollisionID) String() string {
	return fmt.Sprintf("%d:%s%s%sc%03di%03d", id.Owner, id.Key.File, id.Key.Pack, id.Key.Anim, id.Count, id.Swing)
}
