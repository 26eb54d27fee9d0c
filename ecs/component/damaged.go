package component

import "slices"

// DamagedSet records the swings that already hit this entity during the
// current knockback. It is cleared when knockback ends.
type DamagedSet struct {
	ids []DamageCollisionID
}

var DamagedComponent = NewComponent[DamagedSet]()

// Add inserts id, keeping the set ordered. It reports whether id was new.
func (d *DamagedSet) Add(id DamageCollisionID) bool {
	i, found := slices.BinarySearchFunc(d.ids, id, DamageCollisionID.Compare)
	if found {
		return false
	}
	d.ids = slices.Insert(d.ids, i, id)
	return true
}

// Contains is safe on a nil receiver, which holds nothing.
func (d *DamagedSet) Contains(id DamageCollisionID) bool {
	if d == nil {
		return false
	}
	_, found := slices.BinarySearchFunc(d.ids, id, DamageCollisionID.Compare)
	return found
}

func (d *DamagedSet) Clear() {
	d.ids = nil
}

func (d *DamagedSet) Len() int {
	if d == nil {
		return 0
	}
	return len(d.ids)
}

// IDs returns a copy of the recorded ids in order.
func (d *DamagedSet) IDs() []DamageCollisionID {
	if d == nil {
		return nil
	}
	return slices.Clone(d.ids)
}
