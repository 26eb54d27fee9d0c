package ecs

import "github.com/milk9111/fightcore/ecs/component"

// Query returns live entities that have every listed component, in
// ascending slot order. The result is a fresh slice, so callers may add or
// remove components while ranging over it.
func Query(w *World, ids ...component.ComponentID) []Entity {
	if w == nil || len(ids) == 0 {
		return nil
	}
	sets := make([]*SparseSet, len(ids))
	for i, id := range ids {
		s := w.store(id, false)
		if s.Len() == 0 {
			return nil
		}
		sets[i] = s
	}

	base := sets[0]
	for _, s := range sets[1:] {
		if s.Len() < base.Len() {
			base = s
		}
	}

	out := make([]Entity, 0, base.Len())
	for _, e := range base.Entities() {
		if !w.entities.isAlive(e) {
			continue
		}
		matched := true
		for _, s := range sets {
			if s != base && !s.Has(e) {
				matched = false
				break
			}
		}
		if matched {
			out = append(out, e)
		}
	}
	return out
}
