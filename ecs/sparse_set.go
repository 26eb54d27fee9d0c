package ecs

import "slices"

// SparseSet stores one component value per entity, indexed by slot.
// Values are kept as `any` so a single world can hold every component type.
type SparseSet struct {
	dense  []Entity
	values []any
	sparse []int
	sorted bool
}

// Has reports whether e (including its generation) has a value in the set.
func (s *SparseSet) Has(e Entity) bool {
	_, ok := s.index(e)
	return ok
}

func (s *SparseSet) index(e Entity) (int, bool) {
	if s == nil || !e.Valid() {
		return -1, false
	}
	slot := int(e.id()) - 1
	if slot >= len(s.sparse) {
		return -1, false
	}
	idx := s.sparse[slot]
	if idx < 0 || idx >= len(s.dense) || s.dense[idx] != e {
		return -1, false
	}
	return idx, true
}

// Get returns the value for e, or nil.
func (s *SparseSet) Get(e Entity) any {
	idx, ok := s.index(e)
	if !ok {
		return nil
	}
	return s.values[idx]
}

// Set inserts or replaces the value for e.
func (s *SparseSet) Set(e Entity, v any) {
	if s == nil || !e.Valid() {
		return
	}
	if idx, ok := s.index(e); ok {
		s.values[idx] = v
		return
	}
	slot := int(e.id()) - 1
	for len(s.sparse) <= slot {
		s.sparse = append(s.sparse, -1)
	}
	if old := s.sparse[slot]; old >= 0 && old < len(s.dense) && s.dense[old].id() == e.id() {
		// a stale generation still occupies the slot
		s.removeAt(old)
	}
	s.dense = append(s.dense, e)
	s.values = append(s.values, v)
	s.sparse[slot] = len(s.dense) - 1
	s.sorted = false
}

// Remove deletes the value for e. It reports whether anything was removed.
func (s *SparseSet) Remove(e Entity) bool {
	idx, ok := s.index(e)
	if !ok {
		return false
	}
	s.removeAt(idx)
	return true
}

func (s *SparseSet) removeAt(idx int) {
	last := len(s.dense) - 1
	gone := s.dense[idx]
	moved := s.dense[last]

	s.dense[idx] = moved
	s.values[idx] = s.values[last]
	s.sparse[int(moved.id())-1] = idx

	s.dense = s.dense[:last]
	s.values = s.values[:last]
	s.sparse[int(gone.id())-1] = -1
	s.sorted = false
}

// Len reports the number of stored values.
func (s *SparseSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.dense)
}

// Entities returns the stored entities in ascending slot order. The slice
// is owned by the set and is only valid until the next mutation.
func (s *SparseSet) Entities() []Entity {
	if s == nil {
		return nil
	}
	s.sort()
	return s.dense
}

// sort orders dense storage by slot so iteration does not depend on the
// history of insertions and removals.
func (s *SparseSet) sort() {
	if s.sorted {
		return
	}
	order := make([]int, len(s.dense))
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(a, b int) int {
		return int(s.dense[a].id()) - int(s.dense[b].id())
	})
	dense := make([]Entity, len(s.dense))
	values := make([]any, len(s.values))
	for i, from := range order {
		dense[i] = s.dense[from]
		values[i] = s.values[from]
		s.sparse[int(dense[i].id())-1] = i
	}
	s.dense = dense
	s.values = values
	s.sorted = true
}
