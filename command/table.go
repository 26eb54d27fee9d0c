package command

import (
	"fmt"
	"slices"
	"strings"

	"github.com/milk9111/fightcore/input"
)

// FacingPolicy selects which facing converts buffered frames into keys.
type FacingPolicy uint8

const (
	// FacingAtInput uses the facing recorded with each frame.
	FacingAtInput FacingPolicy = iota
	// FacingAtParse uses the entity's facing at match time for every frame.
	FacingAtParse
)

// ParseFacingPolicy accepts "input" or "parse". Empty means input.
func ParseFacingPolicy(s string) (FacingPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "input":
		return FacingAtInput, nil
	case "parse":
		return FacingAtParse, nil
	}
	return FacingAtInput, fmt.Errorf("command: unknown facing policy %q", s)
}

type entry struct {
	id   ID
	defs []Definition
}

// Table maps command ids to their definitions. It is read-only once built
// and may be shared between entities.
type Table struct {
	name    string
	entries []entry
}

// NewTable creates an empty table.
func NewTable(name string) *Table {
	return &Table{name: name}
}

// Name identifies the table, usually the file it was loaded from.
func (t *Table) Name() string {
	if t == nil {
		return ""
	}
	return t.name
}

// Add validates def and registers it under id. Invalid definitions are
// rejected and leave the table unchanged.
func (t *Table) Add(id ID, def Definition) error {
	if t == nil {
		return fmt.Errorf("command: nil table")
	}
	if err := def.Validate(); err != nil {
		return fmt.Errorf("%s %s: %w", t.name, id, err)
	}
	i, found := slices.BinarySearchFunc(t.entries, id, func(e entry, id ID) int {
		return int(e.id) - int(id)
	})
	if found {
		t.entries[i].defs = append(t.entries[i].defs, def)
		return nil
	}
	t.entries = slices.Insert(t.entries, i, entry{id: id, defs: []Definition{def}})
	return nil
}

// Definitions returns the definitions registered for id.
func (t *Table) Definitions(id ID) []Definition {
	if t == nil {
		return nil
	}
	for _, e := range t.entries {
		if e.id == id {
			return e.defs
		}
	}
	return nil
}

// IDs lists the registered commands in ascending order.
func (t *Table) IDs() []ID {
	if t == nil {
		return nil
	}
	ids := make([]ID, len(t.entries))
	for i, e := range t.entries {
		ids[i] = e.id
	}
	return ids
}

// Keys converts frames into keys under the given policy.
func Keys(frames []input.Frame, current input.Direction, policy FacingPolicy) []Key {
	keys := make([]Key, len(frames))
	for i, f := range frames {
		facing := f.Facing
		if policy == FacingAtParse {
			facing = current
		}
		keys[i] = KeyOf(f.Signal.Down, facing)
	}
	return keys
}

// Match returns every command with at least one matching definition, in
// ascending id order. Each command appears at most once.
func (t *Table) Match(keys []Key) []ID {
	if t == nil || len(keys) == 0 {
		return nil
	}
	var out []ID
	for _, e := range t.entries {
		for _, def := range e.defs {
			if def.Match(keys) {
				out = append(out, e.id)
				break
			}
		}
	}
	return out
}
