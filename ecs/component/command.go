package component

import (
	"slices"

	"github.com/milk9111/fightcore/command"
)

// ActiveCommand is the set of commands recognized this tick. It is
// rebuilt from scratch every tick.
type ActiveCommand struct {
	Commands []command.ID
}

var ActiveCommandComponent = NewComponent[ActiveCommand]()

// Add inserts id, keeping the set sorted and free of duplicates.
func (a *ActiveCommand) Add(id command.ID) {
	i, found := slices.BinarySearch(a.Commands, id)
	if found {
		return
	}
	a.Commands = slices.Insert(a.Commands, i, id)
}

func (a *ActiveCommand) Has(id command.ID) bool {
	_, found := slices.BinarySearch(a.Commands, id)
	return found
}

// Clear empties the set, keeping its storage.
func (a *ActiveCommand) Clear() {
	a.Commands = a.Commands[:0]
}

// Descending returns the commands from highest to lowest rank.
func (a *ActiveCommand) Descending() []command.ID {
	out := slices.Clone(a.Commands)
	slices.Reverse(out)
	return out
}

// CommandTable points an entity at the command definitions of its class.
type CommandTable struct {
	Table *command.Table
}

var CommandTableComponent = NewComponent[CommandTable]()
