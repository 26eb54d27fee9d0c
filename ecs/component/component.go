// Package component holds the per-entity records of a fight: input and
// command state, animation playback, collision volumes and hit results.
// Each record type is registered once at package init:
//
//	var KnockbackComponent = NewComponent[Knockback]()
package component

import (
	"errors"
	"fmt"
	"sync/atomic"
)

var (
	ErrEntityNotAlive       = errors.New("component: entity not alive")
	ErrNilComponent         = errors.New("component: nil record")
	ErrInvalidComponentKind = errors.New("component: unregistered record type")
)

// ComponentID indexes a record type's storage in a world. Zero is never
// assigned.
type ComponentID uint32

var lastID atomic.Uint32

// ComponentKind is the typed key the ecs accessors take. The zero kind is
// unregistered.
type ComponentKind[T any] struct {
	id   ComponentID
	name string
}

func (k ComponentKind[T]) ID() ComponentID { return k.id }

func (k ComponentKind[T]) Valid() bool { return k.id != 0 }

// String names the record type, for errors and logs.
func (k ComponentKind[T]) String() string {
	if k.name == "" {
		return "unregistered"
	}
	return k.name
}

// ComponentHandle is what a record file exports for its type.
type ComponentHandle[T any] struct {
	kind ComponentKind[T]
}

// NewComponent registers T as a record type.
func NewComponent[T any]() ComponentHandle[T] {
	var zero T
	return ComponentHandle[T]{kind: ComponentKind[T]{
		id:   ComponentID(lastID.Add(1)),
		name: fmt.Sprintf("%T", zero),
	}}
}

func (h ComponentHandle[T]) Kind() ComponentKind[T] { return h.kind }
