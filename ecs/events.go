package ecs

// EventType identifies what an event carries.
type EventType string

// Event is a message produced by one stage for a later stage of the same tick.
type Event struct {
	Type   EventType
	Entity Entity
	Data   any
}

// EventQueue holds this tick's events in push order. Anything not drained
// by the end of the tick is discarded.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain removes and returns every event of type t, keeping push order.
func (q *EventQueue) Drain(t EventType) []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	var out []Event
	kept := q.items[:0]
	for _, evt := range q.items {
		if evt.Type == t {
			out = append(out, evt)
			continue
		}
		kept = append(kept, evt)
	}
	clear(q.items[len(kept):])
	q.items = kept
	return out
}

// Len reports the number of pending events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
