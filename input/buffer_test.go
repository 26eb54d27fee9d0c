package input

import "testing"

func frameOf(down Flag) Frame {
	return Frame{Signal: Signal{Down: down}}
}

func TestBufferEvictsOldest(t *testing.T) {
	cases := []struct {
		name     string
		capacity int
		pushes   int
	}{
		{"under_capacity", 4, 3},
		{"exact_capacity", 4, 4},
		{"wrapped_once", 4, 6},
		{"wrapped_many", 3, 11},
		{"default_size", DefaultBufferSize, DefaultBufferSize + 7},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := NewBuffer(c.capacity)
			for i := 0; i < c.pushes; i++ {
				b.Push(frameOf(Flag(i)))
			}

			want := min(c.pushes, c.capacity)
			if b.Len() != want {
				t.Fatalf("expected len %d, got %d", want, b.Len())
			}

			first := c.pushes - want
			frames := b.Frames()
			for i, f := range frames {
				if f.Signal.Down != Flag(first+i) {
					t.Fatalf("frame %d: expected %d, got %d", i, first+i, f.Signal.Down)
				}
			}

			last, ok := b.Last()
			if !ok || last.Signal.Down != Flag(c.pushes-1) {
				t.Fatalf("expected last %d, got %v ok=%v", c.pushes-1, last.Signal.Down, ok)
			}
		})
	}
}

func TestBufferIterationIsRestartable(t *testing.T) {
	b := NewBuffer(3)
	for i := 1; i <= 5; i++ {
		b.Push(frameOf(Flag(i)))
	}

	collect := func() []Flag {
		var out []Flag
		for _, f := range b.All() {
			out = append(out, f.Signal.Down)
		}
		return out
	}

	first := collect()
	second := collect()
	if len(first) != 3 || len(second) != 3 {
		t.Fatalf("expected 3 frames per pass, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("passes differ at %d: %d vs %d", i, first[i], second[i])
		}
	}

	for i, f := range b.All() {
		if i == 1 {
			break
		}
		_ = f
	}
}

func TestBufferNilAndEmpty(t *testing.T) {
	var b *Buffer
	if b.Len() != 0 || b.Capacity() != 0 {
		t.Fatalf("nil buffer should be empty")
	}
	if _, ok := b.Last(); ok {
		t.Fatalf("nil buffer should have no last frame")
	}
	b.Push(frameOf(A))

	empty := NewBuffer(0)
	if empty.Capacity() != 1 {
		t.Fatalf("expected capacity clamped to 1, got %d", empty.Capacity())
	}
	if empty.Frames() != nil {
		t.Fatalf("expected nil frames for empty buffer")
	}
}
