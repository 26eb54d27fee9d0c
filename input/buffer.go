package input

import "iter"

// DefaultBufferSize keeps two seconds of history at 60 ticks per second.
const DefaultBufferSize = 120

// Frame is one buffered tick: the sampled signal and the facing at sample time.
type Frame struct {
	Signal Signal
	Facing Direction
}

// Buffer stores the most recent frames in a fixed-size ring. Pushing into a
// full buffer evicts the oldest frame.
type Buffer struct {
	data  []Frame
	head  int
	count int
}

// NewBuffer constructs a ring with the provided capacity.
func NewBuffer(capacity int) *Buffer {
	if capacity < 1 {
		capacity = 1
	}
	return &Buffer{data: make([]Frame, capacity)}
}

// Capacity reports the maximum number of frames the buffer holds.
func (b *Buffer) Capacity() int {
	if b == nil {
		return 0
	}
	return len(b.data)
}

// Len reports the number of buffered frames.
func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}
	return b.count
}

// Push appends a frame, overwriting the oldest one when full.
func (b *Buffer) Push(f Frame) {
	if b == nil || len(b.data) == 0 {
		return
	}
	tail := (b.head + b.count) % len(b.data)
	b.data[tail] = f
	if b.count == len(b.data) {
		b.head = (b.head + 1) % len(b.data)
		return
	}
	b.count++
}

// At returns the i-th frame counted from the oldest.
func (b *Buffer) At(i int) (Frame, bool) {
	if b == nil || i < 0 || i >= b.count {
		return Frame{}, false
	}
	return b.data[(b.head+i)%len(b.data)], true
}

// Last returns the newest frame.
func (b *Buffer) Last() (Frame, bool) {
	return b.At(b.Len() - 1)
}

// All iterates frames from oldest to newest. The sequence can be ranged over
// any number of times and reflects the buffer at the time of iteration.
func (b *Buffer) All() iter.Seq2[int, Frame] {
	return func(yield func(int, Frame) bool) {
		for i := 0; i < b.Len(); i++ {
			f, _ := b.At(i)
			if !yield(i, f) {
				return
			}
		}
	}
}

// Frames copies the buffered frames, oldest first.
func (b *Buffer) Frames() []Frame {
	if b.Len() == 0 {
		return nil
	}
	out := make([]Frame, 0, b.count)
	for _, f := range b.All() {
		out = append(out, f)
	}
	return out
}

// Reset drops all frames.
func (b *Buffer) Reset() {
	if b == nil {
		return
	}
	b.head = 0
	b.count = 0
}
