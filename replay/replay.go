// Package replay records and reads back per-tick raw inputs so a fight can
// be re-simulated and checked against its recorded state checksums.
package replay

import (
	"errors"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/milk9111/fightcore/input"
)

const Version = 1

var (
	ErrVersion   = errors.New("replay: unsupported version")
	ErrNoHeader  = errors.New("replay: header not read")
	ErrTickOrder = errors.New("replay: ticks out of order")
)

// Header opens every replay stream. Config is the YAML the fight ran with.
type Header struct {
	Version  int      `msgpack:"version"`
	TickRate int      `msgpack:"tick_rate"`
	Tags     []string `msgpack:"tags"`
	Config   []byte   `msgpack:"config,omitempty"`
}

// Frame is one tick of input plus the state checksum taken after it ran.
type Frame struct {
	Tick     uint64                    `msgpack:"tick"`
	Inputs   map[string]input.RawState `msgpack:"inputs"`
	Checksum []byte                    `msgpack:"checksum,omitempty"`
}

type Writer struct {
	enc    *msgpack.Encoder
	wrote  bool
	next   uint64
	frames int
}

func NewWriter(w io.Writer) *Writer {
	enc := msgpack.NewEncoder(w)
	enc.SetSortMapKeys(true)
	return &Writer{enc: enc}
}

// WriteHeader must be called once before any frame.
func (w *Writer) WriteHeader(h Header) error {
	if w.wrote {
		return errors.New("replay: header already written")
	}
	if h.Version == 0 {
		h.Version = Version
	}
	if err := w.enc.Encode(&h); err != nil {
		return fmt.Errorf("replay: write header: %w", err)
	}
	w.wrote = true
	return nil
}

// WriteFrame appends one tick. Ticks must be written in increasing order.
func (w *Writer) WriteFrame(f Frame) error {
	if !w.wrote {
		return ErrNoHeader
	}
	if w.frames > 0 && f.Tick < w.next {
		return fmt.Errorf("%w: %d after %d", ErrTickOrder, f.Tick, w.next-1)
	}
	if err := w.enc.Encode(&f); err != nil {
		return fmt.Errorf("replay: write tick %d: %w", f.Tick, err)
	}
	w.next = f.Tick + 1
	w.frames++
	return nil
}

func (w *Writer) Frames() int {
	return w.frames
}

type Reader struct {
	dec    *msgpack.Decoder
	header *Header
}

func NewReader(r io.Reader) *Reader {
	return &Reader{dec: msgpack.NewDecoder(r)}
}

func (r *Reader) Header() (Header, error) {
	if r.header != nil {
		return *r.header, nil
	}
	var h Header
	if err := r.dec.Decode(&h); err != nil {
		return Header{}, fmt.Errorf("replay: read header: %w", err)
	}
	if h.Version != Version {
		return Header{}, fmt.Errorf("%w: %d", ErrVersion, h.Version)
	}
	r.header = &h
	return h, nil
}

// Next returns the next frame, or io.EOF once the stream is exhausted.
func (r *Reader) Next() (Frame, error) {
	if r.header == nil {
		if _, err := r.Header(); err != nil {
			return Frame{}, err
		}
	}
	var f Frame
	if err := r.dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return Frame{}, io.EOF
		}
		return Frame{}, fmt.Errorf("replay: read frame: %w", err)
	}
	return f, nil
}
