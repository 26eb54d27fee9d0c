package sim

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/fightcore/config"
	"github.com/milk9111/fightcore/input"
	"github.com/milk9111/fightcore/replay"
)

var ErrDesync = errors.New("sim: replay desync")

// Recorder writes every stepped tick of a Sim to a replay stream along
// with the checksum taken after the tick.
type Recorder struct {
	sim *Sim
	w   *replay.Writer
}

func NewRecorder(s *Sim, w io.Writer) (*Recorder, error) {
	cfgData, err := yaml.Marshal(s.cfg)
	if err != nil {
		return nil, fmt.Errorf("sim: encode config: %w", err)
	}
	rw := replay.NewWriter(w)
	err = rw.WriteHeader(replay.Header{
		TickRate: s.cfg.TickRate,
		Tags:     s.Tags(),
		Config:   cfgData,
	})
	if err != nil {
		return nil, err
	}
	return &Recorder{sim: s, w: rw}, nil
}

// Step runs one tick on the recorded Sim and appends it to the stream.
func (r *Recorder) Step(raw map[string]input.RawState) error {
	tick := r.sim.Tick()
	r.sim.Step(raw)
	sum, err := r.sim.Checksum()
	if err != nil {
		return err
	}
	return r.w.WriteFrame(replay.Frame{Tick: tick, Inputs: raw, Checksum: sum})
}

// Replay re-simulates a recorded stream and returns the checksum of every
// tick. A tick whose checksum differs from the recorded one stops the run
// with ErrDesync.
func Replay(r io.Reader) ([][]byte, error) {
	rd := replay.NewReader(r)
	h, err := rd.Header()
	if err != nil {
		return nil, err
	}
	cfg := config.Default()
	if len(h.Config) > 0 {
		if cfg, err = config.Parse(h.Config); err != nil {
			return nil, fmt.Errorf("sim: replay config: %w", err)
		}
	}
	s, err := New(cfg)
	if err != nil {
		return nil, err
	}

	var sums [][]byte
	for {
		f, err := rd.Next()
		if errors.Is(err, io.EOF) {
			return sums, nil
		}
		if err != nil {
			return sums, err
		}
		if f.Tick != s.Tick() {
			return sums, fmt.Errorf("%w: frame for tick %d at tick %d", ErrDesync, f.Tick, s.Tick())
		}
		s.Step(f.Inputs)
		sum, err := s.Checksum()
		if err != nil {
			return sums, err
		}
		if len(f.Checksum) > 0 && !bytes.Equal(f.Checksum, sum) {
			return sums, fmt.Errorf("%w: tick %d", ErrDesync, f.Tick)
		}
		sums = append(sums, sum)
	}
}
