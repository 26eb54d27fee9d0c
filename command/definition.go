package command

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

var (
	ErrEmptyDefinition = errors.New("command: definition has no steps")
	ErrEmptyStep       = errors.New("command: step has no required keys")
	ErrConflictingKeys = errors.New("command: step requires more than one direction")
	ErrBadToken        = errors.New("command: bad notation token")
	ErrBadTolerance    = errors.New("command: slack must be >= 0 and window >= 1")
	ErrUnknownCommand  = errors.New("command: unknown command")
	ErrBadSubstitute   = errors.New("command: substitutes must be directions")
)

const (
	DefaultSlack  = 8
	DefaultWindow = 8
)

// Step is one element of a command sequence. A frame satisfies the step when
// every required button is held and either the required direction is held
// or one of the substitute directions is.
type Step struct {
	Required    Key
	Substitutes Key
}

// Satisfies reports whether a frame's keys meet the step.
func (s Step) Satisfies(k Key) bool {
	buttons := s.Required & buttonKeys
	if k&buttons != buttons {
		return false
	}
	dir := s.Required & directionKeys
	if dir == 0 {
		return true
	}
	return k&dir == dir || k&s.Substitutes != 0
}

func (s Step) String() string {
	if s.Substitutes == 0 {
		return s.Required.String()
	}
	return s.Required.String() + "/" + strings.ReplaceAll(s.Substitutes.String(), "+", "/")
}

// Definition is an ordered key sequence with its timing tolerance.
// Slack is the number of unrelated frames tolerated between two steps;
// Window is how many of the newest frames the final step may land in.
type Definition struct {
	Steps  []Step
	Slack  int
	Window int
}

// Validate rejects definitions that could never be matched meaningfully.
func (d Definition) Validate() error {
	if len(d.Steps) == 0 {
		return ErrEmptyDefinition
	}
	if d.Slack < 0 || d.Window < 1 {
		return fmt.Errorf("%w: slack=%d window=%d", ErrBadTolerance, d.Slack, d.Window)
	}
	for i, s := range d.Steps {
		if s.Required == 0 {
			return fmt.Errorf("%w: step %d", ErrEmptyStep, i)
		}
		if bits.OnesCount32(uint32(s.Required&directionKeys)) > 1 {
			return fmt.Errorf("%w: step %d (%s)", ErrConflictingKeys, i, s.Required)
		}
		if s.Substitutes&^directionKeys != 0 {
			return fmt.Errorf("%w: step %d", ErrBadSubstitute, i)
		}
	}
	return nil
}

// Match reports whether the sequence appears in keys (oldest first) and
// completes within the newest Window frames. Each candidate start frame is
// tried in order; from there every following step takes the earliest frame
// that satisfies it. Frames that still satisfy the previous step are holds
// and do not count against Slack.
func (d Definition) Match(keys []Key) bool {
	n := len(keys)
	if len(d.Steps) == 0 || n == 0 {
		return false
	}
	for start := 0; start < n; start++ {
		if !d.Steps[0].Satisfies(keys[start]) {
			continue
		}
		end, ok := d.align(keys, start)
		if !ok {
			continue
		}
		if end >= n-d.Window {
			return true
		}
	}
	return false
}

func (d Definition) align(keys []Key, start int) (int, bool) {
	cursor := start
	for i := 1; i < len(d.Steps); i++ {
		next := -1
		gap := 0
		for f := cursor + 1; f < len(keys); f++ {
			if d.Steps[i].Satisfies(keys[f]) {
				next = f
				break
			}
			if d.Steps[i-1].Satisfies(keys[f]) {
				continue
			}
			gap++
			if gap > d.Slack {
				break
			}
		}
		if next < 0 {
			return 0, false
		}
		cursor = next
	}
	return cursor, true
}

func (d Definition) String() string {
	parts := make([]string, len(d.Steps))
	for i, s := range d.Steps {
		parts[i] = s.String()
	}
	return strings.Join(parts, ",")
}
