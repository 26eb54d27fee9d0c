package component

import (
	"cmp"
	"fmt"
)

// AnimationKey identifies a clip: the animation file, the pack inside it
// and the animation inside the pack.
type AnimationKey struct {
	File string
	Pack string
	Anim string
}

func (k AnimationKey) String() string {
	return fmt.Sprintf("%s/%s/%s", k.File, k.Pack, k.Anim)
}

func (k AnimationKey) IsZero() bool {
	return k == AnimationKey{}
}

// Compare orders keys by file, then pack, then animation.
func (k AnimationKey) Compare(o AnimationKey) int {
	if c := cmp.Compare(k.File, o.File); c != 0 {
		return c
	}
	if c := cmp.Compare(k.Pack, o.Pack); c != 0 {
		return c
	}
	return cmp.Compare(k.Anim, o.Anim)
}

// AnimationState is the clip an entity is currently playing.
type AnimationState struct {
	Key      AnimationKey
	Finished bool
}

var AnimationStateComponent = NewComponent[AnimationState]()

// AnimationClock is the playback clock of an entity's animation.
// A frozen clock does not advance until FreezeLeft runs out. A rewound
// clock shows frame zero on its next tick. Stepped reports that the last
// Advance played, either moving from Previous to Current or showing a
// rewound frame zero.
type AnimationClock struct {
	Current    float64
	Previous   float64
	Frozen     bool
	FreezeLeft float64
	Rewound    bool
	Stepped    bool
}

var AnimationClockComponent = NewComponent[AnimationClock]()

// Playing reports whether the clock advances this tick.
func (c *AnimationClock) Playing() bool {
	return c != nil && !c.Frozen
}

// Freeze stops the clock for the given duration, replacing any freeze
// already in progress.
func (c *AnimationClock) Freeze(seconds float64) {
	if c == nil || seconds <= 0 {
		return
	}
	c.Frozen = true
	c.FreezeLeft = seconds
}

// Restart rewinds the clock to the start of a clip. A running freeze is kept.
func (c *AnimationClock) Restart() {
	if c == nil {
		return
	}
	c.Current = 0
	c.Previous = 0
	c.Rewound = true
}

// Advance moves the clock forward by dt, or burns down the freeze.
func (c *AnimationClock) Advance(dt float64) {
	if c == nil {
		return
	}
	c.Stepped = false
	if c.Frozen {
		c.FreezeLeft -= dt
		if c.FreezeLeft <= freezeEpsilon {
			c.Frozen = false
			c.FreezeLeft = 0
		}
		return
	}
	c.Stepped = true
	if c.Rewound {
		c.Rewound = false
		return
	}
	c.Previous = c.Current
	c.Current += dt
}

// freezeEpsilon absorbs float drift so an n-frame freeze lasts exactly n ticks.
const freezeEpsilon = 1e-9
