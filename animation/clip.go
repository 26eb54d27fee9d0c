package animation

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/fightcore/ecs/component"
	"github.com/milk9111/fightcore/geometry"
)

// FPS is the authoring rate of every clip.
const FPS = 60

var (
	ErrNoFrames     = errors.New("animation: clip has no frames")
	ErrParentOrder  = errors.New("animation: part parent must precede it")
	ErrKeyOrder     = errors.New("animation: part keys must be in frame order")
	ErrDuplicateKey = errors.New("animation: clip already registered")
	ErrUnknownClip  = errors.New("animation: unknown clip")
)

// PartKey is the state of a part from Frame until the next key. Move is
// the displacement applied to the owner on every frame the key is in
// effect, with x pointing the way the owner faces.
type PartKey struct {
	Frame     int
	Transform geometry.Transform
	Visible   bool
	Move      cp.Vector
	Tag       *component.KeyframeTag
}

// Part is one animated element. Parent is the index of an earlier part or
// -1. Instance names a clip played inside this part.
type Part struct {
	ID       int
	Parent   int
	Instance *component.AnimationKey
	Keys     []PartKey
}

// Clip is a keyframed animation.
type Clip struct {
	Key    component.AnimationKey
	Frames int
	Loop   bool
	Parts  []Part
}

// Validate checks the structural rules the pose sampler relies on.
func (c *Clip) Validate() error {
	if c.Frames <= 0 {
		return fmt.Errorf("%s: %w", c.Key, ErrNoFrames)
	}
	for i, p := range c.Parts {
		if p.Parent >= i {
			return fmt.Errorf("%s part %d: %w", c.Key, p.ID, ErrParentOrder)
		}
		if !slices.IsSortedFunc(p.Keys, func(a, b PartKey) int { return a.Frame - b.Frame }) {
			return fmt.Errorf("%s part %d: %w", c.Key, p.ID, ErrKeyOrder)
		}
	}
	return nil
}

// FrameAt converts a clip time into a frame index. Non-looping clips hold
// their last frame and report finished once it has been shown.
func (c *Clip) FrameAt(t float64) (frame int, finished bool) {
	frame = int(math.Floor(t*FPS + 1e-6))
	if frame < 0 {
		frame = 0
	}
	if c.Loop {
		return frame % c.Frames, false
	}
	if frame >= c.Frames {
		return c.Frames - 1, true
	}
	return frame, false
}

// Entered lists the frames first shown when the clock steps from prev to
// cur. The frame showing at prev was entered by an earlier step. A
// non-looping clip enters nothing past its last frame.
func (c *Clip) Entered(prev, cur float64) []int {
	from := int(math.Floor(prev*FPS+1e-6)) + 1
	to := int(math.Floor(cur*FPS + 1e-6))
	if from < 0 {
		from = 0
	}
	if !c.Loop && to >= c.Frames {
		to = c.Frames - 1
	}
	var frames []int
	for f := from; f <= to; f++ {
		if c.Loop {
			frames = append(frames, f%c.Frames)
			continue
		}
		frames = append(frames, f)
	}
	return frames
}

// MoveAt sums the move keys of the parts visible at frame.
func (c *Clip) MoveAt(frame int) cp.Vector {
	var v cp.Vector
	for i := range c.Parts {
		k, ok := c.Parts[i].keyAt(frame)
		if ok && k.Visible {
			v = v.Add(k.Move)
		}
	}
	return v
}

// keyAt returns the key in effect at frame.
func (p *Part) keyAt(frame int) (PartKey, bool) {
	i, found := slices.BinarySearchFunc(p.Keys, frame, func(k PartKey, f int) int { return k.Frame - f })
	if found {
		return p.Keys[i], true
	}
	if i == 0 {
		return PartKey{}, false
	}
	return p.Keys[i-1], true
}

// AttackRanges lists the inclusive frame ranges in which a visible part
// carries an attack volume.
func AttackRanges(c *Clip) [][2]int {
	if c == nil {
		return nil
	}
	var ranges [][2]int
	open := false
	for f := 0; f < c.Frames; f++ {
		if !attackOnFrame(c, f) {
			open = false
			continue
		}
		if open {
			ranges[len(ranges)-1][1] = f
			continue
		}
		ranges = append(ranges, [2]int{f, f})
		open = true
	}
	return ranges
}

func attackOnFrame(c *Clip, frame int) bool {
	for i := range c.Parts {
		k, ok := c.Parts[i].keyAt(frame)
		if !ok || !k.Visible || k.Tag == nil || k.Tag.Collision == nil {
			continue
		}
		if k.Tag.Collision.Kind.IsAttack() {
			return true
		}
	}
	return false
}
