package animation

import (
	"fmt"
	"slices"

	"github.com/milk9111/fightcore/ecs/component"
)

// maxInstanceDepth bounds nested instance parts.
const maxInstanceDepth = 4

// Library holds every clip known to the simulation. It is read-only during
// a tick.
type Library struct {
	clips map[component.AnimationKey]*Clip
}

func NewLibrary() *Library {
	return &Library{clips: map[component.AnimationKey]*Clip{}}
}

// Add validates and registers a clip.
func (l *Library) Add(c *Clip) error {
	if c == nil {
		return fmt.Errorf("animation: nil clip")
	}
	if err := c.Validate(); err != nil {
		return err
	}
	if _, ok := l.clips[c.Key]; ok {
		return fmt.Errorf("%s: %w", c.Key, ErrDuplicateKey)
	}
	l.clips[c.Key] = c
	return nil
}

func (l *Library) Clip(key component.AnimationKey) (*Clip, bool) {
	if l == nil {
		return nil, false
	}
	c, ok := l.clips[key]
	return c, ok
}

// Keys lists registered clips in key order.
func (l *Library) Keys() []component.AnimationKey {
	if l == nil {
		return nil
	}
	keys := make([]component.AnimationKey, 0, len(l.clips))
	for k := range l.clips {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, component.AnimationKey.Compare)
	return keys
}

// Pose samples a clip at time t. Instance parts are sampled at the same
// time. finished reports that a non-looping clip has played out.
func (l *Library) Pose(key component.AnimationKey, t float64) (pose component.Pose, finished bool, err error) {
	return l.pose(key, t, 0)
}

func (l *Library) pose(key component.AnimationKey, t float64, depth int) (component.Pose, bool, error) {
	c, ok := l.Clip(key)
	if !ok {
		return component.Pose{}, false, fmt.Errorf("%s: %w", key, ErrUnknownClip)
	}
	frame, finished := c.FrameAt(t)
	pose := component.Pose{Key: key, Frame: frame, Nodes: make([]component.PoseNode, 0, len(c.Parts))}
	for i := range c.Parts {
		p := &c.Parts[i]
		k, ok := p.keyAt(frame)
		node := component.PoseNode{
			Part:    p.ID,
			Parent:  p.Parent,
			Local:   k.Transform,
			Visible: ok && k.Visible,
			Tag:     k.Tag,
		}
		if p.Instance != nil && node.Visible && depth < maxInstanceDepth {
			inner, _, err := l.pose(*p.Instance, t, depth+1)
			if err != nil {
				return component.Pose{}, false, err
			}
			node.Instance = &inner
		}
		pose.Nodes = append(pose.Nodes, node)
	}
	return pose, finished, nil
}
