package component

import "github.com/milk9111/fightcore/geometry"

// KeyframeTag is the user data attached to a part on the current keyframe.
type KeyframeTag struct {
	Collision *CollisionType
	Cancel    Cancel
}

// PoseNode is one part of the current pose. Parent is the index of an
// earlier node, or -1 for a root part. Instance, when set, is a nested pose
// rooted at this node.
type PoseNode struct {
	Part     int
	Parent   int
	Local    geometry.Transform
	Visible  bool
	Tag      *KeyframeTag
	Instance *Pose
}

// Pose is the evaluated animation frame for an entity.
type Pose struct {
	Key   AnimationKey
	Frame int
	Nodes []PoseNode
}

var PoseComponent = NewComponent[Pose]()

// Cancel returns the union of cancel permissions tagged on visible nodes.
func (p *Pose) Cancel() Cancel {
	if p == nil {
		return 0
	}
	var c Cancel
	for _, n := range p.Nodes {
		if n.Visible && n.Tag != nil {
			c |= n.Tag.Cancel
		}
	}
	return c
}
