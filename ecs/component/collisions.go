package component

import "github.com/jakecoffman/cp"

// Volume is one collision volume registered for this tick. Box is in stage
// coordinates. ID is set only for Blow and Projectile volumes.
type Volume struct {
	Part int
	Box  cp.BB
	Type CollisionType
	ID   *DamageCollisionID
}

// Collisions is the set of volumes an entity presents this tick.
type Collisions struct {
	Volumes []Volume
}

var CollisionsComponent = NewComponent[Collisions]()

// Reset drops every volume from the previous tick.
func (c *Collisions) Reset() {
	clear(c.Volumes)
	c.Volumes = c.Volumes[:0]
}

func (c *Collisions) Add(v Volume) {
	c.Volumes = append(c.Volumes, v)
}
