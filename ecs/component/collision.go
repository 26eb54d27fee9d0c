package component

import "fmt"

// CollisionKind is the role a volume plays in a contact.
type CollisionKind uint8

const (
	Extrusion CollisionKind = iota + 1
	Blow
	Projectile
	Throw
	Damaged
)

var collisionKindNames = map[CollisionKind]string{
	Extrusion:  "extrusion",
	Blow:       "blow",
	Projectile: "projectile",
	Throw:      "throw",
	Damaged:    "damaged",
}

func (k CollisionKind) String() string {
	if name, ok := collisionKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("collision(%d)", uint8(k))
}

// ParseCollisionKind resolves a kind name as written in data files.
func ParseCollisionKind(name string) (CollisionKind, error) {
	for k, n := range collisionKindNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("component: unknown collision kind %q", name)
}

// IsAttack reports whether volumes of this kind can hit a Damaged volume.
func (k CollisionKind) IsAttack() bool {
	return k == Blow || k == Projectile || k == Throw
}

// HitTier is one of the fixed hitstop levels.
type HitTier uint8

const (
	Level1 HitTier = iota + 1
	Level2
	Level3
	Level4
	CustomLevel
)

var hitstopFrames = map[HitTier]int{
	Level1: 11,
	Level2: 15,
	Level3: 19,
	Level4: 23,
}

// HitLevel selects the hitstop of an attack. Custom levels carry their own
// frame count.
type HitLevel struct {
	Tier   HitTier
	Level  int
	Frames int
}

// Hitstop returns the freeze length in frames.
func (h HitLevel) Hitstop() int {
	if h.Tier == CustomLevel {
		return h.Frames
	}
	return hitstopFrames[h.Tier]
}

func (h HitLevel) String() string {
	if h.Tier == CustomLevel {
		return fmt.Sprintf("custom(%d,%d)", h.Level, h.Frames)
	}
	return fmt.Sprintf("level%d", h.Tier)
}

// HitEffect is how the victim reacts; Frame is the knockback length.
type HitEffect struct {
	Frame    int
	Reaction string
}

// Attack is the payload of Blow and Projectile volumes.
type Attack struct {
	Damage int
	Ground HitEffect
	Air    HitEffect
	Level  HitLevel
	Swing  uint32
}

// CollisionType is a tagged variant. Attack is only meaningful for Blow and
// Projectile.
type CollisionType struct {
	Kind   CollisionKind
	Attack Attack
}

func (c CollisionType) String() string {
	switch c.Kind {
	case Blow, Projectile:
		return fmt.Sprintf("%s{damage:%d %s swing:%d}", c.Kind, c.Attack.Damage, c.Attack.Level, c.Attack.Swing)
	}
	return c.Kind.String()
}

// HasID reports whether volumes of this type carry a DamageCollisionID.
func (c CollisionType) HasID() bool {
	return c.Kind == Blow || c.Kind == Projectile
}
