package component

import (
	"slices"
	"testing"

	"github.com/milk9111/fightcore/command"
)

func swing(owner uint64, anim string, swingIdx uint32, count uint64) DamageCollisionID {
	return DamageCollisionID{
		Owner: owner,
		Key:   AnimationKey{File: "fighter", Pack: "body", Anim: anim},
		Swing: swingIdx,
		Count: count,
	}
}

func TestDamageCollisionIDOrder(t *testing.T) {
	ordered := []DamageCollisionID{
		swing(1, "jab", 0, 0),
		swing(1, "jab", 0, 1),
		swing(1, "jab", 1, 0),
		swing(1, "kick", 0, 0),
		swing(2, "jab", 0, 0),
	}
	for i := 0; i+1 < len(ordered); i++ {
		if ordered[i].Compare(ordered[i+1]) >= 0 {
			t.Fatalf("expected %s < %s", ordered[i], ordered[i+1])
		}
		if ordered[i+1].Compare(ordered[i]) <= 0 {
			t.Fatalf("expected %s > %s", ordered[i+1], ordered[i])
		}
	}
	if ordered[0].Compare(swing(1, "jab", 0, 0)) != 0 {
		t.Fatalf("equal ids must compare equal")
	}
	if got := swing(3, "jab", 2, 7).String(); got != "3:fighterbodyjabc007i002" {
		t.Fatalf("unexpected debug form %q", got)
	}
}

func TestDamagedSet(t *testing.T) {
	var d DamagedSet
	ids := []DamageCollisionID{swing(2, "jab", 0, 0), swing(1, "kick", 0, 0), swing(1, "jab", 0, 0)}
	for _, id := range ids {
		if !d.Add(id) {
			t.Fatalf("expected %s to be new", id)
		}
	}
	if d.Add(ids[0]) {
		t.Fatalf("duplicate add must report false")
	}
	if d.Len() != 3 {
		t.Fatalf("expected 3 ids, got %d", d.Len())
	}
	got := d.IDs()
	if !slices.IsSortedFunc(got, DamageCollisionID.Compare) {
		t.Fatalf("ids should be kept in order: %v", got)
	}
	for _, id := range ids {
		if !d.Contains(id) {
			t.Fatalf("expected %s to be present", id)
		}
	}

	d.Clear()
	if d.Len() != 0 || d.Contains(ids[0]) {
		t.Fatalf("expected empty set after clear")
	}

	var missing *DamagedSet
	if missing.Contains(ids[0]) {
		t.Fatalf("a missing set holds nothing")
	}
}

func TestHitInfoCancelAndReset(t *testing.T) {
	h := HitInfo{
		DamagedOwners:      []uint64{3, 4, 3},
		AttackOwner:        4,
		DamageCollisionIDs: []DamageCollisionID{swing(4, "jab", 0, 0)},
		Hitstop:            Frames(15),
	}
	if h.IsDefault() {
		t.Fatalf("populated hit info is not default")
	}

	h.Cancel(3)
	if slices.Contains(h.DamagedOwners, 3) || len(h.DamagedOwners) != 1 {
		t.Fatalf("expected 3 removed from damaged owners, got %v", h.DamagedOwners)
	}
	if h.AttackOwner != 4 {
		t.Fatalf("attack owner should be untouched by cancelling another entity")
	}

	h.Cancel(4)
	if h.AttackOwner != 0 || len(h.DamagedOwners) != 0 {
		t.Fatalf("expected owner 4 fully retracted, got %+v", h)
	}
	if !h.Hitstop.Set || len(h.DamageCollisionIDs) != 1 {
		t.Fatalf("cancel only retracts attribution")
	}

	h.Reset()
	if !h.IsDefault() {
		t.Fatalf("expected default after reset, got %+v", h)
	}
}

func TestKnockback(t *testing.T) {
	k := NewKnockback()
	if k.Active() {
		t.Fatalf("new knockback must be inactive")
	}
	if k.Decrement(1.0 / 60) {
		t.Fatalf("inactive knockback cannot end")
	}

	k.Set(3.0 / 60)
	k.Set(2.0 / 60)
	ended := 0
	ticks := 0
	for k.Active() {
		ticks++
		if k.Decrement(1.0 / 60) {
			ended++
		}
	}
	if ticks != 2 || ended != 1 {
		t.Fatalf("expected last write to win with 2 ticks and one end, got ticks=%d ended=%d", ticks, ended)
	}
}

func TestAnimationClockFreeze(t *testing.T) {
	const dt = 1.0 / 60
	var c AnimationClock
	c.Advance(dt)
	c.Freeze(15 * dt)

	frozenTicks := 0
	for !c.Playing() {
		c.Advance(dt)
		frozenTicks++
		if frozenTicks > 100 {
			t.Fatalf("clock never resumed")
		}
	}
	if frozenTicks != 15 {
		t.Fatalf("expected the freeze to hold 15 ticks, got %d", frozenTicks)
	}
	if c.Current != dt {
		t.Fatalf("time must not advance while frozen, got %v", c.Current)
	}
}

func TestCancelFlags(t *testing.T) {
	c, err := ParseCancel([]string{"move", "Normal", "jump"})
	if err != nil {
		t.Fatal(err)
	}
	cases := []struct {
		id   command.ID
		want bool
	}{
		{command.Walk, true},
		{command.Back, true},
		{command.Dash, false},
		{command.FrontJump, true},
		{command.A, true},
		{command.D, true},
		{command.Crouch, false},
		{command.QuarterCircleForward, false},
	}
	for _, tc := range cases {
		if got := c.IsCancelable(tc.id); got != tc.want {
			t.Fatalf("IsCancelable(%s) = %v, want %v", tc.id, got, tc.want)
		}
	}

	if got := c.Names(); !slices.Equal(got, []string{"move", "jump", "normal"}) {
		t.Fatalf("unexpected names %v", got)
	}
	if _, err := ParseCancel([]string{"teleport"}); err == nil {
		t.Fatalf("expected error for unknown flag")
	}
}

func TestActiveCommandSet(t *testing.T) {
	var a ActiveCommand
	a.Add(command.B)
	a.Add(command.Walk)
	a.Add(command.B)
	a.Add(command.QuarterCircleForward)

	if !slices.Equal(a.Commands, []command.ID{command.Walk, command.B, command.QuarterCircleForward}) {
		t.Fatalf("unexpected set %v", a.Commands)
	}
	if got := a.Descending(); got[0] != command.QuarterCircleForward {
		t.Fatalf("expected highest rank first, got %v", got)
	}
	a.Clear()
	if len(a.Commands) != 0 || a.Has(command.B) {
		t.Fatalf("expected empty set after clear")
	}
}
