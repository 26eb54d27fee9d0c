package animation

import (
	"errors"
	"slices"
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/fightcore/ecs/component"
	"github.com/milk9111/fightcore/geometry"
)

func key(anim string) component.AnimationKey {
	return component.AnimationKey{File: "fighter", Pack: "body", Anim: anim}
}

func blowTag() *component.KeyframeTag {
	return &component.KeyframeTag{Collision: &component.CollisionType{Kind: component.Blow}}
}

func hurtTag() *component.KeyframeTag {
	return &component.KeyframeTag{Collision: &component.CollisionType{Kind: component.Damaged}}
}

func jabClip() *Clip {
	return &Clip{
		Key:    key("jab"),
		Frames: 12,
		Parts: []Part{
			{ID: 0, Parent: -1, Keys: []PartKey{{Frame: 0, Transform: geometry.Identity(), Visible: true, Tag: hurtTag()}}},
			{ID: 1, Parent: 0, Keys: []PartKey{
				{Frame: 0, Transform: geometry.Identity()},
				{Frame: 2, Transform: geometry.Identity(), Visible: true, Tag: blowTag()},
				{Frame: 5, Transform: geometry.Identity()},
				{Frame: 7, Transform: geometry.Identity(), Visible: true, Tag: blowTag()},
				{Frame: 8, Transform: geometry.Identity()},
			}},
		},
	}
}

func TestAttackRanges(t *testing.T) {
	got := AttackRanges(jabClip())
	want := [][2]int{{2, 4}, {7, 7}}
	if !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestFrameAt(t *testing.T) {
	c := jabClip()
	cases := []struct {
		name     string
		loop     bool
		t        float64
		frame    int
		finished bool
	}{
		{"start", false, 0, 0, false},
		{"third_frame", false, 2.0 / FPS, 2, false},
		{"past_end_holds", false, 20.0 / FPS, 11, true},
		{"looping_wraps", true, 13.0 / FPS, 1, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c.Loop = tc.loop
			frame, finished := c.FrameAt(tc.t)
			if frame != tc.frame || finished != tc.finished {
				t.Fatalf("got frame=%d finished=%v", frame, finished)
			}
		})
	}
}

func TestEntered(t *testing.T) {
	c := jabClip()
	cases := []struct {
		name      string
		loop      bool
		prev, cur float64
		want      []int
	}{
		{"one_step", false, 2.0 / FPS, 3.0 / FPS, []int{3}},
		{"same_frame", false, 2.0 / FPS, 2.5 / FPS, nil},
		{"skips_frames", false, 1.0 / FPS, 4.0 / FPS, []int{2, 3, 4}},
		{"stops_at_end", false, 10.0 / FPS, 14.0 / FPS, []int{11}},
		{"past_end", false, 12.0 / FPS, 13.0 / FPS, nil},
		{"wraps", true, 11.0 / FPS, 13.0 / FPS, []int{0, 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c.Loop = tc.loop
			if got := c.Entered(tc.prev, tc.cur); !slices.Equal(got, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestMoveAt(t *testing.T) {
	c := jabClip()
	c.Parts[0].Keys[0].Move = cp.Vector{X: 2}
	c.Parts[1].Keys[1].Move = cp.Vector{X: 1, Y: 3}
	c.Parts[1].Keys[2].Move = cp.Vector{X: 50}

	cases := []struct {
		frame int
		want  cp.Vector
	}{
		{0, cp.Vector{X: 2}},
		{2, cp.Vector{X: 3, Y: 3}},
		{4, cp.Vector{X: 3, Y: 3}},
		// The hidden fist does not move its owner.
		{5, cp.Vector{X: 2}},
	}
	for _, tc := range cases {
		if got := c.MoveAt(tc.frame); got != tc.want {
			t.Fatalf("frame %d: expected %v, got %v", tc.frame, tc.want, got)
		}
	}
}

func TestLibraryPose(t *testing.T) {
	lib := NewLibrary()
	if err := lib.Add(jabClip()); err != nil {
		t.Fatal(err)
	}
	if err := lib.Add(jabClip()); !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("expected duplicate error, got %v", err)
	}

	pose, finished, err := lib.Pose(key("jab"), 3.0/FPS)
	if err != nil || finished {
		t.Fatalf("unexpected err=%v finished=%v", err, finished)
	}
	if pose.Frame != 3 || len(pose.Nodes) != 2 {
		t.Fatalf("unexpected pose %+v", pose)
	}
	if !pose.Nodes[1].Visible || pose.Nodes[1].Tag.Collision.Kind != component.Blow {
		t.Fatalf("expected the fist to be an active blow on frame 3")
	}

	if _, _, err := lib.Pose(key("missing"), 0); !errors.Is(err, ErrUnknownClip) {
		t.Fatalf("expected unknown clip error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	bad := []*Clip{
		{Key: key("empty")},
		{Key: key("parent"), Frames: 1, Parts: []Part{{ID: 0, Parent: 0}}},
		{Key: key("keys"), Frames: 4, Parts: []Part{{ID: 0, Parent: -1, Keys: []PartKey{{Frame: 3}, {Frame: 1}}}}},
	}
	for _, c := range bad {
		if err := c.Validate(); err == nil {
			t.Fatalf("expected %s to be rejected", c.Key)
		}
	}
}
