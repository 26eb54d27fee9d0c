package input

import "testing"

func TestDecodeStick(t *testing.T) {
	cases := []struct {
		name   string
		lr, ud float64
		want   Flag
	}{
		{"neutral", 0, 0, 0},
		{"inside_deadzone", 0.2, -0.2, 0},
		{"right", 0.9, 0, Right},
		{"left", -0.5, 0.1, Left},
		{"up", 0, 1, Up},
		{"down", 0.1, -1, Down},
		{"right_up", 0.7, 0.7, RightUp},
		{"left_up", -0.7, 0.3, LeftUp},
		{"right_down", 0.3, -0.3, RightDown},
		{"left_down", -1, -1, LeftDown},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := decodeStick(c.lr, c.ud, DefaultAxisThreshold)
			if got != c.want {
				t.Fatalf("decodeStick(%v, %v) = %s, want %s", c.lr, c.ud, got, c.want)
			}
		})
	}
}

func TestSampleFirstFramePushesEverythingHeld(t *testing.T) {
	sig := Sample(RawState{A: true, AxisX: 1}, nil, DefaultAxisThreshold)
	if sig.Down != A|Right {
		t.Fatalf("expected down=A|Right, got %s", sig.Down)
	}
	if sig.Pushed != sig.Down {
		t.Fatalf("expected pushed == down on first sample, got %s", sig.Pushed)
	}
	if sig.Released != 0 {
		t.Fatalf("expected nothing released, got %s", sig.Released)
	}
}

func TestSignalDiffProperties(t *testing.T) {
	seq := []Flag{
		0,
		A,
		A | Down,
		Down,
		RightDown | B,
		Right | B | C,
		0,
		LeftUp | D,
		LeftUp | D,
	}

	var prev *Signal
	for i, down := range seq {
		sig := NewSignal(down, prev)
		if sig.Pushed&sig.Released != 0 {
			t.Fatalf("frame %d: pushed %s and released %s overlap", i, sig.Pushed, sig.Released)
		}
		if prev != nil {
			rebuilt := (prev.Down | sig.Pushed) &^ sig.Released
			if rebuilt != sig.Down {
				t.Fatalf("frame %d: rebuilt down %s, want %s", i, rebuilt, sig.Down)
			}
		}
		p := sig
		prev = &p
	}
}

func TestMirror(t *testing.T) {
	cases := []struct {
		in, want Flag
	}{
		{Right, Left},
		{Left, Right},
		{RightDown | A, LeftDown | A},
		{LeftUp, RightUp},
		{Down | Up, Down | Up},
	}
	for _, c := range cases {
		if got := Mirror(c.in); got != c.want {
			t.Fatalf("Mirror(%s) = %s, want %s", c.in, got, c.want)
		}
		if got := Mirror(Mirror(c.in)); got != c.in {
			t.Fatalf("Mirror is not an involution for %s", c.in)
		}
	}
}

func TestFlagString(t *testing.T) {
	if got := Flag(0).String(); got != "5" {
		t.Fatalf("expected neutral 5, got %q", got)
	}
	if got := (RightDown | A | C).String(); got != "3AC" {
		t.Fatalf("expected 3AC, got %q", got)
	}
}
