package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	l := Init(Config{Level: "debug", Format: "console", Output: &buf})
	l.WithGroup("pair").With("tick", 3).Warn("judge: dropped pair", "a", 1)

	line := buf.String()
	for _, want := range []string{"WARN ", "judge: dropped pair", "pair.tick=3", "pair.a=1"} {
		if !strings.Contains(line, want) {
			t.Fatalf("expected %q in %q", want, line)
		}
	}
}

func TestLevelFilter(t *testing.T) {
	cases := []struct {
		level  string
		format string
		logged bool
	}{
		{"warn", "console", false},
		{"info", "console", true},
		{"error", "json", false},
		{"", "text", true},
	}
	for _, c := range cases {
		var buf bytes.Buffer
		l := Init(Config{Level: c.level, Format: c.format, Output: &buf})
		l.Info("hello")
		if got := buf.Len() > 0; got != c.logged {
			t.Fatalf("level=%q format=%q: logged=%v want %v", c.level, c.format, got, c.logged)
		}
		if L() != l {
			t.Fatalf("L should return the installed logger")
		}
	}
}
