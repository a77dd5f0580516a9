package profile

import (
	"slices"
	"testing"
)

func TestMake(t *testing.T) {
	mode, path, quiet := Make()()
	if mode != "" || path != "" || quiet {
		t.Errorf("zero config = %q, %q, %v", mode, path, quiet)
	}

	c := Make(WithMode("cpu"), WithPath("/tmp/p"), WithQuiet(true), nil)

	mode, path, quiet = c()
	if mode != "cpu" || path != "/tmp/p" || !quiet {
		t.Errorf("config = %q, %q, %v", mode, path, quiet)
	}

	// Options derive new configs without touching the original.
	if m, _, _ := WithMode("heap")(c)(); m != "heap" {
		t.Errorf("derived mode = %q", m)
	}

	if m, _, _ := c(); m != "cpu" {
		t.Errorf("original mode changed to %q", m)
	}
}

func TestStart_NoMode(t *testing.T) {
	p := Make(WithPath(t.TempDir())).Start()
	if _, ok := p.(ignore); !ok {
		t.Errorf("expected no-op profiler, got %T", p)
	}

	p.Stop()
}

func TestStart_UnknownMode(t *testing.T) {
	p := Make(WithMode("nonsense"), WithPath(t.TempDir()), WithQuiet(true)).Start()
	if _, ok := p.(ignore); !ok {
		t.Errorf("expected no-op profiler, got %T", p)
	}

	p.Stop()
}

func TestModes(t *testing.T) {
	modes := slices.Collect(Modes())

	if !Enabled {
		if len(modes) != 0 {
			t.Errorf("expected no modes without the %s tag, got %v", Tag, modes)
		}

		return
	}

	if !slices.IsSorted(modes) || !slices.Contains(modes, "cpu") {
		t.Errorf("Modes() = %v", modes)
	}
}
