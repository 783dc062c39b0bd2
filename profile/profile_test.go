package profile

import (
	"slices"
	"testing"
)

func TestNew(t *testing.T) {
	p := New(WithMode("cpu"), WithPath("/tmp/x"), WithQuiet(true))

	want := Profiler{Mode: "cpu", Path: "/tmp/x", Quiet: true}
	if p != want {
		t.Errorf("New() = %+v, want %+v", p, want)
	}

	if (New() != Profiler{}) {
		t.Error("New() without options should be the zero Profiler")
	}
}

func TestStart_NoMode(t *testing.T) {
	s := Profiler{}.Start()
	if _, ok := s.(ignore); !ok {
		t.Errorf("Start() with empty mode = %T, want no-op", s)
	}

	s.Stop()
}

func TestStart_UnknownMode(t *testing.T) {
	s := New(WithMode("bogus"), WithPath(t.TempDir()), WithQuiet(true)).Start()
	if _, ok := s.(ignore); !ok {
		t.Errorf("Start() with unknown mode = %T, want no-op", s)
	}

	s.Stop()
}

func TestModes(t *testing.T) {
	modes := Modes()

	if !slices.IsSorted(modes) {
		t.Errorf("Modes() = %v is not sorted", modes)
	}

	if Enabled != slices.Contains(modes, "cpu") {
		t.Errorf("Enabled = %v but Modes() = %v", Enabled, modes)
	}
}
