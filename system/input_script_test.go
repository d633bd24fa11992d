package system

import (
	"testing"

	"github.com/milk9111/glider/component"
	"github.com/milk9111/glider/prefabs"
)

const testScript = `
frames := 3

input := func(frame, t) {
	if frame == 1 {
		return {x: 2, jump: true}
	}
	return {z: -0.5, look: 1, look_y: -2}
}
`

func TestScriptedInputPoll(t *testing.T) {
	s, err := NewScriptedInput("test", []byte(testScript))
	if err != nil {
		t.Fatalf("NewScriptedInput: %v", err)
	}
	in := &component.Input{}

	if err := s.Poll(in, frameDT); err != nil {
		t.Fatalf("Poll: %v", err)
	}
	if in.RawVertical != -0.5 || in.Vertical != -0.5 || in.LookX != 1 || in.LookY != -2 || in.Jump || in.JumpPressed {
		t.Fatalf("frame 0: unexpected input %+v", *in)
	}

	if err := s.Poll(in, frameDT); err != nil {
		t.Fatalf("Poll: %v", err)
	}
	if in.RawHorizontal != 1 || in.RawVertical != 0 || !in.Jump || !in.JumpPressed {
		t.Fatalf("frame 1: unexpected input %+v", *in)
	}

	if err := s.Poll(in, frameDT); err != nil {
		t.Fatalf("Poll: %v", err)
	}
	if in.Jump || in.JumpPressed || !in.JumpReleased {
		t.Fatalf("frame 2: expected a release edge, got %+v", *in)
	}

	if got := s.Frames(); got != 3 {
		t.Fatalf("expected frames 3, got %d", got)
	}
}

func TestScriptedInputCompileError(t *testing.T) {
	if _, err := NewScriptedInput("broken", []byte("frames := ")); err == nil {
		t.Fatal("expected compile error")
	}
	if _, err := NewScriptedInput("no_input", []byte("frames := 1")); err == nil {
		t.Fatal("expected an error for a script without input")
	}
}

func TestEmbeddedScriptsCompile(t *testing.T) {
	names := prefabs.ScriptNames()
	if len(names) == 0 {
		t.Fatal("no embedded scripts")
	}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			s, err := LoadScriptedInput(name)
			if err != nil {
				t.Fatalf("LoadScriptedInput: %v", err)
			}
			if err := s.Poll(&component.Input{}, frameDT); err != nil {
				t.Fatalf("Poll: %v", err)
			}
			if s.Frames() <= 0 {
				t.Fatalf("expected a positive frames global, got %d", s.Frames())
			}
		})
	}
}
