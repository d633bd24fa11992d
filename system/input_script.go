package system

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/glider/component"
	"github.com/milk9111/glider/prefabs"
)

const inputDispatchScript = `
__out = input(__frame, __time)
`

// ScriptedInput drives the controller from a tengo script. The script defines
// input(frame, time) returning a map with any of x, z, jump, look and look_y. A
// top-level frames global, when set, is the run length in frames.
type ScriptedInput struct {
	name     string
	compiled *tengo.Compiled
	frame    int
	time     float64
}

var _ InputSource = (*ScriptedInput)(nil)

// LoadScriptedInput compiles a script from prefabs/scripts.
func LoadScriptedInput(name string) (*ScriptedInput, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("input script %s: %w", name, err)
	}
	return NewScriptedInput(name, src)
}

func NewScriptedInput(name string, src []byte) (*ScriptedInput, error) {
	full := string(src) + "\n" + inputDispatchScript
	script := tengo.NewScript([]byte(full))
	_ = script.Add("__frame", 0)
	_ = script.Add("__time", 0.0)
	_ = script.Add("__out", map[string]any{})

	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("input script %s: %w", name, err)
	}
	return &ScriptedInput{name: name, compiled: compiled}, nil
}

func (s *ScriptedInput) Name() string {
	return s.name
}

// Frames returns the script's frames global, or 0 when it has none. Valid
// after the first Poll.
func (s *ScriptedInput) Frames() int {
	if !s.compiled.IsDefined("frames") {
		return 0
	}
	return s.compiled.Get("frames").Int()
}

func (s *ScriptedInput) Poll(in *component.Input, dt float64) error {
	if err := s.compiled.Set("__frame", s.frame); err != nil {
		return err
	}
	if err := s.compiled.Set("__time", s.time); err != nil {
		return err
	}
	if err := s.compiled.Run(); err != nil {
		return fmt.Errorf("input script %s: frame %d: %w", s.name, s.frame, err)
	}
	s.frame++
	s.time += dt

	out := s.compiled.Get("__out").Map()
	x := mgl64.Clamp(scriptFloat(out["x"]), -1, 1)
	z := mgl64.Clamp(scriptFloat(out["z"]), -1, 1)
	in.Horizontal, in.RawHorizontal = x, x
	in.Vertical, in.RawVertical = z, z
	in.LookX = scriptFloat(out["look"])
	in.LookY = scriptFloat(out["look_y"])
	JumpEdges(in, scriptBool(out["jump"]))
	return nil
}

func scriptFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	case int:
		return float64(n)
	case bool:
		if n {
			return 1
		}
	}
	return 0
}

func scriptBool(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case int64:
		return b != 0
	case string:
		return strings.EqualFold(strings.TrimSpace(b), "true")
	}
	return false
}
