package system

import (
	"github.com/milk9111/glider/common"
	"github.com/milk9111/glider/component"
)

const (
	// axis ramp rates in units per second
	axisSensitivity = 3.0
	axisGravity     = 3.0
)

// InputSource fills the input snapshot once per frame, before the controller
// runs. Implementations own the edge flags and must reset them every poll.
type InputSource interface {
	Poll(in *component.Input, dt float64) error
}

// SmoothAxis ramps a smoothed axis toward the raw value. It snaps through
// zero when the raw direction reverses.
func SmoothAxis(current, raw, dt float64) float64 {
	if raw == 0 {
		return common.MoveTowards(current, 0, axisGravity*dt)
	}
	if current*raw < 0 {
		current = 0
	}
	return common.MoveTowards(current, raw, axisSensitivity*dt)
}

// JumpEdges derives the press and release edges of the jump button from the
// held state of this frame and the last one.
func JumpEdges(in *component.Input, held bool) {
	in.JumpPressed = held && !in.Jump
	in.JumpReleased = !held && in.Jump
	in.Jump = held
}
