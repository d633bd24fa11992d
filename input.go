package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/glider/component"
	"github.com/milk9111/glider/system"
)

const (
	stickDeadzone = 0.2
	// look units per pixel of mouse movement; the camera turns
	// CameraRotationSpeed degrees per second per unit
	mouseLookScale = 6.0
	keyLook        = 30.0
	stickLook      = 40.0
)

// deviceInput reads keyboard, mouse and the first gamepad.
type deviceInput struct {
	lastCursorX int
	lastCursorY int
	haveCursor  bool
}

var _ system.InputSource = (*deviceInput)(nil)

func (d *deviceInput) Poll(in *component.Input, dt float64) error {
	left := ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft)
	right := ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight)
	up := ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp)
	down := ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown)
	jump := ebiten.IsKeyPressed(ebiten.KeySpace)

	rawX, rawZ := 0.0, 0.0
	if left {
		rawX -= 1
	}
	if right {
		rawX += 1
	}
	if up {
		rawZ += 1
	}
	if down {
		rawZ -= 1
	}

	look := 0.0
	if ebiten.IsKeyPressed(ebiten.KeyQ) {
		look -= keyLook
	}
	if ebiten.IsKeyPressed(ebiten.KeyE) {
		look += keyLook
	}
	lookY := 0.0
	x, y := ebiten.CursorPosition()
	if d.haveCursor && ebiten.CursorMode() == ebiten.CursorModeCaptured {
		look += float64(x-d.lastCursorX) * mouseLookScale
		// screen y grows downward
		lookY -= float64(y-d.lastCursorY) * mouseLookScale
	}
	d.lastCursorX, d.lastCursorY, d.haveCursor = x, y, true

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Hypot(lx, ly) > stickDeadzone {
			rawX, rawZ = lx, -ly
		}
		rx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal)
		if math.Abs(rx) > stickDeadzone {
			look += rx * stickLook
		}
		ry := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical)
		if math.Abs(ry) > stickDeadzone {
			lookY -= ry * stickLook
		}
		jump = jump || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
	}

	in.RawHorizontal, in.RawVertical = rawX, rawZ
	in.Horizontal = system.SmoothAxis(in.Horizontal, rawX, dt)
	in.Vertical = system.SmoothAxis(in.Vertical, rawZ, dt)
	in.LookX, in.LookY = look, lookY
	system.JumpEdges(in, jump)
	return nil
}

// pauseToggled reports whether a pause key or the start button went down.
func pauseToggled() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		return true
	}
	for _, id := range ebiten.GamepadIDs() {
		if inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonCenterRight) {
			return true
		}
	}
	return false
}
