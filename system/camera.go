package system

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/glider/common"
	"github.com/milk9111/glider/component"
)

// MaxCameraPitch bounds how far the view tilts up or down, in degrees.
const MaxCameraPitch = 80.0

// CameraSystem orbits the view around the player from look input. Yaw follows
// LookX and pitch follows inverted LookY, both in degrees per second per unit.
type CameraSystem struct {
	yaw   float64
	pitch float64
	speed float64
}

var _ component.Camera = (*CameraSystem)(nil)

func NewCameraSystem(speed, yaw float64) *CameraSystem {
	return &CameraSystem{yaw: common.WrapAngle(yaw), speed: speed}
}

func (c *CameraSystem) Update(in *component.Input, dt float64) {
	if in == nil {
		return
	}
	if in.LookX != 0 {
		c.yaw = common.WrapAngle(c.yaw + c.speed*dt*in.LookX)
	}
	if in.LookY != 0 {
		c.pitch = mgl64.Clamp(c.pitch-c.speed*dt*in.LookY, -MaxCameraPitch, MaxCameraPitch)
	}
}

func (c *CameraSystem) Yaw() float64 {
	return c.yaw
}

// Pitch is the signed tilt in degrees; positive looks down.
func (c *CameraSystem) Pitch() float64 {
	return c.pitch
}

// SetSpeed retunes the look rate without resetting the view.
func (c *CameraSystem) SetSpeed(speed float64) {
	c.speed = speed
}
