package component

import "github.com/go-gl/mathgl/mgl64"

// ForceMode selects how ApplyForce changes a body's velocity.
type ForceMode int

const (
	// ForceAcceleration is integrated over the next physics step.
	ForceAcceleration ForceMode = iota
	// ForceVelocityChange is added to the velocity immediately.
	ForceVelocityChange
)

func (m ForceMode) String() string {
	switch m {
	case ForceAcceleration:
		return "acceleration"
	case ForceVelocityChange:
		return "velocity_change"
	default:
		return "unknown"
	}
}

// Body is the slice of the physics body the player states are allowed to touch.
type Body interface {
	Position() mgl64.Vec3
	Velocity() mgl64.Vec3
	SetVelocity(v mgl64.Vec3)
	ApplyForce(f mgl64.Vec3, mode ForceMode)
	Yaw() float64
	SetYaw(deg float64)
	Forward() mgl64.Vec3
	// Grounded casts a ray of castLength straight down from the body centre
	// against surfaces on the given layers.
	Grounded(castLength float64, layer LayerMask) bool
}

// Camera exposes the view yaw that movement input is relative to.
type Camera interface {
	Yaw() float64
}

// FixedCamera is a camera that never turns.
type FixedCamera float64

func (c FixedCamera) Yaw() float64 { return float64(c) }
