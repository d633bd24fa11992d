package physics

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/glider/common"
	"github.com/milk9111/glider/component"
)

// Body is a dynamic, upright body. Velocity changes apply at once;
// accelerations accumulate and are integrated by the next step.
type Body struct {
	world      *World
	pos        mgl64.Vec3
	vel        mgl64.Vec3
	accel      mgl64.Vec3
	yaw        float64
	halfHeight float64
}

var _ component.Body = (*Body)(nil)

func (b *Body) Position() mgl64.Vec3 {
	return b.pos
}

// SetPosition teleports the body and clears its motion.
func (b *Body) SetPosition(p mgl64.Vec3) {
	b.pos = p
	b.vel = mgl64.Vec3{}
	b.accel = mgl64.Vec3{}
}

func (b *Body) Velocity() mgl64.Vec3 {
	return b.vel
}

func (b *Body) SetVelocity(v mgl64.Vec3) {
	b.vel = v
}

func (b *Body) ApplyForce(f mgl64.Vec3, mode component.ForceMode) {
	switch mode {
	case component.ForceVelocityChange:
		b.vel = b.vel.Add(f)
	default:
		b.accel = b.accel.Add(f)
	}
}

func (b *Body) Yaw() float64 {
	return b.yaw
}

func (b *Body) SetYaw(deg float64) {
	b.yaw = common.WrapAngle(deg)
}

func (b *Body) Forward() mgl64.Vec3 {
	return common.Forward(b.yaw)
}

func (b *Body) HalfHeight() float64 {
	return b.halfHeight
}

// Grounded casts down from the body centre.
func (b *Body) Grounded(castLength float64, layer component.LayerMask) bool {
	_, ok := b.world.Raycast(b.pos, castLength, layer)
	return ok
}

// step integrates one fixed step. Ground contact is resolved before gravity is
// added, so a resting body keeps a small downward velocity between steps.
func (b *Body) step(dt float64) {
	b.vel = b.vel.Add(b.accel.Mul(dt))
	b.accel = mgl64.Vec3{}

	prev := b.pos
	prevFoot := prev.Y() - b.halfHeight
	next := prev.Add(b.vel.Mul(dt))

	if b.world.blocked(next.X(), next.Z(), prevFoot, prev.Y()+b.halfHeight) {
		next[0], next[2] = prev.X(), prev.Z()
		b.vel[0], b.vel[2] = 0, 0
	}

	if top, ok := b.world.support(next.X(), next.Z(), prevFoot+stepHeight); ok && next.Y()-b.halfHeight < top {
		next[1] = top + b.halfHeight
		if b.vel.Y() < 0 {
			b.vel[1] = 0
		}
	}
	b.pos = next

	b.vel[1] -= b.world.gravity * dt
}
