package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/glider/common"
	"github.com/milk9111/glider/component"
)

const (
	// landingVelocity separates landing from brushing the ground on the way up.
	landingVelocity = -0.02

	// vertical speed window treated as the apex of a boosted jump
	apexMinVelocity = 0.0
	apexMaxVelocity = 1.0

	glideEntryVelocity = -1.0
)

type airState struct {
	playerState
}

func (s *airState) LateUpdate(ctx *component.PlayerStateContext, dt float64) component.StateID {
	if next := s.playerState.LateUpdate(ctx, dt); next != component.StateNone {
		return next
	}
	if s.grounded(ctx) && ctx.Body.Velocity().Y() < landingVelocity {
		return component.StateGroundIdle
	}
	return component.StateNone
}

type freeFallState struct {
	airState
	dir mgl64.Vec3
}

func (*freeFallState) ID() component.StateID { return component.StateFreeFall }

func (s *freeFallState) Exit(ctx *component.PlayerStateContext) {
	s.dir = mgl64.Vec3{}
	s.airState.Exit(ctx)
}

func (s *freeFallState) Update(ctx *component.PlayerStateContext, dt float64) component.StateID {
	if next := s.airState.Update(ctx, dt); next != component.StateNone {
		return next
	}
	if ctx.Input.JumpPressed && !ctx.Energy.Empty() {
		return component.StateGlide
	}
	// Any upward crossing of the apex window glides while a stale booster
	// charge is above the threshold, not only the apex of a boosted jump.
	vy := ctx.Body.Velocity().Y()
	if vy > apexMinVelocity && vy < apexMaxVelocity &&
		ctx.Booster.Force > s.cfg.EnableGlideModeBoosterForceThreshold &&
		!ctx.Energy.Empty() {
		return component.StateGlide
	}

	if !ctx.Input.HasDirection() {
		return component.StateNone
	}
	s.dir = moveDirection(ctx)
	face(ctx, s.dir)
	return component.StateNone
}

func (s *freeFallState) FixedUpdate(ctx *component.PlayerStateContext, dt float64) component.StateID {
	if next := s.airState.FixedUpdate(ctx, dt); next != component.StateNone {
		return next
	}
	if !ctx.Input.HasDirection() {
		return component.StateNone
	}
	steer(ctx, s.dir.Mul(s.cfg.WalkSpeed))
	return component.StateNone
}

type glideState struct {
	airState
}

func (*glideState) ID() component.StateID { return component.StateGlide }

func (s *glideState) Enter(ctx *component.PlayerStateContext) {
	s.airState.Enter(ctx)
	v := ctx.Body.Velocity()
	v[1] = glideEntryVelocity
	ctx.Body.SetVelocity(v)
	ctx.Observer.TrailsChanged(true)
}

func (s *glideState) Exit(ctx *component.PlayerStateContext) {
	ctx.Observer.TrailsChanged(false)
	ctx.Pivot.SetEuler(mgl64.Vec3{})
	s.airState.Exit(ctx)
}

func (s *glideState) Update(ctx *component.PlayerStateContext, dt float64) component.StateID {
	if next := s.airState.Update(ctx, dt); next != component.StateNone {
		return next
	}
	in := ctx.Input
	ctx.Body.SetYaw(ctx.Body.Yaw() + dt*s.cfg.GlideTurnSpeed*in.Horizontal)
	s.bank(ctx, dt)

	ctx.Energy.Adjust(-dt * math.Abs(s.cfg.GlideEnergyUsage))
	if ctx.Energy.Empty() {
		return component.StateFreeFall
	}
	if in.JumpPressed {
		return component.StateFreeFall
	}
	return component.StateNone
}

// bank rolls the mesh pivot against the turn while steering input is held and
// relaxes it toward level otherwise.
func (s *glideState) bank(ctx *component.PlayerStateContext, dt float64) {
	e := ctx.Pivot.Euler()
	if ctx.Input.RawHorizontal != 0 {
		e[2] += dt * s.cfg.MaxGlideZRotation * -ctx.Input.Horizontal
	} else {
		e[2] = common.MoveTowards(ctx.Pivot.Roll(), 0, dt*s.cfg.GlideZRotationRecoverSpeed)
	}
	e[2] = common.ClampAngle(e[2], -s.cfg.MaxGlideZRotation, s.cfg.MaxGlideZRotation)
	ctx.Pivot.SetEuler(e)
}

func (s *glideState) FixedUpdate(ctx *component.PlayerStateContext, dt float64) component.StateID {
	if next := s.airState.FixedUpdate(ctx, dt); next != component.StateNone {
		return next
	}
	ctx.Body.ApplyForce(common.Up.Mul(s.cfg.GlideUpForce), component.ForceAcceleration)
	steer(ctx, ctx.Body.Forward().Mul(s.cfg.GlideSpeed))
	return component.StateNone
}
