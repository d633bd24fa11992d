package system

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/glider/common"
	"github.com/milk9111/glider/component"
)

// playerState is the shared base for every locomotion state.
type playerState struct {
	component.BasePlayerState
	cfg *component.Player
}

func (s *playerState) Init(ctx *component.PlayerStateContext) {
	s.BasePlayerState.Init(ctx)
	s.cfg = ctx.Config
}

func (s *playerState) grounded(ctx *component.PlayerStateContext) bool {
	return ctx.Body.Grounded(s.cfg.GroundCastLength, s.cfg.GroundLayer)
}

// jump launches the body with the base jump speed plus the charged booster.
func (s *playerState) jump(ctx *component.PlayerStateContext) {
	ctx.Body.ApplyForce(common.Up.Mul(s.cfg.JumpInitialSpeed+ctx.Booster.Force), component.ForceVelocityChange)
}

// moveDirection returns the input direction rotated into camera space.
func moveDirection(ctx *component.PlayerStateContext) mgl64.Vec3 {
	dir := common.Normalize(mgl64.Vec3{ctx.Input.Horizontal, 0, ctx.Input.Vertical})
	yaw := 0.0
	if ctx.Camera != nil {
		yaw = ctx.Camera.Yaw()
	}
	return common.Normalize(common.YawRotate(dir, yaw))
}

// face turns the body toward dir. A zero dir keeps the current heading.
func face(ctx *component.PlayerStateContext, dir mgl64.Vec3) {
	if dir == (mgl64.Vec3{}) {
		return
	}
	ctx.Body.SetYaw(common.YawOf(dir))
}

// steer changes horizontal velocity to target in one step. Vertical velocity
// is left to gravity and jumps.
func steer(ctx *component.PlayerStateContext, target mgl64.Vec3) {
	change := target.Sub(ctx.Body.Velocity())
	change[1] = 0
	ctx.Body.ApplyForce(change, component.ForceVelocityChange)
}

type groundState struct {
	playerState
}

func (s *groundState) Enter(ctx *component.PlayerStateContext) {
	s.playerState.Enter(ctx)
	ctx.Booster.Force = 0
}

// Update handles, in priority order: jump release, energy recovery, booster
// charging and walking off an edge.
func (s *groundState) Update(ctx *component.PlayerStateContext, dt float64) component.StateID {
	if next := s.playerState.Update(ctx, dt); next != component.StateNone {
		return next
	}
	in := ctx.Input

	if in.JumpReleased && s.grounded(ctx) {
		s.jump(ctx)
		return component.StateFreeFall
	}

	switch {
	case !in.Jump && s.grounded(ctx):
		ctx.Energy.Adjust(dt * math.Abs(s.cfg.OnGroundEnergyRecover))
	case in.Jump:
		ctx.Energy.Adjust(-dt * math.Abs(s.cfg.BoosterSpeedEnergyUseage))
		ctx.Booster.Force = math.Min(ctx.Booster.Force+dt*s.cfg.BoosterSpeedIncrementalSpeed, s.cfg.MaxBoosterSpeed)
		if ctx.Booster.Force >= s.cfg.MaxBoosterSpeed || ctx.Energy.Empty() {
			s.jump(ctx)
			return component.StateFreeFall
		}
	case !s.grounded(ctx):
		return component.StateFreeFall
	}
	return component.StateNone
}

type groundIdleState struct {
	groundState
}

func (*groundIdleState) ID() component.StateID { return component.StateGroundIdle }

func (s *groundIdleState) Enter(ctx *component.PlayerStateContext) {
	s.groundState.Enter(ctx)
	ctx.Body.SetVelocity(mgl64.Vec3{})
}

func (s *groundIdleState) Update(ctx *component.PlayerStateContext, dt float64) component.StateID {
	if next := s.groundState.Update(ctx, dt); next != component.StateNone {
		return next
	}
	if ctx.Input.HasDirection() {
		return component.StateGroundWalk
	}
	return component.StateNone
}

type groundWalkState struct {
	groundState
	dir mgl64.Vec3
}

func (*groundWalkState) ID() component.StateID { return component.StateGroundWalk }

func (s *groundWalkState) Enter(ctx *component.PlayerStateContext) {
	s.groundState.Enter(ctx)
	s.dir = moveDirection(ctx)
	face(ctx, s.dir)
}

func (s *groundWalkState) Exit(ctx *component.PlayerStateContext) {
	s.dir = mgl64.Vec3{}
	s.groundState.Exit(ctx)
}

func (s *groundWalkState) Update(ctx *component.PlayerStateContext, dt float64) component.StateID {
	if next := s.groundState.Update(ctx, dt); next != component.StateNone {
		return next
	}
	s.dir = moveDirection(ctx)
	face(ctx, s.dir)
	return component.StateNone
}

func (s *groundWalkState) FixedUpdate(ctx *component.PlayerStateContext, dt float64) component.StateID {
	if next := s.groundState.FixedUpdate(ctx, dt); next != component.StateNone {
		return next
	}
	steer(ctx, s.dir.Mul(s.cfg.WalkSpeed))
	if !ctx.Input.HasDirection() {
		return component.StateGroundIdle
	}
	return component.StateNone
}
