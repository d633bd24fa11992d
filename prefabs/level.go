package prefabs

import (
	"fmt"

	"github.com/milk9111/glider/component"
	"github.com/milk9111/glider/physics"
)

const (
	defaultFixedStep  = 0.02
	defaultHalfHeight = 1.0
)

// Step returns the fixed physics step, defaulting to 50 Hz.
func (s LevelSpec) Step() float64 {
	if s.FixedStep <= 0 {
		return defaultFixedStep
	}
	return s.FixedStep
}

// Build creates the physics world for the level and spawns the player body.
func (s LevelSpec) Build() (*physics.World, *physics.Body, error) {
	g := s.Gravity
	if g == 0 {
		g = physics.DefaultGravity
	}
	world := physics.NewWorld(g)
	for i, p := range s.Platforms {
		if _, err := world.AddPlatform(physics.Platform{
			Min:   p.Min.Vec3(),
			Max:   p.Max.Vec3(),
			Layer: component.LayerMask(p.Layer),
		}); err != nil {
			return nil, nil, fmt.Errorf("prefabs: level %q platform %d (%s): %w", s.Name, i, p.Name, err)
		}
	}

	hh := s.Spawn.HalfHeight
	if hh <= 0 {
		hh = defaultHalfHeight
	}
	body := world.NewBody(s.Spawn.Position.Vec3(), hh)
	body.SetYaw(s.Spawn.Yaw)
	return world, body, nil
}
