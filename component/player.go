package component

import "fmt"

// LayerMask selects which ground layers the grounded probe may hit.
type LayerMask uint

// Player holds the tunables for the locomotion controller. Rates are per second.
type Player struct {
	WalkSpeed                            float64
	CameraRotationSpeed                  float64
	JumpInitialSpeed                     float64
	GroundCastLength                     float64
	GroundLayer                          LayerMask
	MaxEnergy                            float64
	OnGroundEnergyRecover                float64
	BoosterSpeedIncrementalSpeed         float64
	BoosterSpeedEnergyUseage             float64
	MaxBoosterSpeed                      float64
	GlideUpForce                         float64
	GlideEnergyUsage                     float64
	GlideSpeed                           float64
	GlideTurnSpeed                       float64
	MaxGlideZRotation                    float64
	GlideZRotationRecoverSpeed           float64
	EnableGlideModeBoosterForceThreshold float64
}

// DefaultPlayer mirrors the shipped player.yaml.
func DefaultPlayer() Player {
	return Player{
		WalkSpeed:                            2,
		CameraRotationSpeed:                  3,
		JumpInitialSpeed:                     5,
		GroundCastLength:                     1.1,
		GroundLayer:                          1,
		MaxEnergy:                            100,
		OnGroundEnergyRecover:                -50,
		BoosterSpeedIncrementalSpeed:         10,
		BoosterSpeedEnergyUseage:             5,
		MaxBoosterSpeed:                      20,
		GlideUpForce:                         9,
		GlideEnergyUsage:                     -1,
		GlideSpeed:                           10,
		GlideTurnSpeed:                       1,
		MaxGlideZRotation:                    30,
		GlideZRotationRecoverSpeed:           30,
		EnableGlideModeBoosterForceThreshold: 3,
	}
}

// Validate rejects configs the controller cannot run with.
func (p Player) Validate() error {
	switch {
	case p.MaxEnergy <= 0:
		return fmt.Errorf("%w: max_energy must be positive", ErrInvalidConfig)
	case p.GroundCastLength <= 0:
		return fmt.Errorf("%w: ground_cast_length must be positive", ErrInvalidConfig)
	case p.GroundLayer == 0:
		return fmt.Errorf("%w: ground_layer selects no layer", ErrInvalidConfig)
	case p.MaxBoosterSpeed < 0:
		return fmt.Errorf("%w: max_booster_speed must not be negative", ErrInvalidConfig)
	case p.MaxGlideZRotation < 0 || p.MaxGlideZRotation > 180:
		return fmt.Errorf("%w: max_glide_z_rotation must be within [0, 180]", ErrInvalidConfig)
	}
	return nil
}
