package prefabs

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/glider/component"
	"gopkg.in/yaml.v3"
)

const (
	PlayerFile = "player.yaml"
	LevelFile  = "level.yaml"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// PlayerSpec is the on-disk form of the player tuning asset.
type PlayerSpec struct {
	Name string `yaml:"name"`

	WalkSpeed           float64 `yaml:"walk_speed"`
	CameraRotationSpeed float64 `yaml:"camera_rotation_speed"`
	JumpInitialSpeed    float64 `yaml:"jump_initial_speed"`
	GroundCastLength    float64 `yaml:"ground_cast_length"`
	GroundLayer         uint    `yaml:"ground_layer"`

	MaxEnergy             float64 `yaml:"max_energy"`
	OnGroundEnergyRecover float64 `yaml:"on_ground_energy_recover"`

	BoosterSpeedIncrementalSpeed         float64 `yaml:"booster_speed_incremental_speed"`
	BoosterSpeedEnergyUsage              float64 `yaml:"booster_speed_energy_usage"`
	MaxBoosterSpeed                      float64 `yaml:"max_booster_speed"`
	EnableGlideModeBoosterForceThreshold float64 `yaml:"enable_glide_mode_booster_force_threshold"`

	GlideUpForce               float64 `yaml:"glide_up_force"`
	GlideEnergyUsage           float64 `yaml:"glide_energy_usage"`
	GlideSpeed                 float64 `yaml:"glide_speed"`
	GlideTurnSpeed             float64 `yaml:"glide_turn_speed"`
	MaxGlideZRotation          float64 `yaml:"max_glide_z_rotation"`
	GlideZRotationRecoverSpeed float64 `yaml:"glide_z_rotation_recover_speed"`
}

// Player converts the asset into a validated controller config.
func (s PlayerSpec) Player() (component.Player, error) {
	p := component.Player{
		WalkSpeed:                            s.WalkSpeed,
		CameraRotationSpeed:                  s.CameraRotationSpeed,
		JumpInitialSpeed:                     s.JumpInitialSpeed,
		GroundCastLength:                     s.GroundCastLength,
		GroundLayer:                          component.LayerMask(s.GroundLayer),
		MaxEnergy:                            s.MaxEnergy,
		OnGroundEnergyRecover:                s.OnGroundEnergyRecover,
		BoosterSpeedIncrementalSpeed:         s.BoosterSpeedIncrementalSpeed,
		BoosterSpeedEnergyUseage:             s.BoosterSpeedEnergyUsage,
		MaxBoosterSpeed:                      s.MaxBoosterSpeed,
		EnableGlideModeBoosterForceThreshold: s.EnableGlideModeBoosterForceThreshold,
		GlideUpForce:                         s.GlideUpForce,
		GlideEnergyUsage:                     s.GlideEnergyUsage,
		GlideSpeed:                           s.GlideSpeed,
		GlideTurnSpeed:                       s.GlideTurnSpeed,
		MaxGlideZRotation:                    s.MaxGlideZRotation,
		GlideZRotationRecoverSpeed:           s.GlideZRotationRecoverSpeed,
	}
	if err := p.Validate(); err != nil {
		return component.Player{}, fmt.Errorf("prefabs: player %q: %w", s.Name, err)
	}
	return p, nil
}

func LoadPlayerSpec() (PlayerSpec, error) {
	return LoadSpec[PlayerSpec](PlayerFile)
}

// LoadPlayer reads player.yaml and converts it.
func LoadPlayer() (component.Player, error) {
	spec, err := LoadPlayerSpec()
	if err != nil {
		return component.Player{}, err
	}
	return spec.Player()
}

type Vec3Spec [3]float64

func (v Vec3Spec) Vec3() mgl64.Vec3 {
	return mgl64.Vec3(v)
}

type PlatformSpec struct {
	Name  string   `yaml:"name"`
	Min   Vec3Spec `yaml:"min"`
	Max   Vec3Spec `yaml:"max"`
	Layer uint     `yaml:"layer"`
}

type SpawnSpec struct {
	Position   Vec3Spec `yaml:"position"`
	Yaw        float64  `yaml:"yaw"`
	HalfHeight float64  `yaml:"half_height"`
}

// LevelSpec describes the static geometry the player moves through.
type LevelSpec struct {
	Name      string         `yaml:"name"`
	Gravity   float64        `yaml:"gravity"`
	FixedStep float64        `yaml:"fixed_step"`
	KillY     float64        `yaml:"kill_y"`
	Spawn     SpawnSpec      `yaml:"spawn"`
	Platforms []PlatformSpec `yaml:"platforms"`
}

func LoadLevelSpec() (LevelSpec, error) {
	return LoadSpec[LevelSpec](LevelFile)
}
