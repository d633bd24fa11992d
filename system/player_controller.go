package system

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/milk9111/glider/component"
)

var (
	ErrNilBody  = errors.New("player controller: body is nil")
	ErrNilInput = errors.New("player controller: input is nil")
)

// PlayerController owns the locomotion state machine and everything the
// states mutate: the energy pool, the booster charge and the mesh pivot. The
// host loop drives it through OnFrame, OnFixedStep and OnLateFrame.
type PlayerController struct {
	cfg      component.Player
	body     component.Body
	input    *component.Input
	camera   component.Camera
	pivot    *component.MeshPivot
	observer component.PlayerObserver
	energy   *component.EnergyPool
	booster  component.Booster
	fsm      *component.PlayerStateMachine
	ctx      component.PlayerStateContext

	logger    *slog.Logger
	listeners []func(from, to component.StateID)
}

type ControllerOption func(*PlayerController)

// WithCamera makes movement input relative to cam's yaw.
func WithCamera(cam component.Camera) ControllerOption {
	return func(pc *PlayerController) { pc.camera = cam }
}

// WithObserver sends energy and trail updates to o.
func WithObserver(o component.PlayerObserver) ControllerOption {
	return func(pc *PlayerController) { pc.observer = o }
}

func WithLogger(l *slog.Logger) ControllerOption {
	return func(pc *PlayerController) { pc.logger = l }
}

// WithTransitionListener calls fn after every state change.
func WithTransitionListener(fn func(from, to component.StateID)) ControllerOption {
	return func(pc *PlayerController) {
		if fn != nil {
			pc.listeners = append(pc.listeners, fn)
		}
	}
}

// NewPlayerController validates cfg, binds the states and enters GroundIdle.
func NewPlayerController(cfg component.Player, body component.Body, input *component.Input, opts ...ControllerOption) (*PlayerController, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("player controller: %w", err)
	}
	if body == nil {
		return nil, ErrNilBody
	}
	if input == nil {
		return nil, ErrNilInput
	}

	pc := &PlayerController{
		cfg:    cfg,
		body:   body,
		input:  input,
		camera: component.FixedCamera(0),
	}
	for _, opt := range opts {
		opt(pc)
	}
	pc.pivot = &component.MeshPivot{}
	if pc.observer == nil {
		pc.observer = component.NopObserver{}
	}
	if pc.logger == nil {
		pc.logger = slog.Default()
	}

	energy, err := component.NewEnergyPool(cfg.MaxEnergy)
	if err != nil {
		return nil, fmt.Errorf("player controller: %w", err)
	}
	energy.OnChange(pc.observer.EnergyChanged)
	pc.energy = energy

	// one instance per state per controller; states cache transient data
	fsm, err := component.NewPlayerStateMachine(
		&groundIdleState{},
		&groundWalkState{},
		&freeFallState{},
		&glideState{},
	)
	if err != nil {
		return nil, fmt.Errorf("player controller: %w", err)
	}
	fsm.OnTransition(pc.transitioned)
	pc.fsm = fsm

	pc.ctx = component.PlayerStateContext{
		Config:   &pc.cfg,
		Input:    pc.input,
		Body:     pc.body,
		Camera:   pc.camera,
		Pivot:    pc.pivot,
		Energy:   pc.energy,
		Booster:  &pc.booster,
		Observer: pc.observer,
	}
	if err := fsm.Initialize(&pc.ctx); err != nil {
		return nil, fmt.Errorf("player controller: %w", err)
	}

	pc.observer.EnergyChanged(pc.energy.Fraction())
	pc.observer.TrailsChanged(false)
	if err := fsm.TransitionTo(component.StateGroundIdle); err != nil {
		return nil, fmt.Errorf("player controller: %w", err)
	}
	return pc, nil
}

func (pc *PlayerController) transitioned(from, to component.StateID) {
	pc.logger.Debug("player state", "from", from.String(), "to", to.String(),
		"energy", pc.energy.Current(), "booster", pc.booster.Force)
	for _, fn := range pc.listeners {
		fn(from, to)
	}
}

// OnFrame runs the variable-timestep phase: input, facing and transitions.
func (pc *PlayerController) OnFrame(dt float64) {
	pc.fsm.Update(dt)
}

// OnFixedStep runs once per physics step, before the step is simulated.
func (pc *PlayerController) OnFixedStep(dt float64) {
	pc.fsm.FixedUpdate(dt)
}

// OnLateFrame runs after every physics step of the frame.
func (pc *PlayerController) OnLateFrame(dt float64) {
	pc.fsm.LateUpdate(dt)
}

func (pc *PlayerController) State() component.StateID {
	return pc.fsm.Current()
}

func (pc *PlayerController) Energy() *component.EnergyPool {
	return pc.energy
}

func (pc *PlayerController) BoosterForce() float64 {
	return pc.booster.Force
}

func (pc *PlayerController) Pivot() *component.MeshPivot {
	return pc.pivot
}

func (pc *PlayerController) Body() component.Body {
	return pc.body
}

func (pc *PlayerController) Config() component.Player {
	return pc.cfg
}
