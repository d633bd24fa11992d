package component

import "fmt"

// StateID identifies a player locomotion state. The set is closed.
type StateID int

const (
	// StateNone is returned by a handler that wants to stay in its state.
	StateNone StateID = iota
	StateGroundIdle
	StateGroundWalk
	StateFreeFall
	StateGlide

	stateCount
)

var stateNames = [stateCount]string{
	StateNone:       "none",
	StateGroundIdle: "ground_idle",
	StateGroundWalk: "ground_walk",
	StateFreeFall:   "free_fall",
	StateGlide:      "glide",
}

func (id StateID) String() string {
	if id < 0 || id >= stateCount {
		return fmt.Sprintf("state(%d)", int(id))
	}
	return stateNames[id]
}

// Valid reports whether id names one of the locomotion states.
func (id StateID) Valid() bool {
	return id > StateNone && id < stateCount
}

// Booster is the upward speed bonus charged by holding jump on the ground.
type Booster struct {
	Force float64
}

// PlayerStateContext is the back-reference every state gets at Init. The
// states borrow these handles; the controller owns them.
type PlayerStateContext struct {
	Config   *Player
	Input    *Input
	Body     Body
	Camera   Camera
	Pivot    *MeshPivot
	Energy   *EnergyPool
	Booster  *Booster
	Observer PlayerObserver
}

// PlayerState defines the interface for player state machine states.
// The update hooks return the state to switch to, or StateNone to stay. The
// machine performs the switch after the hook returns, so a state never runs
// after its own Exit.
type PlayerState interface {
	ID() StateID
	Init(ctx *PlayerStateContext)
	Enter(ctx *PlayerStateContext)
	Exit(ctx *PlayerStateContext)
	Update(ctx *PlayerStateContext, dt float64) StateID
	FixedUpdate(ctx *PlayerStateContext, dt float64) StateID
	LateUpdate(ctx *PlayerStateContext, dt float64) StateID
}

// BasePlayerState provides no-op hooks. States embed it and call through to
// it from their own hooks.
type BasePlayerState struct{}

func (BasePlayerState) Init(*PlayerStateContext)  {}
func (BasePlayerState) Enter(*PlayerStateContext) {}
func (BasePlayerState) Exit(*PlayerStateContext)  {}
func (BasePlayerState) Update(*PlayerStateContext, float64) StateID {
	return StateNone
}
func (BasePlayerState) FixedUpdate(*PlayerStateContext, float64) StateID {
	return StateNone
}
func (BasePlayerState) LateUpdate(*PlayerStateContext, float64) StateID {
	return StateNone
}

// PlayerStateMachine owns one instance per state and the active state.
type PlayerStateMachine struct {
	ctx          *PlayerStateContext
	states       [stateCount]PlayerState
	current      PlayerState
	onTransition func(from, to StateID)
}

// NewPlayerStateMachine registers states. Each StateID may appear once.
func NewPlayerStateMachine(states ...PlayerState) (*PlayerStateMachine, error) {
	m := &PlayerStateMachine{}
	for _, s := range states {
		if s == nil {
			continue
		}
		id := s.ID()
		if !id.Valid() {
			return nil, fmt.Errorf("%w: %v", ErrUnknownState, id)
		}
		if m.states[id] != nil {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateState, id)
		}
		m.states[id] = s
	}
	return m, nil
}

// Initialize binds ctx to every registered state exactly once. It must run
// before the first transition. Repeating it with the same ctx is a no-op.
func (m *PlayerStateMachine) Initialize(ctx *PlayerStateContext) error {
	if ctx == nil {
		return ErrNilContext
	}
	if m.ctx == ctx {
		return nil
	}
	if m.ctx != nil {
		return ErrAlreadyBound
	}
	m.ctx = ctx
	for _, s := range m.states {
		if s != nil {
			s.Init(ctx)
		}
	}
	return nil
}

// OnTransition registers fn to be called after every completed transition.
func (m *PlayerStateMachine) OnTransition(fn func(from, to StateID)) {
	m.onTransition = fn
}

// TransitionTo exits the active state (if any) and enters id. Transitioning to
// the active state runs a full Exit and Enter cycle.
func (m *PlayerStateMachine) TransitionTo(id StateID) error {
	if m.ctx == nil {
		return ErrNotInitialized
	}
	if !id.Valid() || m.states[id] == nil {
		return fmt.Errorf("%w: %v", ErrUnknownState, id)
	}
	from := StateNone
	if m.current != nil {
		from = m.current.ID()
		m.current.Exit(m.ctx)
	}
	m.current = m.states[id]
	m.current.Enter(m.ctx)
	if m.onTransition != nil {
		m.onTransition(from, id)
	}
	return nil
}

// Current returns the active state, or StateNone before the first transition.
func (m *PlayerStateMachine) Current() StateID {
	if m == nil || m.current == nil {
		return StateNone
	}
	return m.current.ID()
}

// Update runs the active state's per-frame hook.
func (m *PlayerStateMachine) Update(dt float64) {
	m.dispatch(func(s PlayerState) StateID { return s.Update(m.ctx, dt) })
}

// FixedUpdate runs the active state's physics hook.
func (m *PlayerStateMachine) FixedUpdate(dt float64) {
	m.dispatch(func(s PlayerState) StateID { return s.FixedUpdate(m.ctx, dt) })
}

// LateUpdate runs the active state's post-physics hook.
func (m *PlayerStateMachine) LateUpdate(dt float64) {
	m.dispatch(func(s PlayerState) StateID { return s.LateUpdate(m.ctx, dt) })
}

func (m *PlayerStateMachine) dispatch(hook func(PlayerState) StateID) {
	if m == nil || m.current == nil {
		return
	}
	next := hook(m.current)
	if next == StateNone {
		return
	}
	// a state asking for an unregistered state is a programming error
	if err := m.TransitionTo(next); err != nil {
		panic(fmt.Errorf("player state %v: %w", m.current.ID(), err))
	}
}
