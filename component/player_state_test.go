package component

import (
	"errors"
	"fmt"
	"testing"
)

type recordingState struct {
	BasePlayerState
	id    StateID
	log   *[]string
	next  StateID
	inits int
	// active is set between Enter and Exit
	active bool
}

func (s *recordingState) ID() StateID { return s.id }

func (s *recordingState) Init(ctx *PlayerStateContext) {
	s.BasePlayerState.Init(ctx)
	s.inits++
}

func (s *recordingState) Enter(ctx *PlayerStateContext) {
	s.BasePlayerState.Enter(ctx)
	s.active = true
	*s.log = append(*s.log, "enter:"+s.id.String())
}

func (s *recordingState) Exit(ctx *PlayerStateContext) {
	s.BasePlayerState.Exit(ctx)
	s.active = false
	*s.log = append(*s.log, "exit:"+s.id.String())
}

func (s *recordingState) Update(ctx *PlayerStateContext, dt float64) StateID {
	if !s.active {
		*s.log = append(*s.log, "update_after_exit:"+s.id.String())
	}
	*s.log = append(*s.log, "update:"+s.id.String())
	next := s.next
	s.next = StateNone
	return next
}

func newRecordingMachine(t *testing.T) (*PlayerStateMachine, map[StateID]*recordingState, *[]string) {
	t.Helper()
	log := &[]string{}
	states := map[StateID]*recordingState{}
	var list []PlayerState
	for _, id := range []StateID{StateGroundIdle, StateGroundWalk, StateFreeFall, StateGlide} {
		s := &recordingState{id: id, log: log}
		states[id] = s
		list = append(list, s)
	}
	m, err := NewPlayerStateMachine(list...)
	if err != nil {
		t.Fatalf("NewPlayerStateMachine: %v", err)
	}
	return m, states, log
}

func TestPlayerStateMachineRequiresInitialize(t *testing.T) {
	m, _, _ := newRecordingMachine(t)
	if err := m.TransitionTo(StateGroundIdle); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("expected ErrNotInitialized, got %v", err)
	}
	if err := m.Initialize(nil); !errors.Is(err, ErrNilContext) {
		t.Fatalf("expected ErrNilContext, got %v", err)
	}
	// no active state: dispatch is a no-op
	m.Update(0.1)
	if m.Current() != StateNone {
		t.Fatalf("expected no state, got %v", m.Current())
	}
}

func TestPlayerStateMachineInitBindsOnce(t *testing.T) {
	m, states, _ := newRecordingMachine(t)
	ctx := &PlayerStateContext{}
	if err := m.Initialize(ctx); err != nil {
		t.Fatal(err)
	}
	if err := m.Initialize(ctx); err != nil {
		t.Fatal(err)
	}
	if err := m.Initialize(&PlayerStateContext{}); !errors.Is(err, ErrAlreadyBound) {
		t.Fatalf("expected ErrAlreadyBound for a second context, got %v", err)
	}
	for id, s := range states {
		if s.inits != 1 {
			t.Fatalf("%v: expected 1 Init, got %d", id, s.inits)
		}
	}
}

func TestPlayerStateMachineTransitions(t *testing.T) {
	tests := []struct {
		name    string
		start   StateID
		request StateID
		want    []string
	}{
		{"idle_to_walk", StateGroundIdle, StateGroundWalk, []string{"enter:ground_idle", "update:ground_idle", "exit:ground_idle", "enter:ground_walk"}},
		{"same_state_cycles", StateGlide, StateGlide, []string{"enter:glide", "update:glide", "exit:glide", "enter:glide"}},
		{"stay", StateFreeFall, StateNone, []string{"enter:free_fall", "update:free_fall"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, states, log := newRecordingMachine(t)
			if err := m.Initialize(&PlayerStateContext{}); err != nil {
				t.Fatal(err)
			}
			if err := m.TransitionTo(tt.start); err != nil {
				t.Fatal(err)
			}
			states[tt.start].next = tt.request
			m.Update(1.0 / 60)

			if fmt.Sprint(*log) != fmt.Sprint(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, *log)
			}
			active := 0
			for _, s := range states {
				if s.active {
					active++
				}
			}
			if active != 1 {
				t.Fatalf("expected exactly one active state, got %d", active)
			}
		})
	}
}

func TestPlayerStateMachineReportsTransitions(t *testing.T) {
	m, states, _ := newRecordingMachine(t)
	_ = m.Initialize(&PlayerStateContext{})
	var got [][2]StateID
	m.OnTransition(func(from, to StateID) { got = append(got, [2]StateID{from, to}) })
	_ = m.TransitionTo(StateGroundIdle)
	states[StateGroundIdle].next = StateFreeFall
	m.Update(0.02)
	if len(got) != 2 || got[0] != [2]StateID{StateNone, StateGroundIdle} || got[1] != [2]StateID{StateGroundIdle, StateFreeFall} {
		t.Fatalf("unexpected transitions %v", got)
	}
}

func TestPlayerStateMachineRejectsUnknownStates(t *testing.T) {
	if _, err := NewPlayerStateMachine(&recordingState{id: StateID(42), log: &[]string{}}); !errors.Is(err, ErrUnknownState) {
		t.Fatalf("expected ErrUnknownState, got %v", err)
	}
	a := &recordingState{id: StateGlide, log: &[]string{}}
	b := &recordingState{id: StateGlide, log: &[]string{}}
	if _, err := NewPlayerStateMachine(a, b); !errors.Is(err, ErrDuplicateState) {
		t.Fatalf("expected ErrDuplicateState, got %v", err)
	}

	m, err := NewPlayerStateMachine(&recordingState{id: StateGroundIdle, log: &[]string{}})
	if err != nil {
		t.Fatal(err)
	}
	_ = m.Initialize(&PlayerStateContext{})
	if err := m.TransitionTo(StateGlide); !errors.Is(err, ErrUnknownState) {
		t.Fatalf("expected ErrUnknownState for unregistered state, got %v", err)
	}
}

func TestPlayerStateMachinePanicsOnUnknownRequest(t *testing.T) {
	m, states, _ := newRecordingMachine(t)
	_ = m.Initialize(&PlayerStateContext{})
	_ = m.TransitionTo(StateGroundIdle)
	states[StateGroundIdle].next = StateID(99)

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrUnknownState) {
			t.Fatalf("expected panic wrapping ErrUnknownState, got %v", r)
		}
	}()
	m.Update(0.02)
}

func TestStateIDString(t *testing.T) {
	if StateGlide.String() != "glide" || StateID(-3).String() != "state(-3)" {
		t.Fatalf("unexpected names %q %q", StateGlide.String(), StateID(-3).String())
	}
}
