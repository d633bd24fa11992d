package system

import (
	"io"
	"log/slog"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/glider/common"
	"github.com/milk9111/glider/component"
)

type appliedForce struct {
	force mgl64.Vec3
	mode  component.ForceMode
}

// fakeBody applies velocity changes immediately and records every force.
type fakeBody struct {
	pos      mgl64.Vec3
	vel      mgl64.Vec3
	yaw      float64
	grounded bool
	forces   []appliedForce
	casts    []float64
}

func (b *fakeBody) Position() mgl64.Vec3     { return b.pos }
func (b *fakeBody) Velocity() mgl64.Vec3     { return b.vel }
func (b *fakeBody) SetVelocity(v mgl64.Vec3) { b.vel = v }
func (b *fakeBody) Yaw() float64             { return b.yaw }
func (b *fakeBody) SetYaw(deg float64)       { b.yaw = deg }
func (b *fakeBody) Forward() mgl64.Vec3      { return common.Forward(b.yaw) }

func (b *fakeBody) ApplyForce(f mgl64.Vec3, mode component.ForceMode) {
	b.forces = append(b.forces, appliedForce{force: f, mode: mode})
	if mode == component.ForceVelocityChange {
		b.vel = b.vel.Add(f)
	}
}

func (b *fakeBody) Grounded(castLength float64, layer component.LayerMask) bool {
	b.casts = append(b.casts, castLength)
	return b.grounded
}

func (b *fakeBody) lastForce() (appliedForce, bool) {
	if len(b.forces) == 0 {
		return appliedForce{}, false
	}
	return b.forces[len(b.forces)-1], true
}

type fakeObserver struct {
	fractions []float64
	trails    []bool
}

func (o *fakeObserver) EnergyChanged(f float64) { o.fractions = append(o.fractions, f) }
func (o *fakeObserver) TrailsChanged(on bool)   { o.trails = append(o.trails, on) }

type harness struct {
	pc       *PlayerController
	body     *fakeBody
	input    *component.Input
	observer *fakeObserver
	changes  [][2]component.StateID
}

func newHarness(t *testing.T, cfg component.Player, opts ...ControllerOption) *harness {
	t.Helper()
	h := &harness{
		body:     &fakeBody{grounded: true},
		input:    &component.Input{},
		observer: &fakeObserver{},
	}
	opts = append([]ControllerOption{
		WithObserver(h.observer),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithTransitionListener(func(from, to component.StateID) {
			h.changes = append(h.changes, [2]component.StateID{from, to})
		}),
	}, opts...)
	pc, err := NewPlayerController(cfg, h.body, h.input, opts...)
	if err != nil {
		t.Fatalf("NewPlayerController: %v", err)
	}
	h.pc = pc
	return h
}

// frame runs one frame with a single fixed step and clears input edges.
func (h *harness) frame(dt float64) {
	h.pc.OnFrame(dt)
	h.pc.OnFixedStep(dt)
	h.pc.OnLateFrame(dt)
	h.input.JumpPressed = false
	h.input.JumpReleased = false
}

func (h *harness) setAxes(x, z float64) {
	h.input.Horizontal, h.input.RawHorizontal = x, x
	h.input.Vertical, h.input.RawVertical = z, z
}

func (h *harness) enter(t *testing.T, id component.StateID) {
	t.Helper()
	if err := h.pc.fsm.TransitionTo(id); err != nil {
		t.Fatalf("TransitionTo(%v): %v", id, err)
	}
}
