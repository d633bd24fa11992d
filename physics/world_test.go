package physics

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/glider/component"
)

const stepDT = 0.02

func newFloorWorld(t *testing.T) *World {
	t.Helper()
	w := NewWorld(DefaultGravity)
	if _, err := w.AddPlatform(Platform{
		Min:   mgl64.Vec3{-10, -1, -10},
		Max:   mgl64.Vec3{10, 0, 10},
		Layer: 1,
	}); err != nil {
		t.Fatalf("AddPlatform: %v", err)
	}
	return w
}

func TestAddPlatformRejectsBadBoxes(t *testing.T) {
	w := NewWorld(DefaultGravity)
	tests := []struct {
		name string
		p    Platform
	}{
		{name: "flat", p: Platform{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 0, 1}, Layer: 1}},
		{name: "inverted", p: Platform{Min: mgl64.Vec3{1, 0, 0}, Max: mgl64.Vec3{0, 1, 1}, Layer: 1}},
		{name: "no layer", p: Platform{Min: mgl64.Vec3{0, 0, 0}, Max: mgl64.Vec3{1, 1, 1}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := w.AddPlatform(tc.p); !errors.Is(err, ErrInvalidPlatform) {
				t.Fatalf("expected ErrInvalidPlatform, got %v", err)
			}
		})
	}
	if len(w.Platforms()) != 0 {
		t.Fatalf("expected no platforms, got %d", len(w.Platforms()))
	}
}

func TestRaycastRespectsLengthAndLayer(t *testing.T) {
	w := newFloorWorld(t)
	if _, err := w.AddPlatform(Platform{
		Min:   mgl64.Vec3{20, 0, 0},
		Max:   mgl64.Vec3{22, 2, 2},
		Layer: 4,
	}); err != nil {
		t.Fatalf("AddPlatform: %v", err)
	}

	tests := []struct {
		name   string
		origin mgl64.Vec3
		length float64
		layer  component.LayerMask
		hit    bool
		top    float64
	}{
		{name: "standing", origin: mgl64.Vec3{0, 1, 0}, length: 1.1, layer: 1, hit: true, top: 0},
		{name: "too high", origin: mgl64.Vec3{0, 1.2, 0}, length: 1.1, layer: 1, hit: false},
		{name: "below top", origin: mgl64.Vec3{0, -0.5, 0}, length: 1.1, layer: 1, hit: false},
		{name: "off the edge", origin: mgl64.Vec3{11, 1, 0}, length: 1.1, layer: 1, hit: false},
		{name: "other layer ignored", origin: mgl64.Vec3{21, 3, 1}, length: 1.1, layer: 1, hit: false},
		{name: "other layer selected", origin: mgl64.Vec3{21, 3, 1}, length: 1.1, layer: 4, hit: true, top: 2},
		{name: "combined mask", origin: mgl64.Vec3{21, 3, 1}, length: 1.1, layer: 5, hit: true, top: 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			top, ok := w.Raycast(tc.origin, tc.length, tc.layer)
			if ok != tc.hit {
				t.Fatalf("hit = %v, want %v", ok, tc.hit)
			}
			if ok && top != tc.top {
				t.Fatalf("top = %v, want %v", top, tc.top)
			}
		})
	}
}

func TestUnderVisitsEveryOverlappingPlatform(t *testing.T) {
	w := newFloorWorld(t)
	slab, err := w.AddPlatform(Platform{
		Min:   mgl64.Vec3{-1, 0, -1},
		Max:   mgl64.Vec3{1, 0.5, 1},
		Layer: 2,
	})
	if err != nil {
		t.Fatalf("AddPlatform: %v", err)
	}

	tests := []struct {
		name  string
		x, z  float64
		mask  component.LayerMask
		count int
	}{
		{name: "both", x: 0, z: 0, mask: allLayers, count: 2},
		{name: "floor only", x: 5, z: 5, mask: allLayers, count: 1},
		{name: "masked", x: 0, z: 0, mask: 1, count: 1},
		{name: "outside", x: 50, z: 0, mask: allLayers, count: 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			seen := 0
			w.under(tc.x, tc.z, tc.mask, func(*Platform) { seen++ })
			if seen != tc.count {
				t.Fatalf("visited %d platforms, want %d", seen, tc.count)
			}
		})
	}

	if top, ok := w.support(0, 0, 10); !ok || top != slab.Top() {
		t.Fatalf("support = %v, %v; want slab top %v", top, ok, slab.Top())
	}
	if top, ok := w.support(0, 0, 0.2); !ok || top != 0 {
		t.Fatalf("support below slab = %v, %v; want floor", top, ok)
	}
}

func TestBodyFallsAndRests(t *testing.T) {
	w := newFloorWorld(t)
	b := w.NewBody(mgl64.Vec3{0, 3, 0}, 1)

	landed := false
	for i := 0; i < 200; i++ {
		w.Step(stepDT)
		if b.Grounded(1.1, 1) {
			landed = true
		}
	}
	if !landed {
		t.Fatalf("body never grounded, pos %v", b.Position())
	}
	if got := b.Position().Y(); math.Abs(got-1) > 1e-9 {
		t.Fatalf("resting height = %v, want 1", got)
	}
	// gravity is added after the contact is resolved
	if got := b.Velocity().Y(); math.Abs(got+DefaultGravity*stepDT) > 1e-9 {
		t.Fatalf("resting vy = %v, want %v", got, -DefaultGravity*stepDT)
	}
}

func TestBodyVelocityChangeIsImmediate(t *testing.T) {
	w := newFloorWorld(t)
	b := w.NewBody(mgl64.Vec3{0, 1, 0}, 1)

	b.ApplyForce(mgl64.Vec3{0, 5, 0}, component.ForceVelocityChange)
	if got := b.Velocity().Y(); got != 5 {
		t.Fatalf("vy = %v, want 5", got)
	}

	b.ApplyForce(mgl64.Vec3{0, 10, 0}, component.ForceAcceleration)
	if got := b.Velocity().Y(); got != 5 {
		t.Fatalf("acceleration applied early: vy = %v", got)
	}
	w.Step(stepDT)
	want := 5 + 10*stepDT - DefaultGravity*stepDT
	if got := b.Velocity().Y(); math.Abs(got-want) > 1e-9 {
		t.Fatalf("vy after step = %v, want %v", got, want)
	}
	w.Step(stepDT)
	want -= DefaultGravity * stepDT
	if got := b.Velocity().Y(); math.Abs(got-want) > 1e-9 {
		t.Fatalf("acceleration not cleared: vy = %v, want %v", got, want)
	}
}

func TestBodyBlockedByWall(t *testing.T) {
	w := newFloorWorld(t)
	if _, err := w.AddPlatform(Platform{
		Min:   mgl64.Vec3{2, 0, -10},
		Max:   mgl64.Vec3{3, 5, 10},
		Layer: 1,
	}); err != nil {
		t.Fatalf("AddPlatform: %v", err)
	}
	b := w.NewBody(mgl64.Vec3{0, 1, 0}, 1)
	for i := 0; i < 100; i++ {
		b.SetVelocity(mgl64.Vec3{1.5, b.Velocity().Y(), 0})
		w.Step(stepDT)
	}
	if x := b.Position().X(); x >= 2 {
		t.Fatalf("walked through the wall: x = %v", x)
	}
}

func TestBodyStepsOntoLowLedge(t *testing.T) {
	w := newFloorWorld(t)
	if _, err := w.AddPlatform(Platform{
		Min:   mgl64.Vec3{2, 0, -10},
		Max:   mgl64.Vec3{6, 0.2, 10},
		Layer: 1,
	}); err != nil {
		t.Fatalf("AddPlatform: %v", err)
	}
	b := w.NewBody(mgl64.Vec3{0, 1, 0}, 1)
	for i := 0; i < 100; i++ {
		b.SetVelocity(mgl64.Vec3{2, b.Velocity().Y(), 0})
		w.Step(stepDT)
	}
	if x := b.Position().X(); x < 3 {
		t.Fatalf("blocked by a low ledge: x = %v", x)
	}
	if y := b.Position().Y(); math.Abs(y-1.2) > 1e-9 {
		t.Fatalf("height on ledge = %v, want 1.2", y)
	}
}

func TestSetYawWraps(t *testing.T) {
	w := NewWorld(DefaultGravity)
	b := w.NewBody(mgl64.Vec3{}, 1)
	b.SetYaw(-90)
	if b.Yaw() != 270 {
		t.Fatalf("yaw = %v, want 270", b.Yaw())
	}
	f := b.Forward()
	if math.Abs(f.X()+1) > 1e-9 || math.Abs(f.Z()) > 1e-9 {
		t.Fatalf("forward = %v, want (-1,0,0)", f)
	}
}
