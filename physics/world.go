package physics

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/glider/component"
)

const (
	// DefaultGravity is standard earth gravity in m/s².
	DefaultGravity = 9.81

	// stepHeight is the tallest ledge a body climbs without being blocked.
	stepHeight = 0.3

	// resting tolerance when picking a support surface under a falling body
	supportEpsilon = 1e-6
)

var allLayers = component.LayerMask(cp.ALL_CATEGORIES)

var ErrInvalidPlatform = errors.New("physics: invalid platform")

// Platform is an axis-aligned block of level geometry. Bodies stand on its top
// face; its sides block horizontal movement.
type Platform struct {
	Min   mgl64.Vec3
	Max   mgl64.Vec3
	Layer component.LayerMask
}

// Top is the height of the walkable face.
func (p *Platform) Top() float64 {
	return p.Max.Y()
}

// World simulates player bodies against static platforms. Platform footprints
// (the x,z rectangle of each block) are indexed in a chipmunk space so the
// probes only consider blocks directly under a point, filtered by layer.
type World struct {
	space     *cp.Space
	gravity   float64
	platforms []*Platform
	bodies    []*Body
}

func NewWorld(gravity float64) *World {
	return &World{
		space:   cp.NewSpace(),
		gravity: gravity,
	}
}

func (w *World) Gravity() float64 {
	return w.gravity
}

// AddPlatform indexes a block. Min must be strictly below Max on every axis
// and the block must sit on at least one layer.
func (w *World) AddPlatform(p Platform) (*Platform, error) {
	if p.Min.X() >= p.Max.X() || p.Min.Y() >= p.Max.Y() || p.Min.Z() >= p.Max.Z() {
		return nil, fmt.Errorf("%w: min %v max %v", ErrInvalidPlatform, p.Min, p.Max)
	}
	if p.Layer == 0 {
		return nil, fmt.Errorf("%w: no layer", ErrInvalidPlatform)
	}
	plat := &p
	bb := cp.BB{L: p.Min.X(), B: p.Min.Z(), R: p.Max.X(), T: p.Max.Z()}
	shape := cp.NewBox2(w.space.StaticBody, bb, 0)
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, uint(p.Layer), cp.ALL_CATEGORIES))
	shape.UserData = plat
	w.space.AddShape(shape)
	w.platforms = append(w.platforms, plat)
	return plat, nil
}

func (w *World) Platforms() []*Platform {
	return w.platforms
}

// NewBody adds a capsule-like body centred at pos. halfHeight is the distance
// from the centre to the feet.
func (w *World) NewBody(pos mgl64.Vec3, halfHeight float64) *Body {
	b := &Body{world: w, pos: pos, halfHeight: halfHeight}
	w.bodies = append(w.bodies, b)
	return b
}

// Step advances every body by dt.
func (w *World) Step(dt float64) {
	for _, b := range w.bodies {
		b.step(dt)
	}
}

// under calls fn for each platform whose footprint contains (x, z) and whose
// layer intersects mask.
func (w *World) under(x, z float64, mask component.LayerMask, fn func(*Platform)) {
	pt := cp.Vector{X: x, Y: z}
	filter := cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, uint(mask))
	w.space.BBQuery(cp.NewBBForCircle(pt, 0), filter, func(shape *cp.Shape, _ interface{}) {
		if shape.PointQuery(pt).Distance > 0 {
			return
		}
		if p, ok := shape.UserData.(*Platform); ok {
			fn(p)
		}
	}, nil)
}

// Raycast casts straight down from origin for length units and reports the
// height of the first platform top on the given layers.
func (w *World) Raycast(origin mgl64.Vec3, length float64, layer component.LayerMask) (float64, bool) {
	best, hit := 0.0, false
	w.under(origin.X(), origin.Z(), layer, func(p *Platform) {
		top := p.Top()
		if top > origin.Y() || top < origin.Y()-length {
			return
		}
		if !hit || top > best {
			best, hit = top, true
		}
	})
	return best, hit
}

// support returns the highest top under (x, z) that is not above maxTop.
func (w *World) support(x, z, maxTop float64) (float64, bool) {
	best, hit := 0.0, false
	w.under(x, z, allLayers, func(p *Platform) {
		top := p.Top()
		if top > maxTop+supportEpsilon {
			return
		}
		if !hit || top > best {
			best, hit = top, true
		}
	})
	return best, hit
}

// blocked reports whether a body whose feet are at foot and head at head would
// overlap a block side at (x, z).
func (w *World) blocked(x, z, foot, head float64) bool {
	hit := false
	w.under(x, z, allLayers, func(p *Platform) {
		if p.Top() > foot+stepHeight && p.Min.Y() < head {
			hit = true
		}
	})
	return hit
}
