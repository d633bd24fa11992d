package render

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/glider/common"
	"github.com/milk9111/glider/physics"
	"golang.org/x/image/colornames"
)

const (
	defaultScale = 12.0 // pixels per metre
	trailLength  = 90
	playerRadius = 6.0
	wingSpan     = 18.0
)

// Scene draws a top-down map centred on the player, +z pointing up the screen.
type Scene struct {
	scale float64
	trail []mgl64.Vec3
}

func NewScene() *Scene {
	return &Scene{scale: defaultScale}
}

// Zoom multiplies the map scale, keeping it within sane bounds.
func (s *Scene) Zoom(f float64) {
	s.scale = mgl64.Clamp(s.scale*f, 2, 80)
}

// Track records the player position while trails are on and lets the trail
// fade out otherwise.
func (s *Scene) Track(pos mgl64.Vec3, trails bool) {
	if trails {
		s.trail = append(s.trail, pos)
		if len(s.trail) > trailLength {
			s.trail = s.trail[len(s.trail)-trailLength:]
		}
		return
	}
	if len(s.trail) > 0 {
		s.trail = s.trail[1:]
	}
}

// View is what the scene needs from the simulation for one frame.
type View struct {
	World     *physics.World
	Position  mgl64.Vec3
	Yaw       float64
	Roll      float64
	CameraYaw float64
	Grounded  bool
}

func (s *Scene) Draw(screen *ebiten.Image, v View) {
	screen.Fill(colornames.Midnightblue)
	b := screen.Bounds()
	cx, cy := float64(b.Dx())/2, float64(b.Dy())/2
	project := func(p mgl64.Vec3) (float32, float32) {
		return float32(cx + (p.X()-v.Position.X())*s.scale), float32(cy - (p.Z()-v.Position.Z())*s.scale)
	}

	if v.World != nil {
		for _, p := range v.World.Platforms() {
			x0, y0 := project(mgl64.Vec3{p.Min.X(), 0, p.Max.Z()})
			x1, y1 := project(mgl64.Vec3{p.Max.X(), 0, p.Min.Z()})
			vector.FillRect(screen, x0, y0, x1-x0, y1-y0, heightColor(p.Top()), false)
			vector.StrokeRect(screen, x0, y0, x1-x0, y1-y0, 1, colornames.Darkslategray, false)
		}
	}

	for i := 1; i < len(s.trail); i++ {
		ax, ay := project(s.trail[i-1])
		bx, by := project(s.trail[i])
		a := uint8(255 * i / len(s.trail))
		vector.StrokeLine(screen, ax, ay, bx, by, 2, color.NRGBA{R: 0xe0, G: 0xf8, B: 0xff, A: a}, true)
	}

	px, py := project(v.Position)
	// shadow grows with height above the ground plane
	shadow := float32(playerRadius * (1 + math.Max(v.Position.Y()-1, 0)*0.05))
	vector.FillCircle(screen, px+3, py+3, shadow, color.NRGBA{A: 90}, true)

	body := colornames.Gold
	if !v.Grounded {
		body = colornames.Orange
	}
	vector.FillCircle(screen, px, py, playerRadius, body, true)

	fwd := common.Forward(v.Yaw)
	vector.StrokeLine(screen, px, py, px+float32(fwd.X()*playerRadius*2), py-float32(fwd.Z()*playerRadius*2), 2, colornames.White, true)

	// wings foreshorten as the mesh banks
	right := common.Forward(v.Yaw + 90).Mul(wingSpan / 2 * math.Cos(mgl64.DegToRad(v.Roll)))
	vector.StrokeLine(screen,
		px-float32(right.X()), py+float32(right.Z()),
		px+float32(right.X()), py-float32(right.Z()),
		3, colornames.Lightgrey, true)

	cam := common.Forward(v.CameraYaw)
	vector.StrokeLine(screen, float32(cx), float32(cy),
		float32(cx+cam.X()*40), float32(cy-cam.Z()*40), 1, color.NRGBA{R: 0x80, G: 0xff, B: 0x80, A: 0x80}, true)
}

func heightColor(top float64) color.Color {
	t := mgl64.Clamp(top/8, 0, 1)
	return color.NRGBA{
		R: uint8(common.Lerp(0x2e, 0x9a, t)),
		G: uint8(common.Lerp(0x5e, 0xb8, t)),
		B: uint8(common.Lerp(0x3a, 0x8c, t)),
		A: 0xff,
	}
}
