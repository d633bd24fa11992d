package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/glider/component"
	"golang.org/x/image/colornames"
)

const (
	barWidth  = 240
	barHeight = 14
	barMargin = 16
)

// HUD is the controller's observer: it shows the energy fill and tells the
// scene when to draw glide trails.
type HUD struct {
	fraction float64
	trails   bool
}

var _ component.PlayerObserver = (*HUD)(nil)

func NewHUD() *HUD {
	return &HUD{fraction: 1}
}

func (h *HUD) EnergyChanged(fraction float64) {
	h.fraction = fraction
}

func (h *HUD) TrailsChanged(enabled bool) {
	h.trails = enabled
}

func (h *HUD) Trails() bool {
	return h.trails
}

func (h *HUD) Fraction() float64 {
	return h.fraction
}

func (h *HUD) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	x := float32(barMargin)
	y := float32(b.Dy() - barMargin - barHeight)

	vector.FillRect(screen, x, y, barWidth, barHeight, color.RGBA{A: 160}, false)
	fill := colornames.Deepskyblue
	if h.fraction < 0.25 {
		fill = colornames.Orangered
	}
	vector.FillRect(screen, x, y, float32(barWidth*h.fraction), barHeight, fill, false)
	vector.StrokeRect(screen, x, y, barWidth, barHeight, 1, colornames.White, false)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("ENERGY %3.0f%%", h.fraction*100), barMargin, int(y)-16)
}
