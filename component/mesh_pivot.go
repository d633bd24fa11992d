package component

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/glider/common"
)

// MeshPivot is the cosmetic child transform the glide banks. Euler angles are
// local, in degrees, and read back in [0, 360).
type MeshPivot struct {
	euler mgl64.Vec3
}

// Euler returns the local euler angles.
func (p *MeshPivot) Euler() mgl64.Vec3 {
	return p.euler
}

// SetEuler overwrites the local euler angles.
func (p *MeshPivot) SetEuler(e mgl64.Vec3) {
	p.euler = mgl64.Vec3{common.WrapAngle(e[0]), common.WrapAngle(e[1]), common.WrapAngle(e[2])}
}

// Roll returns the roll in (-180, 180].
func (p *MeshPivot) Roll() float64 {
	return common.SignedAngle(p.euler[2])
}
