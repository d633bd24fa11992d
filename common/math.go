package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Up is the world up axis. Yaw rotates around it.
var Up = mgl64.Vec3{0, 1, 0}

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// MoveTowards moves current toward target by at most maxDelta.
func MoveTowards(current, target, maxDelta float64) float64 {
	if math.Abs(target-current) <= maxDelta {
		return target
	}
	if target > current {
		return current + maxDelta
	}
	return current - maxDelta
}

// WrapAngle maps degrees into [0, 360).
func WrapAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		return 0
	}
	return deg
}

// SignedAngle maps degrees into (-180, 180].
func SignedAngle(deg float64) float64 {
	deg = WrapAngle(deg)
	if deg > 180 {
		deg -= 360
	}
	return deg
}

// ClampAngle clamps an angle in degrees to [from, to] after normalizing it to
// (-180, 180]. The result is returned in [0, 360) so it can be stored back as
// a local euler angle.
func ClampAngle(deg, from, to float64) float64 {
	return WrapAngle(mgl64.Clamp(SignedAngle(deg), from, to))
}

// Normalize returns v scaled to unit length, or the zero vector when v has no
// length.
func Normalize(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l < 1e-9 {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / l)
}

// YawRotate rotates v around the up axis by yaw degrees.
func YawRotate(v mgl64.Vec3, yaw float64) mgl64.Vec3 {
	return mgl64.QuatRotate(mgl64.DegToRad(yaw), Up).Rotate(v)
}

// YawOf returns the yaw in degrees that faces along dir on the horizontal plane.
func YawOf(dir mgl64.Vec3) float64 {
	return mgl64.RadToDeg(math.Atan2(dir.X(), dir.Z()))
}

// Forward returns the unit facing vector for yaw degrees.
func Forward(yaw float64) mgl64.Vec3 {
	r := mgl64.DegToRad(yaw)
	return mgl64.Vec3{math.Sin(r), 0, math.Cos(r)}
}
