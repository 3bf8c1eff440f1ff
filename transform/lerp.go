package transform

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// The functions below are the interpolation policy shared by offline tools and
// the runtime sampler. Both sides must call them so curve values agree
// bit for bit at any query time.

// LerpTranslation linearly interpolates two translations
func LerpTranslation(a, b mgl64.Vec3, alpha float64) mgl64.Vec3 {
	return lerpVec3(a, b, alpha)
}

// LerpScale linearly interpolates two scales
func LerpScale(a, b mgl64.Vec3, alpha float64) mgl64.Vec3 {
	return lerpVec3(a, b, alpha)
}

// LerpRotation interpolates two rotations along the shortest path, then
// renormalizes the result (nlerp). b and -b are the same rotation, so b is
// negated when the quaternions lie in opposite hemispheres.
func LerpRotation(a, b mgl64.Quat, alpha float64) mgl64.Quat {
	if a.Dot(b) < 0 {
		b = b.Scale(-1)
	}

	return NormalizeQuat(mgl64.Quat{
		W: (b.W-a.W)*alpha + a.W,
		V: lerpVec3(a.V, b.V, alpha),
	})
}

// NormalizeQuat always divides by the length, unlike mgl64's Normalize which
// returns the input untouched when its length is within epsilon of 1.
func NormalizeQuat(q mgl64.Quat) mgl64.Quat {
	length := q.Len()
	if length == 0 {
		return mgl64.QuatIdent()
	}

	return mgl64.Quat{W: q.W / length, V: mgl64.Vec3{q.V[0] / length, q.V[1] / length, q.V[2] / length}}
}

// AngleBetween returns the angle in radians of the rotation taking a to b.
// atan2 keeps precision for tiny angles, where acos(|dot|) is ill conditioned.
func AngleBetween(a, b mgl64.Quat) float64 {
	diff := a.Conjugate().Mul(b)
	return 2 * math.Atan2(diff.V.Len(), math.Abs(diff.W))
}

func lerpVec3(a, b mgl64.Vec3, alpha float64) mgl64.Vec3 {
	return mgl64.Vec3{
		(b[0]-a[0])*alpha + a[0],
		(b[1]-a[1])*alpha + a[1],
		(b[2]-a[2])*alpha + a[2],
	}
}
