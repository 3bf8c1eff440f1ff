package transform

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Transform represents a joint local transform: translation, rotation and scale
type Transform struct {
	Translation mgl64.Vec3
	Rotation    mgl64.Quat
	Scale       mgl64.Vec3
}

// Identity creates an identity transform
func Identity() Transform {
	return Transform{
		Translation: IdentityTranslation(),
		Rotation:    IdentityRotation(),
		Scale:       IdentityScale(),
	}
}

func IdentityTranslation() mgl64.Vec3 {
	return mgl64.Vec3{0, 0, 0}
}

func IdentityRotation() mgl64.Quat {
	return mgl64.QuatIdent()
}

func IdentityScale() mgl64.Vec3 {
	return mgl64.Vec3{1, 1, 1}
}

// MaxScale collapses a possibly non-uniform scale to its largest absolute axis
func MaxScale(scale mgl64.Vec3) float64 {
	return max(math.Abs(scale.X()), math.Abs(scale.Y()), math.Abs(scale.Z()))
}

