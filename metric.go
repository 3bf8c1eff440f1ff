package keyframe

import (
	"math"

	"github.com/akmonengine/keyframe/transform"
	"github.com/go-gl/mathgl/mgl64"
)

// vectorMetric compares translations or scales. The distance is amplified by
// the scale accumulated down the hierarchy, as a local error of 1 unit moves
// the joint by that much in model space.
type vectorMetric struct {
	tolerance float64
	scale     float64
}

func (m vectorMetric) distance(original, reconstructed mgl64.Vec3) float64 {
	return reconstructed.Sub(original).Len() * m.scale
}

func (m vectorMetric) within(original, reconstructed mgl64.Vec3) bool {
	return m.distance(original, reconstructed) <= m.tolerance
}

// rotationMetric bounds both the angle between two rotations and the
// displacement this angle causes at the farthest descendant of the joint.
type rotationMetric struct {
	angularTolerance    float64
	positionalTolerance float64
	// Lever arm length in model space units.
	radius float64
}

func (m rotationMetric) distance(original, reconstructed mgl64.Quat) float64 {
	return transform.AngleBetween(original, reconstructed)
}

func (m rotationMetric) within(original, reconstructed mgl64.Quat) bool {
	angle := m.distance(original, reconstructed)
	if angle > m.angularTolerance {
		return false
	}

	return chord(angle, m.radius) <= m.positionalTolerance
}

// chord is the distance between a point at radius from the rotation center and
// the same point rotated by angle.
func chord(angle, radius float64) float64 {
	if radius == 0 {
		return 0
	}
	return 2 * radius * math.Sin(angle/2)
}
