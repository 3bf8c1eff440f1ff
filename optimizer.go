package keyframe

import (
	"errors"
	"fmt"
	"math"

	"github.com/akmonengine/keyframe/animation"
	"github.com/akmonengine/keyframe/skeleton"
	"github.com/akmonengine/keyframe/transform"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	DEFAULT_TRANSLATION_TOLERANCE = 1e-3
	DEFAULT_ROTATION_TOLERANCE    = 0.1 * math.Pi / 180
	DEFAULT_WORKERS               = 1
)

var (
	ErrNilOutput        = errors.New("output animation is nil")
	ErrInvalidAnimation = errors.New("input animation is invalid")
	ErrSkeletonMismatch = errors.New("skeleton joint count does not match animation track count")
)

// Optimizer removes keyframes from a RawAnimation while keeping the rebuilt
// curves within tolerance. Tolerances are adjusted per joint according to
// its position in the skeleton hierarchy.
type Optimizer struct {
	// Maximum joint position error in model space, in distance units.
	// Applies to translation and scale curves, and to the displacement caused
	// by rotation errors at the end of the joint's descendant chain.
	TranslationTolerance float64
	// Maximum rotation error, in radians.
	RotationTolerance float64
	// Number of goroutines used to optimize joints.
	Workers int
}

// NewOptimizer creates an optimizer with default tolerances
func NewOptimizer() Optimizer {
	return Optimizer{
		TranslationTolerance: DEFAULT_TRANSLATION_TOLERANCE,
		RotationTolerance:    DEFAULT_ROTATION_TOLERANCE,
		Workers:              DEFAULT_WORKERS,
	}
}

// Optimize writes into output an animation equivalent to input, within
// tolerances, with redundant keys removed. Output tracks are subsequences of
// the input ones that always retain the first and last key.
// On failure output is reset to an empty animation of default duration.
func (o Optimizer) Optimize(input animation.RawAnimation, skel *skeleton.Skeleton, output *animation.RawAnimation) error {
	if output == nil {
		return ErrNilOutput
	}
	*output = animation.NewRawAnimation(0)

	if err := input.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAnimation, err)
	}
	if skel.NumJoints() != input.NumTracks() {
		return fmt.Errorf("%w: %d joints, %d tracks", ErrSkeletonMismatch, skel.NumJoints(), input.NumTracks())
	}

	h, err := computeHierarchy(skel)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSkeletonMismatch, err)
	}

	tracks := make([]animation.JointTrack, input.NumTracks())
	joints := make([]int, input.NumTracks())
	for i := range joints {
		joints[i] = i
	}

	task(max(DEFAULT_WORKERS, o.Workers), joints, func(joint int) {
		tracks[joint] = o.optimizeTrack(input.Tracks[joint], h, joint)
	})

	output.Duration = input.Duration
	output.Tracks = tracks
	return nil
}

func (o Optimizer) optimizeTrack(track animation.JointTrack, h hierarchy, joint int) animation.JointTrack {
	// A translation is expressed in the parent space, while the joint's own
	// scale is part of its accumulated scale. Using the largest keeps the
	// bound for shrinking joints too.
	vector := vectorMetric{
		tolerance: o.TranslationTolerance,
		scale:     max(h.scale[joint], h.parentScale[joint]),
	}
	rotation := rotationMetric{
		angularTolerance:    o.RotationTolerance,
		positionalTolerance: o.TranslationTolerance,
		radius:              h.extent[joint] * h.parentScale[joint],
	}

	return animation.JointTrack{
		Translations: decimate[mgl64.Vec3](track.Translations, transform.LerpTranslation, vector),
		Rotations:    decimate[mgl64.Quat](track.Rotations, transform.LerpRotation, rotation),
		Scales:       decimate[mgl64.Vec3](track.Scales, transform.LerpScale, vector),
	}
}
