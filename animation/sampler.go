package animation

import (
	"sort"

	"github.com/akmonengine/keyframe/transform"
	"github.com/go-gl/mathgl/mgl64"
)

// Sample evaluates a component curve at time t.
// An empty curve returns identity. Before the first key and after the last
// key the curve is flat. Otherwise the two keys surrounding t are found by
// binary search and interpolated with lerp.
func Sample[V any](keys []Keyframe[V], t float64, identity V, lerp func(a, b V, alpha float64) V) V {
	n := len(keys)
	if n == 0 {
		return identity
	}
	if t <= keys[0].Time {
		return keys[0].Value
	}
	if t >= keys[n-1].Time {
		return keys[n-1].Value
	}

	// First key whose time is not less than t, within (0, n-1].
	i := sort.Search(n, func(i int) bool {
		return !(keys[i].Time < t)
	})
	left, right := keys[i-1], keys[i]
	alpha := (t - left.Time) / (right.Time - left.Time)

	return lerp(left.Value, right.Value, alpha)
}

func SampleTranslation(keys []TranslationKey, t float64) mgl64.Vec3 {
	return Sample(keys, t, transform.IdentityTranslation(), transform.LerpTranslation)
}

func SampleRotation(keys []RotationKey, t float64) mgl64.Quat {
	return Sample(keys, t, transform.IdentityRotation(), transform.LerpRotation)
}

func SampleScale(keys []ScaleKey, t float64) mgl64.Vec3 {
	return Sample(keys, t, transform.IdentityScale(), transform.LerpScale)
}

// SampleTrack composes the three component samples of a joint track at time t
func SampleTrack(track JointTrack, t float64) transform.Transform {
	return transform.Transform{
		Translation: SampleTranslation(track.Translations, t),
		Rotation:    SampleRotation(track.Rotations, t),
		Scale:       SampleScale(track.Scales, t),
	}
}

// SampleAnimation samples every track of anim at time t into out.
// Tracks beyond len(out) are skipped.
func SampleAnimation(anim RawAnimation, t float64, out []transform.Transform) {
	for i, track := range anim.Tracks[:min(len(anim.Tracks), len(out))] {
		out[i] = SampleTrack(track, t)
	}
}
