package animation

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// DefaultDuration is the duration of a default constructed animation, in seconds
const DefaultDuration = 1.0

var (
	ErrInvalidDuration = errors.New("animation duration must be positive and finite")
	ErrUnsortedKeys    = errors.New("keyframe times must be strictly increasing")
	ErrKeyOutOfRange   = errors.New("keyframe time out of [0, duration]")
)

// Keyframe is a value of a component curve at a given time
type Keyframe[V any] struct {
	Time  float64
	Value V
}

type TranslationKey = Keyframe[mgl64.Vec3]
type RotationKey = Keyframe[mgl64.Quat]
type ScaleKey = Keyframe[mgl64.Vec3]

// JointTrack holds the three independent component curves of a joint.
// Curves may have different lengths and key times.
type JointTrack struct {
	Translations []TranslationKey
	Rotations    []RotationKey
	Scales       []ScaleKey
}

// KeyCount returns the number of keys of all components
func (track JointTrack) KeyCount() int {
	return len(track.Translations) + len(track.Rotations) + len(track.Scales)
}

// RawAnimation is an offline, editable animation: one JointTrack per skeleton
// joint, in skeleton joint order.
type RawAnimation struct {
	Duration float64
	Tracks   []JointTrack
}

// NewRawAnimation creates an animation with the default duration and
// numTracks empty tracks
func NewRawAnimation(numTracks int) RawAnimation {
	return RawAnimation{
		Duration: DefaultDuration,
		Tracks:   make([]JointTrack, numTracks),
	}
}

func (anim RawAnimation) NumTracks() int {
	return len(anim.Tracks)
}

// KeyCount returns the number of keys of every track and component
func (anim RawAnimation) KeyCount() int {
	count := 0
	for _, track := range anim.Tracks {
		count += track.KeyCount()
	}
	return count
}

// Validate checks that the duration is positive and that every component
// curve has strictly increasing times within [0, duration].
func (anim RawAnimation) Validate() error {
	if !(anim.Duration > 0) || math.IsInf(anim.Duration, 1) {
		return fmt.Errorf("%w: %v", ErrInvalidDuration, anim.Duration)
	}

	for i, track := range anim.Tracks {
		if err := validateKeys(track.Translations, anim.Duration); err != nil {
			return fmt.Errorf("track %d translations: %w", i, err)
		}
		if err := validateKeys(track.Rotations, anim.Duration); err != nil {
			return fmt.Errorf("track %d rotations: %w", i, err)
		}
		if err := validateKeys(track.Scales, anim.Duration); err != nil {
			return fmt.Errorf("track %d scales: %w", i, err)
		}
	}

	return nil
}

// IsValid is the predicate form of Validate
func (anim RawAnimation) IsValid() bool {
	return anim.Validate() == nil
}

func validateKeys[V any](keys []Keyframe[V], duration float64) error {
	previous := math.Inf(-1)
	for i, key := range keys {
		// Negated comparisons also reject NaN.
		if !(key.Time >= 0 && key.Time <= duration) {
			return fmt.Errorf("%w: key %d at %v", ErrKeyOutOfRange, i, key.Time)
		}
		if !(key.Time > previous) {
			return fmt.Errorf("%w: key %d at %v", ErrUnsortedKeys, i, key.Time)
		}
		previous = key.Time
	}
	return nil
}
