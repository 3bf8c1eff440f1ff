package animation

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestNewRawAnimation(t *testing.T) {
	anim := NewRawAnimation(3)
	if anim.Duration != DefaultDuration {
		t.Errorf("Duration = %v, want %v", anim.Duration, DefaultDuration)
	}
	if anim.NumTracks() != 3 {
		t.Errorf("NumTracks() = %d, want 3", anim.NumTracks())
	}
	if err := anim.Validate(); err != nil {
		t.Errorf("empty animation should be valid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		anim    RawAnimation
		wantErr error
	}{
		{
			name:    "negative duration",
			anim:    RawAnimation{Duration: -1},
			wantErr: ErrInvalidDuration,
		},
		{
			name:    "zero duration",
			anim:    RawAnimation{Duration: 0, Tracks: make([]JointTrack, 1)},
			wantErr: ErrInvalidDuration,
		},
		{
			name:    "NaN duration",
			anim:    RawAnimation{Duration: math.NaN()},
			wantErr: ErrInvalidDuration,
		},
		{
			name:    "infinite duration",
			anim:    RawAnimation{Duration: math.Inf(1)},
			wantErr: ErrInvalidDuration,
		},
		{
			name: "sorted keys",
			anim: RawAnimation{Duration: 1, Tracks: []JointTrack{{
				Translations: []TranslationKey{{Time: 0}, {Time: 0.5}, {Time: 1}},
				Rotations:    []RotationKey{{Time: 0, Value: mgl64.QuatIdent()}},
			}}},
		},
		{
			name: "equal times",
			anim: RawAnimation{Duration: 1, Tracks: []JointTrack{{
				Translations: []TranslationKey{{Time: 0}, {Time: 0.5}, {Time: 0.5}},
			}}},
			wantErr: ErrUnsortedKeys,
		},
		{
			name: "decreasing times",
			anim: RawAnimation{Duration: 1, Tracks: []JointTrack{{}, {
				Rotations: []RotationKey{{Time: 0.6}, {Time: 0.2}},
			}}},
			wantErr: ErrUnsortedKeys,
		},
		{
			name: "key after duration",
			anim: RawAnimation{Duration: 1, Tracks: []JointTrack{{
				Scales: []ScaleKey{{Time: 0}, {Time: 1.5}},
			}}},
			wantErr: ErrKeyOutOfRange,
		},
		{
			name: "negative key time",
			anim: RawAnimation{Duration: 1, Tracks: []JointTrack{{
				Scales: []ScaleKey{{Time: -0.1}},
			}}},
			wantErr: ErrKeyOutOfRange,
		},
		{
			name: "NaN key time",
			anim: RawAnimation{Duration: 1, Tracks: []JointTrack{{
				Translations: []TranslationKey{{Time: math.NaN()}},
			}}},
			wantErr: ErrKeyOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.anim.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
			} else if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}

			if tt.anim.IsValid() != (tt.wantErr == nil) {
				t.Errorf("IsValid() = %v, want %v", tt.anim.IsValid(), tt.wantErr == nil)
			}
		})
	}
}

func TestKeyCount(t *testing.T) {
	anim := RawAnimation{Duration: 1, Tracks: []JointTrack{
		{
			Translations: []TranslationKey{{Time: 0}, {Time: 1}},
			Rotations:    []RotationKey{{Time: 0}},
		},
		{
			Scales: []ScaleKey{{Time: 0}, {Time: 0.5}, {Time: 1}},
		},
	}}

	if count := anim.Tracks[0].KeyCount(); count != 3 {
		t.Errorf("track KeyCount() = %d, want 3", count)
	}
	if count := anim.KeyCount(); count != 6 {
		t.Errorf("KeyCount() = %d, want 6", count)
	}
}
