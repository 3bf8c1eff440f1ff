package main

import (
	"fmt"
	"math"

	"github.com/akmonengine/keyframe"
	"github.com/akmonengine/keyframe/animation"
	"github.com/akmonengine/keyframe/skeleton"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	FRAME_RATE = 30
	DURATION   = 2.0
)

// SetupSkeleton creates a small arm: shoulder, elbow, wrist and a finger tip
func SetupSkeleton() *skeleton.Skeleton {
	tip := skeleton.NewRawJoint("tip")
	tip.Transform.Translation = mgl64.Vec3{0.1, 0, 0}

	wrist := skeleton.NewRawJoint("wrist", tip)
	wrist.Transform.Translation = mgl64.Vec3{0.3, 0, 0}

	elbow := skeleton.NewRawJoint("elbow", wrist)
	elbow.Transform.Translation = mgl64.Vec3{0.3, 0, 0}

	return skeleton.Build(skeleton.NewRawJoint("shoulder", elbow))
}

// SetupAnimation bakes every joint at FRAME_RATE, as a DCC exporter would
func SetupAnimation(skel *skeleton.Skeleton) animation.RawAnimation {
	anim := animation.NewRawAnimation(skel.NumJoints())
	anim.Duration = DURATION

	frames := int(DURATION*FRAME_RATE) + 1
	for joint := range anim.Tracks {
		track := &anim.Tracks[joint]
		rest := skel.RestPose(joint)

		for frame := range frames {
			time := min(float64(frame)/FRAME_RATE, DURATION)
			swing := 0.4 * math.Sin(time*math.Pi*float64(joint+1)/DURATION)

			track.Translations = append(track.Translations, animation.TranslationKey{Time: time, Value: rest.Translation})
			track.Rotations = append(track.Rotations, animation.RotationKey{
				Time:  time,
				Value: mgl64.QuatRotate(swing, mgl64.Vec3{0, 0, 1}),
			})
			track.Scales = append(track.Scales, animation.ScaleKey{Time: time, Value: rest.Scale})
		}
	}

	return anim
}

func main() {
	skel := SetupSkeleton()
	input := SetupAnimation(skel)

	optimizer := keyframe.NewOptimizer()
	optimizer.Workers = 2

	var output animation.RawAnimation
	if err := optimizer.Optimize(input, skel, &output); err != nil {
		fmt.Printf("❌ Optimization failed: %v\n", err)
		return
	}

	fmt.Printf("🎬 Animation: %d joints, %.2fs\n", output.NumTracks(), output.Duration)
	for joint, track := range output.Tracks {
		in := input.Tracks[joint]
		fmt.Printf("   %-8s T %3d -> %-3d R %3d -> %-3d S %3d -> %-3d\n",
			skel.Name(joint),
			len(in.Translations), len(track.Translations),
			len(in.Rotations), len(track.Rotations),
			len(in.Scales), len(track.Scales),
		)
	}
	fmt.Printf("✅ Keys: %d -> %d\n", input.KeyCount(), output.KeyCount())
}
