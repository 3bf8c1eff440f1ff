package keyframe

import (
	"github.com/akmonengine/keyframe/skeleton"
	"github.com/akmonengine/keyframe/transform"
)

// hierarchy holds per joint rest pose properties used to turn local curve
// errors into model space errors.
type hierarchy struct {
	// Largest rest pose distance from the joint to any of its descendants,
	// expressed in the joint's parent space. 0 for leaves.
	extent []float64
	// Product of the rest scales of the joint and all its ancestors.
	scale []float64
	// accumulated scale of the parent, 1 for roots.
	parentScale []float64
}

func computeHierarchy(s *skeleton.Skeleton) (hierarchy, error) {
	n := s.NumJoints()
	h := hierarchy{
		extent:      make([]float64, n),
		scale:       make([]float64, n),
		parentScale: make([]float64, n),
	}
	if n == 0 {
		return h, nil
	}

	order, err := s.TopologicalOrder()
	if err != nil {
		return h, err
	}

	jointScale := make([]float64, n)
	for i := range n {
		jointScale[i] = transform.MaxScale(s.RestPose(i).Scale)
	}

	// Root to leaves: accumulate ancestor scales.
	for _, joint := range order {
		h.parentScale[joint] = 1
		if parent := s.Parent(joint); parent != skeleton.NoParent {
			h.parentScale[joint] = h.scale[parent]
		}
		h.scale[joint] = h.parentScale[joint] * jointScale[joint]
	}

	// Leaves to root: a child's offset and extent are expressed in the parent's
	// local space, so the parent's own scale applies to both.
	reach := make([]float64, n)
	for i := len(order) - 1; i >= 0; i-- {
		joint := order[i]
		h.extent[joint] = jointScale[joint] * reach[joint]

		if parent := s.Parent(joint); parent != skeleton.NoParent {
			length := s.RestPose(joint).Translation.Len() + h.extent[joint]
			reach[parent] = max(reach[parent], length)
		}
	}

	return h, nil
}
