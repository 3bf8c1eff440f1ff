package skeleton

import (
	"errors"
	"fmt"

	"github.com/akmonengine/keyframe/transform"
)

// NoParent is the parent index of root joints
const NoParent = -1

var (
	ErrInvalidParent = errors.New("invalid parent index")
	ErrCycle         = errors.New("joint hierarchy contains a cycle")
)

// Joint is a node of the skeleton hierarchy
type Joint struct {
	Name   string
	Parent int
	// Rest pose local transform, relative to the parent joint
	Rest transform.Transform
}

// Skeleton is a read-only forest of joints, stored as a flat array indexed by
// joint id.
type Skeleton struct {
	joints []Joint
}

// New creates a skeleton from a flat joint array. Parents may appear after
// their children, but every parent index must be in range and the hierarchy
// must be acyclic.
func New(joints []Joint) (*Skeleton, error) {
	for i, joint := range joints {
		if joint.Parent != NoParent && (joint.Parent < 0 || joint.Parent >= len(joints) || joint.Parent == i) {
			return nil, fmt.Errorf("%w: joint %d has parent %d", ErrInvalidParent, i, joint.Parent)
		}
	}

	skeleton := &Skeleton{joints: append([]Joint(nil), joints...)}
	if _, err := skeleton.TopologicalOrder(); err != nil {
		return nil, err
	}

	return skeleton, nil
}

// NumJoints returns 0 for a nil skeleton
func (s *Skeleton) NumJoints() int {
	if s == nil {
		return 0
	}
	return len(s.joints)
}

func (s *Skeleton) Parent(joint int) int {
	return s.joints[joint].Parent
}

func (s *Skeleton) Name(joint int) string {
	return s.joints[joint].Name
}

func (s *Skeleton) RestPose(joint int) transform.Transform {
	return s.joints[joint].Rest
}

// Children returns the child indices of every joint, in joint order
func (s *Skeleton) Children() [][]int {
	children := make([][]int, s.NumJoints())
	for i := 0; i < s.NumJoints(); i++ {
		if parent := s.joints[i].Parent; parent != NoParent {
			children[parent] = append(children[parent], i)
		}
	}
	return children
}

// TopologicalOrder returns joint indices ordered parents before children.
// Roots come first, in joint order, followed by their descendants breadth first.
func (s *Skeleton) TopologicalOrder() ([]int, error) {
	children := s.Children()
	order := make([]int, 0, s.NumJoints())
	for i := 0; i < s.NumJoints(); i++ {
		if s.joints[i].Parent == NoParent {
			order = append(order, i)
		}
	}

	for next := 0; next < len(order); next++ {
		order = append(order, children[order[next]]...)
	}

	// Joints never reached from a root belong to a cycle.
	if len(order) != s.NumJoints() {
		return nil, fmt.Errorf("%w: %d of %d joints unreachable from a root", ErrCycle, s.NumJoints()-len(order), s.NumJoints())
	}

	return order, nil
}
