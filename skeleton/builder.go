package skeleton

import "github.com/akmonengine/keyframe/transform"

// RawJoint describes a joint and its children as a tree, the way skeletons are
// usually authored.
type RawJoint struct {
	Name      string
	Transform transform.Transform
	Children  []RawJoint
}

// NewRawJoint creates a joint with an identity rest pose
func NewRawJoint(name string, children ...RawJoint) RawJoint {
	return RawJoint{
		Name:      name,
		Transform: transform.Identity(),
		Children:  children,
	}
}

// Build flattens a joint forest depth first, so every parent precedes its
// children in the resulting skeleton.
func Build(roots ...RawJoint) *Skeleton {
	var joints []Joint
	var visit func(raw RawJoint, parent int)
	visit = func(raw RawJoint, parent int) {
		index := len(joints)
		joints = append(joints, Joint{Name: raw.Name, Parent: parent, Rest: raw.Transform})
		for _, child := range raw.Children {
			visit(child, index)
		}
	}

	for _, root := range roots {
		visit(root, NoParent)
	}

	return &Skeleton{joints: joints}
}
