package keyframe

import (
	"math"
	"testing"

	"github.com/akmonengine/keyframe/skeleton"
	"github.com/akmonengine/keyframe/transform"
	"github.com/go-gl/mathgl/mgl64"
)

func TestComputeHierarchy(t *testing.T) {
	grandChild := skeleton.NewRawJoint("grandchild")
	grandChild.Transform.Translation = mgl64.Vec3{0, 0, 10}

	child := skeleton.NewRawJoint("child", grandChild)
	child.Transform.Translation = mgl64.Vec3{3, 4, 0}

	shortChild := skeleton.NewRawJoint("short")
	shortChild.Transform.Translation = mgl64.Vec3{1, 0, 0}
	shortChild.Transform.Scale = mgl64.Vec3{10, 100, 1000}

	root := skeleton.NewRawJoint("root", child, shortChild)
	root.Transform.Scale = mgl64.Vec3{2, 2, 2}

	other := skeleton.NewRawJoint("other")

	// root, child, grandchild, short, other
	h, err := computeHierarchy(skeleton.Build(root, other))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name        string
		joint       int
		extent      float64
		scale       float64
		parentScale float64
	}{
		{"root", 0, 2 * (5 + 10), 2, 1},
		{"child", 1, 10, 2, 2},
		{"grandchild leaf", 2, 0, 2, 2},
		{"scaled leaf", 3, 0, 2000, 2},
		{"lone root", 4, 0, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if math.Abs(h.extent[tt.joint]-tt.extent) > 1e-12 {
				t.Errorf("extent = %v, want %v", h.extent[tt.joint], tt.extent)
			}
			if h.scale[tt.joint] != tt.scale {
				t.Errorf("scale = %v, want %v", h.scale[tt.joint], tt.scale)
			}
			if h.parentScale[tt.joint] != tt.parentScale {
				t.Errorf("parentScale = %v, want %v", h.parentScale[tt.joint], tt.parentScale)
			}
		})
	}
}

func TestComputeHierarchy_ChildBeforeParent(t *testing.T) {
	rest := transform.Identity()
	rest.Translation = mgl64.Vec3{0, 2, 0}

	skel, err := skeleton.New([]skeleton.Joint{
		{Name: "tip", Parent: 2, Rest: rest},
		{Name: "root", Parent: skeleton.NoParent, Rest: transform.Identity()},
		{Name: "middle", Parent: 1, Rest: rest},
	})
	if err != nil {
		t.Fatal(err)
	}

	h, err := computeHierarchy(skel)
	if err != nil {
		t.Fatal(err)
	}

	expected := []float64{0, 4, 2}
	for joint, extent := range expected {
		if h.extent[joint] != extent {
			t.Errorf("extent[%d] = %v, want %v", joint, h.extent[joint], extent)
		}
	}
}

func TestComputeHierarchy_Empty(t *testing.T) {
	h, err := computeHierarchy(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(h.extent) != 0 || len(h.scale) != 0 {
		t.Errorf("expected empty hierarchy, got %+v", h)
	}
}

func TestChord(t *testing.T) {
	if c := chord(math.Pi, 3); math.Abs(c-6) > 1e-12 {
		t.Errorf("chord(pi, 3) = %v, want 6", c)
	}
	if c := chord(math.Pi/3, 2); math.Abs(c-2) > 1e-12 {
		t.Errorf("chord(pi/3, 2) = %v, want 2", c)
	}
	if c := chord(1, 0); c != 0 {
		t.Errorf("chord(1, 0) = %v, want 0", c)
	}
}
