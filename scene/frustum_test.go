package scene

import (
	"testing"

	"scene-viewer/math"
)

func viewerFrustum() Frustum {
	cam := NewCamera(1.0472, 1.0, 0.1, 100)
	cam.SetPosition(math.NewVec3(0, 0, 5))
	cam.SetTarget(math.Vec3Zero)
	return FrustumFromVP(cam.GetViewProjectionMatrix())
}

func TestFrustumContainsBoxAhead(t *testing.T) {
	f := viewerFrustum()

	box := AABB{Min: math.NewVec3(-1, -1, -1), Max: math.NewVec3(1, 1, 1)}
	if !box.IntersectsFrustum(&f) {
		t.Error("expected box in front of the camera to intersect the frustum")
	}
}

func TestFrustumRejectsBoxBehind(t *testing.T) {
	f := viewerFrustum()

	// Camera sits at z=5 looking toward -Z; z=20 is behind it
	box := AABB{Min: math.NewVec3(-1, -1, 19), Max: math.NewVec3(1, 1, 21)}
	if box.IntersectsFrustum(&f) {
		t.Error("expected box behind the camera to be culled")
	}
}

func TestFrustumRejectsBoxFarToTheSide(t *testing.T) {
	f := viewerFrustum()

	box := AABB{Min: math.NewVec3(99, -1, -1), Max: math.NewVec3(101, 1, 1)}
	if box.IntersectsFrustum(&f) {
		t.Error("expected box far off to the side to be culled")
	}
}

func TestFrustumKeepsStraddlingBox(t *testing.T) {
	f := viewerFrustum()

	// Much larger than the frustum on every axis; still intersects
	box := AABB{Min: math.NewVec3(-500, -500, -500), Max: math.NewVec3(500, 500, 500)}
	if !box.IntersectsFrustum(&f) {
		t.Error("expected enclosing box to intersect the frustum")
	}
}

func TestFrustumNearPlaneDistance(t *testing.T) {
	f := viewerFrustum()

	// A box squarely between the camera and the near plane is culled
	box := AABB{Min: math.NewVec3(-0.01, -0.01, 4.95), Max: math.NewVec3(0.01, 0.01, 4.99)}
	if box.IntersectsFrustum(&f) {
		t.Error("expected box inside the near distance to be culled")
	}
}

func TestComputeWorldAABBUnionsChildren(t *testing.T) {
	root := NewNode("Root")

	a := NewNode("A")
	a.Mesh = CreateCube(2)
	a.SetPosition(math.NewVec3(-5, 0, 0))
	root.AddChild(a)

	b := NewNode("B")
	b.Mesh = CreateCube(2)
	b.SetPosition(math.NewVec3(5, 0, 0))
	root.AddChild(b)

	box, ok := ComputeWorldAABB(root)
	if !ok {
		t.Fatal("expected a world AABB")
	}

	expectedMin := math.NewVec3(-6, -1, -1)
	expectedMax := math.NewVec3(6, 1, 1)
	if box.Min != expectedMin || box.Max != expectedMax {
		t.Errorf("expected [%v %v], got [%v %v]", expectedMin, expectedMax, box.Min, box.Max)
	}
}

func TestComputeWorldAABBEmptyGraph(t *testing.T) {
	root := NewNode("Root")
	if _, ok := ComputeWorldAABB(root); ok {
		t.Error("expected no AABB for a graph without meshes")
	}
}

func TestComputeWorldAABBSkipsHiddenNodes(t *testing.T) {
	root := NewNode("Root")

	shown := NewNode("Shown")
	shown.Mesh = CreateCube(2)
	root.AddChild(shown)

	hidden := NewNode("Hidden")
	hidden.Mesh = CreateCube(2)
	hidden.SetPosition(math.NewVec3(100, 0, 0))
	hidden.Visible = false
	root.AddChild(hidden)

	box, ok := ComputeWorldAABB(root)
	if !ok {
		t.Fatal("expected a world AABB")
	}
	if box.Max.X != 1 {
		t.Errorf("expected hidden node to be excluded, got max %v", box.Max)
	}
}
