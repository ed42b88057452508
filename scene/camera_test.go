package scene

import (
	stdmath "math"
	"testing"

	"scene-viewer/math"
)

func TestCameraTranslateMovesPositionAndTarget(t *testing.T) {
	cam := NewCamera(1.0472, 16.0/9.0, 0.1, 1000)
	cam.SetPosition(math.NewVec3(1, 2, 3))
	cam.SetTarget(math.NewVec3(1, 2, -7))

	cam.Translate(math.NewVec3(2, 0, -1))

	if cam.Position != math.NewVec3(3, 2, 2) {
		t.Errorf("position: expected (3,2,2), got %v", cam.Position)
	}
	if cam.Target != math.NewVec3(3, 2, -8) {
		t.Errorf("target: expected (3,2,-8), got %v", cam.Target)
	}
}

func TestCameraAspectRatioIgnoresZeroHeight(t *testing.T) {
	cam := NewCamera(1.0472, 2.0, 0.1, 1000)

	cam.UpdateAspectRatio(800, 0)
	if cam.AspectRatio != 2.0 {
		t.Errorf("expected aspect ratio unchanged, got %v", cam.AspectRatio)
	}

	cam.UpdateAspectRatio(800, 600)
	expected := float32(800.0 / 600.0)
	if cam.AspectRatio != expected {
		t.Errorf("expected %v, got %v", expected, cam.AspectRatio)
	}
}

func TestCameraFrameBox(t *testing.T) {
	cam := NewCamera(float32(stdmath.Pi/3), 1.0, 0.1, 1000)
	cam.SetPosition(math.NewVec3(4, 4, 14))
	cam.SetTarget(math.NewVec3(4, 4, 4))

	box := AABB{Min: math.NewVec3(2, 2, 2), Max: math.NewVec3(6, 6, 6)}
	cam.FrameBox(box)

	center := math.NewVec3(4, 4, 4)
	if cam.Target != center {
		t.Errorf("expected target at box center %v, got %v", center, cam.Target)
	}

	// Viewing direction is preserved, so the camera stays on the +Z side
	tolerance := 0.0001
	if stdmath.Abs(float64(cam.Position.X-4)) > tolerance ||
		stdmath.Abs(float64(cam.Position.Y-4)) > tolerance ||
		cam.Position.Z <= 4 {
		t.Errorf("expected position on +Z axis through center, got %v", cam.Position)
	}

	// Far enough back that the bounding sphere fits the vertical FOV
	radius := float32(stdmath.Sqrt(3)) * 2
	minDist := radius / float32(stdmath.Tan(stdmath.Pi/6))
	dist := cam.Position.Sub(cam.Target).Length()
	if dist < minDist {
		t.Errorf("expected distance >= %v, got %v", minDist, dist)
	}
}

func TestCameraDollyStopsShortOfTarget(t *testing.T) {
	cam := NewCamera(1.0472, 1.0, 0.1, 1000)
	cam.SetPosition(math.NewVec3(0, 0, 5))
	cam.SetTarget(math.Vec3Zero)

	cam.Dolly(100)

	dist := cam.Target.Sub(cam.Position).Length()
	if stdmath.Abs(float64(dist-0.2)) > 0.0001 {
		t.Errorf("expected clamped distance 0.2, got %v", dist)
	}
	if cam.Position.Z <= 0 {
		t.Errorf("expected camera to stay on its side of the target, got %v", cam.Position)
	}
}

func TestCameraViewProjectionCentersTarget(t *testing.T) {
	cam := NewCamera(1.0472, 1.0, 0.1, 1000)
	cam.SetPosition(math.NewVec3(0, 0, 5))
	cam.SetTarget(math.Vec3Zero)

	// The look target projects to the center of the screen
	clip := math.NewVec4(0, 0, 0, 1).MulMat(cam.GetViewProjectionMatrix())
	ndc := clip.ToVec3DivW()

	tolerance := 0.0001
	if stdmath.Abs(float64(ndc.X)) > tolerance || stdmath.Abs(float64(ndc.Y)) > tolerance {
		t.Errorf("expected target at NDC center, got %v", ndc)
	}
}
