package core

import (
	stdmath "math"
	"testing"

	"scene-viewer/math"
)

func TestTransformMatrixTranslatesOrigin(t *testing.T) {
	tr := NewTransform()
	tr.Position = math.NewVec3(5, -2, 3)

	origin := math.NewVec4(0, 0, 0, 1)
	result := origin.MulMat(tr.GetMatrix()).ToVec3()

	if result != tr.Position {
		t.Errorf("expected origin at %v, got %v", tr.Position, result)
	}
}

func TestTransformMatrixScaleKeepsPosition(t *testing.T) {
	tr := NewTransform()
	tr.Position = math.NewVec3(1, 2, 3)
	tr.Scale = math.NewVec3(4, 4, 4)

	// Scale applies to local geometry, not to the node position
	origin := math.NewVec4(0, 0, 0, 1)
	result := origin.MulMat(tr.GetMatrix()).ToVec3()
	if result != tr.Position {
		t.Errorf("expected %v, got %v", tr.Position, result)
	}

	unitX := math.NewVec4(1, 0, 0, 1)
	scaled := unitX.MulMat(tr.GetMatrix()).ToVec3()
	expected := math.NewVec3(5, 2, 3)
	if scaled != expected {
		t.Errorf("expected %v, got %v", expected, scaled)
	}
}

func TestTransformMatrixRotatesAboutOwnOrigin(t *testing.T) {
	tr := NewTransform()
	tr.Position = math.NewVec3(5, 0, 0)
	tr.Rotation = math.QuaternionFromAxisAngle(math.Vec3Up, float32(stdmath.Pi/2))

	origin := math.NewVec4(0, 0, 0, 1)
	result := origin.MulMat(tr.GetMatrix()).ToVec3()

	tolerance := 0.0001
	if stdmath.Abs(float64(result.X-5)) > tolerance ||
		stdmath.Abs(float64(result.Y)) > tolerance ||
		stdmath.Abs(float64(result.Z)) > tolerance {
		t.Errorf("expected (5,0,0), got %v", result)
	}
}
