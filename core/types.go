package core

import (
	"scene-viewer/math"
)

type Color struct {
	R, G, B, A float32
}

var (
	ColorWhite  = Color{1, 1, 1, 1}
	ColorBlack  = Color{0, 0, 0, 1}
	ColorRed    = Color{1, 0, 0, 1}
	ColorGreen  = Color{0, 1, 0, 1}
	ColorBlue   = Color{0, 0, 1, 1}
	ColorYellow = Color{1, 1, 0, 1}
)

type Vertex struct {
	Position math.Vec3
	Normal   math.Vec3
	UV       math.Vec2
	Color    Color
}

type Transform struct {
	Position math.Vec3
	Rotation math.Quaternion
	Scale    math.Vec3
}

func NewTransform() Transform {
	return Transform{
		Position: math.Vec3Zero,
		Rotation: math.QuaternionIdentity(),
		Scale:    math.Vec3One,
	}
}

// GetMatrix applies scale, then rotation, then translation
// (row-vector convention, translation in the last row).
func (t Transform) GetMatrix() math.Mat4 {
	scale := math.Mat4Scale(t.Scale)
	rotation := t.Rotation.ToMat4()
	translation := math.Mat4Translation(t.Position)
	return scale.Mul(rotation).Mul(translation)
}
