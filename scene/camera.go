package scene

import (
	"math"

	svMath "scene-viewer/math"
)

// Camera is a perspective camera aimed at a look target. Moving the
// camera keeps Position and Target in lockstep (Translate); aiming it
// moves only the Target.
type Camera struct {
	Position    svMath.Vec3
	Target      svMath.Vec3
	Up          svMath.Vec3
	FOV         float32
	AspectRatio float32
	NearPlane   float32
	FarPlane    float32

	// Cached matrices
	viewMatrix       svMath.Mat4
	projectionMatrix svMath.Mat4
	viewProjMatrix   svMath.Mat4
	dirty            bool
}

func NewCamera(fov, aspectRatio, nearPlane, farPlane float32) *Camera {
	return &Camera{
		Position:    svMath.Vec3Zero,
		Target:      svMath.Vec3Back,
		Up:          svMath.Vec3Up,
		FOV:         fov,
		AspectRatio: aspectRatio,
		NearPlane:   nearPlane,
		FarPlane:    farPlane,
		dirty:       true,
	}
}

// UpdateAspectRatio is the only camera state a window resize touches.
func (c *Camera) UpdateAspectRatio(width, height float32) {
	if height > 0 {
		c.AspectRatio = width / height
		c.dirty = true
	}
}

func (c *Camera) SetPosition(pos svMath.Vec3) {
	c.Position = pos
	c.dirty = true
}

func (c *Camera) SetTarget(target svMath.Vec3) {
	c.Target = target
	c.dirty = true
}

// Translate moves the camera and its look target together, so the
// viewing direction is preserved.
func (c *Camera) Translate(delta svMath.Vec3) {
	c.Position = c.Position.Add(delta)
	c.Target = c.Target.Add(delta)
	c.dirty = true
}

// Forward returns the normalized viewing direction.
func (c *Camera) Forward() svMath.Vec3 {
	return c.Target.Sub(c.Position).Normalize()
}

// Dolly moves the position toward (positive delta) or away from the
// target, never closer than a small minimum distance.
func (c *Camera) Dolly(delta float32) {
	toTarget := c.Target.Sub(c.Position)
	dist := toTarget.Length()
	if dist <= 0 {
		return
	}
	forward := toTarget.Div(dist)
	newDist := dist - delta
	if newDist < 0.2 {
		newDist = 0.2
	}
	c.Position = c.Target.Sub(forward.Mul(newDist))
	c.dirty = true
}

// FrameBox aims the camera at the box center and backs it off far
// enough that the whole box fits in the vertical field of view. The
// current viewing direction is kept.
func (c *Camera) FrameBox(box AABB) {
	center := box.Min.Add(box.Max).Mul(0.5)
	radius := box.Max.Sub(box.Min).Length() * 0.5
	if radius < 0.001 {
		radius = 1
	}

	dir := c.Position.Sub(c.Target)
	if dir.LengthSqr() < 0.000001 {
		dir = svMath.NewVec3(0, 0.4, 1)
	}
	dir = dir.Normalize()

	distance := radius / float32(math.Tan(float64(c.FOV)*0.5))
	distance *= 1.4
	if distance < c.NearPlane+radius {
		distance = c.NearPlane + radius
	}

	c.Target = center
	c.Position = center.Add(dir.Mul(distance))
	c.dirty = true
}

func (c *Camera) GetViewMatrix() svMath.Mat4 {
	if c.dirty {
		c.updateMatrices()
	}
	return c.viewMatrix
}

func (c *Camera) GetProjectionMatrix() svMath.Mat4 {
	if c.dirty {
		c.updateMatrices()
	}
	return c.projectionMatrix
}

func (c *Camera) GetViewProjectionMatrix() svMath.Mat4 {
	if c.dirty {
		c.updateMatrices()
	}
	return c.viewProjMatrix
}

func (c *Camera) updateMatrices() {
	c.viewMatrix = svMath.Mat4LookAt(c.Position, c.Target, c.Up)
	c.projectionMatrix = svMath.Mat4Perspective(c.FOV, c.AspectRatio, c.NearPlane, c.FarPlane)
	c.viewProjMatrix = c.viewMatrix.Mul(c.projectionMatrix)
	c.dirty = false
}
