package viewer

import (
	stdmath "math"

	"scene-viewer/math"
	"scene-viewer/scene"
)

// Ray is a world-space ray with a normalized direction.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3
}

// ScreenToRay converts a cursor position to a world-space ray through
// that pixel, via the inverse projection and view matrices.
func ScreenToRay(mouseX, mouseY, screenW, screenH float32, cam *scene.Camera) Ray {
	ndcX := (2*mouseX)/screenW - 1
	ndcY := 1 - (2*mouseY)/screenH // screen Y grows downward

	clipNear := math.Vec4{X: ndcX, Y: ndcY, Z: 0, W: 1}

	invProj := cam.GetProjectionMatrix().Inverse()
	invView := cam.GetViewMatrix().Inverse()

	viewNear := invProj.MulVec(clipNear)
	viewNear = viewNear.Mul(1 / viewNear.W)

	worldNear := invView.MulVec(math.Vec4{X: viewNear.X, Y: viewNear.Y, Z: viewNear.Z, W: 1})

	dir := math.Vec3{
		X: worldNear.X - cam.Position.X,
		Y: worldNear.Y - cam.Position.Y,
		Z: worldNear.Z - cam.Position.Z,
	}.Normalize()

	return Ray{Origin: cam.Position, Direction: dir}
}

// PickLight casts the ray against every marker's world-space AABB and
// returns the index of the nearest hit, or -1 when nothing is hit.
func (r *LightRig) PickLight(ray Ray) int {
	best := -1
	bestT := float32(stdmath.MaxFloat32)
	for i, marker := range r.Markers {
		box := scene.ComputeAABB(marker.Mesh, marker.GetWorldMatrix())
		if t, hit := rayAABB(ray, box); hit && t < bestT {
			bestT = t
			best = i
		}
	}
	return best
}

// rayAABB is the slab intersection test. A zero direction component
// yields infinite slab bounds, which the min/max comparisons handle.
func rayAABB(ray Ray, box scene.AABB) (float32, bool) {
	invX := 1 / ray.Direction.X
	invY := 1 / ray.Direction.Y
	invZ := 1 / ray.Direction.Z

	t1 := (box.Min.X - ray.Origin.X) * invX
	t2 := (box.Max.X - ray.Origin.X) * invX
	t3 := (box.Min.Y - ray.Origin.Y) * invY
	t4 := (box.Max.Y - ray.Origin.Y) * invY
	t5 := (box.Min.Z - ray.Origin.Z) * invZ
	t6 := (box.Max.Z - ray.Origin.Z) * invZ

	tmin := max32(max32(min32(t1, t2), min32(t3, t4)), min32(t5, t6))
	tmax := min32(min32(max32(t1, t2), max32(t3, t4)), max32(t5, t6))

	if tmax < 0 || tmin > tmax {
		return 0, false
	}
	if tmin < 0 {
		return tmax, true // origin inside the box
	}
	return tmin, true
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
