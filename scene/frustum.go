package scene

import "scene-viewer/math"

// Plane represents a half-space: ax + by + cz + d = 0
// Normal (a, b, c) points into the "inside" of the frustum.
type Plane struct {
	Normal math.Vec3
	D      float32
}

// DistanceTo returns the signed distance from a point to the plane.
// Positive means on the "inside" (same side as Normal).
func (p Plane) DistanceTo(pt math.Vec3) float32 {
	return p.Normal.Dot(pt) + p.D
}

// Frustum holds the six clip planes of a view frustum.
type Frustum struct {
	Planes [6]Plane // Left, Right, Bottom, Top, Near, Far
}

// FrustumFromVP extracts the six frustum planes from a view-projection
// matrix (Gribb/Hartmann).
//
// Convention: clip = v * VP with v a row vector, so clip.X dots v with
// VP column 0 and clip.W with column 3. "Inside the left plane" is
// clip.X + clip.W >= 0, which makes each plane a sum or difference of
// matrix COLUMNS (vp[0..3][i]). Planes are normalized so DistanceTo
// returns true world-unit distances.
func FrustumFromVP(vp math.Mat4) Frustum {
	c0 := math.Vec4{X: vp[0][0], Y: vp[1][0], Z: vp[2][0], W: vp[3][0]}
	c1 := math.Vec4{X: vp[0][1], Y: vp[1][1], Z: vp[2][1], W: vp[3][1]}
	c2 := math.Vec4{X: vp[0][2], Y: vp[1][2], Z: vp[2][2], W: vp[3][2]}
	c3 := math.Vec4{X: vp[0][3], Y: vp[1][3], Z: vp[2][3], W: vp[3][3]}

	var f Frustum
	// Left:   c3 + c0
	f.Planes[0] = normalizePlane(c3.X+c0.X, c3.Y+c0.Y, c3.Z+c0.Z, c3.W+c0.W)
	// Right:  c3 - c0
	f.Planes[1] = normalizePlane(c3.X-c0.X, c3.Y-c0.Y, c3.Z-c0.Z, c3.W-c0.W)
	// Bottom: c3 + c1
	f.Planes[2] = normalizePlane(c3.X+c1.X, c3.Y+c1.Y, c3.Z+c1.Z, c3.W+c1.W)
	// Top:    c3 - c1
	f.Planes[3] = normalizePlane(c3.X-c1.X, c3.Y-c1.Y, c3.Z-c1.Z, c3.W-c1.W)
	// Near:   c3 + c2
	f.Planes[4] = normalizePlane(c3.X+c2.X, c3.Y+c2.Y, c3.Z+c2.Z, c3.W+c2.W)
	// Far:    c3 - c2
	f.Planes[5] = normalizePlane(c3.X-c2.X, c3.Y-c2.Y, c3.Z-c2.Z, c3.W-c2.W)
	return f
}

func normalizePlane(a, b, c, d float32) Plane {
	l := math.Vec3{X: a, Y: b, Z: c}.Length()
	if l == 0 {
		return Plane{}
	}
	return Plane{Normal: math.Vec3{X: a / l, Y: b / l, Z: c / l}, D: d / l}
}

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min, Max math.Vec3
}

// Center returns the midpoint of the box.
func (box AABB) Center() math.Vec3 {
	return box.Min.Add(box.Max).Mul(0.5)
}

// Union returns the smallest AABB containing both boxes.
func (box AABB) Union(other AABB) AABB {
	out := box
	if other.Min.X < out.Min.X {
		out.Min.X = other.Min.X
	}
	if other.Min.Y < out.Min.Y {
		out.Min.Y = other.Min.Y
	}
	if other.Min.Z < out.Min.Z {
		out.Min.Z = other.Min.Z
	}
	if other.Max.X > out.Max.X {
		out.Max.X = other.Max.X
	}
	if other.Max.Y > out.Max.Y {
		out.Max.Y = other.Max.Y
	}
	if other.Max.Z > out.Max.Z {
		out.Max.Z = other.Max.Z
	}
	return out
}

// IntersectsFrustum returns false if the AABB is completely outside the frustum.
// Uses the "n-vertex" test: for each plane, check if the "positive vertex"
// (the corner most aligned with the plane normal) is on the outside.
func (box AABB) IntersectsFrustum(f *Frustum) bool {
	for i := 0; i < 6; i++ {
		p := f.Planes[i]
		// Choose the positive vertex (most in the direction of the plane normal)
		px := box.Max.X
		if p.Normal.X < 0 {
			px = box.Min.X
		}
		py := box.Max.Y
		if p.Normal.Y < 0 {
			py = box.Min.Y
		}
		pz := box.Max.Z
		if p.Normal.Z < 0 {
			pz = box.Min.Z
		}
		if p.DistanceTo(math.Vec3{X: px, Y: py, Z: pz}) < 0 {
			return false // outside this plane
		}
	}
	return true
}

// ComputeAABB computes the world-space AABB for a mesh transformed by worldMatrix.
// If the mesh has a cached local AABB, it transforms the 8 corners (fast path).
// Otherwise it falls back to iterating all vertices.
func ComputeAABB(mesh *Mesh, worldMatrix math.Mat4) AABB {
	if mesh.HasLocalAABB {
		return transformAABB(mesh.LocalAABB, worldMatrix)
	}
	return computeAABBSlow(mesh, worldMatrix)
}

// ComputeWorldAABB unions the world-space AABBs of every visible mesh
// under root. The second return is false when no mesh contributed.
func ComputeWorldAABB(root *Node) (AABB, bool) {
	var out AABB
	found := false
	root.Traverse(func(n *Node) {
		if n.Mesh == nil || !n.Visible {
			return
		}
		box := ComputeAABB(n.Mesh, n.GetWorldMatrix())
		if !found {
			out = box
			found = true
			return
		}
		out = out.Union(box)
	})
	return out, found
}

// transformAABB transforms a local AABB by a world matrix by testing all 8 corners.
func transformAABB(local AABB, m math.Mat4) AABB {
	mn, mx := local.Min, local.Max
	corners := [8]math.Vec3{
		{X: mn.X, Y: mn.Y, Z: mn.Z},
		{X: mx.X, Y: mn.Y, Z: mn.Z},
		{X: mn.X, Y: mx.Y, Z: mn.Z},
		{X: mx.X, Y: mx.Y, Z: mn.Z},
		{X: mn.X, Y: mn.Y, Z: mx.Z},
		{X: mx.X, Y: mn.Y, Z: mx.Z},
		{X: mn.X, Y: mx.Y, Z: mx.Z},
		{X: mx.X, Y: mx.Y, Z: mx.Z},
	}
	first := m.MulVec3(corners[0])
	out := AABB{Min: first, Max: first}
	for i := 1; i < 8; i++ {
		wp := m.MulVec3(corners[i])
		if wp.X < out.Min.X {
			out.Min.X = wp.X
		}
		if wp.Y < out.Min.Y {
			out.Min.Y = wp.Y
		}
		if wp.Z < out.Min.Z {
			out.Min.Z = wp.Z
		}
		if wp.X > out.Max.X {
			out.Max.X = wp.X
		}
		if wp.Y > out.Max.Y {
			out.Max.Y = wp.Y
		}
		if wp.Z > out.Max.Z {
			out.Max.Z = wp.Z
		}
	}
	return out
}

// computeAABBSlow is the fallback when no cached local AABB is available.
func computeAABBSlow(mesh *Mesh, worldMatrix math.Mat4) AABB {
	if len(mesh.Vertices) == 0 {
		return AABB{}
	}
	first := worldMatrix.MulVec3(mesh.Vertices[0].Position)
	out := AABB{Min: first, Max: first}
	for i := 1; i < len(mesh.Vertices); i++ {
		wp := worldMatrix.MulVec3(mesh.Vertices[i].Position)
		if wp.X < out.Min.X {
			out.Min.X = wp.X
		}
		if wp.Y < out.Min.Y {
			out.Min.Y = wp.Y
		}
		if wp.Z < out.Min.Z {
			out.Min.Z = wp.Z
		}
		if wp.X > out.Max.X {
			out.Max.X = wp.X
		}
		if wp.Y > out.Max.Y {
			out.Max.Y = wp.Y
		}
		if wp.Z > out.Max.Z {
			out.Max.Z = wp.Z
		}
	}
	return out
}
