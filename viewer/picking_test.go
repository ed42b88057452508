package viewer

import (
	"testing"

	"scene-viewer/math"
	"scene-viewer/scene"
)

func TestRayAABBHitAndMiss(t *testing.T) {
	box := scene.AABB{Min: math.NewVec3(-1, -1, -1), Max: math.NewVec3(1, 1, 1)}

	down := Ray{Origin: math.NewVec3(0.2, 10, 0.2), Direction: math.NewVec3(0, -1, 0)}
	if tHit, hit := rayAABB(down, box); !hit {
		t.Error("expected hit straight down into the box")
	} else if !approxEqual(tHit, 9, 1e-4) {
		t.Errorf("expected entry distance 9, got %v", tHit)
	}

	miss := Ray{Origin: math.NewVec3(5, 10, 0), Direction: math.NewVec3(0, -1, 0)}
	if _, hit := rayAABB(miss, box); hit {
		t.Error("expected miss beside the box")
	}

	behind := Ray{Origin: math.NewVec3(0, 10, 0), Direction: math.NewVec3(0, 1, 0)}
	if _, hit := rayAABB(behind, box); hit {
		t.Error("expected miss for box behind the ray")
	}
}

func TestRayAABBOriginInside(t *testing.T) {
	box := scene.AABB{Min: math.NewVec3(-1, -1, -1), Max: math.NewVec3(1, 1, 1)}
	ray := Ray{Origin: math.Vec3Zero, Direction: math.NewVec3(0, 0, -1)}

	tHit, hit := rayAABB(ray, box)
	if !hit {
		t.Fatal("expected hit from inside the box")
	}
	if tHit < 0 {
		t.Errorf("expected non-negative exit distance, got %v", tHit)
	}
}

func TestPickLightSelectsNearestMarker(t *testing.T) {
	_, rig := newTestRig(5)

	// Aim straight down at light 3's marker from above.
	target := rig.Lights[3].Position
	ray := Ray{
		Origin:    target.Add(math.NewVec3(0.01, 20, 0.01)),
		Direction: math.NewVec3(0, -1, 0),
	}

	if got := rig.PickLight(ray); got != 3 {
		t.Errorf("expected pick 3, got %d", got)
	}
}

func TestPickLightMissReturnsMinusOne(t *testing.T) {
	_, rig := newTestRig(3)

	ray := Ray{Origin: math.NewVec3(500, 500, 500), Direction: math.NewVec3(0, 1, 0)}
	if got := rig.PickLight(ray); got != -1 {
		t.Errorf("expected -1 on miss, got %d", got)
	}
}

func TestPickLightPrefersCloserOfTwoOnAxis(t *testing.T) {
	_, rig := newTestRig(2)

	// Stack both lights on the same vertical line; the ray from above
	// must pick the higher (closer) one.
	rig.Lights[0].Position = math.NewVec3(0, 2, 0)
	rig.Lights[1].Position = math.NewVec3(0, 6, 0)
	rig.Sync()

	ray := Ray{Origin: math.NewVec3(0.01, 20, 0.01), Direction: math.NewVec3(0, -1, 0)}
	if got := rig.PickLight(ray); got != 1 {
		t.Errorf("expected nearer light 1, got %d", got)
	}
}

func TestScreenToRayCenterMatchesForward(t *testing.T) {
	cam := scene.NewCamera(1.0472, 16.0/9.0, 0.1, 1000)
	cam.SetPosition(math.NewVec3(0, 2, 10))
	cam.SetTarget(math.NewVec3(0, 2, 0))

	ray := ScreenToRay(640, 360, 1280, 720, cam)

	if ray.Origin != cam.Position {
		t.Errorf("ray origin: expected camera position, got %v", ray.Origin)
	}
	if !vecApprox(ray.Direction, cam.Forward(), 1e-3) {
		t.Errorf("center ray %v should match camera forward %v", ray.Direction, cam.Forward())
	}
}

func TestScreenToRayOffCenterDeviates(t *testing.T) {
	cam := scene.NewCamera(1.0472, 16.0/9.0, 0.1, 1000)
	cam.SetPosition(math.Vec3Zero)
	cam.SetTarget(math.NewVec3(0, 0, -1))

	right := ScreenToRay(1280, 360, 1280, 720, cam)
	if right.Direction.X <= 0 {
		t.Errorf("right-edge ray should lean +X, got %v", right.Direction)
	}

	top := ScreenToRay(640, 0, 1280, 720, cam)
	if top.Direction.Y <= 0 {
		t.Errorf("top-edge ray should lean +Y, got %v", top.Direction)
	}
}
